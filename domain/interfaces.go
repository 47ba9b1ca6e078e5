package domain

import "context"

// UserRepository defines user data access operations
type UserRepository interface {
	Create(ctx context.Context, user *User) error
	FindByID(ctx context.Context, id string) (*User, error)
	FindByEmail(ctx context.Context, email string) (*User, error)
	// FindByPhone looks up a user owning the given phone number, excluding
	// excludeID when non-empty. Powers the phone uniqueness pre-check.
	FindByPhone(ctx context.Context, phone, excludeID string) (*User, error)
	Update(ctx context.Context, user *User) error
	List(ctx context.Context, page, pageSize int, search string) (*Page[*User], error)
	Count(ctx context.Context) (int64, error)
}

// TokenRepository defines access credential data access operations.
// Update writes only the mutable columns; id, access_token and user_id are
// immutable at the store layer.
type TokenRepository interface {
	Create(ctx context.Context, token *Token) error
	FindByID(ctx context.Context, id string) (*Token, error)
	FindByAccessToken(ctx context.Context, accessToken string) (*Token, error)
	List(ctx context.Context, page, pageSize int) (*Page[*Token], error)
	Update(ctx context.Context, id string, update *TokenUpdate) (*Token, error)
	Delete(ctx context.Context, id string) error
}

// ProjectRepository defines project data access operations
type ProjectRepository interface {
	Create(ctx context.Context, project *Project) error
	FindByID(ctx context.Context, id string) (*Project, error)
	List(ctx context.Context, page, pageSize int) (*Page[*Project], error)
	ListAll(ctx context.Context) ([]*Project, error)
	Update(ctx context.Context, project *Project) error
	Delete(ctx context.Context, id string) error
}

// SessionRepository defines session data access operations
type SessionRepository interface {
	Create(ctx context.Context, session *Session) error
	FindByID(ctx context.Context, sessionID string) (*Session, error)
	Delete(ctx context.Context, sessionID string) error
}

// AuthService defines sign-up/sign-in business logic
type AuthService interface {
	SignUp(ctx context.Context, name, email, password string) (*User, error)
	SignIn(ctx context.Context, email, password string) (*AuthResult, error)
	SignOut(ctx context.Context, sessionID string) error
}

// ProfileService defines operations on the caller's own user row
type ProfileService interface {
	Get(ctx context.Context, userID string) (*User, error)
	Update(ctx context.Context, userID string, update *ProfileUpdate) (*User, error)
}

// TokenService defines request-level token orchestration
type TokenService interface {
	List(ctx context.Context, page, pageSize int) (*Page[*Token], error)
	Create(ctx context.Context, create *TokenCreate) (*Token, error)
	Get(ctx context.Context, id string) (*Token, error)
	Update(ctx context.Context, id string, update *TokenUpdate) (*Token, error)
	Delete(ctx context.Context, id string) error
}

// ProjectService defines project orchestration including tree assembly
type ProjectService interface {
	List(ctx context.Context, page, pageSize int) (*Page[*Project], error)
	Tree(ctx context.Context) ([]*ProjectNode, error)
	Create(ctx context.Context, create *ProjectCreate) (*Project, error)
	Get(ctx context.Context, id string) (*Project, error)
	Update(ctx context.Context, id string, update *ProjectUpdate) (*Project, error)
	Delete(ctx context.Context, id string) error
}

// UserService defines the admin user listing
type UserService interface {
	List(ctx context.Context, page, pageSize int, search string) (*Page[*User], error)
}

// PasswordService defines password operations
type PasswordService interface {
	Hash(password string) (string, error)
	Verify(hashedPassword, password string) bool
}

// NotificationService defines outbound notification operations
type NotificationService interface {
	SendSMS(to, message string) error
}
