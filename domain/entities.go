package domain

import "time"

// Roles assignable to an account.
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// Status values shared by tokens and projects.
const (
	StatusDisabled = 0
	StatusEnabled  = 1
)

// User represents an account in the console
type User struct {
	ID            string
	Name          string
	Email         string
	EmailVerified bool
	Image         string
	CnName        string
	Alas          string
	Phone         *string
	Extra         map[string]any
	PasswordHash  string
	Role          string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// Token is an opaque access credential bound to one user. AccessToken is
// the secret itself; the validity window bounds are each independently
// optional.
type Token struct {
	ID          string
	UserID      string
	AccessToken string
	StartTime   *time.Time
	EndTime     *time.Time
	LastLoginAt *time.Time
	Remark      string
	Status      int
	Created     time.Time
	Modified    time.Time
}

// Project is a node in the project hierarchy. ParentID is nil for roots;
// Depth is derived from the parent chain.
type Project struct {
	ID       string
	Name     string
	Code     string
	ParentID *string
	Depth    int
	Status   int
	Created  time.Time
	Modified time.Time
}

// ProjectNode is a project plus its resolved children, used by the tree view.
type ProjectNode struct {
	Project
	Children []*ProjectNode
}

// Session is the ephemeral proof of authentication resolved per request.
// Role is captured at sign-in so authorization does not hit the user store
// on every request.
type Session struct {
	ID        string
	UserID    string
	Role      string
	ExpiresAt time.Time
	CreatedAt time.Time
}

// AuthResult is the outcome of a successful sign-in
type AuthResult struct {
	User      *User
	SessionID string
	ExpiresAt time.Time
}

// ProfileUpdate carries the fields a user may change on their own row.
// Optional fields are nil when the caller did not supply them.
type ProfileUpdate struct {
	Name   string
	CnName *string
	Alas   *string
	Phone  *string
	Extra  map[string]any
}

// TokenCreate carries the fields accepted when creating a token. ID and
// AccessToken are generated when blank.
type TokenCreate struct {
	ID          string
	UserID      string
	AccessToken string
	StartTime   *time.Time
	EndTime     *time.Time
	Remark      string
	Status      *int
}

// TokenUpdate carries the mutable token fields. ID, UserID and AccessToken
// are deliberately absent: they are immutable once created. Nil means leave
// unchanged; ClearStartTime/ClearEndTime drop a window bound.
type TokenUpdate struct {
	StartTime      *time.Time
	ClearStartTime bool
	EndTime        *time.Time
	ClearEndTime   bool
	LastLoginAt    *time.Time
	Remark         *string
	Status         *int
}

// ProjectCreate carries the fields accepted when creating a project.
type ProjectCreate struct {
	Name     string
	Code     string
	ParentID *string
	Status   *int
}

// ProjectUpdate carries the mutable project fields. Nil means leave
// unchanged; ClearParent detaches the project from its parent.
type ProjectUpdate struct {
	Name        *string
	Code        *string
	ParentID    *string
	ClearParent bool
	Status      *int
}

// Page is a paginated slice of results plus the unpaginated total.
type Page[T any] struct {
	Total    int64
	Page     int
	PageSize int
	Items    []T
}
