package repositories

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/mautops/next-better-auth/domain"
)

// UserRepositoryImpl implements domain.UserRepository using GORM
type UserRepositoryImpl struct {
	db *gorm.DB
}

// DBUser represents the database model for User (with GORM tags)
type DBUser struct {
	ID            string         `gorm:"primaryKey;size:64"`
	Name          string         `gorm:"size:255"`
	Email         string         `gorm:"uniqueIndex;size:255"`
	EmailVerified bool           `gorm:"column:email_verified"`
	Image         string         `gorm:"size:512"`
	CnName        string         `gorm:"column:cn_name;size:255"`
	Alas          string         `gorm:"size:255"`
	Phone         *string        `gorm:"uniqueIndex;size:32"`
	Extra         map[string]any `gorm:"serializer:json"`
	PasswordHash  string         `gorm:"column:password"`
	Role          string         `gorm:"index;size:64"`
	CreatedAt     time.Time      `gorm:"index"`
	UpdatedAt     time.Time
}

// TableName returns the table name for GORM
func (DBUser) TableName() string {
	return "users"
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *gorm.DB) domain.UserRepository {
	return &UserRepositoryImpl{db: db}
}

// Create implements domain.UserRepository. A duplicate key at insert time
// can only be the email index, mapped to domain.ErrEmailTaken.
func (r *UserRepositoryImpl) Create(ctx context.Context, user *domain.User) error {
	dbUser := r.domainToDB(user)
	if err := r.db.WithContext(ctx).Create(dbUser).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domain.ErrEmailTaken
		}
		return err
	}
	user.CreatedAt = dbUser.CreatedAt
	user.UpdatedAt = dbUser.UpdatedAt
	return nil
}

// FindByID implements domain.UserRepository
func (r *UserRepositoryImpl) FindByID(ctx context.Context, id string) (*domain.User, error) {
	var dbUser DBUser
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&dbUser).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	return r.dbToDomain(&dbUser), nil
}

// FindByEmail implements domain.UserRepository
func (r *UserRepositoryImpl) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	var dbUser DBUser
	err := r.db.WithContext(ctx).Where("email = ?", email).First(&dbUser).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	return r.dbToDomain(&dbUser), nil
}

// FindByPhone implements domain.UserRepository
func (r *UserRepositoryImpl) FindByPhone(ctx context.Context, phone, excludeID string) (*domain.User, error) {
	query := r.db.WithContext(ctx).Where("phone = ?", phone)
	if excludeID != "" {
		query = query.Where("id <> ?", excludeID)
	}

	var dbUser DBUser
	if err := query.First(&dbUser).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	return r.dbToDomain(&dbUser), nil
}

// Update implements domain.UserRepository. A duplicate key at write time
// means the phone index lost the race to another writer, mapped to
// domain.ErrPhoneTaken; email never changes through this path.
func (r *UserRepositoryImpl) Update(ctx context.Context, user *domain.User) error {
	dbUser := r.domainToDB(user)
	if err := r.db.WithContext(ctx).Save(dbUser).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domain.ErrPhoneTaken
		}
		return err
	}
	user.UpdatedAt = dbUser.UpdatedAt
	return nil
}

// List implements domain.UserRepository. Search matches name, email and
// cn_name; ordering is stable by creation time.
func (r *UserRepositoryImpl) List(ctx context.Context, page, pageSize int, search string) (*domain.Page[*domain.User], error) {
	query := r.db.WithContext(ctx).Model(&DBUser{})
	if search != "" {
		like := "%" + search + "%"
		query = query.Where("name LIKE ? OR email LIKE ? OR cn_name LIKE ?", like, like, like)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, err
	}

	var dbUsers []DBUser
	err := query.Order("created_at").Offset((page - 1) * pageSize).Limit(pageSize).Find(&dbUsers).Error
	if err != nil {
		return nil, err
	}

	users := make([]*domain.User, 0, len(dbUsers))
	for i := range dbUsers {
		users = append(users, r.dbToDomain(&dbUsers[i]))
	}

	return &domain.Page[*domain.User]{
		Total:    total,
		Page:     page,
		PageSize: pageSize,
		Items:    users,
	}, nil
}

// Count implements domain.UserRepository
func (r *UserRepositoryImpl) Count(ctx context.Context) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).Model(&DBUser{}).Count(&total).Error
	return total, err
}

// domainToDB converts domain user to database user
func (r *UserRepositoryImpl) domainToDB(user *domain.User) *DBUser {
	return &DBUser{
		ID:            user.ID,
		Name:          user.Name,
		Email:         user.Email,
		EmailVerified: user.EmailVerified,
		Image:         user.Image,
		CnName:        user.CnName,
		Alas:          user.Alas,
		Phone:         user.Phone,
		Extra:         user.Extra,
		PasswordHash:  user.PasswordHash,
		Role:          user.Role,
		CreatedAt:     user.CreatedAt,
		UpdatedAt:     user.UpdatedAt,
	}
}

// dbToDomain converts database user to domain user
func (r *UserRepositoryImpl) dbToDomain(dbUser *DBUser) *domain.User {
	extra := dbUser.Extra
	if extra == nil {
		extra = map[string]any{}
	}
	return &domain.User{
		ID:            dbUser.ID,
		Name:          dbUser.Name,
		Email:         dbUser.Email,
		EmailVerified: dbUser.EmailVerified,
		Image:         dbUser.Image,
		CnName:        dbUser.CnName,
		Alas:          dbUser.Alas,
		Phone:         dbUser.Phone,
		Extra:         extra,
		PasswordHash:  dbUser.PasswordHash,
		Role:          dbUser.Role,
		CreatedAt:     dbUser.CreatedAt,
		UpdatedAt:     dbUser.UpdatedAt,
	}
}
