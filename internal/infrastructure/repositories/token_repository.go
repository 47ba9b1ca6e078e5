package repositories

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/mautops/next-better-auth/domain"
)

// TokenRepositoryImpl implements domain.TokenRepository using GORM
type TokenRepositoryImpl struct {
	db *gorm.DB
}

// DBToken represents the database model for Token (with GORM tags)
type DBToken struct {
	ID          string     `gorm:"primaryKey;size:64"`
	UserID      string     `gorm:"index;size:64"`
	AccessToken string     `gorm:"uniqueIndex;size:128"`
	StartTime   *time.Time `gorm:"column:start_time"`
	EndTime     *time.Time `gorm:"column:end_time"`
	LastLoginAt *time.Time `gorm:"column:last_login_at"`
	Remark      string     `gorm:"size:512"`
	Status      int
	Created     time.Time  `gorm:"autoCreateTime;index"`
	Modified    time.Time  `gorm:"autoUpdateTime"`
}

// TableName returns the table name for GORM
func (DBToken) TableName() string {
	return "tokens"
}

// NewTokenRepository creates a new token repository
func NewTokenRepository(db *gorm.DB) domain.TokenRepository {
	return &TokenRepositoryImpl{db: db}
}

// Create implements domain.TokenRepository. The unique index on
// access_token is the race-safe uniqueness guarantee; a duplicate key maps
// to domain.ErrAccessTokenTaken.
func (r *TokenRepositoryImpl) Create(ctx context.Context, token *domain.Token) error {
	dbToken := r.domainToDB(token)
	if err := r.db.WithContext(ctx).Create(dbToken).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domain.ErrAccessTokenTaken
		}
		return err
	}
	token.Created = dbToken.Created
	token.Modified = dbToken.Modified
	return nil
}

// FindByID implements domain.TokenRepository
func (r *TokenRepositoryImpl) FindByID(ctx context.Context, id string) (*domain.Token, error) {
	var dbToken DBToken
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&dbToken).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrTokenNotFound
		}
		return nil, err
	}
	return r.dbToDomain(&dbToken), nil
}

// FindByAccessToken implements domain.TokenRepository
func (r *TokenRepositoryImpl) FindByAccessToken(ctx context.Context, accessToken string) (*domain.Token, error) {
	var dbToken DBToken
	err := r.db.WithContext(ctx).Where("access_token = ?", accessToken).First(&dbToken).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrTokenNotFound
		}
		return nil, err
	}
	return r.dbToDomain(&dbToken), nil
}

// List implements domain.TokenRepository. Tokens are returned in creation
// order.
func (r *TokenRepositoryImpl) List(ctx context.Context, page, pageSize int) (*domain.Page[*domain.Token], error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&DBToken{}).Count(&total).Error; err != nil {
		return nil, err
	}

	var dbTokens []DBToken
	err := r.db.WithContext(ctx).
		Order("created").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&dbTokens).Error
	if err != nil {
		return nil, err
	}

	tokens := make([]*domain.Token, 0, len(dbTokens))
	for i := range dbTokens {
		tokens = append(tokens, r.dbToDomain(&dbTokens[i]))
	}

	return &domain.Page[*domain.Token]{
		Total:    total,
		Page:     page,
		PageSize: pageSize,
		Items:    tokens,
	}, nil
}

// Update implements domain.TokenRepository. Only the columns named by
// domain.TokenUpdate are ever written; id, access_token and user_id cannot
// change through this path no matter what the caller merged upstream.
func (r *TokenRepositoryImpl) Update(ctx context.Context, id string, update *domain.TokenUpdate) (*domain.Token, error) {
	values := map[string]any{}
	if update.StartTime != nil {
		values["start_time"] = update.StartTime
	} else if update.ClearStartTime {
		values["start_time"] = nil
	}
	if update.EndTime != nil {
		values["end_time"] = update.EndTime
	} else if update.ClearEndTime {
		values["end_time"] = nil
	}
	if update.LastLoginAt != nil {
		values["last_login_at"] = update.LastLoginAt
	}
	if update.Remark != nil {
		values["remark"] = *update.Remark
	}
	if update.Status != nil {
		values["status"] = *update.Status
	}

	if len(values) > 0 {
		values["modified"] = time.Now()
		result := r.db.WithContext(ctx).Model(&DBToken{}).Where("id = ?", id).Updates(values)
		if result.Error != nil {
			return nil, result.Error
		}
		if result.RowsAffected == 0 {
			return nil, domain.ErrTokenNotFound
		}
	}

	return r.FindByID(ctx, id)
}

// Delete implements domain.TokenRepository. Deleting a token never touches
// the owning user.
func (r *TokenRepositoryImpl) Delete(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&DBToken{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrTokenNotFound
	}
	return nil
}

// domainToDB converts domain token to database token
func (r *TokenRepositoryImpl) domainToDB(token *domain.Token) *DBToken {
	return &DBToken{
		ID:          token.ID,
		UserID:      token.UserID,
		AccessToken: token.AccessToken,
		StartTime:   token.StartTime,
		EndTime:     token.EndTime,
		LastLoginAt: token.LastLoginAt,
		Remark:      token.Remark,
		Status:      token.Status,
	}
}

// dbToDomain converts database token to domain token
func (r *TokenRepositoryImpl) dbToDomain(dbToken *DBToken) *domain.Token {
	return &domain.Token{
		ID:          dbToken.ID,
		UserID:      dbToken.UserID,
		AccessToken: dbToken.AccessToken,
		StartTime:   dbToken.StartTime,
		EndTime:     dbToken.EndTime,
		LastLoginAt: dbToken.LastLoginAt,
		Remark:      dbToken.Remark,
		Status:      dbToken.Status,
		Created:     dbToken.Created,
		Modified:    dbToken.Modified,
	}
}
