package repositories

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/mautops/next-better-auth/domain"
)

// ProjectRepositoryImpl implements domain.ProjectRepository using GORM
type ProjectRepositoryImpl struct {
	db *gorm.DB
}

// DBProject represents the database model for Project (with GORM tags)
type DBProject struct {
	ID       string    `gorm:"primaryKey;size:64"`
	Name     string    `gorm:"size:255"`
	Code     string    `gorm:"uniqueIndex;size:128"`
	ParentID *string   `gorm:"column:parent_id;index;size:64"`
	Depth    int
	Status   int
	Created  time.Time `gorm:"autoCreateTime;index"`
	Modified time.Time `gorm:"autoUpdateTime"`
}

// TableName returns the table name for GORM
func (DBProject) TableName() string {
	return "projects"
}

// NewProjectRepository creates a new project repository
func NewProjectRepository(db *gorm.DB) domain.ProjectRepository {
	return &ProjectRepositoryImpl{db: db}
}

// Create implements domain.ProjectRepository. A duplicate key means the
// code index, mapped to domain.ErrProjectCodeTaken.
func (r *ProjectRepositoryImpl) Create(ctx context.Context, project *domain.Project) error {
	dbProject := r.domainToDB(project)
	if err := r.db.WithContext(ctx).Create(dbProject).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domain.ErrProjectCodeTaken
		}
		return err
	}
	project.Created = dbProject.Created
	project.Modified = dbProject.Modified
	return nil
}

// FindByID implements domain.ProjectRepository
func (r *ProjectRepositoryImpl) FindByID(ctx context.Context, id string) (*domain.Project, error) {
	var dbProject DBProject
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&dbProject).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrProjectNotFound
		}
		return nil, err
	}
	return r.dbToDomain(&dbProject), nil
}

// List implements domain.ProjectRepository
func (r *ProjectRepositoryImpl) List(ctx context.Context, page, pageSize int) (*domain.Page[*domain.Project], error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&DBProject{}).Count(&total).Error; err != nil {
		return nil, err
	}

	var dbProjects []DBProject
	err := r.db.WithContext(ctx).
		Order("created").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&dbProjects).Error
	if err != nil {
		return nil, err
	}

	projects := make([]*domain.Project, 0, len(dbProjects))
	for i := range dbProjects {
		projects = append(projects, r.dbToDomain(&dbProjects[i]))
	}

	return &domain.Page[*domain.Project]{
		Total:    total,
		Page:     page,
		PageSize: pageSize,
		Items:    projects,
	}, nil
}

// ListAll implements domain.ProjectRepository; used for tree assembly and
// ancestor walks.
func (r *ProjectRepositoryImpl) ListAll(ctx context.Context) ([]*domain.Project, error) {
	var dbProjects []DBProject
	if err := r.db.WithContext(ctx).Order("created").Find(&dbProjects).Error; err != nil {
		return nil, err
	}

	projects := make([]*domain.Project, 0, len(dbProjects))
	for i := range dbProjects {
		projects = append(projects, r.dbToDomain(&dbProjects[i]))
	}
	return projects, nil
}

// Update implements domain.ProjectRepository. Save writes the full row so
// a detached parent (nil ParentID) persists as NULL.
func (r *ProjectRepositoryImpl) Update(ctx context.Context, project *domain.Project) error {
	dbProject := r.domainToDB(project)
	dbProject.Created = project.Created
	if err := r.db.WithContext(ctx).Save(dbProject).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domain.ErrProjectCodeTaken
		}
		return err
	}
	project.Modified = dbProject.Modified
	return nil
}

// Delete implements domain.ProjectRepository
func (r *ProjectRepositoryImpl) Delete(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&DBProject{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrProjectNotFound
	}
	return nil
}

// domainToDB converts domain project to database project
func (r *ProjectRepositoryImpl) domainToDB(project *domain.Project) *DBProject {
	return &DBProject{
		ID:       project.ID,
		Name:     project.Name,
		Code:     project.Code,
		ParentID: project.ParentID,
		Depth:    project.Depth,
		Status:   project.Status,
	}
}

// dbToDomain converts database project to domain project
func (r *ProjectRepositoryImpl) dbToDomain(dbProject *DBProject) *domain.Project {
	return &domain.Project{
		ID:       dbProject.ID,
		Name:     dbProject.Name,
		Code:     dbProject.Code,
		ParentID: dbProject.ParentID,
		Depth:    dbProject.Depth,
		Status:   dbProject.Status,
		Created:  dbProject.Created,
		Modified: dbProject.Modified,
	}
}
