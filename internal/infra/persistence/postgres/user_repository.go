// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"pantry/internal/domain/entity"
	domainerrors "pantry/internal/domain/errors"
	"pantry/internal/domain/repository"
	"pantry/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/plugin/dbresolver"
)

// userRepository implements the repository.UserRepository interface using GORM.
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository is the constructor for userRepository.
func NewUserRepository(db *gorm.DB) repository.UserRepository {
	return &userRepository{
		db: db,
	}
}

// FindByID retrieves a single user by their unique ID.
func (repo *userRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	return repo.findOne(repo.db.WithContext(ctx), "id = ?", id)
}

// FindByIDFromPrimary retrieves a user bypassing read replicas, so a freshly
// deactivated account cannot authenticate through a lagging replica.
func (repo *userRepository) FindByIDFromPrimary(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	return repo.findOne(repo.db.WithContext(ctx).Clauses(dbresolver.Write), "id = ?", id)
}

// FindByEmail retrieves a single user by their email address.
func (repo *userRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	return repo.findOne(repo.db.WithContext(ctx).Clauses(dbresolver.Write), "email = ?", email)
}

func (repo *userRepository) findOne(db *gorm.DB, query string, args ...any) (*entity.User, error) {
	var userM model.UserModel

	if err := db.Where(query, args...).First(&userM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user")
	}

	return toUserDomain(&userM), nil
}

// Create persists a new user entity.
func (repo *userRepository) Create(ctx context.Context, user *entity.User) error {
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	userM := fromUserDomain(user)

	if err := repo.db.WithContext(ctx).Create(userM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateEmail
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WithDetails("name, email and role are required")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create user")
	}

	user.CreatedAt = userM.CreatedAt
	user.UpdatedAt = userM.UpdatedAt

	return nil
}

// Update modifies name, email, role and active flag of an existing user.
func (repo *userRepository) Update(ctx context.Context, user *entity.User) error {
	result := repo.db.WithContext(ctx).
		Model(&model.UserModel{}).
		Where("id = ?", user.ID).
		Updates(map[string]any{
			"name":      user.Name,
			"email":     user.Email,
			"role":      string(user.Role),
			"is_active": user.IsActive,
		})

	if result.Error != nil {
		if isUniqueConstraintViolation(result.Error) {
			return repository.ErrDuplicateEmail
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update user")
	}

	if result.RowsAffected == 0 {
		return repository.ErrUserNotFound
	}

	return nil
}

// List returns one page of users matching the filter, newest first.
func (repo *userRepository) List(ctx context.Context, filter entity.UserFilter, page entity.PageRequest) ([]*entity.User, int64, error) {
	var total int64
	if err := repo.scoped(ctx, filter).Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to count users")
	}

	var userModels []*model.UserModel
	if err := repo.scoped(ctx, filter).
		Order("created_at DESC").
		Offset(page.Offset()).
		Limit(page.Size).
		Find(&userModels).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to list users")
	}

	users := make([]*entity.User, 0, len(userModels))
	for _, userM := range userModels {
		users = append(users, toUserDomain(userM))
	}

	return users, total, nil
}

// Count returns the number of users matching the filter.
func (repo *userRepository) Count(ctx context.Context, filter entity.UserFilter) (int64, error) {
	var total int64
	if err := repo.scoped(ctx, filter).Count(&total).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count users")
	}

	return total, nil
}

func (repo *userRepository) scoped(ctx context.Context, filter entity.UserFilter) *gorm.DB {
	db := repo.db.WithContext(ctx).Model(&model.UserModel{})
	if filter.Role != nil {
		db = db.Where("role = ?", string(*filter.Role))
	}
	if filter.IsActive != nil {
		db = db.Where("is_active = ?", *filter.IsActive)
	}

	return db
}

func toUserDomain(userM *model.UserModel) *entity.User {
	return &entity.User{
		ID:        userM.ID,
		Email:     userM.Email,
		Name:      userM.Name,
		Role:      entity.Role(userM.Role),
		IsActive:  userM.IsActive,
		CreatedAt: userM.CreatedAt,
		UpdatedAt: userM.UpdatedAt,
	}
}

func fromUserDomain(user *entity.User) *model.UserModel {
	return &model.UserModel{
		ID:        user.ID,
		Email:     user.Email,
		Name:      user.Name,
		Role:      string(user.Role),
		IsActive:  user.IsActive,
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}
}
