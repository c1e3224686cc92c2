package repository

import (
	"context"
	stderrors "errors"

	"gorm.io/gorm"

	"fixit/internal/domain/user"
	"fixit/internal/infrastructure/persistence/mappers"
	"fixit/internal/infrastructure/persistence/models"
	"fixit/internal/shared/db"
	"fixit/internal/shared/errors"
	"fixit/internal/shared/logger"
)

// UserRepository implements user.Repository with gorm
type UserRepository struct {
	db     *gorm.DB
	txMgr  *db.TransactionManager
	mapper mappers.UserMapper
	logger logger.Interface
}

// NewUserRepository creates a new user repository
func NewUserRepository(gormDB *gorm.DB, logger logger.Interface) *UserRepository {
	return &UserRepository{
		db:     gormDB,
		txMgr:  db.NewTransactionManager(gormDB),
		mapper: mappers.NewUserMapper(),
		logger: logger,
	}
}

// Create inserts a user. A duplicate id is reported as a conflict.
func (r *UserRepository) Create(ctx context.Context, u *user.User) error {
	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.Create(r.mapper.ToModel(u)).Error; err != nil {
		if errors.IsDuplicateError(err) {
			return errors.NewConflictError("User already exists", u.ID())
		}
		r.logger.Errorw("failed to create user in database", "user_id", u.ID(), "error", err)
		return errors.NewStorageError("add worker", err)
	}
	return nil
}

// GetByID returns nil, nil when the user does not exist
func (r *UserRepository) GetByID(ctx context.Context, id string) (*user.User, error) {
	var model models.UserModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Where("sid = ?", id).First(&model).Error; err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, errors.NewStorageError("load user", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *UserRepository) List(ctx context.Context) ([]*user.User, error) {
	return r.list(ctx, "load users", nil)
}

func (r *UserRepository) ListWorkers(ctx context.Context) ([]*user.User, error) {
	role := user.RoleWorker
	return r.list(ctx, "load workers", &role)
}

func (r *UserRepository) list(ctx context.Context, op string, role *user.Role) ([]*user.User, error) {
	query := db.GetTxFromContext(ctx, r.db).Model(&models.UserModel{})
	if role != nil {
		query = query.Where("role = ?", role.String())
	}

	var userModels []models.UserModel
	if err := query.Order("name ASC").Order("id ASC").Find(&userModels).Error; err != nil {
		return nil, errors.NewStorageError(op, err)
	}

	return r.mapper.ToDomainList(userModels)
}

func (r *UserRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := db.GetTxFromContext(ctx, r.db).Model(&models.UserModel{}).Count(&count).Error; err != nil {
		return 0, errors.NewStorageError("count users", err)
	}
	return count, nil
}

// SeedDefaultUsers inserts users only into an empty table. The count and the insert share one
// transaction, so running it twice inserts nothing the second time.
func (r *UserRepository) SeedDefaultUsers(ctx context.Context, users []*user.User) (int, error) {
	inserted := 0
	err := r.txMgr.RunInTransaction(ctx, func(txCtx context.Context) error {
		count, err := r.Count(txCtx)
		if err != nil {
			return err
		}
		if count > 0 || len(users) == 0 {
			return nil
		}

		userModels := make([]*models.UserModel, 0, len(users))
		for _, u := range users {
			userModels = append(userModels, r.mapper.ToModel(u))
		}
		if err := db.GetTxFromContext(txCtx, r.db).Create(&userModels).Error; err != nil {
			return errors.NewStorageError("seed users", err)
		}
		inserted = len(userModels)
		return nil
	})
	if err != nil {
		return 0, wrapStorage("seed users", err)
	}

	if inserted > 0 {
		r.logger.Infow("default users seeded", "count", inserted)
	}
	return inserted, nil
}
