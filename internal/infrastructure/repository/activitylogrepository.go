package repository

import (
	"context"

	"gorm.io/gorm"

	"fixit/internal/domain/issue"
	"fixit/internal/infrastructure/persistence/mappers"
	"fixit/internal/infrastructure/persistence/models"
	"fixit/internal/shared/db"
	"fixit/internal/shared/errors"
)

// ActivityLogRepository appends audit entries. When ctx carries a transaction the entry joins it.
type ActivityLogRepository struct {
	db     *gorm.DB
	mapper mappers.IssueMapper
}

func NewActivityLogRepository(gormDB *gorm.DB) *ActivityLogRepository {
	return &ActivityLogRepository{
		db:     gormDB,
		mapper: mappers.NewIssueMapper(),
	}
}

func (r *ActivityLogRepository) Append(ctx context.Context, entry *issue.ActivityLog) error {
	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.Create(r.mapper.ActivityToModel(entry)).Error; err != nil {
		return errors.NewStorageError("record activity", err)
	}
	return nil
}

func (r *ActivityLogRepository) ListByIssue(ctx context.Context, issueID string) ([]*issue.ActivityLog, error) {
	var activityModels []models.ActivityLogModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Scopes(db.ForIssue(issueID), db.InsertionOrder()).Find(&activityModels).Error; err != nil {
		return nil, errors.NewStorageError("load activity", err)
	}

	entries := make([]*issue.ActivityLog, 0, len(activityModels))
	for i := range activityModels {
		entry, err := r.mapper.ActivityToDomain(&activityModels[i])
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}
	return entries, nil
}
