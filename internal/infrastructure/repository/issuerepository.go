package repository

import (
	"context"
	stderrors "errors"

	"gorm.io/gorm"

	"fixit/internal/domain/issue"
	vo "fixit/internal/domain/issue/valueobjects"
	"fixit/internal/domain/user"
	"fixit/internal/infrastructure/persistence/mappers"
	"fixit/internal/infrastructure/persistence/models"
	"fixit/internal/shared/db"
	"fixit/internal/shared/errors"
	"fixit/internal/shared/logger"
)

// IssueRepository is the single write path for issues, comments and photos. Each write and its
// activity entry share one transaction.
//
// Concurrent status changes on the same issue are last-write-wins: there is no version column.
type IssueRepository struct {
	db         *gorm.DB
	txMgr      *db.TransactionManager
	activities issue.ActivityLogRepository
	users      user.Repository
	mapper     mappers.IssueMapper
	logger     logger.Interface
}

func NewIssueRepository(
	gormDB *gorm.DB,
	activities issue.ActivityLogRepository,
	users user.Repository,
	logger logger.Interface,
) *IssueRepository {
	return &IssueRepository{
		db:         gormDB,
		txMgr:      db.NewTransactionManager(gormDB),
		activities: activities,
		users:      users,
		mapper:     mappers.NewIssueMapper(),
		logger:     logger,
	}
}

// Create inserts the issue, its CREATED entry, an ASSIGNED entry when it starts with an
// assignee, and each initial photo with its PHOTO_ADDED entry.
func (r *IssueRepository) Create(ctx context.Context, iss *issue.Issue, photos []*issue.Photo) error {
	err := r.txMgr.RunInTransaction(ctx, func(txCtx context.Context) error {
		if iss.AssignedTo() != nil {
			if _, err := r.requireWorker(txCtx, *iss.AssignedTo()); err != nil {
				return err
			}
		}

		if err := db.GetTxFromContext(txCtx, r.db).Create(r.mapper.ToModel(iss)).Error; err != nil {
			return errors.NewStorageError("create issue", err)
		}
		if err := r.activities.Append(txCtx, issue.NewCreatedActivity(iss)); err != nil {
			return err
		}

		if iss.AssignedTo() != nil {
			creator := issue.Actor{UserID: iss.CreatedBy(), Role: user.RoleManager}
			if err := r.activities.Append(txCtx, issue.NewAssignmentActivity(iss.ID(), creator, nil, iss.AssignedTo())); err != nil {
				return err
			}
		}

		for _, p := range photos {
			if p.IssueID() != iss.ID() {
				return errors.NewValidationError("Photo belongs to another issue", p.ID())
			}
			if err := r.insertPhoto(txCtx, p); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		r.logger.Errorw("failed to create issue", "issue_id", iss.ID(), "error", err)
		return wrapStorage("create issue", err)
	}

	return nil
}

// GetByID returns nil, nil when the issue does not exist
func (r *IssueRepository) GetByID(ctx context.Context, id string) (*issue.Issue, error) {
	var model models.IssueModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Where("sid = ?", id).First(&model).Error; err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, errors.NewStorageError("load issue", err)
	}

	return r.mapper.ToDomain(&model)
}

// List returns all issues in insertion order
func (r *IssueRepository) List(ctx context.Context) ([]*issue.Issue, error) {
	var issueModels []models.IssueModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Scopes(db.InsertionOrder()).Find(&issueModels).Error; err != nil {
		return nil, errors.NewStorageError("load issues", err)
	}

	return r.mapper.ToDomainList(issueModels)
}

// ChangeStatus applies the status policy to the stored issue and appends STATUS_CHANGED.
func (r *IssueRepository) ChangeStatus(ctx context.Context, issueID string, newStatus vo.IssueStatus, actor issue.Actor) (*issue.Issue, error) {
	var updated *issue.Issue
	err := r.txMgr.RunInTransaction(ctx, func(txCtx context.Context) error {
		iss, err := r.requireIssue(txCtx, issueID)
		if err != nil {
			return err
		}

		previous := iss.Status()
		if err := iss.ChangeStatus(actor, newStatus); err != nil {
			return err
		}
		if err := r.save(txCtx, iss); err != nil {
			return err
		}
		if err := r.activities.Append(txCtx, issue.NewStatusChangedActivity(iss.ID(), actor, previous, iss.Status())); err != nil {
			return err
		}

		updated = iss
		return nil
	})
	if err != nil {
		return nil, wrapStorage("update status", err)
	}

	r.logger.Infow("issue status changed", "issue_id", issueID, "status", newStatus, "user_id", actor.UserID)
	return updated, nil
}

// AssignWorker sets the assignee to workerID, or clears it when workerID is nil. Every call
// appends exactly one ASSIGNED or UNASSIGNED entry.
func (r *IssueRepository) AssignWorker(ctx context.Context, issueID string, workerID *string, actor issue.Actor) (*issue.Issue, error) {
	if err := issue.CheckAssign(actor); err != nil {
		return nil, err
	}

	var updated *issue.Issue
	err := r.txMgr.RunInTransaction(ctx, func(txCtx context.Context) error {
		iss, err := r.requireIssue(txCtx, issueID)
		if err != nil {
			return err
		}

		var worker *user.User
		if workerID != nil {
			if worker, err = r.requireWorker(txCtx, *workerID); err != nil {
				return err
			}
		}

		previous, err := iss.Assign(actor, worker)
		if err != nil {
			return err
		}
		if err := r.save(txCtx, iss); err != nil {
			return err
		}
		if err := r.activities.Append(txCtx, issue.NewAssignmentActivity(iss.ID(), actor, previous, iss.AssignedTo())); err != nil {
			return err
		}

		updated = iss
		return nil
	})
	if err != nil {
		return nil, wrapStorage("assign worker", err)
	}

	return updated, nil
}

func (r *IssueRepository) AddComment(ctx context.Context, comment *issue.Comment) error {
	err := r.txMgr.RunInTransaction(ctx, func(txCtx context.Context) error {
		if _, err := r.requireIssue(txCtx, comment.IssueID()); err != nil {
			return err
		}
		if err := db.GetTxFromContext(txCtx, r.db).Create(r.mapper.CommentToModel(comment)).Error; err != nil {
			return errors.NewStorageError("add comment", err)
		}
		return r.activities.Append(txCtx, issue.NewCommentAddedActivity(comment))
	})
	return wrapStorage("add comment", err)
}

// DeleteComment removes a comment of issueID. Only the author or a manager may do so.
func (r *IssueRepository) DeleteComment(ctx context.Context, commentID, issueID string, actor issue.Actor) error {
	err := r.txMgr.RunInTransaction(ctx, func(txCtx context.Context) error {
		tx := db.GetTxFromContext(txCtx, r.db)

		var model models.IssueCommentModel
		if err := tx.Where("sid = ? AND issue_id = ?", commentID, issueID).First(&model).Error; err != nil {
			if stderrors.Is(err, gorm.ErrRecordNotFound) {
				return errors.NewNotFoundError("Comment not found", commentID)
			}
			return errors.NewStorageError("delete comment", err)
		}

		comment, err := r.mapper.CommentToDomain(&model)
		if err != nil {
			return err
		}
		if err := issue.CheckDeleteComment(actor, comment); err != nil {
			return err
		}

		if err := tx.Delete(&models.IssueCommentModel{}, model.ID).Error; err != nil {
			return errors.NewStorageError("delete comment", err)
		}
		return r.activities.Append(txCtx, issue.NewCommentDeletedActivity(comment, actor))
	})
	return wrapStorage("delete comment", err)
}

// ListComments returns the comments of an issue, oldest first
func (r *IssueRepository) ListComments(ctx context.Context, issueID string) ([]*issue.Comment, error) {
	var commentModels []models.IssueCommentModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Scopes(db.ForIssue(issueID), db.InsertionOrder()).Find(&commentModels).Error; err != nil {
		return nil, errors.NewStorageError("load comments", err)
	}

	comments := make([]*issue.Comment, 0, len(commentModels))
	for i := range commentModels {
		c, err := r.mapper.CommentToDomain(&commentModels[i])
		if err != nil {
			return nil, err
		}
		comments = append(comments, c)
	}
	return comments, nil
}

func (r *IssueRepository) AddPhoto(ctx context.Context, photo *issue.Photo) error {
	err := r.txMgr.RunInTransaction(ctx, func(txCtx context.Context) error {
		if _, err := r.requireIssue(txCtx, photo.IssueID()); err != nil {
			return err
		}
		return r.insertPhoto(txCtx, photo)
	})
	return wrapStorage("add photo", err)
}

// DeletePhoto removes a photo of issueID. Only the uploader or a manager may do so.
func (r *IssueRepository) DeletePhoto(ctx context.Context, photoID, issueID string, actor issue.Actor) error {
	err := r.txMgr.RunInTransaction(ctx, func(txCtx context.Context) error {
		tx := db.GetTxFromContext(txCtx, r.db)

		var model models.IssuePhotoModel
		if err := tx.Where("sid = ? AND issue_id = ?", photoID, issueID).First(&model).Error; err != nil {
			if stderrors.Is(err, gorm.ErrRecordNotFound) {
				return errors.NewNotFoundError("Photo not found", photoID)
			}
			return errors.NewStorageError("delete photo", err)
		}

		photo, err := r.mapper.PhotoToDomain(&model)
		if err != nil {
			return err
		}
		if err := issue.CheckDeletePhoto(actor, photo); err != nil {
			return err
		}

		if err := tx.Delete(&models.IssuePhotoModel{}, model.ID).Error; err != nil {
			return errors.NewStorageError("delete photo", err)
		}
		return r.activities.Append(txCtx, issue.NewPhotoDeletedActivity(photo, actor))
	})
	return wrapStorage("delete photo", err)
}

// ListPhotos returns the photos of an issue, oldest first
func (r *IssueRepository) ListPhotos(ctx context.Context, issueID string) ([]*issue.Photo, error) {
	var photoModels []models.IssuePhotoModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Scopes(db.ForIssue(issueID), db.InsertionOrder()).Find(&photoModels).Error; err != nil {
		return nil, errors.NewStorageError("load photos", err)
	}

	photos := make([]*issue.Photo, 0, len(photoModels))
	for i := range photoModels {
		p, err := r.mapper.PhotoToDomain(&photoModels[i])
		if err != nil {
			return nil, err
		}
		photos = append(photos, p)
	}
	return photos, nil
}

func (r *IssueRepository) CountPhotos(ctx context.Context) (int64, error) {
	var count int64
	if err := db.GetTxFromContext(ctx, r.db).Model(&models.IssuePhotoModel{}).Count(&count).Error; err != nil {
		return 0, errors.NewStorageError("count photos", err)
	}
	return count, nil
}

func (r *IssueRepository) CountComments(ctx context.Context) (int64, error) {
	var count int64
	if err := db.GetTxFromContext(ctx, r.db).Model(&models.IssueCommentModel{}).Count(&count).Error; err != nil {
		return 0, errors.NewStorageError("count comments", err)
	}
	return count, nil
}

func (r *IssueRepository) requireIssue(ctx context.Context, issueID string) (*issue.Issue, error) {
	iss, err := r.GetByID(ctx, issueID)
	if err != nil {
		return nil, err
	}
	if iss == nil {
		return nil, errors.NewNotFoundError("Issue not found", issueID)
	}
	return iss, nil
}

// requireWorker loads workerID and checks it is a worker.
func (r *IssueRepository) requireWorker(ctx context.Context, workerID string) (*user.User, error) {
	worker, err := r.users.GetByID(ctx, workerID)
	if err != nil {
		return nil, err
	}
	if worker == nil {
		return nil, errors.NewNotFoundError("Worker not found", workerID)
	}
	if !worker.IsWorker() {
		return nil, errors.NewValidationError("Only workers can be assigned to issues", workerID)
	}
	return worker, nil
}

func (r *IssueRepository) insertPhoto(ctx context.Context, photo *issue.Photo) error {
	if err := db.GetTxFromContext(ctx, r.db).Create(r.mapper.PhotoToModel(photo)).Error; err != nil {
		return errors.NewStorageError("add photo", err)
	}
	return r.activities.Append(ctx, issue.NewPhotoAddedActivity(photo))
}

// save writes the mutable columns of iss. Nil pointers are written as NULL.
func (r *IssueRepository) save(ctx context.Context, iss *issue.Issue) error {
	model := r.mapper.ToModel(iss)
	result := db.GetTxFromContext(ctx, r.db).
		Model(&models.IssueModel{}).
		Where("sid = ?", model.SID).
		Updates(map[string]interface{}{
			"status":       model.Status,
			"assigned_to":  model.AssignedTo,
			"completed_at": model.CompletedAt,
			"updated_at":   model.UpdatedAt,
		})
	if result.Error != nil {
		return errors.NewStorageError("update issue", result.Error)
	}
	return nil
}
