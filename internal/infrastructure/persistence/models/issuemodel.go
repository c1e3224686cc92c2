package models

import "fixit/internal/shared/constants"

// IssueModel stores issues. References to users hold the user's public id.
type IssueModel struct {
	ID          uint    `gorm:"primaryKey"`
	SID         string  `gorm:"column:sid;not null;size:64;uniqueIndex:idx_issues_sid"`
	Description string  `gorm:"type:text;not null"`
	FlatNumber  string  `gorm:"size:10;not null;index"`
	Status      string  `gorm:"size:20;not null;index"`
	Priority    string  `gorm:"size:20;not null;index"`
	CreatedBy   string  `gorm:"size:64;not null"`
	AssignedTo  *string `gorm:"size:64;index"`
	DueDate     *int64  `gorm:"index"`
	CompletedAt *int64
	CreatedAt   int64 `gorm:"autoCreateTime:milli;not null"`
	UpdatedAt   int64 `gorm:"autoUpdateTime:milli;not null"`

	// Note: No foreign key constraints or associations.
	// All relationships are managed by application business logic.
}

func (IssueModel) TableName() string {
	return constants.TableIssues
}

type IssueCommentModel struct {
	ID        uint   `gorm:"primaryKey"`
	SID       string `gorm:"column:sid;not null;size:64;uniqueIndex:idx_issue_comments_sid"`
	IssueID   string `gorm:"size:64;not null;index"`
	UserID    string `gorm:"size:64;not null"`
	Text      string `gorm:"type:text;not null"`
	CreatedAt int64  `gorm:"autoCreateTime:milli;not null"`
}

func (IssueCommentModel) TableName() string {
	return constants.TableIssueComments
}

type IssuePhotoModel struct {
	ID         uint   `gorm:"primaryKey"`
	SID        string `gorm:"column:sid;not null;size:64;uniqueIndex:idx_issue_photos_sid"`
	IssueID    string `gorm:"size:64;not null;index"`
	PhotoPath  string `gorm:"size:1024;not null"`
	UploadedBy string `gorm:"size:64;not null"`
	CreatedAt  int64  `gorm:"autoCreateTime:milli;not null"`
}

func (IssuePhotoModel) TableName() string {
	return constants.TableIssuePhotos
}

// ActivityLogModel is append-only.
type ActivityLogModel struct {
	ID           uint    `gorm:"primaryKey"`
	SID          string  `gorm:"column:sid;not null;size:64;uniqueIndex:idx_activity_logs_sid"`
	IssueID      string  `gorm:"size:64;not null;index"`
	UserID       string  `gorm:"size:64;not null"`
	ActivityType string  `gorm:"size:30;not null"`
	OldValue     *string `gorm:"size:255"`
	NewValue     *string `gorm:"size:255"`
	CreatedAt    int64   `gorm:"autoCreateTime:milli;not null"`
}

func (ActivityLogModel) TableName() string {
	return constants.TableActivityLogs
}

// AllModels lists every table owned by the application, in creation order.
func AllModels() []interface{} {
	return []interface{}{
		&UserModel{},
		&IssueModel{},
		&IssueCommentModel{},
		&IssuePhotoModel{},
		&ActivityLogModel{},
	}
}
