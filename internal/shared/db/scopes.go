package db

import (
	"gorm.io/gorm"
)

// InsertionOrder orders rows by their auto-increment surrogate key, oldest first.
//
//	tx.Scopes(db.InsertionOrder()).Find(&rows)
func InsertionOrder() func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Order("id ASC")
	}
}

// ForIssue restricts a query on a child table (comments, photos, activity) to one issue.
func ForIssue(issueID string) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("issue_id = ?", issueID)
	}
}
