package models

import "fixit/internal/shared/constants"

// UserModel stores application users. SID is the public "user-<uuid>" id.
type UserModel struct {
	ID        uint   `gorm:"primaryKey"`
	SID       string `gorm:"column:sid;not null;size:64;uniqueIndex:idx_users_sid"`
	Name      string `gorm:"size:100;not null;index"`
	Role      string `gorm:"size:20;not null;index"`
	CreatedAt int64  `gorm:"autoCreateTime:milli;not null"`
}

func (UserModel) TableName() string {
	return constants.TableUsers
}
