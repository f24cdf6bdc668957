package models

import (
	"strings"

	"github.com/fintrack-ph/backend/internal/types"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Notification is a message or reminder for the user.
//
// RelatedID is a soft reference, the referenced record may not exist.
type Notification struct {
	DefaultModel
	UserID       uuid.UUID `gorm:"type:varchar(36);not null;index"`
	User         User      `gorm:"constraint:OnDelete:CASCADE"`
	Title        string    `gorm:"not null"`
	Message      string    `gorm:"not null"`
	Type         string    `gorm:"type:varchar(32);not null;index"`
	IsRead       bool      `gorm:"not null;default:false;index"`
	ReminderDate *types.Date
	RelatedID    *uuid.UUID `gorm:"type:varchar(36)"`
	RelatedType  string     `gorm:"type:varchar(32)"`
}

func (n *Notification) BeforeSave(_ *gorm.DB) error {
	n.Title = strings.TrimSpace(n.Title)
	n.Message = strings.TrimSpace(n.Message)
	n.Type = strings.TrimSpace(n.Type)
	n.RelatedType = strings.TrimSpace(n.RelatedType)

	if n.RelatedID != nil && *n.RelatedID == uuid.Nil {
		n.RelatedID = nil
	}

	if n.ReminderDate != nil && n.ReminderDate.IsZero() {
		n.ReminderDate = nil
	}
	return nil
}
