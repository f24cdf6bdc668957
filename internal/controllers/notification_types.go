package controllers

import (
	"github.com/fintrack-ph/backend/internal/models"
	"github.com/fintrack-ph/backend/internal/types"
	"github.com/google/uuid"
)

// NotificationEditable represents all user configurable parameters
type NotificationEditable struct {
	Title        string      `json:"title" example:"Invoice due"`                                          // Short title
	Message      string      `json:"message" example:"INV-0004 is due tomorrow"`                           // Text of the notification
	Type         string      `json:"type" example:"reminder" enums:"info,warning,reminder,alert"`          // Kind of notification
	IsRead       bool        `json:"isRead" example:"false" default:"false"`                               // Whether the user has read the notification
	ReminderDate *types.Date `json:"reminderDate" example:"2024-02-04" swaggertype:"string" format:"date"` // Day to remind the user on
	RelatedID    *uuid.UUID  `json:"relatedId" example:"c4c2a1f0-8d0e-4b3a-9b7e-1a5a5d2f0e61"`             // ID of a related resource
	RelatedType  string      `json:"relatedType" example:"invoice"`                                        // Type of the related resource
}

func (editable NotificationEditable) model(userID uuid.UUID) models.Notification {
	return models.Notification{
		UserID:       userID,
		Title:        editable.Title,
		Message:      editable.Message,
		Type:         editable.Type,
		IsRead:       editable.IsRead,
		ReminderDate: editable.ReminderDate,
		RelatedID:    editable.RelatedID,
		RelatedType:  editable.RelatedType,
	}
}

type Notification struct {
	models.DefaultModel
	NotificationEditable
}

func newNotification(model models.Notification) Notification {
	return Notification{
		DefaultModel: model.DefaultModel,
		NotificationEditable: NotificationEditable{
			Title:        model.Title,
			Message:      model.Message,
			Type:         model.Type,
			IsRead:       model.IsRead,
			ReminderDate: model.ReminderDate,
			RelatedID:    model.RelatedID,
			RelatedType:  model.RelatedType,
		},
	}
}

var notificationRequired = []string{"Title", "Message", "Type"}

type NotificationQueryFilter struct {
	IsRead bool   `form:"isRead"` // By read status
	Type   string `form:"type"`   // By type
}

func (f NotificationQueryFilter) model() models.Notification {
	return models.Notification{
		IsRead: f.IsRead,
		Type:   f.Type,
	}
}
