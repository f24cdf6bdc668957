package controllers_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/fintrack-ph/backend/internal/controllers"
	"github.com/fintrack-ph/backend/internal/types"
	"github.com/fintrack-ph/backend/test"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) createTestNotification(n controllers.NotificationEditable) controllers.Notification {
	if n.Title == "" {
		n.Title = "Invoice due"
	}

	if n.Message == "" {
		n.Message = "INV-0001 is due tomorrow"
	}

	if n.Type == "" {
		n.Type = "Reminder"
	}

	r := suite.request(http.MethodPost, "http://example.com/api/notifications", n)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusCreated)

	var notification controllers.Notification
	test.DecodeResponse(suite.T(), &r, &notification)
	return notification
}

func (suite *TestSuiteStandard) TestNotificationsOrder() {
	late := types.NewDate(2024, 3, 1)
	early := types.NewDate(2024, 2, 1)

	noDate := suite.createTestNotification(controllers.NotificationEditable{Title: "No date"})
	lateN := suite.createTestNotification(controllers.NotificationEditable{Title: "Late", ReminderDate: &late})
	earlyN := suite.createTestNotification(controllers.NotificationEditable{Title: "Early", ReminderDate: &early})
	read := suite.createTestNotification(controllers.NotificationEditable{Title: "Read", ReminderDate: &early, IsRead: true})

	r := suite.request(http.MethodGet, "http://example.com/api/notifications", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var notifications []controllers.Notification
	test.DecodeResponse(suite.T(), &r, &notifications)
	suite.Require().Len(notifications, 4)

	// Unread first, then by reminder date with undated ones last
	suite.Assert().Equal(earlyN.ID, notifications[0].ID)
	suite.Assert().Equal(lateN.ID, notifications[1].ID)
	suite.Assert().Equal(noDate.ID, notifications[2].ID)
	suite.Assert().Equal(read.ID, notifications[3].ID)
}

func (suite *TestSuiteStandard) TestNotificationsFilterAndMarkRead() {
	n := suite.createTestNotification(controllers.NotificationEditable{})
	suite.createTestNotification(controllers.NotificationEditable{Type: "Alert"})

	r := suite.request(http.MethodPatch, fmt.Sprintf("http://example.com/api/notifications/%s", n.ID), map[string]any{"isRead": true})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var updated controllers.Notification
	test.DecodeResponse(suite.T(), &r, &updated)
	suite.Assert().True(updated.IsRead)
	suite.Assert().Equal(n.Title, updated.Title)

	tests := []struct {
		name  string
		query string
		len   int
	}{
		{"Unread", "isRead=false", 1},
		{"Read", "isRead=true", 1},
		{"Alerts", "type=Alert", 1},
		{"All", "", 2},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := suite.request(http.MethodGet, fmt.Sprintf("http://example.com/api/notifications?%s", tt.query), "")
			test.AssertHTTPStatus(t, &r, http.StatusOK)

			var notifications []controllers.Notification
			test.DecodeResponse(t, &r, &notifications)
			assert.Len(t, notifications, tt.len)
		})
	}

	r = suite.request(http.MethodPost, "http://example.com/api/notifications", map[string]any{"title": "Missing message", "type": "Alert"})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)

	r = suite.request(http.MethodDelete, fmt.Sprintf("http://example.com/api/notifications/%s", n.ID), "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)
}
