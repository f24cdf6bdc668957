package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// User is an account that owns financial records.
type User struct {
	DefaultModel
	Name         string
	Email        string `gorm:"type:varchar(255);not null;uniqueIndex:idx_users_email"`
	PasswordHash string `gorm:"not null"`
	Image        string
}

func (u *User) BeforeSave(_ *gorm.DB) error {
	u.Name = strings.TrimSpace(u.Name)
	u.Email = NormalizeEmail(u.Email)
	return nil
}

// NormalizeEmail trims and lowercases an email address so that lookups
// are case insensitive.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Session is a login of a user. Sessions are revoked instead of deleted.
type Session struct {
	DefaultModel
	UserID    uuid.UUID `gorm:"type:varchar(36);not null;index"`
	User      User      `gorm:"constraint:OnDelete:CASCADE"`
	ExpiresAt time.Time
	IPAddress string
	UserAgent string
	Revoked   bool
}

// Active reports whether the session can still be used at the given time.
func (s Session) Active(now time.Time) bool {
	return !s.Revoked && now.Before(s.ExpiresAt)
}

func (s *Session) AfterFind(tx *gorm.DB) (err error) {
	err = s.DefaultModel.AfterFind(tx)
	s.ExpiresAt = s.ExpiresAt.In(time.UTC)
	return
}
