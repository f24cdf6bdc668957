package controllers

import (
	"strings"

	"github.com/fintrack-ph/backend/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/ryanuber/go-glob"
)

// matchGlob reports whether s matches the glob pattern, ignoring case.
// Patterns without a wildcard match anywhere in s.
func matchGlob(pattern, s string) bool {
	pattern = strings.ToLower(strings.TrimSpace(pattern))
	if !strings.Contains(pattern, glob.GLOB) {
		pattern = glob.GLOB + pattern + glob.GLOB
	}

	return glob.Glob(pattern, strings.ToLower(s))
}

// filterGlob keeps the resources whose text matches the pattern.
func filterGlob[R any](resources []R, pattern string, text func(R) string) []R {
	filtered := make([]R, 0, len(resources))
	for _, r := range resources {
		if matchGlob(pattern, text(r)) {
			filtered = append(filtered, r)
		}
	}
	return filtered
}

// ownCategory verifies that the category belongs to the authenticated user.
func ownCategory(c *gin.Context, id uuid.UUID) error {
	var count int64
	err := owned(c).Model(&models.Category{}).Where("id = ?", id).Count(&count).Error
	if err != nil {
		return err
	}

	if count == 0 {
		return errCategoryNotOwned
	}
	return nil
}
