package httputil

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/render"
)

// allow answers a CORS preflight or discovery request with the methods a
// fintrack endpoint supports. OPTIONS is always part of the list.
func allow(methods ...string) gin.HandlerFunc {
	header := strings.Join(append([]string{http.MethodOptions}, methods...), ", ")

	return func(c *gin.Context) {
		c.Header("allow", header)
		c.Render(http.StatusNoContent, render.JSON{})
	}
}

// Handlers for the OPTIONS requests of the API.
//
// Collections such as /api/expenses use OptionsGetPost, single resources
// use OptionsGetPatchDelete. The remaining ones serve the auth, user and
// report endpoints.
var (
	OptionsGet            = allow(http.MethodGet)
	OptionsPost           = allow(http.MethodPost)
	OptionsGetPost        = allow(http.MethodGet, http.MethodPost)
	OptionsDelete         = allow(http.MethodDelete)
	OptionsGetPatch       = allow(http.MethodGet, http.MethodPatch)
	OptionsGetPatchDelete = allow(http.MethodGet, http.MethodPatch, http.MethodDelete)
)
