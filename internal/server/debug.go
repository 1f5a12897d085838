package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// DebugSession dumps the raw session state. Preview-only; the route is
// behind RequirePreview.
func (s *Server) DebugSession(c *gin.Context) {
	_, state := s.loadSession(c)

	c.JSON(http.StatusOK, gin.H{
		"kind":        string(state.Kind),
		"userId":      state.UserID,
		"email":       state.Email,
		"orgId":       state.OrgID,
		"firstLogin":  state.FirstLogin,
		"isOnboarded": state.IsOnboarded(),
		"demoProfile": state.DemoProfile,
		"expiresAt":   state.ExpiresAt,
	})
}
