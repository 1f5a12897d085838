package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// FirstRun reports whether the welcome experience should show. The flag
// is one-shot; reading it true clears it.
func (s *Server) FirstRun(c *gin.Context) {
	id, state := s.loadSession(c)

	show := state.FirstLogin
	if show {
		state.FirstLogin = false
		if err := s.store.Save(id, state); err != nil {
			// Worst case the welcome shows twice.
			s.log.Warn("failed to clear first-run flag", zap.String("user_id", state.UserID), zap.Error(err))
		} else {
			c.Set(ctxSessionState, state)
		}
	}

	c.JSON(http.StatusOK, gin.H{"showWelcome": show})
}
