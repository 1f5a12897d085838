package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/tradiehq/tradiehq/internal/tokens"
)

// TokenUsage reports the caller's token balance. Demo sessions answer
// from the session profile without touching the database.
func (s *Server) TokenUsage(c *gin.Context) {
	_, state := s.loadSession(c)

	if state.IsDemo() && state.DemoProfile != nil {
		balance := state.DemoProfile.TokenBalance
		c.JSON(http.StatusOK, tokens.Usage{
			Balance: balance,
			Limit:   balance,
			Low:     tokens.IsLow(balance, balance),
		})
		return
	}

	if !state.PasswordAuthenticated() {
		AbortWithError(c, ErrUnauthorized)
		return
	}

	usage, err := s.tokensSvc.Usage(c.Request.Context(), state.UserID)
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, usage)
}
