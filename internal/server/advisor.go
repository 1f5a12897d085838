package server

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type advisorChatRequest struct {
	Message string `json:"message" binding:"required"`
}

// AdvisorChat answers a business question for the signed-in tradie.
// Calls are metered per user through the shared token bucket.
func (s *Server) AdvisorChat(c *gin.Context) {
	_, state := s.loadSession(c)

	res, err := s.advisorLimiter.Allow(c.Request.Context(), state.UserID)
	if err != nil {
		s.log.Warn("advisor rate limit check failed", zap.String("user_id", state.UserID), zap.Error(err))
		AbortWithError(c, ErrInternal)
		return
	}
	if !res.Allowed {
		s.metrics.ObserveAdvisorThrottled()
		if res.RetryAfter > 0 {
			c.Header("Retry-After", fmt.Sprintf("%d", int(res.RetryAfter.Seconds())+1))
		}
		AbortWithError(c, ErrRateLimited)
		return
	}

	var req advisorChatRequest
	if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.Message) == "" {
		AbortWithError(c, newValidationError("message", "missing_message", "message is required"))
		return
	}

	usage, err := s.tokensSvc.Usage(c.Request.Context(), state.UserID)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"reply":  "Thanks, I've noted that. Detailed advice is coming to your dashboard shortly.",
		"tokens": usage,
	})
}
