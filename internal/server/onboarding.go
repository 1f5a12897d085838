package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	onboardingdomain "github.com/tradiehq/tradiehq/internal/onboarding/domain"
	"go.uber.org/zap"
)

func (s *Server) CompleteOnboarding(c *gin.Context) {
	id, state := s.loadSession(c)

	var req onboardingdomain.Request
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	res, err := s.onboardingSvc.Complete(c.Request.Context(), state.UserID, state.OrgID, req)
	if err != nil {
		s.metrics.ObserveOnboarding("rejected")
		AbortWithError(c, err)
		return
	}

	// The DB commit already succeeded; a failed session write must not
	// strand the user on the onboarding screen, so it is logged and the
	// success response still goes out. The mirror self-heals on the next
	// login, which re-reads the membership row.
	state.Onboard()
	if err := s.store.Save(id, state); err != nil {
		s.log.Error("failed to persist onboarded session",
			zap.String("user_id", state.UserID),
			zap.String("org_id", state.OrgID),
			zap.Error(err),
		)
	} else {
		c.Set(ctxSessionState, state)
	}

	s.metrics.ObserveOnboarding("completed")
	c.JSON(http.StatusOK, gin.H{
		"ok":                    true,
		"redirect":              res.Redirect,
		"userId":                res.UserID,
		"organizationId":        res.OrgID,
		"organizationOnboarded": true,
	})
}
