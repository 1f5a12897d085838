package server

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/tradiehq/tradiehq/internal/session"
	"github.com/tradiehq/tradiehq/internal/tokens"
)

type demoVerifyRequest struct {
	Code string `json:"code"`
}

func (s *Server) VerifyDemoCode(c *gin.Context) {
	var req demoVerifyRequest
	if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.Code) == "" {
		AbortWithError(c, newValidationError("code", "missing_code", "demo code is required"))
		return
	}

	identity, err := s.demoSvc.Redeem(c.Request.Context(), req.Code)
	if err != nil {
		s.metrics.ObserveDemoRedemption("rejected")
		AbortWithError(c, err)
		return
	}

	profile := identity.Profile
	state := session.State{
		Kind:        session.KindDemoPendingOnboarding,
		UserID:      identity.UserID,
		OrgID:       identity.OrgID,
		DemoProfile: &profile,
	}
	id, err := s.store.Create(state)
	if err != nil {
		AbortWithError(c, err)
		return
	}
	// Demo traffic runs over plain HTTP on preview deployments.
	s.sessions.WriteInsecure(c, id)

	s.metrics.ObserveDemoRedemption("accepted")
	c.JSON(http.StatusOK, gin.H{
		"success":    true,
		"userId":     identity.UserID,
		"orgId":      identity.OrgID,
		"mode":       "demo",
		"redirectTo": "/onboarding",
	})
}

func (s *Server) DemoDashboard(c *gin.Context) {
	_, state := s.loadSession(c)

	profile := state.DemoProfile
	if profile == nil {
		profile = &session.Profile{}
	}

	c.JSON(http.StatusOK, gin.H{
		"mode":         "demo",
		"businessName": profile.BusinessName,
		"trade":        profile.Trade,
		"country":      profile.Country,
		"isOnboarded":  state.IsOnboarded(),
		"tokens": gin.H{
			"balance": profile.TokenBalance,
			"limit":   profile.TokenBalance,
			"low":     tokens.IsLow(profile.TokenBalance, profile.TokenBalance),
		},
	})
}
