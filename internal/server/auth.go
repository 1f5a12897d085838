package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	identitydomain "github.com/tradiehq/tradiehq/internal/identity/domain"
	orgdomain "github.com/tradiehq/tradiehq/internal/organization/domain"
	"github.com/tradiehq/tradiehq/internal/session"
	signupdomain "github.com/tradiehq/tradiehq/internal/signup/domain"
	"go.uber.org/zap"
)

func (s *Server) Signup(c *gin.Context) {
	var req signupdomain.Request
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	res, err := s.signupSvc.Signup(c.Request.Context(), req)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	state := session.State{
		Kind:       session.KindProductionPendingOnboarding,
		UserID:     res.User.ID,
		Email:      emailOf(res.User),
		OrgID:      res.OrgID,
		FirstLogin: res.FirstLogin,
	}
	if err := s.startSession(c, state); err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"userId":         res.User.ID,
		"organizationId": res.OrgID,
		"redirect":       "/onboarding",
	})
}

func (s *Server) Login(c *gin.Context) {
	var req identitydomain.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	res, err := s.identitySvc.Login(c.Request.Context(), req)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	// The session mirror is seeded from the membership row, never
	// guessed from stale client state.
	kind := session.KindProductionPendingOnboarding
	orgID := ""
	if member := s.activeMembership(c, res.User.ID); member != nil {
		orgID = member.OrgID
		if member.Onboarded {
			kind = session.KindProductionOnboarded
		}
	}

	state := session.State{
		Kind:       kind,
		UserID:     res.User.ID,
		Email:      emailOf(res.User),
		OrgID:      orgID,
		FirstLogin: res.FirstLogin,
	}
	if err := s.startSession(c, state); err != nil {
		AbortWithError(c, err)
		return
	}

	redirect := "/onboarding"
	if state.IsOnboarded() {
		redirect = "/dashboard"
	}
	c.JSON(http.StatusOK, gin.H{
		"userId":      res.User.ID,
		"email":       state.Email,
		"isOnboarded": state.IsOnboarded(),
		"redirect":    redirect,
	})
}

func (s *Server) Logout(c *gin.Context) {
	if id, ok := s.sessions.ReadID(c); ok {
		s.store.Delete(id)
	}
	s.sessions.Clear(c)
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// Me reports the current session identity. Demo sessions are visible
// here too; only anonymous requests get a 401.
func (s *Server) Me(c *gin.Context) {
	_, state := s.loadSession(c)
	if state.UserID == "" {
		AbortWithError(c, ErrUnauthorized)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"userId":      state.UserID,
		"email":       state.Email,
		"isOnboarded": state.IsOnboarded(),
	})
}

func (s *Server) startSession(c *gin.Context, state session.State) error {
	id, err := s.store.Create(state)
	if err != nil {
		return err
	}
	s.sessions.Write(c, id)
	return nil
}

func (s *Server) activeMembership(c *gin.Context, userID string) *orgdomain.OrganizationUser {
	members, err := s.orgs.ListMemberships(c.Request.Context(), userID)
	if err != nil {
		s.log.Warn("failed to load memberships", zap.String("user_id", userID), zap.Error(err))
		return nil
	}
	if len(members) == 0 {
		return nil
	}
	return &members[0]
}

func emailOf(user *identitydomain.User) string {
	if user.Email == nil {
		return ""
	}
	return *user.Email
}
