package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	jobdomain "github.com/tradiehq/tradiehq/internal/job/domain"
)

func (s *Server) ListJobs(c *gin.Context) {
	_, state := s.loadSession(c)

	jobs, err := s.jobSvc.List(c.Request.Context(), state.OrgID)
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"jobs": jobs})
}

func (s *Server) CreateJob(c *gin.Context) {
	_, state := s.loadSession(c)

	var req jobdomain.CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	job, err := s.jobSvc.Create(c.Request.Context(), state.OrgID, req)
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, job)
}

func (s *Server) GetJobByID(c *gin.Context) {
	_, state := s.loadSession(c)

	job, err := s.jobSvc.Get(c.Request.Context(), state.OrgID, c.Param("id"))
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, job)
}

func (s *Server) UpdateJob(c *gin.Context) {
	_, state := s.loadSession(c)

	var req jobdomain.UpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	job, err := s.jobSvc.Update(c.Request.Context(), state.OrgID, c.Param("id"), req)
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, job)
}

func (s *Server) DeleteJob(c *gin.Context) {
	_, state := s.loadSession(c)

	if err := s.jobSvc.Delete(c.Request.Context(), state.OrgID, c.Param("id")); err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}
