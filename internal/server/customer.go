package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	customerdomain "github.com/tradiehq/tradiehq/internal/customer/domain"
)

func (s *Server) ListCustomers(c *gin.Context) {
	_, state := s.loadSession(c)

	customers, err := s.customerSvc.List(c.Request.Context(), state.OrgID)
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"customers": customers})
}

func (s *Server) CreateCustomer(c *gin.Context) {
	_, state := s.loadSession(c)

	var req customerdomain.CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	customer, err := s.customerSvc.Create(c.Request.Context(), state.OrgID, req)
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, customer)
}

func (s *Server) GetCustomerByID(c *gin.Context) {
	_, state := s.loadSession(c)

	customer, err := s.customerSvc.Get(c.Request.Context(), state.OrgID, c.Param("id"))
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, customer)
}

func (s *Server) UpdateCustomer(c *gin.Context) {
	_, state := s.loadSession(c)

	var req customerdomain.UpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	customer, err := s.customerSvc.Update(c.Request.Context(), state.OrgID, c.Param("id"), req)
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, customer)
}

func (s *Server) DeleteCustomer(c *gin.Context) {
	_, state := s.loadSession(c)

	if err := s.customerSvc.Delete(c.Request.Context(), state.OrgID, c.Param("id")); err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}
