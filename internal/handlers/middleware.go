package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/whitecaroot/careers-builder/internal/session"
)

// requireAuth resolves the cookie session against the API before any
// recruiter page runs. Anonymous visitors land on the login page.
func (h *Handler) requireAuth(c *gin.Context) {
	st := h.mustStack(c)
	st.session.Bootstrap(c.Request.Context())
	if st.session.State() != session.StateAuthenticated {
		c.Redirect(http.StatusSeeOther, "/login")
		c.Abort()
		return
	}
	c.Next()
}

// requireCompany pins slug-scoped recruiter routes to the company the
// session belongs to.
func (h *Handler) requireCompany(c *gin.Context) {
	st := h.mustStack(c)
	ses := st.session.Session()
	if ses == nil || ses.Company.Slug != c.Param("slug") {
		c.Redirect(http.StatusSeeOther, "/dashboard")
		c.Abort()
		return
	}
	c.Next()
}
