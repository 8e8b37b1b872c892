package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/whitecaroot/careers-builder/internal/session"
)

// showLogin renders the combined login/register page. A visitor with a
// still-valid session is sent straight to the dashboard.
func (h *Handler) showLogin(c *gin.Context) {
	st := h.mustStack(c)
	st.session.Bootstrap(c.Request.Context())
	if st.session.State() == session.StateAuthenticated {
		c.Redirect(http.StatusSeeOther, "/dashboard")
		return
	}
	c.HTML(http.StatusOK, "login.html", gin.H{
		"Title":    "Sign in",
		"Error":    c.Query("error"),
		"Message":  c.Query("msg"),
		"Register": c.Query("mode") == "register",
	})
}

func (h *Handler) doLogin(c *gin.Context) {
	st := h.mustStack(c)
	email := c.PostForm("email")
	password := c.PostForm("password")
	if email == "" || password == "" {
		redirectWith(c, "/login", "Email and password are required", "")
		return
	}
	if err := st.session.Login(c.Request.Context(), email, password); err != nil {
		redirectWith(c, "/login", err.Error(), "")
		return
	}
	c.Redirect(http.StatusSeeOther, "/dashboard")
}

func (h *Handler) doRegister(c *gin.Context) {
	st := h.mustStack(c)
	email := c.PostForm("email")
	password := c.PostForm("password")
	companyName := c.PostForm("companyName")
	fullName := c.PostForm("fullName")
	if email == "" || password == "" || companyName == "" {
		redirectWith(c, "/login?mode=register", "Email, password and company name are required", "")
		return
	}
	if err := st.session.Register(c.Request.Context(), email, password, companyName, fullName); err != nil {
		redirectWith(c, "/login?mode=register", err.Error(), "")
		return
	}
	c.Redirect(http.StatusSeeOther, "/dashboard")
}

func (h *Handler) doLogout(c *gin.Context) {
	st := h.mustStack(c)
	st.session.Logout()
	c.Redirect(http.StatusSeeOther, "/login")
}
