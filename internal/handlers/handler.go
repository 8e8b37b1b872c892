// Package handlers is the server-rendered recruiter and public UI in
// front of the careers API. Each request builds a short-lived client
// stack seeded from the browser's session cookie, so the gateway itself
// stays stateless.
package handlers

import (
	"encoding/base64"
	"encoding/json"
	"net/http"
	"net/url"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/whitecaroot/careers-builder/internal/apiclient"
	"github.com/whitecaroot/careers-builder/internal/config"
	"github.com/whitecaroot/careers-builder/internal/services"
	"github.com/whitecaroot/careers-builder/internal/session"
)

const (
	sessionCookie = "careers_session"
	cookieMaxAge  = 7 * 24 * 60 * 60

	ctxStack = "handlers.stack"
)

type Handler struct {
	cfg *config.Config
	log *logrus.Logger
}

func New(cfg *config.Config, log *logrus.Logger) *Handler {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Handler{cfg: cfg, log: log}
}

// Register wires every route of the UI surface.
func (h *Handler) Register(r *gin.Engine) {
	r.GET("/", func(c *gin.Context) {
		c.Redirect(http.StatusSeeOther, "/login")
	})

	r.GET("/login", h.showLogin)
	r.POST("/login", h.doLogin)
	r.POST("/register", h.doRegister)
	r.POST("/logout", h.doLogout)

	r.GET("/dashboard", h.requireAuth, h.showDashboard)

	company := r.Group("/:slug")
	{
		// Public pages
		company.GET("/careers", h.showCareers)
		company.GET("/job/:jobSlug", h.showJobDetail)

		// Recruiter pages, gated on an authenticated session owning the slug
		edit := company.Group("", h.requireAuth, h.requireCompany)
		{
			edit.GET("/edit", h.showSections)
			edit.POST("/edit/sections", h.saveSection)
			edit.POST("/edit/sections/:id/delete", h.deleteSection)
			edit.POST("/edit/sections/:id/visibility", h.toggleSectionVisibility)
			edit.POST("/edit/reorder", h.reorderSections)

			edit.GET("/jobs", h.showJobs)
			edit.POST("/jobs", h.saveJob)
			edit.POST("/jobs/:id/delete", h.deleteJob)
			edit.POST("/jobs/:id/publish", h.toggleJobPublish)

			edit.GET("/theme", h.showTheme)
			edit.POST("/theme", h.saveTheme)
			edit.POST("/theme/upload", h.uploadThemeImage)

			edit.GET("/preview", h.showPreview)
		}
	}

	r.NoRoute(func(c *gin.Context) {
		c.HTML(http.StatusNotFound, "notfound.html", gin.H{"Title": "Page not found"})
	})
}

// stack is the per-request client assembly: one API client bound to the
// request's cookie-backed session.
type stack struct {
	client    *apiclient.Client
	session   *session.Manager
	auth      *services.AuthService
	companies *services.CompanyService
	sections  *services.SectionService
	jobs      *services.JobService
}

func (h *Handler) newStack(c *gin.Context) *stack {
	client := apiclient.New(h.cfg.APIBaseURL, h.cfg.APITimeout, h.log)
	auth := services.NewAuthService(client)
	mgr := session.NewManager(newCookieStore(c), auth, h.log)
	client.SetTokenSource(apiclient.TokenSourceFunc(mgr.Token))
	client.OnUnauthorized(mgr.Invalidate)
	return &stack{
		client:    client,
		session:   mgr,
		auth:      auth,
		companies: services.NewCompanyService(client),
		sections:  services.NewSectionService(client),
		jobs:      services.NewJobService(client),
	}
}

func (h *Handler) mustStack(c *gin.Context) *stack {
	if v, ok := c.Get(ctxStack); ok {
		return v.(*stack)
	}
	st := h.newStack(c)
	c.Set(ctxStack, st)
	return st
}

// cookieStore persists the session unit in the browser cookie, the web
// analog of local storage. Partial or undecodable cookies read as absent.
type cookieStore struct {
	c *gin.Context
}

func newCookieStore(c *gin.Context) *cookieStore {
	return &cookieStore{c: c}
}

func (s *cookieStore) Load() (*session.Session, error) {
	raw, err := s.c.Cookie(sessionCookie)
	if err != nil || raw == "" {
		return nil, nil
	}
	data, err := base64.URLEncoding.DecodeString(raw)
	if err != nil {
		return nil, nil
	}
	var ses session.Session
	if err := json.Unmarshal(data, &ses); err != nil {
		return nil, nil
	}
	return &ses, nil
}

func (s *cookieStore) Save(ses *session.Session) error {
	data, err := json.Marshal(ses)
	if err != nil {
		return err
	}
	encoded := base64.URLEncoding.EncodeToString(data)
	s.c.SetCookie(sessionCookie, encoded, cookieMaxAge, "/", "", false, true)
	return nil
}

func (s *cookieStore) Clear() error {
	s.c.SetCookie(sessionCookie, "", -1, "/", "", false, true)
	return nil
}

// redirectWith sends the browser to path with inline flash text attached
// as query parameters.
func redirectWith(c *gin.Context, path, errMsg, okMsg string) {
	q := url.Values{}
	if errMsg != "" {
		q.Set("error", errMsg)
	}
	if okMsg != "" {
		q.Set("msg", okMsg)
	}
	if encoded := q.Encode(); encoded != "" {
		sep := "?"
		if strings.Contains(path, "?") {
			sep = "&"
		}
		path += sep + encoded
	}
	c.Redirect(http.StatusSeeOther, path)
}

// failMessage converts a request error into the inline message for the
// current view. A 401 already tore the session down; send the browser to
// the login entry point instead of rendering.
func (h *Handler) failMessage(c *gin.Context, err error, fallback string) (string, bool) {
	if apiclient.IsUnauthorized(err) {
		c.Redirect(http.StatusSeeOther, "/login")
		c.Abort()
		return "", false
	}
	return apiclient.Message(err, fallback), true
}
