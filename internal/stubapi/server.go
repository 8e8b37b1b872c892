// Package stubapi is a development stand-in for the remote careers API.
// It implements the documented HTTP contract so the gateway can run
// against localhost; it is not the production backend.
package stubapi

import (
	"net/http"
	"sync"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/whitecaroot/careers-builder/internal/dtos"
)

type Server struct {
	db        *gorm.DB
	uploadDir string
	log       *logrus.Logger

	// Opaque bearer tokens, kept in memory: a stub restart simply logs
	// everyone out.
	tokenMu sync.RWMutex
	tokens  map[string]string // token -> user id
}

func New(db *gorm.DB, uploadDir string, log *logrus.Logger) *Server {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Server{
		db:        db,
		uploadDir: uploadDir,
		log:       log,
		tokens:    make(map[string]string),
	}
}

// Router builds the gin engine with the full endpoint surface of the
// contract.
func (s *Server) Router() *gin.Engine {
	r := gin.Default()

	config := cors.DefaultConfig()
	config.AllowAllOrigins = true
	config.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization"}
	r.Use(cors.New(config))

	r.Static("/uploads", s.uploadDir)

	api := r.Group("/api")
	{
		api.POST("/auth/register", s.handleRegister)
		api.POST("/auth/login", s.handleLogin)
		api.GET("/auth/me", s.requireAuth, s.handleMe)

		companies := api.Group("/companies/:slug")
		{
			companies.GET("", s.handleGetCompany)
			companies.PUT("", s.requireAuth, s.requireCompanyScope, s.handleUpdateCompany)
			companies.GET("/theme", s.handleGetTheme)
			companies.PUT("/theme", s.requireAuth, s.requireCompanyScope, s.handleUpdateTheme)
			companies.POST("/upload", s.requireAuth, s.requireCompanyScope, s.handleUpload)

			companies.GET("/sections", s.handleListSections)
			companies.POST("/sections", s.requireAuth, s.requireCompanyScope, s.handleCreateSection)
			companies.PUT("/sections/reorder", s.requireAuth, s.requireCompanyScope, s.handleReorderSections)
			companies.PUT("/sections/:id", s.requireAuth, s.requireCompanyScope, s.handleUpdateSection)
			companies.DELETE("/sections/:id", s.requireAuth, s.requireCompanyScope, s.handleDeleteSection)

			companies.GET("/jobs", s.handleListJobs)
			companies.GET("/jobs/all", s.requireAuth, s.requireCompanyScope, s.handleListJobsAdmin)
			companies.GET("/jobs/:jobSlug", s.handleGetJob)
			companies.POST("/jobs", s.requireAuth, s.requireCompanyScope, s.handleCreateJob)
			companies.PUT("/jobs/:jobSlug", s.requireAuth, s.requireCompanyScope, s.handleUpdateJob)
			companies.DELETE("/jobs/:jobSlug", s.requireAuth, s.requireCompanyScope, s.handleDeleteJob)
			companies.PATCH("/jobs/:jobSlug/publish", s.requireAuth, s.requireCompanyScope, s.handleTogglePublish)
		}
	}

	return r
}

func fail(c *gin.Context, status int, msg string) {
	c.JSON(status, dtos.ErrorResponse{Error: msg})
}

func (s *Server) companyBySlug(c *gin.Context) (*CompanyRecord, bool) {
	var company CompanyRecord
	err := s.db.Where(&CompanyRecord{Slug: c.Param("slug")}).First(&company).Error
	if err != nil {
		fail(c, http.StatusNotFound, "Company not found")
		return nil, false
	}
	return &company, true
}
