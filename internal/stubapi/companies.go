package stubapi

import (
	"net/http"
	"path/filepath"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/whitecaroot/careers-builder/internal/dtos"
)

func (s *Server) handleGetCompany(c *gin.Context) {
	company, ok := s.companyBySlug(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, dtos.CompanyEnvelope{Company: company.Company()})
}

func (s *Server) handleUpdateCompany(c *gin.Context) {
	company := c.MustGet(ctxCompany).(CompanyRecord)

	var req dtos.UpdateCompanyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "Invalid company payload: "+err.Error())
		return
	}
	if req.Name != nil {
		company.Name = *req.Name
	}
	if req.Description != nil {
		company.Description = *req.Description
	}
	if err := s.db.Save(&company).Error; err != nil {
		fail(c, http.StatusInternalServerError, "Failed to update company")
		return
	}
	c.JSON(http.StatusOK, dtos.CompanyEnvelope{Company: company.Company()})
}

func (s *Server) handleGetTheme(c *gin.Context) {
	company, ok := s.companyBySlug(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, dtos.ThemeEnvelope{Theme: company.Theme()})
}

func (s *Server) handleUpdateTheme(c *gin.Context) {
	company := c.MustGet(ctxCompany).(CompanyRecord)

	var req dtos.UpdateThemeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "Invalid theme payload: "+err.Error())
		return
	}
	if req.PrimaryColor != nil {
		company.PrimaryColor = *req.PrimaryColor
	}
	if req.SecondaryColor != nil {
		company.SecondaryColor = *req.SecondaryColor
	}
	if req.VideoURL != nil {
		company.VideoURL = *req.VideoURL
	}
	if req.LogoURL != nil {
		company.LogoURL = *req.LogoURL
	}
	if req.BannerURL != nil {
		company.BannerURL = *req.BannerURL
	}
	if err := s.db.Save(&company).Error; err != nil {
		fail(c, http.StatusInternalServerError, "Failed to update theme")
		return
	}
	c.JSON(http.StatusOK, dtos.ThemeEnvelope{Theme: company.Theme()})
}

// handleUpload stores the multipart image on disk and returns its serving
// path. Real image hosting is the production backend's concern.
func (s *Server) handleUpload(c *gin.Context) {
	file, err := c.FormFile("image")
	if err != nil {
		fail(c, http.StatusBadRequest, "Missing image file")
		return
	}

	name := uuid.NewString() + filepath.Ext(file.Filename)
	if err := c.SaveUploadedFile(file, filepath.Join(s.uploadDir, name)); err != nil {
		fail(c, http.StatusInternalServerError, "Failed to store image")
		return
	}
	c.JSON(http.StatusOK, dtos.UploadResponse{URL: "/uploads/" + name})
}
