package stubapi

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/whitecaroot/careers-builder/internal/dtos"
	"github.com/whitecaroot/careers-builder/internal/models"
)

func (s *Server) handleListSections(c *gin.Context) {
	company, ok := s.companyBySlug(c)
	if !ok {
		return
	}

	var records []SectionRecord
	if err := s.db.Where("company_id = ?", company.ID).Order("order_index asc").Find(&records).Error; err != nil {
		fail(c, http.StatusInternalServerError, "Failed to list sections")
		return
	}

	sections := make([]models.Section, len(records))
	for i, r := range records {
		sections[i] = r.Section()
	}
	c.JSON(http.StatusOK, dtos.SectionsEnvelope{Sections: sections})
}

func (s *Server) handleCreateSection(c *gin.Context) {
	company := c.MustGet(ctxCompany).(CompanyRecord)

	var req dtos.CreateSectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "Invalid section payload: "+err.Error())
		return
	}

	var count int64
	s.db.Model(&SectionRecord{}).Where("company_id = ?", company.ID).Count(&count)

	record := SectionRecord{
		ID:          uuid.NewString(),
		CompanyID:   company.ID,
		Title:       req.Title,
		Content:     req.Content,
		SectionType: req.SectionType,
		OrderIndex:  int(count), // append at the end, keeping indexes contiguous
		IsVisible:   true,
	}
	if record.SectionType == "" {
		record.SectionType = "custom"
	}
	if req.IsVisible != nil {
		record.IsVisible = *req.IsVisible
	}
	if err := s.db.Create(&record).Error; err != nil {
		fail(c, http.StatusInternalServerError, "Failed to create section")
		return
	}
	c.JSON(http.StatusCreated, dtos.SectionEnvelope{Section: record.Section()})
}

func (s *Server) handleUpdateSection(c *gin.Context) {
	company := c.MustGet(ctxCompany).(CompanyRecord)

	var record SectionRecord
	if err := s.db.Where("company_id = ? AND id = ?", company.ID, c.Param("id")).First(&record).Error; err != nil {
		fail(c, http.StatusNotFound, "Section not found")
		return
	}

	var req dtos.UpdateSectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "Invalid section payload: "+err.Error())
		return
	}
	if req.Title != nil {
		record.Title = *req.Title
	}
	if req.Content != nil {
		record.Content = *req.Content
	}
	if req.SectionType != nil {
		record.SectionType = *req.SectionType
	}
	if req.IsVisible != nil {
		record.IsVisible = *req.IsVisible
	}
	if err := s.db.Save(&record).Error; err != nil {
		fail(c, http.StatusInternalServerError, "Failed to update section")
		return
	}
	c.JSON(http.StatusOK, dtos.SectionEnvelope{Section: record.Section()})
}

func (s *Server) handleDeleteSection(c *gin.Context) {
	company := c.MustGet(ctxCompany).(CompanyRecord)

	result := s.db.Where("company_id = ? AND id = ?", company.ID, c.Param("id")).Delete(&SectionRecord{})
	if result.Error != nil {
		fail(c, http.StatusInternalServerError, "Failed to delete section")
		return
	}
	if result.RowsAffected == 0 {
		fail(c, http.StatusNotFound, "Section not found")
		return
	}

	// Close the gap so order indexes stay contiguous.
	s.compactOrder(company.ID)
	c.Status(http.StatusNoContent)
}

// handleReorderSections rewrites order indexes from the submitted id
// sequence. The sequence must name exactly the company's sections.
func (s *Server) handleReorderSections(c *gin.Context) {
	company := c.MustGet(ctxCompany).(CompanyRecord)

	var req dtos.ReorderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "Invalid reorder payload: "+err.Error())
		return
	}

	var records []SectionRecord
	if err := s.db.Where("company_id = ?", company.ID).Find(&records).Error; err != nil {
		fail(c, http.StatusInternalServerError, "Failed to load sections")
		return
	}
	if len(req.SectionIDs) != len(records) {
		fail(c, http.StatusBadRequest, "Reorder must include every section exactly once")
		return
	}
	known := make(map[string]bool, len(records))
	for _, r := range records {
		known[r.ID] = true
	}
	seen := make(map[string]bool, len(req.SectionIDs))
	for _, id := range req.SectionIDs {
		if !known[id] || seen[id] {
			fail(c, http.StatusBadRequest, "Reorder must include every section exactly once")
			return
		}
		seen[id] = true
	}

	for index, id := range req.SectionIDs {
		if err := s.db.Model(&SectionRecord{}).Where("id = ?", id).Update("order_index", index).Error; err != nil {
			fail(c, http.StatusInternalServerError, "Failed to persist order")
			return
		}
	}
	c.Status(http.StatusNoContent)
}

func (s *Server) compactOrder(companyID string) {
	var records []SectionRecord
	if err := s.db.Where("company_id = ?", companyID).Order("order_index asc").Find(&records).Error; err != nil {
		return
	}
	for i, r := range records {
		if r.OrderIndex != i {
			s.db.Model(&SectionRecord{}).Where("id = ?", r.ID).Update("order_index", i)
		}
	}
}
