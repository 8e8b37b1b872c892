package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/whitecaroot/careers-builder/internal/apiclient"
	"github.com/whitecaroot/careers-builder/internal/dtos"
	"github.com/whitecaroot/careers-builder/internal/publicpage"
)

// showCareers renders a company's public careers page. No authentication:
// this is the page candidates land on.
func (h *Handler) showCareers(c *gin.Context) {
	st := h.mustStack(c)
	slug := c.Param("slug")

	page := publicpage.NewAssembler(st.companies, st.sections, st.jobs, slug, h.log)
	filters := dtos.JobFilters{
		Search:   c.Query("search"),
		Location: c.Query("location"),
		JobType:  c.Query("jobType"),
	}
	if !filters.IsZero() {
		page.SeedFilters(filters)
	}
	if err := page.Load(c.Request.Context()); err != nil {
		c.HTML(http.StatusBadGateway, "notfound.html", gin.H{
			"Title":   "Something went wrong",
			"Heading": "Something went wrong",
			"Detail":  "This page could not be loaded. Please try again shortly.",
		})
		return
	}
	if page.NotFound() {
		c.HTML(http.StatusNotFound, "notfound.html", gin.H{
			"Title":   "Company not found",
			"Heading": "Company not found",
			"Detail":  "There is no careers page at this address.",
		})
		return
	}

	company, _ := page.Company()
	c.HTML(http.StatusOK, "careers.html", gin.H{
		"Title":           company.Name + " Careers",
		"MetaDescription": metaDescription(company.Description, "Open positions at "+company.Name),
		"Slug":            slug,
		"Company":         company,
		"Sections":        page.Sections(),
		"Jobs":            page.Jobs(),
		"Locations":       page.Locations(),
		"JobTypes":        page.JobTypes(),
		"VideoURL":        page.VideoEmbedURL(),
		"Filters":         filters,
	})
}

// showJobDetail renders one published job.
func (h *Handler) showJobDetail(c *gin.Context) {
	st := h.mustStack(c)
	slug := c.Param("slug")

	company, err := st.companies.GetCompany(c.Request.Context(), slug)
	if apiclient.IsNotFound(err) {
		c.HTML(http.StatusNotFound, "notfound.html", gin.H{
			"Title":   "Company not found",
			"Heading": "Company not found",
			"Detail":  "There is no careers page at this address.",
		})
		return
	}
	if err != nil {
		c.HTML(http.StatusBadGateway, "notfound.html", gin.H{
			"Title":   "Something went wrong",
			"Heading": "Something went wrong",
			"Detail":  "This page could not be loaded. Please try again shortly.",
		})
		return
	}

	job, err := st.jobs.Get(c.Request.Context(), slug, c.Param("jobSlug"))
	if apiclient.IsNotFound(err) {
		c.HTML(http.StatusNotFound, "notfound.html", gin.H{
			"Title":   "Job not found",
			"Heading": "Job not found",
			"Detail":  "This listing may have been closed or unpublished.",
			"BackURL": "/" + slug + "/careers",
		})
		return
	}
	if err != nil {
		c.HTML(http.StatusBadGateway, "notfound.html", gin.H{
			"Title":   "Something went wrong",
			"Heading": "Something went wrong",
			"Detail":  "This page could not be loaded. Please try again shortly.",
		})
		return
	}

	c.HTML(http.StatusOK, "job_detail.html", gin.H{
		"Title":           job.Title + " at " + company.Name,
		"MetaDescription": metaDescription(job.Description, job.Title+" at "+company.Name),
		"Slug":            slug,
		"Company":         company,
		"Job":             job,
	})
}

// metaDescription clips free text to a search-snippet length, falling back
// when the source field is empty.
func metaDescription(text, fallback string) string {
	if text == "" {
		text = fallback
	}
	runes := []rune(text)
	if len(runes) > 160 {
		return string(runes[:157]) + "..."
	}
	return text
}
