package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/sync/errgroup"

	"github.com/whitecaroot/careers-builder/internal/controllers"
	"github.com/whitecaroot/careers-builder/internal/models"
)

// showDashboard renders the overview: live counts fetched in parallel.
func (h *Handler) showDashboard(c *gin.Context) {
	st := h.mustStack(c)
	ses := st.session.Session()

	var (
		jobs     []models.Job
		sections []models.Section
	)
	g, gctx := errgroup.WithContext(c.Request.Context())
	g.Go(func() error {
		var err error
		jobs, err = st.jobs.ListAdmin(gctx, ses.Company.Slug)
		return err
	})
	g.Go(func() error {
		var err error
		sections, err = st.sections.List(gctx, ses.Company.Slug)
		return err
	})
	if err := g.Wait(); err != nil {
		msg, ok := h.failMessage(c, err, "Could not load dashboard data")
		if !ok {
			return
		}
		c.HTML(http.StatusOK, "dashboard.html", gin.H{
			"Title":   "Dashboard",
			"User":    ses.User,
			"Company": ses.Company,
			"Error":   msg,
		})
		return
	}

	published := 0
	for _, j := range jobs {
		if j.IsPublished {
			published++
		}
	}
	c.HTML(http.StatusOK, "dashboard.html", gin.H{
		"Title":          "Dashboard",
		"Slug":           ses.Company.Slug,
		"User":           ses.User,
		"Company":        ses.Company,
		"JobCount":       len(jobs),
		"PublishedCount": published,
		"SectionCount":   len(sections),
	})
}

// --- Section editor ---

func (h *Handler) sectionsController(c *gin.Context, st *stack) (*controllers.SectionsController, bool) {
	ctrl := controllers.NewSectionsController(st.sections, c.Param("slug"), h.log)
	if err := ctrl.Load(c.Request.Context()); err != nil {
		msg, ok := h.failMessage(c, err, "Could not load sections")
		if !ok {
			return nil, false
		}
		redirectWith(c, "/dashboard", msg, "")
		return nil, false
	}
	return ctrl, true
}

func (h *Handler) showSections(c *gin.Context) {
	st := h.mustStack(c)
	ctrl, ok := h.sectionsController(c, st)
	if !ok {
		return
	}
	if id := c.Query("edit"); id != "" {
		ctrl.StartEdit(id)
	}
	form, editingID := ctrl.Form()
	c.HTML(http.StatusOK, "sections.html", gin.H{
		"Title":        "Page editor",
		"Slug":         c.Param("slug"),
		"Sections":     ctrl.Sections(),
		"Form":         form,
		"EditingID":    editingID,
		"SectionTypes": controllers.SectionTypes,
		"ConfirmID":    c.Query("confirm"),
		"Error":        c.Query("error"),
		"Message":      c.Query("msg"),
	})
}

func (h *Handler) saveSection(c *gin.Context) {
	st := h.mustStack(c)
	back := "/" + c.Param("slug") + "/edit"
	ctrl, ok := h.sectionsController(c, st)
	if !ok {
		return
	}
	ctrl.SetEditing(c.PostForm("id"))
	ctrl.SetForm(controllers.SectionForm{
		Title:       c.PostForm("title"),
		Content:     c.PostForm("content"),
		SectionType: c.PostForm("sectionType"),
		IsVisible:   c.PostForm("isVisible") == "true",
	})
	if err := ctrl.Save(c.Request.Context()); err != nil {
		msg, ok := h.failMessage(c, err, "Could not save section")
		if !ok {
			return
		}
		redirectWith(c, back, msg, "")
		return
	}
	redirectWith(c, back, "", "Section saved")
}

func (h *Handler) deleteSection(c *gin.Context) {
	st := h.mustStack(c)
	back := "/" + c.Param("slug") + "/edit"
	id := c.Param("id")
	ctrl, ok := h.sectionsController(c, st)
	if !ok {
		return
	}
	err := ctrl.Delete(c.Request.Context(), id, c.PostForm("confirmed") == "true")
	if err == controllers.ErrConfirmationRequired {
		c.Redirect(http.StatusSeeOther, back+"?confirm="+id)
		return
	}
	if err != nil {
		msg, ok := h.failMessage(c, err, "Could not delete section")
		if !ok {
			return
		}
		redirectWith(c, back, msg, "")
		return
	}
	redirectWith(c, back, "", "Section deleted")
}

func (h *Handler) toggleSectionVisibility(c *gin.Context) {
	st := h.mustStack(c)
	back := "/" + c.Param("slug") + "/edit"
	ctrl, ok := h.sectionsController(c, st)
	if !ok {
		return
	}
	visible := c.PostForm("visible") == "true"
	if err := ctrl.ToggleVisibility(c.Request.Context(), c.Param("id"), visible); err != nil {
		msg, ok := h.failMessage(c, err, "Could not update visibility")
		if !ok {
			return
		}
		redirectWith(c, back, msg, "")
		return
	}
	c.Redirect(http.StatusSeeOther, back)
}

// reorderSections applies one drag gesture: the dragged section id and the
// id it was dropped over. On persistence failure the previous order is
// already restored, so the page re-renders pre-drag.
func (h *Handler) reorderSections(c *gin.Context) {
	st := h.mustStack(c)
	back := "/" + c.Param("slug") + "/edit"
	ctrl, ok := h.sectionsController(c, st)
	if !ok {
		return
	}
	if err := ctrl.Move(c.Request.Context(), c.PostForm("active"), c.PostForm("over")); err != nil {
		msg, ok := h.failMessage(c, err, "Could not reorder sections")
		if !ok {
			return
		}
		redirectWith(c, back, msg, "")
		return
	}
	c.Redirect(http.StatusSeeOther, back)
}

// --- Manage jobs ---

func (h *Handler) jobsController(c *gin.Context, st *stack) (*controllers.JobsController, bool) {
	ctrl := controllers.NewJobsController(st.jobs, c.Param("slug"), h.log)
	if err := ctrl.Load(c.Request.Context()); err != nil {
		msg, ok := h.failMessage(c, err, "Could not load jobs")
		if !ok {
			return nil, false
		}
		redirectWith(c, "/dashboard", msg, "")
		return nil, false
	}
	return ctrl, true
}

func (h *Handler) showJobs(c *gin.Context) {
	st := h.mustStack(c)
	ctrl, ok := h.jobsController(c, st)
	if !ok {
		return
	}
	if id := c.Query("edit"); id != "" {
		ctrl.StartEdit(id)
	}
	form, editingID := ctrl.Form()
	c.HTML(http.StatusOK, "jobs.html", gin.H{
		"Title":     "Manage jobs",
		"Slug":      c.Param("slug"),
		"Jobs":      ctrl.Jobs(),
		"Form":      form,
		"EditingID": editingID,
		"ConfirmID": c.Query("confirm"),
		"Error":     c.Query("error"),
		"Message":   c.Query("msg"),
	})
}

func (h *Handler) saveJob(c *gin.Context) {
	st := h.mustStack(c)
	back := "/" + c.Param("slug") + "/jobs"
	ctrl, ok := h.jobsController(c, st)
	if !ok {
		return
	}
	ctrl.SetEditing(c.PostForm("id"))
	ctrl.SetForm(controllers.JobForm{
		Title:       c.PostForm("title"),
		Description: c.PostForm("description"),
		Workplace:   c.PostForm("workplace"),
		Location:    c.PostForm("location"),
		Department:  c.PostForm("department"),
		JobType:     c.PostForm("jobType"),
		Seniority:   c.PostForm("seniority"),
		Salary:      c.PostForm("salary"),
		IsPublished: c.PostForm("isPublished") == "true",
	})
	if err := ctrl.Save(c.Request.Context()); err != nil {
		msg, ok := h.failMessage(c, err, "Could not save job")
		if !ok {
			return
		}
		redirectWith(c, back, msg, "")
		return
	}
	redirectWith(c, back, "", "Job saved")
}

func (h *Handler) deleteJob(c *gin.Context) {
	st := h.mustStack(c)
	back := "/" + c.Param("slug") + "/jobs"
	id := c.Param("id")
	ctrl, ok := h.jobsController(c, st)
	if !ok {
		return
	}
	err := ctrl.Delete(c.Request.Context(), id, c.PostForm("confirmed") == "true")
	if err == controllers.ErrConfirmationRequired {
		c.Redirect(http.StatusSeeOther, back+"?confirm="+id)
		return
	}
	if err != nil {
		msg, ok := h.failMessage(c, err, "Could not delete job")
		if !ok {
			return
		}
		redirectWith(c, back, msg, "")
		return
	}
	redirectWith(c, back, "", "Job deleted")
}

func (h *Handler) toggleJobPublish(c *gin.Context) {
	st := h.mustStack(c)
	back := "/" + c.Param("slug") + "/jobs"
	ctrl, ok := h.jobsController(c, st)
	if !ok {
		return
	}
	published := c.PostForm("published") == "true"
	if err := ctrl.TogglePublish(c.Request.Context(), c.Param("id"), published); err != nil {
		msg, ok := h.failMessage(c, err, "Could not update publish state")
		if !ok {
			return
		}
		redirectWith(c, back, msg, "")
		return
	}
	c.Redirect(http.StatusSeeOther, back)
}

// --- Theme editor ---

func (h *Handler) themeController(c *gin.Context, st *stack) (*controllers.ThemeController, bool) {
	ctrl := controllers.NewThemeController(st.companies, c.Param("slug"), h.log)
	if err := ctrl.Load(c.Request.Context()); err != nil {
		msg, ok := h.failMessage(c, err, "Could not load theme")
		if !ok {
			return nil, false
		}
		redirectWith(c, "/dashboard", msg, "")
		return nil, false
	}
	return ctrl, true
}

func (h *Handler) showTheme(c *gin.Context) {
	st := h.mustStack(c)
	ctrl, ok := h.themeController(c, st)
	if !ok {
		return
	}
	c.HTML(http.StatusOK, "theme.html", gin.H{
		"Title":   "Theme",
		"Slug":    c.Param("slug"),
		"Theme":   ctrl.Theme(),
		"Form":    ctrl.Form(),
		"Error":   c.Query("error"),
		"Message": c.Query("msg"),
	})
}

func (h *Handler) saveTheme(c *gin.Context) {
	st := h.mustStack(c)
	back := "/" + c.Param("slug") + "/theme"
	ctrl, ok := h.themeController(c, st)
	if !ok {
		return
	}
	ctrl.SetForm(controllers.ThemeForm{
		PrimaryColor:   c.PostForm("primaryColor"),
		SecondaryColor: c.PostForm("secondaryColor"),
		VideoURL:       c.PostForm("videoUrl"),
	})
	if err := ctrl.Save(c.Request.Context()); err != nil {
		msg, ok := h.failMessage(c, err, "Could not save theme")
		if !ok {
			return
		}
		redirectWith(c, back, msg, "")
		return
	}
	redirectWith(c, back, "", "Theme saved")
}

// uploadThemeImage handles logo and banner uploads; the form names which
// via the "kind" field.
func (h *Handler) uploadThemeImage(c *gin.Context) {
	st := h.mustStack(c)
	back := "/" + c.Param("slug") + "/theme"
	ctrl, ok := h.themeController(c, st)
	if !ok {
		return
	}

	file, header, err := c.Request.FormFile("image")
	if err != nil {
		redirectWith(c, back, "Choose an image to upload", "")
		return
	}
	defer file.Close()

	kind := c.PostForm("kind")
	if kind == "banner" {
		_, err = ctrl.UploadBanner(c.Request.Context(), header.Filename, file)
	} else {
		_, err = ctrl.UploadLogo(c.Request.Context(), header.Filename, file)
	}
	if err != nil {
		msg, ok := h.failMessage(c, err, "Could not upload image")
		if !ok {
			return
		}
		redirectWith(c, back, msg, "")
		return
	}
	redirectWith(c, back, "", "Image uploaded")
}

// showPreview opens the public page as the visitor would see it.
func (h *Handler) showPreview(c *gin.Context) {
	c.Redirect(http.StatusSeeOther, "/"+c.Param("slug")+"/careers")
}
