package controllers

import (
	"context"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/whitecaroot/careers-builder/internal/dtos"
	"github.com/whitecaroot/careers-builder/internal/models"
	"github.com/whitecaroot/careers-builder/internal/reorder"
	"github.com/whitecaroot/careers-builder/internal/services"
)

// SectionForm is the edit buffer for one section.
type SectionForm struct {
	Title       string
	Content     string
	SectionType string
	IsVisible   bool
}

// DefaultSectionForm matches the blank "add section" modal.
func DefaultSectionForm() SectionForm {
	return SectionForm{SectionType: "custom", IsVisible: true}
}

// SectionTypes are the selectable section kinds, in display order.
var SectionTypes = []string{"about", "culture", "benefits", "values", "custom"}

// SectionsController drives the section editor: ordered list with
// drag-to-reorder (delegated to the reorder controller), CRUD with
// refresh-after-confirm, and the visibility toggle.
type SectionsController struct {
	mu       sync.Mutex
	sections *services.SectionService
	slug     string
	log      *logrus.Logger

	order     *reorder.Controller
	form      SectionForm
	editingID string
	gen       uint64
}

func NewSectionsController(sections *services.SectionService, slug string, log *logrus.Logger) *SectionsController {
	if log == nil {
		log = logrus.StandardLogger()
	}
	c := &SectionsController{
		sections: sections,
		slug:     slug,
		log:      log,
		form:     DefaultSectionForm(),
	}
	c.order = reorder.NewController(func(ctx context.Context, ids []string) error {
		return sections.Reorder(ctx, slug, ids)
	}, log)
	return c
}

// Load fetches the section list. A failure leaves the current list.
func (c *SectionsController) Load(ctx context.Context) error {
	c.mu.Lock()
	gen := c.gen
	c.mu.Unlock()

	list, err := c.sections.List(ctx, c.slug)
	if err != nil {
		c.log.WithError(err).Warn("sections: load failed")
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.gen != gen {
		return nil
	}
	c.order.Replace(list)
	return nil
}

// Sections returns the current display order, reflecting any optimistic
// reorder that has not been confirmed yet.
func (c *SectionsController) Sections() []models.Section {
	return c.order.Sections()
}

// Move applies a drag gesture; see reorder.Controller.Move.
func (c *SectionsController) Move(ctx context.Context, activeID, overID string) error {
	return c.order.Move(ctx, activeID, overID)
}

func (c *SectionsController) StartCreate() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.form = DefaultSectionForm()
	c.editingID = ""
}

func (c *SectionsController) StartEdit(id string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, s := range c.order.Sections() {
		if s.ID == id {
			c.form = SectionForm{
				Title:       s.Title,
				Content:     s.Content,
				SectionType: s.SectionType,
				IsVisible:   s.IsVisible,
			}
			c.editingID = id
			return true
		}
	}
	return false
}

func (c *SectionsController) SetForm(f SectionForm) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.form = f
}

func (c *SectionsController) SetEditing(id string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.editingID = id
}

func (c *SectionsController) Form() (SectionForm, string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.form, c.editingID
}

// Save submits the buffer, refreshes the list from the server and resets
// the form. No optimistic insert.
func (c *SectionsController) Save(ctx context.Context) error {
	c.mu.Lock()
	form := c.form
	editingID := c.editingID
	c.mu.Unlock()

	var err error
	if editingID != "" {
		visible := form.IsVisible
		_, err = c.sections.Update(ctx, c.slug, editingID, dtos.UpdateSectionRequest{
			Title:       &form.Title,
			Content:     &form.Content,
			SectionType: &form.SectionType,
			IsVisible:   &visible,
		})
	} else {
		visible := form.IsVisible
		_, err = c.sections.Create(ctx, c.slug, dtos.CreateSectionRequest{
			Title:       form.Title,
			Content:     form.Content,
			SectionType: form.SectionType,
			IsVisible:   &visible,
		})
	}
	if err != nil {
		c.log.WithError(err).Warn("sections: save failed")
		return err
	}

	if err := c.Load(ctx); err != nil {
		return err
	}
	c.mu.Lock()
	c.form = DefaultSectionForm()
	c.editingID = ""
	c.mu.Unlock()
	return nil
}

// Delete removes a section after the destructive action was confirmed.
func (c *SectionsController) Delete(ctx context.Context, id string, confirmed bool) error {
	if !confirmed {
		return ErrConfirmationRequired
	}
	if err := c.sections.Delete(ctx, c.slug, id); err != nil {
		c.log.WithError(err).Warn("sections: delete failed")
		return err
	}
	return c.Load(ctx)
}

// ToggleVisibility flips whether the section shows on the public page,
// sending the explicit target state, then refreshes.
func (c *SectionsController) ToggleVisibility(ctx context.Context, id string, visible bool) error {
	_, err := c.sections.Update(ctx, c.slug, id, dtos.UpdateSectionRequest{IsVisible: &visible})
	if err != nil {
		c.log.WithError(err).Warn("sections: visibility toggle failed")
		return err
	}
	return c.Load(ctx)
}

// Reset abandons in-flight completions and clears local state.
func (c *SectionsController) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.gen++
	c.order.Replace(nil)
	c.form = DefaultSectionForm()
	c.editingID = ""
}
