package controllers

import (
	"context"
	"io"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/whitecaroot/careers-builder/internal/dtos"
	"github.com/whitecaroot/careers-builder/internal/models"
	"github.com/whitecaroot/careers-builder/internal/services"
)

// ThemeForm holds the directly editable theme fields; logo and banner go
// through the upload flow instead.
type ThemeForm struct {
	PrimaryColor   string
	SecondaryColor string
	VideoURL       string
}

// ThemeController drives the theme editor: color and video settings plus
// logo/banner uploads, each confirmed by the server before local state
// reflects it.
type ThemeController struct {
	mu        sync.Mutex
	companies *services.CompanyService
	slug      string
	log       *logrus.Logger

	theme models.Theme
	form  ThemeForm
	gen   uint64
}

func NewThemeController(companies *services.CompanyService, slug string, log *logrus.Logger) *ThemeController {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &ThemeController{companies: companies, slug: slug, log: log}
}

// Load fetches the theme and seeds the form with effective colors.
func (c *ThemeController) Load(ctx context.Context) error {
	c.mu.Lock()
	gen := c.gen
	c.mu.Unlock()

	theme, err := c.companies.GetTheme(ctx, c.slug)
	if err != nil {
		c.log.WithError(err).Warn("theme: load failed")
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.gen != gen {
		return nil
	}
	c.theme = theme
	c.form = ThemeForm{
		PrimaryColor:   theme.EffectivePrimaryColor(),
		SecondaryColor: theme.EffectiveSecondaryColor(),
		VideoURL:       theme.VideoURL,
	}
	return nil
}

func (c *ThemeController) Theme() models.Theme {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.theme
}

func (c *ThemeController) Form() ThemeForm {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.form
}

func (c *ThemeController) SetForm(f ThemeForm) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.form = f
}

// Save persists the color and video settings.
func (c *ThemeController) Save(ctx context.Context) error {
	c.mu.Lock()
	form := c.form
	c.mu.Unlock()

	theme, err := c.companies.UpdateTheme(ctx, c.slug, dtos.UpdateThemeRequest{
		PrimaryColor:   &form.PrimaryColor,
		SecondaryColor: &form.SecondaryColor,
		VideoURL:       &form.VideoURL,
	})
	if err != nil {
		c.log.WithError(err).Warn("theme: save failed")
		return err
	}

	c.mu.Lock()
	c.theme = theme
	c.mu.Unlock()
	return nil
}

// UploadLogo stores the image, points the theme's logo at it, and returns
// the stored URL.
func (c *ThemeController) UploadLogo(ctx context.Context, filename string, file io.Reader) (string, error) {
	return c.uploadImage(ctx, filename, file, func(url string) dtos.UpdateThemeRequest {
		return dtos.UpdateThemeRequest{LogoURL: &url}
	})
}

// UploadBanner stores the image and points the theme's banner at it.
func (c *ThemeController) UploadBanner(ctx context.Context, filename string, file io.Reader) (string, error) {
	return c.uploadImage(ctx, filename, file, func(url string) dtos.UpdateThemeRequest {
		return dtos.UpdateThemeRequest{BannerURL: &url}
	})
}

func (c *ThemeController) uploadImage(ctx context.Context, filename string, file io.Reader, patch func(url string) dtos.UpdateThemeRequest) (string, error) {
	url, err := c.companies.UploadImage(ctx, c.slug, filename, file)
	if err != nil {
		c.log.WithError(err).Warn("theme: upload failed")
		return "", err
	}
	theme, err := c.companies.UpdateTheme(ctx, c.slug, patch(url))
	if err != nil {
		c.log.WithError(err).Warn("theme: update after upload failed")
		return "", err
	}
	c.mu.Lock()
	c.theme = theme
	c.mu.Unlock()
	return url, nil
}

// Reset abandons in-flight completions.
func (c *ThemeController) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.gen++
	c.theme = models.Theme{}
	c.form = ThemeForm{}
}
