package stubapi

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/whitecaroot/careers-builder/internal/dtos"
)

const (
	ctxUser    = "stubapi.user"
	ctxCompany = "stubapi.company"
)

func (s *Server) handleRegister(c *gin.Context) {
	var req dtos.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "Invalid registration payload: "+err.Error())
		return
	}

	var existing UserRecord
	if err := s.db.Where(&UserRecord{Email: req.Email}).First(&existing).Error; err == nil {
		fail(c, http.StatusConflict, "Email already registered")
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		fail(c, http.StatusInternalServerError, "Failed to hash password")
		return
	}

	company := CompanyRecord{
		ID:   uuid.NewString(),
		Name: req.CompanyName,
		Slug: uniqueSlug(slugify(req.CompanyName), func(slug string) bool {
			var count int64
			s.db.Model(&CompanyRecord{}).Where("slug = ?", slug).Count(&count)
			return count > 0
		}),
	}
	if err := s.db.Create(&company).Error; err != nil {
		fail(c, http.StatusInternalServerError, "Failed to create company")
		return
	}

	user := UserRecord{
		ID:           uuid.NewString(),
		Email:        req.Email,
		PasswordHash: string(hash),
		FullName:     req.FullName,
		CompanyID:    company.ID,
	}
	if err := s.db.Create(&user).Error; err != nil {
		fail(c, http.StatusInternalServerError, "Failed to create user")
		return
	}

	c.JSON(http.StatusCreated, dtos.AuthResponse{
		Token:   s.issueToken(user.ID),
		User:    user.User(),
		Company: company.Company(),
	})
}

func (s *Server) handleLogin(c *gin.Context) {
	var req dtos.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "Invalid login payload: "+err.Error())
		return
	}

	var user UserRecord
	if err := s.db.Where(&UserRecord{Email: req.Email}).First(&user).Error; err != nil {
		fail(c, http.StatusUnauthorized, "Invalid email or password")
		return
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)) != nil {
		fail(c, http.StatusUnauthorized, "Invalid email or password")
		return
	}

	var company CompanyRecord
	if err := s.db.First(&company, "id = ?", user.CompanyID).Error; err != nil {
		fail(c, http.StatusInternalServerError, "Company record missing")
		return
	}

	c.JSON(http.StatusOK, dtos.AuthResponse{
		Token:   s.issueToken(user.ID),
		User:    user.User(),
		Company: company.Company(),
	})
}

func (s *Server) handleMe(c *gin.Context) {
	user := c.MustGet(ctxUser).(UserRecord)
	c.JSON(http.StatusOK, dtos.MeResponse{User: user.User()})
}

func (s *Server) issueToken(userID string) string {
	token := uuid.NewString()
	s.tokenMu.Lock()
	s.tokens[token] = userID
	s.tokenMu.Unlock()
	return token
}

// requireAuth resolves the bearer token to a user and their company.
func (s *Server) requireAuth(c *gin.Context) {
	header := c.GetHeader("Authorization")
	token, ok := strings.CutPrefix(header, "Bearer ")
	if !ok || token == "" {
		fail(c, http.StatusUnauthorized, "Missing bearer token")
		c.Abort()
		return
	}

	s.tokenMu.RLock()
	userID, found := s.tokens[token]
	s.tokenMu.RUnlock()
	if !found {
		fail(c, http.StatusUnauthorized, "Invalid or expired token")
		c.Abort()
		return
	}

	var user UserRecord
	if err := s.db.First(&user, "id = ?", userID).Error; err != nil {
		fail(c, http.StatusUnauthorized, "Unknown user")
		c.Abort()
		return
	}
	var company CompanyRecord
	if err := s.db.First(&company, "id = ?", user.CompanyID).Error; err != nil {
		fail(c, http.StatusUnauthorized, "Unknown company")
		c.Abort()
		return
	}

	c.Set(ctxUser, user)
	c.Set(ctxCompany, company)
	c.Next()
}

// requireCompanyScope rejects writes against a company the caller does not
// own.
func (s *Server) requireCompanyScope(c *gin.Context) {
	company := c.MustGet(ctxCompany).(CompanyRecord)
	if company.Slug != c.Param("slug") {
		fail(c, http.StatusForbidden, "Not your company")
		c.Abort()
		return
	}
	c.Next()
}
