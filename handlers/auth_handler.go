package handlers

import (
	"errors"
	"net/http"
	"regexp"
	"strings"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"github.com/patiponrmutl/SchoolMS/auth"
	"github.com/patiponrmutl/SchoolMS/models"
)

type AuthHandler struct {
	db     *gorm.DB
	tokens *auth.Tokens
}

func NewAuthHandler(db *gorm.DB, tokens *auth.Tokens) *AuthHandler {
	return &AuthHandler{db: db, tokens: tokens}
}

/* ====================== DTOs ====================== */

type RegisterReq struct {
	Name     string      `json:"name"`
	Email    string      `json:"email"`
	Password string      `json:"password"`
	Role     models.Role `json:"role"`
}

type LoginReq struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type TokenResp struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

var reEmail = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

/* ====================== Handlers ====================== */

// POST /auth/register
func (h *AuthHandler) Register(c echo.Context) error {
	var req RegisterReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]any{"error": "INVALID_PAYLOAD"})
	}
	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.TrimSpace(req.Email)
	if req.Role == "" {
		req.Role = models.RoleStudent
	}

	if req.Name == "" || !reEmail.MatchString(req.Email) {
		return c.JSON(http.StatusBadRequest, map[string]any{"error": "MISSING_FIELDS"})
	}
	if len(req.Password) < 6 {
		return c.JSON(http.StatusBadRequest, map[string]any{"error": "PASSWORD_TOO_SHORT"})
	}
	if !req.Role.Valid() {
		return c.JSON(http.StatusBadRequest, map[string]any{"error": "INVALID_ROLE"})
	}

	// Email uniqueness is case-sensitive as stored.
	var dup models.User
	err := h.db.First(&dup, "email = ?", req.Email).Error
	if err == nil {
		return c.JSON(http.StatusBadRequest, map[string]any{"error": "EMAIL_EXISTS"})
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return c.JSON(http.StatusInternalServerError, map[string]any{"error": "STORE_UNAVAILABLE"})
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]any{"error": "HASH_FAILED"})
	}
	u := models.User{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: hash,
		Role:         req.Role,
		IsActive:     true,
	}
	if err := h.db.Create(&u).Error; err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]any{"error": "STORE_UNAVAILABLE"})
	}
	return c.JSON(http.StatusOK, u.Public())
}

// POST /auth/login
func (h *AuthHandler) Login(c echo.Context) error {
	var req LoginReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]any{"error": "INVALID_PAYLOAD"})
	}
	if req.Email == "" || req.Password == "" {
		return c.JSON(http.StatusBadRequest, map[string]any{"error": "MISSING_FIELDS"})
	}

	var u models.User
	if err := h.db.First(&u, "email = ?", req.Email).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// Same answer as a wrong password: no user-existence oracle.
			return c.JSON(http.StatusBadRequest, map[string]any{"error": "INVALID_CREDENTIALS"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]any{"error": "STORE_UNAVAILABLE"})
	}
	if !auth.CheckPassword(req.Password, u.PasswordHash) {
		return c.JSON(http.StatusBadRequest, map[string]any{"error": "INVALID_CREDENTIALS"})
	}

	token, err := h.tokens.Issue(&u)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]any{"error": "TOKEN_GEN_FAILED"})
	}
	return c.JSON(http.StatusOK, TokenResp{AccessToken: token, TokenType: "bearer"})
}
