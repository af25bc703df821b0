package handlers

import (
	"net/http"
	"strings"

	"github.com/trumanharry/record-nexus-connect/internal/db"
	"github.com/trumanharry/record-nexus-connect/internal/middleware"
	"github.com/trumanharry/record-nexus-connect/internal/models"
	"github.com/trumanharry/record-nexus-connect/internal/services"
	"github.com/trumanharry/record-nexus-connect/internal/utils"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type AuthHandler struct{}

func NewAuthHandler() *AuthHandler {
	return &AuthHandler{}
}

type registerInput struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
	Name     string `json:"name"`
}

func (h *AuthHandler) Register(c *gin.Context) {
	var input registerInput
	if err := c.ShouldBindJSON(&input); err != nil {
		respondError(c, http.StatusBadRequest, "email and password are required")
		return
	}

	if !strings.Contains(input.Email, "@") {
		respondError(c, http.StatusBadRequest, "invalid email address")
		return
	}
	if len(input.Password) < 6 {
		respondError(c, http.StatusBadRequest, "password must be at least 6 characters")
		return
	}

	hash, err := utils.HashPassword(input.Password)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "failed to create account")
		return
	}

	user := models.User{
		Uid:      uuid.NewString(),
		Email:    input.Email,
		Name:     input.Name,
		Password: hash,
		Role:     string(models.RoleCorporate), // new accounts start as corporate
	}

	if err := db.DB.Create(&user).Error; err != nil {
		respondError(c, http.StatusConflict, "email already registered")
		return
	}

	session := sessions.Default(c)
	session.Set("user_id", user.ID)
	session.Save()

	c.JSON(http.StatusCreated, userProfile(&user))
}

type loginInput struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (h *AuthHandler) Login(c *gin.Context) {
	var input loginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		respondError(c, http.StatusBadRequest, "email and password are required")
		return
	}

	var user models.User
	if err := db.DB.Where("email = ?", input.Email).First(&user).Error; err != nil {
		respondError(c, http.StatusUnauthorized, "invalid email or password")
		return
	}

	if !utils.CheckPasswordHash(input.Password, user.Password) {
		respondError(c, http.StatusUnauthorized, "invalid email or password")
		return
	}

	session := sessions.Default(c)
	session.Set("user_id", user.ID)
	session.Save()

	// First login of the day earns the daily credit
	go services.CreditDailyLogin(user.ID)

	c.JSON(http.StatusOK, userProfile(&user))
}

func (h *AuthHandler) Logout(c *gin.Context) {
	session := sessions.Default(c)
	session.Clear()
	session.Save()
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// Me returns the authenticated user's profile
func (h *AuthHandler) Me(c *gin.Context) {
	user := currentUser(c)
	if user == nil {
		respondError(c, http.StatusUnauthorized, "authentication required")
		return
	}

	profile := userProfile(user)
	if unread, exists := c.Get(middleware.UnreadCountKey); exists {
		profile["unread_notifications"] = unread
	}
	c.JSON(http.StatusOK, profile)
}

// userProfile shapes a user row for the client, with the role normalized
func userProfile(user *models.User) gin.H {
	return gin.H{
		"id":        user.ID,
		"uid":       user.Uid,
		"email":     user.Email,
		"name":      user.DisplayName(),
		"role":      models.NormalizeRole(user.Role),
		"points":    user.Points,
		"following": user.Following,
	}
}
