package handlers

import (
	"net/http"

	"github.com/trumanharry/record-nexus-connect/internal/db"
	"github.com/trumanharry/record-nexus-connect/internal/models"
	"github.com/trumanharry/record-nexus-connect/internal/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type UserHandler struct{}

func NewUserHandler() *UserHandler {
	return &UserHandler{}
}

// Profile - GET /api/users/:uid
func (h *UserHandler) Profile(c *gin.Context) {
	uid := c.Param("uid")

	var user models.User
	if err := db.DB.Where("uid = ?", uid).First(&user).Error; err != nil {
		respondError(c, http.StatusNotFound, "user not found")
		return
	}

	var commentCount int64
	db.DB.Model(&models.Comment{}).Where("user_id = ?", user.ID).Count(&commentCount)

	c.JSON(http.StatusOK, gin.H{
		"uid":           user.Uid,
		"name":          user.DisplayName(),
		"role":          models.NormalizeRole(user.Role),
		"points":        user.Points,
		"comment_count": commentCount,
		"joined_at":     user.CreatedAt,
	})
}

// Points - GET /api/points
// Returns the caller's ledger newest-first along with the running balance.
func (h *UserHandler) Points(c *gin.Context) {
	user := currentUser(c)

	var transactions []models.PointTransaction
	if err := db.DB.Where("user_id = ?", user.ID).
		Order("created_at DESC").Limit(100).Find(&transactions).Error; err != nil {
		respondError(c, http.StatusInternalServerError, "failed to load point history")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"balance":      user.Points,
		"transactions": transactions,
	})
}

// Leaderboard - GET /api/leaderboard
func (h *UserHandler) Leaderboard(c *gin.Context) {
	entries, err := services.Leaderboard()
	if err != nil {
		respondError(c, http.StatusInternalServerError, "failed to load leaderboard")
		return
	}
	c.JSON(http.StatusOK, gin.H{"leaderboard": entries})
}

// Follow - POST /api/records/:type/:uid/follow
// Body {"follow": true} subscribes the caller to the record; false unsubscribes.
func (h *UserHandler) Follow(c *gin.Context) {
	user := currentUser(c)
	recordType := c.Param("type")
	uid := c.Param("uid")

	if !models.ValidEntityType(recordType) {
		respondError(c, http.StatusBadRequest, "unknown record type")
		return
	}
	if !recordExists(recordType, uid) {
		respondError(c, http.StatusNotFound, "record not found")
		return
	}

	var input struct {
		Follow bool `json:"follow"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		respondError(c, http.StatusBadRequest, "invalid request body")
		return
	}

	// Re-read the following set under a row lock so two requests from the
	// same user cannot clobber each other's toggle
	var following models.StringList
	err := db.DB.Transaction(func(tx *gorm.DB) error {
		var owner models.User
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&owner, user.ID).Error; err != nil {
			return err
		}

		if input.Follow {
			following = owner.Following.With(uid)
		} else {
			following = owner.Following.Without(uid)
		}

		return tx.Model(&models.User{}).Where("id = ?", owner.ID).
			Update("following", following).Error
	})
	if err != nil {
		respondError(c, http.StatusInternalServerError, "failed to update following")
		return
	}

	c.JSON(http.StatusOK, gin.H{"following": following})
}
