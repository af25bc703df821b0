package handlers

import (
	"net/http"

	"github.com/trumanharry/record-nexus-connect/internal/db"
	"github.com/trumanharry/record-nexus-connect/internal/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm/clause"
)

type RatingHandler struct{}

func NewRatingHandler() *RatingHandler {
	return &RatingHandler{}
}

// Rate - POST /api/records/:type/:uid/rating
// Upserts the caller's star rating for the record and returns the new average.
func (h *RatingHandler) Rate(c *gin.Context) {
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
		Score int `json:"score" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil || input.Score < 1 || input.Score > 5 {
		respondError(c, http.StatusBadRequest, "score must be between 1 and 5")
		return
	}

	rating := models.Rating{
		UserID:     user.ID,
		RecordUID:  uid,
		RecordType: recordType,
		Score:      input.Score,
	}
	if err := db.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "record_uid"}},
		DoUpdates: clause.AssignmentColumns([]string{"score", "updated_at"}),
	}).Create(&rating).Error; err != nil {
		respondError(c, http.StatusInternalServerError, "failed to save rating")
		return
	}

	var average float64
	var count int64
	db.DB.Model(&models.Rating{}).Where("record_uid = ?", uid).Count(&count)
	db.DB.Model(&models.Rating{}).Where("record_uid = ?", uid).
		Select("COALESCE(AVG(score), 0)").Scan(&average)

	c.JSON(http.StatusOK, gin.H{
		"score":        input.Score,
		"average":      average,
		"rating_count": count,
	})
}
