package handlers

import (
	"net/http"
	"strconv"

	"github.com/trumanharry/record-nexus-connect/internal/db"
	"github.com/trumanharry/record-nexus-connect/internal/models"

	"github.com/gin-gonic/gin"
)

type NotificationHandler struct{}

func NewNotificationHandler() *NotificationHandler {
	return &NotificationHandler{}
}

// List - GET /api/notifications
func (h *NotificationHandler) List(c *gin.Context) {
	user := currentUser(c)

	var notifications []models.Notification
	if err := db.DB.Preload("Actor").
		Where("user_id = ?", user.ID).
		Order("created_at DESC").Limit(50).Find(&notifications).Error; err != nil {
		respondError(c, http.StatusInternalServerError, "failed to load notifications")
		return
	}

	var unread int64
	db.DB.Model(&models.Notification{}).Where("user_id = ? AND is_read = ?", user.ID, false).Count(&unread)

	c.JSON(http.StatusOK, gin.H{
		"notifications": notifications,
		"unread":        unread,
	})
}

// Read - POST /api/notifications/:id/read
func (h *NotificationHandler) Read(c *gin.Context) {
	user := currentUser(c)

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		respondError(c, http.StatusBadRequest, "invalid notification id")
		return
	}

	result := db.DB.Model(&models.Notification{}).
		Where("id = ? AND user_id = ?", id, user.ID).
		Update("is_read", true)
	if result.Error != nil {
		respondError(c, http.StatusInternalServerError, "failed to update notification")
		return
	}
	if result.RowsAffected == 0 {
		respondError(c, http.StatusNotFound, "notification not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

// ReadAll - POST /api/notifications/read-all
func (h *NotificationHandler) ReadAll(c *gin.Context) {
	user := currentUser(c)

	if err := db.DB.Model(&models.Notification{}).
		Where("user_id = ? AND is_read = ?", user.ID, false).
		Update("is_read", true).Error; err != nil {
		respondError(c, http.StatusInternalServerError, "failed to update notifications")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

// Delete - DELETE /api/notifications/:id
func (h *NotificationHandler) Delete(c *gin.Context) {
	user := currentUser(c)

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		respondError(c, http.StatusBadRequest, "invalid notification id")
		return
	}

	result := db.DB.Where("id = ? AND user_id = ?", id, user.ID).Delete(&models.Notification{})
	if result.Error != nil {
		respondError(c, http.StatusInternalServerError, "failed to delete notification")
		return
	}
	if result.RowsAffected == 0 {
		respondError(c, http.StatusNotFound, "notification not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}
