package services

import (
	"fmt"
	"log"

	"github.com/trumanharry/record-nexus-connect/internal/db"
	"github.com/trumanharry/record-nexus-connect/internal/models"
)

// NotifyFollowers creates a notification for every user following the record,
// except the actor themselves. Failures are logged; notifications are
// best-effort.
func NotifyFollowers(actorID uint, recordUID, recordType string, ntype models.NotificationType, message string) {
	var followers []models.User
	if err := db.DB.Where("following @> ?", fmt.Sprintf(`["%s"]`, recordUID)).Find(&followers).Error; err != nil {
		log.Printf("Failed to load followers of %s: %v", recordUID, err)
		return
	}

	var actor *uint
	if actorID != 0 {
		actor = &actorID
	}

	for _, follower := range followers {
		if follower.ID == actorID {
			continue
		}
		notification := models.Notification{
			UserID:     follower.ID,
			ActorID:    actor,
			RecordUID:  recordUID,
			RecordType: recordType,
			Type:       ntype,
			Message:    message,
		}
		if err := db.DB.Create(&notification).Error; err != nil {
			log.Printf("Failed to create notification for user %d: %v", follower.ID, err)
		}
	}
}
