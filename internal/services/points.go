package services

import (
	"log"
	"time"

	"github.com/trumanharry/record-nexus-connect/internal/db"
	"github.com/trumanharry/record-nexus-connect/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Ledger reasons
const (
	ReasonAddComment       = "Add Comment"
	ReasonUpvoteReceived   = "Upvote Received"
	ReasonDownvoteReceived = "Downvote Received"
	ReasonAddRecord        = "Add Record"
	ReasonDailyLogin       = "Daily Login"
)

// Point values
const (
	PointsAddComment = 1
	PointsAddRecord  = 5
	PointsDailyLogin = 2
)

// CreditPoints appends a ledger entry and adjusts the user's balance by the
// same amount, in one transaction. The delta may be negative; no floor is
// applied to the resulting balance. Callers must call this exactly once per
// qualifying event - it has no idempotency key.
func CreditPoints(userID uint, points int, reason string) error {
	err := db.DB.Transaction(func(tx *gorm.DB) error {
		return creditPoints(tx, userID, points, reason)
	})
	if err != nil {
		return err
	}

	InvalidateLeaderboard()
	return nil
}

func creditPoints(tx *gorm.DB, userID uint, points int, reason string) error {
	entry := models.PointTransaction{
		UserID: userID,
		Points: points,
		Reason: reason,
	}
	if err := tx.Create(&entry).Error; err != nil {
		return err
	}

	return tx.Model(&models.User{}).
		Where("id = ?", userID).
		UpdateColumn("points", gorm.Expr("points + ?", points)).
		Error
}

// CreditPointsAsync credits in a goroutine for best-effort callers; failures
// are logged and never surfaced.
func CreditPointsAsync(userID uint, points int, reason string) {
	go func() {
		if err := CreditPoints(userID, points, reason); err != nil {
			log.Printf("Failed to credit %q points for user %d: %v", reason, userID, err)
		}
	}()
}

func getTodayRange() (time.Time, time.Time) {
	now := time.Now()
	startOfDay := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	endOfDay := startOfDay.Add(24 * time.Hour)
	return startOfDay, endOfDay
}

func countTodayTransactions(tx *gorm.DB, userID uint, reason string) (int64, error) {
	startOfDay, endOfDay := getTodayRange()
	var count int64
	err := tx.Model(&models.PointTransaction{}).
		Where("user_id = ? AND reason = ? AND created_at >= ? AND created_at < ?", userID, reason, startOfDay, endOfDay).
		Count(&count).Error
	return count, err
}

// CreditDailyLogin awards the daily login credit at most once per calendar
// day. Returns the points awarded and whether the user was already credited.
// The existence check and the credit run in one transaction with the user row
// locked, so concurrent logins serialize instead of double-crediting.
func CreditDailyLogin(userID uint) (int, bool, error) {
	alreadyCredited := false

	err := db.DB.Transaction(func(tx *gorm.DB) error {
		var user models.User
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&user, userID).Error; err != nil {
			return err
		}

		count, err := countTodayTransactions(tx, userID, ReasonDailyLogin)
		if err != nil {
			return err
		}
		if count > 0 {
			alreadyCredited = true
			return nil
		}

		return creditPoints(tx, userID, PointsDailyLogin, ReasonDailyLogin)
	})
	if err != nil {
		return 0, false, err
	}
	if alreadyCredited {
		return 0, true, nil
	}

	InvalidateLeaderboard()
	return PointsDailyLogin, false, nil
}
