package services

import (
	"time"

	"github.com/trumanharry/record-nexus-connect/internal/db"
	"github.com/trumanharry/record-nexus-connect/internal/models"
	"github.com/trumanharry/record-nexus-connect/internal/utils"
)

type LeaderboardEntry struct {
	Uid    string `json:"uid"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Role   string `json:"role"`
	Points int    `json:"points"`
}

const leaderboardCacheKey = "points:leaderboard"

// Leaderboard returns the top 10 users by point balance, cached briefly so
// a busy points page doesn't hammer the users table.
func Leaderboard() ([]LeaderboardEntry, error) {
	if cached := utils.GetCache().Get(leaderboardCacheKey); cached != nil {
		if entries, ok := cached.([]LeaderboardEntry); ok {
			return entries, nil
		}
	}

	var users []models.User
	if err := db.DB.Order("points DESC").Limit(10).Find(&users).Error; err != nil {
		return nil, err
	}

	entries := make([]LeaderboardEntry, 0, len(users))
	for _, u := range users {
		entries = append(entries, LeaderboardEntry{
			Uid:    u.Uid,
			Name:   u.DisplayName(),
			Email:  u.Email,
			Role:   string(models.NormalizeRole(u.Role)),
			Points: u.Points,
		})
	}

	utils.GetCache().Set(leaderboardCacheKey, entries, time.Minute)
	return entries, nil
}

// InvalidateLeaderboard drops the cached ranking after a balance change.
func InvalidateLeaderboard() {
	utils.GetCache().Delete(leaderboardCacheKey)
}
