package services

import (
	"testing"
	"time"
)

func TestGetTodayRange(t *testing.T) {
	start, end := getTodayRange()
	now := time.Now()

	if start.Hour() != 0 || start.Minute() != 0 || start.Second() != 0 {
		t.Errorf("Day window should start at midnight, got %v", start)
	}
	if end.Sub(start) != 24*time.Hour {
		t.Errorf("Day window should span 24 hours, got %v", end.Sub(start))
	}
	// The window is half-open so a credit at exactly midnight counts for the
	// new day, never both
	if now.Before(start) || !now.Before(end) {
		t.Errorf("Now %v should fall inside [%v, %v)", now, start, end)
	}
}
