package postgres

import (
	"time"
)

/*
 * 'User' is the single durable table: one row per username ever seen,
 * carrying the leaderboard counters. IsOnline is volatile truth mirrored
 * here so it can be reset to false on startup.
 */
type User struct {
	ID          string    `gorm:"primaryKey;size:36"`
	Username    string    `gorm:"size:20;not null;uniqueIndex"`
	FirstSeen   time.Time `gorm:"default:CURRENT_TIMESTAMP"`
	LastSeen    time.Time `gorm:"default:CURRENT_TIMESTAMP"`
	IsOnline    bool      `gorm:"default:false"`
	Wins        int       `gorm:"default:0"`
	GamesPlayed int       `gorm:"default:0"`
}
