package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"Farol/services/registry"
)

// Ping is the health endpoint.
func Ping(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "pong"})
}

// GetLeaderboard returns the persistent win/games-played counters, ordered
// by wins desc, games played asc, username asc.
func GetLeaderboard(reg *registry.Registry) gin.HandlerFunc {
	return func(c *gin.Context) {
		limit := 20
		if raw := c.Query("limit"); raw != "" {
			n, err := strconv.Atoi(raw)
			if err != nil || n <= 0 || n > 100 {
				c.JSON(http.StatusBadRequest, gin.H{"error": "limit must be between 1 and 100"})
				return
			}
			limit = n
		}

		entries, err := reg.Leaderboard(limit)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "leaderboard unavailable"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"leaderboard": entries})
	}
}

// GetOnlineUsers lists the usernames currently connected.
func GetOnlineUsers(reg *registry.Registry) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"online_users": reg.OnlineUsernames()})
	}
}
