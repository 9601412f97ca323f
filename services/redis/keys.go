package redis

/**
 * Key formats for the Redis (key, value) pairs, kept in one place so the
 * formats never drift between writers and readers.
 */

import "fmt"

func onlineUsersKey() string {
	return "farol:online_users"
}

func leaderboardKey(limit int) string {
	return fmt.Sprintf("farol:leaderboard:%d", limit)
}

func leaderboardPattern() string {
	return "farol:leaderboard:*"
}
