package registry

import (
	"errors"
	"fmt"
	"log"
	"regexp"
	"sync"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	models "Farol/models/postgres"
	"Farol/services/redis"
)

var (
	ErrUsernameInvalid = errors.New("username must be 2-20 characters: letters, digits, underscore or dash")
	ErrUsernameTaken   = errors.New("this username is online right now, choose another one")
	ErrUnknownSession  = errors.New("unknown user session")
)

var usernamePattern = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)

// Session is one online user: a session-scoped id bound to a durable
// username row for as long as the connection lives.
type Session struct {
	UserID   string
	Username string
}

type LeaderboardEntry struct {
	Username    string `json:"username"`
	Wins        int    `json:"wins"`
	GamesPlayed int    `json:"games_played"`
}

// Registry owns the durable users table and the in-memory online set. It
// is shared across rooms: reads are concurrent, writes serialize on the
// mutex, and every DB write is retried once before giving up (the session
// stays authoritative in memory on repeated failure).
type Registry struct {
	db             *gorm.DB
	rc             *redis.RedisClient
	maxUsernameLen int

	mu       sync.RWMutex
	sessions map[string]*Session // userID -> session
	online   map[string]string   // username -> userID
}

func New(db *gorm.DB, rc *redis.RedisClient, maxUsernameLen int) *Registry {
	if maxUsernameLen <= 0 {
		maxUsernameLen = 20
	}
	return &Registry{
		db:             db,
		rc:             rc,
		maxUsernameLen: maxUsernameLen,
		sessions:       make(map[string]*Session),
		online:         make(map[string]string),
	}
}

// ResetOnlineFlags marks every row offline and clears the presence set.
// Called once at startup: nobody survives a server restart online.
func (r *Registry) ResetOnlineFlags() error {
	if err := r.rc.FlushPresence(); err != nil {
		log.Printf("[REGISTRY] presence flush failed: %v", err)
	}
	return r.withRetry(func() error {
		return r.db.Model(&models.User{}).
			Where("is_online = ?", true).
			Update("is_online", false).Error
	})
}

// Claim reserves a username for a new session. The username must pass
// validation and must not be online; an offline durable row is reused so
// its counters survive.
func (r *Registry) Claim(username string) (*Session, error) {
	if len(username) < 2 || len(username) > r.maxUsernameLen || !usernamePattern.MatchString(username) {
		return nil, ErrUsernameInvalid
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, taken := r.online[username]; taken {
		return nil, ErrUsernameTaken
	}

	now := time.Now()
	var user models.User
	err := r.db.Where("username = ?", username).First(&user).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		user = models.User{
			ID:        uuid.NewString(),
			Username:  username,
			FirstSeen: now,
			LastSeen:  now,
			IsOnline:  true,
		}
		if err := r.withRetry(func() error { return r.db.Create(&user).Error }); err != nil {
			return nil, fmt.Errorf("error creating user %s: %v", username, err)
		}
	case err != nil:
		return nil, fmt.Errorf("error looking up user %s: %v", username, err)
	default:
		err := r.withRetry(func() error {
			return r.db.Model(&user).
				Updates(map[string]interface{}{"is_online": true, "last_seen": now}).Error
		})
		if err != nil {
			// Keep the in-memory session authoritative, the row catches
			// up on release.
			log.Printf("[REGISTRY] failed to mark %s online: %v", username, err)
		}
	}

	session := &Session{UserID: uuid.NewString(), Username: username}
	r.sessions[session.UserID] = session
	r.online[username] = session.UserID

	if err := r.rc.AddOnlineUser(username); err != nil {
		log.Printf("[REGISTRY] presence add failed for %s: %v", username, err)
	}
	log.Printf("[REGISTRY] %s is online (session %s)", username, session.UserID)
	return session, nil
}

// Release marks the session's username offline. Counters stay.
func (r *Registry) Release(userID string) {
	r.mu.Lock()
	session, ok := r.sessions[userID]
	if ok {
		delete(r.sessions, userID)
		delete(r.online, session.Username)
	}
	r.mu.Unlock()
	if !ok {
		return
	}

	err := r.withRetry(func() error {
		return r.db.Model(&models.User{}).
			Where("username = ?", session.Username).
			Updates(map[string]interface{}{"is_online": false, "last_seen": time.Now()}).Error
	})
	if err != nil {
		log.Printf("[REGISTRY] failed to mark %s offline: %v", session.Username, err)
	}
	if err := r.rc.RemoveOnlineUser(session.Username); err != nil {
		log.Printf("[REGISTRY] presence remove failed for %s: %v", session.Username, err)
	}
	log.Printf("[REGISTRY] %s is offline", session.Username)
}

// UsernameOf resolves a live session id.
func (r *Registry) UsernameOf(userID string) (string, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if s, ok := r.sessions[userID]; ok {
		return s.Username, true
	}
	return "", false
}

// OnlineUsernames is the current presence list, insertion order not
// guaranteed.
func (r *Registry) OnlineUsernames() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.online))
	for name := range r.online {
		names = append(names, name)
	}
	return names
}

// RecordWin bumps the winner's wins counter.
func (r *Registry) RecordWin(userID string) error {
	return r.bumpCounter(userID, "wins")
}

// RecordGame bumps a participant's games_played counter.
func (r *Registry) RecordGame(userID string) error {
	return r.bumpCounter(userID, "games_played")
}

func (r *Registry) bumpCounter(userID, column string) error {
	username, ok := r.UsernameOf(userID)
	if !ok {
		return ErrUnknownSession
	}
	err := r.withRetry(func() error {
		return r.db.Model(&models.User{}).
			Where("username = ?", username).
			UpdateColumn(column, gorm.Expr(column+" + 1")).Error
	})
	if err != nil {
		return fmt.Errorf("error updating %s for %s: %v", column, username, err)
	}
	if err := r.rc.InvalidateLeaderboard(); err != nil {
		log.Printf("[REGISTRY] leaderboard cache invalidation failed: %v", err)
	}
	return nil
}

// Leaderboard returns up to limit entries ordered by wins desc, then
// games_played asc, then username asc. Served from the Redis cache when a
// fresh snapshot exists.
func (r *Registry) Leaderboard(limit int) ([]LeaderboardEntry, error) {
	if limit <= 0 {
		limit = 20
	}

	var entries []LeaderboardEntry
	if hit, err := r.rc.CachedLeaderboard(limit, &entries); err == nil && hit {
		return entries, nil
	} else if err != nil {
		log.Printf("[REGISTRY] leaderboard cache read failed: %v", err)
	}

	err := r.db.Model(&models.User{}).
		Select("username, wins, games_played").
		Order("wins DESC, games_played ASC, username ASC").
		Limit(limit).
		Scan(&entries).Error
	if err != nil {
		return nil, fmt.Errorf("error reading leaderboard: %v", err)
	}

	if err := r.rc.CacheLeaderboard(limit, entries); err != nil {
		log.Printf("[REGISTRY] leaderboard cache write failed: %v", err)
	}
	return entries, nil
}

// withRetry runs a persistence write, retrying once on failure.
func (r *Registry) withRetry(fn func() error) error {
	if err := fn(); err != nil {
		log.Printf("[REGISTRY] write failed, retrying once: %v", err)
		return fn()
	}
	return nil
}
