package game

import (
	"log"
	"math/rand"
	"sync"

	"Farol/services/cards"
)

type Phase string

const (
	PhaseWaiting Phase = "waiting"
	PhasePlaying Phase = "playing"
	PhaseEnded   Phase = "ended"
)

// Call is the declaration currently on the table.
type Call struct {
	PlayerID    string
	Declaration cards.Declaration
}

// Room is the single writer for one game. Every command takes the mutex,
// validates, and either commits fully or returns an error with state
// untouched. The room never does I/O: persistence side effects (win and
// games-played counters) travel out in the result structs and the gateway
// applies them.
type Room struct {
	mu sync.Mutex

	ID         string
	maxPlayers int
	rng        *rand.Rand

	phase       Phase
	hostID      string
	seats       []*Player
	waiting     []waiter
	roundNumber int
	starterID   string
	currentID   string
	currentCall *Call
	reveal      []SeatCards
}

func NewRoom(id string, maxPlayers int, seed int64) *Room {
	if maxPlayers <= 0 {
		maxPlayers = 8
	}
	return &Room{
		ID:         id,
		maxPlayers: maxPlayers,
		rng:        newRNG(seed),
		phase:      PhaseWaiting,
	}
}

type JoinResult struct {
	Seated bool
	IsHost bool
}

type HostChange struct {
	NewHostID   string
	NewHostName string
}

type GameEnd struct {
	WinnerID       string
	WinnerName     string
	ParticipantIDs []string
}

type RoundInfo struct {
	RoundNumber     int
	CurrentPlayerID string
}

type LeaveResult struct {
	WasPresent bool
	WasSeated  bool
	Username   string
	HostChange *HostChange
	GameEnd    *GameEnd
	NextRound  *RoundInfo
}

// Join seats the user if the room is waiting and has space, otherwise
// queues them on the waiting list. The first seated user becomes host.
func (r *Room) Join(userID, username string) JoinResult {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.phase == PhaseWaiting && len(r.seats) < r.maxPlayers {
		r.seats = append(r.seats, &Player{UserID: userID, Username: username})
		if r.hostID == "" {
			r.hostID = userID
			log.Printf("[ROOM] %s is now host of room %s", username, r.ID)
		}
		return JoinResult{Seated: true, IsHost: r.hostID == userID}
	}

	r.waiting = append(r.waiting, waiter{UserID: userID, Username: username})
	return JoinResult{Seated: false}
}

// Leave removes the user from the room. A seated, non-eliminated player
// leaving mid-round moves the turn cursor before their slot disappears;
// if only one active player remains afterwards the game ends with that
// player as winner.
func (r *Room) Leave(userID string) LeaveResult {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, w := range r.waiting {
		if w.UserID == userID {
			r.waiting = append(r.waiting[:i], r.waiting[i+1:]...)
			return LeaveResult{WasPresent: true, Username: w.Username}
		}
	}

	idx := -1
	for i, p := range r.seats {
		if p.UserID == userID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return LeaveResult{}
	}

	departed := r.seats[idx]
	res := LeaveResult{WasPresent: true, WasSeated: true, Username: departed.Username}

	if r.phase == PhasePlaying && !departed.Eliminated && r.currentID == userID {
		r.currentID = r.nextActiveAfterLocked(userID)
	}
	if r.starterID == userID {
		// Rotation falls back to the first remaining active seat.
		r.starterID = ""
	}

	r.seats = append(r.seats[:idx], r.seats[idx+1:]...)

	if r.hostID == userID {
		res.HostChange = r.pickHostLocked()
	}

	if r.phase == PhasePlaying && len(r.activeLocked()) <= 1 {
		res.GameEnd = r.endGameLocked()
	}
	return res
}

// ResolveKick validates host privilege and resolves the target's user id.
// The actual removal rides on the target's connection teardown, exactly
// like a voluntary disconnect.
func (r *Room) ResolveKick(hostID, targetUsername string) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if hostID != r.hostID {
		return "", ErrNotHost
	}
	for _, p := range r.seats {
		if p.Username == targetUsername {
			return p.UserID, nil
		}
	}
	for _, w := range r.waiting {
		if w.Username == targetUsername {
			return w.UserID, nil
		}
	}
	return "", ErrUnknownTarget
}

// Start begins a fresh game. Host only, waiting phase only, two seated
// players minimum.
func (r *Room) Start(userID string) (*RoundInfo, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if userID != r.hostID {
		return nil, ErrNotHost
	}
	if r.phase != PhaseWaiting {
		return nil, ErrWrongPhase
	}
	if len(r.seats) < 2 {
		return nil, ErrNotEnoughPlayers
	}

	for _, p := range r.seats {
		p.Losses = 0
		p.Eliminated = false
		p.Hand = nil
	}
	r.phase = PhasePlaying
	r.roundNumber = 0
	r.starterID = ""
	ri := r.startRoundLocked()
	log.Printf("[ROOM] game started in room %s with %d players", r.ID, len(r.seats))
	return ri, nil
}

// Restart aborts whatever is running and returns the room to the waiting
// phase with losses cleared and the waiting list admitted. Host only.
func (r *Room) Restart(userID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if userID != r.hostID {
		return ErrNotHost
	}
	r.resetToWaitingLocked()
	log.Printf("[ROOM] room %s restarted by host", r.ID)
	return nil
}

func (r *Room) IsEmpty() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.seats) == 0 && len(r.waiting) == 0
}

func (r *Room) HostID() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.hostID
}

func (r *Room) IsHost(userID string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return userID != "" && userID == r.hostID
}

// activeLocked returns seated, non-eliminated players in seating order.
func (r *Room) activeLocked() []*Player {
	active := make([]*Player, 0, len(r.seats))
	for _, p := range r.seats {
		if !p.Eliminated {
			active = append(active, p)
		}
	}
	return active
}

func (r *Room) playerLocked(userID string) *Player {
	for _, p := range r.seats {
		if p.UserID == userID {
			return p
		}
	}
	return nil
}

// nextActiveAfterLocked walks the seating order clockwise from userID and
// returns the next non-eliminated player's id.
func (r *Room) nextActiveAfterLocked(userID string) string {
	n := len(r.seats)
	start := -1
	for i, p := range r.seats {
		if p.UserID == userID {
			start = i
			break
		}
	}
	if start < 0 || n == 0 {
		active := r.activeLocked()
		if len(active) > 0 {
			return active[0].UserID
		}
		return ""
	}
	for step := 1; step <= n; step++ {
		p := r.seats[(start+step)%n]
		if !p.Eliminated && p.UserID != userID {
			return p.UserID
		}
	}
	return userID
}

// pickHostLocked promotes a new host uniformly at random among the seated,
// non-eliminated players. Nil when nobody qualifies.
func (r *Room) pickHostLocked() *HostChange {
	candidates := r.activeLocked()
	if len(candidates) == 0 {
		r.hostID = ""
		return nil
	}
	next := candidates[r.rng.Intn(len(candidates))]
	r.hostID = next.UserID
	log.Printf("[ROOM] host of room %s is now %s", r.ID, next.Username)
	return &HostChange{NewHostID: next.UserID, NewHostName: next.Username}
}

// resetToWaitingLocked clears game progress and promotes queued users into
// free seats, capped at the room maximum.
func (r *Room) resetToWaitingLocked() {
	r.phase = PhaseWaiting
	r.roundNumber = 0
	r.currentCall = nil
	r.currentID = ""
	r.starterID = ""
	r.reveal = nil
	for _, p := range r.seats {
		p.Losses = 0
		p.Eliminated = false
		p.Hand = nil
	}
	for len(r.waiting) > 0 && len(r.seats) < r.maxPlayers {
		w := r.waiting[0]
		r.waiting = r.waiting[1:]
		r.seats = append(r.seats, &Player{UserID: w.UserID, Username: w.Username})
	}
	if r.hostID == "" && len(r.seats) > 0 {
		r.pickHostLocked()
	}
}
