package game

import (
	"sync"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/arebrov/GoatGroupBot/logging"
)

var managerLogger = log.With().Str("logger_name", "game::manager").Logger()

// Manager is the process-level registry of running matches. Whatever maps
// chat or session identifiers to matches goes through it; there is no
// ambient match state.
type Manager struct {
	activeMatches map[string]*Match

	lock sync.Mutex
}

func NewManager() *Manager {
	return &Manager{
		activeMatches: make(map[string]*Match),
	}
}

// NewMatch registers a match under a fresh ID with the initiating player
// at seat 0.
func (mgr *Manager) NewMatch(ownerPlayerID uint64, receiver MessageReceiver) *Match {
	matchID := uuid.New().String()
	match := NewMatch(matchID, ownerPlayerID, receiver)
	mgr.lock.Lock()
	mgr.activeMatches[matchID] = match
	mgr.lock.Unlock()
	managerLogger.Info().
		Str(logging.MatchIDKey, matchID).
		Uint64(logging.PlayerIDKey, ownerPlayerID).
		Msg("match registered")
	return match
}

func (mgr *Manager) GetMatch(matchID string) (*Match, bool) {
	mgr.lock.Lock()
	defer mgr.lock.Unlock()
	match, ok := mgr.activeMatches[matchID]
	return match, ok
}

// EndMatch drops a match from the registry; the match lives only in
// memory, so this is the whole stop-game flow.
func (mgr *Manager) EndMatch(matchID string) {
	mgr.lock.Lock()
	delete(mgr.activeMatches, matchID)
	mgr.lock.Unlock()
	managerLogger.Info().
		Str(logging.MatchIDKey, matchID).
		Msg("match ended")
}

func (mgr *Manager) MatchCount() int {
	mgr.lock.Lock()
	defer mgr.lock.Unlock()
	return len(mgr.activeMatches)
}
