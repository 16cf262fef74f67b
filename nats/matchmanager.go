package nats

import (
	"fmt"
	"sync"

	natsgo "github.com/nats-io/nats.go"

	"github.com/arebrov/GoatGroupBot/game"
	"github.com/arebrov/GoatGroupBot/logging"
)

// MatchManager keeps the NatsMatch adapters alongside the engine's match
// registry and tears both down when a match ends.
type MatchManager struct {
	manager       *game.Manager
	activeMatches map[string]*NatsMatch
	nc            *natsgo.Conn

	lock sync.Mutex
}

func NewMatchManager(natsURL string) (*MatchManager, error) {
	nc, err := natsgo.Connect(natsURL)
	if err != nil {
		natsLogger.Error().Msg(fmt.Sprintf("Failed to connect to nats server: %v", err))
		return nil, err
	}
	return &MatchManager{
		manager:       game.NewManager(),
		activeMatches: make(map[string]*NatsMatch),
		nc:            nc,
	}, nil
}

// NewMatch registers a fresh match with the initiating player at seat 0
// and wires its NATS subjects.
func (mm *MatchManager) NewMatch(ownerPlayerID uint64) (*NatsMatch, error) {
	match, err := newNatsMatch(mm.nc, mm.manager, ownerPlayerID)
	if err != nil {
		return nil, err
	}
	mm.lock.Lock()
	mm.activeMatches[match.MatchID()] = match
	mm.lock.Unlock()
	return match, nil
}

func (mm *MatchManager) GetMatch(matchID string) (*NatsMatch, bool) {
	mm.lock.Lock()
	defer mm.lock.Unlock()
	match, ok := mm.activeMatches[matchID]
	return match, ok
}

func (mm *MatchManager) EndMatch(matchID string) {
	mm.lock.Lock()
	match, ok := mm.activeMatches[matchID]
	delete(mm.activeMatches, matchID)
	mm.lock.Unlock()
	if ok {
		match.cleanup()
	}
	mm.manager.EndMatch(matchID)
	natsLogger.Info().
		Str(logging.MatchIDKey, matchID).
		Msg("nats match ended")
}

func (mm *MatchManager) MatchCount() int {
	mm.lock.Lock()
	defer mm.lock.Unlock()
	return len(mm.activeMatches)
}
