package caching

import (
	"fmt"
	"math/rand"

	lru "github.com/hashicorp/golang-lru"
	"github.com/pkg/errors"
)

// MatchCodeCache maps short join codes to match IDs and back. Players
// share the code instead of the full match UUID.
type MatchCodeCache struct {
	matchIDToCode *lru.Cache
	codeToMatchID *lru.Cache

	randGen *rand.Rand
}

const codeAlphabet = "ABCDEFGHJKMNPQRSTUVWXYZ23456789"
const codeLength = 6

func NewMatchCodeCache(randGen *rand.Rand) (*MatchCodeCache, error) {
	size := 100000
	matchIDToCode, err := lru.New(size)
	if err != nil {
		return nil, errors.Wrap(err, "Unable to initialize matchIDToCode cache")
	}
	codeToMatchID, err := lru.New(size)
	if err != nil {
		return nil, errors.Wrap(err, "Unable to initialize codeToMatchID cache")
	}
	return &MatchCodeCache{
		matchIDToCode: matchIDToCode,
		codeToMatchID: codeToMatchID,
		randGen:       randGen,
	}, nil
}

// Assign generates a fresh join code for a match and registers both
// directions of the mapping.
func (c *MatchCodeCache) Assign(matchID string) (string, error) {
	if matchID == "" {
		return "", fmt.Errorf("Invalid match ID [%s]", matchID)
	}
	for attempt := 0; attempt < 10; attempt++ {
		code := c.newCode()
		if _, taken := c.codeToMatchID.Get(code); taken {
			continue
		}
		c.matchIDToCode.Add(matchID, code)
		c.codeToMatchID.Add(code, matchID)
		return code, nil
	}
	return "", fmt.Errorf("Unable to generate a free join code")
}

func (c *MatchCodeCache) MatchIDToCode(matchID string) (string, bool) {
	v, exists := c.matchIDToCode.Get(matchID)
	if !exists {
		return "", false
	}
	return v.(string), true
}

func (c *MatchCodeCache) CodeToMatchID(code string) (string, bool) {
	v, exists := c.codeToMatchID.Get(code)
	if !exists {
		return "", false
	}
	return v.(string), true
}

// Remove drops a finished match's code so it can be handed out again.
func (c *MatchCodeCache) Remove(matchID string) {
	if code, ok := c.MatchIDToCode(matchID); ok {
		c.codeToMatchID.Remove(code)
	}
	c.matchIDToCode.Remove(matchID)
}

func (c *MatchCodeCache) newCode() string {
	code := make([]byte, codeLength)
	for i := range code {
		code[i] = codeAlphabet[c.randGen.Intn(len(codeAlphabet))]
	}
	return string(code)
}
