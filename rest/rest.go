package rest

import (
	"fmt"
	"math/rand"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/arebrov/GoatGroupBot/caching"
	"github.com/arebrov/GoatGroupBot/game"
	"github.com/arebrov/GoatGroupBot/logging"
	"github.com/arebrov/GoatGroupBot/nats"
	"github.com/arebrov/GoatGroupBot/roster"
	"github.com/arebrov/GoatGroupBot/util"
)

var restLogger = log.With().Str("logger_name", "rest::rest").Logger()
var natsMatchManager *nats.MatchManager
var matchCodeCache *caching.MatchCodeCache
var rosterStore roster.Store

type appError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type newMatchRequest struct {
	PlayerID  uint64 `json:"playerId"`
	ChatID    int64  `json:"chatId"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Username  string `json:"username"`
}

type joinMatchRequest struct {
	JoinCode  string `json:"joinCode"`
	PlayerID  uint64 `json:"playerId"`
	ChatID    int64  `json:"chatId"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Username  string `json:"username"`
}

type matchStatus struct {
	MatchID         string `json:"matchId"`
	JoinCode        string `json:"joinCode,omitempty"`
	NeedPlayerCount int    `json:"needPlayerCount"`
	TeamAScore      int    `json:"teamAScore"`
	TeamBScore      int    `json:"teamBScore"`
}

// RunRestServer exposes the match lifecycle over HTTP; the play itself
// runs over the per-match NATS subjects.
func RunRestServer(matchManager *nats.MatchManager, port int) {
	natsMatchManager = matchManager
	var err error
	matchCodeCache, err = caching.NewMatchCodeCache(rand.New(rand.NewSource(time.Now().UnixNano())))
	if err != nil {
		msg := fmt.Sprintf("Cannot initialize match code cache: %v", err)
		restLogger.Error().Msg(msg)
		panic(msg)
	}
	rosterStore = newRosterStore()
	r := gin.Default()

	r.POST("/new-match", newMatch)
	r.POST("/join-match", joinMatch)
	r.GET("/match-status", getMatchStatus)
	r.GET("/deal-labels", getDealLabels)
	r.GET("/roster", getRoster)
	r.Run(fmt.Sprintf(":%d", port))
}

// newRosterStore keeps the roster in Redis when one is configured, in
// memory otherwise.
func newRosterStore() roster.Store {
	env := util.GameServerEnvironment
	if env.IsRedisConfigured() {
		addr := fmt.Sprintf("%s:%d", env.GetRedisHost(), env.GetRedisPort())
		restLogger.Info().Msgf("Using redis roster store at %s", addr)
		return roster.NewRedisStore(addr, env.GetRedisPW(), env.GetRedisDB())
	}
	restLogger.Info().Msg("Using in-memory roster store")
	return roster.NewMemoryStore()
}

// recordRosterUser notes the player in the chat roster; a first-timer is
// greeted in the log.
func recordRosterUser(chatID int64, user roster.User) {
	if chatID == 0 || user.ID == 0 {
		return
	}
	added, err := rosterStore.AddUser(chatID, user)
	if err != nil {
		restLogger.Error().
			Int64(logging.ChatIDKey, chatID).
			Uint64(logging.PlayerIDKey, user.ID).
			Msgf("Failed to record roster user: %v", err)
		return
	}
	if added {
		restLogger.Info().
			Int64(logging.ChatIDKey, chatID).
			Uint64(logging.PlayerIDKey, user.ID).
			Msgf("Welcome %s", user.FullName())
	}
}

func newMatch(c *gin.Context) {
	var req newMatchRequest
	if err := c.BindJSON(&req); err != nil {
		restLogger.Error().Msgf("Failed to parse new match request. Error: %v", err)
		c.IndentedJSON(http.StatusBadRequest, appError{
			Code:    http.StatusBadRequest,
			Message: err.Error(),
		})
		return
	}
	match, err := natsMatchManager.NewMatch(req.PlayerID)
	if err != nil {
		msg := fmt.Sprintf("Unable to initialize nats match: %v", err)
		restLogger.Error().Msg(msg)
		c.IndentedJSON(http.StatusInternalServerError, appError{
			Code:    http.StatusInternalServerError,
			Message: msg,
		})
		return
	}
	recordRosterUser(req.ChatID, roster.User{
		ID:        req.PlayerID,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Username:  req.Username,
	})
	joinCode, err := matchCodeCache.Assign(match.MatchID())
	if err != nil {
		restLogger.Error().Msgf("Unable to assign a join code: %v", err)
	}
	c.JSON(http.StatusOK, matchStatus{
		MatchID:         match.MatchID(),
		JoinCode:        joinCode,
		NeedPlayerCount: match.Match().NeedPlayerCount(),
	})
}

func joinMatch(c *gin.Context) {
	var req joinMatchRequest
	if err := c.BindJSON(&req); err != nil {
		restLogger.Error().Msgf("Failed to parse join request. Error: %v", err)
		c.IndentedJSON(http.StatusBadRequest, appError{
			Code:    http.StatusBadRequest,
			Message: err.Error(),
		})
		return
	}
	matchID, ok := matchCodeCache.CodeToMatchID(req.JoinCode)
	if !ok {
		c.IndentedJSON(http.StatusNotFound, appError{
			Code:    http.StatusNotFound,
			Message: fmt.Sprintf("Join code %s does not exist", req.JoinCode),
		})
		return
	}
	match, ok := natsMatchManager.GetMatch(matchID)
	if !ok {
		c.IndentedJSON(http.StatusNotFound, appError{
			Code:    http.StatusNotFound,
			Message: fmt.Sprintf("Match %s does not exist", matchID),
		})
		return
	}
	if err := match.Match().AddPlayer(req.PlayerID); err != nil {
		c.IndentedJSON(http.StatusConflict, appError{
			Code:    http.StatusConflict,
			Message: err.Error(),
		})
		return
	}
	recordRosterUser(req.ChatID, roster.User{
		ID:        req.PlayerID,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Username:  req.Username,
	})
	c.JSON(http.StatusOK, matchStatus{
		MatchID:         match.MatchID(),
		NeedPlayerCount: match.Match().NeedPlayerCount(),
	})
}

func getMatchStatus(c *gin.Context) {
	matchID := c.Query("matchId")
	match, ok := natsMatchManager.GetMatch(matchID)
	if !ok {
		c.IndentedJSON(http.StatusNotFound, appError{
			Code:    http.StatusNotFound,
			Message: fmt.Sprintf("Match %s does not exist", matchID),
		})
		return
	}
	teamA, teamB := match.Match().Scores()
	c.JSON(http.StatusOK, matchStatus{
		MatchID:         match.MatchID(),
		NeedPlayerCount: match.Match().NeedPlayerCount(),
		TeamAScore:      teamA,
		TeamBScore:      teamB,
	})
}

func getDealLabels(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"dealLabels": game.DealLabels()})
}

func getRoster(c *gin.Context) {
	chatID, err := strconv.ParseInt(c.Query("chatId"), 10, 64)
	if err != nil {
		c.IndentedJSON(http.StatusBadRequest, appError{
			Code:    http.StatusBadRequest,
			Message: fmt.Sprintf("Invalid chat ID %q", c.Query("chatId")),
		})
		return
	}
	users, err := rosterStore.GetUsers(chatID)
	if err != nil {
		restLogger.Error().
			Int64(logging.ChatIDKey, chatID).
			Msgf("Failed to load roster: %v", err)
		c.IndentedJSON(http.StatusInternalServerError, appError{
			Code:    http.StatusInternalServerError,
			Message: err.Error(),
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{"users": users})
}
