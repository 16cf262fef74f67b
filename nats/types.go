package nats

// Message types sent by players to a match.
const (
	MsgJoinMatch      = "JOIN_MATCH"
	MsgFirstDeal      = "FIRST_DEAL"
	MsgSelectTrump    = "SELECT_TRUMP"
	MsgPlayCard       = "PLAY_CARD"
	MsgPlayPantsCards = "PLAY_PANTS_CARDS"
	MsgChooseDeal     = "CHOOSE_DEAL"
)

// Message types sent by a match to players.
const (
	MsgRequestTrump      = "REQUEST_TRUMP"
	MsgHand              = "HAND"
	MsgRequestStep       = "REQUEST_STEP"
	MsgTrickResult       = "TRICK_RESULT"
	MsgPantsResult       = "PANTS_RESULT"
	MsgCurrentPants      = "CURRENT_PANTS"
	MsgBonusResult       = "BONUS_RESULT"
	MsgTotalScore        = "TOTAL_SCORE"
	MsgRequestDealChoice = "REQUEST_DEAL_CHOICE"
	MsgError             = "ERROR"
)

// PlayerMessage is one inbound action on the kozel.<matchID>.player
// subject. Cards are card codes; the card parser rejects anything else.
type PlayerMessage struct {
	MessageType string   `json:"message-type"`
	PlayerID    uint64   `json:"player-id"`
	Cards       []string `json:"cards,omitempty"`
	Trump       string   `json:"trump,omitempty"`
	DealLabel   string   `json:"deal-label,omitempty"`
}

// MatchMessage is one outbound notification on the kozel.<matchID>.game
// subject. PlayerID addresses the player the message concerns; broadcast
// messages leave it empty.
type MatchMessage struct {
	MessageType string `json:"message-type"`
	MatchID     string `json:"match-id"`
	PlayerID    uint64 `json:"player-id,omitempty"`

	Cards []string `json:"cards,omitempty"`

	Trick       []string `json:"trick,omitempty"`
	TopCard     string   `json:"top-card,omitempty"`
	TopPlayerID uint64   `json:"top-player-id,omitempty"`

	LeftPile       []string `json:"left-pile,omitempty"`
	TopLeft        string   `json:"top-left,omitempty"`
	TopLeftPlayer  uint64   `json:"top-left-player,omitempty"`
	RightPile      []string `json:"right-pile,omitempty"`
	TopRight       string   `json:"top-right,omitempty"`
	TopRightPlayer uint64   `json:"top-right-player,omitempty"`
	NextPlayerID   uint64   `json:"next-player-id,omitempty"`

	Piles [][]string `json:"piles,omitempty"`

	WinnerPlayerID uint64 `json:"winner-player-id,omitempty"`
	LoserPlayerID  uint64 `json:"loser-player-id,omitempty"`

	TeamAScore int `json:"team-a-score,omitempty"`
	TeamBScore int `json:"team-b-score,omitempty"`

	DealLabels []string `json:"deal-labels,omitempty"`
	Error      string   `json:"error,omitempty"`
}
