package leaderboard

// CaptainMultiplier doubles a captain's points, bonuses and maluses alike.
const CaptainMultiplier = 2

type VoteType string

const (
	VoteBestWrapping  VoteType = "best_wrapping"
	VoteWorstWrapping VoteType = "worst_wrapping"
	VoteMostFitting   VoteType = "most_fitting"
)

// VoteTypes is the closed set of known vote categories, in display order.
var VoteTypes = []VoteType{VoteBestWrapping, VoteWorstWrapping, VoteMostFitting}

// voteTypeAliases maps the casing variants seen in stored rows to the
// canonical snake_case values. Anything not listed here is discarded.
var voteTypeAliases = map[string]VoteType{
	"best_wrapping":  VoteBestWrapping,
	"BEST_WRAPPING":  VoteBestWrapping,
	"bestWrapping":   VoteBestWrapping,
	"worst_wrapping": VoteWorstWrapping,
	"WORST_WRAPPING": VoteWorstWrapping,
	"worstWrapping":  VoteWorstWrapping,
	"most_fitting":   VoteMostFitting,
	"MOST_FITTING":   VoteMostFitting,
	"mostFitting":    VoteMostFitting,
}

// NormalizeVoteType resolves a raw vote type string to its canonical value.
func NormalizeVoteType(raw string) (VoteType, bool) {
	t, ok := voteTypeAliases[raw]
	return t, ok
}

type Player struct {
	OwnerID string
	Name    string
	IsAdmin bool
}

type Team struct {
	OwnerID   string
	Members   []string
	CaptainID string // empty means no captain
}

type Gift struct {
	SantaOwnerID    string
	ReceiverOwnerID string
	CategoryID      string
	BonusPoints     int
}

type Category struct {
	ID     string
	Points int
}

type Vote struct {
	VoterOwnerID  string
	TargetOwnerID string
	VoteType      string // raw value, normalized during tallying
}

// VotePoints is the points awarded to the winner(s) of each vote category.
type VotePoints struct {
	BestWrapping  int `json:"best_wrapping"`
	WorstWrapping int `json:"worst_wrapping"`
	MostFitting   int `json:"most_fitting"`
}

func (p VotePoints) For(t VoteType) int {
	switch t {
	case VoteBestWrapping:
		return p.BestWrapping
	case VoteWorstWrapping:
		return p.WorstWrapping
	case VoteMostFitting:
		return p.MostFitting
	}
	return 0
}

// Snapshot is the read-only input of a single computation. Callers fetch all
// of it up front; the engine never reads anything else.
type Snapshot struct {
	Teams        []Team
	Players      []Player
	Gifts        []Gift
	Categories   []Category
	Votes        []Vote
	VotePoints   VotePoints
	Published    bool
	AdminRequest bool
}

type MemberScore struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Points    int    `json:"points"`
	IsCaptain bool   `json:"isCaptain"`
}

type TeamStanding struct {
	OwnerID     string        `json:"ownerId"`
	OwnerName   string        `json:"ownerName"`
	TotalPoints int           `json:"totalPoints"`
	Members     []MemberScore `json:"members"`
}

type VotingWinner struct {
	OwnerID       string `json:"ownerId"`
	OwnerName     string `json:"ownerName"`
	Votes         int    `json:"votes"`
	PointsAwarded int    `json:"pointsAwarded"`
}

type CategoryWinners struct {
	Winners []VotingWinner `json:"winners"`
}

// Winners holds the (tied) winner set per vote category.
type Winners map[VoteType]CategoryWinners

type VoteDetail struct {
	VoterOwnerID  string `json:"voterOwnerId"`
	VoterName     string `json:"voterName"`
	TargetOwnerID string `json:"targetOwnerId"`
	TargetName    string `json:"targetName"`
	PointsApplied int    `json:"pointsApplied"`
}

// Result is the computed leaderboard. Voting and VotingDetails are attached
// only when voting is revealed (published or admin request).
type Result struct {
	Teams         []TeamStanding            `json:"teams"`
	IsPublished   bool                      `json:"isPublished"`
	Voting        Winners                   `json:"voting,omitempty"`
	VotingDetails map[VoteType][]VoteDetail `json:"votingDetails,omitempty"`
}
