package league

import (
	"strings"

	"github.com/preston-bernstein/endzone-trade-service/internal/domain/players"
)

// SuperFlexSlot is the roster slot that marks a league as dynasty.
const SuperFlexSlot = "SUPER_FLEX"

// Roster is one team's roster as reported by the fantasy platform.
type Roster struct {
	RosterID  int      `json:"roster_id"`
	OwnerID   string   `json:"owner_id"`
	PlayerIDs []string `json:"players"`
}

// User is a league member.
type User struct {
	UserID      string `json:"user_id"`
	Username    string `json:"username,omitempty"`
	DisplayName string `json:"display_name"`
	TeamName    string `json:"team_name,omitempty"`
}

// Matches reports whether the stored platform username identifies this user.
func (u User) Matches(username string) bool {
	username = strings.TrimSpace(username)
	if username == "" {
		return false
	}
	return strings.EqualFold(u.DisplayName, username) || strings.EqualFold(u.Username, username)
}

// Label returns the team's display name, falling back to the member's display name.
func (u User) Label() string {
	if u.TeamName != "" {
		return u.TeamName
	}
	return u.DisplayName
}

// Settings captures the league configuration needed by the engine.
type Settings struct {
	LeagueID        string   `json:"league_id"`
	Name            string   `json:"name"`
	Season          string   `json:"season"`
	TotalRosters    int      `json:"total_rosters"`
	RosterPositions []string `json:"roster_positions"`
}

// IsDynasty reports whether the roster configuration includes a SUPER_FLEX slot.
// No other signal is consulted.
func (s Settings) IsDynasty() bool {
	for _, slot := range s.RosterPositions {
		if slot == SuperFlexSlot {
			return true
		}
	}
	return false
}

// Type returns the league type label used in responses.
func (s Settings) Type() string {
	if s.IsDynasty() {
		return "dynasty"
	}
	return "redraft"
}

// TeamRoster is a team's roster after valuation, alive for a single request.
type TeamRoster struct {
	RosterID       int                      `json:"roster_id"`
	OwnerID        string                   `json:"owner_id"`
	TeamName       string                   `json:"team_name"`
	Username       string                   `json:"username,omitempty"`
	Players        []players.Player         `json:"players"`
	PositionCounts map[players.Position]int `json:"position_counts"`
	Needs          []players.Position       `json:"needs"`
	Surplus        []players.Position       `json:"surplus"`
	TotalValue     int                      `json:"total_value"`
}

// Tradeable returns the roster's players with positive value, in roster order.
func (t TeamRoster) Tradeable() []players.Player {
	out := make([]players.Player, 0, len(t.Players))
	for _, p := range t.Players {
		if p.Tradeable() {
			out = append(out, p)
		}
	}
	return out
}
