package players

import "strings"

// Position is a fantasy roster position.
type Position string

const (
	QB   Position = "QB"
	RB   Position = "RB"
	WR   Position = "WR"
	TE   Position = "TE"
	K    Position = "K"
	DEF  Position = "DEF"
	FLEX Position = "FLEX"
)

// FreeAgentTeam is the team code for players without an NFL team.
const FreeAgentTeam = "FA"

// NormalizePosition upper-cases a raw position and maps empty input to FLEX.
func NormalizePosition(raw string) Position {
	raw = strings.ToUpper(strings.TrimSpace(raw))
	if raw == "" {
		return FLEX
	}
	return Position(raw)
}

// Info is player metadata resolved from the platform's player database.
// Age and YearsExperience are zero when unknown.
type Info struct {
	ID              string   `json:"id"`
	Name            string   `json:"name"`
	Position        Position `json:"position"`
	Team            string   `json:"team"`
	Age             int      `json:"age,omitempty"`
	YearsExperience int      `json:"years_experience,omitempty"`
}

// Player is a rostered player valued for a single recommendation request.
type Player struct {
	Info
	ProjectedPoints float64 `json:"projected_points"`
	EndzoneValue    int     `json:"endzone_value"`
}

// Tradeable reports whether the player carries any trade value.
func (p Player) Tradeable() bool {
	return p.EndzoneValue > 0
}
