package sleeper

type rosterResponse struct {
	RosterID int      `json:"roster_id"`
	OwnerID  string   `json:"owner_id"`
	Players  []string `json:"players"`
}

type userResponse struct {
	UserID      string       `json:"user_id"`
	Username    string       `json:"username"`
	DisplayName string       `json:"display_name"`
	Metadata    userMetadata `json:"metadata"`
}

type userMetadata struct {
	TeamName string `json:"team_name"`
}

type leagueResponse struct {
	LeagueID        string   `json:"league_id"`
	Name            string   `json:"name"`
	Season          string   `json:"season"`
	TotalRosters    int      `json:"total_rosters"`
	RosterPositions []string `json:"roster_positions"`
}

type playerResponse struct {
	PlayerID  string `json:"player_id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	FullName  string `json:"full_name"`
	Position  string `json:"position"`
	Team      string `json:"team"`
	Age       *int   `json:"age"`
	YearsExp  *int   `json:"years_exp"`
}
