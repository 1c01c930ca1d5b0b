package sleeper

import (
	"strings"

	"github.com/preston-bernstein/endzone-trade-service/internal/domain/league"
	"github.com/preston-bernstein/endzone-trade-service/internal/domain/players"
)

func mapRoster(r rosterResponse) league.Roster {
	ids := make([]string, 0, len(r.Players))
	for _, id := range r.Players {
		if id = strings.TrimSpace(id); id != "" {
			ids = append(ids, id)
		}
	}
	return league.Roster{RosterID: r.RosterID, OwnerID: r.OwnerID, PlayerIDs: ids}
}

func mapUser(u userResponse) league.User {
	return league.User{
		UserID:      u.UserID,
		Username:    u.Username,
		DisplayName: u.DisplayName,
		TeamName:    strings.TrimSpace(u.Metadata.TeamName),
	}
}

func mapLeague(l leagueResponse) league.Settings {
	return league.Settings{
		LeagueID:        l.LeagueID,
		Name:            l.Name,
		Season:          l.Season,
		TotalRosters:    l.TotalRosters,
		RosterPositions: l.RosterPositions,
	}
}

func mapPlayer(id string, p playerResponse) players.Info {
	if p.PlayerID != "" {
		id = p.PlayerID
	}
	name := strings.TrimSpace(p.FullName)
	if name == "" {
		name = strings.TrimSpace(p.FirstName + " " + p.LastName)
	}
	info := players.Info{
		ID:       id,
		Name:     name,
		Position: players.NormalizePosition(p.Position),
		Team:     strings.ToUpper(strings.TrimSpace(p.Team)),
	}
	if info.Team == "" {
		info.Team = players.FreeAgentTeam
	}
	if p.Age != nil && *p.Age > 0 {
		info.Age = *p.Age
	}
	if p.YearsExp != nil && *p.YearsExp > 0 {
		info.YearsExperience = *p.YearsExp
	}
	return info
}
