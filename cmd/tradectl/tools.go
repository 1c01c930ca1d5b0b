package main

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	apptrades "github.com/preston-bernstein/endzone-trade-service/internal/app/trades"
)

const (
	toolRecommendTrades = "recommend_trades"
	toolPlayerValue     = "player_value"
)

type recommender interface {
	Recommend(ctx context.Context, req apptrades.Request) (apptrades.Response, error)
	ValuePlayer(ctx context.Context, req apptrades.ValueRequest) (apptrades.PlayerValuation, error)
}

type RecommendArgs struct {
	LeagueID    string  `json:"league_id" jsonschema:"League id (required)"`
	Username    string  `json:"username" jsonschema:"Platform username or display name of the team owner (required)"`
	MaxResults  int     `json:"max_results,omitempty" jsonschema:"Number of proposals (default 10, max 50)"`
	MinFairness float64 `json:"min_fairness,omitempty" jsonschema:"Fairness label threshold (default 0.3)"`
}

type PlayerValueArgs struct {
	LeagueID string `json:"league_id" jsonschema:"League id (required)"`
	Player   string `json:"player" jsonschema:"Player id or full name (required)"`
}

func newMCPServer(svc recommender) *mcp.Server {
	server := mcp.NewServer(
		&mcp.Implementation{
			Name:    "endzone-trades",
			Version: appVersion,
		},
		nil,
	)

	mcp.AddTool(server, &mcp.Tool{
		Name:        toolRecommendTrades,
		Description: "Fair trade proposals for one team in a fantasy football league",
	}, recommendHandler(svc))

	mcp.AddTool(server, &mcp.Tool{
		Name:        toolPlayerValue,
		Description: "Endzone Value of one player with the full calculation breakdown",
	}, playerValueHandler(svc))

	return server
}

func recommendHandler(svc recommender) func(context.Context, *mcp.CallToolRequest, RecommendArgs) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, req *mcp.CallToolRequest, args RecommendArgs) (*mcp.CallToolResult, any, error) {
		if strings.TrimSpace(args.LeagueID) == "" {
			return toolError(fmt.Errorf("league_id is required")), nil, nil
		}
		if strings.TrimSpace(args.Username) == "" {
			return toolError(fmt.Errorf("username is required")), nil, nil
		}
		resp, err := svc.Recommend(ctx, apptrades.Request{
			LeagueID:    args.LeagueID,
			Username:    args.Username,
			MinFairness: args.MinFairness,
			MaxResults:  args.MaxResults,
		})
		if err != nil {
			return toolError(err), nil, nil
		}
		return toolJSON(resp)
	}
}

func playerValueHandler(svc recommender) func(context.Context, *mcp.CallToolRequest, PlayerValueArgs) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, req *mcp.CallToolRequest, args PlayerValueArgs) (*mcp.CallToolResult, any, error) {
		if strings.TrimSpace(args.LeagueID) == "" {
			return toolError(fmt.Errorf("league_id is required")), nil, nil
		}
		v, err := svc.ValuePlayer(ctx, apptrades.ValueRequest{LeagueID: args.LeagueID, Player: args.Player})
		if err != nil {
			return toolError(err), nil, nil
		}
		return toolJSON(v)
	}
}

func toolJSON(v any) (*mcp.CallToolResult, any, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return toolError(err), nil, nil
	}
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			&mcp.TextContent{Text: string(raw)},
		},
	}, nil, nil
}

func toolError(err error) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		IsError: true,
		Content: []mcp.Content{
			&mcp.TextContent{Text: fmt.Sprintf("error: %v", err)},
		},
	}
}
