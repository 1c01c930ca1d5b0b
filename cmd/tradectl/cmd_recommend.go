package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	apptrades "github.com/preston-bernstein/endzone-trade-service/internal/app/trades"
	"github.com/preston-bernstein/endzone-trade-service/internal/server"
)

var recommendCmd = &cobra.Command{
	Use:   "recommend",
	Short: "Recommend trades for one team in a league",
	Long: `Fetch the league, value every roster, and print trade proposals for the team
owned by --user. When --user is omitted, the platform username linked to --email
in the account store is used.

Examples:
  tradectl recommend --league 1048 --user alice
  tradectl recommend --league 1048 --email alice@example.com --format json`,
	RunE: runRecommend,
}

var (
	recommendLeague      string
	recommendUser        string
	recommendEmail       string
	recommendMaxResults  int
	recommendMinFairness float64
	recommendFormat      string
)

func init() {
	rootCmd.AddCommand(recommendCmd)

	recommendCmd.Flags().StringVar(&recommendLeague, "league", "", "League id (required)")
	recommendCmd.Flags().StringVar(&recommendUser, "user", "", "Platform username or display name")
	recommendCmd.Flags().StringVar(&recommendEmail, "email", "", "Account email whose linked username should be used")
	recommendCmd.Flags().IntVar(&recommendMaxResults, "max-results", apptrades.DefaultMaxResults, "Number of proposals to return (1-50)")
	recommendCmd.Flags().Float64Var(&recommendMinFairness, "min-fairness", apptrades.DefaultMinFairness, "Fairness label threshold")
	recommendCmd.Flags().StringVar(&recommendFormat, "format", formatTable, "Output format (table|json)")
	_ = recommendCmd.MarkFlagRequired("league")
}

func runRecommend(cmd *cobra.Command, args []string) error {
	if err := validateFormat(recommendFormat); err != nil {
		return err
	}
	ctx := cmd.Context()
	username, err := resolveUsername(ctx, recommendLeague, recommendUser, recommendEmail)
	if err != nil {
		return err
	}
	svc, _, err := server.BuildService(cfg, logger, nil)
	if err != nil {
		return err
	}
	resp, err := svc.Recommend(ctx, apptrades.Request{
		LeagueID:    recommendLeague,
		Username:    username,
		MinFairness: recommendMinFairness,
		MaxResults:  recommendMaxResults,
	})
	if err != nil {
		return fmt.Errorf("recommend: %w", err)
	}
	return writeRecommendations(cmd.OutOrStdout(), recommendFormat, resp)
}

// resolveUsername prefers an explicit username and otherwise looks up the league link for email.
func resolveUsername(ctx context.Context, leagueID, username, email string) (string, error) {
	if username = strings.TrimSpace(username); username != "" {
		return username, nil
	}
	if strings.TrimSpace(email) == "" {
		return "", fmt.Errorf("one of --user or --email is required")
	}
	accounts, err := server.OpenStore(ctx, cfg.Database)
	if err != nil {
		return "", err
	}
	defer accounts.Close()
	link, err := accounts.LeagueUsername(ctx, leagueID, email)
	if err != nil {
		return "", fmt.Errorf("lookup linked username: %w", err)
	}
	return link.PlatformUsername, nil
}
