package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/preston-bernstein/endzone-trade-service/internal/server"
	"github.com/preston-bernstein/endzone-trade-service/internal/store"
)

var accountsCmd = &cobra.Command{
	Use:   "accounts",
	Short: "Manage sessions and league links in the account store",
}

var linkCmd = &cobra.Command{
	Use:   "link",
	Short: "Link a league to an account with the user's platform username",
	Long: `Store the platform username a user plays under in a league. The HTTP endpoint
uses this link to find the caller's team.

Example:
  tradectl accounts link --email alice@example.com --league 1048 --username alice`,
	RunE: runLink,
}

var sessionCmd = &cobra.Command{
	Use:   "session",
	Short: "Create a login session and print its bearer token",
	RunE:  runSession,
}

var (
	linkEmail    string
	linkLeague   string
	linkUsername string
	linkName     string
	sessionEmail string
	sessionTTL   time.Duration
)

func init() {
	rootCmd.AddCommand(accountsCmd)
	accountsCmd.AddCommand(linkCmd, sessionCmd)

	linkCmd.Flags().StringVar(&linkEmail, "email", "", "Account email (required)")
	linkCmd.Flags().StringVar(&linkLeague, "league", "", "League id (required)")
	linkCmd.Flags().StringVar(&linkUsername, "username", "", "Platform username in this league")
	linkCmd.Flags().StringVar(&linkName, "name", "", "League display name")
	_ = linkCmd.MarkFlagRequired("email")
	_ = linkCmd.MarkFlagRequired("league")

	sessionCmd.Flags().StringVar(&sessionEmail, "email", "", "Account email (required)")
	sessionCmd.Flags().DurationVar(&sessionTTL, "ttl", store.DefaultSessionTTL, "Session lifetime")
	_ = sessionCmd.MarkFlagRequired("email")
}

func runLink(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	accounts, err := server.OpenStore(ctx, cfg.Database)
	if err != nil {
		return err
	}
	defer accounts.Close()

	if err := accounts.LinkLeague(ctx, store.LeagueLink{
		LeagueID:         linkLeague,
		UserEmail:        linkEmail,
		PlatformUsername: linkUsername,
		LeagueName:       linkName,
	}); err != nil {
		return fmt.Errorf("link league: %w", err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "linked league %s for %s\n", linkLeague, linkEmail)
	return nil
}

func runSession(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	accounts, err := server.OpenStore(ctx, cfg.Database)
	if err != nil {
		return err
	}
	defer accounts.Close()

	sess, err := accounts.CreateSession(ctx, sessionEmail, sessionTTL)
	if err != nil {
		return fmt.Errorf("create session: %w", err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s\nexpires %s\n", sess.Token, sess.ExpiresAt.Format(time.RFC3339))
	return nil
}
