package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

var tokenTTL time.Duration

// syncCmd pulls the Reddit inbox into the conversation log
var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Sync the Reddit inbox into the conversation log",
	Args:  cobra.NoArgs,
	RunE:  runSync,
}

// tokenCmd mints an API token for an account
var tokenCmd = &cobra.Command{
	Use:   "token",
	Short: "Issue an API bearer token for an account",
	Args:  cobra.NoArgs,
	RunE:  runToken,
}

func init() {
	tokenCmd.Flags().DurationVar(&tokenTTL, "ttl", 24*time.Hour, "Token lifetime")
}

func runSync(cmd *cobra.Command, args []string) error {
	ctx, cancel := commandContext(cmd)
	defer cancel()

	account, err := accountID()
	if err != nil {
		return err
	}

	result, err := deps.Processors.Inbox.Sync(ctx, account)
	if err != nil {
		return fmt.Errorf("inbox sync failed: %w", err)
	}
	return printJSON(cmd.OutOrStdout(), result)
}

func runToken(cmd *cobra.Command, args []string) error {
	ctx, cancel := commandContext(cmd)
	defer cancel()

	account, err := accountID()
	if err != nil {
		return err
	}

	// Refuse to mint tokens for accounts that do not exist
	if _, err := deps.Processors.Auth.GetAccount(ctx, account); err != nil {
		return err
	}

	token, err := deps.Processors.Auth.IssueToken(ctx, account, tokenTTL)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), token)
	return nil
}
