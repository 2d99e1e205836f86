package main

import (
	"fmt"
	"os"

	collectorProcessor "redditleads/internal/collector/processor"

	"github.com/spf13/cobra"
)

var (
	campaignFlag  string
	subredditFlag string
	modeFlag      string
	allFlag       bool
)

// collectCmd gathers usernames from one campaign subreddit
var collectCmd = &cobra.Command{
	Use:   "collect",
	Short: "Collect usernames from a campaign subreddit",
	Long: `Collect post and comment authors from a subreddit attached to a campaign.

Modes:
  exhaustive - walk every post Reddit will list for the subreddit
  bounded    - only the top posts of the week`,
	Args: cobra.NoArgs,
	RunE: runCollect,
}

// uploadCmd imports a CSV of usernames
var uploadCmd = &cobra.Command{
	Use:   "upload <file.csv>",
	Short: "Import usernames from a CSV file into a campaign subreddit",
	Args:  cobra.ExactArgs(1),
	RunE:  runUpload,
}

// dispatchCmd sends the next message batch
var dispatchCmd = &cobra.Command{
	Use:   "dispatch",
	Short: "Send the next batch of messages",
	Long: `Send the next batch of pending messages for one campaign, or with --all
for every running campaign the way the worker's sweep does.`,
	Args: cobra.NoArgs,
	RunE: runDispatch,
}

func init() {
	collectCmd.Flags().StringVarP(&campaignFlag, "campaign", "c", "", "Campaign ID (required)")
	collectCmd.Flags().StringVarP(&subredditFlag, "subreddit", "s", "", "Subreddit to collect from (required)")
	collectCmd.Flags().StringVarP(&modeFlag, "mode", "m", string(collectorProcessor.ModeBounded), "Collection mode: exhaustive or bounded")
	collectCmd.MarkFlagRequired("campaign")
	collectCmd.MarkFlagRequired("subreddit")

	uploadCmd.Flags().StringVarP(&campaignFlag, "campaign", "c", "", "Campaign ID (required)")
	uploadCmd.Flags().StringVarP(&subredditFlag, "subreddit", "s", "", "Subreddit the usernames belong to (required)")
	uploadCmd.MarkFlagRequired("campaign")
	uploadCmd.MarkFlagRequired("subreddit")

	dispatchCmd.Flags().StringVarP(&campaignFlag, "campaign", "c", "", "Campaign ID")
	dispatchCmd.Flags().BoolVar(&allFlag, "all", false, "Dispatch every running campaign")
	dispatchCmd.MarkFlagsMutuallyExclusive("campaign", "all")
	dispatchCmd.MarkFlagsOneRequired("campaign", "all")
}

func runCollect(cmd *cobra.Command, args []string) error {
	ctx, cancel := commandContext(cmd)
	defer cancel()

	account, err := accountID()
	if err != nil {
		return err
	}
	campaign, err := parseID("campaign", campaignFlag)
	if err != nil {
		return err
	}
	mode, err := collectorProcessor.ParseMode(modeFlag)
	if err != nil {
		return err
	}

	collector := &deps.Processors.Collector
	if err := collector.Validate(ctx, account, campaign, subredditFlag); err != nil {
		return err
	}

	result, err := collector.Collect(ctx, account, campaign, subredditFlag, mode)
	if err != nil {
		return fmt.Errorf("collection failed: %w", err)
	}
	return printJSON(cmd.OutOrStdout(), result)
}

func runUpload(cmd *cobra.Command, args []string) error {
	ctx, cancel := commandContext(cmd)
	defer cancel()

	account, err := accountID()
	if err != nil {
		return err
	}
	campaign, err := parseID("campaign", campaignFlag)
	if err != nil {
		return err
	}

	file, err := os.Open(args[0])
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", args[0], err)
	}
	defer file.Close()

	result, err := deps.Processors.Campaign.UploadUsernames(ctx, account, campaign, subredditFlag, file)
	if err != nil {
		return err
	}
	return printJSON(cmd.OutOrStdout(), result)
}

func runDispatch(cmd *cobra.Command, args []string) error {
	ctx, cancel := commandContext(cmd)
	defer cancel()

	dispatcher := &deps.Processors.Dispatch
	if allFlag {
		result, err := dispatcher.DispatchRunning(ctx)
		if err != nil {
			return err
		}
		return printJSON(cmd.OutOrStdout(), result)
	}

	account, err := accountID()
	if err != nil {
		return err
	}
	campaign, err := parseID("campaign", campaignFlag)
	if err != nil {
		return err
	}

	result, err := dispatcher.Dispatch(ctx, account, campaign)
	if err != nil {
		return err
	}
	return printJSON(cmd.OutOrStdout(), result)
}
