package main

import (
	"context"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/feral-file/ff-awards/internal/domain"
	"github.com/feral-file/ff-awards/internal/store"
)

var (
	grantNotify bool
	listLimit   int
	listPage    int
)

var grantCmd = &cobra.Command{
	Use:   "grant <user_id> <award_id>",
	Short: "Give an award to a user",
	Long:  `Grants the award once. Granting an award the user already holds is a no-op.`,
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		userID, err := domain.ParseUserID(args[0])
		if err != nil {
			return err
		}
		awardID, err := domain.ParseAwardID(args[1])
		if err != nil {
			return err
		}

		ctx, cancel := commandContext(cmd)
		defer cancel()

		result, err := current.service.GrantAward(ctx, userID, awardID, grantNotify)
		if err != nil {
			return err
		}
		if !result.Granted {
			fmt.Fprintf(cmd.OutOrStdout(), "User %s already holds award %s\n", userID, awardID)
			return nil
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Granted award %s to user %s (grant %s)\n", awardID, userID, result.GrantID)
		return nil
	},
}

var revokeCmd = &cobra.Command{
	Use:   "revoke <grant_id>",
	Short: "Mark a grant revoked",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		grantID, err := domain.ParseGrantID(args[0])
		if err != nil {
			return err
		}

		ctx, cancel := commandContext(cmd)
		defer cancel()

		if err := current.service.RevokeAward(ctx, grantID); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Revoked grant %s\n", grantID)
		return nil
	},
}

var deleteCmd = &cobra.Command{
	Use:   "delete <grant_id>",
	Short: "Remove a grant from the ledger",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		grantID, err := domain.ParseGrantID(args[0])
		if err != nil {
			return err
		}

		ctx, cancel := commandContext(cmd)
		defer cancel()

		if err := current.service.DeleteAward(ctx, grantID); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Deleted grant %s\n", grantID)
		return nil
	},
}

var listCmd = &cobra.Command{
	Use:   "list <user_id>",
	Short: "List the active awards of a user, newest first",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		userID, err := domain.ParseUserID(args[0])
		if err != nil {
			return err
		}

		ctx, cancel := commandContext(cmd)
		defer cancel()

		grants, err := current.service.ListAwardsForUser(ctx, userID, listLimit, listPage)
		if err != nil {
			return err
		}
		unseen, err := current.service.GetUnseenCount(ctx, userID)
		if err != nil {
			return err
		}

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "GRANT\tAWARD\tNAME\tGRANTED AT")
		for _, g := range grants {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", g.ID, g.AwardID, g.AwardName, g.GrantedAt.UTC().Format("2006-01-02 15:04:05"))
		}
		if err := w.Flush(); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%d unseen\n", unseen)
		return nil
	},
}

var reconcileCmd = &cobra.Command{
	Use:   "reconcile",
	Short: "Repair award given counts from the ledger",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := commandContext(cmd)
		defer cancel()

		corrections, err := current.ledger.ReconcileGivenCounts(ctx)
		if err != nil {
			return err
		}
		printCorrections(cmd, corrections)
		return nil
	},
}

func init() {
	grantCmd.Flags().BoolVar(&grantNotify, "notify", false, "Publish an award event for the e-mail notifier")
	listCmd.Flags().IntVar(&listLimit, "limit", 20, "Page size")
	listCmd.Flags().IntVar(&listPage, "page", 1, "Page number, starting at 1")
}

func commandContext(cmd *cobra.Command) (context.Context, context.CancelFunc) {
	return context.WithTimeout(cmd.Context(), timeout)
}

func printCorrections(cmd *cobra.Command, corrections []store.GivenCountCorrection) {
	if len(corrections) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "All given counts match the ledger")
		return
	}
	for _, c := range corrections {
		fmt.Fprintf(cmd.OutOrStdout(), "Award %s: given_count %d -> %d\n", c.AwardID, c.Previous, c.Corrected)
	}
}
