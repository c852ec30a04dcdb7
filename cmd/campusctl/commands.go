package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/oggyb/campus-connect/internal/app"
	"github.com/oggyb/campus-connect/internal/auth"
	"github.com/oggyb/campus-connect/internal/identity"
	"github.com/oggyb/campus-connect/internal/service/dice"
	"github.com/oggyb/campus-connect/internal/service/moderation"
)

// opener connects to the backing stores. The returned func releases them.
type opener func() (*app.AppContext, func(), error)

func newRootCmd(open opener) *cobra.Command {
	var operatorName string

	rootCmd := &cobra.Command{
		Use:           "campusctl",
		Short:         "Operator tooling for the campus matching core",
		SilenceUsage: true,
	}
	rootCmd.PersistentFlags().StringVar(&operatorName, "operator", envOr("USER", "operator"), "name recorded on bans and deletions")

	// withModeration opens the stores and hands a moderation service to fn.
	withModeration := func(fn func(*moderation.Service) error) error {
		appCtx, closeFn, err := open()
		if err != nil {
			return err
		}
		defer closeFn()
		return fn(moderation.NewService(appCtx, identity.NewRevoker(appCtx.Config)))
	}

	var reason string
	warnCmd := &cobra.Command{
		Use:   "warn <user-id>",
		Short: "Issue a warning; escalates to a ban at the configured threshold",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withModeration(func(svc *moderation.Service) error {
				res, err := svc.Warn(cmd.Context(), args[0], reason)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "warnings: %d\n", res.Count)
				if res.AutoBanned {
					fmt.Fprintln(cmd.OutOrStdout(), "user was banned automatically")
				}
				if res.Message != "" {
					fmt.Fprintln(cmd.OutOrStdout(), res.Message)
				}
				return nil
			})
		},
	}
	warnCmd.Flags().StringVar(&reason, "reason", "", "why the user is warned")
	_ = warnCmd.MarkFlagRequired("reason")

	warningsCmd := &cobra.Command{
		Use:   "warnings <user-id>",
		Short: "List a user's warnings, newest first",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withModeration(func(svc *moderation.Service) error {
				ws, err := svc.ListWarnings(cmd.Context(), args[0])
				if err != nil {
					return err
				}
				for _, w := range ws {
					state := "open"
					if w.Resolved {
						state = "acknowledged"
					}
					fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%s\t%s\n",
						w.CreatedAt.Format(time.RFC3339), w.ID, state, w.Reason)
				}
				return nil
			})
		},
	}

	var banReason string
	var permanent bool
	banCmd := &cobra.Command{
		Use:   "ban <user-id>",
		Short: "Ban a user; --permanent also blacklists the email",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withModeration(func(svc *moderation.Service) error {
				if err := svc.Ban(cmd.Context(), args[0], banReason, operatorName, permanent); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "banned %s\n", args[0])
				return nil
			})
		},
	}
	banCmd.Flags().StringVar(&banReason, "reason", "", "why the user is banned")
	banCmd.Flags().BoolVar(&permanent, "permanent", false, "blacklist the email as well")
	_ = banCmd.MarkFlagRequired("reason")

	unbanCmd := &cobra.Command{
		Use:   "unban <user-id>",
		Short: "Lift a user's ban",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withModeration(func(svc *moderation.Service) error {
				if err := svc.Unban(cmd.Context(), args[0]); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "unbanned %s\n", args[0])
				return nil
			})
		},
	}

	var password string
	deleteCmd := &cobra.Command{
		Use:   "delete-user <user-id>",
		Short: "Delete a user and everything attached to them",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if password == "" {
				password = os.Getenv("CAMPUS_OPERATOR_PASSWORD")
			}
			return withModeration(func(svc *moderation.Service) error {
				res, err := svc.DeleteUser(cmd.Context(), args[0], password, operatorName)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "deleted %s (identity revoked: %t)\n", args[0], res.IdentityRevoked)
				return nil
			})
		},
	}
	deleteCmd.Flags().StringVar(&password, "password", "", "operator password (default $CAMPUS_OPERATOR_PASSWORD)")

	diceCmd := &cobra.Command{
		Use:   "dice",
		Short: "Dice match maintenance",
	}
	sweepCmd := &cobra.Command{
		Use:   "sweep",
		Short: "Remove expired dice matches nobody chatted in",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			appCtx, closeFn, err := open()
			if err != nil {
				return err
			}
			defer closeFn()
			n, err := dice.NewService(appCtx).SweepExpired(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "expired %d dice matches\n", n)
			return nil
		},
	}
	diceCmd.AddCommand(sweepCmd)

	hashCmd := &cobra.Command{
		Use:   "hash-password <password>",
		Short: "Print the bcrypt hash to put in OPERATOR_PASSWORD_HASH",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			hash, err := auth.HashOperatorPassword(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), hash)
			return nil
		},
	}

	rootCmd.AddCommand(warnCmd, warningsCmd, banCmd, unbanCmd, deleteCmd, diceCmd, hashCmd)
	return rootCmd
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
