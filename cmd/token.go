package cmd

import (
	"fmt"

	"github.com/priyam/studytrail/internal/store"
	"github.com/spf13/cobra"
)

var tokenCmd = &cobra.Command{
	Use:   "token",
	Short: "Manage the bearer token for the remote authority",
}

var tokenSetCmd = &cobra.Command{
	Use:   "set <token>",
	Short: "Store the bearer token",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		svcs, err := openServices(cmd)
		if err != nil {
			return err
		}
		defer svcs.store.Close()

		if err := svcs.store.SettingRepo().Set(cmd.Context(), store.TokenKey, args[0]); err != nil {
			return err
		}
		// Anything queued while unauthenticated can go out now.
		if err := svcs.queue.Drain(cmd.Context()); err != nil {
			fmt.Println("Token stored; queued items will sync on the next drain.")
			return nil
		}
		fmt.Println("Token stored.")
		return nil
	},
}

var tokenClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove the stored bearer token",
	RunE: func(cmd *cobra.Command, args []string) error {
		svcs, err := openServices(cmd)
		if err != nil {
			return err
		}
		defer svcs.store.Close()

		if err := svcs.store.SettingRepo().Delete(cmd.Context(), store.TokenKey); err != nil {
			return err
		}
		fmt.Println("Token cleared. Sync pauses until a new token is set.")
		return nil
	},
}

func init() {
	tokenCmd.AddCommand(tokenSetCmd)
	tokenCmd.AddCommand(tokenClearCmd)
}
