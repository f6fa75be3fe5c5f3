package cmd

import (
	"fmt"
	"os"
	"os/signal"

	"github.com/priyam/studytrail/internal/store"
	"github.com/spf13/cobra"
)

var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Manage the offline sync queue",
}

var syncRunCmd = &cobra.Command{
	Use:   "run",
	Short: "Drain the queue once",
	RunE: func(cmd *cobra.Command, args []string) error {
		svcs, err := openServices(cmd)
		if err != nil {
			return err
		}
		defer svcs.store.Close()

		if err := svcs.queue.Drain(cmd.Context()); err != nil {
			return fmt.Errorf("drain: %w", err)
		}

		items, err := svcs.store.QueueRepo().List(cmd.Context())
		if err != nil {
			return err
		}
		fmt.Printf("Drain finished, %d item(s) still pending.\n", len(items))
		return nil
	},
}

var syncWatchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Drain on a fixed interval until interrupted",
	RunE: func(cmd *cobra.Command, args []string) error {
		svcs, err := openServices(cmd)
		if err != nil {
			return err
		}
		defer svcs.store.Close()

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
		defer stop()

		svcs.queue.Kick()
		svcs.queue.Run(ctx)
		return nil
	},
}

var syncStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show pending queue items",
	RunE: func(cmd *cobra.Command, args []string) error {
		svcs, err := openServices(cmd)
		if err != nil {
			return err
		}
		defer svcs.store.Close()

		items, err := svcs.store.QueueRepo().List(cmd.Context())
		if err != nil {
			return err
		}
		if len(items) == 0 {
			fmt.Println("Queue is empty.")
			return nil
		}
		for _, it := range items {
			fmt.Printf("#%d  %-12s retries=%d  enqueued %s\n",
				it.Seq, it.Type, it.RetryCount, it.CreatedAt.Format("2006-01-02 15:04:05"))
		}
		return nil
	},
}

var syncLogCmd = &cobra.Command{
	Use:   "log",
	Short: "Show recent delivery outcomes, including dropped items",
	RunE: func(cmd *cobra.Command, args []string) error {
		svcs, err := openServices(cmd)
		if err != nil {
			return err
		}
		defer svcs.store.Close()

		droppedOnly, _ := cmd.Flags().GetBool("dropped")
		opts := store.QueryOpts{Limit: 50}
		if droppedOnly {
			opts.Action = store.SyncDropped
		}

		events, err := svcs.store.EventRepo().QuerySyncEvents(cmd.Context(), opts)
		if err != nil {
			return err
		}
		if len(events) == 0 {
			fmt.Println("No sync events recorded.")
			return nil
		}
		for _, ev := range events {
			line := fmt.Sprintf("%s  #%d %-12s %-9s attempts=%d",
				ev.Timestamp.Format("2006-01-02 15:04:05"), ev.ItemSeq, ev.ItemType, ev.Action, ev.Attempts)
			if ev.LastError != "" {
				line += "  " + ev.LastError
			}
			fmt.Println(line)
		}
		return nil
	},
}

func init() {
	syncLogCmd.Flags().Bool("dropped", false, "Only show dropped (dead-letter) items")

	syncCmd.AddCommand(syncRunCmd)
	syncCmd.AddCommand(syncWatchCmd)
	syncCmd.AddCommand(syncStatusCmd)
	syncCmd.AddCommand(syncLogCmd)
}
