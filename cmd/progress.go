package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var progressCmd = &cobra.Command{
	Use:   "progress",
	Short: "Inspect course progress",
}

var progressShowCmd = &cobra.Command{
	Use:   "show <courseId>",
	Short: "Show the current cursor (server-first, local fallback)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		svcs, err := openServices(cmd)
		if err != nil {
			return err
		}
		defer svcs.store.Close()

		cur := svcs.progress.Read(cmd.Context(), args[0])
		fmt.Printf("chapter %d, topic %d\n", cur.ChapterIndex, cur.TopicIndex)
		return nil
	},
}

func init() {
	progressCmd.AddCommand(progressShowCmd)
}
