package cmd

import (
	"fmt"

	"github.com/priyam/studytrail/internal/store"
	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats [courseId]",
	Short: "Show quiz attempt history and accuracy",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		svcs, err := openServices(cmd)
		if err != nil {
			return err
		}
		defer svcs.store.Close()

		opts := store.QueryOpts{Limit: 50}
		if len(args) == 1 {
			opts.CourseID = args[0]
		}

		attempts, err := svcs.store.EventRepo().QueryQuizAttempts(cmd.Context(), opts)
		if err != nil {
			return err
		}
		if len(attempts) == 0 {
			fmt.Println("No quiz attempts recorded.")
			return nil
		}

		correct, total := 0, 0
		for _, a := range attempts {
			status := "fail"
			if a.Passed {
				status = "pass"
			}
			fmt.Printf("%s  %s %d.%d  %d/%d %s\n",
				a.Timestamp.Format("2006-01-02 15:04"),
				a.CourseID, a.ChapterIndex+1, a.TopicIndex+1,
				a.CorrectCount, a.AttemptedCount, status)
			correct += a.CorrectCount
			total += a.AttemptedCount
		}

		if total > 0 {
			fmt.Printf("\nOverall accuracy: %.0f%% (%d/%d)\n",
				100*float64(correct)/float64(total), correct, total)
		}
		return nil
	},
}
