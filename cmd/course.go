package cmd

import (
	"fmt"

	"github.com/priyam/studytrail/internal/unlock"
	"github.com/spf13/cobra"
)

var courseCmd = &cobra.Command{
	Use:   "course",
	Short: "Fetch and inspect cached courses",
}

var coursePullCmd = &cobra.Command{
	Use:   "pull <courseId>",
	Short: "Fetch a course from the server and cache it",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		svcs, err := openServices(cmd)
		if err != nil {
			return err
		}
		defer svcs.store.Close()

		crs, err := svcs.progress.PullCourse(cmd.Context(), args[0])
		if err != nil {
			return err
		}

		topics := 0
		for _, ch := range crs.Chapters {
			topics += len(ch.Topics)
		}
		fmt.Printf("Cached %q (%d chapters, %d topics)\n", crs.Title, len(crs.Chapters), topics)
		return nil
	},
}

var courseShowCmd = &cobra.Command{
	Use:   "show <courseId>",
	Short: "Show the course tree with per-topic lock state",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		svcs, err := openServices(cmd)
		if err != nil {
			return err
		}
		defer svcs.store.Close()

		ctx := cmd.Context()
		courseID := args[0]

		crs, err := svcs.store.CourseRepo().Get(ctx, courseID)
		if err != nil {
			return err
		}
		if crs == nil {
			return fmt.Errorf("course %s is not cached; run `studytrail course pull %s` first", courseID, courseID)
		}

		cur := svcs.progress.Read(ctx, courseID)
		fmt.Printf("%s  (cursor: chapter %d, topic %d)\n", crs.Title, cur.ChapterIndex, cur.TopicIndex)

		for ci, ch := range crs.Chapters {
			fmt.Printf("  %d. %s\n", ci+1, ch.Title)
			for ti, tp := range ch.Topics {
				state := unlock.Status(cur, ci, ti)
				marker := " "
				switch state {
				case unlock.Completed:
					marker = "x"
				case unlock.Current:
					marker = ">"
				}
				fmt.Printf("    [%s] %d.%d %s\n", marker, ci+1, ti+1, tp.Title)
			}
		}

		if issued, err := svcs.progress.HasCertificate(ctx, courseID); err == nil && issued {
			fmt.Println("Certificate issued.")
		}
		return nil
	},
}

func init() {
	courseCmd.AddCommand(coursePullCmd)
	courseCmd.AddCommand(courseShowCmd)
}
