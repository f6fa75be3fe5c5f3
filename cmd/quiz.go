package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/priyam/studytrail/internal/course"
	"github.com/priyam/studytrail/internal/quiz"
	"github.com/priyam/studytrail/internal/unlock"
	"github.com/spf13/cobra"
)

var quizCmd = &cobra.Command{
	Use:   "quiz <courseId> <chapter> <topic>",
	Short: "Take the quiz for a topic",
	Long:  "Runs the quiz for the given topic (1-based chapter and topic numbers). A pass unlocks the next topic; the final pass of a course issues its certificate.",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		chapterNum, err := strconv.Atoi(args[1])
		if err != nil || chapterNum < 1 {
			return fmt.Errorf("chapter must be a positive number, got %q", args[1])
		}
		topicNum, err := strconv.Atoi(args[2])
		if err != nil || topicNum < 1 {
			return fmt.Errorf("topic must be a positive number, got %q", args[2])
		}
		chapterIndex, topicIndex := chapterNum-1, topicNum-1

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

		topic, ok := course.TopicAt(crs, chapterIndex, topicIndex)
		if !ok {
			return fmt.Errorf("no topic %d.%d in %q", chapterNum, topicNum, crs.Title)
		}

		cur := svcs.progress.Read(ctx, courseID)
		if unlock.Status(cur, chapterIndex, topicIndex) == unlock.Locked {
			return fmt.Errorf("topic %d.%d is locked; current position is %d.%d",
				chapterNum, topicNum, cur.ChapterIndex+1, cur.TopicIndex+1)
		}

		attempt, err := quiz.NewAttempt(topic.Quiz)
		if err != nil {
			if errors.Is(err, quiz.ErrNoQuestions) {
				return fmt.Errorf("no quiz available for %q", topic.Title)
			}
			return err
		}

		if err := runAttempt(attempt, topic); err != nil {
			return err
		}

		res := attempt.Result()
		outcome, err := svcs.progress.FinishQuiz(ctx, courseID, chapterIndex, topicIndex, res)
		if err != nil {
			return err
		}

		fmt.Printf("\nScore: %d/%d\n", res.CorrectCount, res.AttemptedCount)
		switch {
		case outcome.CourseCompleted:
			fmt.Println("Passed! Course complete, certificate issued.")
		case outcome.Passed:
			fmt.Printf("Passed! Topic %d.%d unlocked.\n", outcome.Next.ChapterIndex+1, outcome.Next.TopicIndex+1)
		default:
			fmt.Println("Not passed. Review the topic and try again.")
		}
		return nil
	},
}

// runAttempt walks the attempt question by question on stdin.
// One question at a time, no revisiting.
func runAttempt(attempt *quiz.Attempt, topic *course.Topic) error {
	reader := bufio.NewReader(os.Stdin)
	fmt.Printf("Quiz: %s\n\n", topic.Title)

	num := 1
	for q := attempt.Current(); q != nil; q = attempt.Current() {
		fmt.Printf("Q%d. %s\n", num, q.Text)
		for i, opt := range q.Options {
			fmt.Printf("  %d) %s\n", i+1, opt)
		}

		selected := -1
		for selected < 0 {
			fmt.Print("> ")
			line, err := reader.ReadString('\n')
			if err != nil {
				return fmt.Errorf("read answer: %w", err)
			}
			n, convErr := strconv.Atoi(strings.TrimSpace(line))
			if convErr != nil || n < 1 || n > len(q.Options) {
				fmt.Printf("Enter a number between 1 and %d.\n", len(q.Options))
				continue
			}
			selected = n - 1
		}

		attempt.Answer(selected)
		num++
	}
	return nil
}
