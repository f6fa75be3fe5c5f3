package cmd

import (
	"github.com/priyam/studytrail/internal/progress"
	"github.com/priyam/studytrail/internal/remote"
	"github.com/priyam/studytrail/internal/store"
	"github.com/priyam/studytrail/internal/syncq"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "studytrail",
	Short: "Course progress tracker with offline sync",
	Long:  "Studytrail tracks your position through generated courses, scores quizzes, and keeps device and server in sync even when the network isn't there.",
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides STUDYTRAIL_DB env var)")

	rootCmd.AddCommand(courseCmd)
	rootCmd.AddCommand(progressCmd)
	rootCmd.AddCommand(quizCmd)
	rootCmd.AddCommand(syncCmd)
	rootCmd.AddCommand(tokenCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest
// priority), then STUDYTRAIL_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}

// services is the wired object graph every command works against.
type services struct {
	store    *store.Store
	remote   *remote.Client
	queue    *syncq.Queue
	progress *progress.Service
}

// openServices opens the store and wires the remote client, sync queue
// and progress service against it. The caller closes the store.
func openServices(cmd *cobra.Command) (*services, error) {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, err
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return nil, err
	}

	tokens := &store.SettingTokenSource{Settings: st.SettingRepo()}
	rc := remote.New(remote.ConfigFromEnv(), tokens)
	queue := syncq.New(st.QueueRepo(), st.EventRepo(), rc, tokens, syncq.ConfigFromEnv())
	svc := progress.NewService(progress.Options{
		Courses:      st.CourseRepo(),
		Cursors:      st.ProgressRepo(),
		Certificates: st.CertificateRepo(),
		Events:       st.EventRepo(),
		Remote:       rc,
		Queue:        queue,
	})

	return &services{store: st, remote: rc, queue: queue, progress: svc}, nil
}
