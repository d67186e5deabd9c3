package cmd

import (
	"fmt"
	"io"

	"github.com/faize-ai/pomo/internal/session"
	"github.com/spf13/cobra"
)

var pruneAll bool

var pruneCmd = &cobra.Command{
	Use:   "prune",
	Short: "Remove recorded sessions",
	Long: `Remove recorded Pomodoro sessions from the history.

By default only stopped sessions are removed. Sessions still marked
"running" belong to a pomo process that is active or exited abnormally;
use --all to remove them too.`,
	Args: cobra.NoArgs,
	RunE: runPrune,
}

func init() {
	rootCmd.AddCommand(pruneCmd)
	pruneCmd.Flags().BoolVarP(&pruneAll, "all", "a", false, "remove all sessions (including running)")
}

func runPrune(cmd *cobra.Command, args []string) error {
	store, err := session.NewStore()
	if err != nil {
		return fmt.Errorf("failed to access session store: %w", err)
	}

	out := cmd.OutOrStdout()
	removed, err := pruneSessions(out, store, pruneAll)
	if err != nil {
		return err
	}

	if removed == 0 {
		_, _ = fmt.Fprintln(out, "No sessions to remove.")
	} else {
		_, _ = fmt.Fprintf(out, "Removed %d session(s).\n", removed)
	}
	return nil
}

type sessionStore interface {
	List() ([]*session.Session, error)
	Delete(id string) error
}

func pruneSessions(out io.Writer, store sessionStore, all bool) (int, error) {
	sessions, err := store.List()
	if err != nil {
		return 0, fmt.Errorf("failed to list sessions: %w", err)
	}

	removedCount := 0
	for _, sess := range sessions {
		if !all && sess.Status != session.StatusStopped {
			continue
		}
		if err := store.Delete(sess.ID); err != nil {
			_, _ = fmt.Fprintf(out, "Warning: failed to delete session %s: %v\n", sess.ID, err)
			continue
		}
		removedCount++
	}

	return removedCount, nil
}
