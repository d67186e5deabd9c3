package cmd

import (
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/faize-ai/pomo/internal/session"
	"github.com/spf13/cobra"
)

var historyLimit int

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List recorded Pomodoro sessions",
	Long:  `List recorded Pomodoro sessions, most recent first, with the number of completed work intervals.`,
	Args:  cobra.NoArgs,
	RunE:  runHistory,
}

func init() {
	rootCmd.AddCommand(historyCmd)
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", 20, "maximum number of sessions to show (0 for all)")
}

func runHistory(cmd *cobra.Command, args []string) error {
	store, err := session.NewStore()
	if err != nil {
		return fmt.Errorf("failed to access session store: %w", err)
	}

	sessions, err := store.List()
	if err != nil {
		return fmt.Errorf("failed to list sessions: %w", err)
	}

	printHistory(cmd.OutOrStdout(), store.Dir(), sessions, historyLimit, time.Now())
	return nil
}

func printHistory(out io.Writer, dir string, sessions []*session.Session, limit int, now time.Time) {
	if len(sessions) == 0 {
		_, _ = fmt.Fprintf(out, "No recorded sessions in %s.\n", dir)
		return
	}
	if limit > 0 && len(sessions) > limit {
		sessions = sessions[:limit]
	}

	// Create tabwriter for aligned output
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "ID\tSTATUS\tWORK SESSIONS\tDURATIONS\tSTARTED\tLENGTH")
	_, _ = fmt.Fprintln(w, "--\t------\t-------------\t---------\t-------\t------")

	for _, sess := range sessions {
		status := sess.Status
		if sess.ExitReason != "" {
			status = fmt.Sprintf("%s (%s)", sess.Status, sess.ExitReason)
		}
		_, _ = fmt.Fprintf(w, "%s\t%s\t%d\t%d/%d/%d\t%s\t%s\n",
			shortID(sess.ID),
			status,
			sess.CompletedWork,
			sess.WorkMinutes, sess.ShortBreakMinutes, sess.LongBreakMinutes,
			sess.StartedAt.Local().Format("2006-01-02 15:04:05"),
			sess.Length(now).Round(time.Second),
		)
	}

	_ = w.Flush()
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
