// log.go implements the "yume log" command.
package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	yumelog "github.com/yume-app/yume/internal/log"
)

var logCmd = &cobra.Command{
	Use:   "log",
	Short: "Show recent session events",
	Long:  `Print the most recent events from events.jsonl, oldest first.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		dir, err := resolveDir()
		if err != nil {
			return err
		}
		logger, err := yumelog.NewLogger(dir)
		if err != nil {
			return err
		}
		events, err := logger.Tail(limitFlag)
		if err != nil {
			return err
		}
		if len(events) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "No events yet. Start a session with: yume breathe")
			return nil
		}
		for _, ev := range events {
			printEvent(cmd.OutOrStdout(), ev)
		}
		return nil
	},
}

var limitFlag int

func init() {
	logCmd.Flags().IntVar(&limitFlag, "limit", 20, "Number of events to show (0 for all)")
}

func printEvent(w io.Writer, ev yumelog.LogEvent) {
	var parts []string
	if ev.SessionID != "" {
		id := ev.SessionID
		if len(id) > 8 {
			id = id[:8]
		}
		parts = append(parts, "session="+id)
	}
	if ev.Pattern != "" {
		parts = append(parts, fmt.Sprintf("pattern=%q", ev.Pattern))
	}
	if ev.Phase != "" {
		parts = append(parts, "phase="+ev.Phase)
	}
	if ev.Cycles > 0 {
		parts = append(parts, fmt.Sprintf("cycles=%d", ev.Cycles))
	}
	if ev.Step > 0 {
		parts = append(parts, fmt.Sprintf("step=%d", ev.Step))
	}
	if ev.Mantra != nil {
		parts = append(parts, fmt.Sprintf("mantra=%d", *ev.Mantra+1))
	}
	if ev.Enabled != nil {
		parts = append(parts, fmt.Sprintf("on=%t", *ev.Enabled))
	}
	if ev.Error != "" {
		parts = append(parts, fmt.Sprintf("error=%q", ev.Error))
	}
	fmt.Fprintf(w, "%s  %-24s %s\n", ev.Time.Local().Format("2006-01-02 15:04:05"), ev.Event, strings.Join(parts, " "))
}
