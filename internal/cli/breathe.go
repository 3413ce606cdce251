// breathe.go implements the "yume breathe" headless session.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/yume-app/yume/internal/breath"
	"github.com/yume-app/yume/internal/config"
	"github.com/yume-app/yume/internal/session"
	"github.com/yume-app/yume/internal/timer"
)

var breatheCmd = &cobra.Command{
	Use:   "breathe",
	Short: "Run a breathing session without the TUI",
	Long: `Run one breathing session, printing each phase, completed cycle, and
mantra as it happens. Ctrl+C stops the session early.`,
	RunE: runBreathe,
}

var (
	patternFlag string
	minutesFlag int
)

func init() {
	breatheCmd.Flags().StringVar(&patternFlag, "pattern", "", "Pattern name (default from config)")
	breatheCmd.Flags().IntVar(&minutesFlag, "minutes", 0, "Session length in minutes, 1-15 (default from config)")
}

func runBreathe(cmd *cobra.Command, args []string) error {
	e, err := openEnv(cmd)
	if err != nil {
		return err
	}
	defer e.Close()

	cfg := *e.cfg
	if patternFlag != "" {
		p, err := breath.Find(cfg.Patterns(), patternFlag)
		if err != nil {
			return err
		}
		cfg.Breathing.DefaultPattern = p.Name
	}
	if cmd.Flags().Changed("minutes") {
		if minutesFlag < breath.MinSessionMinutes || minutesFlag > breath.MaxSessionMinutes {
			return fmt.Errorf("%w: %d", config.ErrInvalidSessionLength, minutesFlag)
		}
		cfg.Breathing.SessionMinutes = minutesFlag
	}

	sigCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	ctx, finish := context.WithCancel(sigCtx)
	defer finish()

	sched := timer.NewScheduler(time.Now())
	pr := &printer{out: cmd.OutOrStdout(), onDone: finish}
	ctl := session.New(sched, &cfg, e.book(),
		session.WithReporter(e.reporter),
		session.WithHook(pr.handle),
	)
	pr.ctl = ctl

	ctl.Start()
	timer.Pump(ctx, sched, 100*time.Millisecond)

	// Interrupted: stop the session so the log records it.
	if sigCtx.Err() != nil {
		fmt.Fprintln(pr.out)
		ctl.Reset()
	}
	ctl.Close()
	e.warn(ctl.Err())
	return nil
}

// printer writes session events as lines of text.
type printer struct {
	out    io.Writer
	ctl    *session.Controller
	onDone func()
	cycles int
}

func (p *printer) handle(ev breath.Event) {
	s := ev.State
	switch ev.Kind {
	case breath.EventStarted:
		p.cycles = 0
		fmt.Fprintf(p.out, "%s (%s) for %s\n", s.Pattern.Name, s.Pattern.Summary(), breath.FormatTime(s.SessionTotal))
	case breath.EventPhaseEntered:
		fmt.Fprintf(p.out, "  %-12s %2ds   %s left\n", s.Phase.Label(), s.PhaseRemaining, breath.FormatTime(s.SessionRemaining))
	case breath.EventCycleCompleted:
		p.cycles = s.Cycles
		fmt.Fprintf(p.out, "Cycle %d complete\n", s.Cycles)
		if p.ctl != nil && p.ctl.ShowMantras() {
			fmt.Fprintf(p.out, "  “%s”\n", p.ctl.Book().CurrentText())
		}
	case breath.EventPaused:
		fmt.Fprintln(p.out, "Paused")
	case breath.EventResumed:
		fmt.Fprintln(p.out, "Resumed")
	case breath.EventReset:
		fmt.Fprintf(p.out, "Session stopped after %s\n", plural(p.cycles, "cycle"))
	case breath.EventCompleted:
		fmt.Fprintf(p.out, "Session complete: %s\n", plural(p.cycles, "cycle"))
		if p.onDone != nil {
			p.onDone()
		}
	}
}

func plural(n int, word string) string {
	if n == 1 {
		return fmt.Sprintf("1 %s", word)
	}
	return fmt.Sprintf("%d %ss", n, word)
}
