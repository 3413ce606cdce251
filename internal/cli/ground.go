// ground.go implements the "yume ground" command.
package cli

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/yume-app/yume/internal/session"
	"github.com/yume-app/yume/internal/timer"
)

var groundCmd = &cobra.Command{
	Use:   "ground",
	Short: "Walk through the 5-4-3-2-1 grounding exercise",
	Long: `Walk through the five senses one step at a time. Press enter when a
step is done, or type r and enter to stop.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := openEnv(cmd)
		if err != nil {
			return err
		}
		defer e.Close()

		ctl := session.New(timer.NewScheduler(time.Now()), e.cfg, e.book(),
			session.WithReporter(e.reporter))
		defer ctl.Close()

		err = walkGrounding(cmd.InOrStdin(), cmd.OutOrStdout(), ctl)
		e.warn(ctl.Err())
		return err
	},
}

// walkGrounding runs the grounding exercise reading one line per step.
// End of input abandons the exercise.
func walkGrounding(in io.Reader, out io.Writer, ctl *session.Controller) error {
	steps := ctl.GroundingSteps()
	ctl.GroundingStart()

	printStep := func() {
		i := ctl.Grounding().Current
		st := steps[i]
		fmt.Fprintf(out, "\n[%d/%d] %s\n", i+1, len(steps), st.Label())
		fmt.Fprintf(out, "  %s\n", st.Instruction)
		fmt.Fprint(out, "Press enter when done (r to stop): ")
	}
	printStep()

	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		if strings.EqualFold(strings.TrimSpace(scanner.Text()), "r") {
			ctl.GroundingReset()
			fmt.Fprintln(out, "Stopped.")
			return nil
		}
		if ctl.GroundingAdvance() {
			fmt.Fprintln(out, "\nGrounding complete. Take a moment to notice how you feel.")
			return nil
		}
		printStep()
	}
	ctl.GroundingReset()
	fmt.Fprintln(out)
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("reading input: %w", err)
	}
	return nil
}
