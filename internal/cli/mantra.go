// mantra.go implements the "yume mantra" commands.
package cli

import (
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/yume-app/yume/internal/mantra"
	"github.com/yume-app/yume/internal/session"
	"github.com/yume-app/yume/internal/timer"
)

var mantraCmd = &cobra.Command{
	Use:   "mantra",
	Short: "Manage favorite and pinned mantras",
	Long: `List mantras and change which ones are favorites or pinned. A pinned
mantra is always shown; otherwise a random favorite is shown, or a random
mantra when there are no favorites.`,
}

var mantraListCmd = &cobra.Command{
	Use:   "list",
	Short: "List mantras with favorite (★) and pinned (●) markers",
	Args:  cobra.NoArgs,
	RunE: withController(func(cmd *cobra.Command, args []string, ctl *session.Controller) error {
		printMantras(cmd.OutOrStdout(), ctl.Book())
		return nil
	}),
}

var mantraFavCmd = &cobra.Command{
	Use:   "fav N",
	Short: "Toggle mantra N as a favorite",
	Args:  cobra.ExactArgs(1),
	RunE: withController(func(cmd *cobra.Command, args []string, ctl *session.Controller) error {
		i, err := parseMantra(args[0], ctl.Book().Len())
		if err != nil {
			return err
		}
		was := ctl.Book().Preferences().IsFavorite(i)
		if err := ctl.ToggleFavorite(i); err != nil {
			return err
		}
		state := "added to"
		if was {
			state = "removed from"
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Mantra %d %s favorites.\n", i+1, state)
		return nil
	}),
}

var mantraLockCmd = &cobra.Command{
	Use:   "lock N",
	Short: "Pin mantra N, or unpin it if it is already pinned",
	Args:  cobra.ExactArgs(1),
	RunE: withController(func(cmd *cobra.Command, args []string, ctl *session.Controller) error {
		i, err := parseMantra(args[0], ctl.Book().Len())
		if err != nil {
			return err
		}
		was := ctl.Book().Preferences().IsLocked(i)
		if err := ctl.ToggleLock(i); err != nil {
			return err
		}
		if was {
			fmt.Fprintf(cmd.OutOrStdout(), "Mantra %d unpinned.\n", i+1)
		} else {
			fmt.Fprintf(cmd.OutOrStdout(), "Mantra %d pinned.\n", i+1)
		}
		return nil
	}),
}

var mantraUnlockCmd = &cobra.Command{
	Use:   "unlock",
	Short: "Unpin the pinned mantra",
	Args:  cobra.NoArgs,
	RunE: withController(func(cmd *cobra.Command, args []string, ctl *session.Controller) error {
		i, ok, err := ctl.Unlock()
		if err != nil {
			return err
		}
		if !ok {
			fmt.Fprintln(cmd.OutOrStdout(), "No mantra is pinned.")
			return nil
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Mantra %d unpinned.\n", i+1)
		return nil
	}),
}

var mantraRandomCmd = &cobra.Command{
	Use:   "random",
	Short: "Print a mantra chosen the way sessions choose them",
	Args:  cobra.NoArgs,
	RunE: withController(func(cmd *cobra.Command, args []string, ctl *session.Controller) error {
		i := ctl.RandomMantra()
		fmt.Fprintln(cmd.OutOrStdout(), ctl.Book().Text(i))
		return nil
	}),
}

func init() {
	mantraCmd.AddCommand(mantraListCmd)
	mantraCmd.AddCommand(mantraFavCmd)
	mantraCmd.AddCommand(mantraLockCmd)
	mantraCmd.AddCommand(mantraUnlockCmd)
	mantraCmd.AddCommand(mantraRandomCmd)
}

// withController opens the environment and builds a controller for fn.
// Reporting failures are printed as warnings.
func withController(fn func(*cobra.Command, []string, *session.Controller) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		e, err := openEnv(cmd)
		if err != nil {
			return err
		}
		defer e.Close()

		ctl := session.New(timer.NewScheduler(time.Now()), e.cfg, e.book(),
			session.WithReporter(e.reporter))
		defer ctl.Close()

		if err := fn(cmd, args, ctl); err != nil {
			return err
		}
		// Anything left is a reporting failure.
		e.warn(ctl.Err())
		return nil
	}
}

// parseMantra turns a 1-based mantra number into an index.
func parseMantra(arg string, n int) (int, error) {
	num, err := strconv.Atoi(arg)
	if err != nil {
		return 0, fmt.Errorf("parsing mantra number %q: %w", arg, err)
	}
	if num < 1 || num > n {
		return 0, fmt.Errorf("%w: %d (choose 1-%d)", mantra.ErrIndexOutOfRange, num, n)
	}
	return num - 1, nil
}

func printMantras(w io.Writer, book *mantra.Book) {
	p := book.Preferences()
	for i, text := range book.Texts() {
		fav := " "
		if p.IsFavorite(i) {
			fav = "★"
		}
		pin := " "
		if p.IsLocked(i) {
			pin = "●"
		}
		fmt.Fprintf(w, "%s%s %2d. %s\n", fav, pin, i+1, text)
	}
	fmt.Fprintf(w, "\n%s", plural(len(p.Favorites), "favorite"))
	if p.Locked != nil {
		fmt.Fprintf(w, ", pinned #%d", *p.Locked+1)
	}
	fmt.Fprintln(w)
}
