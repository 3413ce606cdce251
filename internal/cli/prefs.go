// prefs.go implements the "yume prefs" command.
package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/yume-app/yume/internal/prefs"
)

var prefsCmd = &cobra.Command{
	Use:   "prefs",
	Short: "Show stored preferences",
	Long:  `Print the theme, favorite mantras, and pinned mantra saved in prefs.db.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := openEnv(cmd)
		if err != nil {
			return err
		}
		defer e.Close()

		entries, err := e.store.List()
		if err != nil {
			return err
		}
		printPrefs(cmd.OutOrStdout(), entries)
		return nil
	},
}

var prefsResetCmd = &cobra.Command{
	Use:   "reset [key...]",
	Short: "Forget stored preferences",
	Long: `Delete the named preferences, or every preference with --all.
The next run falls back to the defaults for anything deleted.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 && !resetAllFlag {
			return fmt.Errorf("name a preference to reset, or pass --all")
		}

		e, err := openEnv(cmd)
		if err != nil {
			return err
		}
		defer e.Close()

		removed, err := resetPrefs(e.store, args, resetAllFlag)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Reset %s.\n", plural(removed, "preference"))
		return nil
	},
}

var resetAllFlag bool

func init() {
	prefsResetCmd.Flags().BoolVar(&resetAllFlag, "all", false, "Reset every stored preference")
	prefsCmd.AddCommand(prefsResetCmd)
}

func printPrefs(w io.Writer, entries []prefs.Entry) {
	if len(entries) == 0 {
		fmt.Fprintln(w, "No preferences saved yet.")
		return
	}
	for _, e := range entries {
		fmt.Fprintf(w, "%-20s %-16s %s\n", e.Key, e.Value, e.UpdatedAt.Local().Format("2006-01-02 15:04"))
	}
}

// resetPrefs deletes keys, or every stored key when all is set, and returns
// how many were present.
func resetPrefs(store *prefs.SQLiteStore, keys []string, all bool) (int, error) {
	entries, err := store.List()
	if err != nil {
		return 0, err
	}
	present := make(map[string]bool, len(entries))
	for _, e := range entries {
		present[e.Key] = true
		if all {
			keys = append(keys, e.Key)
		}
	}

	removed := 0
	for _, k := range keys {
		if !present[k] {
			continue
		}
		if err := store.Delete(k); err != nil {
			return removed, err
		}
		present[k] = false
		removed++
	}
	return removed, nil
}
