// patterns.go implements the "yume patterns" command.
package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/yume-app/yume/internal/breath"
	"github.com/yume-app/yume/internal/config"
)

var patternsCmd = &cobra.Command{
	Use:   "patterns",
	Short: "List breathing patterns",
	Long: `List the preset breathing patterns and any custom patterns from
config.yaml. The default pattern is marked with *.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		dir, err := resolveDir()
		if err != nil {
			return err
		}
		cfg, err := config.Load(dir)
		if err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "Warning: %v; using defaults\n", err)
		}
		printPatterns(cmd.OutOrStdout(), cfg.Patterns(), cfg.Breathing.DefaultPattern)
		return nil
	},
}

func printPatterns(w io.Writer, patterns []breath.Pattern, defaultName string) {
	for _, p := range patterns {
		mark := " "
		if strings.EqualFold(p.Name, defaultName) {
			mark = "*"
		}
		fmt.Fprintf(w, "%s %-22s %-9s %3ds", mark, p.Name, p.Summary(), p.CycleSeconds())
		if p.Recommended {
			fmt.Fprint(w, "  [recommended]")
		}
		fmt.Fprintln(w)
		if p.UseCase != "" {
			fmt.Fprintf(w, "  %s\n", p.UseCase)
		}
	}
}
