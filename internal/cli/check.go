package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/thruflo/tapeworm/internal/interp"
)

func newCheckCmd(g *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "check <file>...",
		Short: "Check programs for unbalanced brackets",
		Long: `Check resolves the brackets of each program without running it and
reports the position of the first problem found in each file.

Example:
  tapeworm check hello.bf
  tapeworm check examples/*.bf`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := g.loadConfig(); err != nil {
				return err
			}
			return runCheck(cmd, args)
		},
	}
}

func runCheck(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	failed := 0

	for _, path := range args {
		data, err := os.ReadFile(path)
		if err != nil {
			fmt.Fprintf(out, "%s: %v\n", path, err)
			failed++
			continue
		}

		jumps, err := interp.BuildJumpTable(data)
		var be *interp.BracketError
		switch {
		case errors.As(err, &be):
			fmt.Fprintf(out, "%s:%d:%d: %s\n", path, be.Line, be.Column, be.Problem())
			failed++
		case err != nil:
			fmt.Fprintf(out, "%s: %v\n", path, err)
			failed++
		default:
			fmt.Fprintf(out, "%s: ok (%d loops)\n", path, jumps.Pairs())
		}
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d programs failed", failed, len(args))
	}
	return nil
}
