package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"sync"

	"github.com/spf13/cobra"
	"github.com/thruflo/tapeworm/internal/config"
	"github.com/thruflo/tapeworm/internal/console"
	"github.com/thruflo/tapeworm/internal/interp"
	"github.com/thruflo/tapeworm/internal/logging"
)

type runOptions struct {
	eval     string
	tapeSize int
	eof      string
	raw      bool
	maxSteps uint64
	dump     int
}

func newRunCmd(g *globalOptions) *cobra.Command {
	o := &runOptions{}

	cmd := &cobra.Command{
		Use:   "run [file]",
		Short: "Run a program",
		Long: `Run a program read from a file, from stdin (file "-"), or given inline
with --eval. The program's ',' reads from stdin and '.' writes to stdout.

When input runs out, ',' follows the EOF policy:
  error      stop with an error (default)
  zero       store 0
  minus-one  store 255
  unchanged  leave the cell as it is

With --raw and a terminal on stdin, each keypress is delivered to ','
immediately instead of a line at a time.

Example:
  tapeworm run hello.bf
  tapeworm run --eof zero cat.bf < input.txt
  tapeworm run -e '+++++++[>++++++++++<-]>++.' --dump 2`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRun(cmd, args, g, o)
		},
	}

	cmd.Flags().StringVarP(&o.eval, "eval", "e", "", "Program source given inline instead of a file")
	cmd.Flags().IntVar(&o.tapeSize, "tape-size", config.DefaultTapeSize, "Number of tape cells")
	cmd.Flags().StringVar(&o.eof, "eof", config.DefaultEOF, "EOF policy for ',': error, zero, minus-one or unchanged")
	cmd.Flags().BoolVar(&o.raw, "raw", false, "Read terminal input one keypress at a time")
	cmd.Flags().Uint64Var(&o.maxSteps, "max-steps", 0, "Stop after this many steps (0 for no limit)")
	cmd.Flags().IntVar(&o.dump, "dump", 0, "After the run, print this many cells either side of the cursor to stderr")
	return cmd
}

// applyFlags overrides cfg with every run flag the user set explicitly.
func (o *runOptions) applyFlags(cmd *cobra.Command, cfg *config.Config) error {
	flags := cmd.Flags()
	if flags.Changed("tape-size") {
		cfg.Tape.Size = o.tapeSize
	}
	if flags.Changed("eof") {
		cfg.Input.EOF = o.eof
	}
	if flags.Changed("raw") {
		cfg.Input.Raw = o.raw
	}
	if flags.Changed("max-steps") {
		cfg.Limits.MaxSteps = o.maxSteps
	}
	return config.ValidateConfig(cfg)
}

// readProgram returns the program source and a name for messages.
func (o *runOptions) readProgram(cmd *cobra.Command, args []string) (string, string, error) {
	evalSet := cmd.Flags().Changed("eval")
	switch {
	case evalSet && len(args) > 0:
		return "", "", errors.New("cannot use --eval together with a file argument")
	case evalSet:
		return o.eval, "<eval>", nil
	case len(args) == 0:
		return "", "", errors.New("a program file or --eval is required")
	case args[0] == "-":
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", "", fmt.Errorf("failed to read program from stdin: %w", err)
		}
		return string(data), "<stdin>", nil
	}

	data, err := os.ReadFile(args[0])
	if err != nil {
		return "", "", fmt.Errorf("failed to read program: %w", err)
	}
	return string(data), args[0], nil
}

func runRun(cmd *cobra.Command, args []string, g *globalOptions, o *runOptions) error {
	cfg, err := g.loadConfig()
	if err != nil {
		return err
	}
	if err := o.applyFlags(cmd, cfg); err != nil {
		return err
	}

	src, name, err := o.readProgram(cmd, args)
	if err != nil {
		return err
	}

	opts, err := cfg.Options()
	if err != nil {
		return err
	}
	log := logging.With("program", name)
	opts.Logger = log
	opts.Input = cmd.InOrStdin()
	opts.Output = cmd.OutOrStdout()

	restore := func() {}
	if cfg.Input.Raw {
		f, ok := opts.Input.(*os.File)
		if ok && console.IsTerminal(f) {
			term := console.NewTerminal(f)
			if err := term.EnterRaw(); err != nil {
				return err
			}
			// Called on interrupt, after Run and on return; only the first
			// call touches the terminal.
			restore = sync.OnceFunc(func() {
				if err := term.ExitRaw(); err != nil {
					log.Warn("failed to restore terminal", "error", err)
				}
			})
			opts.Input = term.Reader()
			opts.Output = term.Writer(opts.Output)
		} else {
			log.Info("raw mode requested but stdin is not a terminal")
		}
	}
	defer restore()

	in, err := interp.New(src, opts)
	if err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, stop := interruptContext(ctx, restore)
	defer stop()

	res, err := in.Run(ctx)
	// The dump and the error go to a cooked terminal.
	restore()

	if o.dump > 0 {
		writeDump(cmd.ErrOrStderr(), in, o.dump)
	}

	if err != nil {
		return fmt.Errorf("%s: %s after %d steps: %w", name, res.Reason, res.Steps, err)
	}
	return nil
}

func writeDump(w io.Writer, in *interp.Interpreter, radius int) {
	t := in.Tape()
	fmt.Fprintf(w, "tape: %d cells, cursor at %d\n", t.Len(), t.Cursor())
	for _, c := range t.Window(radius) {
		marker := " "
		if c.Index == t.Cursor() {
			marker = ">"
		}
		fmt.Fprintf(w, "%s %6d: %3d\n", marker, c.Index, c.Value)
	}
}

// interruptContext returns a context cancelled by the first SIGINT. Once it
// is done, onDone runs and SIGINT handling is reset, so a second interrupt
// kills the process even while ',' blocks on input.
func interruptContext(parent context.Context, onDone func()) (context.Context, context.CancelFunc) {
	ctx, stop := signal.NotifyContext(parent, os.Interrupt)
	go func() {
		<-ctx.Done()
		onDone()
		stop()
	}()
	return ctx, stop
}
