// Command katex renders LaTeX equations to HTML fragments on the command
// line. Input comes from arguments or stdin; the fragment goes to stdout.
//
//	katex 'E = mc^2'
//	echo '\frac{a}{b}' | katex --display
//	katex -i
package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/typesetting/katex"
)

var failureStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF6B6B"))

type renderFlags struct {
	display          bool
	output           string
	leqno            bool
	fleqn            bool
	throwOnError     bool
	errorColor       string
	macroDefs        []string
	macrosFile       string
	presetFile       string
	minRuleThickness float64
	maxSize          float64
	maxExpand        int32
	trust            bool

	interactive bool
	verbose     bool
}

func newRootCmd() *cobra.Command {
	var flags renderFlags

	cmd := &cobra.Command{
		Use:   "katex [equation]",
		Short: "Render LaTeX math to an HTML fragment",
		Long: "Render LaTeX math to an HTML fragment using the bundled KaTeX build.\n" +
			"With no equation argument, input is read from stdin. Only options\n" +
			"explicitly given on the command line (or via --preset/--macros files)\n" +
			"are forwarded; everything else uses the engine defaults.",
		Version:      katex.Version,
		Args:         cobra.ArbitraryArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if flags.verbose {
				logger, err := zap.NewDevelopment()
				if err != nil {
					return err
				}
				defer logger.Sync()
				katex.SetLogger(logger)
			}

			if flags.interactive {
				return runInteractive(&flags, cmd.Flags().Changed)
			}

			input, err := readInput(args, cmd.InOrStdin())
			if err != nil {
				return err
			}

			opts, err := buildOpts(&flags, cmd.Flags().Changed)
			if err != nil {
				return err
			}

			out, err := katex.RenderWithOpts(input, opts)
			if err != nil {
				return renderFailure(err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), out)
			return nil
		},
	}

	f := cmd.Flags()
	f.BoolVarP(&flags.display, "display", "d", false, "render in display (block) mode")
	f.StringVarP(&flags.output, "output", "o", "htmlAndMathml", "markup to emit: html, mathml or htmlAndMathml")
	f.BoolVar(&flags.leqno, "leqno", false, "place equation tags on the left")
	f.BoolVar(&flags.fleqn, "fleqn", false, "left-align display math")
	f.BoolVar(&flags.throwOnError, "throw-on-error", true, "fail on invalid LaTeX instead of emitting error nodes")
	f.StringVar(&flags.errorColor, "error-color", "#cc0000", "color for invalid LaTeX when errors are not thrown")
	f.StringArrayVarP(&flags.macroDefs, "macro", "m", nil, "macro definition name=expansion (repeatable)")
	f.StringVar(&flags.macrosFile, "macros", "", "YAML file mapping macro names to expansions")
	f.StringVar(&flags.presetFile, "preset", "", "TOML file with a full option preset")
	f.Float64Var(&flags.minRuleThickness, "min-rule-thickness", 0, "minimum rule thickness in ems")
	f.Float64Var(&flags.maxSize, "max-size", 0, "max user-specified size in ems (-1 for unlimited)")
	f.Int32Var(&flags.maxExpand, "max-expand", 0, "macro expansion limit (-1 for unlimited)")
	f.BoolVar(&flags.trust, "trust", false, "trust the input for commands like \\url")
	f.BoolVarP(&flags.interactive, "interactive", "i", false, "interactive mode with TUI")
	f.BoolVarP(&flags.verbose, "verbose", "v", false, "log engine lifecycle events")

	return cmd
}

// readInput joins the positional arguments or, absent any, drains stdin.
func readInput(args []string, stdin io.Reader) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}
	data, err := io.ReadAll(stdin)
	if err != nil {
		return "", fmt.Errorf("read stdin: %w", err)
	}
	input := strings.TrimRight(string(data), "\n")
	if input == "" {
		return "", fmt.Errorf("no input: pass an equation or pipe one on stdin")
	}
	return input, nil
}

// renderFailure wraps a render error, colorized when stderr is a terminal.
func renderFailure(err error) error {
	msg := err.Error()
	if term.IsTerminal(int(os.Stderr.Fd())) {
		msg = failureStyle.Render(msg)
	}
	return fmt.Errorf("%s", msg)
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
