// Package cli provides the xlist command-line interface. Every command
// builds lists from text with package xlist and prints the result.
package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/ib-77/xlist/pkg/xlist"
)

type app struct {
	cfg    Config
	in     io.Reader
	out    io.Writer
	errOut io.Writer
	log    *logrus.Logger
}

// NewRootCommand builds the command tree. cfg supplies flag defaults.
func NewRootCommand(cfg Config, in io.Reader, out, errOut io.Writer) *cobra.Command {
	a := &app{cfg: cfg, in: in, out: out, errOut: errOut}

	root := &cobra.Command{
		Use:   "xlist",
		Short: "Build linked lists from text and combine them.",
		Long: `xlist splits text into lists of tokens or characters and applies list ` +
			`operations to them: unique, diff, union, join and cartesian combine.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			l, err := newLogger(a.cfg.LogLevel, a.errOut)
			if err != nil {
				return err
			}
			a.log = l
			return nil
		},
	}
	root.SetIn(in)
	root.SetOut(out)
	root.SetErr(errOut)

	flags := root.PersistentFlags()
	flags.StringVarP(&a.cfg.Output, "output", "o", cfg.Output, "output format: text, lines, json or yaml")
	flags.StringVar(&a.cfg.LogLevel, "log-level", cfg.LogLevel, "log level: trace, debug, info, warn or error")
	flags.StringVar(&a.cfg.Pattern, "pattern", cfg.Pattern, "regular expression separating tokens")
	flags.StringVar(&a.cfg.Separator, "sep", cfg.Separator, "separator used by join and combine")

	root.AddCommand(
		a.tokensCmd(),
		a.charsCmd(),
		a.uniqueCmd(),
		a.diffCmd(),
		a.unionCmd(),
		a.combineCmd(),
		a.joinCmd(),
	)
	return root
}

// Execute runs the CLI against the process environment and exits with
// status 1 on failure.
func Execute() {
	cfg, err := LoadConfig(".env")
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	if err := NewRootCommand(cfg, os.Stdin, os.Stdout, os.Stderr).Execute(); err != nil {
		os.Exit(1)
	}
}

// entry returns a logger tagged with a fresh run id and the command name.
func (a *app) entry(cmd *cobra.Command) *logrus.Entry {
	return a.log.WithFields(logrus.Fields{
		"run": uuid.New().String(),
		"cmd": cmd.Name(),
	})
}

// text joins args with single spaces, or reads all of stdin when there
// are none.
func (a *app) text(args []string) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}
	data, err := io.ReadAll(a.in)
	if err != nil {
		return "", fmt.Errorf("read input: %w", err)
	}
	return strings.TrimRight(string(data), "\r\n"), nil
}

func (a *app) tokens(text string) (*xlist.List[string], error) {
	return xlist.TokensOfPattern(text, a.cfg.Pattern)
}
