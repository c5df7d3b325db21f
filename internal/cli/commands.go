package cli

import (
	"fmt"
	"iter"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/ib-77/xlist/pkg/xlist"
)

func (a *app) tokensCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tokens [text...]",
		Short: "Split text into tokens",
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := a.text(args)
			if err != nil {
				return err
			}
			l, err := a.tokens(text)
			if err != nil {
				return err
			}
			a.entry(cmd).WithField("size", l.Size()).Debug("tokenized")
			return render(a.out, a.cfg.Output, l)
		},
	}
}

func (a *app) charsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "chars [text...]",
		Short: "Split text into characters",
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := a.text(args)
			if err != nil {
				return err
			}
			l := xlist.CharsOf(text)
			a.entry(cmd).WithField("size", l.Size()).Debug("split into characters")
			return render(a.out, a.cfg.Output, l)
		},
	}
}

func (a *app) uniqueCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "unique [text...]",
		Short: "Print each distinct token once, in first-seen order",
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := a.text(args)
			if err != nil {
				return err
			}
			l, err := a.tokens(text)
			if err != nil {
				return err
			}
			u := l.Unique()
			a.entry(cmd).WithFields(logrus.Fields{"in": l.Size(), "out": u.Size()}).Debug("unique")
			return render(a.out, a.cfg.Output, u)
		},
	}
}

func (a *app) diffCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "diff <text> <remove>",
		Short: "Print the tokens of text that do not occur in remove",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			l, other, err := a.tokenPair(args)
			if err != nil {
				return err
			}
			d := l.Diff(other.All())
			a.entry(cmd).WithField("removed", l.Size()-d.Size()).Debug("diff")
			return render(a.out, a.cfg.Output, d)
		},
	}
}

func (a *app) unionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "union <text> <other>",
		Short: "Print the tokens of text followed by the tokens of other",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			l, other, err := a.tokenPair(args)
			if err != nil {
				return err
			}
			u := l.Union(other.All())
			a.entry(cmd).WithField("size", u.Size()).Debug("union")
			return render(a.out, a.cfg.Output, u)
		},
	}
}

func (a *app) combineCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "combine <word>...",
		Short: "Print every combination taking one character from each word",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			words := xlist.Of(args...)
			combos := xlist.CombineFunc(words, func(w string) iter.Seq[string] {
				return xlist.CharsOf(w).All()
			})
			out := xlist.Collect(combos, func(c *xlist.List[string]) string {
				return c.Join(a.cfg.Separator)
			})
			a.entry(cmd).WithFields(logrus.Fields{"words": words.Size(), "combinations": out.Size()}).Debug("combined")
			return render(a.out, a.cfg.Output, out)
		},
	}
}

func (a *app) joinCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "join [text...]",
		Short: "Join tokens with the separator",
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := a.text(args)
			if err != nil {
				return err
			}
			l, err := a.tokens(text)
			if err != nil {
				return err
			}
			a.entry(cmd).WithField("size", l.Size()).Debug("join")
			_, err = fmt.Fprintln(a.out, l.Join(a.cfg.Separator))
			return err
		},
	}
}

func (a *app) tokenPair(args []string) (*xlist.List[string], *xlist.List[string], error) {
	l, err := a.tokens(args[0])
	if err != nil {
		return nil, nil, err
	}
	other, err := a.tokens(args[1])
	if err != nil {
		return nil, nil, err
	}
	return l, other, nil
}
