package main

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/alucardeht/wordcount/internal/config"
	"github.com/alucardeht/wordcount/internal/constraint"
	"github.com/alucardeht/wordcount/internal/failure"
	"github.com/alucardeht/wordcount/internal/filter"
	"github.com/alucardeht/wordcount/internal/logger"
	"github.com/alucardeht/wordcount/internal/wordlist"
)

const longDescription = `Counts the number of valid wordle guesses complying to the filters provided.

Each of --letters, --positions and --substrings takes a space-separated list:

  wordcount -l d -p 4
  wordcount -l c a -p 0 2
  wordcount -s ra`

type options struct {
	cfg       *config.Config
	raw       constraint.Raw
	positions []string
}

func newRootCmd() *cobra.Command {
	o := &options{cfg: config.Default()}

	cmd := &cobra.Command{
		Use:           "wordcount",
		Short:         "Count five-letter words matching letter, position and substring filters",
		Long:          longDescription,
		Args:          noArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return o.initLogging(cmd.ErrOrStderr())
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return o.run(cmd.Context(), cmd.OutOrStdout())
		},
	}

	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return failure.InvalidArgument("%v", err)
	})

	flags := cmd.PersistentFlags()
	o.bindConstraintFlags(flags)

	flags.StringVar(&o.cfg.Source, "source", o.cfg.Source, "word list location: an http(s) URL, a file, or a glob such as lists/**/*.txt")
	flags.DurationVar(&o.cfg.Timeout, "timeout", o.cfg.Timeout, "time limit for fetching a remote word list, 0 for none")
	flags.StringVar(&o.cfg.Encoding, "encoding", o.cfg.Encoding, `charset of the word list, "auto" to detect`)
	flags.BoolVar(&o.cfg.ShowMatches, "show-matches", o.cfg.ShowMatches, "print each matching word before the count")
	flags.StringVar(&o.cfg.LogLevel, "log-level", o.cfg.LogLevel, "debug, info, warn or error")
	flags.StringVar(&o.cfg.LogFormat, "log-format", o.cfg.LogFormat, "text or json")

	cmd.AddCommand(newWatchCmd(o))

	return cmd
}

func (o *options) bindConstraintFlags(flags *pflag.FlagSet) {
	flags.StringArrayVarP(&o.raw.Letters, "letters", "l", nil,
		"space-separated list of letters that must be included in the word")
	flags.StringArrayVarP(&o.positions, "positions", "p", nil,
		"space-separated list of positions (0-4) for the given letters, one per letter")
	flags.StringArrayVarP(&o.raw.Substrings, "substrings", "s", nil,
		"space-separated list of substrings that the word must contain")
}

// noArgs rejects tokens left over after flag parsing, such as the "b" in
// "--letters=a b".
func noArgs(cmd *cobra.Command, args []string) error {
	if len(args) > 0 {
		return failure.InvalidArgument("unexpected argument %q for %q", args[0], cmd.CommandPath())
	}
	return nil
}

// parsePositions takes one integer per token, so "0,2" is rejected rather
// than read as two positions.
func parsePositions(tokens []string) ([]int, error) {
	if len(tokens) == 0 {
		return nil, nil
	}
	positions := make([]int, 0, len(tokens))
	for _, t := range tokens {
		p, err := strconv.Atoi(strings.TrimSpace(t))
		if err != nil {
			return nil, failure.InvalidArgument("invalid position %q: positions must be integers separated by spaces", t)
		}
		positions = append(positions, p)
	}
	return positions, nil
}

func (o *options) initLogging(w io.Writer) error {
	level, err := logger.ParseLevel(o.cfg.LogLevel)
	if err != nil {
		return failure.InvalidArgument("%v", err)
	}

	format := strings.ToLower(o.cfg.LogFormat)
	if format != "text" && format != "json" {
		return failure.InvalidArgument("unknown log format %q", o.cfg.LogFormat)
	}

	cfg := logger.DefaultConfig()
	cfg.Level = level
	cfg.Format = format
	cfg.Output = w
	logger.Init(cfg)
	return nil
}

// validate runs every argument check that does not need the word list.
func (o *options) validate() (constraint.Set, error) {
	positions, err := parsePositions(o.positions)
	if err != nil {
		return constraint.Set{}, err
	}
	o.raw.Positions = positions

	set, err := constraint.Validate(o.raw)
	if err != nil {
		return constraint.Set{}, err
	}
	if err := wordlist.ValidateEncoding(o.cfg.Encoding); err != nil {
		return constraint.Set{}, err
	}
	return set, nil
}

func (o *options) sourceOptions() wordlist.Options {
	return wordlist.Options{
		Timeout:  o.cfg.Timeout,
		Encoding: o.cfg.Encoding,
	}
}

func (o *options) run(ctx context.Context, out io.Writer) error {
	set, err := o.validate()
	if err != nil {
		return err
	}

	src := wordlist.New(o.cfg.Source, o.sourceOptions())
	words, err := src.Load(ctx)
	if err != nil {
		return err
	}

	return report(out, words, set, o.cfg.ShowMatches)
}

func report(out io.Writer, words []string, set constraint.Set, showMatches bool) error {
	count := 0
	if showMatches {
		matches := filter.Matches(words, set)
		for _, w := range matches {
			if _, err := fmt.Fprintln(out, w); err != nil {
				return err
			}
		}
		count = len(matches)
	} else {
		count = filter.Count(words, set)
	}

	_, err := fmt.Fprintf(out, "MATCHING WORD COUNT: %d\n", count)
	return err
}
