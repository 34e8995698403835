package main

import (
	"context"
	"io"

	"github.com/spf13/cobra"

	"github.com/alucardeht/wordcount/internal/constraint"
	"github.com/alucardeht/wordcount/internal/failure"
	"github.com/alucardeht/wordcount/internal/logger"
	"github.com/alucardeht/wordcount/internal/watcher"
	"github.com/alucardeht/wordcount/internal/wordlist"
)

var watchLog = logger.ForComponent("watch")

func newWatchCmd(o *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Print the match count and recount whenever the local word list changes",
		Long: `Watch prints the match count for a local word list, then recounts each time
a file matching --source is created, written or renamed. Stop with Ctrl+C.`,
		Args: noArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return o.watch(cmd.Context(), cmd.OutOrStdout())
		},
	}

	cmd.Flags().DurationVar(&o.cfg.Watch.DebounceWindow, "debounce", o.cfg.Watch.DebounceWindow, "quiet period before a change triggers a recount")
	cmd.Flags().IntVar(&o.cfg.Watch.MaxBatchSize, "max-batch", o.cfg.Watch.MaxBatchSize, "changed files that trigger a recount without waiting")

	return cmd
}

func (o *options) watch(ctx context.Context, out io.Writer) error {
	set, err := o.validate()
	if err != nil {
		return err
	}

	if wordlist.IsRemote(o.cfg.Source) {
		return failure.InvalidArgument("watch needs a local word list, got %s", o.cfg.Source)
	}

	src := wordlist.NewFileSource(o.cfg.Source, o.sourceOptions())
	if err := recount(ctx, out, src, set, o.cfg.ShowMatches); err != nil {
		return err
	}

	w, err := watcher.New(o.cfg.Watch, src, func(ctx context.Context, events []watcher.FileEvent) {
		if err := recount(ctx, out, src, set, o.cfg.ShowMatches); err != nil {
			watchLog.Error("recount failed", "source", src.String(), "error", err)
		}
	})
	if err != nil {
		return failure.SourceUnavailable(err, "watch %s", o.cfg.Source)
	}

	if err := w.Run(ctx); err != nil {
		return failure.SourceUnavailable(err, "watch %s", o.cfg.Source)
	}
	return nil
}

func recount(ctx context.Context, out io.Writer, src wordlist.Source, set constraint.Set, showMatches bool) error {
	words, err := src.Load(ctx)
	if err != nil {
		return err
	}
	return report(out, words, set, showMatches)
}
