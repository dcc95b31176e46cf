package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"tareval/internal/dataset"
	"tareval/internal/index"
)

// newIndexCommand inspects a single dataset: how many items each alignment
// index would hold and how many questions the single-answer rule drops.
func newIndexCommand(ctx *commandContext) *cobra.Command {
	var noEvalAnswers bool

	cmd := &cobra.Command{
		Use:   "index <dataset.json>",
		Short: "Show alignment index statistics for one dataset",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			logger, err := ctx.logger(cmd)
			if err != nil {
				return err
			}

			ds, err := dataset.Load(args[0])
			if err != nil {
				return err
			}
			stats := ds.Stats()

			evalAnswers := cfg.Scoring.EvalAnswers
			if cmd.Flags().Changed("no_eval_answers") {
				evalAnswers = !noEvalAnswers
			}
			builder := index.Builder{IncludeAnswers: evalAnswers, Logger: logger}
			content := builder.Build(ds)

			rows := [][]string{
				{"Documents", strconv.Itoa(stats.Documents)},
				{"Paragraphs", strconv.Itoa(stats.Paragraphs)},
				{"Questions", strconv.Itoa(stats.Questions)},
				{"Single-answer questions", strconv.Itoa(stats.SingleAnswer)},
				{"Indexed contexts", strconv.Itoa(content.Contexts.Len())},
				{"Indexed questions", strconv.Itoa(content.Questions.Len())},
				{"Indexed answers", strconv.Itoa(content.Answers.Len())},
				{"Excluded questions", strconv.Itoa(content.Excluded)},
				{"Answers indexed", yesNo(evalAnswers)},
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderTable([]string{"Field", "Value"}, rows, []columnAlignment{alignLeft, alignRight}))
			return nil
		},
	}

	cmd.Flags().BoolVar(&noEvalAnswers, "no_eval_answers", false, "Skip the answer index")
	return cmd
}
