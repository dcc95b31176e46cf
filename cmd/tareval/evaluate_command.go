package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"tareval/internal/evaluate"
	"tareval/internal/language"
)

func newEvaluateCommand(ctx *commandContext) *cobra.Command {
	var (
		translationFile string
		referenceFile   string
		outputDir       string
		lang            string
		noEvalAnswers   bool
	)

	cmd := &cobra.Command{
		Use:   "evaluate",
		Short: "Align two parallel SQuAD datasets and compute corpus BLEU",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			logger, err := ctx.logger(cmd)
			if err != nil {
				return err
			}

			if outputDir == "" {
				outputDir = cfg.Paths.OutputDir
			}
			evalAnswers := cfg.Scoring.EvalAnswers
			if cmd.Flags().Changed("no_eval_answers") {
				evalAnswers = !noEvalAnswers
			}

			runner := evaluate.NewRunner(cfg, logger)
			summary, err := runner.Run(cmd.Context(), evaluate.Options{
				ReferenceFile:   referenceFile,
				TranslationFile: translationFile,
				OutputDir:       outputDir,
				Lang:            lang,
				EvalAnswers:     evalAnswers,
			})
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, renderSummaryTable(summary))
			fmt.Fprintln(out, summary.FormatScore())
			return nil
		},
	}

	cmd.Flags().StringVar(&translationFile, "translation_file", "", "Machine-translated SQuAD dataset (JSON)")
	cmd.Flags().StringVar(&referenceFile, "reference_file", "", "Human-translated reference dataset (JSON)")
	cmd.Flags().StringVar(&outputDir, "output_dir", "", "Directory for references.txt, translations.txt, and bleu.txt")
	cmd.Flags().StringVar(&lang, "lang", "", "Target language code (ISO 639-1 or 639-2)")
	cmd.Flags().BoolVar(&noEvalAnswers, "no_eval_answers", false, "Skip answer-level alignment")
	_ = cmd.MarkFlagRequired("translation_file")
	_ = cmd.MarkFlagRequired("reference_file")
	_ = cmd.MarkFlagRequired("lang")

	return cmd
}

func renderSummaryTable(summary *evaluate.Summary) string {
	langLabel := language.DisplayName(summary.Lang)
	if langLabel == "" {
		langLabel = summary.Lang
	}
	rows := [][]string{
		{"Run", summary.RunID},
		{"Language", langLabel},
		{"Reference questions", strconv.Itoa(summary.ReferenceStats.Questions)},
		{"Translated questions", strconv.Itoa(summary.TranslationStats.Questions)},
		{"Context pairs", strconv.Itoa(summary.ContextPairs)},
		{"Question pairs", strconv.Itoa(summary.QuestionPairs)},
		{"Answer pairs", strconv.Itoa(summary.AnswerPairs)},
		{"Scored segments", strconv.Itoa(summary.Segments)},
	}
	return renderTable([]string{"Field", "Value"}, rows, []columnAlignment{alignLeft, alignRight})
}
