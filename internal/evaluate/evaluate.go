package evaluate

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/gofrs/flock"
	"github.com/google/uuid"

	"tareval/internal/align"
	"tareval/internal/bleu"
	"tareval/internal/config"
	"tareval/internal/dataset"
	"tareval/internal/fileutil"
	"tareval/internal/index"
	"tareval/internal/language"
	"tareval/internal/logging"
	"tareval/internal/tokenize"
)

// Output artifact names inside the output directory.
const (
	ReferencesFile   = "references.txt"
	TranslationsFile = "translations.txt"
	ScoreFile        = "bleu.txt"

	lockFile = "tareval.lock"
)

// ErrNoAlignment reports that the two datasets produced zero aligned pairs,
// meaning they share no question ids.
var ErrNoAlignment = errors.New("evaluate: no aligned pairs between datasets")

// Options describes one evaluation run. All fields are required except
// EvalAnswers, which controls answer-level alignment.
type Options struct {
	ReferenceFile   string
	TranslationFile string
	OutputDir       string
	Lang            string
	EvalAnswers     bool
}

// Summary reports what a run produced.
type Summary struct {
	RunID string
	Lang  string

	ReferenceStats   dataset.Stats
	TranslationStats dataset.Stats

	// Pair counts per alignment pass, before deduplication.
	ContextPairs  int
	QuestionPairs int
	AnswerPairs   int

	// Segments is the final aligned list length after deduplication.
	Segments int

	Score float64

	ReferencesPath   string
	TranslationsPath string
	ScorePath        string
}

// FormatScore renders the score the way bleu.txt stores it.
func (s *Summary) FormatScore() string {
	return "BLEU = " + strconv.FormatFloat(s.Score, 'f', 2, 64)
}

// Runner executes evaluation runs with shared config and logging.
type Runner struct {
	cfg    *config.Config
	logger *slog.Logger
}

// NewRunner constructs a Runner. A nil logger disables logging.
func NewRunner(cfg *config.Config, logger *slog.Logger) *Runner {
	if logger == nil {
		logger = logging.NewNop()
	}
	return &Runner{cfg: cfg, logger: logger}
}

// Run performs one evaluation. Any error aborts the run.
func (r *Runner) Run(ctx context.Context, opts Options) (*Summary, error) {
	if err := validateOptions(opts); err != nil {
		return nil, err
	}

	outputDir, err := config.ExpandPath(opts.OutputDir)
	if err != nil {
		return nil, fmt.Errorf("resolve output directory: %w", err)
	}
	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return nil, fmt.Errorf("create output directory: %w", err)
	}

	lock := flock.New(filepath.Join(outputDir, lockFile))
	locked, err := lock.TryLock()
	if err != nil {
		return nil, fmt.Errorf("acquire output lock: %w", err)
	}
	if !locked {
		return nil, fmt.Errorf("another evaluation is already writing to %s", outputDir)
	}
	defer func() {
		_ = lock.Unlock()
	}()

	summary := &Summary{
		RunID: uuid.NewString(),
		Lang:  language.ToISO2(opts.Lang),
	}
	if summary.Lang == "" {
		summary.Lang = strings.ToLower(strings.TrimSpace(opts.Lang))
	}
	logger := r.logger.With(logging.String("run_id", summary.RunID))

	logger.Info("starting evaluation",
		logging.String("reference", opts.ReferenceFile),
		logging.String("translation", opts.TranslationFile),
		logging.String("lang", language.DisplayName(summary.Lang)),
		logging.Bool("eval_answers", opts.EvalAnswers),
	)

	refDS, err := dataset.Load(opts.ReferenceFile)
	if err != nil {
		return nil, fmt.Errorf("reference dataset: %w", err)
	}
	traDS, err := dataset.Load(opts.TranslationFile)
	if err != nil {
		return nil, fmt.Errorf("translation dataset: %w", err)
	}
	summary.ReferenceStats = refDS.Stats()
	summary.TranslationStats = traDS.Stats()
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	builder := index.Builder{
		IncludeAnswers: opts.EvalAnswers,
		Logger:         logging.NewComponentLogger(logger, "indexer"),
	}
	refIdx := builder.Build(refDS)
	traIdx := builder.Build(traDS)
	logger.Info("datasets indexed",
		logging.Int("ref_contexts", refIdx.Contexts.Len()),
		logging.Int("ref_questions", refIdx.Questions.Len()),
		logging.Int("ref_excluded", refIdx.Excluded),
		logging.Int("tra_contexts", traIdx.Contexts.Len()),
		logging.Int("tra_questions", traIdx.Questions.Len()),
		logging.Int("tra_excluded", traIdx.Excluded),
	)
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	aligner := align.Aligner{Logger: logging.NewComponentLogger(logger, "aligner")}
	result := aligner.Pairs(refIdx, traIdx)
	if err := result.Check(); err != nil {
		return nil, err
	}
	if result.Empty() {
		return nil, ErrNoAlignment
	}
	summary.ContextPairs = result.ContextPairs
	summary.QuestionPairs = result.QuestionPairs
	summary.AnswerPairs = result.AnswerPairs
	summary.Segments = len(result.References)
	logger.Info("alignment complete",
		logging.Int("context_pairs", result.ContextPairs),
		logging.Int("question_pairs", result.QuestionPairs),
		logging.Int("answer_pairs", result.AnswerPairs),
		logging.Int("segments", summary.Segments),
	)
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	references := tokenize.SegmentAll(result.References, summary.Lang)
	translations := tokenize.SegmentAll(result.Translations, summary.Lang)

	summary.ReferencesPath = filepath.Join(outputDir, ReferencesFile)
	summary.TranslationsPath = filepath.Join(outputDir, TranslationsFile)
	summary.ScorePath = filepath.Join(outputDir, ScoreFile)

	if err := fileutil.WriteLines(summary.ReferencesPath, references); err != nil {
		return nil, fmt.Errorf("write references: %w", err)
	}
	if err := fileutil.WriteLines(summary.TranslationsPath, translations); err != nil {
		return nil, fmt.Errorf("write translations: %w", err)
	}

	score, err := bleu.Corpus(references, translations, bleu.Options{
		MaxOrder: r.cfg.Scoring.MaxNgramOrder,
		Smooth:   r.cfg.Scoring.Smooth,
	})
	if err != nil {
		return nil, err
	}
	summary.Score = score

	if err := fileutil.WriteFileAtomic(summary.ScorePath, []byte(summary.FormatScore()), 0o644); err != nil {
		return nil, fmt.Errorf("write score: %w", err)
	}

	logger.Info("evaluation complete",
		logging.Float64("bleu", summary.Score),
		logging.String("output_dir", outputDir),
	)
	return summary, nil
}

func validateOptions(opts Options) error {
	if strings.TrimSpace(opts.ReferenceFile) == "" {
		return errors.New("reference file is required")
	}
	if strings.TrimSpace(opts.TranslationFile) == "" {
		return errors.New("translation file is required")
	}
	if strings.TrimSpace(opts.OutputDir) == "" {
		return errors.New("output directory is required")
	}
	if strings.TrimSpace(opts.Lang) == "" {
		return errors.New("language is required")
	}
	return nil
}
