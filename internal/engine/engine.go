// Package engine runs the analysis pipeline: extract, classify, fan out the
// analyzers, aggregate, recommend. One Engine serves many concurrent
// requests; per-request state lives on the stack of Analyze.
package engine

import (
	"context"
	"strings"
	"sync"
	"time"

	"resumelens/internal/analyze"
	"resumelens/internal/classify"
	"resumelens/internal/config"
	"resumelens/internal/errors"
	"resumelens/internal/extract"
	"resumelens/internal/types"
)

// wordsPerPage is the estimate used to gauge resume length from plain text
const wordsPerPage = 500

// Engine analyzes resume documents
type Engine struct {
	cfg       config.EngineConfig
	vocab     config.VocabularyProvider
	extractor *extract.Extractor
	logger    *errors.Logger
	now       func() time.Time
}

// New creates an engine using the wall clock
func New(cfg config.EngineConfig, vocab config.VocabularyProvider, logger *errors.Logger) *Engine {
	return NewWithClock(cfg, vocab, logger, time.Now)
}

// NewWithClock creates an engine with an explicit clock. Open-ended date
// ranges and result timestamps resolve against it.
func NewWithClock(cfg config.EngineConfig, vocab config.VocabularyProvider, logger *errors.Logger, now func() time.Time) *Engine {
	return &Engine{
		cfg:       cfg,
		vocab:     vocab,
		extractor: extract.New(cfg.Extractor, logger),
		logger:    logger,
		now:       now,
	}
}

// Analyze runs the full pipeline over one document. The vocabulary snapshot
// is taken once up front, so a concurrent reload cannot mix word lists
// within a single result.
func (e *Engine) Analyze(ctx context.Context, doc types.Document) (*types.AnalysisResult, error) {
	started := e.now()

	extracted, err := e.extractor.Extract(ctx, doc)
	if err != nil {
		return nil, err
	}

	vocab := e.vocab.Current()
	sections := classify.New(vocab).Classify(extracted)

	subScores := e.scoreAll(extracted, sections, vocab)
	overall, overallBand := e.aggregate(subScores)

	result := &types.AnalysisResult{
		OverallScore:    overall,
		OverallBand:     overallBand,
		SubScores:       subScores,
		Skills:          analyze.MatchSkills(extracted, vocab.Skills),
		Recommendations: e.recommendations(subScores, overallBand),
		Stats:           documentStats(extracted),
		GeneratedAt:     e.now().UTC(),
	}

	e.logger.Info("analysis complete",
		"document", doc.Name,
		"format", string(doc.Format),
		"score", overall,
		"band", string(overallBand),
		"duration_ms", time.Since(started).Milliseconds())

	return result, nil
}

// scoreAll fans the analyzers out into goroutines and waits for every slot.
// Each analyzer writes only its own index, so no locking is needed.
func (e *Engine) scoreAll(extracted *types.ExtractedText, sections []types.Section, vocab *config.Vocabulary) []types.SubScore {
	analyzers := e.analyzers(vocab)
	subScores := make([]types.SubScore, len(analyzers))

	var wg sync.WaitGroup
	for i, analyzer := range analyzers {
		wg.Add(1)
		go func(slot int, a analyze.Analyzer) {
			defer wg.Done()
			subScores[slot] = analyze.Run(a, extracted, sections, e.logger)
		}(i, analyzer)
	}
	wg.Wait()

	for i := range subScores {
		if subScores[i].Failed {
			subScores[i].Band = types.BandCritical
		} else {
			subScores[i].Band = e.cfg.Band(subScores[i].Value)
		}
	}
	return subScores
}

// analyzers builds the per-run analyzer set over one vocabulary snapshot,
// ordered by dimension priority.
func (e *Engine) analyzers(vocab *config.Vocabulary) []analyze.Analyzer {
	return []analyze.Analyzer{
		analyze.NewStructureAnalyzer(),
		analyze.NewActionVerbsAnalyzer(vocab, e.cfg.ActionVerbs),
		analyze.NewQuantificationAnalyzer(e.cfg.Quantification),
		analyze.NewSkillsAnalyzer(vocab, e.cfg.Skills),
		analyze.NewFlowAnalyzer(),
		analyze.NewReadabilityAnalyzer(e.cfg.Readability),
		analyze.NewGapsAnalyzerAt(e.cfg.Gaps, e.now),
	}
}

func documentStats(extracted *types.ExtractedText) types.DocumentStats {
	wordCount := len(strings.Fields(extracted.Text))
	pages := (wordCount + wordsPerPage - 1) / wordsPerPage
	if pages < 1 {
		pages = 1
	}
	return types.DocumentStats{
		WordCount:    wordCount,
		LineCount:    len(extracted.Lines),
		PageEstimate: pages,
	}
}
