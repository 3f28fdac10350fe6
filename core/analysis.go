package core

import (
	"context"
	"fmt"
	"time"

	"github.com/designlens/designlens/schema"
)

// Per-stage result envelopes for the fan-out phase. Each stage delivers on
// its own buffered channel so a stage that outlives the join cannot race the
// collector.
type (
	colorOut struct {
		metrics schema.ColorMetrics
		err     error
	}
	layoutOut struct {
		metrics schema.LayoutMetrics
		err     error
	}
	accessOut struct {
		metrics schema.AccessibilityMetrics
		err     error
	}
	elementsOut struct {
		metrics schema.UIElements
		err     error
	}
)

// recoverStageErr converts a stage panic into an error so one misbehaving
// analyzer degrades the prediction instead of killing the process.
func recoverStageErr(stage string, err *error) {
	if r := recover(); r != nil {
		*err = fmt.Errorf("%s stage panicked: %v", stage, r)
	}
}

// Analyze runs the full pipeline on a decoded pixel buffer: the four
// analyzers fan out concurrently, join with the stage timeout, and feed the
// feature vector builder, the corpus k-NN search, the rule-based predictor
// and the explanation generator.
//
// Only an invalid buffer is a hard failure. A stage that errors, panics or
// misses the timeout is replaced by its documented neutral defaults and
// recorded as a warning; corpus problems degrade to the baseline prediction
// the same way. Cancelling ctx abandons the whole prediction.
func (e *Engine) Analyze(ctx context.Context, buf *schema.PixelBuffer, categories []schema.Category) (*schema.AnalysisResult, error) {
	start := time.Now()

	if err := buf.Validate(); err != nil {
		return nil, err
	}

	var warnings []string
	cats := make([]schema.Category, 0, len(categories))
	for _, cat := range categories {
		if _, ok := schema.ValidCategories[cat]; !ok {
			warnings = append(warnings, fmt.Sprintf("unknown category %q ignored", cat))
			continue
		}
		cats = append(cats, cat)
	}

	// --- 1. Fan-out: four independent analyzers over the immutable buffer ---
	colorCh := make(chan colorOut, 1)
	layoutCh := make(chan layoutOut, 1)
	accessCh := make(chan accessOut, 1)
	elementsCh := make(chan elementsOut, 1)

	go func() {
		var out colorOut
		defer func() { colorCh <- out }()
		defer recoverStageErr("color", &out.err)
		out.metrics, out.err = AnalyzeColors(buf, e.tun)
	}()
	go func() {
		var out layoutOut
		defer func() { layoutCh <- out }()
		defer recoverStageErr("layout", &out.err)
		out.metrics, out.err = AnalyzeLayout(buf, e.tun)
	}()
	go func() {
		var out accessOut
		defer func() { accessCh <- out }()
		defer recoverStageErr("accessibility", &out.err)
		out.metrics, out.err = AnalyzeAccessibility(buf, e.tun)
	}()
	go func() {
		var out elementsOut
		defer func() { elementsCh <- out }()
		defer recoverStageErr("elements", &out.err)
		out.metrics, out.err = e.detector.Detect(buf)
	}()

	// --- 2. Join with a shared stage deadline ---
	joinCtx, cancel := context.WithTimeout(ctx, e.tun.StageTimeout)
	defer cancel()

	color := schema.NeutralColorMetrics()
	layout := schema.NeutralLayoutMetrics()
	access := schema.NeutralAccessibilityMetrics()
	elements := schema.NeutralUIElements()

	degrade := func(stage string, err error) {
		warnings = append(warnings, fmt.Sprintf("%s stage degraded to neutral defaults: %v", stage, err))
	}

	select {
	case out := <-colorCh:
		if out.err != nil {
			degrade("color", out.err)
		} else {
			color = out.metrics
		}
	case <-joinCtx.Done():
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		degrade("color", joinCtx.Err())
	}
	select {
	case out := <-layoutCh:
		if out.err != nil {
			degrade("layout", out.err)
		} else {
			layout = out.metrics
		}
	case <-joinCtx.Done():
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		degrade("layout", joinCtx.Err())
	}
	select {
	case out := <-accessCh:
		if out.err != nil {
			degrade("accessibility", out.err)
		} else {
			access = out.metrics
		}
	case <-joinCtx.Done():
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		degrade("accessibility", joinCtx.Err())
	}
	select {
	case out := <-elementsCh:
		if out.err != nil {
			degrade("elements", out.err)
		} else {
			elements = out.metrics
		}
	case <-joinCtx.Done():
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		degrade("elements", joinCtx.Err())
	}

	// The select above races stage results against joinCtx, so a parent
	// cancellation can slip through when the analyzers finish first.
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// --- 3. Feature vector assembly ---
	features := BuildFeatureVector(color, layout, access, elements, cats, e.tun)

	// --- 4. Corpus fetch: the only suspension point in the pipeline ---
	entries, err := e.fetchCorpus(ctx)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err() // Abandoned, no partial prediction.
		}
		warnings = append(warnings, fmt.Sprintf("corpus unavailable, using baseline: %v", err))
		entries = nil
	}

	// --- 5. Similarity search and score prediction ---
	neighbors, knnWarnings := nearestNeighbors(features, entries, e.tun.KNeighbors)
	warnings = append(warnings, knnWarnings...)

	base := predictFromNeighbors(neighbors, e.tun)
	score, clamped := applyRuleAdjustments(base.score, color, layout, access, elements)
	if clamped {
		warnings = append(warnings, "adjusted score fell outside [0,100] and was clamped")
	}

	// --- 6. Explanation ---
	importance, explanation := BuildExplanation(features)

	return &schema.AnalysisResult{
		Prediction: schema.Prediction{
			PredictedScore:    score,
			Confidence:        base.confidence,
			FeatureImportance: importance,
			Explanation:       explanation,
		},
		Color:         color,
		Layout:        layout,
		Accessibility: access,
		Elements:      elements,
		Features:      features,
		Categories:    cats,
		Warnings:      warnings,
		Duration:      time.Since(start),
	}, nil
}

// fetchCorpus pulls candidate entries for the current schema version.
// A nil store means predictions run corpus-less on the baseline.
func (e *Engine) fetchCorpus(ctx context.Context) ([]schema.CorpusEntry, error) {
	if e.store == nil {
		return nil, nil
	}
	return e.store.FetchCandidates(ctx, schema.SchemaVersion, e.fetchLimit)
}
