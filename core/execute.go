package core

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/designlens/designlens/internal/contract"
	"github.com/designlens/designlens/internal/imgload"
	"github.com/designlens/designlens/internal/outwriter"
	"github.com/designlens/designlens/schema"
)

// ExecutorFunc defines the function signature for executing different scoring modes.
type ExecutorFunc func(ctx context.Context, cfg *contract.Config, mgr contract.StoreManager) error

// writer handles all result printing for the Execute* entry points.
var writer = outwriter.NewOutWriter()

// newEngineFromConfig wires the validated config into an engine instance.
func newEngineFromConfig(cfg *contract.Config, mgr contract.StoreManager) (*Engine, error) {
	var store contract.CorpusStore
	if mgr != nil {
		store = mgr.GetCorpusStore()
	}
	engine, err := NewEngine(cfg.Tunables, cfg.Detail, store)
	if err != nil {
		return nil, err
	}
	engine.SetFetchLimit(cfg.FetchLimit)
	return engine, nil
}

// GetDesignScoreResult runs the full scoring pipeline on a single image and
// returns the result without printing it.
func GetDesignScoreResult(ctx context.Context, cfg *contract.Config, mgr contract.StoreManager) (*schema.AnalysisResult, error) {
	engine, err := newEngineFromConfig(cfg, mgr)
	if err != nil {
		return nil, err
	}

	buf, err := imgload.LoadPixelBuffer(cfg.ImagePath)
	if err != nil {
		return nil, fmt.Errorf("cannot load image %s: %w", cfg.ImagePath, err)
	}
	return engine.Analyze(ctx, buf, cfg.Categories)
}

// GetDesignCompareResults scores two images with the same engine and returns
// both results without printing them.
func GetDesignCompareResults(ctx context.Context, cfg *contract.Config, mgr contract.StoreManager) (*schema.AnalysisResult, *schema.AnalysisResult, error) {
	engine, err := newEngineFromConfig(cfg, mgr)
	if err != nil {
		return nil, nil, err
	}

	baseBuf, err := imgload.LoadPixelBuffer(cfg.BaseImage)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot load base image %s: %w", cfg.BaseImage, err)
	}
	targetBuf, err := imgload.LoadPixelBuffer(cfg.TargetImage)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot load target image %s: %w", cfg.TargetImage, err)
	}

	base, err := engine.Analyze(ctx, baseBuf, cfg.Categories)
	if err != nil {
		return nil, nil, err
	}
	target, err := engine.Analyze(ctx, targetBuf, cfg.Categories)
	if err != nil {
		return nil, nil, err
	}
	return base, target, nil
}

// ExecuteDesignScore runs the full scoring pipeline on a single image and
// prints the result. It serves as the main entry point for the 'score' mode.
func ExecuteDesignScore(ctx context.Context, cfg *contract.Config, mgr contract.StoreManager) error {
	result, err := GetDesignScoreResult(ctx, cfg, mgr)
	if err != nil {
		return err
	}
	return writer.WriteAnalysis(result, cfg)
}

// ExecuteDesignCompare scores two images with the same engine and prints a
// side-by-side delta. It serves as the main entry point for the 'compare' mode.
func ExecuteDesignCompare(ctx context.Context, cfg *contract.Config, mgr contract.StoreManager) error {
	base, target, err := GetDesignCompareResults(ctx, cfg, mgr)
	if err != nil {
		return err
	}
	return writer.WriteComparison(base, target, cfg)
}

// ExecuteDesignMetrics displays the formal definitions of all feature
// dimensions. This is a static display that does not require image analysis.
func ExecuteDesignMetrics(_ context.Context, cfg *contract.Config, _ contract.StoreManager) error {
	return writer.WriteMetrics(cfg)
}

// ExecuteCorpusAdd analyzes an image, pairs its feature vector with the
// human-validated score and appends the entry to the corpus.
func ExecuteCorpusAdd(ctx context.Context, cfg *contract.Config, mgr contract.StoreManager) error {
	var store contract.CorpusStore
	if mgr != nil {
		store = mgr.GetCorpusStore()
	}
	if store == nil {
		return fmt.Errorf("corpus add requires an initialized corpus store (backend %q)", cfg.CorpusBackend)
	}

	result, err := GetDesignScoreResult(ctx, cfg, mgr)
	if err != nil {
		return err
	}

	entry := schema.CorpusEntry{
		Features:      result.Features.Values,
		Score:         cfg.ValidatedScore,
		SchemaVersion: schema.SchemaVersion,
		Label:         cfg.EntryLabel,
		CreatedAt:     time.Now(),
	}
	id, err := store.Append(ctx, entry)
	if err != nil {
		return fmt.Errorf("cannot append corpus entry: %w", err)
	}

	fmt.Fprintf(os.Stderr, "Added corpus entry %d (score %.1f, predicted %.1f)\n",
		id, cfg.ValidatedScore, result.Prediction.PredictedScore)
	return nil
}
