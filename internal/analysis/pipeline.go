// Package analysis provides the high-level orchestration of the career
// planning pipeline: skill matching, gap analysis, and learning path
// generation, wired strictly left to right.
package analysis

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/jonathan/career-planner/internal/gaps"
	"github.com/jonathan/career-planner/internal/pathgen"
	"github.com/jonathan/career-planner/internal/reference"
	"github.com/jonathan/career-planner/internal/taxonomy"
	"github.com/jonathan/career-planner/internal/types"
)

// ProgressEvent represents a progress update during pipeline execution
type ProgressEvent struct {
	Step    string `json:"step"`
	Message string `json:"message"`
	Content any    `json:"content,omitempty"`
}

// ProgressCallback is called when pipeline progress occurs
type ProgressCallback func(event ProgressEvent)

// Request is one independent analysis: a skill inventory against a role profile
type Request struct {
	UserSkills   []types.UserSkill
	Requirements []types.JobSkillRequirement
	PathOptions  *pathgen.Options
	OnProgress   ProgressCallback
}

// Result bundles the outputs of one pipeline run
type Result struct {
	GapAnalysis  types.GapAnalysisResult `json:"gap_analysis"`
	LearningPath types.LearningPath      `json:"learning_path"`
}

// Pipeline runs the three analysis stages. It holds only stateless stage
// implementations, so one Pipeline may serve concurrent requests.
type Pipeline struct {
	analyzer  *gaps.Analyzer
	generator *pathgen.Generator
}

// New creates a Pipeline. Nil arguments fall back to the compiled-in
// reference tables and the built-in synonym table.
func New(tables *reference.Tables, synonyms taxonomy.Lookup) *Pipeline {
	if tables == nil {
		tables = reference.Default()
	}
	return &Pipeline{
		analyzer:  gaps.New(tables, synonyms),
		generator: pathgen.New(tables),
	}
}

// Run executes matching, gap analysis, and path generation for one request
func (p *Pipeline) Run(ctx context.Context, req Request) Result {
	emit(req.OnProgress, "gap_analysis", "matching skills and deriving gaps", nil)

	analysis := p.analyzer.Analyze(ctx, req.UserSkills, req.Requirements)
	emit(req.OnProgress, "gap_analysis", "gap analysis complete", analysis.Metadata)

	emit(req.OnProgress, "path_generation", "building learning path", nil)
	path := p.generator.Generate(
		analysis.Gaps,
		req.UserSkills,
		analysis.MatchingResult.TransferableSkills,
		req.PathOptions,
	)
	emit(req.OnProgress, "path_generation", "learning path ready", path.Metadata)

	return Result{GapAnalysis: analysis, LearningPath: path}
}

// RunBatch runs independent requests concurrently. Each request gets its own
// inputs and outputs, so no locking is needed; concurrency caps the number of
// in-flight analyses (0 means unbounded). The only error source is context
// cancellation.
func (p *Pipeline) RunBatch(ctx context.Context, requests []Request, concurrency int) ([]Result, error) {
	results := make([]Result, len(requests))

	g, ctx := errgroup.WithContext(ctx)
	if concurrency > 0 {
		g.SetLimit(concurrency)
	}

	for i, req := range requests {
		i, req := i, req
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			results[i] = p.Run(ctx, req)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func emit(cb ProgressCallback, step, message string, content any) {
	if cb != nil {
		cb(ProgressEvent{Step: step, Message: message, Content: content})
	}
}
