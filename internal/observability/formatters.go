// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/career-planner/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	for _, line := range strings.Split(content, "\n") {
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintMatchingResult outputs a human-readable summary of a matching run
func (p *Printer) PrintMatchingResult(result *types.SkillMatchingResult) {
	if result == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Overall match: %.0f%%\n\n", result.OverallMatchScore*100))

	if len(result.Matches) > 0 {
		sb.WriteString("Matched skills:\n")
		count := min(len(result.Matches), maxItemsToShow)
		for i := 0; i < count; i++ {
			match := result.Matches[i]
			sb.WriteString(fmt.Sprintf("  • %s (%s, %.2f)\n",
				match.JobRequirement.Skill, match.MatchType, match.MatchScore))
		}
		if len(result.Matches) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(result.Matches)-maxItemsToShow))
		}
		sb.WriteString("\n")
	}

	if len(result.UnmatchedRequirements) > 0 {
		sb.WriteString("Unmatched requirements:\n")
		count := min(len(result.UnmatchedRequirements), maxItemsToShow)
		for i := 0; i < count; i++ {
			req := result.UnmatchedRequirements[i]
			sb.WriteString(fmt.Sprintf("  • %s (%s)\n", req.Skill, req.Importance))
		}
	}

	if len(result.TransferableSkills) > 0 {
		sb.WriteString(fmt.Sprintf("\nTransferable candidates: %d\n", len(result.TransferableSkills)))
	}

	p.printBox("Skill Match Report", strings.TrimRight(sb.String(), "\n"))
}

// PrintGapAnalysis outputs a human-readable summary of a gap analysis
func (p *Printer) PrintGapAnalysis(result *types.GapAnalysisResult) {
	if result == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Gaps: %d   Strengths: %d\n", len(result.Gaps), len(result.Strengths)))
	sb.WriteString(fmt.Sprintf("Critical: %d   Quick wins: %d   Long-term: %d\n\n",
		len(result.CriticalGaps), len(result.QuickWins), len(result.LongTermGoals)))

	count := min(len(result.Gaps), maxItemsToShow)
	for i := 0; i < count; i++ {
		gap := result.Gaps[i]
		sb.WriteString(fmt.Sprintf("  • %s: %s severity, %.1f months, priority %.1f\n",
			gap.SkillName, gap.GapSeverity, gap.TimeToCompetency, gap.Priority))
	}
	if len(result.Gaps) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(result.Gaps)-maxItemsToShow))
	}

	p.printBox("Gap Analysis", strings.TrimRight(sb.String(), "\n"))
}

// PrintLearningPath outputs a human-readable summary of a learning path
func (p *Printer) PrintLearningPath(path *types.LearningPath) {
	if path == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%s\n", path.Title))
	sb.WriteString(fmt.Sprintf("Total: %.0f hours over ~%d weeks (%s)\n\n",
		path.TotalEstimatedHours, path.EstimatedCompletionWeeks, path.Difficulty))

	count := min(len(path.Steps), maxItemsToShow)
	for i := 0; i < count; i++ {
		step := path.Steps[i]
		sb.WriteString(fmt.Sprintf("  %d. %s → %s (%.0fh)\n",
			i+1, step.SkillName, step.TargetLevel, step.EstimatedHours))
	}
	if len(path.Steps) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(path.Steps)-maxItemsToShow))
	}

	if len(path.CriticalPath) > 0 {
		sb.WriteString(fmt.Sprintf("\nCritical path: %s\n", strings.Join(path.CriticalPath, " → ")))
	}
	if path.Metadata.CycleDetected {
		sb.WriteString("Warning: dependency cycle detected among gap skills\n")
	}

	p.printBox("Learning Path", strings.TrimRight(sb.String(), "\n"))
}
