package reporter

import (
	"github.com/pthm/twlint/internal/analyzer"
	"github.com/pthm/twlint/internal/rules"
)

// FileResult is the analysis of one document
type FileResult struct {
	Path   string
	Result *analyzer.Result
}

// Reporter defines the interface for outputting lint results
type Reporter interface {
	// Report outputs the results of one run, in input order
	Report(results []FileResult) error
}

// Summary holds summary statistics for a lint run
type Summary struct {
	TotalIssues  int     `json:"totalIssues"`
	Errors       int     `json:"errors"`
	Warnings     int     `json:"warnings"`
	Suggestions  int     `json:"suggestions"`
	Info         int     `json:"info"`
	Files        int     `json:"files"`
	AverageScore float64 `json:"averageScore"`
	LowestScore  float64 `json:"lowestScore"`
}

// ComputeSummary computes summary statistics across results
func ComputeSummary(results []FileResult) Summary {
	s := Summary{Files: len(results)}

	var total float64
	for i, fr := range results {
		total += fr.Result.Score
		if i == 0 || fr.Result.Score < s.LowestScore {
			s.LowestScore = fr.Result.Score
		}

		for _, issue := range fr.Result.Issues {
			s.TotalIssues++
			switch issue.Severity {
			case rules.Error:
				s.Errors++
			case rules.Warning:
				s.Warnings++
			case rules.Suggestion:
				s.Suggestions++
			case rules.Info:
				s.Info++
			}
		}
	}
	if len(results) > 0 {
		s.AverageScore = round1(total / float64(len(results)))
	}
	s.LowestScore = round1(s.LowestScore)

	return s
}

// CategoryCount is the number of issues in one category
type CategoryCount struct {
	Category rules.Category
	Count    int
}

// CountByCategory groups issues by category in order of first appearance
func CountByCategory(issues []rules.Issue) []CategoryCount {
	var counts []CategoryCount
	index := make(map[rules.Category]int)
	for _, issue := range issues {
		i, ok := index[issue.Category]
		if !ok {
			i = len(counts)
			index[issue.Category] = i
			counts = append(counts, CategoryCount{Category: issue.Category})
		}
		counts[i].Count++
	}
	return counts
}
