package reporter

import (
	"encoding/json"
	"io"
	"math"

	"github.com/pthm/twlint/internal/readability"
)

// JSONReporter outputs results as JSON
type JSONReporter struct {
	w io.Writer
}

// NewJSONReporter creates a new JSON reporter
func NewJSONReporter(w io.Writer) *JSONReporter {
	return &JSONReporter{w: w}
}

// JSONOutput represents the JSON output format
type JSONOutput struct {
	Files   []JSONFile `json:"files"`
	Summary Summary    `json:"summary"`
}

// JSONFile is the analysis of one document
type JSONFile struct {
	Path        string          `json:"path"`
	Score       float64         `json:"score"`
	Domain      string          `json:"domain"`
	Stats       JSONStats       `json:"stats"`
	Readability JSONReadability `json:"readability"`
	Issues      []JSONIssue     `json:"issues"`
	Skipped     []JSONSkipped   `json:"skipped,omitempty"`
	Fragment    string          `json:"fragment,omitempty"`
}

// JSONStats mirrors analyzer.Stats
type JSONStats struct {
	Paragraphs int `json:"paragraphs"`
	Sentences  int `json:"sentences"`
	Words      int `json:"words"`
	Characters int `json:"characters"`
	Headings   int `json:"headings"`
	Bullets    int `json:"bulletPoints"`
}

// JSONReadability holds the readability scores. Scores are null when the
// text was too short to score.
type JSONReadability struct {
	FleschReadingEase  *float64 `json:"fleschReadingEase"`
	FleschKincaidGrade *float64 `json:"fleschKincaidGrade"`
	SmogIndex          *float64 `json:"smogIndex"`
	Description        string   `json:"description"`
}

// JSONIssue represents an issue in JSON format
type JSONIssue struct {
	Rule            string `json:"rule"`
	Type            string `json:"type"`
	Severity        string `json:"severity"`
	Text            string `json:"text"`
	Suggestion      string `json:"suggestion"`
	HighlightedText string `json:"highlightedText,omitempty"`
	SuggestedFix    string `json:"suggestedFix,omitempty"`
	Line            int    `json:"line,omitempty"`
	HasFix          bool   `json:"hasFix"`
}

// JSONSkipped is a check that failed during analysis
type JSONSkipped struct {
	Check string `json:"check"`
	Error string `json:"error"`
}

// Report outputs results as JSON
func (r *JSONReporter) Report(results []FileResult) error {
	output := JSONOutput{
		Files:   make([]JSONFile, 0, len(results)),
		Summary: ComputeSummary(results),
	}

	for _, fr := range results {
		output.Files = append(output.Files, toJSONFile(fr))
	}

	encoder := json.NewEncoder(r.w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(output)
}

func toJSONFile(fr FileResult) JSONFile {
	res := fr.Result
	f := JSONFile{
		Path:   fr.Path,
		Score:  round1(res.Score),
		Domain: res.Domain,
		Stats: JSONStats{
			Paragraphs: res.Stats.Paragraphs,
			Sentences:  res.Stats.Sentences,
			Words:      res.Stats.Words,
			Characters: res.Stats.Characters,
			Headings:   res.Stats.Headings,
			Bullets:    res.Stats.Bullets,
		},
		Readability: toJSONReadability(res.Readability),
		Issues:      make([]JSONIssue, 0, len(res.Issues)),
		Fragment:    res.Fragment,
	}

	for _, issue := range res.Issues {
		f.Issues = append(f.Issues, JSONIssue{
			Rule:            issue.Rule,
			Type:            string(issue.Category),
			Severity:        issue.Severity.String(),
			Text:            issue.Text,
			Suggestion:      issue.Suggestion,
			HighlightedText: issue.HighlightedText("**", "**"),
			SuggestedFix:    issue.SuggestedFix,
			Line:            issue.Line,
			HasFix:          issue.Fix != nil,
		})
	}

	for _, sk := range res.Skipped {
		f.Skipped = append(f.Skipped, JSONSkipped{Check: sk.Name, Error: sk.Err.Error()})
	}

	return f
}

func toJSONReadability(m readability.Metrics) JSONReadability {
	return JSONReadability{
		FleschReadingEase:  nullable(m.FleschReadingEase),
		FleschKincaidGrade: nullable(m.FleschKincaidGrade),
		SmogIndex:          nullable(m.SmogIndex),
		Description:        readability.Describe(m.FleschReadingEase),
	}
}

// nullable maps NaN to nil, which encoding/json cannot represent otherwise
func nullable(v float64) *float64 {
	if math.IsNaN(v) {
		return nil
	}
	return &v
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
