package parser

import (
	"bytes"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
	"gopkg.in/yaml.v3"
)

// MarkdownParser prepares markdown files for prose analysis
type MarkdownParser struct{}

// CanParse returns true if this parser can handle the file
func (p *MarkdownParser) CanParse(path string) bool {
	return GetKind(path) == KindMarkdown
}

// Parse blanks frontmatter and code blocks so only prose is analyzed.
// Blanked bytes become spaces and newlines are kept, so offsets into the
// returned text match the file on disk.
func (p *MarkdownParser) Parse(path string, content []byte) (*Document, error) {
	source := bytes.Clone(content)

	overrides, fmEnd, err := ParseFrontmatter(source)
	if err != nil {
		return nil, err
	}
	blank(source, 0, fmEnd)

	md := goldmark.New()
	doc := md.Parser().Parse(text.NewReader(source))

	var blocks [][2]int
	ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}

		switch node := n.(type) {
		case *ast.FencedCodeBlock:
			blocks = append(blocks, fencedRange(node, source))
			return ast.WalkSkipChildren, nil
		case *ast.CodeBlock:
			if node.Lines().Len() > 0 {
				first := node.Lines().At(0)
				last := node.Lines().At(node.Lines().Len() - 1)
				blocks = append(blocks, [2]int{first.Start, last.Stop})
			}
			return ast.WalkSkipChildren, nil
		}

		return ast.WalkContinue, nil
	})

	for _, b := range blocks {
		blank(source, b[0], b[1])
	}

	return &Document{
		Path:      path,
		Kind:      KindMarkdown,
		Text:      string(source),
		Overrides: overrides,
		Fixable:   true,
	}, nil
}

// fencedRange covers the fences as well as the code lines
func fencedRange(node *ast.FencedCodeBlock, source []byte) [2]int {
	var start, stop int
	switch {
	case node.Lines().Len() > 0:
		start = node.Lines().At(0).Start
		stop = node.Lines().At(node.Lines().Len() - 1).Stop
	case node.Info != nil:
		start = node.Info.Segment.Start
		stop = node.Info.Segment.Stop
	default:
		return [2]int{0, 0}
	}

	// Opening fence is the line before the first code line (or the info line itself)
	if node.Lines().Len() > 0 {
		start = lineStart(source, start)
		if start > 0 {
			start = lineStart(source, start-1)
		}
	} else {
		start = lineStart(source, start)
	}

	// Closing fence, when present, is the line after the last code line
	closeStart := stop
	if stop == 0 || source[stop-1] != '\n' {
		closeStart = lineEnd(source, stop) + 1
	}
	if closeStart < len(source) {
		closeEnd := lineEnd(source, closeStart)
		fence := strings.TrimSpace(string(source[closeStart:closeEnd]))
		if strings.HasPrefix(fence, "```") || strings.HasPrefix(fence, "~~~") {
			stop = closeEnd
		}
	}

	return [2]int{start, stop}
}

func lineStart(source []byte, offset int) int {
	if offset > len(source) {
		offset = len(source)
	}
	if i := bytes.LastIndexByte(source[:offset], '\n'); i >= 0 {
		return i + 1
	}
	return 0
}

func lineEnd(source []byte, offset int) int {
	if offset >= len(source) {
		return len(source)
	}
	if i := bytes.IndexByte(source[offset:], '\n'); i >= 0 {
		return offset + i
	}
	return len(source)
}

// blank replaces every byte in [start, stop) except newlines with a space
func blank(source []byte, start, stop int) {
	if stop > len(source) {
		stop = len(source)
	}
	for i := start; i < stop; i++ {
		if source[i] != '\n' {
			source[i] = ' '
		}
	}
}

type frontmatter struct {
	Twlint *Overrides `yaml:"twlint"`
}

// ParseFrontmatter extracts the twlint block from YAML frontmatter between --- delimiters.
// It returns the overrides (nil when absent) and the byte offset where the frontmatter ends.
func ParseFrontmatter(content []byte) (*Overrides, int, error) {
	s := string(content)

	// Must start with ---
	if !strings.HasPrefix(s, "---") {
		return nil, 0, nil
	}

	// Find the closing ---
	rest := s[3:]
	endIdx := strings.Index(rest, "\n---")
	if endIdx == -1 {
		return nil, 0, nil
	}

	var fm frontmatter
	if err := yaml.Unmarshal([]byte(rest[:endIdx]), &fm); err != nil {
		return nil, 0, err
	}

	end := 3 + endIdx + 4 // +4 for "\n---"
	return fm.Twlint, end, nil
}
