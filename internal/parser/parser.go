package parser

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// Document is a prose document prepared for analysis
type Document struct {
	Path string
	Kind Kind
	// Text is the prose to analyze. For plain and markdown documents every
	// prose byte sits at the same offset as in the source file.
	Text string
	// Overrides holds per-document settings from markdown frontmatter
	Overrides *Overrides
	// Fixable reports whether offsets in Text map back onto the source file
	Fixable bool
}

// Kind represents the input format of a document
type Kind int

const (
	KindPlain Kind = iota
	KindMarkdown
	KindHTML
)

func (k Kind) String() string {
	switch k {
	case KindMarkdown:
		return "markdown"
	case KindHTML:
		return "html"
	default:
		return "plain"
	}
}

// Overrides are per-document settings read from a `twlint:` frontmatter block
type Overrides struct {
	Disable      []string `yaml:"disable"`
	LongSentence int      `yaml:"long_sentence"`
}

// Parser turns raw file content into a Document
type Parser interface {
	Parse(path string, content []byte) (*Document, error)
	CanParse(path string) bool
}

// StdinPath is the path argument that selects standard input
const StdinPath = "-"

// Load reads and parses a document. The path "-" reads standard input as plain text.
func Load(path string) (*Document, error) {
	if path == StdinPath {
		content, err := io.ReadAll(os.Stdin)
		if err != nil {
			return nil, fmt.Errorf("read stdin: %w", err)
		}
		return (&PlainParser{}).Parse("<stdin>", content)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(path, content)
}

// Parse parses content using the parser for the path's extension
func Parse(path string, content []byte) (*Document, error) {
	doc, err := getParser(path).Parse(path, content)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return doc, nil
}

// getParser returns the appropriate parser for a file
func getParser(path string) Parser {
	switch GetKind(path) {
	case KindMarkdown:
		return &MarkdownParser{}
	case KindHTML:
		return &HTMLParser{}
	default:
		return &PlainParser{}
	}
}

// GetKind returns the Kind for a given path
func GetKind(path string) Kind {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".md", ".markdown", ".mdx":
		return KindMarkdown
	case ".html", ".htm", ".xhtml":
		return KindHTML
	default:
		return KindPlain
	}
}

// IsSupported reports whether a path looks like a prose document worth linting
// when discovered by walking a directory
func IsSupported(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".md", ".markdown", ".mdx", ".html", ".htm", ".xhtml", ".txt", ".text", ".rst", ".adoc":
		return true
	}
	return false
}

// PlainParser parses plain text files with no special structure
type PlainParser struct{}

// CanParse returns true (fallback parser)
func (p *PlainParser) CanParse(path string) bool {
	return true
}

// Parse returns the content unchanged
func (p *PlainParser) Parse(path string, content []byte) (*Document, error) {
	return &Document{
		Path:    path,
		Kind:    KindPlain,
		Text:    string(content),
		Fixable: path != "<stdin>",
	}, nil
}
