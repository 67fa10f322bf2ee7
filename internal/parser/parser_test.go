package parser

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetKind(t *testing.T) {
	tests := []struct {
		name     string
		path     string
		expected Kind
	}{
		{name: "markdown", path: "/docs/guide.md", expected: KindMarkdown},
		{name: "markdown uppercase ext", path: "/docs/README.MD", expected: KindMarkdown},
		{name: "long markdown ext", path: "notes.markdown", expected: KindMarkdown},
		{name: "html", path: "/site/index.html", expected: KindHTML},
		{name: "htm", path: "page.htm", expected: KindHTML},
		{name: "text", path: "notes.txt", expected: KindPlain},
		{name: "no extension", path: "CHANGELOG", expected: KindPlain},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, GetKind(tt.path))
		})
	}
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "plain", KindPlain.String())
	assert.Equal(t, "markdown", KindMarkdown.String())
	assert.Equal(t, "html", KindHTML.String())
}

func TestSplitSentences(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected []string
	}{
		{
			name:     "mixed terminators",
			text:     "Hello world. How are you? Fine!",
			expected: []string{"Hello world.", " How are you?", " Fine!"},
		},
		{
			name:     "repeated terminators stay together",
			text:     "Really?! Yes...",
			expected: []string{"Really?!", " Yes..."},
		},
		{
			name:     "trailing fragment dropped",
			text:     "One sentence. and a fragment",
			expected: []string{"One sentence."},
		},
		{
			name:     "no terminal punctuation",
			text:     "nothing to see here",
			expected: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, SplitSentences(tt.text))
		})
	}
}

func TestSegment_FragmentAndOffsets(t *testing.T) {
	text := "First one.\nSecond one! trailing words"
	seg := Segment(text)

	require.Len(t, seg.Sentences, 2)
	assert.Equal(t, 0, seg.Sentences[0].Start)
	assert.Equal(t, "\nSecond one!", seg.Sentences[1].Text)
	assert.Equal(t, 10, seg.Sentences[1].Start)
	assert.Equal(t, seg.Sentences[1].Start+len(seg.Sentences[1].Text), seg.Sentences[1].End())
	assert.Equal(t, "trailing words", seg.Fragment)
}

func TestSplitParagraphs(t *testing.T) {
	assert.Len(t, SplitParagraphs("one\n\ntwo\n   \nthree"), 3)
	assert.Len(t, SplitParagraphs("single paragraph\nwith two lines"), 1)
	assert.Empty(t, SplitParagraphs(""))
	assert.Empty(t, SplitParagraphs(" \n\t\n"))
}

func TestIsHeading(t *testing.T) {
	tests := []struct {
		line     string
		expected bool
	}{
		{"# Introduction", true},
		{"## getting started", true},
		{"INSTALLATION GUIDE", true},
		{"Getting Started", true},
		{"Getting started with the tool", true},
		{"Version 2", true},
		{"This is a sentence.", false},
		{"Prerequisites:", false},
		{"Apples, pears,", false},
		{"lowercase line", false},
		{"", false},
		{"   ", false},
		{"Title " + strings.Repeat("word ", 30) + "End", false},
		{"# " + strings.Repeat("Éé ", 30) + "End", true},
		{"# " + strings.Repeat("Éé ", 33) + "End", false},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			assert.Equal(t, tt.expected, IsHeading(tt.line))
		})
	}
}

func TestExtractBullets(t *testing.T) {
	lines := []string{
		"- Install the tool",
		"  * Configure it",
		"• Deploy",
		"-nospace",
		"-   ",
		"plain line",
	}

	assert.Equal(t, []string{"Install the tool", "Configure it", "Deploy"}, ExtractBullets(lines))
}

func TestTokenizeWords(t *testing.T) {
	assert.Equal(t, []string{"a", "b,", "c."}, TokenizeWords("  a \t b,\n\nc.  "))
	assert.Empty(t, TokenizeWords(" \n "))
}

func TestSegments_LineAt(t *testing.T) {
	seg := Segment("a\nbb\nccc")

	assert.Equal(t, 1, seg.LineAt(0))
	assert.Equal(t, 1, seg.LineAt(1))
	assert.Equal(t, 2, seg.LineAt(2))
	assert.Equal(t, 3, seg.LineAt(5))
	assert.Equal(t, 3, seg.LineAt(100))
	assert.Equal(t, 0, seg.LineAt(-1))
}

func TestSegments_FindSentence(t *testing.T) {
	seg := Segment("We use HTML. It renders pages.")

	assert.Equal(t, 0, seg.FindSentence("HTML"))
	assert.Equal(t, 1, seg.FindSentence("renders"))
	assert.Equal(t, -1, seg.FindSentence("CSS"))
}

func TestMarkdownParser(t *testing.T) {
	content := "---\n" +
		"title: Guide\n" +
		"twlint:\n" +
		"  disable: [passive-voice]\n" +
		"  long_sentence: 30\n" +
		"---\n" +
		"# Title\n" +
		"\n" +
		"Some text.\n" +
		"\n" +
		"```go\n" +
		"fmt.Println(\"x.\")\n" +
		"```\n" +
		"\n" +
		"    indented code here.\n" +
		"\n" +
		"More text.\n"

	doc, err := Parse("guide.md", []byte(content))
	require.NoError(t, err)

	assert.Equal(t, KindMarkdown, doc.Kind)
	assert.True(t, doc.Fixable)
	require.NotNil(t, doc.Overrides)
	assert.Equal(t, []string{"passive-voice"}, doc.Overrides.Disable)
	assert.Equal(t, 30, doc.Overrides.LongSentence)

	assert.Len(t, doc.Text, len(content))
	assert.NotContains(t, doc.Text, "Println")
	assert.NotContains(t, doc.Text, "```")
	assert.NotContains(t, doc.Text, "indented code")
	assert.NotContains(t, doc.Text, "title: Guide")
	assert.Equal(t, strings.Index(content, "More text."), strings.Index(doc.Text, "More text."))
	assert.Equal(t, strings.Count(content, "\n"), strings.Count(doc.Text, "\n"))
	assert.Contains(t, doc.Text, "# Title")
}

func TestMarkdownParser_NoFrontmatter(t *testing.T) {
	doc, err := Parse("notes.md", []byte("Just prose."))
	require.NoError(t, err)
	assert.Nil(t, doc.Overrides)
	assert.Equal(t, "Just prose.", doc.Text)
}

func TestHTMLParser(t *testing.T) {
	content := `<html><head><style>p { color: red; }</style></head>
<body>
<nav><a href="/">Home</a></nav>
<h1>Getting Started</h1>
<p>Install   the
tool first.</p>
<ul><li>Download it</li><li>Run <b>setup</b></li></ul>
<pre><code>make build.</code></pre>
<blockquote><p>Quoted text.</p></blockquote>
<script>var x = "Hidden.";</script>
</body></html>`

	doc, err := Parse("index.html", []byte(content))
	require.NoError(t, err)

	assert.Equal(t, KindHTML, doc.Kind)
	assert.False(t, doc.Fixable)
	assert.Equal(t,
		"# Getting Started\n\nInstall the tool first.\n\n- Download it\n- Run setup\n\nQuoted text.",
		doc.Text)

	seg := Segment(doc.Text)
	assert.Equal(t, []string{"# Getting Started"}, seg.Headings)
	assert.Equal(t, []string{"Download it", "Run setup"}, seg.Bullets)
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "notes.txt")
	require.NoError(t, os.WriteFile(path, []byte("Plain words."), 0o644))

	doc, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, KindPlain, doc.Kind)
	assert.Equal(t, "Plain words.", doc.Text)
	assert.True(t, doc.Fixable)

	_, err = Load(filepath.Join(dir, "missing.txt"))
	assert.Error(t, err)
}

func TestIsSupported(t *testing.T) {
	assert.True(t, IsSupported("a/b/README.md"))
	assert.True(t, IsSupported("page.html"))
	assert.True(t, IsSupported("notes.txt"))
	assert.False(t, IsSupported("main.go"))
	assert.False(t, IsSupported("image.png"))
}
