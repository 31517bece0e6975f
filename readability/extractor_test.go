package readability_test

import (
	"testing"

	"github.com/fwojciec/curate"
	"github.com/fwojciec/curate/readability"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractor_RejectsEmptyInput(t *testing.T) {
	t.Parallel()

	ext := readability.NewExtractor()
	_, err := ext.Extract("  ")

	require.Error(t, err)
	assert.Equal(t, curate.EINVALID, curate.ErrorCode(err))
}

func TestExtractor_ExtractsTitle(t *testing.T) {
	t.Parallel()

	html := `<!DOCTYPE html>
<html>
<head><title>Page Title</title></head>
<body><article><p>Content</p></article></body>
</html>`

	ext := readability.NewExtractor()
	result, err := ext.Extract(html)

	require.NoError(t, err)
	assert.Equal(t, "Page Title", result.Title)
}

func TestExtractor_ExtractsArticleMetadata(t *testing.T) {
	t.Parallel()

	html := `<!DOCTYPE html>
<html>
<head>
<title>Look-alike goes viral</title>
<meta name="author" content="Jane Reporter">
<meta property="og:site_name" content="Daily Planet">
<meta property="og:description" content="A photo of a look-alike spread quickly.">
</head>
<body>
<article>
<p>A photograph of a man who resembles a well known politician spread across social networks over the weekend.</p>
<p>Readers in several countries shared the image thousands of times before the man was identified.</p>
</article>
</body>
</html>`

	ext := readability.NewExtractor()
	result, err := ext.Extract(html)

	require.NoError(t, err)
	assert.Equal(t, "Jane Reporter", result.Byline)
	assert.Equal(t, "Daily Planet", result.SiteName)
	assert.Equal(t, "A photo of a look-alike spread quickly.", result.Excerpt)
	assert.Contains(t, result.Text, "spread across social networks")
}

func TestExtractor_RemovesNavigation(t *testing.T) {
	t.Parallel()

	html := `<!DOCTYPE html>
<html>
<head><title>Test</title></head>
<body>
<nav><a href="/home">Home Nav Link</a><a href="/about">About Nav Link</a></nav>
<article><p>This is the main article content that should be preserved in the output.</p></article>
</body>
</html>`

	ext := readability.NewExtractor()
	result, err := ext.Extract(html)

	require.NoError(t, err)
	assert.NotContains(t, result.ContentHTML, "Home Nav Link")
	assert.Contains(t, result.ContentHTML, "main article content")
}

func TestExtractor_RemovesFooter(t *testing.T) {
	t.Parallel()

	html := `<!DOCTYPE html>
<html>
<head><title>Test</title></head>
<body>
<article><p>This is the main article content that should be preserved in the output.</p></article>
<footer><p>Footer copyright text 2024</p></footer>
</body>
</html>`

	ext := readability.NewExtractor()
	result, err := ext.Extract(html)

	require.NoError(t, err)
	assert.NotContains(t, result.ContentHTML, "Footer copyright text")
}

func TestExtractor_PreservesLists(t *testing.T) {
	t.Parallel()

	html := `<!DOCTYPE html>
<html>
<head><title>Test</title></head>
<body>
<article>
<p>Here is a list:</p>
<ul>
<li>First item</li>
<li>Second item</li>
</ul>
</article>
</body>
</html>`

	ext := readability.NewExtractor()
	result, err := ext.Extract(html)

	require.NoError(t, err)
	assert.Contains(t, result.ContentHTML, "<ul")
	assert.Contains(t, result.ContentHTML, "<li")
}
