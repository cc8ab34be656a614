package widget

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/Scalingo/gitlangcards/colors"
	"github.com/Scalingo/gitlangcards/model"
	"github.com/google/go-github/v66/github"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderCard(t *testing.T) {
	card := NewCard(model.LanguageEntry{
		Language:    "C++",
		ProjectsURL: model.ProjectsFilter{Username: "alice", Language: "C++"}.ToProjectsURL(),
	}, colors.Default())

	var buf bytes.Buffer
	require.NoError(t, RenderCard(&buf, card))
	html := buf.String()

	assert.Equal(t, "#f34b7d", card.Color)
	assert.Contains(t, html, `class="carousel-item col s12 m7"`)
	assert.Contains(t, html, "background-color: #f34b7d")
	assert.Contains(t, html, "<p>C&#43;&#43;</p>")
	assert.Contains(t, html, "language=C%2B%2B")
	assert.Contains(t, html, "Projects with this language")
}

func TestRenderCardEscapesLanguage(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, RenderCard(&buf, model.LanguageCard{
		Language:    "<script>",
		ProjectsURL: "javascript:alert(1)",
		Color:       "#000000",
	}))

	assert.NotContains(t, buf.String(), "<script>")
	assert.NotContains(t, buf.String(), "javascript:alert")
}

func TestRenderCarousel(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, RenderCarousel(&buf, []model.LanguageCard{
		{Language: "Go", ProjectsURL: "https://github.com/alice", Color: "#00ADD8"},
		{Language: "Rust", ProjectsURL: "https://github.com/alice", Color: "#dea584"},
	}))

	assert.True(t, strings.HasPrefix(buf.String(), `<div class="carousel" data-items="2">`))
	assert.Equal(t, 2, strings.Count(buf.String(), `class="carousel-item`))
}

func TestHTMLMountStartsEmpty(t *testing.T) {
	mount := NewHTMLMount()

	assert.Contains(t, string(mount.Bytes()), `data-items="0"`)
	assert.NotContains(t, string(mount.Bytes()), "carousel-item")
	assert.Equal(t, 0, mount.Renders())

	require.NoError(t, mount.Render([]model.LanguageCard{{Language: "Go", Color: "#00ADD8"}}))
	assert.Equal(t, 1, mount.Renders())
	assert.Contains(t, string(mount.HTML()), "<p>Go</p>")
}

func TestRenderBatch(t *testing.T) {
	fetcher := &fakeFetcher{repos: repos(github.String("Go"), github.String("Shell"))}

	results := RenderBatch(context.Background(), fetcher, colors.Default(), []string{"alice", "", "bob"}, 2)

	require.Len(t, results, 3)

	assert.Equal(t, "alice", results[0].Username)
	assert.True(t, results[0].Ready)
	assert.Equal(t, 2, results[0].Cards)
	assert.Contains(t, string(results[0].Fragment), "<p>Shell</p>")
	assert.Contains(t, results[0].Script, "M.Carousel.init")

	assert.Error(t, results[1].Err)
	assert.False(t, results[1].Ready)
	assert.Contains(t, string(results[1].Fragment), `data-items="0"`)

	assert.Equal(t, "bob", results[2].Username)
	assert.True(t, results[2].Ready)

	assert.Equal(t, 2, fetcher.calls)
}

func TestRenderBatchFailureDegrades(t *testing.T) {
	fetcher := &fakeFetcher{err: model.ErrFetch}

	results := RenderBatch(context.Background(), fetcher, colors.Default(), []string{"alice"}, 0)

	require.Len(t, results, 1)
	assert.NoError(t, results[0].Err)
	assert.False(t, results[0].Ready)
	assert.Equal(t, 0, results[0].Cards)
	assert.Empty(t, results[0].Script)
}
