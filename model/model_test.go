package model

import (
	"net/http"
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestToProjectsURL(t *testing.T) {
	tests := []struct {
		name     string
		filter   ProjectsFilter
		expected string
	}{
		{
			name:     "Simple language",
			filter:   ProjectsFilter{Username: "alice", Language: "Go"},
			expected: "https://github.com/alice?utf8=%E2%9C%93&tab=repositories&q=&type=&language=Go",
		},
		{
			name:     "Language with reserved characters",
			filter:   ProjectsFilter{Username: "alice", Language: "C++"},
			expected: "https://github.com/alice?utf8=%E2%9C%93&tab=repositories&q=&type=&language=C%2B%2B",
		},
		{
			name:     "Language with a space",
			filter:   ProjectsFilter{Username: "bob", Language: "Jupyter Notebook"},
			expected: "https://github.com/bob?utf8=%E2%9C%93&tab=repositories&q=&type=&language=Jupyter%20Notebook",
		},
		{
			name:     "Language with a hash",
			filter:   ProjectsFilter{Username: "bob", Language: "C#"},
			expected: "https://github.com/bob?utf8=%E2%9C%93&tab=repositories&q=&type=&language=C%23",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.filter.ToProjectsURL())
		})
	}
}

func TestToProjectsURLIsInjective(t *testing.T) {
	languages := []string{"C", "C++", "C#", "Objective-C", "Objective-C++", "F#", "F*", "Jupyter Notebook", "Jupyter+Notebook"}
	seen := make(map[string]string)

	for _, l := range languages {
		u := ProjectsFilter{Username: "alice", Language: l}.ToProjectsURL()
		previous, found := seen[u]
		assert.False(t, found, "%s and %s produced the same url", l, previous)
		seen[u] = l
		assert.True(t, strings.HasPrefix(u, "https://github.com/alice?"))
	}
}

func TestHasLanguage(t *testing.T) {
	goLang, empty, placeholder := "Go", "", NoLanguage

	assert.True(t, RepositoryDescriptor{Language: &goLang}.HasLanguage())
	assert.False(t, RepositoryDescriptor{Language: &empty}.HasLanguage())
	assert.False(t, RepositoryDescriptor{Language: &placeholder}.HasLanguage())
	assert.False(t, RepositoryDescriptor{}.HasLanguage())
}

func TestNewAPIError(t *testing.T) {
	tests := []struct {
		err          error
		expectedCode string
		expectedHTTP int
	}{
		{err: ErrMissingUsername, expectedCode: "MISSING_USERNAME", expectedHTTP: http.StatusBadRequest},
		{err: errors.Wrap(ErrRateLimitReached, "alice"), expectedCode: "RATE_LIMIT_REACHED", expectedHTTP: http.StatusTooManyRequests},
		{err: errors.Wrap(ErrInvalidResponse, "alice"), expectedCode: "INVALID_RESPONSE", expectedHTTP: http.StatusBadGateway},
		{err: ErrFetch, expectedCode: "FETCH_ERROR", expectedHTTP: http.StatusBadGateway},
		{err: ErrRateLimiterError, expectedCode: "RATE_LIMITER_ERROR", expectedHTTP: http.StatusInternalServerError},
		{err: errors.New("boom"), expectedCode: "GENERIC_ERROR", expectedHTTP: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.expectedCode, func(t *testing.T) {
			assert.Equal(t, tt.expectedCode, NewAPIError(tt.err).Code)
			assert.NotEmpty(t, NewAPIError(tt.err).Message)
			assert.Equal(t, tt.expectedHTTP, StatusCode(tt.err))
		})
	}
}

func TestLanguageEntriesToMap(t *testing.T) {
	entries := LanguageEntries{
		{Language: "Go", ProjectsURL: "go-url"},
		{Language: "Rust", ProjectsURL: "rust-url"},
	}

	assert.Equal(t, map[string]string{"Go": "go-url", "Rust": "rust-url"}, entries.ToMap())
	assert.Empty(t, LanguageEntries{}.ToMap())
}
