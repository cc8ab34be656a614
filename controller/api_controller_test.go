package controller

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/Scalingo/gitlangcards/colors"
	"github.com/Scalingo/gitlangcards/config"
	"github.com/Scalingo/gitlangcards/model"
	"github.com/Scalingo/gitlangcards/service"
	"github.com/gin-gonic/gin"
	"github.com/google/go-github/v66/github"
	githubMock "github.com/migueleliasweb/go-github-mock/src/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/time/rate"
)

type stubGithubService struct {
	repos []model.RepositoryDescriptor
	err   error
}

func (s stubGithubService) FetchUserRepositories(_ context.Context, _ string) ([]model.RepositoryDescriptor, error) {
	return s.repos, s.err
}

func (s stubGithubService) HandleRequestErrors(err error) error {
	return err
}

func newTestRouter(svc service.GithubService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	conf := config.GetDefault()

	return NewRouter(NewAPIController(*conf, svc, colors.Default()))
}

func serve(router *gin.Engine, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	router.ServeHTTP(w, req)

	return w
}

// TestGetLanguages test the JSON languages endpoint
func TestGetLanguages(t *testing.T) {
	tests := []struct {
		name           string
		svc            stubGithubService
		expectedStatus int
		expectedBody   interface{}
	}{
		{
			name: "Languages of a user",
			svc: stubGithubService{repos: []model.RepositoryDescriptor{
				{Language: github.String("Go")},
				{Language: github.String("Go")},
				{Language: github.String("Rust")},
				{},
			}},
			expectedStatus: http.StatusOK,
			expectedBody: []model.LanguageEntry{
				{Language: "Go", ProjectsURL: "https://github.com/alice?utf8=%E2%9C%93&tab=repositories&q=&type=&language=Go"},
				{Language: "Rust", ProjectsURL: "https://github.com/alice?utf8=%E2%9C%93&tab=repositories&q=&type=&language=Rust"},
			},
		},
		{
			name:           "Rate limit reached",
			svc:            stubGithubService{err: model.ErrRateLimitReached},
			expectedStatus: http.StatusTooManyRequests,
			expectedBody:   model.NewAPIError(model.ErrRateLimitReached),
		},
		{
			name:           "Github failure",
			svc:            stubGithubService{err: model.ErrFetch},
			expectedStatus: http.StatusBadGateway,
			expectedBody:   model.NewAPIError(model.ErrFetch),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := serve(newTestRouter(tt.svc), "/languages/alice")

			assert.Equal(t, tt.expectedStatus, w.Code)

			expected, err := json.Marshal(tt.expectedBody)
			require.NoError(t, err)
			assert.JSONEq(t, string(expected), w.Body.String())
		})
	}
}

func TestGetCards(t *testing.T) {
	router := newTestRouter(stubGithubService{repos: []model.RepositoryDescriptor{
		{Language: github.String("Go")},
		{Language: github.String("Brainfork")},
	}})

	w := serve(router, "/cards/alice")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "text/html; charset=utf-8", w.Header().Get("Content-Type"))
	assert.Contains(t, w.Body.String(), `data-items="2"`)
	assert.Contains(t, w.Body.String(), "background-color: #00ADD8")
	assert.Contains(t, w.Body.String(), "background-color: "+colors.DefaultFallback)
	assert.NotEmpty(t, w.Header().Get(requestIDHeader))
}

func TestGetCardsDegradesOnFailure(t *testing.T) {
	w := serve(newTestRouter(stubGithubService{err: model.ErrFetch}), "/cards/alice")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `data-items="0"`)
	assert.NotContains(t, w.Body.String(), "carousel-item")
}

func TestGetEmbed(t *testing.T) {
	tests := []struct {
		name         string
		svc          stubGithubService
		expectScript bool
	}{
		{
			name:         "Rendered widget initializes the carousel",
			svc:          stubGithubService{repos: []model.RepositoryDescriptor{{Language: github.String("Go")}}},
			expectScript: true,
		},
		{
			name:         "Failed widget has no carousel",
			svc:          stubGithubService{err: model.ErrInvalidResponse},
			expectScript: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := serve(newTestRouter(tt.svc), "/embed/alice")

			assert.Equal(t, http.StatusOK, w.Code)
			assert.Contains(t, w.Body.String(), "<title>alice languages</title>")
			assert.Contains(t, w.Body.String(), `<div class="carousel"`)
			assert.Equal(t, tt.expectScript, strings.Contains(w.Body.String(), "M.Carousel.init"))
		})
	}
}

func TestGetColor(t *testing.T) {
	router := newTestRouter(stubGithubService{})

	tests := []struct {
		path     string
		expected ColorResponse
	}{
		{path: "/colors/Go", expected: ColorResponse{Language: "Go", Color: "#00ADD8", Known: true}},
		{path: "/colors/Brainfork", expected: ColorResponse{Language: "Brainfork", Color: colors.DefaultFallback, Known: false}},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			w := serve(router, tt.path)
			require.Equal(t, http.StatusOK, w.Code)

			var got ColorResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestGetColors(t *testing.T) {
	w := serve(newTestRouter(stubGithubService{}), "/colors")
	require.Equal(t, http.StatusOK, w.Code)

	var got map[string]colors.Entry
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	require.Contains(t, got, "Rust")
	assert.Equal(t, "#dea584", *got["Rust"].Color)
}

// TestGetLanguagesWithMockedGithub goes through the real github service
func TestGetLanguagesWithMockedGithub(t *testing.T) {
	mockedHTTPClient := githubMock.NewMockedHTTPClient(
		githubMock.WithRequestMatch(
			githubMock.GetUsersReposByUsername,
			[]*github.Repository{
				{Name: github.String("widget"), Language: github.String("JavaScript")},
				{Name: github.String("notes"), Language: github.String("Jupyter Notebook")},
			},
		),
	)

	svc := service.NewGithubService(*config.GetDefault(), github.NewClient(mockedHTTPClient), rate.NewLimiter(rate.Every(time.Hour), 60))
	w := serve(newTestRouter(svc), "/languages/alice")

	require.Equal(t, http.StatusOK, w.Code)

	var got []model.LanguageEntry
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, []model.LanguageEntry{
		{Language: "JavaScript", ProjectsURL: "https://github.com/alice?utf8=%E2%9C%93&tab=repositories&q=&type=&language=JavaScript"},
		{Language: "Jupyter Notebook", ProjectsURL: "https://github.com/alice?utf8=%E2%9C%93&tab=repositories&q=&type=&language=Jupyter%20Notebook"},
	}, got)
}

func TestRequestIDIsPropagated(t *testing.T) {
	router := newTestRouter(stubGithubService{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/colors/Go", nil)
	req.Header.Set(requestIDHeader, "req-123")
	router.ServeHTTP(w, req)

	assert.Equal(t, "req-123", w.Header().Get(requestIDHeader))
}
