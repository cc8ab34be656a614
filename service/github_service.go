package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/Scalingo/gitlangcards/config"
	"github.com/Scalingo/gitlangcards/model"
	"github.com/google/go-github/v66/github"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"golang.org/x/time/rate"
)

type GithubService interface {
	FetchUserRepositories(ctx context.Context, username string) ([]model.RepositoryDescriptor, error)

	HandleRequestErrors(err error) error
}

type githubService struct {
	githubClient      *github.Client
	githubRateLimiter *rate.Limiter
	config            config.Config
}

// NewGithubService
// the client is created by the caller so tests can provide a mocked one
func NewGithubService(config config.Config, githubClient *github.Client, rateLimiter *rate.Limiter) GithubService {
	return githubService{
		githubClient:      githubClient,
		githubRateLimiter: rateLimiter,
		config:            config,
	}
}

// NewGithubClient returns a go-github client, authenticated when a token is configured
func NewGithubClient(cfg config.Config) *github.Client {
	githubClient := github.NewClient(nil)

	if cfg.Github.Token != "" {
		log.Debug("will setup github client with authorization token")
		githubClient = githubClient.WithAuthToken(cfg.Github.Token)
	}

	return githubClient
}

// FetchUserRepositories issues a single request for the public repositories of username.
// There is no pagination loop: the page size is large enough for typical accounts.
func (s githubService) FetchUserRepositories(ctx context.Context, username string) ([]model.RepositoryDescriptor, error) {
	if username == "" {
		return nil, model.ErrMissingUsername
	}

	if !s.githubRateLimiter.Allow() {
		log.WithField("username", username).Warning("the Github rate limit has been reached. Use a token or wait until the limit reset")
		return nil, errors.Wrapf(model.ErrRateLimitReached, "fetch repositories of %s", username)
	}

	log.WithFields(log.Fields{
		"username": username,
		"perPage":  s.config.Github.PerPage,
	}).Info("fetch user repositories from github")

	repos, _, err := s.githubClient.Repositories.ListByUser(
		ctx,
		username,
		&github.RepositoryListByUserOptions{
			ListOptions: github.ListOptions{
				Page:    1,
				PerPage: s.config.Github.PerPage,
			},
		},
	)

	if err != nil {
		return nil, errors.Wrapf(s.HandleRequestErrors(err), "fetch repositories of %s", username)
	}

	descriptors := make([]model.RepositoryDescriptor, 0, len(repos))

	for _, r := range repos {
		if r == nil {
			log.WithField("username", username).Debug("nil repository found in github response. skipped")
			continue
		}

		descriptors = append(descriptors, model.RepositoryDescriptor{
			Name:     r.GetName(),
			Language: r.Language,
		})
	}

	log.WithFields(log.Fields{
		"username":             username,
		"numberOfRepositories": len(descriptors),
	}).Debug("user repositories loaded")

	return descriptors, nil
}

// HandleRequestErrors manage errors including github rate limit errors at the same location
// If error is a rate limit error, this function will update the local rate limiter to consume all available requests
// this can help us to keep the local rate limiter up to date
// Errors are never retried: the caller degrades to an empty card set
func (s githubService) HandleRequestErrors(err error) error {
	var rateLimitErr *github.RateLimitError
	if errors.As(err, &rateLimitErr) {
		// github says the quota is exhausted, empty the local bucket as well
		if remaining := int(s.githubRateLimiter.Tokens()); remaining > 0 && !s.githubRateLimiter.AllowN(time.Now(), remaining) {
			return model.ErrRateLimiterError
		}

		log.Warning("the Github rate limit has been reached. Use a token or wait until the limit reset")
		return model.ErrRateLimitReached
	}

	// the body was received but is not the expected list of repositories
	var typeErr *json.UnmarshalTypeError
	var syntaxErr *json.SyntaxError
	if errors.As(err, &typeErr) || errors.As(err, &syntaxErr) {
		log.WithError(err).Warning("not a valid response received from github")
		return model.ErrInvalidResponse
	}

	fields := log.Fields{}
	var responseErr *github.ErrorResponse
	if errors.As(err, &responseErr) && responseErr.Response != nil {
		fields["status"] = responseErr.Response.StatusCode
	}

	log.WithError(err).WithFields(fields).Error("error catched when fetching data from github")
	return model.ErrFetch
}
