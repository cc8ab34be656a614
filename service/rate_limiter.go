package service

import (
	"context"
	"time"

	"github.com/google/go-github/v66/github"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"golang.org/x/time/rate"
)

// NewRateLimiter builds a local rate limiter from the current github rate limits.
// Requests already consumed elsewhere are taken from the bucket, so the limiter stays
// right even if external requests are made with the same credentials.
func NewRateLimiter(ctx context.Context, githubClient *github.Client) (*rate.Limiter, error) {
	log.Debug("loading current rate limit from github")

	rateLimits, _, err := githubClient.RateLimit.Get(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "unable to load current github rate limits")
	}

	core := rateLimits.GetCore()
	if core == nil || core.Limit <= 0 {
		return nil, errors.New("github returned no core rate limit")
	}

	log.WithFields(log.Fields{
		"totalAvailable":    core.Limit,
		"remainingRequests": core.Remaining,
	}).Debug("will setup local rate limiter with rate limits infos from github")

	return newRateLimiter(core.Limit, core.Remaining)
}

func newRateLimiter(limit, remaining int) (*rate.Limiter, error) {
	rateLimiter := rate.NewLimiter(rate.Every(time.Hour/time.Duration(limit)), limit)

	consumed := limit - remaining
	if consumed > 0 && !rateLimiter.AllowN(time.Now(), consumed) {
		return nil, errors.New("unable to configure the github rate limiter")
	}

	return rateLimiter, nil
}
