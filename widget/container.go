// Package widget renders the language cards carousel of a GitHub user.
//
// A Container owns the view state of one widget instance. Initialize issues a single
// fetch of the user's repositories; when it succeeds the languages are aggregated, one
// card is rendered per language on the Mount and the CarouselController is (re)initialized
// before the host callback fires. Failures are logged and leave the cards untouched.
package widget

import (
	"context"
	"sync"

	"github.com/Scalingo/gitlangcards/colors"
	"github.com/Scalingo/gitlangcards/model"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// RepositoryFetcher loads the repositories of a user, service.GithubService is the production one
type RepositoryFetcher interface {
	FetchUserRepositories(ctx context.Context, username string) ([]model.RepositoryDescriptor, error)
}

type Container struct {
	id       string
	fetcher  RepositoryFetcher
	colors   *colors.Table
	mount    Mount
	carousel CarouselController

	mu       sync.Mutex
	state    State
	mounted  bool
	acquired bool
}

func NewContainer(fetcher RepositoryFetcher, table *colors.Table, mount Mount, carousel CarouselController) *Container {
	return &Container{
		id:       uuid.NewString(),
		fetcher:  fetcher,
		colors:   table,
		mount:    mount,
		carousel: carousel,
		mounted:  true,
	}
}

// ID identifies the container in logs
func (c *Container) ID() string {
	return c.id
}

// Initialize starts the fetch-render cycle for username and returns immediately.
// The returned channel is closed once the cycle is over, whatever its outcome.
// onReady is called once after the cards are rendered and the carousel initialized,
// it is never called when the fetch fails.
//
// Calling Initialize again before the previous cycle completes is not guarded:
// the last response to arrive wins.
func (c *Container) Initialize(ctx context.Context, username string, onReady func()) (<-chan struct{}, error) {
	if username == "" {
		return nil, errors.Wrap(model.ErrMissingUsername, "user name is not mentioned, bailing out")
	}

	c.mu.Lock()
	mounted := c.mounted
	c.mu.Unlock()

	if !mounted {
		return nil, errors.New("container has been torn down")
	}

	done := make(chan struct{})

	go func() {
		defer close(done)

		repos, err := c.fetcher.FetchUserRepositories(ctx, username)
		c.complete(username, FetchResult{Repositories: repos, Err: err}, onReady)
	}()

	return done, nil
}

func (c *Container) complete(username string, result FetchResult, onReady func()) {
	logger := log.WithFields(log.Fields{
		"containerID": c.id,
		"username":    username,
	})

	c.mu.Lock()

	if !c.mounted {
		c.mu.Unlock()
		logger.Debug("container torn down before the response arrived. response dropped")
		return
	}

	next, err := Reduce(c.state, username, result, c.colors)
	if err != nil {
		c.mu.Unlock()

		if errors.Is(err, model.ErrInvalidResponse) {
			logger.WithError(err).Warning("not a valid response, no cards rendered")
		} else {
			logger.WithError(err).Error("unable to fetch repositories, no cards rendered")
		}
		return
	}

	c.state = next

	if err := c.mount.Render(next.Cards); err != nil {
		c.mu.Unlock()
		logger.WithError(err).Error("unable to render language cards")
		return
	}

	if err := c.carousel.Initialize(len(next.Cards)); err != nil {
		c.mu.Unlock()
		logger.WithError(err).Error("unable to initialize carousel")
		return
	}
	c.acquired = true

	c.mu.Unlock()

	logger.WithFields(log.Fields{
		"cards":    len(next.Cards),
		"revision": next.Revision,
	}).Debug("language cards rendered")

	if onReady != nil {
		onReady()
	}
}

// Teardown detaches the carousel and discards the view state.
// The carousel is destroyed once if it was initialized at least once, later calls are no-op.
func (c *Container) Teardown() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.mounted {
		return nil
	}

	c.mounted = false
	c.state = State{}

	if !c.acquired {
		return nil
	}
	c.acquired = false

	log.WithField("containerID", c.id).Debug("destroying carousel")
	return c.carousel.Destroy()
}

// State returns a copy of the current view state
func (c *Container) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.state.clone()
}

// Mounted reports whether Teardown has not been called yet
func (c *Container) Mounted() bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.mounted
}
