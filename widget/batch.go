package widget

import (
	"context"
	"sync"

	"github.com/Scalingo/gitlangcards/colors"
	"github.com/remeh/sizedwaitgroup"
	log "github.com/sirupsen/logrus"
)

// BatchResult is the outcome of rendering the widget of a single user
type BatchResult struct {
	Username string
	Fragment []byte
	Script   string
	Cards    int
	Ready    bool
	Err      error
}

// RenderBatch renders the widget of each user, at most parallelism at the same time.
// Results are returned in the order of usernames.
func RenderBatch(ctx context.Context, fetcher RepositoryFetcher, table *colors.Table, usernames []string, parallelism int) []BatchResult {
	if parallelism < 1 {
		parallelism = 1
	}

	results := make([]BatchResult, len(usernames))
	swg := sizedwaitgroup.New(parallelism)

	var mu sync.Mutex

	for i, username := range usernames {
		swg.Add()

		go func(i int, username string) {
			defer swg.Done()

			result := renderOne(ctx, fetcher, table, username)

			mu.Lock()
			results[i] = result
			mu.Unlock()
		}(i, username)
	}

	// wait for all tasks to be finished
	log.WithField("users", len(usernames)).Debug("waiting for all widgets to be rendered")
	swg.Wait()

	return results
}

func renderOne(ctx context.Context, fetcher RepositoryFetcher, table *colors.Table, username string) BatchResult {
	mount := NewHTMLMount()
	carousel := NewMarkupCarousel()
	container := NewContainer(fetcher, table, mount, carousel)

	result := BatchResult{Username: username}

	done, err := container.Initialize(ctx, username, func() {
		result.Ready = true
	})
	if err != nil {
		result.Err = err
		result.Fragment = mount.Bytes()
		return result
	}

	<-done

	result.Fragment = mount.Bytes()
	result.Script = string(carousel.Script())
	result.Cards = len(container.State().Cards)

	if err := container.Teardown(); err != nil {
		log.WithError(err).WithField("username", username).Warning("unable to tear down widget")
	}

	return result
}
