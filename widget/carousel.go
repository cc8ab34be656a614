package widget

import (
	"fmt"
	"html/template"
	"sync"
)

// CarouselController is the sliding behavior attached to a rendered carousel.
// It is provided by the host: Initialize is called after every render with the number of cards,
// Destroy once when the container is torn down.
type CarouselController interface {
	Initialize(items int) error
	Destroy() error
}

// MarkupCarousel drives the carousel on the client side: once initialized,
// Script returns the snippet the page must include to start the materialize carousel.
type MarkupCarousel struct {
	mu     sync.Mutex
	items  int
	active bool
}

func NewMarkupCarousel() *MarkupCarousel {
	return &MarkupCarousel{}
}

func (c *MarkupCarousel) Initialize(items int) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.items = items
	c.active = true

	return nil
}

func (c *MarkupCarousel) Destroy() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.items = 0
	c.active = false

	return nil
}

// Active reports whether the carousel has been initialized and not destroyed since
func (c *MarkupCarousel) Active() bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.active
}

// Script returns the init snippet, empty when the carousel is not active
func (c *MarkupCarousel) Script() template.HTML {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.active {
		return ""
	}

	numVisible := c.items
	if numVisible > 5 {
		numVisible = 5
	}

	return template.HTML(fmt.Sprintf( //nolint:gosec // only integers are interpolated
		`<script>document.addEventListener("DOMContentLoaded", function () { M.Carousel.init(document.querySelectorAll(".carousel"), {numVisible: %d}); });</script>`,
		numVisible,
	))
}
