package widget

import (
	"bytes"
	"html/template"
	"sync"

	"github.com/Scalingo/gitlangcards/model"
)

// Mount is the host surface a Container projects its cards onto.
// Every call replaces what was previously rendered.
type Mount interface {
	Render(cards []model.LanguageCard) error
}

// HTMLMount keeps the latest carousel fragment in memory.
// It starts as an empty carousel so a failed widget still embeds cleanly.
type HTMLMount struct {
	mu       sync.RWMutex
	fragment []byte
	renders  int
}

func NewHTMLMount() *HTMLMount {
	var buf bytes.Buffer
	_ = RenderCarousel(&buf, nil)

	return &HTMLMount{fragment: buf.Bytes()}
}

func (m *HTMLMount) Render(cards []model.LanguageCard) error {
	var buf bytes.Buffer
	if err := RenderCarousel(&buf, cards); err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	m.fragment = buf.Bytes()
	m.renders++

	return nil
}

// Bytes returns a copy of the current fragment
func (m *HTMLMount) Bytes() []byte {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return append([]byte(nil), m.fragment...)
}

// HTML returns the current fragment for use in other templates
func (m *HTMLMount) HTML() template.HTML {
	return template.HTML(m.Bytes()) //nolint:gosec // produced by html/template
}

// Renders is the number of render cycles the mount went through
func (m *HTMLMount) Renders() int {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return m.renders
}
