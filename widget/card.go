package widget

import (
	"html/template"
	"io"

	"github.com/Scalingo/gitlangcards/colors"
	"github.com/Scalingo/gitlangcards/model"
)

const cardTemplate = `{{define "card"}}<div class="carousel-item col s12 m7" style="width: 24%">
  <div class="card horizontal">
    <div class="card-image">
      <span class="left-color-img" style="background-color: {{.Color}}"></span>
    </div>
    <div class="card-stacked">
      <div class="card-content">
        <p>{{.Language}}</p>
      </div>
      <div class="card-action">
        <a style="color: darkorange" href="{{.ProjectsURL}}">Projects with this language</a>
      </div>
    </div>
  </div>
</div>{{end}}`

const carouselTemplate = `{{define "carousel"}}<div class="carousel" data-items="{{len .}}">{{range .}}
{{template "card" .}}{{end}}
</div>{{end}}`

var templates = template.Must(template.New("widget").Parse(cardTemplate + carouselTemplate))

// NewCard builds the view model of a card, the color is resolved once here.
// Languages missing from the table get the table fallback color.
func NewCard(entry model.LanguageEntry, table *colors.Table) model.LanguageCard {
	return model.LanguageCard{
		Language:    entry.Language,
		ProjectsURL: entry.ProjectsURL,
		Color:       table.ColorFor(entry.Language),
	}
}

// RenderCard writes the HTML of a single card
func RenderCard(w io.Writer, card model.LanguageCard) error {
	return templates.ExecuteTemplate(w, "card", card)
}

// RenderCarousel writes the carousel container with one card per entry
func RenderCarousel(w io.Writer, cards []model.LanguageCard) error {
	if cards == nil {
		cards = []model.LanguageCard{}
	}

	return templates.ExecuteTemplate(w, "carousel", cards)
}
