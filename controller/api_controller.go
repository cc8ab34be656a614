package controller

import (
	"html/template"
	"net/http"

	"github.com/Scalingo/gitlangcards/colors"
	"github.com/Scalingo/gitlangcards/config"
	"github.com/Scalingo/gitlangcards/model"
	"github.com/Scalingo/gitlangcards/service"
	"github.com/Scalingo/gitlangcards/widget"
	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

type APIController interface {
	GetLanguages(ctx *gin.Context)
	GetCards(ctx *gin.Context)
	GetEmbed(ctx *gin.Context)
	GetColors(ctx *gin.Context)
	GetColor(ctx *gin.Context)
}

type apiController struct {
	githubService service.GithubService
	colors        *colors.Table
	config        config.Config
}

type ColorResponse struct {
	Language string `json:"language"`
	Color    string `json:"color"`
	Known    bool   `json:"known"`
}

var embedPage = template.Must(template.New("embed").Parse(`<!DOCTYPE html>
<html>
<head>
  <meta charset="utf-8">
  <title>{{.Username}} languages</title>
  <link rel="stylesheet" href="https://cdnjs.cloudflare.com/ajax/libs/materialize/1.0.0/css/materialize.min.css">
  <style>.left-color-img { display: block; width: 48px; height: 100%; }</style>
</head>
<body>
{{.Fragment}}
<script src="https://cdnjs.cloudflare.com/ajax/libs/materialize/1.0.0/js/materialize.min.js"></script>
{{.Script}}
</body>
</html>
`))

func NewAPIController(config config.Config, service service.GithubService, table *colors.Table) APIController {
	return apiController{
		githubService: service,
		colors:        table,
		config:        config,
	}
}

// GetLanguages returns the language -> projects url entries of a user as JSON
func (s apiController) GetLanguages(c *gin.Context) {
	var query model.UserQuery
	if err := c.ShouldBindUri(&query); err != nil {
		c.JSON(http.StatusBadRequest, model.NewAPIError(model.ErrMissingUsername))
		return
	}

	// execute the request
	repos, err := s.githubService.FetchUserRepositories(c.Request.Context(), query.Username)
	if err != nil {
		c.JSON(model.StatusCode(err), model.NewAPIError(err))
		return
	}

	c.JSON(http.StatusOK, service.AggregateLanguages(query.Username, repos))
}

// GetCards returns the carousel fragment. A failed fetch still answers with an empty carousel.
func (s apiController) GetCards(c *gin.Context) {
	fragment, _, ok := s.renderWidget(c)
	if !ok {
		return
	}

	c.Data(http.StatusOK, "text/html; charset=utf-8", fragment)
}

// GetEmbed returns a standalone page with the carousel and its init script
func (s apiController) GetEmbed(c *gin.Context) {
	fragment, script, ok := s.renderWidget(c)
	if !ok {
		return
	}

	c.Header("Content-Type", "text/html; charset=utf-8")
	c.Status(http.StatusOK)

	err := embedPage.Execute(c.Writer, map[string]interface{}{
		"Username": c.Param("username"),
		"Fragment": template.HTML(fragment), //nolint:gosec // produced by html/template
		"Script":   script,
	})
	if err != nil {
		log.WithError(err).Error("unable to render embed page")
	}
}

// renderWidget runs a widget container for the requested user and waits for its render cycle
func (s apiController) renderWidget(c *gin.Context) ([]byte, template.HTML, bool) {
	var query model.UserQuery
	if err := c.ShouldBindUri(&query); err != nil {
		c.JSON(http.StatusBadRequest, model.NewAPIError(model.ErrMissingUsername))
		return nil, "", false
	}

	mount := widget.NewHTMLMount()
	carousel := widget.NewMarkupCarousel()
	container := widget.NewContainer(s.githubService, s.colors, mount, carousel)

	ready := false
	done, err := container.Initialize(c.Request.Context(), query.Username, func() { ready = true })
	if err != nil {
		c.JSON(model.StatusCode(err), model.NewAPIError(err))
		return nil, "", false
	}

	<-done

	fragment, script := mount.Bytes(), carousel.Script()

	if err := container.Teardown(); err != nil {
		log.WithError(err).Warning("unable to tear down widget")
	}

	log.WithFields(log.Fields{
		"username":    query.Username,
		"containerID": container.ID(),
		"ready":       ready,
	}).Debug("widget rendered")

	return fragment, script, true
}

// GetColors returns the whole colors table
func (s apiController) GetColors(c *gin.Context) {
	c.JSON(http.StatusOK, s.colors.Entries())
}

// GetColor returns the color used for a language, the fallback one when the language is unknown
func (s apiController) GetColor(c *gin.Context) {
	language := c.Param("language")
	_, known := s.colors.Lookup(language)

	c.JSON(http.StatusOK, ColorResponse{
		Language: language,
		Color:    s.colors.ColorFor(language),
		Known:    known,
	})
}
