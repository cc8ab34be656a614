package model

import (
	"net/url"
	"strings"
)

const githubHost = "https://github.com/"

// UserQuery is bound from the route parameters of the HTTP host
type UserQuery struct {
	Username string `uri:"username" binding:"required"`
}

// ProjectsFilter describes the repositories tab of a GitHub profile filtered by language
type ProjectsFilter struct {
	Username string
	Language string
}

// ToProjectsURL builds the deep link to the user's repositories filtered by language.
// The username is inserted as is, GitHub usernames are already URL safe.
func (filter ProjectsFilter) ToProjectsURL() string {
	var projectsURL strings.Builder

	projectsURL.WriteString(githubHost)
	projectsURL.WriteString(filter.Username)
	projectsURL.WriteString("?utf8=%E2%9C%93&tab=repositories&q=&type=&language=")
	projectsURL.WriteString(EncodeURIComponent(filter.Language))

	return projectsURL.String()
}

// EncodeURIComponent percent-encodes a value for use inside a URL component.
// Unlike url.QueryEscape spaces are encoded as %20.
func EncodeURIComponent(value string) string {
	return strings.ReplaceAll(url.QueryEscape(value), "+", "%20")
}
