package model

// LanguageCard is the view model of a single card in the carousel
type LanguageCard struct {
	Language    string `json:"language"`
	ProjectsURL string `json:"projectsURL"`
	Color       string `json:"color"`
}
