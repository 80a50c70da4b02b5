package models

import "time"

// Project is a portfolio entry shown on the projects page
type Project struct {
	ID           string    `json:"id" yaml:"id"`
	Title        string    `json:"title" yaml:"title"`
	Description  string    `json:"description" yaml:"description"`
	Image        string    `json:"image,omitempty" yaml:"image,omitempty"`
	Technologies []string  `json:"technologies" yaml:"technologies"`
	GithubLink   string    `json:"githubLink,omitempty" yaml:"githubLink,omitempty"`
	LiveLink     string    `json:"liveLink,omitempty" yaml:"liveLink,omitempty"`
	Featured     bool      `json:"featured" yaml:"featured"`
	CreatedAt    time.Time `json:"createdAt" yaml:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt" yaml:"updatedAt"`
}
