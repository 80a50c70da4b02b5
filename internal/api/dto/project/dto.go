package project

// CreateProjectRequest represents a new portfolio project
type CreateProjectRequest struct {
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	Image        string   `json:"image"`
	Technologies []string `json:"technologies"`
	GithubLink   string   `json:"githubLink"`
	LiveLink     string   `json:"liveLink"`
	Featured     *bool    `json:"featured"`
}
