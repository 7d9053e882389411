package models

// Project is a web project built with qodefly. The dashboard currently has no
// backing endpoint, so lists are always empty.
type Project struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// StarterPrompt is an example idea shown on the empty projects screen.
type StarterPrompt struct {
	Prompt string `json:"prompt"`
	Kind   string `json:"kind"`
}

// ProjectsOverview is everything the projects screen needs to render.
type ProjectsOverview struct {
	Projects []Project       `json:"projects"`
	Starters []StarterPrompt `json:"starters"`
}

// Empty reports whether the overview should show the "create your first
// project" state.
func (p ProjectsOverview) Empty() bool {
	return len(p.Projects) == 0
}
