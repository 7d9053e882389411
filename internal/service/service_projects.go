package service

import (
	"context"

	"github.com/brsv-srg/qodefly-dashboard/models"
)

// starterPrompts are the example ideas shown on an empty dashboard.
var starterPrompts = []models.StarterPrompt{
	{Prompt: "Landing page for my coffee shop", Kind: "Landing page"},
	{Prompt: "Portfolio with my recent work", Kind: "Portfolio"},
	{Prompt: "Feedback form for customers", Kind: "Web app"},
}

type projectService struct{}

// NewProjectService returns the projects backend. The API has no projects
// endpoint yet, so the list is always empty.
func NewProjectService() ProjectService {
	return &projectService{}
}

func (s *projectService) Overview(ctx context.Context) (models.ProjectsOverview, error) {
	starters := make([]models.StarterPrompt, len(starterPrompts))
	copy(starters, starterPrompts)

	return models.ProjectsOverview{
		Projects: []models.Project{},
		Starters: starters,
	}, nil
}
