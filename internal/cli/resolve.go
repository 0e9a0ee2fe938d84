package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/alexanderramin/groundwork/internal/domain"
	"github.com/alexanderramin/groundwork/internal/repository"
)

// resolveProject resolves a project code (case-insensitive) or UUID.
func resolveProject(ctx context.Context, app *App, input string) (*domain.Project, error) {
	if input == "" {
		return nil, fmt.Errorf("project is required")
	}
	return app.Projects.Resolve(ctx, input)
}

// resolveProjectIDs maps a list of --project values to UUIDs. An empty list
// stays empty, which scopes to every project.
func resolveProjectIDs(ctx context.Context, app *App, inputs []string) ([]string, error) {
	ids := make([]string, 0, len(inputs))
	for _, in := range inputs {
		p, err := resolveProject(ctx, app, in)
		if err != nil {
			return nil, err
		}
		ids = append(ids, p.ID)
	}
	return ids, nil
}

// resolvePhase resolves a phase by full UUID or by a unique UUID prefix
// as printed in phase lists.
func resolvePhase(ctx context.Context, app *App, input string) (*domain.Phase, error) {
	if input == "" {
		return nil, fmt.Errorf("phase ID is required")
	}
	ph, err := app.Phases.GetByID(ctx, input)
	if err == nil || !errors.Is(err, repository.ErrNotFound) {
		return ph, err
	}

	projects, err := app.Projects.List(ctx)
	if err != nil {
		return nil, err
	}
	var matches []*domain.Phase
	for _, p := range projects {
		phases, err := app.Phases.ListByProject(ctx, p.ID)
		if err != nil {
			return nil, err
		}
		for _, ph := range phases {
			if strings.HasPrefix(ph.ID, input) {
				matches = append(matches, ph)
			}
		}
	}
	return pickOne("phase", input, matches)
}

func resolveMilestone(ctx context.Context, app *App, input string) (*domain.Milestone, error) {
	if input == "" {
		return nil, fmt.Errorf("milestone ID is required")
	}
	m, err := app.Milestones.GetByID(ctx, input)
	if err == nil || !errors.Is(err, repository.ErrNotFound) {
		return m, err
	}

	projects, err := app.Projects.List(ctx)
	if err != nil {
		return nil, err
	}
	ids := make([]string, len(projects))
	for i, p := range projects {
		ids[i] = p.ID
	}
	all, err := app.Milestones.ListByProjects(ctx, ids)
	if err != nil {
		return nil, err
	}
	var matches []*domain.Milestone
	for _, m := range all {
		if strings.HasPrefix(m.ID, input) {
			matches = append(matches, m)
		}
	}
	return pickOne("milestone", input, matches)
}

func pickOne[T any](kind, input string, matches []*T) (*T, error) {
	switch len(matches) {
	case 0:
		return nil, fmt.Errorf("%s %q: %w", kind, input, repository.ErrNotFound)
	case 1:
		return matches[0], nil
	default:
		return nil, fmt.Errorf("%s ID prefix %q is ambiguous (%d matches)", kind, input, len(matches))
	}
}

// resolveResourceID resolves a --resource value to a resource UUID; the
// empty string and "none" mean unassigned.
func resolveResourceID(ctx context.Context, app *App, input string) (*string, error) {
	if input == "" || strings.EqualFold(input, "none") {
		return nil, nil
	}
	r, err := app.Resources.Resolve(ctx, input)
	if err != nil {
		return nil, err
	}
	return &r.ID, nil
}

// resourceNames indexes resource names by ID for display.
func resourceNames(ctx context.Context, app *App) (map[string]string, error) {
	resources, err := app.Resources.List(ctx)
	if err != nil {
		return nil, err
	}
	names := make(map[string]string, len(resources))
	for _, r := range resources {
		names[r.ID] = r.Name
	}
	return names, nil
}
