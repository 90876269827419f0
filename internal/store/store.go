// Package store is the read-only gateway to the hosted Postgres that backs
// the portfolio content. Reads are single best-effort queries: no retry, no
// pagination. When the connection URL is absent or still the placeholder the
// gateway stays unconfigured and every fetch returns nothing without any
// network I/O, leaving the static defaults in place.
package store

import (
	"context"

	"github.com/tutruong-dev/ba-portfolio-server/internal/models"
)

// Gateway is the persistence surface the presenters consume. Implementations
// return (nil, nil) for "no data"; callers treat errors identically after
// logging them.
type Gateway interface {
	Configured() bool
	FetchProfile(ctx context.Context) (*models.Profile, error)
	FetchExperiences(ctx context.Context) ([]models.Achievement, error)
	FetchEducation(ctx context.Context) ([]models.Achievement, error)
	FetchSkills(ctx context.Context) ([]models.Skill, error)
	FetchProjects(ctx context.Context) ([]models.Project, error)
	Close()
}
