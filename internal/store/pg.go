package store

import (
	"context"
	"errors"
	"log"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/tutruong-dev/ba-portfolio-server/internal/config"
	"github.com/tutruong-dev/ba-portfolio-server/internal/models"
)

// Client reads the four content tables over a pgx pool. The zero Client is
// the unconfigured gateway.
type Client struct {
	pool *pgxpool.Pool
}

// New builds the gateway. A missing or placeholder URL, or one that does not
// parse, yields an unconfigured client rather than an error: the site runs
// on defaults either way. The pool connects lazily on first query.
func New(ctx context.Context, databaseURL string) *Client {
	if databaseURL == "" || databaseURL == config.PlaceholderDatabaseURL {
		return &Client{}
	}

	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		log.Printf("store: unusable DATABASE_URL, serving defaults: %v", err)
		return &Client{}
	}
	return &Client{pool: pool}
}

func (c *Client) Configured() bool {
	return c.pool != nil
}

func (c *Client) Close() {
	if c.pool != nil {
		c.pool.Close()
	}
}

// FetchProfile reads the single profile row. No row means no data, not an
// error.
func (c *Client) FetchProfile(ctx context.Context) (*models.Profile, error) {
	if c.pool == nil {
		return nil, nil
	}

	const q = `
		SELECT full_name, headline, short_bio, COALESCE(long_bio, ''),
		       avatar_url, COALESCE(resume_url, ''), email,
		       COALESCE(phone, ''), COALESCE(location, ''),
		       COALESCE(linkedin_url, ''), COALESCE(github_url, '')
		FROM profile
		LIMIT 1
	`
	var p models.Profile
	err := c.pool.QueryRow(ctx, q).Scan(
		&p.FullName, &p.Headline, &p.ShortBio, &p.LongBio,
		&p.AvatarURL, &p.ResumeURL, &p.Email,
		&p.Phone, &p.Location, &p.LinkedinURL, &p.GithubURL,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

const achievementColumns = `
	id::text, title, organization, start_date, COALESCE(end_date, ''),
	description, COALESCE(icon_name, ''), type,
	COALESCE(subtype, 'Certification'), COALESCE(image_url, '')`

// FetchExperiences reads every row of the experiences table; partitioning by
// type happens at view time.
func (c *Client) FetchExperiences(ctx context.Context) ([]models.Achievement, error) {
	if c.pool == nil {
		return nil, nil
	}
	return c.queryAchievements(ctx, `SELECT`+achievementColumns+` FROM experiences`)
}

// FetchEducation reads the education slice of the experiences table, most
// recent first.
func (c *Client) FetchEducation(ctx context.Context) ([]models.Achievement, error) {
	if c.pool == nil {
		return nil, nil
	}
	return c.queryAchievements(ctx,
		`SELECT`+achievementColumns+` FROM experiences WHERE type = 'education' ORDER BY end_date DESC`)
}

func (c *Client) queryAchievements(ctx context.Context, q string) ([]models.Achievement, error) {
	rows, err := c.pool.Query(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []models.Achievement
	for rows.Next() {
		var a models.Achievement
		if err := rows.Scan(
			&a.ID, &a.Title, &a.Organization, &a.StartDate, &a.EndDate,
			&a.Description, &a.IconName, &a.Type, &a.Subtype, &a.ImageURL,
		); err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

// FetchSkills reads skills ordered by descending level.
func (c *Client) FetchSkills(ctx context.Context) ([]models.Skill, error) {
	if c.pool == nil {
		return nil, nil
	}

	const q = `
		SELECT COALESCE(id::text, ''), name, level, category,
		       COALESCE(description, ''), COALESCE(icon_name, '')
		FROM skills
		ORDER BY level DESC
	`
	rows, err := c.pool.Query(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []models.Skill
	for rows.Next() {
		var s models.Skill
		if err := rows.Scan(&s.ID, &s.Name, &s.Level, &s.Category, &s.Description, &s.IconName); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

// FetchProjects reads projects newest first. Rows missing a role or image
// get the same fallbacks the default cards use.
func (c *Client) FetchProjects(ctx context.Context) ([]models.Project, error) {
	if c.pool == nil {
		return nil, nil
	}

	const q = `
		SELECT id::text, title, COALESCE(role, ''), description,
		       COALESCE(tools, '{}'), COALESCE(image_url, ''), COALESCE(link, '')
		FROM projects
		ORDER BY created_at DESC
	`
	rows, err := c.pool.Query(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []models.Project
	for rows.Next() {
		var p models.Project
		if err := rows.Scan(&p.ID, &p.Title, &p.Role, &p.Description, &p.Tools, &p.Image, &p.Link); err != nil {
			return nil, err
		}
		if p.Role == "" {
			p.Role = "Business Analyst"
		}
		if p.Image == "" {
			p.Image = "https://picsum.photos/600/400"
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

var _ Gateway = (*Client)(nil)
