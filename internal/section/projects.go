package section

import (
	"context"
	"log"
	"sync"

	"github.com/tutruong-dev/ba-portfolio-server/internal/content"
	"github.com/tutruong-dev/ba-portfolio-server/internal/models"
	"github.com/tutruong-dev/ba-portfolio-server/internal/store"
	"github.com/tutruong-dev/ba-portfolio-server/internal/view"
)

// Projects presents the project cards. The two default cards stay until the
// gateway returns a non-empty list.
type Projects struct {
	mu       sync.Mutex
	gw       store.Gateway
	gen      int
	mounted  bool
	projects []models.Project
}

// ProjectCard is one display-ready project with its classified link
// call-to-action.
type ProjectCard struct {
	models.Project
	LinkDetails *view.LinkDetails `json:"link_details,omitempty"`
}

func NewProjects(gw store.Gateway) *Projects {
	return &Projects{
		gw:       gw,
		projects: content.DefaultProjects(),
	}
}

func (p *Projects) Mount(ctx context.Context) {
	p.mu.Lock()
	if p.mounted {
		p.mu.Unlock()
		return
	}
	p.mounted = true
	p.gen++
	gen := p.gen
	p.mu.Unlock()

	go func() {
		if err := p.refresh(ctx, gen); err != nil {
			log.Printf("projects: fetch failed, keeping defaults: %v", err)
		}
	}()
}

func (p *Projects) Unmount() {
	p.mu.Lock()
	if !p.mounted {
		p.mu.Unlock()
		return
	}
	p.mounted = false
	p.gen++
	p.mu.Unlock()
}

func (p *Projects) Refresh(ctx context.Context) error {
	p.mu.Lock()
	gen := p.gen
	p.mu.Unlock()
	return p.refresh(ctx, gen)
}

func (p *Projects) refresh(ctx context.Context, gen int) error {
	fetched, err := p.gw.FetchProjects(ctx)
	if err != nil {
		return err
	}
	if len(fetched) == 0 {
		return nil // defaults stay
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	if gen != p.gen {
		return nil
	}
	p.projects = fetched
	return nil
}

func (p *Projects) Snapshot() []ProjectCard {
	p.mu.Lock()
	defer p.mu.Unlock()

	out := make([]ProjectCard, 0, len(p.projects))
	for _, proj := range p.projects {
		card := ProjectCard{Project: proj}
		if details, ok := view.ClassifyLink(proj.Link); ok {
			card.LinkDetails = &details
		}
		out = append(out, card)
	}
	return out
}
