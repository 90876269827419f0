package section

import (
	"context"
	"log"
	"sync"

	"github.com/tutruong-dev/ba-portfolio-server/internal/models"
	"github.com/tutruong-dev/ba-portfolio-server/internal/store"
	"github.com/tutruong-dev/ba-portfolio-server/internal/view"
)

// About presents the education timeline. It starts empty on purpose: the
// view shows its loading/empty affordance until the gateway supplies rows.
type About struct {
	mu        sync.Mutex
	gw        store.Gateway
	gen       int
	mounted   bool
	education []models.Achievement
}

// EducationItem is one display-ready timeline entry.
type EducationItem struct {
	ID           string      `json:"id"`
	Title        string      `json:"title"`
	Organization string      `json:"organization"`
	Date         string      `json:"date"`
	Lines        []view.Line `json:"lines"`
}

// AboutView is the section snapshot. Empty carries the explicit empty-state
// flag so the client renders "Loading education details..." instead of
// nothing.
type AboutView struct {
	Items []EducationItem `json:"items"`
	Empty bool            `json:"empty"`
}

func NewAbout(gw store.Gateway) *About {
	return &About{gw: gw}
}

func (a *About) Mount(ctx context.Context) {
	a.mu.Lock()
	if a.mounted {
		a.mu.Unlock()
		return
	}
	a.mounted = true
	a.gen++
	gen := a.gen
	a.mu.Unlock()

	go func() {
		if err := a.refresh(ctx, gen); err != nil {
			log.Printf("about: fetch failed, keeping empty state: %v", err)
		}
	}()
}

func (a *About) Unmount() {
	a.mu.Lock()
	if !a.mounted {
		a.mu.Unlock()
		return
	}
	a.mounted = false
	a.gen++
	a.mu.Unlock()
}

func (a *About) Refresh(ctx context.Context) error {
	a.mu.Lock()
	gen := a.gen
	a.mu.Unlock()
	return a.refresh(ctx, gen)
}

func (a *About) refresh(ctx context.Context, gen int) error {
	rows, err := a.gw.FetchEducation(ctx)
	if err != nil {
		return err
	}
	if len(rows) == 0 {
		return nil
	}

	a.mu.Lock()
	defer a.mu.Unlock()
	if gen != a.gen {
		return nil
	}
	a.education = rows
	return nil
}

func (a *About) Snapshot() AboutView {
	a.mu.Lock()
	defer a.mu.Unlock()

	items := make([]EducationItem, 0, len(a.education))
	for _, edu := range a.education {
		items = append(items, EducationItem{
			ID:           edu.ID,
			Title:        edu.Title,
			Organization: edu.Organization,
			Date:         view.DateRange(edu.StartDate, edu.EndDate),
			Lines:        view.SegmentLines(edu.Description),
		})
	}
	return AboutView{Items: items, Empty: len(items) == 0}
}
