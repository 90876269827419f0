package section

import (
	"context"
	"fmt"
	"log"
	"sync"

	"github.com/tutruong-dev/ba-portfolio-server/internal/bus"
	"github.com/tutruong-dev/ba-portfolio-server/internal/models"
	"github.com/tutruong-dev/ba-portfolio-server/internal/store"
	"github.com/tutruong-dev/ba-portfolio-server/internal/view"
)

// certPreviewLimit caps the certification grid outside the all-achievements
// modal.
const certPreviewLimit = 4

// visibleLineCount is how many description lines a collapsed timeline item
// shows; items with more are "long" and expose a toggle.
const visibleLineCount = 2

// Experience presents the tabbed experience section: work and volunteer
// timelines, hard/soft skill grids and the certification gallery. It is the
// only presenter coupled to the signal bus: the navbar publishes a category
// and the mounted presenter switches its active tab.
type Experience struct {
	mu        sync.Mutex
	gw        store.Gateway
	bus       *bus.Bus
	gen       int
	mounted   bool
	cancelSub func()

	experiences []models.Achievement
	skills      []models.Skill

	activeTab  bus.Category
	expanded   map[string]struct{}
	certFilter string
	showAll    bool
}

func NewExperience(gw store.Gateway, b *bus.Bus) *Experience {
	return &Experience{
		gw:         gw,
		bus:        b,
		activeTab:  bus.CategoryWork,
		expanded:   make(map[string]struct{}),
		certFilter: "All",
	}
}

// Mount marks the presenter live, subscribes to tab signals and kicks off
// the one-shot fetch. Signals published before Mount are not replayed; a
// second Mount without an Unmount in between is a no-op.
func (e *Experience) Mount(ctx context.Context) {
	e.mu.Lock()
	if e.mounted {
		e.mu.Unlock()
		return
	}
	e.mounted = true
	e.gen++
	gen := e.gen
	if e.cancelSub == nil && e.bus != nil {
		e.cancelSub = e.bus.Subscribe(func(c bus.Category) {
			_ = e.SetActiveTab(c)
		})
	}
	e.mu.Unlock()

	go func() {
		if err := e.refresh(ctx, gen); err != nil {
			log.Printf("experience: fetch failed, keeping empty state: %v", err)
		}
	}()
}

// Unmount drops the bus subscription and invalidates in-flight fetches.
func (e *Experience) Unmount() {
	e.mu.Lock()
	if !e.mounted {
		e.mu.Unlock()
		return
	}
	e.mounted = false
	e.gen++
	cancel := e.cancelSub
	e.cancelSub = nil
	e.mu.Unlock()

	if cancel != nil {
		cancel()
	}
}

func (e *Experience) Refresh(ctx context.Context) error {
	e.mu.Lock()
	gen := e.gen
	e.mu.Unlock()
	return e.refresh(ctx, gen)
}

func (e *Experience) refresh(ctx context.Context, gen int) error {
	exps, err := e.gw.FetchExperiences(ctx)
	if err != nil {
		return err
	}
	skills, err := e.gw.FetchSkills(ctx)
	if err != nil {
		return err
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	if gen != e.gen {
		return nil
	}
	if exps != nil {
		e.experiences = exps
	}
	if skills != nil {
		e.skills = skills
	}
	return nil
}

// SetActiveTab switches the visible tab. Unknown tokens are rejected.
func (e *Experience) SetActiveTab(c bus.Category) error {
	if !bus.Valid(c) {
		return fmt.Errorf("unknown experience tab %q", c)
	}
	e.mu.Lock()
	e.activeTab = c
	e.mu.Unlock()
	return nil
}

// ToggleItem flips one timeline item between collapsed and expanded.
func (e *Experience) ToggleItem(id string) {
	e.mu.Lock()
	if _, ok := e.expanded[id]; ok {
		delete(e.expanded, id)
	} else {
		e.expanded[id] = struct{}{}
	}
	e.mu.Unlock()
}

// SetCertFilter narrows the certification views to one subtype label from
// the closed filter set.
func (e *Experience) SetCertFilter(label string) error {
	if !view.ValidCertFilter(label) {
		return fmt.Errorf("unknown certification filter %q", label)
	}
	e.mu.Lock()
	e.certFilter = label
	e.mu.Unlock()
	return nil
}

// SetShowAll opens or closes the all-achievements modal.
func (e *Experience) SetShowAll(open bool) {
	e.mu.Lock()
	e.showAll = open
	e.mu.Unlock()
}

// TimelineItem is one display-ready work/volunteer entry. Lines holds only
// the currently visible description lines; HasMore marks items long enough
// to need a toggle.
type TimelineItem struct {
	ID           string      `json:"id"`
	Title        string      `json:"title"`
	Organization string      `json:"organization"`
	Date         string      `json:"date"`
	Lines        []view.Line `json:"lines"`
	HasMore      bool        `json:"has_more"`
	Expanded     bool        `json:"expanded"`
}

// SkillCard is one display-ready skill with a clamped level and a resolved
// icon key.
type SkillCard struct {
	ID          string `json:"id,omitempty"`
	Name        string `json:"name"`
	Level       int    `json:"level"`
	Icon        string `json:"icon"`
	Description string `json:"description,omitempty"`
}

// CertCard is one display-ready certification entry.
type CertCard struct {
	ID           string `json:"id"`
	Title        string `json:"title"`
	Organization string `json:"organization"`
	Date         string `json:"date"`
	Description  string `json:"description"`
	Subtype      string `json:"subtype"`
	ImageURL     string `json:"image_url,omitempty"`
}

// ExperienceView is the section snapshot: every tab's data plus the local
// view state, so the client is a pure function of it.
type ExperienceView struct {
	ActiveTab   bus.Category   `json:"active_tab"`
	Tabs        []bus.Category `json:"tabs"`
	Work        []TimelineItem `json:"work"`
	Volunteer   []TimelineItem `json:"volunteer"`
	HardSkills  []SkillCard    `json:"hard_skills"`
	SoftSkills  []SkillCard    `json:"soft_skills"`
	CertFilter  string         `json:"cert_filter"`
	CertFilters []string       `json:"cert_filters"`
	Certs       []CertCard     `json:"certs"`
	TotalCerts  int            `json:"total_certs"`
	ShowAll     bool           `json:"show_all"`
	AllCerts    []CertCard     `json:"all_certs,omitempty"`
}

func (e *Experience) Snapshot() ExperienceView {
	e.mu.Lock()
	defer e.mu.Unlock()

	work := view.SortByRecency(view.OfType(e.experiences, models.TypeWork))
	volunteer := view.SortByRecency(view.OfType(e.experiences, models.TypeVolunteer))
	allCerts := view.OfType(e.experiences, models.TypeCertification)
	filtered := view.FilterBySubtype(allCerts, e.certFilter)

	preview := filtered
	if len(preview) > certPreviewLimit {
		preview = preview[:certPreviewLimit]
	}

	v := ExperienceView{
		ActiveTab:   e.activeTab,
		Tabs:        bus.Categories,
		Work:        e.timelineItems(work),
		Volunteer:   e.timelineItems(volunteer),
		HardSkills:  skillCards(e.skills, models.SkillTechnical, "Code"),
		SoftSkills:  skillCards(e.skills, models.SkillSoft, "MessageCircle"),
		CertFilter:  e.certFilter,
		CertFilters: view.CertFilters,
		Certs:       certCards(preview),
		TotalCerts:  len(allCerts),
		ShowAll:     e.showAll,
	}
	if e.showAll {
		v.AllCerts = certCards(filtered)
	}
	return v
}

// timelineItems applies the expand/collapse policy: the first two segmented
// lines always, the rest only for expanded ids.
func (e *Experience) timelineItems(items []models.Achievement) []TimelineItem {
	out := make([]TimelineItem, 0, len(items))
	for _, it := range items {
		lines := view.SegmentLines(it.Description)
		_, expanded := e.expanded[it.ID]
		long := len(lines) > visibleLineCount

		visible := lines
		if long && !expanded {
			visible = lines[:visibleLineCount]
		}

		out = append(out, TimelineItem{
			ID:           it.ID,
			Title:        it.Title,
			Organization: it.Organization,
			Date:         view.DateRange(it.StartDate, it.EndDate),
			Lines:        visible,
			HasMore:      long,
			Expanded:     long && expanded,
		})
	}
	return out
}

func skillCards(skills []models.Skill, cat models.SkillCategory, defaultIcon string) []SkillCard {
	var out []SkillCard
	for _, s := range skills {
		if s.Category != cat {
			continue
		}
		out = append(out, SkillCard{
			ID:          s.ID,
			Name:        s.Name,
			Level:       view.ClampLevel(s.Level),
			Icon:        view.IconKey(s.IconName, defaultIcon),
			Description: s.Description,
		})
	}
	return out
}

func certCards(certs []models.Achievement) []CertCard {
	out := make([]CertCard, 0, len(certs))
	for _, c := range certs {
		out = append(out, CertCard{
			ID:           c.ID,
			Title:        c.Title,
			Organization: c.Organization,
			Date:         view.DateRange(c.StartDate, c.EndDate),
			Description:  c.Description,
			Subtype:      c.Subtype,
			ImageURL:     c.ImageURL,
		})
	}
	return out
}
