package handlers

import (
	"net/http"

	"github.com/tutruong-dev/ba-portfolio-server/internal/bus"
	"github.com/tutruong-dev/ba-portfolio-server/internal/section"
)

// SectionsHandler serves the per-section snapshots and the experience
// section's view-state transitions.
type SectionsHandler struct {
	hero       *section.Hero
	about      *section.About
	experience *section.Experience
	projects   *section.Projects
	contact    *section.Contact
}

func NewSectionsHandler(hero *section.Hero, about *section.About, experience *section.Experience, projects *section.Projects, contact *section.Contact) *SectionsHandler {
	return &SectionsHandler{
		hero:       hero,
		about:      about,
		experience: experience,
		projects:   projects,
		contact:    contact,
	}
}

func (h *SectionsHandler) GetHero(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.hero.Snapshot())
}

func (h *SectionsHandler) GetAbout(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.about.Snapshot())
}

func (h *SectionsHandler) GetExperience(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.experience.Snapshot())
}

func (h *SectionsHandler) GetProjects(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.projects.Snapshot())
}

func (h *SectionsHandler) GetContact(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.contact.Snapshot())
}

type tabRequest struct {
	Tab string `json:"tab"`
}

func (h *SectionsHandler) SetExperienceTab(w http.ResponseWriter, r *http.Request) {
	var req tabRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if err := h.experience.SetActiveTab(bus.Category(req.Tab)); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	writeJSON(w, http.StatusOK, h.experience.Snapshot())
}

type toggleRequest struct {
	ID string `json:"id"`
}

func (h *SectionsHandler) ToggleExperienceItem(w http.ResponseWriter, r *http.Request) {
	var req toggleRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if req.ID == "" {
		http.Error(w, "id is required", http.StatusBadRequest)
		return
	}
	h.experience.ToggleItem(req.ID)
	writeJSON(w, http.StatusOK, h.experience.Snapshot())
}

type certFilterRequest struct {
	Filter string `json:"filter"`
}

func (h *SectionsHandler) SetCertFilter(w http.ResponseWriter, r *http.Request) {
	var req certFilterRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if err := h.experience.SetCertFilter(req.Filter); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	writeJSON(w, http.StatusOK, h.experience.Snapshot())
}

type modalRequest struct {
	Open bool `json:"open"`
}

func (h *SectionsHandler) SetExperienceModal(w http.ResponseWriter, r *http.Request) {
	var req modalRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	h.experience.SetShowAll(req.Open)
	writeJSON(w, http.StatusOK, h.experience.Snapshot())
}
