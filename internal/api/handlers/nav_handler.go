package handlers

import (
	"net/http"

	"github.com/tutruong-dev/ba-portfolio-server/internal/bus"
	"github.com/tutruong-dev/ba-portfolio-server/internal/section"
)

// NavHandler mirrors the navigation bar's view state.
type NavHandler struct {
	nav *section.Navbar
}

func NewNavHandler(nav *section.Navbar) *NavHandler {
	return &NavHandler{nav: nav}
}

func (h *NavHandler) Get(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.nav.Snapshot())
}

type scrollRequest struct {
	Y int `json:"y"`
}

func (h *NavHandler) Scroll(w http.ResponseWriter, r *http.Request) {
	var req scrollRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	h.nav.HandleScroll(req.Y)
	writeJSON(w, http.StatusOK, h.nav.Snapshot())
}

type openRequest struct {
	Open bool `json:"open"`
}

func (h *NavHandler) SetMenu(w http.ResponseWriter, r *http.Request) {
	var req openRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	h.nav.SetMenuOpen(req.Open)
	writeJSON(w, http.StatusOK, h.nav.Snapshot())
}

func (h *NavHandler) SetDropdown(w http.ResponseWriter, r *http.Request) {
	var req openRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	h.nav.SetDropdownOpen(req.Open)
	writeJSON(w, http.StatusOK, h.nav.Snapshot())
}

func (h *NavHandler) SelectExperienceTab(w http.ResponseWriter, r *http.Request) {
	var req tabRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if err := h.nav.SelectExperienceTab(bus.Category(req.Tab)); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	writeJSON(w, http.StatusOK, h.nav.Snapshot())
}
