package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tutruong-dev/ba-portfolio-server/internal/assistant"
	"github.com/tutruong-dev/ba-portfolio-server/internal/bus"
	"github.com/tutruong-dev/ba-portfolio-server/internal/mailer"
	"github.com/tutruong-dev/ba-portfolio-server/internal/models"
	"github.com/tutruong-dev/ba-portfolio-server/internal/section"
	"github.com/tutruong-dev/ba-portfolio-server/internal/store"
)

// newTestRouter wires the handlers against an unconfigured gateway, so
// every section serves its built-in defaults.
func newTestRouter(t *testing.T) *chi.Mux {
	t.Helper()
	ctx := context.Background()

	gw := store.New(ctx, "")
	b := bus.New()

	hero := section.NewHero(gw)
	about := section.NewAbout(gw)
	experience := section.NewExperience(gw, b)
	projects := section.NewProjects(gw)
	contact := section.NewContact(gw, mailer.New("", "", ""))
	nav := section.NewNavbar(b)
	chat := section.NewChat(assistant.NewBridge(nil))

	for _, err := range []error{
		hero.Refresh(ctx),
		about.Refresh(ctx),
		experience.Refresh(ctx),
		projects.Refresh(ctx),
		contact.Refresh(ctx),
	} {
		require.NoError(t, err)
	}
	experience.Mount(ctx)
	t.Cleanup(experience.Unmount)

	sections := NewSectionsHandler(hero, about, experience, projects, contact)
	navH := NewNavHandler(nav)
	chatH := NewChatHandler(chat)
	contactH := NewContactHandler(contact)

	r := chi.NewRouter()
	r.Route("/api", func(r chi.Router) {
		r.Get("/sections/hero", sections.GetHero)
		r.Get("/sections/about", sections.GetAbout)
		r.Get("/sections/experience", sections.GetExperience)
		r.Get("/sections/projects", sections.GetProjects)
		r.Get("/sections/contact", sections.GetContact)
		r.Post("/sections/experience/tab", sections.SetExperienceTab)
		r.Post("/sections/experience/toggle", sections.ToggleExperienceItem)
		r.Post("/sections/experience/filter", sections.SetCertFilter)
		r.Post("/sections/experience/modal", sections.SetExperienceModal)
		r.Get("/nav", navH.Get)
		r.Post("/nav/scroll", navH.Scroll)
		r.Post("/nav/menu", navH.SetMenu)
		r.Post("/nav/dropdown", navH.SetDropdown)
		r.Post("/nav/experience-tab", navH.SelectExperienceTab)
		r.Get("/chat", chatH.GetMessages)
		r.Post("/chat", chatH.PostMessage)
		r.Post("/chat/open", chatH.SetOpen)
		r.Post("/contact", contactH.Submit)
	})
	return r
}

func do(t *testing.T, r http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestGetHeroServesDefaultProfile(t *testing.T) {
	r := newTestRouter(t)

	rec := do(t, r, http.MethodGet, "/api/sections/hero", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var p models.Profile
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &p))
	assert.Equal(t, "Trương Thị Minh Tú", p.FullName)
	assert.NotEmpty(t, p.Headline)
}

func TestGetProjectsServesDefaults(t *testing.T) {
	r := newTestRouter(t)

	rec := do(t, r, http.MethodGet, "/api/sections/projects", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var cards []section.ProjectCard
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &cards))
	require.Len(t, cards, 2)
	require.NotNil(t, cards[0].LinkDetails)
	assert.Equal(t, "Open Google Drive", cards[0].LinkDetails.Label)
	assert.Nil(t, cards[1].LinkDetails)
}

func TestExperienceTabRoundTrip(t *testing.T) {
	r := newTestRouter(t)

	rec := do(t, r, http.MethodPost, "/api/sections/experience/tab", map[string]string{"tab": "certs"})
	require.Equal(t, http.StatusOK, rec.Code)

	var v section.ExperienceView
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v))
	assert.Equal(t, bus.CategoryCerts, v.ActiveTab)
}

func TestExperienceTabRejectsUnknownToken(t *testing.T) {
	r := newTestRouter(t)

	rec := do(t, r, http.MethodPost, "/api/sections/experience/tab", map[string]string{"tab": "projects"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestExperienceToggleRequiresID(t *testing.T) {
	r := newTestRouter(t)

	rec := do(t, r, http.MethodPost, "/api/sections/experience/toggle", map[string]string{"id": ""})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestExperienceFilterRejectsUnknownLabel(t *testing.T) {
	r := newTestRouter(t)

	rec := do(t, r, http.MethodPost, "/api/sections/experience/filter", map[string]string{"filter": "Diplomas"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestExperienceModalToggle(t *testing.T) {
	r := newTestRouter(t)

	rec := do(t, r, http.MethodPost, "/api/sections/experience/modal", map[string]bool{"open": true})
	require.Equal(t, http.StatusOK, rec.Code)

	var v section.ExperienceView
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v))
	assert.True(t, v.ShowAll)
}

func TestNavExperienceTabReachesExperienceSection(t *testing.T) {
	r := newTestRouter(t)

	rec := do(t, r, http.MethodPost, "/api/nav/experience-tab", map[string]string{"tab": "volunteer"})
	require.Equal(t, http.StatusOK, rec.Code)

	rec = do(t, r, http.MethodGet, "/api/sections/experience", nil)
	var v section.ExperienceView
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v))
	assert.Equal(t, bus.CategoryVolunteer, v.ActiveTab)
}

func TestNavScrollAndMenu(t *testing.T) {
	r := newTestRouter(t)

	rec := do(t, r, http.MethodPost, "/api/nav/scroll", map[string]int{"y": 120})
	require.Equal(t, http.StatusOK, rec.Code)
	var v section.NavView
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v))
	assert.True(t, v.Scrolled)

	rec = do(t, r, http.MethodPost, "/api/nav/menu", map[string]bool{"open": true})
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v))
	assert.True(t, v.MenuOpen)
}

func TestChatMissingKeyFallback(t *testing.T) {
	r := newTestRouter(t)

	rec := do(t, r, http.MethodPost, "/api/chat", map[string]string{"message": "hi"})
	require.Equal(t, http.StatusOK, rec.Code)

	var reply models.ChatMessage
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &reply))
	assert.Equal(t, assistant.MsgMissingKey, reply.Text)

	rec = do(t, r, http.MethodGet, "/api/chat", nil)
	var v section.ChatView
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v))
	assert.Len(t, v.Messages, 3)
}

func TestChatRejectsBlankMessage(t *testing.T) {
	r := newTestRouter(t)

	rec := do(t, r, http.MethodPost, "/api/chat", map[string]string{"message": "  "})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestContactRejectsIncompleteSubmission(t *testing.T) {
	r := newTestRouter(t)

	rec := do(t, r, http.MethodPost, "/api/contact", map[string]string{"user_name": "Jane"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestBadJSONBodyIsRejected(t *testing.T) {
	r := newTestRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/api/nav/scroll", bytes.NewBufferString("{"))
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
