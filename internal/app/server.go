package app

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/tutruong-dev/ba-portfolio-server/internal/api/handlers"
	"github.com/tutruong-dev/ba-portfolio-server/internal/config"
)

// Server wraps the HTTP server instance and its handlers.
type Server struct {
	httpServer *http.Server
}

// NewServer builds and wires all routes.
func NewServer(cfg *config.Config, a *App) *Server {
	sections := handlers.NewSectionsHandler(a.Hero, a.About, a.Experience, a.Projects, a.Contact)
	navHandler := handlers.NewNavHandler(a.Navbar)
	chatHandler := handlers.NewChatHandler(a.Chat)
	contactHandler := handlers.NewContactHandler(a.Contact)

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{cfg.CORSOrigin},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
	}))

	// Serve the built SPA from the web directory
	fileServer := http.FileServer(http.Dir("./web"))
	r.Handle("/*", fileServer)

	// API routes
	r.Route("/api", func(api chi.Router) {
		api.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusOK)
			_, _ = w.Write([]byte(`{"status":"ok"}`))
		})

		api.Route("/sections", func(s chi.Router) {
			s.Get("/hero", sections.GetHero)
			s.Get("/about", sections.GetAbout)
			s.Get("/experience", sections.GetExperience)
			s.Get("/projects", sections.GetProjects)
			s.Get("/contact", sections.GetContact)

			s.Post("/experience/tab", sections.SetExperienceTab)
			s.Post("/experience/toggle", sections.ToggleExperienceItem)
			s.Post("/experience/filter", sections.SetCertFilter)
			s.Post("/experience/modal", sections.SetExperienceModal)
		})

		api.Route("/nav", func(n chi.Router) {
			n.Get("/", navHandler.Get)
			n.Post("/scroll", navHandler.Scroll)
			n.Post("/menu", navHandler.SetMenu)
			n.Post("/dropdown", navHandler.SetDropdown)
			n.Post("/experience-tab", navHandler.SelectExperienceTab)
		})

		api.Route("/chat", func(c chi.Router) {
			c.Get("/", chatHandler.GetMessages)
			c.Post("/", chatHandler.PostMessage)
			c.Post("/open", chatHandler.SetOpen)
		})

		api.Post("/contact", contactHandler.Submit)
	})

	httpSrv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}

	return &Server{httpServer: httpSrv}
}

// Start runs the HTTP server.
func (s *Server) Start() {
	log.Printf("HTTP server listening on %s", s.httpServer.Addr)
	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server error: %v", err)
	}
}

// Shutdown gracefully stops the server.
func (s *Server) Shutdown(ctx context.Context) error {
	log.Println("Shutting down HTTP server...")
	return s.httpServer.Shutdown(ctx)
}
