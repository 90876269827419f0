// internal/app/app.go
package app

import (
	"context"
	"log"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/tutruong-dev/ba-portfolio-server/internal/assistant"
	"github.com/tutruong-dev/ba-portfolio-server/internal/bus"
	"github.com/tutruong-dev/ba-portfolio-server/internal/config"
	"github.com/tutruong-dev/ba-portfolio-server/internal/mailer"
	"github.com/tutruong-dev/ba-portfolio-server/internal/section"
	"github.com/tutruong-dev/ba-portfolio-server/internal/store"
)

// App owns the data gateway, the section presenters and the outbound
// bridges, and mounts everything before the server starts serving.
type App struct {
	Gateway store.Gateway
	Bus     *bus.Bus

	Hero       *section.Hero
	About      *section.About
	Experience *section.Experience
	Projects   *section.Projects
	Contact    *section.Contact
	Navbar     *section.Navbar
	Chat       *section.Chat

	Server *Server

	gemini *assistant.Gemini
}

func NewApp(ctx context.Context, cfg *config.Config) (*App, error) {
	appCtx, cancel := context.WithTimeout(ctx, 5*time.Minute)
	defer cancel()

	gw := store.New(appCtx, cfg.DatabaseURL)
	if gw.Configured() {
		log.Println("Database gateway initialized.")
	} else {
		log.Println("No database configured; sections will serve built-in defaults.")
	}

	var gemini *assistant.Gemini
	if cfg.GeminiAPIKey != "" {
		g, err := assistant.NewGemini(appCtx, cfg.GeminiAPIKey, cfg.GenModel)
		if err != nil {
			log.Printf("assistant disabled: %v", err)
		} else {
			gemini = g
		}
	}
	var provider assistant.Provider
	if gemini != nil {
		provider = gemini
	}
	bridge := assistant.NewBridge(provider)

	mail := mailer.New(cfg.EmailJSServiceID, cfg.EmailJSTemplateID, cfg.EmailJSPublicKey)

	b := bus.New()

	a := &App{
		Gateway:    gw,
		Bus:        b,
		Hero:       section.NewHero(gw),
		About:      section.NewAbout(gw),
		Experience: section.NewExperience(gw, b),
		Projects:   section.NewProjects(gw),
		Contact:    section.NewContact(gw, mail),
		Navbar:     section.NewNavbar(b),
		Chat:       section.NewChat(bridge),
		gemini:     gemini,
	}

	if err := a.warmUp(appCtx); err != nil {
		// Presenters keep their defaults on a failed warm-up; the site
		// still serves.
		log.Printf("warm-up: %v", err)
	}

	a.Experience.Mount(ctx)

	a.Server = NewServer(cfg, a)
	return a, nil
}

// warmUp loads every section's first snapshot concurrently so the SPA's
// initial paint never waits on the database.
func (a *App) warmUp(ctx context.Context) error {
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error { return a.Hero.Refresh(ctx) })
	g.Go(func() error { return a.About.Refresh(ctx) })
	g.Go(func() error { return a.Experience.Refresh(ctx) })
	g.Go(func() error { return a.Projects.Refresh(ctx) })
	g.Go(func() error { return a.Contact.Refresh(ctx) })
	return g.Wait()
}

func (a *App) Close() {
	a.Experience.Unmount()
	if a.gemini != nil {
		_ = a.gemini.Close()
	}
	if a.Gateway != nil {
		a.Gateway.Close()
	}
}
