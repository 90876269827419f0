// Package section holds the per-section presenters: each owns one gateway
// call, its local view state, and a Snapshot of display-ready data. State
// transitions are synchronous under the presenter's mutex; fetches are the
// only suspension points. Mount bumps a generation counter and a fetch that
// finishes after Unmount (or after a remount) carries a stale generation and
// is discarded instead of touching state.
package section

import (
	"context"
	"log"
	"sync"

	"github.com/tutruong-dev/ba-portfolio-server/internal/content"
	"github.com/tutruong-dev/ba-portfolio-server/internal/models"
	"github.com/tutruong-dev/ba-portfolio-server/internal/store"
)

// Hero presents the identity banner: the default profile overlaid with
// whatever the gateway returns.
type Hero struct {
	mu      sync.Mutex
	gw      store.Gateway
	gen     int
	mounted bool
	profile models.Profile
}

func NewHero(gw store.Gateway) *Hero {
	return &Hero{
		gw:      gw,
		profile: content.DefaultProfile(),
	}
}

// Mount marks the presenter live and kicks off its one-shot fetch. A
// second Mount without an Unmount in between is a no-op.
func (h *Hero) Mount(ctx context.Context) {
	h.mu.Lock()
	if h.mounted {
		h.mu.Unlock()
		return
	}
	h.mounted = true
	h.gen++
	gen := h.gen
	h.mu.Unlock()

	go func() {
		if err := h.refresh(ctx, gen); err != nil {
			log.Printf("hero: fetch failed, keeping defaults: %v", err)
		}
	}()
}

// Unmount invalidates any in-flight fetch.
func (h *Hero) Unmount() {
	h.mu.Lock()
	if !h.mounted {
		h.mu.Unlock()
		return
	}
	h.mounted = false
	h.gen++
	h.mu.Unlock()
}

// Refresh fetches synchronously under the current generation. Used by the
// startup warm-up.
func (h *Hero) Refresh(ctx context.Context) error {
	h.mu.Lock()
	gen := h.gen
	h.mu.Unlock()
	return h.refresh(ctx, gen)
}

func (h *Hero) refresh(ctx context.Context, gen int) error {
	fetched, err := h.gw.FetchProfile(ctx)
	if err != nil {
		return err
	}
	if fetched == nil {
		return nil
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	if gen != h.gen {
		return nil // stale result, a newer mount owns the state now
	}
	h.profile = content.OverlayProfile(content.DefaultProfile(), *fetched)
	return nil
}

// Snapshot returns the current profile view.
func (h *Hero) Snapshot() models.Profile {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.profile
}
