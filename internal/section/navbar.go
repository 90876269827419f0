package section

import (
	"fmt"
	"sync"

	"github.com/tutruong-dev/ba-portfolio-server/internal/bus"
)

// scrollThreshold is the scroll offset past which the navbar switches to its
// compact style.
const scrollThreshold = 50

// Navbar presents the navigation chrome: the scroll-derived style flag and
// the mobile-menu/dropdown visibility. Picking an experience sub-link is the
// one action that crosses sections, via the signal bus.
type Navbar struct {
	mu           sync.Mutex
	bus          *bus.Bus
	scrolled     bool
	menuOpen     bool
	dropdownOpen bool
}

// NavView is the navbar snapshot.
type NavView struct {
	Scrolled     bool `json:"scrolled"`
	MenuOpen     bool `json:"menu_open"`
	DropdownOpen bool `json:"dropdown_open"`
}

func NewNavbar(b *bus.Bus) *Navbar {
	return &Navbar{bus: b}
}

// HandleScroll updates the style flag from the current scroll offset.
func (n *Navbar) HandleScroll(y int) {
	n.mu.Lock()
	n.scrolled = y > scrollThreshold
	n.mu.Unlock()
}

func (n *Navbar) SetMenuOpen(open bool) {
	n.mu.Lock()
	n.menuOpen = open
	if !open {
		n.dropdownOpen = false
	}
	n.mu.Unlock()
}

func (n *Navbar) SetDropdownOpen(open bool) {
	n.mu.Lock()
	n.dropdownOpen = open
	n.mu.Unlock()
}

// SelectExperienceTab publishes the chosen category on the bus and closes
// the menus. Fire-and-forget: whether anyone is mounted to receive it is not
// the navbar's concern.
func (n *Navbar) SelectExperienceTab(c bus.Category) error {
	if !bus.Valid(c) {
		return fmt.Errorf("unknown experience tab %q", c)
	}

	n.mu.Lock()
	n.dropdownOpen = false
	n.menuOpen = false
	n.mu.Unlock()

	n.bus.Publish(c)
	return nil
}

func (n *Navbar) Snapshot() NavView {
	n.mu.Lock()
	defer n.mu.Unlock()
	return NavView{Scrolled: n.scrolled, MenuOpen: n.menuOpen, DropdownOpen: n.dropdownOpen}
}
