package section

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tutruong-dev/ba-portfolio-server/internal/bus"
)

func TestNavbarScrollThreshold(t *testing.T) {
	n := NewNavbar(bus.New())

	tests := []struct {
		y        int
		scrolled bool
	}{
		{0, false},
		{50, false},
		{51, true},
		{400, true},
	}

	for _, tt := range tests {
		n.HandleScroll(tt.y)
		assert.Equal(t, tt.scrolled, n.Snapshot().Scrolled, "y=%d", tt.y)
	}
}

func TestNavbarMenuAndDropdown(t *testing.T) {
	n := NewNavbar(bus.New())

	n.SetMenuOpen(true)
	n.SetDropdownOpen(true)
	v := n.Snapshot()
	assert.True(t, v.MenuOpen)
	assert.True(t, v.DropdownOpen)

	n.SetMenuOpen(false)
	v = n.Snapshot()
	assert.False(t, v.MenuOpen)
	assert.False(t, v.DropdownOpen, "closing the menu closes the dropdown with it")
}

func TestNavbarSelectExperienceTab(t *testing.T) {
	b := bus.New()
	n := NewNavbar(b)

	var got []bus.Category
	defer b.Subscribe(func(c bus.Category) { got = append(got, c) })()

	n.SetMenuOpen(true)
	n.SetDropdownOpen(true)

	require.NoError(t, n.SelectExperienceTab(bus.CategoryCerts))

	assert.Equal(t, []bus.Category{bus.CategoryCerts}, got)
	v := n.Snapshot()
	assert.False(t, v.MenuOpen)
	assert.False(t, v.DropdownOpen)
}

func TestNavbarSelectRejectsUnknownToken(t *testing.T) {
	b := bus.New()
	n := NewNavbar(b)

	calls := 0
	defer b.Subscribe(func(bus.Category) { calls++ })()

	assert.Error(t, n.SelectExperienceTab("projects"))
	assert.Zero(t, calls, "nothing is published for an invalid token")
}
