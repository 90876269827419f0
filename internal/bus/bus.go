// Package bus is the one cross-section coupling point outside of direct
// composition: the navbar publishes an experience category and the mounted
// Experience presenter switches its active tab. Delivery is synchronous,
// at-most-once per publish, with no queuing for subscribers that arrive
// later.
package bus

import "sync"

// Category is the signal payload: one of the five experience tabs.
type Category string

const (
	CategoryWork      Category = "work"
	CategoryHard      Category = "hard"
	CategorySoft      Category = "soft"
	CategoryCerts     Category = "certs"
	CategoryVolunteer Category = "volunteer"
)

// Categories lists the valid tokens in tab display order.
var Categories = []Category{CategoryWork, CategoryHard, CategorySoft, CategoryCerts, CategoryVolunteer}

// Valid reports whether c is one of the five known tokens.
func Valid(c Category) bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

// Bus is an explicit subscription registry. Subscribers register a callback
// and hold the returned cancel to unregister; publishes reach only the
// subscribers present at publish time.
type Bus struct {
	mu   sync.Mutex
	next int
	subs map[int]func(Category)
}

func New() *Bus {
	return &Bus{subs: make(map[int]func(Category))}
}

// Subscribe registers fn and returns its cancel. Cancel is idempotent.
func (b *Bus) Subscribe(fn func(Category)) (cancel func()) {
	b.mu.Lock()
	id := b.next
	b.next++
	b.subs[id] = fn
	b.mu.Unlock()

	return func() {
		b.mu.Lock()
		delete(b.subs, id)
		b.mu.Unlock()
	}
}

// Publish delivers c to every current subscriber, synchronously. Callbacks
// run outside the bus lock so a subscriber may cancel itself or publish.
func (b *Bus) Publish(c Category) {
	b.mu.Lock()
	fns := make([]func(Category), 0, len(b.subs))
	for _, fn := range b.subs {
		fns = append(fns, fn)
	}
	b.mu.Unlock()

	for _, fn := range fns {
		fn(c)
	}
}
