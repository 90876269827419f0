package section

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/tutruong-dev/ba-portfolio-server/internal/content"
	"github.com/tutruong-dev/ba-portfolio-server/internal/mailer"
	"github.com/tutruong-dev/ba-portfolio-server/internal/store"
)

// Status is the contact form's submission state machine.
type Status string

const (
	StatusIdle    Status = "idle"
	StatusSending Status = "sending"
	StatusSuccess Status = "success"
	StatusError   Status = "error"
)

// successRevertDelay is how long the success indicator shows before the form
// returns to idle.
const successRevertDelay = 5 * time.Second

// ContactInfo is the reach-me block, per-field defaulted from the profile
// defaults.
type ContactInfo struct {
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Location string `json:"location"`
	LinkedIn string `json:"linkedin"`
	GitHub   string `json:"github"`
}

// ContactView is the section snapshot: contact info, current form field
// values and the submission status.
type ContactView struct {
	Info   ContactInfo       `json:"info"`
	Form   mailer.Submission `json:"form"`
	Status Status            `json:"status"`
}

// Contact presents the contact section and owns the form lifecycle: one
// mailer attempt per submit, success clears the fields and auto-reverts to
// idle, failure keeps them and stays on error until the next attempt.
type Contact struct {
	mu      sync.Mutex
	gw      store.Gateway
	mailer  *mailer.Client
	gen     int
	mounted bool

	info        ContactInfo
	form        mailer.Submission
	status      Status
	revertDelay time.Duration
	revertTimer *time.Timer

	validate *validator.Validate
}

func NewContact(gw store.Gateway, m *mailer.Client) *Contact {
	return &Contact{
		gw:     gw,
		mailer: m,
		info: ContactInfo{
			Email:    "hello@ba-portfolio.com",
			Phone:    "+1 (555) 123-4567",
			Location: "Ho Chi Minh City, Vietnam",
			LinkedIn: "#",
			GitHub:   "#",
		},
		status:      StatusIdle,
		revertDelay: successRevertDelay,
		validate:    validator.New(),
	}
}

func (c *Contact) Mount(ctx context.Context) {
	c.mu.Lock()
	if c.mounted {
		c.mu.Unlock()
		return
	}
	c.mounted = true
	c.gen++
	gen := c.gen
	c.mu.Unlock()

	go func() {
		if err := c.refresh(ctx, gen); err != nil {
			log.Printf("contact: fetch failed, keeping defaults: %v", err)
		}
	}()
}

func (c *Contact) Unmount() {
	c.mu.Lock()
	if !c.mounted {
		c.mu.Unlock()
		return
	}
	c.mounted = false
	c.gen++
	c.mu.Unlock()
}

func (c *Contact) Refresh(ctx context.Context) error {
	c.mu.Lock()
	gen := c.gen
	c.mu.Unlock()
	return c.refresh(ctx, gen)
}

func (c *Contact) refresh(ctx context.Context, gen int) error {
	fetched, err := c.gw.FetchProfile(ctx)
	if err != nil {
		return err
	}
	if fetched == nil {
		return nil
	}

	merged := content.OverlayProfile(content.DefaultProfile(), *fetched)

	c.mu.Lock()
	defer c.mu.Unlock()
	if gen != c.gen {
		return nil
	}
	c.info = ContactInfo{
		Email:    pick(merged.Email, c.info.Email),
		Phone:    pick(merged.Phone, c.info.Phone),
		Location: pick(merged.Location, c.info.Location),
		LinkedIn: pick(merged.LinkedinURL, c.info.LinkedIn),
		GitHub:   pick(merged.GithubURL, c.info.GitHub),
	}
	return nil
}

// Submit validates presence, runs the single mailer attempt and returns the
// resulting status. The success indicator self-reverts to idle after the
// configured delay; an error state persists until the next submit.
func (c *Contact) Submit(ctx context.Context, s mailer.Submission) (Status, error) {
	if err := c.validate.Struct(s); err != nil {
		return c.CurrentStatus(), err
	}

	c.mu.Lock()
	if c.revertTimer != nil {
		c.revertTimer.Stop()
		c.revertTimer = nil
	}
	c.form = s
	c.status = StatusSending
	c.mu.Unlock()

	sendErr := c.mailer.Send(ctx, s)

	c.mu.Lock()
	defer c.mu.Unlock()
	if sendErr != nil {
		log.Printf("contact: submission failed: %v", sendErr)
		c.status = StatusError
		return c.status, nil
	}

	c.form = mailer.Submission{}
	c.status = StatusSuccess
	c.revertTimer = time.AfterFunc(c.revertDelay, func() {
		c.mu.Lock()
		if c.status == StatusSuccess {
			c.status = StatusIdle
		}
		c.mu.Unlock()
	})
	return c.status, nil
}

// CurrentStatus reports the form state without touching it.
func (c *Contact) CurrentStatus() Status {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.status
}

func (c *Contact) Snapshot() ContactView {
	c.mu.Lock()
	defer c.mu.Unlock()
	return ContactView{Info: c.info, Form: c.form, Status: c.status}
}

func pick(fetched, def string) string {
	if fetched != "" {
		return fetched
	}
	return def
}
