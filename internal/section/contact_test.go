package section

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tutruong-dev/ba-portfolio-server/internal/mailer"
	"github.com/tutruong-dev/ba-portfolio-server/internal/models"
)

func testMailer(t *testing.T, status int, hits *int) *mailer.Client {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if hits != nil {
			*hits++
		}
		w.WriteHeader(status)
	}))
	t.Cleanup(srv.Close)

	m := mailer.New("svc", "tpl", "key")
	m.BaseURL = srv.URL
	return m
}

func TestContactDefaultInfo(t *testing.T) {
	c := NewContact(&fakeGateway{}, testMailer(t, http.StatusOK, nil))

	require.NoError(t, c.Refresh(context.Background()))

	info := c.Snapshot().Info
	assert.Equal(t, "tutruong.dev@gmail.com", info.Email, "profile default overlays the section default")
	assert.Equal(t, "+1 (555) 123-4567", info.Phone, "no phone anywhere keeps the section default")
	assert.Equal(t, "Ho Chi Minh City, Vietnam", info.Location)
}

func TestContactInfoFromProfile(t *testing.T) {
	c := NewContact(&fakeGateway{profile: &models.Profile{
		Email: "tu@example.com",
		Phone: "+84 123 456 789",
	}}, testMailer(t, http.StatusOK, nil))

	require.NoError(t, c.Refresh(context.Background()))

	info := c.Snapshot().Info
	assert.Equal(t, "tu@example.com", info.Email)
	assert.Equal(t, "+84 123 456 789", info.Phone)
}

func TestSubmitSuccessClearsFormAndReverts(t *testing.T) {
	c := NewContact(&fakeGateway{}, testMailer(t, http.StatusOK, nil))
	c.revertDelay = 20 * time.Millisecond

	status, err := c.Submit(context.Background(), mailer.Submission{
		Name: "Jane", Email: "jane@example.com", Message: "Hi",
	})

	require.NoError(t, err)
	assert.Equal(t, StatusSuccess, status)

	v := c.Snapshot()
	assert.Equal(t, mailer.Submission{}, v.Form, "success clears all three fields")

	require.Eventually(t, func() bool {
		return c.CurrentStatus() == StatusIdle
	}, time.Second, 5*time.Millisecond, "success indicator self-reverts to idle")
}

func TestSubmitFailureKeepsFormAndStaysOnError(t *testing.T) {
	c := NewContact(&fakeGateway{}, testMailer(t, http.StatusInternalServerError, nil))
	c.revertDelay = 20 * time.Millisecond

	s := mailer.Submission{Name: "Jane", Email: "jane@example.com", Message: "Hi"}
	status, err := c.Submit(context.Background(), s)

	require.NoError(t, err, "a failed delivery is a status, not a caller error")
	assert.Equal(t, StatusError, status)

	v := c.Snapshot()
	assert.Equal(t, s, v.Form, "failure leaves the fields untouched")

	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, StatusError, c.CurrentStatus(), "error state persists until the next attempt")
}

func TestSubmitValidatesPresence(t *testing.T) {
	hits := 0
	c := NewContact(&fakeGateway{}, testMailer(t, http.StatusOK, &hits))

	tests := []struct {
		name string
		s    mailer.Submission
	}{
		{"missing name", mailer.Submission{Email: "a@b.c", Message: "m"}},
		{"missing email", mailer.Submission{Name: "a", Message: "m"}},
		{"missing message", mailer.Submission{Name: "a", Email: "a@b.c"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := c.Submit(context.Background(), tt.s)
			assert.Error(t, err)
		})
	}

	assert.Zero(t, hits, "invalid submissions never reach the mailer")
	assert.Equal(t, StatusIdle, c.CurrentStatus())
}

func TestSubmitErrorThenSuccess(t *testing.T) {
	fail := testMailer(t, http.StatusBadGateway, nil)
	c := NewContact(&fakeGateway{}, fail)
	c.revertDelay = time.Hour // keep success visible for the assertion

	s := mailer.Submission{Name: "Jane", Email: "jane@example.com", Message: "Hi"}

	status, err := c.Submit(context.Background(), s)
	require.NoError(t, err)
	require.Equal(t, StatusError, status)

	c.mailer = testMailer(t, http.StatusOK, nil)

	status, err = c.Submit(context.Background(), s)
	require.NoError(t, err)
	assert.Equal(t, StatusSuccess, status)
}
