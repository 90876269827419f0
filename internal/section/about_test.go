package section

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tutruong-dev/ba-portfolio-server/internal/models"
)

func TestAboutEmptyStateWithoutData(t *testing.T) {
	a := NewAbout(&fakeGateway{})

	require.NoError(t, a.Refresh(context.Background()))

	v := a.Snapshot()
	assert.True(t, v.Empty)
	assert.Empty(t, v.Items)
}

func TestAboutRendersEducation(t *testing.T) {
	a := NewAbout(&fakeGateway{education: []models.Achievement{
		{
			ID:           "e1",
			Title:        "BSc Information Technology",
			Organization: "Hue University of Sciences",
			StartDate:    "2019",
			EndDate:      "2023",
			Description:  "• GPA 3.6\nThesis on process modeling",
			Type:         models.TypeEducation,
		},
	}})

	require.NoError(t, a.Refresh(context.Background()))

	v := a.Snapshot()
	assert.False(t, v.Empty)
	require.Len(t, v.Items, 1)

	item := v.Items[0]
	assert.Equal(t, "2019 - 2023", item.Date)
	require.Len(t, item.Lines, 2)
	assert.True(t, item.Lines[0].Bullet)
	assert.Equal(t, "GPA 3.6", item.Lines[0].Text)
	assert.False(t, item.Lines[1].Bullet)
}
