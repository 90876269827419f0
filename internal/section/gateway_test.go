package section

import (
	"context"

	"github.com/tutruong-dev/ba-portfolio-server/internal/models"
)

// fakeGateway implements store.Gateway from fixed fixtures. A non-nil err is
// returned by every fetch.
type fakeGateway struct {
	configured  bool
	profile     *models.Profile
	experiences []models.Achievement
	education   []models.Achievement
	skills      []models.Skill
	projects    []models.Project
	err         error
}

func (f *fakeGateway) Configured() bool { return f.configured }
func (f *fakeGateway) Close()           {}

func (f *fakeGateway) FetchProfile(context.Context) (*models.Profile, error) {
	return f.profile, f.err
}

func (f *fakeGateway) FetchExperiences(context.Context) ([]models.Achievement, error) {
	return f.experiences, f.err
}

func (f *fakeGateway) FetchEducation(context.Context) ([]models.Achievement, error) {
	return f.education, f.err
}

func (f *fakeGateway) FetchSkills(context.Context) ([]models.Skill, error) {
	return f.skills, f.err
}

func (f *fakeGateway) FetchProjects(context.Context) ([]models.Project, error) {
	return f.projects, f.err
}
