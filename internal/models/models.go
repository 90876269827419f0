package models

// Profile is the singleton identity record for the portfolio subject.
// It is overlaid onto the static defaults field by field; empty fetched
// fields keep the default value.
type Profile struct {
	FullName    string `db:"full_name" json:"full_name"`
	Headline    string `db:"headline" json:"headline"`
	ShortBio    string `db:"short_bio" json:"short_bio"`
	LongBio     string `db:"long_bio" json:"long_bio"`
	AvatarURL   string `db:"avatar_url" json:"avatar_url"`
	ResumeURL   string `db:"resume_url" json:"resume_url,omitempty"`
	Email       string `db:"email" json:"email"`
	Phone       string `db:"phone" json:"phone,omitempty"`
	Location    string `db:"location" json:"location,omitempty"`
	LinkedinURL string `db:"linkedin_url" json:"linkedin_url,omitempty"`
	GithubURL   string `db:"github_url" json:"github_url,omitempty"`
}

// AchievementType partitions the experiences table. Every row belongs to
// exactly one type.
type AchievementType string

const (
	TypeWork          AchievementType = "work"
	TypeEducation     AchievementType = "education"
	TypeCertification AchievementType = "certification"
	TypeVolunteer     AchievementType = "volunteer"
)

// Achievement is one row of the experiences table: a job, a degree, a
// certification or a volunteer role. The display date string is derived
// from StartDate/EndDate, never stored.
type Achievement struct {
	ID           string          `db:"id" json:"id"`
	Title        string          `db:"title" json:"title"`
	Organization string          `db:"organization" json:"organization"`
	StartDate    string          `db:"start_date" json:"start_date"`
	EndDate      string          `db:"end_date" json:"end_date,omitempty"`
	Description  string          `db:"description" json:"description"`
	IconName     string          `db:"icon_name" json:"icon_name,omitempty"`
	Type         AchievementType `db:"type" json:"type"`
	Subtype      string          `db:"subtype" json:"subtype"` // Certification | Award | Academic | Scholarship | Extracurricular
	ImageURL     string          `db:"image_url" json:"image_url,omitempty"`
}

// SkillCategory partitions skills into the hard/soft skill views.
type SkillCategory string

const (
	SkillTechnical SkillCategory = "technical"
	SkillSoft      SkillCategory = "soft"
	SkillTool      SkillCategory = "tool"
)

// Skill is one row of the skills table. Level is a 0-100 percentage for
// the progress bar.
type Skill struct {
	ID          string        `db:"id" json:"id,omitempty"`
	Name        string        `db:"name" json:"name"`
	Level       int           `db:"level" json:"level"`
	Category    SkillCategory `db:"category" json:"category"`
	Description string        `db:"description" json:"description,omitempty"`
	IconName    string        `db:"icon_name" json:"icon_name,omitempty"`
}

// Project is one row of the projects table.
type Project struct {
	ID          string   `db:"id" json:"id"`
	Title       string   `db:"title" json:"title"`
	Role        string   `db:"role" json:"role"`
	Description string   `db:"description" json:"description"`
	Tools       []string `db:"tools" json:"tools"`
	Image       string   `db:"image_url" json:"image"`
	Link        string   `db:"link" json:"link,omitempty"`
}

// ChatSender identifies who produced a chat message.
type ChatSender string

const (
	SenderUser      ChatSender = "user"
	SenderAssistant ChatSender = "assistant"
)

// ChatMessage is one entry of the chat widget's append-only transcript.
// IDs are monotonic within a session; nothing is persisted.
type ChatMessage struct {
	ID     int64      `json:"id"`
	Text   string     `json:"text"`
	Sender ChatSender `json:"sender"`
}
