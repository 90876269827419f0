// Package content carries the static fallback records the site renders when
// the remote store is unconfigured or unreachable. Identity content always
// has a value; list content (education, experiences, skills) intentionally
// starts empty so the UI shows its loading/empty affordance instead of
// fabricated entries.
package content

import "github.com/tutruong-dev/ba-portfolio-server/internal/models"

// DefaultProfile returns the baseline identity record.
func DefaultProfile() models.Profile {
	return models.Profile{
		FullName:    "Trương Thị Minh Tú",
		Headline:    "Aspiring Business Analyst | Future Product Manager",
		ShortBio:    "A dedicated fresh graduate ready to transform academic knowledge into real-world results. I bring a proactive mindset, strong analytical foundation, and an eagerness to tackle complex business challenges.",
		LongBio:     "",
		AvatarURL:   "https://psmapgmzhykwenanwxph.supabase.co/storage/v1/object/public/portfolio/avatar-portfolio.jpg",
		Email:       "tutruong.dev@gmail.com",
		LinkedinURL: "https://www.linkedin.com/in/tutruong23/",
		GithubURL:   "https://github.com/tutruong-dev",
		// Local file served from the web dir when no resume URL is stored.
		ResumeURL: "/CV_TruongThiMinhTu_BA.pdf",
	}
}

// DefaultProjects returns the two baseline project cards.
func DefaultProjects() []models.Project {
	return []models.Project{
		{
			ID:          "p1",
			Title:       "E-commerce Requirement Analysis",
			Role:        "Lead Business Analyst (Capstone)",
			Description: "Conducted comprehensive requirement gathering for a mock local fashion brand expanding to e-commerce. Delivered BRD, SRS, and high-fidelity wireframes using Figma.",
			Tools:       []string{"Figma", "UML", "Jira", "SRS"},
			Image:       "https://picsum.photos/600/400?random=1",
			Link:        "https://drive.google.com/file/d/xyz",
		},
		{
			ID:          "p2",
			Title:       "Library Management System Optimization",
			Role:        "Process Analyst",
			Description: "Analyzed the \"As-Is\" check-out process of the university library and proposed a \"To-Be\" model reducing wait times by 30%. Modeled processes using BPMN 2.0.",
			Tools:       []string{"BPMN.io", "Visio", "Excel"},
			Image:       "https://picsum.photos/600/400?random=2",
		},
	}
}

// OverlayProfile merges a fetched profile onto the defaults field by field.
// An empty fetched field keeps the default value, uniformly for every field.
func OverlayProfile(def, fetched models.Profile) models.Profile {
	return models.Profile{
		FullName:    pick(fetched.FullName, def.FullName),
		Headline:    pick(fetched.Headline, def.Headline),
		ShortBio:    pick(fetched.ShortBio, def.ShortBio),
		LongBio:     pick(fetched.LongBio, def.LongBio),
		AvatarURL:   pick(fetched.AvatarURL, def.AvatarURL),
		ResumeURL:   pick(fetched.ResumeURL, def.ResumeURL),
		Email:       pick(fetched.Email, def.Email),
		Phone:       pick(fetched.Phone, def.Phone),
		Location:    pick(fetched.Location, def.Location),
		LinkedinURL: pick(fetched.LinkedinURL, def.LinkedinURL),
		GithubURL:   pick(fetched.GithubURL, def.GithubURL),
	}
}

func pick(fetched, def string) string {
	if fetched != "" {
		return fetched
	}
	return def
}
