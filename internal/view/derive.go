// Package view holds the pure derivations that turn fetched records into
// display-ready shapes. Nothing in here touches the network or holds state.
package view

import (
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/tutruong-dev/ba-portfolio-server/internal/models"
)

var (
	yearRe = regexp.MustCompile(`\d{4}`)
	// Split on any newline variant, including the literal "\n" token that
	// shows up when descriptions were entered with escaped newlines.
	lineBreakRe = regexp.MustCompile(`\\n|\r\n|\r|\n`)
	bulletRe    = regexp.MustCompile(`^[•\-*]\s*`)
)

// DateRange builds the display date string: start plus " - " end when an
// end date exists.
func DateRange(start, end string) string {
	if end == "" {
		return start
	}
	return start + " - " + end
}

// Year extracts the first 4-digit year token from a date string. Strings
// without one sort as year 0, i.e. last.
func Year(date string) int {
	m := yearRe.FindString(date)
	if m == "" {
		return 0
	}
	n, err := strconv.Atoi(m)
	if err != nil {
		return 0
	}
	return n
}

// SortByRecency returns a copy of items ordered by descending year of their
// derived date string. The sort is stable so same-year items keep their
// fetched order.
func SortByRecency(items []models.Achievement) []models.Achievement {
	out := make([]models.Achievement, len(items))
	copy(out, items)
	sort.SliceStable(out, func(i, j int) bool {
		return Year(DateRange(out[i].StartDate, out[i].EndDate)) > Year(DateRange(out[j].StartDate, out[j].EndDate))
	})
	return out
}

// Line is one segmented line of a description.
type Line struct {
	Text   string `json:"text"`
	Bullet bool   `json:"bullet"`
}

// SegmentLines splits a description into non-blank lines and classifies each
// as a bullet ("•", "-" or "*" prefix, stripped before display) or a plain
// paragraph.
func SegmentLines(desc string) []Line {
	var out []Line
	for _, raw := range lineBreakRe.Split(desc, -1) {
		trimmed := strings.TrimSpace(raw)
		if trimmed == "" {
			continue
		}
		bullet := bulletRe.MatchString(trimmed)
		out = append(out, Line{
			Text:   strings.TrimSpace(bulletRe.ReplaceAllString(trimmed, "")),
			Bullet: bullet,
		})
	}
	return out
}

// OfType selects the achievements belonging to one type partition.
func OfType(items []models.Achievement, t models.AchievementType) []models.Achievement {
	var out []models.Achievement
	for _, it := range items {
		if it.Type == t {
			out = append(out, it)
		}
	}
	return out
}

// CertFilters is the closed set of certification sub-filter labels, in
// display order. "All" passes everything through.
var CertFilters = []string{"All", "Certification", "Award", "Academic", "Scholarship", "Extracurricular"}

// ValidCertFilter reports whether label belongs to the closed filter set.
func ValidCertFilter(label string) bool {
	for _, f := range CertFilters {
		if f == label {
			return true
		}
	}
	return false
}

// FilterBySubtype narrows certifications to one subtype label, with "All"
// as a pass-through.
func FilterBySubtype(items []models.Achievement, label string) []models.Achievement {
	if label == "All" {
		out := make([]models.Achievement, len(items))
		copy(out, items)
		return out
	}
	var out []models.Achievement
	for _, it := range items {
		if it.Subtype == label {
			out = append(out, it)
		}
	}
	return out
}

// LinkDetails is the derived call-to-action for a project link.
type LinkDetails struct {
	Label string `json:"label"`
	Icon  string `json:"icon"`
}

// ClassifyLink maps a project link to its label and icon key. Matching is
// case-insensitive and evaluated in a fixed priority order; the first match
// wins. The second return is false when there is no link at all.
func ClassifyLink(link string) (LinkDetails, bool) {
	if link == "" {
		return LinkDetails{}, false
	}
	lower := strings.ToLower(link)
	switch {
	case strings.Contains(lower, "drive.google.com"):
		return LinkDetails{Label: "Open Google Drive", Icon: "hard-drive"}, true
	case strings.Contains(lower, "figma.com"):
		return LinkDetails{Label: "Open Figma Design", Icon: "layout"}, true
	case strings.HasSuffix(lower, ".pdf"), strings.HasSuffix(lower, ".doc"), strings.HasSuffix(lower, ".docx"):
		return LinkDetails{Label: "View Document", Icon: "file-text"}, true
	default:
		return LinkDetails{Label: "View Project", Icon: "external-link"}, true
	}
}

// knownIcons is the closed set of icon keys the frontend can render.
// Anything outside it falls back to the caller's default instead of leaking
// a free-form string from the database into the UI.
var knownIcons = map[string]struct{}{
	"CheckCircle":   {},
	"Brain":         {},
	"Users":         {},
	"Trophy":        {},
	"Heart":         {},
	"MessageCircle": {},
	"Lightbulb":     {},
	"Layout":        {},
	"Code":          {},
	"Star":          {},
	"Award":         {},
}

// IconKey validates a stored icon name against the known set and returns
// fallback for unknown or empty names.
func IconKey(name, fallback string) string {
	if _, ok := knownIcons[name]; ok {
		return name
	}
	return fallback
}

// ClampLevel bounds a skill level to [0,100] so the progress bar never
// renders past its track.
func ClampLevel(n int) int {
	if n < 0 {
		return 0
	}
	if n > 100 {
		return 100
	}
	return n
}
