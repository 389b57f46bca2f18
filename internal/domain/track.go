// Package domain defines the core Ritual types: tracks, drills, tasks,
// badges, and the user progress aggregate. The types here carry no
// behavior beyond pure derivations — services in internal/app own all
// state transitions.
package domain

// TrackID identifies one of the four built-in training tracks.
type TrackID string

const (
	TrackFocus TrackID = "focus"
	TrackBody  TrackID = "body"
	TrackMind  TrackID = "mind"
	TrackOrder TrackID = "order"
)

// AllTrackIDs lists every track in display order.
func AllTrackIDs() []TrackID {
	return []TrackID{TrackFocus, TrackBody, TrackMind, TrackOrder}
}

// Track is a thematic grouping of drills. Immutable, defined in the catalog.
type Track struct {
	ID                   TrackID  `json:"id"`
	Title                string   `json:"title"`
	Subtitle             string   `json:"subtitle"`
	Description          string   `json:"description"`
	Icon                 string   `json:"icon"`
	AccentColorName      string   `json:"accent_color_name"`
	SecondaryAccentName  string   `json:"secondary_accent_name"`
	RecommendedDrillIDs  []string `json:"recommended_drill_ids"`
}
