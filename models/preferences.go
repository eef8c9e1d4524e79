package models

// View modes offered by the note list.
const (
	ViewModeGrid    = "grid"
	ViewModeList    = "list"
	ViewModeCompact = "compact"
)

// Preferences are the per-user list settings that survive restarts.
// SortKey and Section hold their textual forms; the view package parses them.
type Preferences struct {
	UserID   string
	SortKey  string
	Section  string
	ViewMode string
}

// DefaultPreferences returns the settings used for a user that has never
// saved any.
func DefaultPreferences(userID string) Preferences {
	return Preferences{
		UserID:   userID,
		SortKey:  "date",
		Section:  "all",
		ViewMode: ViewModeList,
	}
}
