package models

// Folder is a named grouping of notes. Folders are read-only for the client
// core; their management lives elsewhere.
type Folder struct {
	ID         int64    `json:"id" yaml:"id"`
	Name       string   `json:"name" yaml:"name"`
	Subfolders []string `json:"subfolders,omitempty" yaml:"subfolders,omitempty"`
	Icon       string   `json:"icon,omitempty" yaml:"icon,omitempty"`
	Color      string   `json:"color,omitempty" yaml:"color,omitempty"`
}

// Tag is a named label. Notes reference tags by name, not by ID.
type Tag struct {
	ID          int64  `json:"id" yaml:"id"`
	Name        string `json:"name" yaml:"name"`
	Color       string `json:"color" yaml:"color"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
}
