package view

import "github.com/MKhiriev/go-note-keeper/models"

// SectionCounts holds the number of notes per sidebar entry. Folders and
// Tags are keyed by name.
type SectionCounts struct {
	All       int
	Pinned    int
	Favorites int
	Folders   map[string]int
	Tags      map[string]int
}

// Counts tallies collection. A note repeating a tag is counted once for it.
func Counts(collection []models.Note) SectionCounts {
	c := SectionCounts{
		All:     len(collection),
		Folders: make(map[string]int),
		Tags:    make(map[string]int),
	}

	for _, n := range collection {
		if n.IsPinned {
			c.Pinned++
		}
		if n.IsFavorite {
			c.Favorites++
		}
		c.Folders[n.Folder]++
		for _, tag := range models.NormalizeTags(n.Tags) {
			c.Tags[tag]++
		}
	}

	return c
}
