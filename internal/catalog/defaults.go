package catalog

import "github.com/MKhiriev/go-note-keeper/models"

var defaultFolders = []models.Folder{
	{ID: 1, Name: "Journal", Subfolders: []string{"Daily", "Reflections", "Dreams"}, Icon: "Book", Color: "#FFC1E3"},
	{ID: 2, Name: "Projects", Subfolders: []string{"Active", "Ideas", "Archived"}, Icon: "Briefcase", Color: "#B8E8D2"},
	{ID: 3, Name: "Personal", Subfolders: []string{"Goals", "Memories", "Health", "Finance"}, Icon: "Heart", Color: "#D9C6F2"},
	{ID: 4, Name: "Resources", Subfolders: []string{"Learning", "References", "Tools"}, Icon: "Brain", Color: "#E3C5A2"},
}

var defaultTags = []models.Tag{
	{ID: 1, Name: "Inspiration", Color: "#FFC1E3", Description: "Ideas and motivation"},
	{ID: 2, Name: "Work", Color: "#B8E8D2", Description: "Work-related notes"},
	{ID: 3, Name: "Personal", Color: "#D9C6F2", Description: "Personal thoughts and memories"},
	{ID: 4, Name: "Ideas", Color: "#E3C5A2", Description: "Creative concepts and brainstorms"},
	{ID: 5, Name: "Goals", Color: "#FFDFE5", Description: "Objectives and aspirations"},
	{ID: 6, Name: "Hobbies", Color: "#B8E8D2", Description: "Leisure activities"},
	{ID: 7, Name: "Creative", Color: "#FFC1E3", Description: "Artistic and creative projects"},
	{ID: 8, Name: "Learning", Color: "#D9C6F2", Description: "Educational content"},
}

// Default returns the built-in catalog of four folders and eight tags.
func Default() *Catalog {
	c, err := New(defaultFolders, defaultTags)
	if err != nil {
		panic(err)
	}
	return c
}
