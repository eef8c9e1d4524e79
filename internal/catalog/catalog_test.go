package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/MKhiriev/go-note-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	c := Default()

	require.Len(t, c.Folders(), 4)
	require.Len(t, c.Tags(), 8)

	name, ok := c.FolderName(2)
	assert.True(t, ok)
	assert.Equal(t, "Projects", name)

	name, ok = c.TagName(8)
	assert.True(t, ok)
	assert.Equal(t, "Learning", name)

	_, ok = c.FolderName(99)
	assert.False(t, ok)
	_, ok = c.TagName(0)
	assert.False(t, ok)

	color, ok := c.TagColor("Work")
	assert.True(t, ok)
	assert.Equal(t, "#B8E8D2", color)
}

func TestCatalog_ReturnsCopies(t *testing.T) {
	c := Default()

	folders := c.Folders()
	folders[0].Name = "changed"
	folders[0].Subfolders[0] = "changed"

	name, _ := c.FolderName(1)
	assert.Equal(t, "Journal", name)
	assert.Equal(t, "Daily", c.Folders()[0].Subfolders[0])
}

func TestNew_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		folders []models.Folder
		tags    []models.Tag
	}{
		{"blank folder name", []models.Folder{{ID: 1, Name: " "}}, nil},
		{"duplicate folder id", []models.Folder{{ID: 1, Name: "a"}, {ID: 1, Name: "b"}}, nil},
		{"blank tag name", nil, []models.Tag{{ID: 1}}},
		{"duplicate tag id", nil, []models.Tag{{ID: 2, Name: "a"}, {ID: 2, Name: "b"}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.folders, tt.tags)
			assert.ErrorIs(t, err, ErrInvalidCatalog)
		})
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	content := `folders:
  - id: 10
    name: Recipes
    icon: Pizza
    subfolders: [Breakfast, Dinner]
tags:
  - id: 3
    name: Quick
    color: "#FFDFE5"
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	c, err := LoadFile(path)

	require.NoError(t, err)
	assert.Equal(t, []models.Folder{{ID: 10, Name: "Recipes", Icon: "Pizza", Subfolders: []string{"Breakfast", "Dinner"}}}, c.Folders())
	name, ok := c.TagName(3)
	assert.True(t, ok)
	assert.Equal(t, "Quick", name)
}

func TestLoadFile_EmptyPathIsDefault(t *testing.T) {
	c, err := LoadFile("")
	require.NoError(t, err)
	assert.Len(t, c.Folders(), 4)
}

func TestLoadFile_Errors(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, ErrReadCatalog)

	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("folders: {not: [a list"), 0o600))
	_, err = LoadFile(path)
	assert.ErrorIs(t, err, ErrInvalidCatalog)
}
