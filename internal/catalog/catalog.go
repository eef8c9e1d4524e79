// Package catalog supplies the read-only folder and tag lists the note list
// resolves section selectors against.
package catalog

import (
	"errors"
	"fmt"
	"os"
	"slices"
	"strings"

	"github.com/MKhiriev/go-note-keeper/models"
	"gopkg.in/yaml.v3"
)

var (
	ErrInvalidCatalog = errors.New("invalid catalog")
	ErrReadCatalog    = errors.New("failed to read catalog file")
)

// Catalog is an immutable folder and tag lookup.
type Catalog struct {
	folders []models.Folder
	tags    []models.Tag

	folderByID map[int64]int
	tagByID    map[int64]int
}

// New validates folders and tags and builds a Catalog over copies of them.
// IDs must be unique per kind and names non-blank.
func New(folders []models.Folder, tags []models.Tag) (*Catalog, error) {
	c := &Catalog{
		folders:    make([]models.Folder, 0, len(folders)),
		tags:       make([]models.Tag, 0, len(tags)),
		folderByID: make(map[int64]int, len(folders)),
		tagByID:    make(map[int64]int, len(tags)),
	}

	for _, f := range folders {
		if strings.TrimSpace(f.Name) == "" {
			return nil, fmt.Errorf("%w: folder %d has no name", ErrInvalidCatalog, f.ID)
		}
		if _, dup := c.folderByID[f.ID]; dup {
			return nil, fmt.Errorf("%w: duplicate folder id %d", ErrInvalidCatalog, f.ID)
		}
		f.Subfolders = slices.Clone(f.Subfolders)
		c.folderByID[f.ID] = len(c.folders)
		c.folders = append(c.folders, f)
	}

	for _, t := range tags {
		if strings.TrimSpace(t.Name) == "" {
			return nil, fmt.Errorf("%w: tag %d has no name", ErrInvalidCatalog, t.ID)
		}
		if _, dup := c.tagByID[t.ID]; dup {
			return nil, fmt.Errorf("%w: duplicate tag id %d", ErrInvalidCatalog, t.ID)
		}
		c.tagByID[t.ID] = len(c.tags)
		c.tags = append(c.tags, t)
	}

	return c, nil
}

// Folders returns the folders in catalog order.
func (c *Catalog) Folders() []models.Folder {
	out := make([]models.Folder, len(c.folders))
	for i, f := range c.folders {
		f.Subfolders = slices.Clone(f.Subfolders)
		out[i] = f
	}
	return out
}

// Tags returns the tags in catalog order.
func (c *Catalog) Tags() []models.Tag {
	return slices.Clone(c.tags)
}

func (c *Catalog) FolderName(id int64) (string, bool) {
	i, ok := c.folderByID[id]
	if !ok {
		return "", false
	}
	return c.folders[i].Name, true
}

func (c *Catalog) TagName(id int64) (string, bool) {
	i, ok := c.tagByID[id]
	if !ok {
		return "", false
	}
	return c.tags[i].Name, true
}

// TagColor returns the display color of the tag called name.
func (c *Catalog) TagColor(name string) (string, bool) {
	for _, t := range c.tags {
		if t.Name == name {
			return t.Color, true
		}
	}
	return "", false
}

type catalogFile struct {
	Folders []models.Folder `yaml:"folders"`
	Tags    []models.Tag    `yaml:"tags"`
}

// LoadFile reads a YAML catalog with top-level "folders" and "tags" lists.
// An empty path yields the Default catalog.
func LoadFile(path string) (*Catalog, error) {
	if path == "" {
		return Default(), nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrReadCatalog, err)
	}

	var file catalogFile
	if err = yaml.Unmarshal(raw, &file); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidCatalog, err)
	}

	return New(file.Folders, file.Tags)
}
