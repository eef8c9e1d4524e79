package view

import (
	"fmt"
	"strconv"
	"strings"
)

type sectionKind int

const (
	sectionAll sectionKind = iota
	sectionFolder
	sectionTag
)

const (
	folderPrefix = "folder-"
	tagPrefix    = "tag-"
)

// Section selects all notes, the notes of one catalog folder or the notes
// carrying one catalog tag. The zero value is SectionAll.
type Section struct {
	kind sectionKind
	id   int64
}

// SectionAll matches every note.
var SectionAll = Section{}

// FolderSection selects notes filed in the catalog folder id.
func FolderSection(id int64) Section {
	return Section{kind: sectionFolder, id: id}
}

// TagSection selects notes carrying the catalog tag id.
func TagSection(id int64) Section {
	return Section{kind: sectionTag, id: id}
}

// ParseSection reads "all", "folder-<id>" or "tag-<id>".
func ParseSection(s string) (Section, error) {
	switch {
	case s == "all":
		return SectionAll, nil
	case strings.HasPrefix(s, folderPrefix):
		id, err := parseSectionID(s, folderPrefix)
		if err != nil {
			return Section{}, err
		}
		return FolderSection(id), nil
	case strings.HasPrefix(s, tagPrefix):
		id, err := parseSectionID(s, tagPrefix)
		if err != nil {
			return Section{}, err
		}
		return TagSection(id), nil
	default:
		return Section{}, fmt.Errorf("%w: %q", ErrInvalidSection, s)
	}
}

func parseSectionID(s, prefix string) (int64, error) {
	id, err := strconv.ParseInt(strings.TrimPrefix(s, prefix), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidSection, s)
	}
	return id, nil
}

func (s Section) IsAll() bool { return s.kind == sectionAll }

// FolderID returns the folder id of a folder section.
func (s Section) FolderID() (int64, bool) {
	return s.id, s.kind == sectionFolder
}

// TagID returns the tag id of a tag section.
func (s Section) TagID() (int64, bool) {
	return s.id, s.kind == sectionTag
}

// String returns the form accepted by ParseSection.
func (s Section) String() string {
	switch s.kind {
	case sectionFolder:
		return folderPrefix + strconv.FormatInt(s.id, 10)
	case sectionTag:
		return tagPrefix + strconv.FormatInt(s.id, 10)
	default:
		return "all"
	}
}
