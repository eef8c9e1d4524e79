package view

import "fmt"

type sortKind int

const (
	sortDate sortKind = iota
	sortTitle
	sortFolder
)

// SortKey orders notes within a pin partition. Only the three exported
// values exist; the zero value is SortByDate.
type SortKey struct {
	kind sortKind
}

var (
	// SortByDate puts the most recently updated notes first.
	SortByDate = SortKey{kind: sortDate}
	// SortByTitle orders titles alphabetically.
	SortByTitle = SortKey{kind: sortTitle}
	// SortByFolder orders folder names alphabetically.
	SortByFolder = SortKey{kind: sortFolder}
)

// SortKeys lists every sort key in menu order.
var SortKeys = []SortKey{SortByDate, SortByTitle, SortByFolder}

// ParseSortKey reads "date", "title" or "folder".
func ParseSortKey(s string) (SortKey, error) {
	switch s {
	case "date":
		return SortByDate, nil
	case "title":
		return SortByTitle, nil
	case "folder":
		return SortByFolder, nil
	default:
		return SortKey{}, fmt.Errorf("%w: %q", ErrInvalidSortKey, s)
	}
}

func (k SortKey) String() string {
	switch k.kind {
	case sortTitle:
		return "title"
	case sortFolder:
		return "folder"
	default:
		return "date"
	}
}
