package view

import (
	"cmp"
	"slices"
	"strings"
	"time"

	"github.com/MKhiriev/go-note-keeper/models"
	"golang.org/x/text/cases"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Catalog resolves the ids section selectors refer to.
type Catalog interface {
	FolderName(id int64) (string, bool)
	TagName(id int64) (string, bool)
}

// Projector filters and orders note snapshots. It is safe for concurrent
// use.
type Projector struct {
	catalog Catalog
	loc     *time.Location
	lang    language.Tag
}

type Option func(*Projector)

// WithLocation sets the time zone calendar days are read in. The default
// is time.Local.
func WithLocation(loc *time.Location) Option {
	return func(p *Projector) {
		if loc != nil {
			p.loc = loc
		}
	}
}

// WithLanguage sets the collation used for title and folder ordering. The
// default is English.
func WithLanguage(tag language.Tag) Option {
	return func(p *Projector) { p.lang = tag }
}

func NewProjector(catalog Catalog, opts ...Option) *Projector {
	p := &Projector{
		catalog: catalog,
		loc:     time.Local,
		lang:    language.English,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Project returns the notes of collection that match query, section and
// date, ordered by sort with pinned notes first. The result never shares
// memory with collection.
func (p *Projector) Project(collection []models.Note, query string, section Section, date DateFilter, sort SortKey) []models.Note {
	inSection, ok := p.sectionFilter(section)
	if !ok {
		return []models.Note{}
	}

	fold := cases.Fold()
	needle := fold.String(query)

	out := make([]models.Note, 0, len(collection))
	for _, n := range collection {
		if !matchesQuery(fold, n, needle) || !inSection(n) || !date.matches(n.CreatedAt, p.loc) {
			continue
		}
		out = append(out, n.Clone())
	}

	slices.SortStableFunc(out, p.comparator(sort))
	return out
}

func matchesQuery(fold cases.Caser, n models.Note, needle string) bool {
	if needle == "" {
		return true
	}
	return strings.Contains(fold.String(n.Title), needle) ||
		strings.Contains(fold.String(n.Content), needle)
}

// sectionFilter returns false when the section names an id the catalog does
// not know; such a section matches nothing.
func (p *Projector) sectionFilter(section Section) (func(models.Note) bool, bool) {
	if id, ok := section.FolderID(); ok {
		name, known := p.lookupFolder(id)
		if !known {
			return nil, false
		}
		return func(n models.Note) bool { return n.Folder == name }, true
	}

	if id, ok := section.TagID(); ok {
		name, known := p.lookupTag(id)
		if !known {
			return nil, false
		}
		return func(n models.Note) bool { return n.HasTag(name) }, true
	}

	return func(models.Note) bool { return true }, true
}

func (p *Projector) lookupFolder(id int64) (string, bool) {
	if p.catalog == nil {
		return "", false
	}
	return p.catalog.FolderName(id)
}

func (p *Projector) lookupTag(id int64) (string, bool) {
	if p.catalog == nil {
		return "", false
	}
	return p.catalog.TagName(id)
}

func (p *Projector) comparator(sort SortKey) func(a, b models.Note) int {
	// a Collator is not safe for concurrent use
	col := collate.New(p.lang)

	var byKey func(a, b models.Note) int
	switch sort.kind {
	case sortTitle:
		byKey = func(a, b models.Note) int { return col.CompareString(a.Title, b.Title) }
	case sortFolder:
		byKey = func(a, b models.Note) int { return col.CompareString(a.Folder, b.Folder) }
	default:
		byKey = func(a, b models.Note) int { return b.UpdatedAt.Compare(a.UpdatedAt) }
	}

	return func(a, b models.Note) int {
		if c := cmp.Compare(pinRank(a), pinRank(b)); c != 0 {
			return c
		}
		return byKey(a, b)
	}
}

func pinRank(n models.Note) int {
	if n.IsPinned {
		return 0
	}
	return 1
}
