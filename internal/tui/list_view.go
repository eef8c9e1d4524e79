package tui

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/go-note-keeper/internal/catalog"
	"github.com/MKhiriev/go-note-keeper/internal/view"
	"github.com/MKhiriev/go-note-keeper/models"
	"github.com/charmbracelet/lipgloss"
)

const (
	gridColumns   = 3
	rowTitleWidth = 32
	dateLayout    = "2006-01-02 15:04"
)

type sectionKind int

const (
	sectionKindAll sectionKind = iota
	sectionKindFolder
	sectionKindTag
)

type sectionEntry struct {
	kind    sectionKind
	name    string
	section view.Section
}

// buildSections lists the sidebar entries: every note, then folders, then
// tags, in catalog order.
func buildSections(cat *catalog.Catalog) []sectionEntry {
	out := []sectionEntry{{kind: sectionKindAll, name: "All notes", section: view.SectionAll}}
	for _, f := range cat.Folders() {
		out = append(out, sectionEntry{kind: sectionKindFolder, name: f.Name, section: view.FolderSection(f.ID)})
	}
	for _, t := range cat.Tags() {
		out = append(out, sectionEntry{kind: sectionKindTag, name: t.Name, section: view.TagSection(t.ID)})
	}
	return out
}

func (s sectionEntry) count(c view.SectionCounts) int {
	switch s.kind {
	case sectionKindFolder:
		return c.Folders[s.name]
	case sectionKindTag:
		return c.Tags[s.name]
	default:
		return c.All
	}
}

func (s sectionEntry) label() string {
	switch s.kind {
	case sectionKindFolder:
		return "▸ " + s.name
	case sectionKindTag:
		return "# " + s.name
	default:
		return s.name
	}
}

func renderSidebar(sections []sectionEntry, active int, counts view.SectionCounts) string {
	var b strings.Builder
	for i, s := range sections {
		if i > 0 && s.kind != sections[i-1].kind {
			b.WriteString("\n")
		}
		line := fmt.Sprintf("%-18s %3d", fitText(s.label(), 18), s.count(counts))
		if i == active {
			b.WriteString(activeSectionStyle.Render(line))
		} else {
			b.WriteString(sectionStyle.Render(line))
		}
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(helpStyle.Render(fmt.Sprintf("pinned %d · favorites %d", counts.Pinned, counts.Favorites)))
	return sidebarStyle.Render(b.String())
}

type rowState struct {
	selected bool
	pending  bool
}

func noteFlags(n models.Note) string {
	flags := []rune{' ', ' '}
	if n.IsPinned {
		flags[0] = '^'
	}
	if n.IsFavorite {
		flags[1] = '*'
	}
	return string(flags)
}

func noteTitle(n models.Note) string {
	if strings.TrimSpace(n.Title) == "" {
		return "Untitled"
	}
	return n.Title
}

func renderTags(cat *catalog.Catalog, tags []string) string {
	parts := make([]string, 0, len(tags))
	for _, tag := range tags {
		color, _ := cat.TagColor(tag)
		parts = append(parts, accent(color, "#"+tag))
	}
	return strings.Join(parts, " ")
}

func styleRow(line string, st rowState) string {
	marker := "  "
	if st.selected {
		marker = "› "
		line = selectedRowStyle.Render(line)
	}
	if st.pending {
		line = pendingRowStyle.Render(line + " …")
	}
	return marker + line
}

func renderListRow(cat *catalog.Catalog, n models.Note, st rowState) string {
	line := fmt.Sprintf("%s %s  %-14s %s  %s",
		noteFlags(n),
		accent(n.Color, fmt.Sprintf("%-*s", rowTitleWidth, fitText(noteTitle(n), rowTitleWidth))),
		fitText(n.Folder, 14),
		n.UpdatedAt.Local().Format(dateLayout),
		renderTags(cat, n.Tags),
	)
	return styleRow(line, st)
}

func renderCompactRow(n models.Note, st rowState) string {
	return styleRow(noteFlags(n)+" "+accent(n.Color, fitText(noteTitle(n), 60)), st)
}

func renderCard(cat *catalog.Catalog, n models.Note, st rowState) string {
	body := titleStyle.Render(fitText(noteTitle(n), 22)) + " " + noteFlags(n) + "\n" +
		helpStyle.Render(fitText(firstLine(n.Content), 24)) + "\n" +
		fitText(n.Folder, 24) + "\n" +
		fitText(renderTags(cat, n.Tags), 24)

	style := cardStyle
	if n.Color != "" {
		style = style.BorderForeground(lipgloss.Color(n.Color))
	}
	if st.selected {
		style = style.BorderStyle(lipgloss.ThickBorder())
	}
	if st.pending {
		style = style.Faint(true)
	}
	return style.Render(body)
}

// renderNotes draws the visible notes in the requested view mode. stateOf
// reports selection and pending state per note index.
func renderNotes(cat *catalog.Catalog, notes []models.Note, mode string, stateOf func(int) rowState) string {
	switch mode {
	case models.ViewModeGrid:
		var rows []string
		for start := 0; start < len(notes); start += gridColumns {
			end := min(start+gridColumns, len(notes))
			cards := make([]string, 0, gridColumns)
			for i := start; i < end; i++ {
				cards = append(cards, renderCard(cat, notes[i], stateOf(i)))
			}
			rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cards...))
		}
		return strings.Join(rows, "\n")
	case models.ViewModeCompact:
		lines := make([]string, len(notes))
		for i, n := range notes {
			lines[i] = renderCompactRow(n, stateOf(i))
		}
		return strings.Join(lines, "\n")
	default:
		lines := make([]string, len(notes))
		for i, n := range notes {
			lines[i] = renderListRow(cat, n, stateOf(i))
		}
		return strings.Join(lines, "\n")
	}
}
