package tui

import (
	"slices"
	"strings"

	"github.com/MKhiriev/go-note-keeper/models"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// EditorSurface is the rich-text editing capability the note editor drives.
// The content is a serialized blob the client never interprets.
type EditorSurface interface {
	GetContent() string
	SetContent(content string)
}

type editorWidget interface {
	EditorSurface
	Update(msg tea.Msg) tea.Cmd
	View() string
	Focus() tea.Cmd
	Blur()
}

// textareaSurface is the terminal EditorSurface backed by a bubbles textarea.
type textareaSurface struct {
	area textarea.Model
}

func newTextareaSurface() *textareaSurface {
	area := textarea.New()
	area.Placeholder = "Start writing…"
	area.ShowLineNumbers = false
	area.CharLimit = 0
	area.SetWidth(72)
	area.SetHeight(12)
	return &textareaSurface{area: area}
}

func (s *textareaSurface) GetContent() string { return s.area.Value() }

func (s *textareaSurface) SetContent(content string) { s.area.SetValue(content) }

func (s *textareaSurface) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	s.area, cmd = s.area.Update(msg)
	return cmd
}

func (s *textareaSurface) View() string   { return s.area.View() }
func (s *textareaSurface) Focus() tea.Cmd { return s.area.Focus() }
func (s *textareaSurface) Blur()          { s.area.Blur() }

type editorField int

const (
	fieldTitle editorField = iota
	fieldFolder
	fieldTags
	fieldColor
	fieldContent
	editorFieldCount
)

// editorModel edits one note. noteID is zero for a note that does not exist
// yet.
type editorModel struct {
	noteID int64
	source models.Note

	title     textinput.Model
	folders   []string
	folderIdx int
	tags      textinput.Model
	color     textinput.Model
	content   editorWidget

	focus  editorField
	saving bool
	errMsg string
}

func newEditor(note models.Note, folders []string, content editorWidget) *editorModel {
	title := textinput.New()
	title.Placeholder = "Untitled"
	title.CharLimit = 200
	title.Width = 60
	title.SetValue(note.Title)

	tags := textinput.New()
	tags.Placeholder = "comma separated"
	tags.Width = 60
	tags.SetValue(strings.Join(note.Tags, ", "))

	color := textinput.New()
	color.Placeholder = "#RRGGBB"
	color.CharLimit = 7
	color.Width = 10
	color.SetValue(note.Color)

	// A note without a folder stays at index -1 and saves with the
	// collection default.
	folders = slices.Clone(folders)
	idx := slices.Index(folders, note.Folder)
	if idx < 0 && note.Folder != "" {
		folders = append(folders, note.Folder)
		idx = len(folders) - 1
	}

	content.SetContent(note.Content)

	e := &editorModel{
		noteID:    note.ID,
		source:    note.Clone(),
		title:     title,
		folders:   folders,
		folderIdx: idx,
		tags:      tags,
		color:     color,
		content:   content,
	}
	e.title.Focus()
	return e
}

func (e *editorModel) isNew() bool { return e.noteID == 0 }

func (e *editorModel) folder() string {
	if e.folderIdx < 0 || e.folderIdx >= len(e.folders) {
		return ""
	}
	return e.folders[e.folderIdx]
}

// draft is the note to create from the editor state. Fields the editor does
// not show are carried over from the source note.
func (e *editorModel) draft() models.Note {
	n := e.source.Clone()
	n.Title = e.title.Value()
	n.Content = e.content.GetContent()
	n.Folder = e.folder()
	n.Tags = parseTags(e.tags.Value())
	n.Color = strings.TrimSpace(e.color.Value())
	return n
}

// patch carries every editable field, so saving always writes what the user
// sees.
func (e *editorModel) patch() models.NotePatch {
	d := e.draft()
	tags := d.Tags
	if tags == nil {
		tags = []string{}
	}
	return models.NotePatch{
		Title:   &d.Title,
		Content: &d.Content,
		Tags:    tags,
		Folder:  &d.Folder,
		Color:   &d.Color,
	}
}

func (e *editorModel) setFocus(f editorField) tea.Cmd {
	e.title.Blur()
	e.tags.Blur()
	e.color.Blur()
	e.content.Blur()
	e.focus = f

	switch f {
	case fieldTitle:
		return e.title.Focus()
	case fieldTags:
		return e.tags.Focus()
	case fieldColor:
		return e.color.Focus()
	case fieldContent:
		return e.content.Focus()
	}
	return nil
}

func (e *editorModel) focusNext() tea.Cmd {
	return e.setFocus((e.focus + 1) % editorFieldCount)
}

func (e *editorModel) focusPrev() tea.Cmd {
	return e.setFocus((e.focus + editorFieldCount - 1) % editorFieldCount)
}

// update handles navigation keys and forwards everything else to the
// focused input. Saving and cancelling are handled by the caller.
func (e *editorModel) update(msg tea.Msg) tea.Cmd {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, keys.tab):
			return e.focusNext()
		case key.Matches(keyMsg, keys.backtab):
			return e.focusPrev()
		}

		if e.focus == fieldFolder && len(e.folders) > 0 {
			switch {
			case key.Matches(keyMsg, keys.left):
				if e.folderIdx <= 0 {
					e.folderIdx = len(e.folders) - 1
				} else {
					e.folderIdx--
				}
			case key.Matches(keyMsg, keys.right):
				e.folderIdx = (e.folderIdx + 1) % len(e.folders)
			}
			return nil
		}
	}

	var cmd tea.Cmd
	switch e.focus {
	case fieldTitle:
		e.title, cmd = e.title.Update(msg)
	case fieldTags:
		e.tags, cmd = e.tags.Update(msg)
	case fieldColor:
		e.color, cmd = e.color.Update(msg)
	case fieldContent:
		cmd = e.content.Update(msg)
	}
	return cmd
}

func (e *editorModel) view() string {
	var b strings.Builder

	row := func(f editorField, label, value string) {
		marker := "  "
		if e.focus == f {
			marker = "› "
		}
		b.WriteString(marker)
		b.WriteString(fieldLabelStyle.Render(label))
		b.WriteString(value)
		b.WriteString("\n")
	}

	row(fieldTitle, "Title", e.title.View())
	folder := e.folder()
	if folder == "" {
		folder = "default"
	}
	row(fieldFolder, "Folder", "‹ "+folder+" ›")
	row(fieldTags, "Tags", e.tags.View())
	row(fieldColor, "Color", e.color.View()+" "+accent(strings.TrimSpace(e.color.Value()), "■"))
	b.WriteString("\n")
	b.WriteString(e.content.View())
	b.WriteString("\n")

	if e.saving {
		b.WriteString("\n")
		b.WriteString(statusStyle.Render("Saving…"))
		b.WriteString("\n")
	}
	if e.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render(e.errMsg))
		b.WriteString("\n")
	}

	heading := "EDIT NOTE"
	if e.isNew() {
		heading = "NEW NOTE"
	}
	return renderPage(heading, strings.TrimRight(b.String(), "\n"), editorHelp)
}

// parseTags splits a comma separated tag list, dropping blanks and repeats.
func parseTags(raw string) []string {
	var out []string
	for part := range strings.SplitSeq(raw, ",") {
		if tag := strings.TrimSpace(part); tag != "" {
			out = append(out, tag)
		}
	}
	return models.NormalizeTags(out)
}
