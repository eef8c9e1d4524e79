package tui

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/MKhiriev/go-note-keeper/internal/app"
	"github.com/MKhiriev/go-note-keeper/internal/catalog"
	"github.com/MKhiriev/go-note-keeper/internal/logger"
	"github.com/MKhiriev/go-note-keeper/internal/service"
	"github.com/MKhiriev/go-note-keeper/internal/view"
	"github.com/MKhiriev/go-note-keeper/models"
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const statusTimeout = 4 * time.Second

var viewModes = []string{models.ViewModeList, models.ViewModeGrid, models.ViewModeCompact}

type mainLoopModel struct {
	ctx       context.Context
	services  *service.ClientServices
	catalog   *catalog.Catalog
	projector *view.Projector
	session   models.Session
	buildInfo models.AppBuildInfo
	logger    *logger.Logger
	loc       *time.Location

	copyText  func(string) error
	newEditor func() editorWidget

	notes   []models.Note
	visible []models.Note
	counts  view.SectionCounts
	state   models.LoadState

	sections  []sectionEntry
	section   int
	sortKey   view.SortKey
	viewMode  string
	date      view.DateFilter
	search    textinput.Model
	searching bool
	cursor    int
	spinner   spinner.Model

	editor     *editorModel
	confirm    *confirmModel
	errOverlay *errorOverlayModel
	showInfo   bool

	status    string
	statusErr bool
	statusSeq int

	logout bool
}

func newMainLoopModel(ctx context.Context, services *service.ClientServices, cat *catalog.Catalog, projector *view.Projector,
	session models.Session, buildInfo models.AppBuildInfo, log *logger.Logger) *mainLoopModel {
	search := textinput.New()
	search.Placeholder = "search title or content"
	search.Prompt = "/ "
	search.Width = 40

	spin := spinner.New()
	spin.Spinner = spinner.Dot

	return &mainLoopModel{
		ctx:       ctx,
		services:  services,
		catalog:   cat,
		projector: projector,
		session:   session,
		buildInfo: buildInfo,
		logger:    log,
		loc:       time.Local,
		copyText:  clipboard.WriteAll,
		newEditor: func() editorWidget { return newTextareaSurface() },
		sections:  buildSections(cat),
		sortKey:   view.SortByDate,
		viewMode:  models.ViewModeList,
		date:      view.AnyDate,
		search:    search,
		spinner:   spin,
		state:     models.LoadStateLoading,
	}
}

func (m *mainLoopModel) Init() tea.Cmd {
	return tea.Batch(
		m.cmdLoadPrefs(),
		m.cmdLoad(false),
		m.cmdWaitForChanges(),
		m.spinner.Tick,
	)
}

func (m *mainLoopModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case notesChangedMsg:
		m.refresh()
		return m, m.cmdWaitForChanges()
	case loadDoneMsg:
		m.refresh()
		switch {
		case errors.Is(msg.err, service.ErrLoadSuperseded):
			return m, nil
		case msg.err != nil:
			return m, m.setError(app.MsgLoadFailed)
		case msg.manual:
			return m, m.setStatus(app.MsgNotesReloaded)
		}
		return m, nil
	case prefsLoadedMsg:
		if msg.err != nil {
			m.logger.Warn().
				Str("func", "mainLoopModel.Update").
				Err(msg.err).
				Msg("failed to load preferences, using defaults")
			return m, nil
		}
		m.applyPrefs(msg.prefs)
		m.refresh()
		return m, nil
	case prefsSavedMsg:
		if msg.err != nil {
			return m, m.setError(describeError(msg.err))
		}
		return m, nil
	case noteSavedMsg:
		return m.handleSaved(msg)
	case noteDeletedMsg:
		m.refresh()
		if msg.err != nil {
			return m, m.setError(describeError(msg.err))
		}
		return m, m.setStatus(app.MsgNoteDeleted)
	case noteToggledMsg:
		m.refresh()
		if msg.err != nil {
			return m, m.setError(describeError(msg.err))
		}
		return m, nil
	case noteDuplicatedMsg:
		m.refresh()
		if msg.err != nil {
			return m, m.setError(describeError(msg.err))
		}
		m.selectNote(msg.note.ID)
		return m, m.setStatus(app.MsgNoteDuplicated)
	case copiedMsg:
		if msg.err != nil {
			return m, m.setError(app.MsgClipboardFailed)
		}
		return m, m.setStatus(app.MsgNoteCopied)
	case loggedOutMsg:
		if msg.err != nil {
			m.errOverlay = newErrorOverlay("Sign out failed", msg.err)
			return m, nil
		}
		m.logout = true
		return m, tea.Quit
	case clearStatusMsg:
		if msg.seq == m.statusSeq {
			m.status = ""
			m.statusErr = false
		}
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	if m.editor != nil {
		return m, m.editor.update(msg)
	}
	if m.searching {
		var cmd tea.Cmd
		m.search, cmd = m.search.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *mainLoopModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	switch {
	case m.errOverlay != nil:
		if key.Matches(msg, keys.enter) || key.Matches(msg, keys.esc) {
			m.errOverlay = nil
		}
		return m, nil
	case m.showInfo:
		if key.Matches(msg, keys.esc) || key.Matches(msg, keys.enter) || key.Matches(msg, keys.info) {
			m.showInfo = false
		}
		return m, nil
	case m.confirm != nil:
		return m.updateConfirm(msg)
	case m.editor != nil:
		return m.updateEditor(msg)
	case m.searching:
		return m.updateSearch(msg)
	}

	return m.updateList(msg)
}

func (m *mainLoopModel) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.quit):
		return m, tea.Quit
	case key.Matches(msg, keys.up):
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil
	case key.Matches(msg, keys.down):
		if m.cursor < len(m.visible)-1 {
			m.cursor++
		}
		return m, nil
	case key.Matches(msg, keys.search):
		m.searching = true
		return m, m.search.Focus()
	case key.Matches(msg, keys.esc):
		m.search.SetValue("")
		m.date = view.AnyDate
		m.refresh()
		return m, nil
	case key.Matches(msg, keys.newNote):
		return m, m.openEditor(m.newDraft())
	case key.Matches(msg, keys.edit):
		if n, ok := m.selected(); ok {
			return m, m.openEditor(n)
		}
		return m, nil
	case key.Matches(msg, keys.delete):
		if n, ok := m.selected(); ok {
			m.confirm = &confirmModel{noteID: n.ID, title: noteTitle(n)}
		}
		return m, nil
	case key.Matches(msg, keys.duplicate):
		if n, ok := m.selected(); ok {
			return m, m.cmdDuplicate(n.ID)
		}
		return m, nil
	case key.Matches(msg, keys.pin):
		return m, m.cmdToggleSelected(models.FieldPinned)
	case key.Matches(msg, keys.favorite):
		return m, m.cmdToggleSelected(models.FieldFavorite)
	case key.Matches(msg, keys.copy):
		if n, ok := m.selected(); ok {
			return m, m.cmdCopy(n.Content)
		}
		return m, nil
	case key.Matches(msg, keys.sort):
		i := slices.Index(view.SortKeys, m.sortKey)
		m.sortKey = view.SortKeys[(i+1)%len(view.SortKeys)]
		m.refresh()
		return m, m.cmdSavePrefs()
	case key.Matches(msg, keys.nextSection):
		m.section = (m.section + 1) % len(m.sections)
		m.cursor = 0
		m.refresh()
		return m, m.cmdSavePrefs()
	case key.Matches(msg, keys.prevSection):
		m.section = (m.section + len(m.sections) - 1) % len(m.sections)
		m.cursor = 0
		m.refresh()
		return m, m.cmdSavePrefs()
	case key.Matches(msg, keys.viewMode):
		i := slices.Index(viewModes, m.viewMode)
		m.viewMode = viewModes[(i+1)%len(viewModes)]
		return m, m.cmdSavePrefs()
	case key.Matches(msg, keys.dateFilter):
		if !m.date.IsAny() {
			m.date = view.AnyDate
		} else if n, ok := m.selected(); ok {
			m.date = view.OnDay(n.CreatedAt.In(m.loc))
		}
		m.refresh()
		return m, nil
	case key.Matches(msg, keys.reload):
		m.state = models.LoadStateLoading
		return m, tea.Batch(m.cmdLoad(true), m.spinner.Tick)
	case key.Matches(msg, keys.info):
		m.showInfo = true
		return m, nil
	case key.Matches(msg, keys.logout):
		return m, m.cmdLogout()
	}

	return m, nil
}

func (m *mainLoopModel) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.esc):
		m.search.SetValue("")
		m.search.Blur()
		m.searching = false
		m.refresh()
		return m, nil
	case key.Matches(msg, keys.enter):
		m.search.Blur()
		m.searching = false
		return m, nil
	}

	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	m.cursor = 0
	m.refresh()
	return m, cmd
}

func (m *mainLoopModel) updateConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.yes):
		id := m.confirm.noteID
		m.confirm = nil
		return m, m.cmdDelete(id)
	case key.Matches(msg, keys.no):
		m.confirm = nil
	}
	return m, nil
}

func (m *mainLoopModel) updateEditor(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.esc):
		m.editor = nil
		return m, nil
	case key.Matches(msg, keys.save):
		if m.editor.saving {
			return m, nil
		}
		m.editor.saving = true
		m.editor.errMsg = ""
		return m, m.cmdSave(m.editor)
	}
	return m, m.editor.update(msg)
}

func (m *mainLoopModel) handleSaved(msg noteSavedMsg) (tea.Model, tea.Cmd) {
	if m.editor != nil {
		m.editor.saving = false
	}
	if msg.err != nil {
		text := describeError(msg.err)
		if m.editor != nil {
			m.editor.errMsg = text
		}
		return m, m.setError(text)
	}

	m.editor = nil
	m.refresh()
	m.selectNote(msg.note.ID)
	if msg.created {
		return m, m.setStatus(app.MsgNoteCreated)
	}
	return m, m.setStatus(app.MsgNoteSaved)
}

// refresh re-reads the collection and re-projects it, keeping the cursor on
// the same note when it is still visible.
func (m *mainLoopModel) refresh() {
	var selectedID int64
	if n, ok := m.selected(); ok {
		selectedID = n.ID
	}

	m.notes = m.services.Notes.Notes()
	m.state = m.services.Notes.State()
	m.counts = view.Counts(m.notes)
	m.visible = m.projector.Project(m.notes, m.search.Value(), m.currentSection(), m.date, m.sortKey)

	if selectedID != 0 {
		m.selectNote(selectedID)
	}
	if m.cursor >= len(m.visible) {
		m.cursor = len(m.visible) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func (m *mainLoopModel) selectNote(id int64) {
	if i := slices.IndexFunc(m.visible, func(n models.Note) bool { return n.ID == id }); i >= 0 {
		m.cursor = i
	}
}

func (m *mainLoopModel) selected() (models.Note, bool) {
	if m.cursor < 0 || m.cursor >= len(m.visible) {
		return models.Note{}, false
	}
	return m.visible[m.cursor], true
}

func (m *mainLoopModel) currentSection() view.Section {
	return m.sections[m.section].section
}

func (m *mainLoopModel) applyPrefs(prefs models.Preferences) {
	if sortKey, err := view.ParseSortKey(prefs.SortKey); err == nil {
		m.sortKey = sortKey
	}
	if slices.Contains(viewModes, prefs.ViewMode) {
		m.viewMode = prefs.ViewMode
	}
	if section, err := view.ParseSection(prefs.Section); err == nil {
		if i := slices.IndexFunc(m.sections, func(s sectionEntry) bool { return s.section == section }); i >= 0 {
			m.section = i
		}
	}
}

func (m *mainLoopModel) prefs() models.Preferences {
	return models.Preferences{
		UserID:   m.session.UserID,
		SortKey:  m.sortKey.String(),
		Section:  m.currentSection().String(),
		ViewMode: m.viewMode,
	}
}

// newDraft prefills the folder or tag of the open section. The collection
// fills the remaining defaults.
func (m *mainLoopModel) newDraft() models.Note {
	var draft models.Note
	switch s := m.sections[m.section]; s.kind {
	case sectionKindFolder:
		draft.Folder = s.name
	case sectionKindTag:
		draft.Tags = []string{s.name}
	}
	return draft
}

func (m *mainLoopModel) openEditor(n models.Note) tea.Cmd {
	folders := make([]string, 0, len(m.catalog.Folders()))
	for _, f := range m.catalog.Folders() {
		folders = append(folders, f.Name)
	}
	m.editor = newEditor(n, folders, m.newEditor())
	return textinput.Blink
}

func (m *mainLoopModel) setStatus(text string) tea.Cmd {
	m.statusSeq++
	m.status = text
	m.statusErr = false
	seq := m.statusSeq
	return tea.Tick(statusTimeout, func(time.Time) tea.Msg { return clearStatusMsg{seq: seq} })
}

func (m *mainLoopModel) setError(text string) tea.Cmd {
	cmd := m.setStatus(text)
	m.statusErr = true
	return cmd
}

// ── Commands ────────────────────────────────────────────────────────────────

func (m *mainLoopModel) cmdWaitForChanges() tea.Cmd {
	ctx, changes := m.ctx, m.services.Notes.Changes()
	return func() tea.Msg {
		select {
		case <-ctx.Done():
			return nil
		case <-changes:
			return notesChangedMsg{}
		}
	}
}

func (m *mainLoopModel) cmdLoad(manual bool) tea.Cmd {
	ctx, notes, userID := m.ctx, m.services.Notes, m.session.UserID
	return func() tea.Msg {
		return loadDoneMsg{err: notes.Load(ctx, userID), manual: manual}
	}
}

func (m *mainLoopModel) cmdLoadPrefs() tea.Cmd {
	ctx, prefs, userID := m.ctx, m.services.Preferences, m.session.UserID
	return func() tea.Msg {
		p, err := prefs.Get(ctx, userID)
		return prefsLoadedMsg{prefs: p, err: err}
	}
}

func (m *mainLoopModel) cmdSavePrefs() tea.Cmd {
	ctx, svc, prefs := m.ctx, m.services.Preferences, m.prefs()
	return func() tea.Msg {
		return prefsSavedMsg{err: svc.Save(ctx, prefs)}
	}
}

func (m *mainLoopModel) cmdSave(e *editorModel) tea.Cmd {
	ctx, notes := m.ctx, m.services.Notes
	if e.isNew() {
		draft := e.draft()
		return func() tea.Msg {
			n, err := notes.CreateNote(ctx, draft)
			return noteSavedMsg{note: n, created: true, err: err}
		}
	}

	id, patch := e.noteID, e.patch()
	return func() tea.Msg {
		n, err := notes.UpdateNote(ctx, id, patch)
		return noteSavedMsg{note: n, err: err}
	}
}

func (m *mainLoopModel) cmdDelete(id int64) tea.Cmd {
	ctx, notes := m.ctx, m.services.Notes
	return func() tea.Msg {
		return noteDeletedMsg{id: id, err: notes.DeleteNote(ctx, id)}
	}
}

func (m *mainLoopModel) cmdDuplicate(id int64) tea.Cmd {
	ctx, notes := m.ctx, m.services.Notes
	return func() tea.Msg {
		n, err := notes.DuplicateNote(ctx, id)
		return noteDuplicatedMsg{note: n, err: err}
	}
}

func (m *mainLoopModel) cmdToggleSelected(field models.ToggleField) tea.Cmd {
	n, ok := m.selected()
	if !ok {
		return nil
	}

	ctx, notes, id := m.ctx, m.services.Notes, n.ID
	return func() tea.Msg {
		updated, err := notes.ToggleField(ctx, id, field)
		return noteToggledMsg{note: updated, err: err}
	}
}

func (m *mainLoopModel) cmdCopy(content string) tea.Cmd {
	copyText := m.copyText
	return func() tea.Msg {
		return copiedMsg{err: copyText(content)}
	}
}

func (m *mainLoopModel) cmdLogout() tea.Cmd {
	ctx, session := m.ctx, m.services.Session
	return func() tea.Msg {
		return loggedOutMsg{err: session.Logout(ctx)}
	}
}

// ── View ────────────────────────────────────────────────────────────────────

func (m *mainLoopModel) View() string {
	switch {
	case m.errOverlay != nil:
		return appStyle.Render(m.errOverlay.View())
	case m.showInfo:
		return renderBuildInfoWindow(m.buildInfo, m.session)
	case m.editor != nil:
		return m.editor.view()
	}

	var b strings.Builder

	if m.searching || m.search.Value() != "" {
		b.WriteString(m.search.View())
		b.WriteString("\n")
	}
	if day, ok := m.date.Day(m.loc); ok {
		b.WriteString(helpStyle.Render("created on " + day.Format("2006-01-02") + " (t to clear)"))
		b.WriteString("\n")
	}
	if m.searching || m.search.Value() != "" || !m.date.IsAny() {
		b.WriteString("\n")
	}

	sidebar := renderSidebar(m.sections, m.section, m.counts)
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, sidebar, m.listBody()))

	if m.confirm != nil {
		b.WriteString("\n\n")
		b.WriteString(m.confirm.View())
	}

	if m.status != "" {
		b.WriteString("\n\n")
		if m.statusErr {
			b.WriteString(errorStyle.Render(m.status))
		} else {
			b.WriteString(statusStyle.Render(m.status))
		}
	}

	heading := fmt.Sprintf("NOTES · %s · sort: %s · view: %s", m.session.UserID, m.sortKey, m.viewMode)
	return renderPage(heading, b.String(), listHelp)
}

func (m *mainLoopModel) listBody() string {
	switch {
	case m.state == models.LoadStateLoading && len(m.visible) == 0:
		return m.spinner.View() + " loading notes"
	case m.state == models.LoadStateFailed:
		return errorStyle.Render(app.MsgLoadFailed)
	case len(m.visible) == 0 && len(m.notes) == 0:
		return helpStyle.Render("no notes yet, press n to write one")
	case len(m.visible) == 0:
		return helpStyle.Render("nothing matches")
	}

	return renderNotes(m.catalog, m.visible, m.viewMode, func(i int) rowState {
		return rowState{
			selected: i == m.cursor,
			pending:  m.services.Notes.IsPending(m.visible[i].ID),
		}
	})
}
