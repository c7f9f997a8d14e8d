package ui

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/moodriver/encore/internal/services"
	"github.com/moodriver/encore/internal/tasks"
)

// ViewState represents the current view in the TUI.
type ViewState int

const (
	TrackListView ViewState = iota
	ConfirmView
	CurateView
	ResultView
)

const maxSuggestionCount = 50

// Model represents the TUI application state.
type Model struct {
	ctx          context.Context
	view         ViewState
	spotify      services.Service
	engine       *tasks.CurationEngine
	playlistID   string
	count        int
	width        int
	height       int
	trackList    list.Model
	playlist     *services.PlaylistExport
	progressChan chan tasks.ProgressUpdate
	progress     tasks.ProgressUpdate
	result       *tasks.CurateResult
	err          error
	help         help.Model
	keys         keyMap
}

// keyMap defines the key bindings for the TUI.
type keyMap struct {
	up      key.Binding
	down    key.Binding
	enter   key.Binding
	back    key.Binding
	yes     key.Binding
	no      key.Binding
	more    key.Binding
	fewer   key.Binding
	restart key.Binding
	quit    key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		enter: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "select"),
		),
		back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "back"),
		),
		yes: key.NewBinding(
			key.WithKeys("y"),
			key.WithHelp("y", "yes"),
		),
		no: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "no"),
		),
		more: key.NewBinding(
			key.WithKeys("+", "="),
			key.WithHelp("+", "more songs"),
		),
		fewer: key.NewBinding(
			key.WithKeys("-"),
			key.WithHelp("-", "fewer songs"),
		),
		restart: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "restart"),
		),
		quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.up, k.down, k.enter},
		{k.back, k.yes, k.no},
		{k.more, k.fewer},
		{k.restart, k.quit},
	}
}

// trackItem wraps [services.Track] to implement list.Item.
type trackItem struct {
	track services.Track
}

func (i trackItem) FilterValue() string { return i.track.Title }
func (i trackItem) Title() string       { return i.track.Title }
func (i trackItem) Description() string {
	desc := joinArtists(i.track.Artists)
	if i.track.Album != "" {
		desc = fmt.Sprintf("%s • %s", desc, i.track.Album)
	}
	return desc
}

func joinArtists(artists []string) string {
	switch len(artists) {
	case 0:
		return ""
	case 1:
		return artists[0]
	default:
		out := artists[0]
		for _, a := range artists[1:] {
			out += ", " + a
		}
		return out
	}
}

type tracksFetchedMsg struct {
	playlist *services.PlaylistExport
	err      error
}

type progressUpdateMsg tasks.ProgressUpdate

type curateCompleteMsg struct {
	result *tasks.CurateResult
	err    error
}

// NewModel creates a new TUI model with the provided dependencies.
func NewModel(ctx context.Context, spotify services.Service, engine *tasks.CurationEngine, playlistID string, count int) *Model {
	if count <= 0 {
		count = 5
	}
	return &Model{
		ctx:        ctx,
		view:       TrackListView,
		spotify:    spotify,
		engine:     engine,
		playlistID: playlistID,
		count:      count,
		help:       help.New(),
		keys:       newKeyMap(),
	}
}

// Init initializes the TUI by fetching the configured playlist.
func (m *Model) Init() tea.Cmd {
	return m.fetchTracks()
}

// Update handles incoming messages and updates the model state.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if m.trackList.Width() == 0 {
			m.trackList.SetSize(msg.Width-4, msg.Height-8)
		}
		return m, nil

	case tea.KeyMsg:
		switch m.view {
		case TrackListView:
			return m.handleTrackListKeys(msg)
		case ConfirmView:
			return m.handleConfirmKeys(msg)
		case ResultView:
			return m.handleResultKeys(msg)
		}

	case tracksFetchedMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, tea.Quit
		}
		m.playlist = msg.playlist
		items := make([]list.Item, len(msg.playlist.Tracks))
		for i, track := range msg.playlist.Tracks {
			items[i] = trackItem{track: track}
		}
		m.trackList = list.New(items, list.NewDefaultDelegate(), 0, 0)
		m.trackList.Title = fmt.Sprintf("Tracks in '%s'", msg.playlist.Playlist.Name)
		m.trackList.SetSize(m.width-4, m.height-8)
		return m, nil

	case progressUpdateMsg:
		m.progress = tasks.ProgressUpdate(msg)
		return m, m.waitForProgress()

	case curateCompleteMsg:
		m.result = msg.result
		m.err = msg.err
		m.view = ResultView
		if m.progressChan != nil {
			m.progressChan = nil
		}
		return m, nil
	}

	return m.updateLists(msg)
}

// View renders the UI based on the current view state.
func (m *Model) View() string {
	if m.err != nil && m.view != ResultView {
		return styles.err.Render(fmt.Sprintf("Error: %v\n\nPress q to quit", m.err))
	}

	switch m.view {
	case TrackListView:
		return m.renderTrackList()
	case ConfirmView:
		return m.renderConfirm()
	case CurateView:
		return m.renderCurate()
	case ResultView:
		return m.renderResult()
	default:
		return ""
	}
}

func (m *Model) handleTrackListKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "enter":
		if m.playlist != nil {
			m.view = ConfirmView
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.trackList, cmd = m.trackList.Update(msg)
	return m, cmd
}

func (m *Model) handleConfirmKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c", "n", "esc":
		m.view = TrackListView
		return m, nil
	case "+", "=":
		if m.count < maxSuggestionCount {
			m.count++
		}
		return m, nil
	case "-":
		if m.count > 1 {
			m.count--
		}
		return m, nil
	case "y", "enter":
		m.view = CurateView
		return m, m.startCuration()
	}
	return m, nil
}

func (m *Model) handleResultKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "r":
		m.view = TrackListView
		m.result = nil
		m.err = nil
		return m, m.fetchTracks()
	}
	return m, nil
}

func (m *Model) updateLists(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	if m.view == TrackListView {
		m.trackList, cmd = m.trackList.Update(msg)
	}
	return m, cmd
}

func (m *Model) fetchTracks() tea.Cmd {
	return func() tea.Msg {
		playlist, err := m.spotify.ExportPlaylist(m.ctx, m.playlistID)
		return tracksFetchedMsg{playlist: playlist, err: err}
	}
}

func (m *Model) startCuration() tea.Cmd {
	m.progressChan = make(chan tasks.ProgressUpdate, 50)
	progress := m.progressChan

	go func() {
		result, err := m.engine.Curate(m.ctx, progress, m.playlistID, m.count)
		m.result = result
		m.err = err
		close(progress)
	}()

	return m.waitForProgress()
}

func (m *Model) waitForProgress() tea.Cmd {
	return func() tea.Msg {
		if m.progressChan == nil {
			return curateCompleteMsg{result: m.result, err: m.err}
		}

		update, ok := <-m.progressChan
		if !ok {
			return curateCompleteMsg{result: m.result, err: m.err}
		}
		return progressUpdateMsg(update)
	}
}

func (m *Model) renderTrackList() string {
	curateKey := key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "curate"),
	)
	helpKeys := []key.Binding{curateKey, m.keys.quit}
	helpView := m.help.ShortHelpView(helpKeys)
	return fmt.Sprintf("%s\n\n%s", m.trackList.View(), helpView)
}

func (m *Model) renderConfirm() string {
	title := styles.title.Render(fmt.Sprintf("Add %d suggested songs to '%s'?", m.count, m.playlist.Playlist.Name))
	info := fmt.Sprintf("\nPlaylist: %s\nTracks: %d\nSuggestions: %d\n",
		m.playlist.Playlist.Name, len(m.playlist.Tracks), m.count)

	helpKeys := []key.Binding{m.keys.yes, m.keys.no, m.keys.more, m.keys.fewer, m.keys.quit}
	helpView := m.help.ShortHelpView(helpKeys)

	return fmt.Sprintf("%s\n%s\n%s", title, info, helpView)
}

func (m *Model) renderCurate() string {
	title := styles.title.Render("Curating Playlist")

	var phase string
	switch m.progress.Phase {
	case tasks.FetchPlaylist:
		phase = "Fetching playlist..."
	case tasks.RequestSuggestions:
		phase = "Waiting for the model..."
	case tasks.ParseSuggestions:
		phase = "Reading suggestions..."
	case tasks.ResolveTracks:
		phase = fmt.Sprintf("Resolving tracks (%d/%d)", m.progress.Step, m.progress.Total)
	case tasks.AppendTracks:
		phase = "Adding tracks..."
	default:
		phase = "Processing..."
	}

	return fmt.Sprintf("%s\n\n%s\n%s", title, phase, m.progress.Message)
}

func (m *Model) renderResult() string {
	if m.err != nil {
		return styles.err.Render(fmt.Sprintf("Curation failed: %v\n\nPress r to retry, q to quit", m.err))
	}

	if m.result == nil {
		return styles.err.Render("No result available\n\nPress r to retry, q to quit")
	}

	if m.result.ParseErr != nil {
		body := styles.warn.Render(fmt.Sprintf("Model reply could not be parsed: %v", m.result.ParseErr))
		return fmt.Sprintf("%s\n%s\n\nNo tracks were added.\n\nPress r to retry, q to quit",
			styles.title.Render("Curation Finished"), body)
	}

	title := styles.ok.Render("✓ Curation Complete!")
	info := fmt.Sprintf(
		"\nPlaylist: %s\nSuggestions: %d\nAdded: %d",
		m.result.Playlist.Playlist.Name,
		len(m.result.Suggestions),
		len(m.result.URIs),
	)

	var failed string
	if m.result.FailedCount > 0 {
		failed = fmt.Sprintf("\n\n%s", styles.warn.Render(fmt.Sprintf("Could not find %d suggestions:", m.result.FailedCount)))
		for _, outcome := range m.result.Outcomes {
			if outcome.Err != nil {
				failed += fmt.Sprintf("\n  • %s - %s", outcome.Suggestion.Artist, outcome.Suggestion.Name)
			}
		}
	}

	if m.result.AddErr != nil {
		failed += fmt.Sprintf("\n\n%s", styles.err.Render(fmt.Sprintf("Adding tracks failed: %v", m.result.AddErr)))
	}

	helpKeys := []key.Binding{m.keys.restart, m.keys.quit}
	helpView := m.help.ShortHelpView(helpKeys)

	return fmt.Sprintf("%s\n%s%s\n\n%s", title, info, failed, helpView)
}
