// Package app wires the scanner, rule engine, playlists and UI components
// into the main bubbletea model.
package app

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/nomarr/nomarr/internal/config"
	"github.com/nomarr/nomarr/internal/history"
	"github.com/nomarr/nomarr/internal/library"
	"github.com/nomarr/nomarr/internal/models"
	"github.com/nomarr/nomarr/internal/playlists"
	"github.com/nomarr/nomarr/internal/query"
	"github.com/nomarr/nomarr/internal/tagdb"
	"github.com/nomarr/nomarr/internal/ui/components"
	"github.com/nomarr/nomarr/internal/ui/help"
	"github.com/nomarr/nomarr/internal/ui/theme"
)

// App is the main application model
type App struct {
	state      models.AppState
	config     *config.Config
	theme      theme.Theme
	leftPanel  components.Panel
	rightPanel components.Panel

	// Library
	scanner *library.Scanner
	watcher *library.Watcher

	// Persistence
	playlistManager *playlists.Manager
	historyStore    *history.Store
	tagStore        *tagdb.Store

	// Error overlay
	showError    bool
	errorOverlay *components.ErrorOverlay

	// Rule builder
	showRuleBuilder bool
	ruleBuilder     *components.RuleBuilder

	// Playlist dialog
	showPlaylists  bool
	playlistDialog *components.PlaylistDialog

	// Search
	showSearch  bool
	searchInput *components.SearchInput

	// Panels
	treeView   *components.TreeView
	trackTable *components.TrackTable

	// Results of the active query
	filteredTracks []models.Track

	statusMessage string
}

// ErrorMsg is sent when an error occurs
type ErrorMsg struct {
	Title   string
	Message string
}

// StatusMsg updates the status line
type StatusMsg struct {
	Text string
}

// ScanCompleteMsg is sent when a library scan finishes
type ScanCompleteMsg struct {
	Tracks []models.Track
	Err    error
}

// LibraryChangedMsg is sent when the watcher reports a filesystem change
type LibraryChangedMsg struct{}

// TagStoreReadyMsg is sent when the Postgres tag store is connected
type TagStoreReadyMsg struct {
	Store *tagdb.Store
	Err   error
}

// QueryResultMsg carries the outcome of running a compiled query
type QueryResultMsg struct {
	Query        string
	PlaylistID   string
	PlaylistName string
	Tracks       []models.Track
	Duration     time.Duration
	Err          error
}

// New creates a new App instance with config
func New(cfg *config.Config) *App {
	state := models.NewAppState()

	themeName := "default"
	if cfg != nil && cfg.UI.Theme != "" {
		themeName = cfg.UI.Theme
	}
	th := theme.GetTheme(themeName)

	if cfg != nil && cfg.UI.PanelWidthRatio > 0 && cfg.UI.PanelWidthRatio < 100 {
		state.LeftPanelWidth = cfg.UI.PanelWidthRatio
	}

	emptyRoot := models.NewTreeNode("root", models.TreeNodeTypeRoot, "Library")
	emptyRoot.Expanded = true

	app := &App{
		state:          state,
		config:         cfg,
		theme:          th,
		scanner:        library.NewScanner(cfg.Library.Extensions),
		errorOverlay:   components.NewErrorOverlay(th),
		ruleBuilder:    components.NewRuleBuilder(th),
		playlistDialog: components.NewPlaylistDialog(th),
		searchInput:    components.NewSearchInput(th),
		treeView:       components.NewTreeView(emptyRoot, th),
		trackTable:     components.NewTrackTable(),
		leftPanel: components.Panel{
			Title:   "Library",
			Content: "(empty)",
			Style:   lipgloss.NewStyle().BorderForeground(th.BorderFocused),
		},
		rightPanel: components.Panel{
			Title:   "Tracks",
			Content: "Select an artist or album, or press 'f' to build a rule group",
			Style:   lipgloss.NewStyle().BorderForeground(th.Border),
		},
	}

	if configDir, err := config.GetConfigPath(); err == nil {
		_ = os.MkdirAll(configDir, 0755)
		if pm, err := playlists.NewManager(configDir); err == nil {
			app.playlistManager = pm
		}
		if cfg.History.Enabled {
			if hs, err := history.NewStore(filepath.Join(configDir, "history.db")); err == nil {
				app.historyStore = hs
			}
		}
	}

	if cfg.Library.Watch {
		if w, err := library.NewWatcher(cfg.Library.Paths, cfg.Library.Extensions); err == nil {
			app.watcher = w
		}
	}

	app.updatePanelDimensions()
	app.updatePanelStyles()

	return app
}

// Init implements tea.Model
func (a *App) Init() tea.Cmd {
	var cmds []tea.Cmd

	if a.config.Library.ScanOnOpen {
		a.state.ScanInFlight = true
		cmds = append(cmds, a.scanLibrary())
	}
	if a.watcher != nil {
		cmds = append(cmds, a.waitForChange())
	}
	if a.config.Database.Enabled {
		cmds = append(cmds, a.connectTagStore())
	}

	return tea.Batch(cmds...)
}

// Update implements tea.Model
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case ErrorMsg:
		a.ShowError(msg.Title, msg.Message)
		return a, nil

	case StatusMsg:
		a.statusMessage = msg.Text
		return a, nil

	case tea.KeyMsg:
		return a.handleKey(msg)

	case ScanCompleteMsg:
		a.state.ScanInFlight = false
		if msg.Err != nil {
			a.ShowError("Scan Failed", fmt.Sprintf("Could not scan the library:\n\n%v", msg.Err))
			return a, nil
		}
		a.state.Tracks = msg.Tracks
		a.state.TreeRoot = models.BuildLibraryTree(msg.Tracks)
		a.treeView.Root = a.state.TreeRoot
		a.statusMessage = fmt.Sprintf("Scanned %d tracks", len(msg.Tracks))

		var cmds []tea.Cmd
		if a.state.ActiveQuery != "" {
			// Re-run the active query against the fresh library
			cmds = append(cmds, a.runQuery(a.state.ActiveQuery, "", ""))
		} else {
			a.trackTable.SetTracks(msg.Tracks)
		}
		if a.tagStore != nil {
			cmds = append(cmds, a.syncTagStore(msg.Tracks))
		}
		return a, tea.Batch(cmds...)

	case LibraryChangedMsg:
		var cmds []tea.Cmd
		if !a.state.ScanInFlight {
			a.state.ScanInFlight = true
			cmds = append(cmds, a.scanLibrary())
		}
		if a.watcher != nil {
			cmds = append(cmds, a.waitForChange())
		}
		return a, tea.Batch(cmds...)

	case TagStoreReadyMsg:
		if msg.Err != nil {
			a.ShowError("Database Error", fmt.Sprintf("Could not connect to the tag database:\n\n%v", msg.Err))
			return a, nil
		}
		a.tagStore = msg.Store
		a.statusMessage = "Tag database connected"
		if len(a.state.Tracks) > 0 {
			return a, a.syncTagStore(a.state.Tracks)
		}
		return a, nil

	case components.ApplyQueryMsg:
		a.showRuleBuilder = false
		return a, a.runQuery(msg.Query, "", "")

	case components.CloseRuleBuilderMsg:
		a.showRuleBuilder = false
		return a, nil

	case components.RunPlaylistMsg:
		a.showPlaylists = false
		return a, a.runQuery(msg.Playlist.Query, msg.Playlist.ID, msg.Playlist.Name)

	case components.SavePlaylistMsg:
		return a.handleSavePlaylist(msg)

	case components.DeletePlaylistMsg:
		if a.playlistManager != nil {
			if err := a.playlistManager.Delete(msg.Playlist.ID); err != nil {
				a.ShowError("Delete Failed", err.Error())
			} else {
				a.playlistDialog.SetPlaylists(a.playlistManager.GetAll())
				a.statusMessage = fmt.Sprintf("Deleted playlist '%s'", msg.Playlist.Name)
			}
		}
		return a, nil

	case components.ExportPlaylistsMsg:
		return a.handleExport(msg.Format)

	case components.ClosePlaylistDialogMsg:
		a.showPlaylists = false
		return a, nil

	case components.SearchInputMsg:
		return a.handleSearch(msg)

	case components.CloseSearchMsg:
		a.showSearch = false
		a.searchInput.Reset()
		return a, nil

	case components.TreeNodeSelectedMsg:
		if msg.Node != nil {
			a.trackTable.SetTracks(msg.Node.Tracks())
			a.state.FocusedPanel = models.RightPanel
			a.updatePanelStyles()
		}
		return a, nil

	case QueryResultMsg:
		return a.handleQueryResult(msg)

	case tea.WindowSizeMsg:
		a.state.Width = msg.Width
		a.state.Height = msg.Height
		a.updatePanelDimensions()
	}
	return a, nil
}

// handleKey routes keyboard input to the active overlay or the panels
func (a *App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Error overlay consumes everything except quit
	if a.showError {
		switch msg.String() {
		case "esc", "enter":
			a.DismissError()
			return a, nil
		case "q", "ctrl+c":
			return a, tea.Quit
		}
		return a, nil
	}

	if a.showRuleBuilder {
		if msg.String() == "ctrl+c" {
			return a, tea.Quit
		}
		var cmd tea.Cmd
		a.ruleBuilder, cmd = a.ruleBuilder.Update(msg)
		return a, cmd
	}

	if a.showPlaylists {
		if msg.String() == "ctrl+c" {
			return a, tea.Quit
		}
		var cmd tea.Cmd
		a.playlistDialog, cmd = a.playlistDialog.Update(msg)
		return a, cmd
	}

	if a.showSearch {
		var cmd tea.Cmd
		a.searchInput, cmd = a.searchInput.Update(msg)
		return a, cmd
	}

	switch msg.String() {
	case "q", "ctrl+c":
		if a.state.ViewMode == models.HelpMode {
			a.state.ViewMode = models.NormalMode
			return a, nil
		}
		return a, tea.Quit

	case "?":
		if a.state.ViewMode == models.HelpMode {
			a.state.ViewMode = models.NormalMode
		} else {
			a.state.ViewMode = models.HelpMode
		}

	case "esc":
		if a.state.ViewMode == models.HelpMode {
			a.state.ViewMode = models.NormalMode
		}

	case "f":
		a.showRuleBuilder = true
		return a, nil

	case "p":
		if a.playlistManager != nil {
			a.playlistDialog.SetPlaylists(a.playlistManager.GetAll())
			a.showPlaylists = true
		}
		return a, nil

	case "s":
		// Save the active query as a playlist
		if a.state.ActiveQuery == "" {
			a.ShowError("Nothing to Save", "Apply a rule group first, then save it as a playlist.")
			return a, nil
		}
		if a.playlistManager == nil {
			a.ShowError("Playlists Unavailable", "The playlist store could not be opened.")
			return a, nil
		}
		a.playlistDialog.SetPlaylists(a.playlistManager.GetAll())
		a.playlistDialog.StartSave()
		a.showPlaylists = true
		return a, nil

	case "/":
		a.showSearch = true
		return a, nil

	case "r", "f5":
		if !a.state.ScanInFlight {
			a.state.ScanInFlight = true
			a.statusMessage = "Rescanning library..."
			return a, a.scanLibrary()
		}
		return a, nil

	case "ctrl+r":
		// Clear the active query
		a.state.ActiveQuery = ""
		a.filteredTracks = nil
		a.trackTable.SetTracks(a.state.Tracks)
		a.statusMessage = "Query cleared"
		return a, nil

	case "tab":
		if a.state.ViewMode == models.NormalMode {
			if a.state.FocusedPanel == models.LeftPanel {
				a.state.FocusedPanel = models.RightPanel
			} else {
				a.state.FocusedPanel = models.LeftPanel
			}
			a.updatePanelStyles()
		}

	default:
		if a.state.ViewMode != models.NormalMode {
			return a, nil
		}
		if a.state.FocusedPanel == models.LeftPanel {
			var cmd tea.Cmd
			a.treeView, cmd = a.treeView.Update(msg)
			return a, cmd
		}
		switch msg.String() {
		case "up", "k":
			a.trackTable.MoveSelection(-1)
		case "down", "j":
			a.trackTable.MoveSelection(1)
		case "ctrl+u":
			a.trackTable.PageUp()
		case "ctrl+d":
			a.trackTable.PageDown()
		}
	}
	return a, nil
}

// handleSavePlaylist saves the active query under the entered name
func (a *App) handleSavePlaylist(msg components.SavePlaylistMsg) (tea.Model, tea.Cmd) {
	if a.playlistManager == nil || a.state.ActiveQuery == "" {
		a.showPlaylists = false
		return a, nil
	}

	playlist, err := a.playlistManager.Add(msg.Name, msg.Description, a.state.ActiveQuery, msg.Labels)
	if err != nil {
		a.ShowError("Save Failed", err.Error())
		return a, nil
	}

	a.playlistDialog.SetPlaylists(a.playlistManager.GetAll())
	a.statusMessage = fmt.Sprintf("Saved playlist '%s'", playlist.Name)
	return a, nil
}

// handleExport exports the playlists in the requested format
func (a *App) handleExport(format string) (tea.Model, tea.Cmd) {
	if a.playlistManager == nil {
		return a, nil
	}

	var (
		path string
		err  error
	)
	if format == "json" {
		path, err = a.playlistManager.ExportToJSON()
	} else {
		path, err = a.playlistManager.ExportToCSV()
	}
	if err != nil {
		a.ShowError("Export Failed", err.Error())
		return a, nil
	}

	a.statusMessage = fmt.Sprintf("Exported playlists to %s", path)
	return a, nil
}

// handleSearch runs a free-text search over the library or playlists
func (a *App) handleSearch(msg components.SearchInputMsg) (tea.Model, tea.Cmd) {
	a.showSearch = false
	a.searchInput.Reset()

	if msg.Mode == "playlists" {
		if a.playlistManager == nil {
			return a, nil
		}
		a.playlistDialog.SetPlaylists(a.playlistManager.Search(msg.Query))
		a.showPlaylists = true
		return a, nil
	}

	matches := searchTracks(a.state.Tracks, msg.Query)
	a.trackTable.SetTracks(matches)
	a.state.FocusedPanel = models.RightPanel
	a.updatePanelStyles()
	a.statusMessage = fmt.Sprintf("%d tracks match '%s'", len(matches), msg.Query)
	return a, nil
}

// handleQueryResult applies query results and records history
func (a *App) handleQueryResult(msg QueryResultMsg) (tea.Model, tea.Cmd) {
	if a.historyStore != nil {
		entry := history.Entry{
			PlaylistName: msg.PlaylistName,
			Query:        msg.Query,
			Duration:     msg.Duration,
			MatchCount:   int64(len(msg.Tracks)),
			Success:      msg.Err == nil,
		}
		if msg.Err != nil {
			entry.ErrorMessage = msg.Err.Error()
		}
		_ = a.historyStore.Add(entry)
		if a.config.History.MaxEntries > 0 {
			_ = a.historyStore.Prune(a.config.History.MaxEntries)
		}
	}

	if msg.Err != nil {
		a.ShowError("Query Failed", fmt.Sprintf("Could not run the query:\n\n%v", msg.Err))
		return a, nil
	}

	a.state.ActiveQuery = msg.Query
	a.filteredTracks = msg.Tracks
	a.trackTable.SetTracks(msg.Tracks)
	a.state.FocusedPanel = models.RightPanel
	a.updatePanelStyles()
	a.statusMessage = fmt.Sprintf("%d tracks match (%s)", len(msg.Tracks), msg.Duration.Round(time.Millisecond))

	if msg.PlaylistID != "" && a.playlistManager != nil {
		_ = a.playlistManager.RecordUsage(msg.PlaylistID)
	}
	return a, nil
}

// View implements tea.Model
func (a *App) View() string {
	if a.showError {
		return lipgloss.Place(
			a.state.Width, a.state.Height,
			lipgloss.Center, lipgloss.Center,
			a.errorOverlay.View(),
		)
	}

	if a.showRuleBuilder {
		return a.centerOverlay(a.ruleBuilder.View, &a.ruleBuilder.Width, &a.ruleBuilder.Height)
	}

	if a.showPlaylists {
		return a.centerOverlay(a.playlistDialog.View, &a.playlistDialog.Width, &a.playlistDialog.Height)
	}

	if a.showSearch {
		a.searchInput.Width = a.state.Width / 2
		return lipgloss.Place(
			a.state.Width, a.state.Height,
			lipgloss.Center, lipgloss.Center,
			a.searchInput.View(),
		)
	}

	if a.state.ViewMode == models.HelpMode {
		return help.Render(a.state.Width, a.state.Height)
	}

	return a.renderNormalView()
}

// centerOverlay sizes and centers a dialog on the screen
func (a *App) centerOverlay(view func() string, width, height *int) string {
	w := a.state.Width * 3 / 4
	if w < 40 {
		w = 40
	}
	h := a.state.Height * 3 / 4
	if h < 15 {
		h = 15
	}
	*width = w
	*height = h

	return lipgloss.Place(
		a.state.Width, a.state.Height,
		lipgloss.Center, lipgloss.Center,
		view(),
	)
}

// renderNormalView renders the normal application view
func (a *App) renderNormalView() string {
	topBarLeft := "nomarr"
	if a.state.ActiveQuery != "" {
		topBarLeft = "nomarr │ " + a.state.ActiveQuery
	}
	topBarRight := "? Help"
	if a.state.ScanInFlight {
		topBarRight = "Scanning... │ ? Help"
	}
	topBarContent := a.formatStatusBar(topBarLeft, topBarRight)

	topBar := lipgloss.NewStyle().
		Width(a.state.Width).
		Background(a.theme.BorderFocused).
		Foreground(lipgloss.Color("230")).
		Padding(0, 2).
		Render(topBarContent)

	bottomBarLeft := "[tab] Switch panel | [f] Rules | [p] Playlists | [q] Quit"
	bottomBarRight := a.statusMessage
	bottomBarContent := a.formatStatusBar(bottomBarLeft, bottomBarRight)

	bottomBar := lipgloss.NewStyle().
		Width(a.state.Width).
		Background(a.theme.Selection).
		Foreground(a.theme.Foreground).
		Padding(0, 2).
		Render(bottomBarContent)

	a.treeView.Width = a.leftPanel.Width
	a.treeView.Height = a.leftPanel.Height
	a.leftPanel.Content = a.treeView.View()

	a.trackTable.Width = a.rightPanel.Width
	a.trackTable.Height = a.rightPanel.Height
	a.rightPanel.Content = a.trackTable.View()

	panels := lipgloss.JoinHorizontal(
		lipgloss.Top,
		a.leftPanel.View(),
		a.rightPanel.View(),
	)

	return lipgloss.JoinVertical(
		lipgloss.Left,
		topBar,
		panels,
		bottomBar,
	)
}

// updatePanelDimensions calculates panel sizes based on window size
func (a *App) updatePanelDimensions() {
	if a.state.Width <= 0 || a.state.Height <= 0 {
		return
	}

	// Top bar and bottom bar take one line each
	contentHeight := a.state.Height - 2
	if contentHeight < 5 {
		contentHeight = 5
	}

	leftWidth := (a.state.Width * a.state.LeftPanelWidth) / 100
	if leftWidth < 20 {
		leftWidth = 20
	}

	// Subtract 4 to account for borders on both panels
	rightWidth := a.state.Width - leftWidth - 4
	if rightWidth < 20 {
		rightWidth = 20
		leftWidth = a.state.Width - rightWidth - 4
	}

	a.leftPanel.Width = leftWidth
	a.leftPanel.Height = contentHeight
	a.rightPanel.Width = rightWidth
	a.rightPanel.Height = contentHeight
}

// updatePanelStyles updates panel styling based on focus
func (a *App) updatePanelStyles() {
	if a.state.FocusedPanel == models.LeftPanel {
		a.leftPanel.Style = lipgloss.NewStyle().BorderForeground(a.theme.BorderFocused)
		a.rightPanel.Style = lipgloss.NewStyle().BorderForeground(a.theme.Border)
	} else {
		a.leftPanel.Style = lipgloss.NewStyle().BorderForeground(a.theme.Border)
		a.rightPanel.Style = lipgloss.NewStyle().BorderForeground(a.theme.BorderFocused)
	}
}

// formatStatusBar formats a status bar with left and right aligned content
func (a *App) formatStatusBar(left, right string) string {
	availableWidth := a.state.Width - 4
	if availableWidth < 0 {
		availableWidth = 0
	}

	leftLen := len(left)
	rightLen := len(right)

	if leftLen+rightLen > availableWidth {
		if availableWidth > rightLen {
			return left[:availableWidth-rightLen] + right
		}
		if availableWidth <= leftLen {
			return left[:availableWidth]
		}
		return left
	}

	spacing := availableWidth - leftLen - rightLen
	return left + lipgloss.NewStyle().Width(spacing).Render("") + right
}

// scanLibrary scans the configured library roots in the background
func (a *App) scanLibrary() tea.Cmd {
	paths := a.config.Library.Paths
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
		defer cancel()

		tracks, err := a.scanner.Scan(ctx, paths)
		return ScanCompleteMsg{Tracks: tracks, Err: err}
	}
}

// waitForChange blocks on the watcher until the library changes
func (a *App) waitForChange() tea.Cmd {
	changes := a.watcher.Changes()
	return func() tea.Msg {
		if _, ok := <-changes; !ok {
			return nil
		}
		return LibraryChangedMsg{}
	}
}

// connectTagStore connects the optional Postgres tag store
func (a *App) connectTagStore() tea.Cmd {
	cfg := a.config.Database
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		pool, err := tagdb.NewPool(ctx, cfg)
		if err != nil {
			return TagStoreReadyMsg{Err: err}
		}
		store, err := tagdb.NewStore(ctx, pool)
		if err != nil {
			pool.Close()
			return TagStoreReadyMsg{Err: err}
		}
		return TagStoreReadyMsg{Store: store}
	}
}

// syncTagStore mirrors the scanned tracks into the tag database
func (a *App) syncTagStore(tracks []models.Track) tea.Cmd {
	store := a.tagStore
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
		defer cancel()

		for _, track := range tracks {
			if err := store.UpsertTrack(ctx, track); err != nil {
				return ErrorMsg{
					Title:   "Database Error",
					Message: fmt.Sprintf("Could not sync '%s' to the tag database:\n\n%v", track.Path, err),
				}
			}
		}
		return StatusMsg{Text: fmt.Sprintf("Synced %d tracks to the tag database", len(tracks))}
	}
}

// runQuery executes a compiled query against the library. With the tag
// database connected the search runs there, otherwise tracks are filtered
// in memory.
func (a *App) runQuery(compiled, playlistID, playlistName string) tea.Cmd {
	store := a.tagStore
	tracks := a.state.Tracks
	return func() tea.Msg {
		start := time.Now()

		if store != nil {
			ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			defer cancel()

			matches, err := store.Search(ctx, compiled)
			return QueryResultMsg{
				Query:        compiled,
				PlaylistID:   playlistID,
				PlaylistName: playlistName,
				Tracks:       matches,
				Duration:     time.Since(start),
				Err:          err,
			}
		}

		node, err := query.Parse(compiled)
		if err != nil {
			return QueryResultMsg{
				Query:        compiled,
				PlaylistID:   playlistID,
				PlaylistName: playlistName,
				Duration:     time.Since(start),
				Err:          err,
			}
		}

		return QueryResultMsg{
			Query:        compiled,
			PlaylistID:   playlistID,
			PlaylistName: playlistName,
			Tracks:       query.Filter(node, tracks),
			Duration:     time.Since(start),
		}
	}
}

// searchTracks matches tracks whose title, artist, album or tag values
// contain the text (case-insensitive)
func searchTracks(tracks []models.Track, text string) []models.Track {
	if text == "" {
		return tracks
	}

	var matches []models.Track
	for _, track := range tracks {
		if containsFold(track.Title, text) ||
			containsFold(track.Artist, text) ||
			containsFold(track.Album, text) {
			matches = append(matches, track)
			continue
		}
		for _, value := range track.Tags {
			if containsFold(value, text) {
				matches = append(matches, track)
				break
			}
		}
	}
	return matches
}

func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}

// Close releases background resources
func (a *App) Close() {
	if a.watcher != nil {
		_ = a.watcher.Close()
	}
	if a.historyStore != nil {
		_ = a.historyStore.Close()
	}
}

// ShowError displays an error overlay with the given title and message
func (a *App) ShowError(title, message string) {
	a.errorOverlay.SetError(title, message)
	a.showError = true
}

// DismissError hides the error overlay
func (a *App) DismissError() {
	a.showError = false
}
