// Package ui implements an interactive terminal interface using bubbletea's Elm architecture.
//
// The TUI provides a multi-view workflow for playlist curation:
//  1. [TrackListView] : Preview the configured playlist's tracks
//  2. [ConfirmView] : Pick a suggestion count and confirm
//  3. [CurateView] : Monitor real-time progress updates
//  4. [ResultView] : Review resolved and unmatched suggestions
//
// The [Model] implements bubbletea's standard Init/Update/View pattern.
// Progress updates flow through a channel from the CurationEngine, providing
// non-blocking status reporting during a run.
//
// Keyboard navigation uses vim-style bindings (j/k, enter, esc, y/n, q) with contextual help displayed via charmbracelet/bubbles/help.
package ui
