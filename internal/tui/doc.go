// Package tui provides terminal user interface components for sshconf.
//
// This package uses the Bubble Tea framework for the interactive host
// picker behind "sshconf pick".
//
// # Host Picker
//
// The picker lists every Host block in file order and allows selection:
//
//	result, err := tui.RunPicker(cfg.Entries, "~/.ssh/config")
//	switch result.Action {
//	case tui.ActionShow:
//	    // Print result.Entry
//	case tui.ActionEdit:
//	    // Suggest an edit command for result.Entry
//	case tui.ActionQuit:
//	    // Exit
//	}
//
// # Picker Features
//
//   - HostName, Port and directive count per block
//   - Later blocks that repeat an earlier name are marked "shadowed",
//     since lookups by name only ever reach the first one
//   - Keyboard navigation (j/k or arrows) and filtering with /
//   - Quick actions: Enter (show), e (edit command), q (quit)
//
// SimpleList renders the same information as plain text when no terminal
// is attached.
//
// # Dependencies
//
// Uses the Charm libraries:
//   - github.com/charmbracelet/bubbletea - TUI framework
//   - github.com/charmbracelet/bubbles - UI components
//   - github.com/charmbracelet/lipgloss - Styling
package tui
