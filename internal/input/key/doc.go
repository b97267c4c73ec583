// Package key parses key specifications into bindings matched against
// backend key events.
//
// Key specifications can be written in two formats:
//
//   - Modifier style: "a", "Enter", "PageUp", "Ctrl+V", "Alt+F4"
//   - Vim style: "<C-v>", "<CR>", "<Esc>", "<PageUp>"
//
// Control letters are normalized to the backend's dedicated control keys,
// so "Ctrl+V", "ctrl+v" and "<C-V>" all produce the same binding.
package key
