// Package console implements an interactive full-screen console.
//
// The screen is split into an output pane, a one-line status bar and a
// one-line input editor. Text written to Out and Err scrolls in the output
// pane; each line the user submits is delivered on In. Only regions that
// changed since the last cycle are redrawn.
//
// Default bindings:
//
//	Enter      submit the line
//	Up/Down    browse history
//	Left/Right move the cursor
//	Escape     discard the line
//	PageUp     scroll output up
//	PageDown   scroll output down
//	Backspace  delete before the cursor
//	Delete     delete under the cursor
//	Insert     toggle overwrite mode
//	Ctrl+V     paste from the clipboard
//	Ctrl+C     stop the console
package console
