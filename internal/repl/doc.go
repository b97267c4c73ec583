// Package repl implements the multi-window read-eval-print engine.
//
// A Window is an independent command context: it owns a prompt, an ordered
// set of Commands and an eval Hook. A Manager holds every Window plus the
// index of the active one, and a Driver runs the read, eval, print cycle for
// whichever window is active against a LineTerminal.
//
// Evaluating one line:
//
//	line -> tokenize.Parse -> Hook.Eval -> built-in help | command match -> Result
//
// The hook always runs first. It may suppress the built-in processing
// entirely, and its text is what gets printed when no command matches, so
// "unknown command" wording belongs to the caller.
//
// Registry and window state have a single owner. Mutations are guarded and
// panic when they overlap; nothing here is safe to share between goroutines.
package repl
