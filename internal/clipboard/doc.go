// Package clipboard provides the copy/paste side channel used to exchange
// public keys and frames.
//
// Backends
//
//   - System   the desktop clipboard via github.com/atotto/clipboard
//     (xclip/xsel/wl-clipboard on Linux, pbcopy on macOS, the Win32 API)
//   - OSC52    an OSC 52 terminal escape sequence written to the terminal, which
//     works over SSH; copy only
//   - None     copying is a no-op; for pipes and headless use
//
// New picks one by Mode; ModeAuto prefers System, then OSC52 when attached to
// a terminal, then None.
package clipboard
