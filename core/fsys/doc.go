// Package fsys abstracts the byte-level filesystem operations used by the
// cheat registry, the flat-file engine and the cheat-file manager.
//
// The interface exists so tests can redirect every path to a temporary
// directory and so a missing file is an explicit, non-error condition
// (ReadFile returns an exists flag instead of wrapping fs.ErrNotExist).
package fsys
