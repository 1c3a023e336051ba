// Package tui implements the core of a terminal user-interface substrate.
//
// It owns the life-cycle of the controlling TTY (raw mode, restoration,
// window-resize notification), performs efficient output buffering and
// keystroke decoding, and offers an in-memory page model that accumulates
// draw operations and produces a minimised update stream for the attached
// display.
//
// The distinctive part of the package is the page/row engine: an
// append-only, self-normalising representation of a screen line that
// allows arbitrary clipped overwriting draws to accumulate cheaply, then
// collapses them into a canonical left-to-right glyph sequence and diffs
// that sequence against the previously displayed state. See Page, Region
// and Row.
//
// Supporting the engine are the OutputBuffer, a byte accumulator with an
// explicit commit boundary, and the Controller, a long-lived coordinator
// that owns OS resources, decodes input, announces resizes, and restores
// the TTY on panic.
//
// This package does not implement a full terminal emulator: there is no
// scrollback and no variable-width font metrics beyond the pluggable
// Measure function, whose default rule is one cell per codepoint.
package tui
