// Package layout implements a pure-Go flexbox layout engine.
//
// It supports all four flex directions, wrapping (including wrap-reverse),
// justify and align modes for items and lines, flex basis (auto, fixed and
// relative), grow and shrink with min/max constraints, ordering, absolute
// positioning, margin, padding, border and gap.
// Types are re-exported through the root flex package for public consumption.
//
// The main entry point is [Calculate], which takes a [Node] tree and
// computes a [Result] holding the absolute [Rect] of every node.
package layout
