// Package layout turns an ordered list of styled text runs into a finished
// pixel buffer. It resolves each referenced font exactly once, delegates
// glyph placement to a shaping engine, computes the canvas size including
// aspect-ratio-driven padding, and drives the compositing primitives per
// glyph. The concrete shaping and rasterization engine lives in the shape
// package; this package only consumes the Engine interface.
package layout
