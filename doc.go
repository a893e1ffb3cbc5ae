// Package textual renders styled text into RGBA pixel buffers.
//
// The root package holds the compositing primitives: Color, Pattern, Mask
// and Pixmap. Font resolution and caching live in the font subpackage, run
// layout and canvas sizing in layout, and the concrete shaping and
// rasterization engine in shape.
//
// A typical render resolves each referenced font through font.Resolver,
// lays the runs out with layout.Renderer, and hands the finished Pixmap's
// raw RGBA bytes to an image encoder.
package textual
