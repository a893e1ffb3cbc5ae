// Package shape implements the text collaborator consumed by layout: it
// parses resolved font payloads, shapes styled runs into positioned glyphs
// with go-text/typesetting's HarfBuzz implementation, and rasterizes
// individual characters into coverage buffers with
// golang.org/x/image/font/opentype.
package shape
