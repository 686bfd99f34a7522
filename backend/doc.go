// Package backend provides a registry of drawing surfaces for ggui.
//
// A surface is a ggui.Canvas plus the matching ggui.Textures, with a
// pixel buffer that can be read back. Backends register a factory from
// their init functions, so importing a backend package makes it available:
//
//	import _ "github.com/gogpu/ggui/backend/software"
//
// # Backend Selection
//
// Use Default to get the best available backend, or Get to request one by
// name:
//
//	b := backend.Default()
//	s, err := b.NewSurface(800, 600)
//
// # Available Backends
//
// - "software": CPU rasterization through github.com/gogpu/gg
package backend
