// Package sink provides the drawing backends that turn a rendered plot
// into output bytes.
//
// # Backends
//
//   - [SVG]: scalable vector graphics written with fmt into a buffer
//   - [PNG]: raster output drawn with fogleman/gg
//   - [Recorder]: a JSON list of drawing operations, used by the HTTP
//     API's geometry format and by tests
//
// PDF output goes through [render.ToPDF], which converts the SVG bytes
// with rsvg-convert.
//
// Every backend implements [render.Backend], so the same [render.Renderer]
// drives all of them:
//
//	b := sink.NewSVG(600, 400, sink.WithBackground("#ffffff"))
//	r := render.New(b)
//	r.Background(frame)
//	...
//	out := b.Bytes()
//
// Text is measured with the embedded Go font from [fonts], so label sizes
// and therefore the plot layout are identical across backends.
package sink
