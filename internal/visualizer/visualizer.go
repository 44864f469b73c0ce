// Package visualizer turns the particle field and the music into terminal
// output: a braille point cloud, an audio analyser that mirrors a browser
// AnalyserNode, and a rolling audio-level graph.
package visualizer

// FPS is the frame rate the renderers and springs are tuned for.
const FPS = 30

// Renderer produces one frame of text for the given cell dimensions.
type Renderer interface {
	Name() string
	View() string
}
