package engine

import "gridsnake/internal/domain"

// RenderSink receives a frame after every tick and whenever a session
// starts. Render is called from the engine's clock goroutine and must not
// block for long.
type RenderSink interface {
	Render(frame Frame)
}

// RenderFunc adapts a plain function to RenderSink.
type RenderFunc func(frame Frame)

func (f RenderFunc) Render(frame Frame) {
	f(frame)
}

type Layout struct {
	TileCount int32
	CellSize  int32
}

type Frame struct {
	Snapshot domain.Snapshot
	Layout   Layout
}
