package main

import (
	"fmt"
	"runtime"
	"time"

	"github.com/STBoyden/ptgui/engine/colors"
	"github.com/STBoyden/ptgui/engine/core"
	"github.com/STBoyden/ptgui/engine/gfx/renderer2d"
	"github.com/STBoyden/ptgui/engine/text"
	"github.com/STBoyden/ptgui/engine/ui"
)

const debugPanelWidth = 260

// LayerDebug times frames and paints the FPS counter plus, when toggled with
// F1, a panel of renderer and runtime counters.
type LayerDebug struct {
	font          *text.Font
	fontSize      int
	frameDuration float32
	lastFrame     time.Time
	tick          int
	width         int
	detailed      bool
	mem           runtime.MemStats
}

func (l *LayerDebug) OnAttach(e *core.Engine) {
	l.width, _ = e.Window.FramebufferSize()
}

func (l *LayerDebug) OnDetach(e *core.Engine) {}

func (l *LayerDebug) OnUpdate(e *core.Engine, dt float64) {}

func (l *LayerDebug) OnRender(e *core.Engine, alpha float64) {
	now := time.Now()
	if !l.lastFrame.IsZero() {
		l.frameDuration = float32(now.Sub(l.lastFrame).Seconds() * 1000.0)
	}
	l.lastFrame = now

	if e.Input.IsKeyPressed(core.KeyF1) {
		l.detailed = !l.detailed
	}
	if l.detailed {
		runtime.ReadMemStats(&l.mem)
	}
}

func (l *LayerDebug) OnEvent(e *core.Engine, ev core.Event) bool {
	if ev, ok := ev.(core.EventResize); ok {
		l.width = ev.W
	}
	return false
}

func (l *LayerDebug) fps() int {
	if l.frameDuration <= 0 {
		return 0
	}
	return int(1000.0/l.frameDuration + 0.5)
}

// Draw paints onto the frame the sample handed back from its handler.
func (l *LayerDebug) Draw(c ui.Canvas, stats renderer2d.Statistics) {
	c.DrawText(fmt.Sprintf("%d FPS", l.fps()), 0, 0, l.fontSize, colors.Green)
	if !l.detailed {
		return
	}

	lines := []string{
		fmt.Sprintf("Frame: %d", l.tick),
		fmt.Sprintf("  %2.3f ms", l.frameDuration),
		"2D Renderer",
		fmt.Sprintf("  Draw Calls: %d", stats.DrawCalls),
		fmt.Sprintf("  Quads: %d", stats.QuadCount),
		fmt.Sprintf("  Lines: %d", stats.LineCount),
		fmt.Sprintf("  Text: %d", stats.TextCount),
		"Memory",
		fmt.Sprintf("  Heap: %.3f MB", float32(l.mem.HeapAlloc)/(1<<20)),
		fmt.Sprintf("  Goroutines: %d", runtime.NumGoroutine()),
	}

	lineH := text.LineHeight(l.font, l.fontSize)
	x := l.width - debugPanelWidth
	c.DrawRectangle(x, 0, debugPanelWidth, len(lines)*lineH+16, colors.Black.WithAlpha(0.5))
	for i, s := range lines {
		col := colors.White
		if s[0] != ' ' {
			col = colors.Yellow
		}
		c.DrawText(s, x+8, 8+i*lineH, l.fontSize, col)
	}
}
