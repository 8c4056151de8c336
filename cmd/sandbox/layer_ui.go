package main

import (
	"log"

	"github.com/STBoyden/ptgui/engine/core"
	"github.com/STBoyden/ptgui/engine/ui"
)

// LayerUI runs one widget handler per frame: queued actions, then the widgets,
// then whatever the sample and the debug layer draw on the returned frame.
type LayerUI[T any] struct {
	app     *App
	handler *ui.Handler[T]
	state   T
	after   func(e *core.Engine, frame *ui.Frame, state *T)
}

func (l *LayerUI[T]) OnAttach(e *core.Engine)             {}
func (l *LayerUI[T]) OnDetach(e *core.Engine)             {}
func (l *LayerUI[T]) OnUpdate(e *core.Engine, dt float64) {}
func (l *LayerUI[T]) OnEvent(e *core.Engine, ev core.Event) bool {
	return false
}

func (l *LayerUI[T]) OnRender(e *core.Engine, alpha float64) {
	l.handler.ExecuteActions(&l.state)

	frame, err := l.handler.Draw(l.app.surface)
	if err != nil {
		log.Printf("draw: %v", err)
		e.Window.RequestClose()
		return
	}

	if l.after != nil {
		l.after(e, frame, &l.state)
	}
	l.app.debugLayer.Draw(frame, l.app.surface.Stats())

	if err := frame.End(); err != nil {
		log.Printf("end frame: %v", err)
	}
	if err := l.app.surface.Err(); err != nil {
		log.Printf("surface: %v", err)
	}
}
