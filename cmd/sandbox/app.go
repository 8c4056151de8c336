package main

import (
	"log"

	"github.com/STBoyden/ptgui/engine/assets"
	"github.com/STBoyden/ptgui/engine/core"
	"github.com/STBoyden/ptgui/engine/gfx/renderer2d"
	"github.com/STBoyden/ptgui/engine/platform"
	"github.com/STBoyden/ptgui/engine/surface"
	"github.com/STBoyden/ptgui/engine/text"
)

type App struct {
	sample     func(*App) core.Layer
	window     *platform.GLFWWindow
	tick       int
	font       *text.Font
	surface    *surface.Surface
	debugLayer *LayerDebug
}

func (a *App) OnStart(e *core.Engine) {
	var err error
	a.font, err = assets.LoadFont(e.Config.FontPath)
	if err != nil {
		log.Printf("%v, falling back to the bundled font", err)
		if a.font, err = text.Default(); err != nil {
			panic(err)
		}
	}

	w, h := e.Window.FramebufferSize()
	a.surface = surface.New(renderer2d.New(w, h, a.font), e.Input, e.Renderer)
	if a.window != nil {
		a.surface.SetCursorScale(a.window.ContentScale())
	}

	// the sample renders first; the debug layer only draws into its frame
	e.Layers.Push(a.sample(a))

	a.debugLayer = &LayerDebug{font: a.font, fontSize: e.Config.FontSize}
	e.Layers.Push(a.debugLayer)
}

func (a *App) OnUpdate(e *core.Engine, dt float64) {
	a.tick++
	if a.debugLayer != nil {
		a.debugLayer.tick = a.tick
	}
}

func (a *App) OnRender(e *core.Engine, alpha float64) {
	if e.Input.IsKeyPressed(core.KeyEscape) || e.Input.IsKeyPressed(core.KeyQ) {
		e.Window.RequestClose()
	}
}

func (a *App) OnEvent(e *core.Engine, ev core.Event) {
	switch ev := ev.(type) {
	case core.EventResize:
		a.surface.Resize(ev.W, ev.H)
		if a.window != nil {
			a.surface.SetCursorScale(a.window.ContentScale())
		}
	}
}

func (a *App) OnShutdown(e *core.Engine) {
	a.font.Close()
}
