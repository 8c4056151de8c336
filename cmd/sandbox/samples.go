package main

import (
	"fmt"
	"log"
	"math"

	"github.com/spf13/cobra"

	"github.com/STBoyden/ptgui/engine/colors"
	"github.com/STBoyden/ptgui/engine/core"
	"github.com/STBoyden/ptgui/engine/ui"
)

type State int

const (
	StateNone State = iota
	StateQuit
	StatePrintWord
)

func buttonAction(state *State, action string) {
	switch action {
	case "quit":
		*state = StateQuit
	case "print_word":
		*state = StatePrintWord
	}
}

// handleState reacts to what the last batch of actions left in state.
func handleState(e *core.Engine, _ *ui.Frame, state *State) {
	switch *state {
	case StatePrintWord:
		fmt.Println("Hello")
		*state = StateNone
	case StateQuit:
		e.Window.RequestClose()
	}
}

func buttonHandler(a *App) *ui.Handler[State] {
	return ui.NewHandler[State](colors.White, a.surface).
		AddButtonWithPosition("Hello", "print_word", ui.Pt(100, 0)).
		AddButton("Goodbye", "quit").
		AddButton("Hello again", "print_word").
		AddButton("Hello again again", "print_word").
		AddButtonWithPosition("Oop I'm over here now", "", ui.Pt(600, 100)).
		AddButton("Wooop", "").
		SetFixWidths(true).
		SetActionFunc(buttonAction)
}

var buttonsCmd = &cobra.Command{
	Use:   "buttons",
	Short: "Stacked buttons sharing one width, two of them bound to actions",
	RunE: func(cmd *cobra.Command, args []string) error {
		return run("Button Test", func(a *App) core.Layer {
			return &LayerUI[State]{app: a, handler: buttonHandler(a), after: handleState}
		})
	},
}

// cursorDisc fills a circle of radius r around the pointer, one row at a time.
func cursorDisc(r int) ui.Hook {
	return func(c ui.Canvas) {
		m := c.MousePosition()
		for dy := -r; dy <= r; dy++ {
			half := int(math.Sqrt(float64(r*r - dy*dy)))
			c.DrawRectangle(m.X-half, m.Y+dy, 2*half+1, 1, colors.Green)
		}
	}
}

var hooksCmd = &cobra.Command{
	Use:   "hooks",
	Short: "The buttons sample with an external draw under the widgets",
	RunE: func(cmd *cobra.Command, args []string) error {
		return run("Button Test", func(a *App) core.Layer {
			h := buttonHandler(a).AddHook(cursorDisc(30))
			return &LayerUI[State]{app: a, handler: h, after: handleState}
		})
	},
}

var sliderCmd = &cobra.Command{
	Use:   "slider",
	Short: "Four sliders, logging the first two whenever they move",
	RunE: func(cmd *cobra.Command, args []string) error {
		return run("Slider Test", func(a *App) core.Layer {
			h := ui.NewHandler[struct{}](colors.White, a.surface).
				AddSliderWithPosition(0, 255, 0, ui.Pt(100, 100)).
				AddSlider(0, 10, 0).
				AddSliderWithPosition(69, 420, 0, ui.Pt(500, 0)).
				AddSlider(10, 20, 10).
				SetFixWidths(true)

			var last [2]float32
			return &LayerUI[struct{}]{app: a, handler: h, after: func(*core.Engine, *ui.Frame, *struct{}) {
				var now [2]float32
				for i := range now {
					v, err := h.SliderValue(i)
					if err != nil {
						log.Printf("slider %d: %v", i, err)
						return
					}
					now[i] = v
				}
				if now != last {
					log.Printf("Slider 1: %v, Slider 2: %v", now[0], now[1])
					last = now
				}
			}}
		})
	},
}

var labelCmd = &cobra.Command{
	Use:   "label",
	Short: "A heading label above a button",
	RunE: func(cmd *cobra.Command, args []string) error {
		return run("Label test", func(a *App) core.Layer {
			h := ui.NewHandler[State](colors.White, a.surface).
				AddLabel("Main Menu").
				AddButton("Test button", "").
				SetActionFunc(func(s *State, _ string) { *s = StateNone }).
				SetFixWidths(true)
			return &LayerUI[State]{app: a, handler: h}
		})
	},
}

var dropdownCmd = &cobra.Command{
	Use:   "dropdown",
	Short: "A slider and a dropdown that reveals another slider",
	RunE: func(cmd *cobra.Command, args []string) error {
		return run("Dropdown Test", func(a *App) core.Layer {
			h := ui.NewHandler[struct{}](colors.White, a.surface).
				AddSlider(69, 420, 69).
				SetFixWidths(true).
				AddDropdown("Test")
			h.Dropdowns()[0].AddSlider(0, 100, 50)
			return &LayerUI[struct{}]{app: a, handler: h}
		})
	},
}

func init() {
	rootCmd.AddCommand(buttonsCmd, hooksCmd, sliderCmd, labelCmd, dropdownCmd)
}
