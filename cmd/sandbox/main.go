package main

import (
	"log"

	"github.com/spf13/cobra"

	"github.com/STBoyden/ptgui/engine/core"
	glbackend "github.com/STBoyden/ptgui/engine/gfx/gl"
	"github.com/STBoyden/ptgui/engine/platform"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:   "sandbox",
	Short: "Run the ptgui sample programs",
	Long: `Opens a window running one of the widget samples.
Escape or Q closes the window, F1 toggles the debug overlay.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "ptgui.yaml", "YAML file overriding window and font settings")
}

// run opens a window and drives sample until the window closes.
func run(title string, sample func(*App) core.Layer) error {
	cfg, err := core.LoadConfig(configPath)
	if err != nil {
		return err
	}
	if cfg.Title == core.DefaultConfig().Title {
		cfg.Title = title
	}

	app := &App{sample: sample}
	newWindow := func(cfg core.Config) (core.Window, error) {
		w, err := platform.NewGLFWWindow(cfg, nil)
		if err != nil {
			return nil, err
		}
		app.window = w
		return w, nil
	}
	newRenderer := func(win core.Window, cfg core.Config) (core.Renderer, error) {
		return glbackend.NewRendererGL(win, cfg)
	}

	defer func() {
		if app.window != nil {
			app.window.Destroy()
		}
	}()
	return core.Run(app, cfg, newWindow, newRenderer)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Fatal(err)
	}
}
