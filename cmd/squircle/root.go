package main

import (
	"log/slog"

	"github.com/spf13/cobra"

	"honnef.co/go/squircle"
	"honnef.co/go/squircle/internal/config"
	"honnef.co/go/squircle/pathcache"
)

// app holds the flag values shared by all subcommands.
type app struct {
	configPath string
	verbose    bool

	width, height, radius                      float64
	topLeft, topRight, bottomRight, bottomLeft float64
	smoothing                                  float64
	preserveSmoothing                          bool
	precision                                  int

	cache *pathcache.Cache
}

func newRootCommand() *cobra.Command {
	a := &app{cache: pathcache.New(0)}

	root := &cobra.Command{
		Use:   "squircle",
		Short: "Generate smoothed rounded rectangle outlines",
		Long: `squircle computes rounded rectangles whose corners blend into the edges
with continuous curvature, and prints them as SVG path data, CSS or SVG.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if a.verbose {
				h := slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: slog.LevelDebug})
				squircle.SetLogger(slog.New(h))
			}
		},
	}

	pf := root.PersistentFlags()
	pf.StringVarP(&a.configPath, "config", "c", "", "read parameters from a TOML or YAML `file`")
	pf.BoolVarP(&a.verbose, "verbose", "v", false, "log adjustments made to the parameters")
	pf.Float64Var(&a.width, "width", 0, "width of the rectangle")
	pf.Float64Var(&a.height, "height", 0, "height of the rectangle")
	pf.Float64Var(&a.radius, "radius", 0, "radius of corners without a radius of their own")
	pf.Float64Var(&a.topLeft, "top-left", 0, "radius of the top left corner")
	pf.Float64Var(&a.topRight, "top-right", 0, "radius of the top right corner")
	pf.Float64Var(&a.bottomRight, "bottom-right", 0, "radius of the bottom right corner")
	pf.Float64Var(&a.bottomLeft, "bottom-left", 0, "radius of the bottom left corner")
	pf.Float64Var(&a.smoothing, "smoothing", config.DefaultCornerSmoothing, "corner smoothing between 0 (circular) and 1")
	pf.BoolVar(&a.preserveSmoothing, "preserve-smoothing", config.DefaultPreserveSmoothing, "keep the smoothing of corners that have to shrink")
	pf.IntVar(&a.precision, "precision", squircle.DefaultPrecision, "maximum number of fractional digits, 0 for full precision")

	root.AddCommand(
		a.pathCommand(),
		a.cssCommand(),
		a.svgCommand(),
		a.watchCommand(),
	)
	return root
}

// settings loads the configuration file at path, if any, and applies the
// flags that were set on the command line.
func (a *app) settings(cmd *cobra.Command, path string) (config.File, error) {
	var f config.File
	if path != "" {
		var err error
		f, err = config.Load(path)
		if err != nil {
			return config.File{}, err
		}
	}

	flags := cmd.Flags()
	for name, apply := range map[string]func(){
		"width":              func() { f.Width = a.width },
		"height":             func() { f.Height = a.height },
		"radius":             func() { f.Radius = a.radius },
		"top-left":           func() { f.TopLeftRadius = squircle.Float(a.topLeft) },
		"top-right":          func() { f.TopRightRadius = squircle.Float(a.topRight) },
		"bottom-right":       func() { f.BottomRightRadius = squircle.Float(a.bottomRight) },
		"bottom-left":        func() { f.BottomLeftRadius = squircle.Float(a.bottomLeft) },
		"smoothing":          func() { f.CornerSmoothing = squircle.Float(a.smoothing) },
		"preserve-smoothing": func() { f.PreserveSmoothing = &a.preserveSmoothing },
		"precision":          func() { f.Precision = &a.precision },
	} {
		if flags.Changed(name) {
			apply()
		}
	}
	return f, nil
}

// render returns the path data for f.
func (a *app) render(f config.File) (string, error) {
	return a.cache.PathPrecision(f.Params(), f.OutputPrecision())
}
