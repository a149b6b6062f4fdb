package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"honnef.co/go/squircle/internal/config"
)

func (a *app) pathCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Print the outline as SVG path data",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.run(cmd, func(w io.Writer, f config.File, d string) error {
				_, err := fmt.Fprintln(w, d)
				return err
			})
		},
	}
}

func (a *app) cssCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "css",
		Short: "Print a clip-path declaration with a border-radius fallback",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.run(cmd, writeCSS)
		},
	}
}

func (a *app) svgCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "svg",
		Short: "Print a standalone SVG document containing the outline",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.run(cmd, writeSVG)
		},
	}
}

// run resolves the settings for cmd, renders them and passes the result to
// write.
func (a *app) run(cmd *cobra.Command, write func(w io.Writer, f config.File, d string) error) error {
	f, err := a.settings(cmd, a.configPath)
	if err != nil {
		return err
	}
	d, err := a.render(f)
	if err != nil {
		return err
	}
	return write(cmd.OutOrStdout(), f, d)
}

func writeCSS(w io.Writer, f config.File, d string) error {
	_, err := fmt.Fprintf(w, "clip-path: path('%s');\nborder-radius: %s;\n", d, borderRadius(f))
	return err
}

// borderRadius returns the value of a border-radius declaration that
// approximates f with circular corners, for consumers that ignore clip paths.
func borderRadius(f config.File) string {
	p := f.Params()
	if p.TopLeftRadius == nil && p.TopRightRadius == nil && p.BottomRightRadius == nil && p.BottomLeftRadius == nil {
		return px(p.Radius)
	}
	orRadius := func(v *float64) float64 {
		if v == nil {
			return p.Radius
		}
		return *v
	}
	return strings.Join([]string{
		px(orRadius(p.TopLeftRadius)),
		px(orRadius(p.TopRightRadius)),
		px(orRadius(p.BottomRightRadius)),
		px(orRadius(p.BottomLeftRadius)),
	}, " ")
}

func px(v float64) string {
	return number(max(v, 0)) + "px"
}

func number(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func writeSVG(w io.Writer, f config.File, d string) error {
	width, height := number(max(f.Width, 0)), number(max(f.Height, 0))
	_, err := fmt.Fprintf(w, `<svg xmlns="http://www.w3.org/2000/svg" width="%[1]s" height="%[2]s" viewBox="0 0 %[1]s %[2]s">
  <path d="%[3]s"/>
</svg>
`, width, height, d)
	return err
}
