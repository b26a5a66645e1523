package main

import (
	"github.com/cockroachdb/errors"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/Chitragupta16/Where-s-My-Graph-Going/core"
	"github.com/Chitragupta16/Where-s-My-Graph-Going/render"
	"github.com/Chitragupta16/Where-s-My-Graph-Going/visualizer"
)

func NewLegendCmd(v *viper.Viper, _ afero.Fs) *cobra.Command {
	cmd := &cobra.Command{}
	cmd.Use = "legend [algorithm]"
	cmd.Aliases = []string{"l"}
	cmd.Short = "Show the colour key of an algorithm"
	cmd.Args = cobra.MaximumNArgs(1)
	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		if len(args) > 0 {
			v.Set("algorithm", args[0])
		}
		return runLegend(cmd, v)
	}

	return cmd
}

func runLegend(cmd *cobra.Command, v *viper.Viper) error {
	name := v.GetString("algorithm")
	if name != "" {
		alg, ok := visualizer.Lookup(name)
		if !ok {
			return errors.Wrapf(visualizer.ErrUnknownAlgorithm, "%q", name)
		}
		name = alg.Name
	}

	t := table.NewWriter()
	t.SetOutputMirror(cmd.OutOrStdout())
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"", "Kind", "Colour", "Meaning", "Width"})
	for _, it := range render.Legend(name) {
		width := ""
		if it.Kind == render.EdgeItem {
			width = core.FormatWeight(it.Width)
		}
		t.AppendRow(table.Row{render.Swatch(it.Color), it.Kind, render.ColorName(it.Color), it.Label, width})
	}
	t.Render()

	return nil
}
