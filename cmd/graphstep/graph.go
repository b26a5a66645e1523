package main

import (
	"fmt"
	"log/slog"
	"math"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/Chitragupta16/Where-s-My-Graph-Going/core"
	"github.com/Chitragupta16/Where-s-My-Graph-Going/matrix"
	"github.com/Chitragupta16/Where-s-My-Graph-Going/stepper"
	"github.com/Chitragupta16/Where-s-My-Graph-Going/visualizer"
)

func NewGraphCmd(v *viper.Viper, fs afero.Fs) *cobra.Command {
	cmd := &cobra.Command{}
	cmd.Use = "graph"
	cmd.Aliases = []string{"g"}
	cmd.Short = "Show the parsed graph and its layout"
	cmd.Example = `  graphstep graph --sample weighted
  graphstep graph -f graph.txt --node C
  graphstep graph --generate grid:3x3 --dot grid.dot`
	cmd.Args = cobra.NoArgs
	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		return runGraph(cmd, v, fs)
	}

	SetInputFlags(cmd)
	cmd.Flags().String("node", "", "Describe a single node and its connections")
	cmd.Flags().String("dot", "", "Write the graph as Graphviz DOT to `path`")
	cmd.Flags().Bool("matrix", false, "Print the weighted adjacency matrix")
	cmd.Flags().Bool("distances", false, "Print all-pairs shortest distances (Floyd-Warshall)")

	return cmd
}

func runGraph(cmd *cobra.Command, v *viper.Viper, fs afero.Fs) error {
	g, rep, err := loadGraph(cmd, v, fs)
	if err != nil {
		return err
	}
	var summary string
	vis := visualizer.New(visualizer.WithNarrator(stepper.NarratorFunc(func(msg string) { summary = msg })))
	if err := vis.LoadGraph(g); err != nil {
		return err
	}

	if id := v.GetString("node"); id != "" {
		info, err := vis.NodeInfo(id)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), info)
		return nil
	}

	if path := v.GetString("dot"); path != "" {
		if err := writeDOT(fs, path, vis); err != nil {
			return err
		}
	}

	fmt.Fprintln(cmd.OutOrStdout(), summary)
	if rep.Lines > 0 {
		fmt.Fprintf(cmd.OutOrStdout(), "%d lines, %d declarations, %d skipped\n", rep.Lines, rep.Declarations, len(rep.Skipped))
	}
	printGraph(cmd, g)

	if v.GetBool("matrix") || v.GetBool("distances") {
		adj, err := matrix.NewAdjacency(g)
		if err != nil {
			return err
		}
		if v.GetBool("matrix") {
			fmt.Fprintln(cmd.OutOrStdout(), color.CyanString("Adjacency"))
			printMatrix(cmd, adj.Order, adj.Weights)
		}
		if v.GetBool("distances") {
			apsp, err := matrix.FloydWarshall(adj)
			if errors.Is(err, matrix.ErrNegativeCycle) {
				slog.Warn("graph has a negative cycle; distances are not shortest")
			} else if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), color.CyanString("Shortest distances"))
			printMatrix(cmd, apsp.Order, apsp.Dist)
		}
	}

	return nil
}

func printMatrix(cmd *cobra.Command, order []string, m *matrix.Dense) {
	t := table.NewWriter()
	t.SetOutputMirror(cmd.OutOrStdout())
	t.SetStyle(table.StyleLight)
	header := table.Row{""}
	for _, id := range order {
		header = append(header, id)
	}
	t.AppendHeader(header)
	for i, id := range order {
		row := table.Row{id}
		for _, w := range m.Row(i) {
			cell := core.FormatWeight(w)
			if math.IsInf(w, 1) {
				cell = "·"
			}
			row = append(row, cell)
		}
		t.AppendRow(row)
	}
	t.Render()
}

func printGraph(cmd *cobra.Command, g *core.Graph) {
	t := table.NewWriter()
	t.SetOutputMirror(cmd.OutOrStdout())
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"#", "Node", "X", "Y", "Connections"})
	t.SetColumnConfigs([]table.ColumnConfig{
		{Number: 3, Align: text.AlignRight},
		{Number: 4, Align: text.AlignRight},
	})
	for i, id := range g.Vertices() {
		nbrs := make([]string, 0, len(g.Neighbors(id)))
		for _, n := range g.Neighbors(id) {
			if w := g.Weight(id, n); w != core.DefaultWeight {
				n = fmt.Sprintf("%s(%s)", n, core.FormatWeight(w))
			}
			nbrs = append(nbrs, n)
		}
		p := g.Position(id)
		t.AppendRow(table.Row{i + 1, id, fmt.Sprintf("%.1f", p.X), fmt.Sprintf("%.1f", p.Y), strings.Join(nbrs, ", ")})
	}
	t.Render()
}
