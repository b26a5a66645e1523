package main

import (
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/Chitragupta16/Where-s-My-Graph-Going/visualizer"
)

func NewAlgorithmsCmd(_ *viper.Viper, _ afero.Fs) *cobra.Command {
	cmd := &cobra.Command{}
	cmd.Use = "algorithms"
	cmd.Aliases = []string{"algos", "ls"}
	cmd.Short = "List the algorithms and the nodes they need"
	cmd.Args = cobra.NoArgs
	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		return runAlgorithms(cmd)
	}

	return cmd
}

func runAlgorithms(cmd *cobra.Command) error {
	t := table.NewWriter()
	t.SetOutputMirror(cmd.OutOrStdout())
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Name", "Title", "Aliases", "Start", "End"})
	for _, a := range visualizer.Algorithms() {
		t.AppendRow(table.Row{a.Name, a.Title, strings.Join(a.Aliases, ", "), a.Start, a.End})
	}
	t.Render()

	return nil
}
