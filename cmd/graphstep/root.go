package main

import (
	"github.com/haijima/cobrax"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func NewRootCmd(v *viper.Viper, fs afero.Fs) *cobra.Command {
	cmd := cobrax.NewRoot(v)
	cmd.Use = "graphstep"
	cmd.Short = "graphstep animates graph algorithms step by step in the terminal"
	cmd.Version = cobrax.VersionFunc("", "", "")
	cmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		return cobrax.RootPersistentPreRunE(cmd, v, fs, args)
	}

	cmd.AddCommand(NewRunCmd(v, fs))
	cmd.AddCommand(NewGraphCmd(v, fs))
	cmd.AddCommand(NewLegendCmd(v, fs))
	cmd.AddCommand(NewAlgorithmsCmd(v, fs))
	cmd.AddCommand(NewGenConfCmd(v, fs))

	cmd.SetGlobalNormalizationFunc(cobrax.SnakeToKebab)

	return cmd
}
