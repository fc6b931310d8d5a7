package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lvim-tech/qmenu/pkg/config"
)

func newInitCmd() *cobra.Command {
	var path string

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write an example config to the user config path",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if path == "" {
				path = config.GetUserConfigPath()
			}
			if err := config.InitUserConfig(path); err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Config initialized at: %s\n", path)
			fmt.Fprintln(out, "\nYou can now edit the config file to customize qmenu.")
			fmt.Fprintln(out, "Run 'qmenu' to start using it!")
			return nil
		},
	}

	cmd.Flags().StringVarP(&path, "output", "o", "", "Where to write the config (default: user config path)")
	return cmd
}
