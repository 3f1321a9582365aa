package main

import (
	"github.com/0xPexy/deployconf/internal/buildtool"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func newRenderCmd(a *app) *cobra.Command {
	var (
		format string
		out    string
	)
	cmd := &cobra.Command{
		Use:   "render",
		Short: "Print the build tool configuration",
		Long: `Render the build tool configuration as JSON or YAML.

The output includes the account private keys. When --out is given the file is
written with mode 0600 and the format defaults to the file extension.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := buildtool.ParseFormat(format)
			if err != nil {
				return err
			}
			if out != "" && !cmd.Flags().Changed("format") {
				f = buildtool.FormatForPath(out)
			}

			bt := buildtool.ToBuildToolConfig(a.cfg)
			if out == "" {
				return buildtool.Render(cmd.OutOrStdout(), bt, f)
			}
			if err := buildtool.WriteFile(out, bt, f); err != nil {
				return err
			}
			a.log.WithFields(logrus.Fields{
				"path":     out,
				"format":   f,
				"networks": len(bt.Networks),
			}).Info("wrote build tool config")
			return nil
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", "json", "output format: json or yaml")
	cmd.Flags().StringVarP(&out, "out", "o", "", "write to file instead of stdout")
	return cmd
}
