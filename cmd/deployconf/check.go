package main

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/0xPexy/deployconf/internal/validate"
	"github.com/spf13/cobra"
)

var errCheckFailed = errors.New("configuration check failed")

func newCheckCmd(a *app) *cobra.Command {
	var (
		strict bool
		asJSON bool
	)
	cmd := &cobra.Command{
		Use:   "check",
		Short: "Report problems in the resolved configuration",
		Long: `Check URLs and keys of every configured network and whether the default
network has a profile. Findings are advisory: the build tool config is produced
regardless. With --strict the command exits non-zero when errors are found.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			report := validate.Check(a.cfg)
			out := cmd.OutOrStdout()

			if asJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				if err := enc.Encode(report); err != nil {
					return fmt.Errorf("encode report: %w", err)
				}
			} else {
				for _, f := range report.Findings {
					fmt.Fprintln(out, f.String())
				}
				fmt.Fprintf(out, "%d error(s), %d warning(s)\n",
					report.Count(validate.SeverityError), report.Count(validate.SeverityWarning))
			}

			if strict && report.HasErrors() {
				return errCheckFailed
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&strict, "strict", false, "exit non-zero when errors are found")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the report as JSON")
	return cmd
}
