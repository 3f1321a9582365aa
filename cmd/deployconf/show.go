package main

import (
	"fmt"

	"github.com/0xPexy/deployconf/internal/accounts"
	"github.com/spf13/cobra"
)

func newShowCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the resolved configuration with keys redacted",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "defaultNetwork: %s\n", a.cfg.DefaultNetwork())
			fmt.Fprintln(out, "networks:")
			for _, name := range a.cfg.NetworkNames() {
				p, _ := a.cfg.Network(name)
				fmt.Fprintf(out, "  %s:\n", name)
				fmt.Fprintf(out, "    url: %s\n", orUnset(p.URL()))
				fmt.Fprintf(out, "    accountKey: %s\n", orUnset(accounts.Redact(p.AccountKey())))
			}
			return nil
		},
	}
}

func orUnset(s string) string {
	if s == "" {
		return "(unset)"
	}
	return s
}
