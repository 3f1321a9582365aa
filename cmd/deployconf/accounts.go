package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/0xPexy/deployconf/internal/accounts"
	"github.com/spf13/cobra"
)

func newAccountsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "accounts",
		Short: "Show the account address derived from each network key",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "NETWORK\tADDRESS\tPUBLIC KEY\tDEFAULT")
			for _, name := range a.cfg.NetworkNames() {
				p, _ := a.cfg.Network(name)
				addr, pub := "-", "-"
				if acct, err := accounts.FromKey(p.AccountKey()); err != nil {
					a.log.WithField("network", name).WithError(err).Warn("cannot derive account")
				} else {
					addr, pub = acct.Address.Hex(), acct.PublicKey
				}
				def := ""
				if name == a.cfg.DefaultNetwork() {
					def = "*"
				}
				fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", name, addr, pub, def)
			}
			return tw.Flush()
		},
	}
}
