package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/smallyu/go-weierstrass/pkg/keys"
)

func curvesCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "curves",
		Short: "List built-in and configured curves",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.listCurves()
		},
	}
}

func (a *app) listCurves() error {
	tw := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "NAME\tSOURCE\tBITS\tOID")

	for _, name := range keys.CurveNames() {
		c, err := keys.CurveByName(name)
		if err != nil {
			return err
		}
		fmt.Fprintf(tw, "%s\tbuilt-in\t%d\t%s\n", c.Name(), c.Field().BitSize(), c.OID())
	}
	for _, spec := range a.cfg.Curves {
		c, err := spec.Build()
		if err != nil {
			return err
		}
		oid := c.OID()
		if oid == "" {
			oid = "-"
		}
		fmt.Fprintf(tw, "%s\tconfig\t%d\t%s\n", c.Name(), c.Field().BitSize(), oid)
	}
	return tw.Flush()
}
