package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/michaelscutari/lsview/internal/view"
)

func newColumnsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "columns",
		Short: "List the columns of the details table",
		Long:  `Print the columns the details table would show, in display order.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := a.resolve(cmd)
			if err != nil {
				return err
			}
			return writeColumns(cmd.OutOrStdout(), v)
		},
	}
}

func writeColumns(w io.Writer, v view.View) error {
	var table *view.TableOptions
	switch m := v.Mode.(type) {
	case view.DetailsMode:
		table = m.Details.Table
	case view.GridDetailsMode:
		table = m.Details.Table
	}
	if table == nil {
		return fmt.Errorf("%s view has no details table (try --long)", v.Mode.Name())
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "#\tCOLUMN\n")
	for i, name := range table.Columns.Headers() {
		fmt.Fprintf(tw, "%d\t%s\n", i+1, name)
	}
	fmt.Fprintf(tw, "-\tName\n")
	return tw.Flush()
}
