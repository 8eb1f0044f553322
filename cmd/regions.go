package cmd

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/s0up4200/lolapi/region"
)

// regionsCmd represents the regions command
var regionsCmd = &cobra.Command{
	Use:         "regions",
	Short:       "List platforms and the regional hosts they route to",
	Args:        cobra.NoArgs,
	Annotations: map[string]string{skipInit: "true"},
	RunE: func(cmd *cobra.Command, args []string) error {
		type row struct {
			Platform string `json:"platform"`
			Routing  string `json:"routing"`
			Account  string `json:"account"`
		}

		rows := make([]row, 0, len(region.Platforms()))
		for _, p := range region.Platforms() {
			rows = append(rows, row{
				Platform: p.String(),
				Routing:  p.Routing().String(),
				Account:  p.AccountRouting().String(),
			})
		}

		return render(cmd.OutOrStdout(), rows, func(w io.Writer) {
			table(w, "PLATFORM\tROUTING\tACCOUNT", func(tw *tabwriter.Writer) {
				for _, r := range rows {
					fmt.Fprintf(tw, "%s\t%s\t%s\n", r.Platform, r.Routing, r.Account)
				}
			})
		})
	},
}
