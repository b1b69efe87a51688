package errors

import (
	"os"
	"strconv"

	"github.com/d8ff42ce19a3b0e1c44a/dub-fleet-manager/pkg/environments"
	svcErrors "github.com/d8ff42ce19a3b0e1c44a/dub-fleet-manager/pkg/errors"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

// NewListCommand creates a new command for listing the errors which can be returned by the service.
func NewListCommand(_ *environments.Env) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "lists all errors which can be returned by the service",
		Long:  "lists all errors which can be returned by the service",
		Run: func(cmd *cobra.Command, args []string) {
			runList()
		},
	}
	return cmd
}

func runList() {
	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Code", "HTTP Code", "Reason"})
	for _, err := range svcErrors.Errors() {
		table.Append([]string{svcErrors.CodeStr(err.Code), strconv.Itoa(err.HttpCode), err.Reason})
	}
	table.Render()
}
