package updaterun

import (
	"net/url"
	"os"

	"github.com/d8ff42ce19a3b0e1c44a/dub-fleet-manager/internal/depbot/internal/services"
	"github.com/d8ff42ce19a3b0e1c44a/dub-fleet-manager/pkg/environments"
	"github.com/d8ff42ce19a3b0e1c44a/dub-fleet-manager/pkg/flags"
	coreServices "github.com/d8ff42ce19a3b0e1c44a/dub-fleet-manager/pkg/services"
	"github.com/golang/glog"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

const (
	// FlagRepositoryID is a flag representing the repository the update runs belong to
	FlagRepositoryID = "repository-id"
	// FlagPage is a flag representing the page index when listing
	FlagPage = "page"
	// FlagSize is a flag representing the page size when listing
	FlagSize = "size"
)

// NewListCommand creates a new command for listing the update runs of a repository.
func NewListCommand(env *environments.Env) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "lists the update runs of a repository",
		Long:  "lists the update runs of a repository",
		Run: func(cmd *cobra.Command, args []string) {
			runList(env, cmd, args)
		},
	}
	cmd.Flags().String(FlagRepositoryID, "", "Repository request id")
	cmd.Flags().String(FlagPage, "1", "Page index")
	cmd.Flags().String(FlagSize, "100", "Number of update runs per page")

	return cmd
}

func runList(env *environments.Env, cmd *cobra.Command, _ []string) {
	repositoryID := flags.MustGetDefinedString(FlagRepositoryID, cmd.Flags())
	page := flags.MustGetString(FlagPage, cmd.Flags())
	size := flags.MustGetString(FlagSize, cmd.Flags())
	var updateRunService services.UpdateRunService
	env.MustResolveAll(&updateRunService)

	// build list arguments
	url := url.URL{}
	query := url.Query()
	query.Add(FlagPage, page)
	query.Add(FlagSize, size)
	listArgs := coreServices.NewListArguments(query)

	updateRuns, _, err := updateRunService.List(repositoryID, listArgs)
	if err != nil {
		glog.Fatalf("Unable to list update runs: %s", err.Error())
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"ID", "Manager", "Dependency", "From", "To", "Type", "Status", "PR"})
	for _, updateRun := range updateRuns {
		table.Append([]string{
			updateRun.ID,
			updateRun.Manager,
			updateRun.DepName,
			updateRun.CurrentVersion,
			updateRun.NewVersion,
			updateRun.UpdateType,
			updateRun.Status,
			updateRun.PRURL,
		})
	}
	table.Render()
}
