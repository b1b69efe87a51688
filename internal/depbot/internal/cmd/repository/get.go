package repository

import (
	"encoding/json"

	"github.com/d8ff42ce19a3b0e1c44a/dub-fleet-manager/internal/depbot/internal/services"
	"github.com/d8ff42ce19a3b0e1c44a/dub-fleet-manager/pkg/environments"
	"github.com/d8ff42ce19a3b0e1c44a/dub-fleet-manager/pkg/flags"
	"github.com/golang/glog"
	"github.com/spf13/cobra"
)

// NewGetCommand gets a new command for getting repositories.
func NewGetCommand(env *environments.Env) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "get",
		Short: "Get a repository request",
		Long:  "Get a repository request.",
		Run: func(cmd *cobra.Command, args []string) {
			runGet(env, cmd, args)
		},
	}
	cmd.Flags().String(FlagID, "", "Repository request id")

	return cmd
}

func runGet(env *environments.Env, cmd *cobra.Command, _ []string) {
	id := flags.MustGetDefinedString(FlagID, cmd.Flags())
	var repositoryService services.RepositoryService
	env.MustResolveAll(&repositoryService)

	repositoryRequest, err := repositoryService.GetById(id)
	if err != nil {
		glog.Fatalf("Unable to get repository request: %s", err.Error())
	}
	indentedRepositoryRequest, marshalErr := json.MarshalIndent(repositoryRequest, "", "    ")
	if marshalErr != nil {
		glog.Fatalf("Failed to format repository request: %s", marshalErr.Error())
	}
	glog.V(10).Infof("%s", indentedRepositoryRequest)
}
