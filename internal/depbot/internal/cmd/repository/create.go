package repository

import (
	"encoding/json"

	"github.com/d8ff42ce19a3b0e1c44a/dub-fleet-manager/internal/depbot/internal/api/dbapi"
	"github.com/d8ff42ce19a3b0e1c44a/dub-fleet-manager/internal/depbot/internal/services"
	"github.com/d8ff42ce19a3b0e1c44a/dub-fleet-manager/pkg/environments"
	"github.com/d8ff42ce19a3b0e1c44a/dub-fleet-manager/pkg/flags"
	"github.com/golang/glog"
	"github.com/spf13/cobra"
)

// NewCreateCommand creates a new command for registering repositories.
func NewCreateCommand(env *environments.Env) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Register a repository request",
		Long:  "Register a repository request.",
		Run: func(cmd *cobra.Command, args []string) {
			runCreate(env, cmd, args)
		},
	}

	cmd.Flags().String(FlagName, "", "Repository slug, e.g. acme/billing")
	cmd.Flags().String(FlagForgeType, "github", "Forge hosting the repository")
	cmd.Flags().String(FlagOwner, "test-user", "Username")
	cmd.Flags().String(FlagOrgID, "", "Organisation id")

	return cmd
}

func runCreate(env *environments.Env, cmd *cobra.Command, _ []string) {
	name := flags.MustGetDefinedString(FlagName, cmd.Flags())
	forgeType := flags.MustGetDefinedString(FlagForgeType, cmd.Flags())
	owner := flags.MustGetDefinedString(FlagOwner, cmd.Flags())
	orgId := flags.MustGetDefinedString(FlagOrgID, cmd.Flags())

	var repositoryService services.RepositoryService
	env.MustResolveAll(&repositoryService)

	repositoryRequest := &dbapi.RepositoryRequest{
		Name:           name,
		ForgeType:      forgeType,
		Owner:          owner,
		OrganisationId: orgId,
	}

	if err := repositoryService.RegisterRepositoryJob(repositoryRequest); err != nil {
		glog.Fatalf("Unable to register repository request: %s", err.Error())
	}
	indentedRepositoryRequest, marshalErr := json.MarshalIndent(repositoryRequest, "", "    ")
	if marshalErr != nil {
		glog.Fatalf("Failed to format repository request: %s", marshalErr.Error())
	}
	glog.V(10).Infof("%s", indentedRepositoryRequest)
}
