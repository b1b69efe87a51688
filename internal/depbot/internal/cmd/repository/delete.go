package repository

import (
	"context"

	"github.com/d8ff42ce19a3b0e1c44a/dub-fleet-manager/internal/depbot/internal/services"
	"github.com/d8ff42ce19a3b0e1c44a/dub-fleet-manager/pkg/auth"
	"github.com/d8ff42ce19a3b0e1c44a/dub-fleet-manager/pkg/environments"
	"github.com/d8ff42ce19a3b0e1c44a/dub-fleet-manager/pkg/flags"
	"github.com/golang-jwt/jwt/v4"
	"github.com/golang/glog"
	"github.com/spf13/cobra"
)

// NewDeleteCommand command for deleting repositories.
func NewDeleteCommand(env *environments.Env) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete",
		Short: "Delete a repository request",
		Long:  "Delete a repository request.",
		Run: func(cmd *cobra.Command, args []string) {
			runDelete(env, cmd, args)
		},
	}

	cmd.Flags().String(FlagID, "", "Repository request id")
	cmd.Flags().String(FlagOwner, "test-user", "Username")
	return cmd
}

func runDelete(env *environments.Env, cmd *cobra.Command, _ []string) {
	id := flags.MustGetDefinedString(FlagID, cmd.Flags())
	owner := flags.MustGetDefinedString(FlagOwner, cmd.Flags())
	var repositoryService services.RepositoryService
	env.MustResolveAll(&repositoryService)

	// create jwt with claims and set it in the context
	jwt := jwt.NewWithClaims(jwt.SigningMethodRS256, jwt.MapClaims{
		"username": owner,
	})
	ctx := auth.SetTokenInContext(context.TODO(), jwt)

	if err := repositoryService.RegisterRepositoryDeprovisionJob(ctx, id); err != nil {
		glog.Fatalf("Unable to register the deprovisioning request: %s", err.Error())
	} else {
		glog.V(10).Infof("Deprovisioning request accepted for repository with id %s", id)
	}
}
