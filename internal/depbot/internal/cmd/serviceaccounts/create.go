package serviceaccounts

import (
	"encoding/json"

	"github.com/d8ff42ce19a3b0e1c44a/dub-fleet-manager/pkg/api"
	"github.com/d8ff42ce19a3b0e1c44a/dub-fleet-manager/pkg/auth"
	"github.com/d8ff42ce19a3b0e1c44a/dub-fleet-manager/pkg/environments"
	"github.com/d8ff42ce19a3b0e1c44a/dub-fleet-manager/pkg/flags"
	"github.com/d8ff42ce19a3b0e1c44a/dub-fleet-manager/pkg/services/sso"
	"github.com/golang-jwt/jwt/v4"
	"github.com/golang/glog"
	"github.com/spf13/cobra"
)

func NewCreateCommand(env *environments.Env) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a service account",
		Long:  "Create a service account.",
		Run: func(cmd *cobra.Command, args []string) {
			runCreate(env, cmd, args)
		},
	}

	cmd.Flags().String(FlagName, "", "Service Account request name")
	cmd.Flags().String(FlagDesc, "", "Service Account request description")
	cmd.Flags().String(FlagOrgID, "", "Organisation id")

	return cmd
}

func runCreate(env *environments.Env, cmd *cobra.Command, _ []string) {
	name := flags.MustGetDefinedString(FlagName, cmd.Flags())
	description := flags.MustGetString(FlagDesc, cmd.Flags())
	orgId := flags.MustGetDefinedString(FlagOrgID, cmd.Flags())

	var keycloakService sso.DepbotKeycloakService
	env.MustResolveAll(&keycloakService)

	sa := &api.ServiceAccountRequest{
		Name:        name,
		Description: description,
	}

	ctx := cmd.Context()
	// create jwt with claims and set it in the context
	jwt := jwt.NewWithClaims(jwt.SigningMethodRS256, jwt.MapClaims{
		"org_id": orgId,
	})
	ctx = auth.SetTokenInContext(ctx, jwt)

	serviceAccount, err := keycloakService.CreateServiceAccount(sa, ctx)
	if err != nil {
		glog.Fatalf("Unable to create service account request: %s", err.Error())
	}
	output, marshalErr := json.MarshalIndent(serviceAccount, "", "    ")
	if marshalErr != nil {
		glog.Fatalf("Failed to format service account request: %s", marshalErr.Error())
	}
	glog.V(10).Infof("%s", output)
}
