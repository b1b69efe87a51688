package serviceaccounts

import (
	"encoding/json"

	"github.com/d8ff42ce19a3b0e1c44a/dub-fleet-manager/pkg/auth"
	"github.com/d8ff42ce19a3b0e1c44a/dub-fleet-manager/pkg/environments"
	"github.com/d8ff42ce19a3b0e1c44a/dub-fleet-manager/pkg/flags"
	"github.com/d8ff42ce19a3b0e1c44a/dub-fleet-manager/pkg/services/sso"
	"github.com/golang-jwt/jwt/v4"
	"github.com/golang/glog"
	"github.com/spf13/cobra"
)

// NewResetCredsCommand command for resetting the credentials of a service account.
func NewResetCredsCommand(env *environments.Env) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "reset-credentials",
		Short: "Reset the credentials of a serviceaccount",
		Long:  "Reset the credentials of a serviceaccount.",
		Run: func(cmd *cobra.Command, args []string) {
			runResetCreds(env, cmd)
		},
	}

	cmd.Flags().String(FlagSaID, "", "Service Account id")
	cmd.Flags().String(FlagOrgID, "", "Organisation id")
	return cmd
}

func runResetCreds(env *environments.Env, cmd *cobra.Command) {
	id := flags.MustGetDefinedString(FlagSaID, cmd.Flags())
	orgId := flags.MustGetDefinedString(FlagOrgID, cmd.Flags())

	var keycloakService sso.DepbotKeycloakService
	env.MustResolveAll(&keycloakService)

	ctx := cmd.Context()
	// create jwt with claims and set it in the context
	jwt := jwt.NewWithClaims(jwt.SigningMethodRS256, jwt.MapClaims{
		"org_id": orgId,
	})
	ctx = auth.SetTokenInContext(ctx, jwt)

	serviceAccount, err := keycloakService.ResetServiceAccountCredentials(ctx, id)
	if err != nil {
		glog.Fatalf("Unable to reset service account credentials: %s", err.Error())
	}
	output, marshalErr := json.MarshalIndent(serviceAccount, "", "    ")
	if marshalErr != nil {
		glog.Fatalf("Failed to format service account: %s", marshalErr.Error())
	}
	glog.V(10).Infof("%s", output)
}
