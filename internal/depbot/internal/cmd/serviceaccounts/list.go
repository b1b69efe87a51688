package serviceaccounts

import (
	"context"
	"os"
	"strconv"

	"github.com/d8ff42ce19a3b0e1c44a/dub-fleet-manager/pkg/auth"
	"github.com/d8ff42ce19a3b0e1c44a/dub-fleet-manager/pkg/environments"
	"github.com/d8ff42ce19a3b0e1c44a/dub-fleet-manager/pkg/flags"
	"github.com/d8ff42ce19a3b0e1c44a/dub-fleet-manager/pkg/services/sso"
	"github.com/golang-jwt/jwt/v4"
	"github.com/golang/glog"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

func NewListCommand(env *environments.Env) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "lists all service accounts",
		Long:  "lists all service accounts",
		Run: func(cmd *cobra.Command, args []string) {
			runList(env, cmd)
		},
	}

	cmd.Flags().String(FlagFirst, "1", "Index of the first result")
	cmd.Flags().String(FlagMax, "100", "Maximum number of results")
	cmd.Flags().String(FlagOrgID, "", "Organisation id")
	return cmd
}

func runList(env *environments.Env, cmd *cobra.Command) {
	first, err := strconv.Atoi(flags.MustGetDefinedString(FlagFirst, cmd.Flags()))
	if err != nil {
		glog.Fatalf("Unable to read flag first: %s", err.Error())
	}
	max, err := strconv.Atoi(flags.MustGetDefinedString(FlagMax, cmd.Flags()))
	if err != nil {
		glog.Fatalf("Unable to read flag max: %s", err.Error())
	}

	orgId := flags.MustGetDefinedString(FlagOrgID, cmd.Flags())

	var keycloakService sso.DepbotKeycloakService
	env.MustResolveAll(&keycloakService)

	// create jwt with claims and set it in the context
	jwt := jwt.NewWithClaims(jwt.SigningMethodRS256, jwt.MapClaims{
		"org_id": orgId,
	})
	ctx := auth.SetTokenInContext(context.TODO(), jwt)

	sa, svcErr := keycloakService.ListServiceAcc(ctx, first, max)
	if svcErr != nil {
		glog.Fatalf("Unable to list service accounts: %s", svcErr.Error())
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"ID", "Client ID", "Name", "Owner", "Created At"})
	for i := range sa {
		account := sa[i]
		table.Append([]string{account.ID, account.ClientID, account.Name, account.CreatedBy, account.CreatedAt.String()})
	}
	table.Render()
}
