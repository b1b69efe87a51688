package repository

import (
	"context"
	"encoding/json"
	"net/url"

	"github.com/d8ff42ce19a3b0e1c44a/dub-fleet-manager/internal/depbot/compat"
	"github.com/d8ff42ce19a3b0e1c44a/dub-fleet-manager/internal/depbot/internal/presenters"
	"github.com/d8ff42ce19a3b0e1c44a/dub-fleet-manager/internal/depbot/internal/services"
	"github.com/d8ff42ce19a3b0e1c44a/dub-fleet-manager/pkg/auth"
	"github.com/d8ff42ce19a3b0e1c44a/dub-fleet-manager/pkg/environments"
	"github.com/d8ff42ce19a3b0e1c44a/dub-fleet-manager/pkg/flags"
	coreServices "github.com/d8ff42ce19a3b0e1c44a/dub-fleet-manager/pkg/services"
	"github.com/golang-jwt/jwt/v4"
	"github.com/golang/glog"
	"github.com/spf13/cobra"
)

// NewListCommand creates a new command for listing repositories.
func NewListCommand(env *environments.Env) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "lists all repository requests",
		Long:  "lists all repository requests",
		Run: func(cmd *cobra.Command, args []string) {
			runList(env, cmd, args)
		},
	}
	cmd.Flags().String(FlagOwner, "test-user", "Username")
	cmd.Flags().String(FlagPage, "1", "Page index")
	cmd.Flags().String(FlagSize, "100", "Number of repository requests per page")

	return cmd
}

func runList(env *environments.Env, cmd *cobra.Command, _ []string) {
	owner := flags.MustGetDefinedString(FlagOwner, cmd.Flags())
	page := flags.MustGetString(FlagPage, cmd.Flags())
	size := flags.MustGetString(FlagSize, cmd.Flags())
	var repositoryService services.RepositoryService
	env.MustResolveAll(&repositoryService)

	// create jwt with claims and set it in the context
	jwt := jwt.NewWithClaims(jwt.SigningMethodRS256, jwt.MapClaims{
		"username": owner,
	})
	ctx := auth.SetTokenInContext(context.TODO(), jwt)

	// build list arguments
	url := url.URL{}
	query := url.Query()
	query.Add(FlagPage, page)
	query.Add(FlagSize, size)
	listArgs := coreServices.NewListArguments(query)

	repositoryList, paging, err := repositoryService.List(ctx, listArgs)
	if err != nil {
		glog.Fatalf("Unable to list repository requests: %s", err.Error())
	}

	// format output
	repositoryRequestList := compat.RepositoryRequestList{
		Kind:  "RepositoryRequestList",
		Page:  int32(paging.Page),
		Size:  int32(paging.Size),
		Total: int32(paging.Total),
		Items: []compat.RepositoryRequest{},
	}

	for _, repositoryRequest := range repositoryList {
		converted := presenters.PresentRepositoryRequest(repositoryRequest)
		repositoryRequestList.Items = append(repositoryRequestList.Items, converted)
	}

	output, marshalErr := json.MarshalIndent(repositoryRequestList, "", "    ")
	if marshalErr != nil {
		glog.Fatalf("Failed to format repository request list: %s", marshalErr.Error())
	}

	glog.V(10).Infof("%s", output)
}
