// Package repository contains commands for interacting with repository logic of the service directly instead of through the
// REST API exposed via the serve command.
package repository

import (
	"github.com/d8ff42ce19a3b0e1c44a/dub-fleet-manager/pkg/environments"
	"github.com/golang/glog"
	"github.com/spf13/cobra"
)

func NewRepositoryCommand(env *environments.Env) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "repository",
		Short: "Perform repository CRUD actions directly",
		Long:  "Perform repository CRUD actions directly.",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			err := env.CreateServices()
			if err != nil {
				glog.Fatalf("Unable to initialize environment: %s", err.Error())
			}
		},
	}

	// add sub-commands
	cmd.AddCommand(
		NewCreateCommand(env),
		NewGetCommand(env),
		NewDeleteCommand(env),
		NewListCommand(env),
	)

	return cmd
}
