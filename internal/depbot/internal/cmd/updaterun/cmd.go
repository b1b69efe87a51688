// Package updaterun contains commands for inspecting update runs directly instead of through the
// REST API exposed via the serve command.
package updaterun

import (
	"github.com/d8ff42ce19a3b0e1c44a/dub-fleet-manager/pkg/environments"
	"github.com/golang/glog"
	"github.com/spf13/cobra"
)

func NewUpdateRunCommand(env *environments.Env) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "updaterun",
		Short: "Inspect update runs directly",
		Long:  "Inspect update runs directly.",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			err := env.CreateServices()
			if err != nil {
				glog.Fatalf("Unable to initialize environment: %s", err.Error())
			}
		},
	}

	// add sub-commands
	cmd.AddCommand(
		NewListCommand(env),
	)

	return cmd
}
