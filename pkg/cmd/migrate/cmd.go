package migrate

import (
	"github.com/d8ff42ce19a3b0e1c44a/dub-fleet-manager/pkg/environments"
	"github.com/golang/glog"
	"github.com/spf13/cobra"

	"github.com/d8ff42ce19a3b0e1c44a/dub-fleet-manager/pkg/db"
)

// migrate sub-command handles running migrations
func NewMigrateCommand(env *environments.Env) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Run dub-fleet-manager data migrations",
		Long:  "Run Dependency Update Bot Fleet Manager data migrations",
		Run: func(cmd *cobra.Command, args []string) {
			env.MustInvoke(func(migrations []*db.Migration) {
				glog.Infoln("Migration starting")
				for _, migration := range migrations {
					migration.Migrate()
				}
				glog.Infoln("Migration done")
			})
		},
	}
	return cmd
}
