package migrate

import (
	"github.com/d8ff42ce19a3b0e1c44a/dub-fleet-manager/pkg/db"
	"github.com/d8ff42ce19a3b0e1c44a/dub-fleet-manager/pkg/environments"
	"github.com/golang/glog"
	"github.com/spf13/cobra"
)

func NewRollbackAll(env *environments.Env) *cobra.Command {
	return &cobra.Command{
		Use:   "rollback-all",
		Short: "rollback all migrations",
		Long:  "rollback all migrations",
		Run: func(cmd *cobra.Command, args []string) {
			env.MustInvoke(func(migrations []*db.Migration) {
				glog.Infoln("Rolling back all applied migrations")
				for _, migration := range migrations {
					migration.RollbackAll()
					glog.Infof("Database has %d %s applied", migration.CountMigrationsApplied(), migration.GormOptions.TableName)
				}
			})
		},
	}
}
