package migrations

import (
	"time"

	"github.com/d8ff42ce19a3b0e1c44a/dub-fleet-manager/pkg/api"
	"github.com/d8ff42ce19a3b0e1c44a/dub-fleet-manager/pkg/db"
	"github.com/go-gormigrate/gormigrate/v2"
	"gorm.io/gorm"
)

type LeaderLease struct {
	db.Model
	Leader    string
	LeaseType string
	Expires   *time.Time
}

var workerLeaseTypes = []string{
	"general_repository_worker",
	"accepted_repository",
	"preparing_repository",
	"deleting_repository",
	"scanning_repository",
	"general_update_run_worker",
	"pending_update_run",
	"open_update_run",
	"agent_cluster",
	"dashboard_tls_certificate",
}

func addLeaderLease() *gormigrate.Migration {
	return &gormigrate.Migration{
		ID: "202202221530",
		Migrate: func(tx *gorm.DB) error {
			err := tx.AutoMigrate(&LeaderLease{})
			if err != nil {
				return err
			}
			// pre-seed a single expired leader lease for each type of worker so
			// that the leader election mgr can begin attempting to claim them
			now := time.Now().Add(-time.Minute)
			for _, leaseType := range workerLeaseTypes {
				if err := tx.Create(&api.LeaderLease{
					Expires:   &now,
					LeaseType: leaseType,
				}).Error; err != nil {
					return err
				}
			}
			return nil
		},
		Rollback: func(tx *gorm.DB) error {
			return tx.Migrator().DropTable(&LeaderLease{})
		},
	}
}
