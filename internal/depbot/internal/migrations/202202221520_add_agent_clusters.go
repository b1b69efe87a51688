package migrations

import (
	"time"

	"github.com/d8ff42ce19a3b0e1c44a/dub-fleet-manager/pkg/db"
	"github.com/go-gormigrate/gormigrate/v2"
	"gorm.io/gorm"
)

func addAgentClusters() *gormigrate.Migration {
	type AgentCluster struct {
		db.Model
		ClusterID          string     `json:"cluster_id" gorm:"index"`
		Status             string     `json:"status" gorm:"index"`
		AgentVersion       string     `json:"agent_version"`
		StatusUpdatedAt    *time.Time `json:"status_updated_at"`
		MaxRepositories    int        `json:"max_repositories"`
		ActiveRepositories int        `json:"active_repositories"`
	}

	return &gormigrate.Migration{
		ID: "202202221520",
		Migrate: func(tx *gorm.DB) error {
			return tx.AutoMigrate(&AgentCluster{})
		},
		Rollback: func(tx *gorm.DB) error {
			return tx.Migrator().DropTable(&AgentCluster{})
		},
	}
}
