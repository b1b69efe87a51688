package migrations

// Migrations should NEVER use types from other packages. Types can change
// and then migrations run on a _new_ database will fail or behave unexpectedly.
// Instead of importing types, always re-create the type in the migration, as
// is done here, even though the same type is defined in the dbapi package

import (
	"time"

	"github.com/d8ff42ce19a3b0e1c44a/dub-fleet-manager/pkg/api"
	"github.com/d8ff42ce19a3b0e1c44a/dub-fleet-manager/pkg/db"
	"github.com/go-gormigrate/gormigrate/v2"
	"gorm.io/gorm"
)

func addRepositoryRequests() *gormigrate.Migration {
	type RepositoryRequest struct {
		db.Model
		Name           string     `json:"name" gorm:"index"`
		ForgeType      string     `json:"forge_type" gorm:"index"`
		DefaultBranch  string     `json:"default_branch"`
		Status         string     `json:"status" gorm:"index"`
		Owner          string     `json:"owner" gorm:"index"`
		OwnerAccountId string     `json:"owner_account_id"`
		OrganisationId string     `json:"organisation_id" gorm:"index"`
		SubscriptionId string     `json:"subscription_id"`
		QuotaType      string     `json:"quota_type"`
		InstanceType   string     `json:"instance_type"`
		FailedReason   string     `json:"failed_reason"`
		BotConfig      api.JSON   `json:"bot_config"`
		LastScanAt     *time.Time `json:"last_scan_at"`
		AgentClusterID string     `json:"agent_cluster_id" gorm:"index"`
	}

	return &gormigrate.Migration{
		ID: "202202221500",
		Migrate: func(tx *gorm.DB) error {
			return tx.AutoMigrate(&RepositoryRequest{})
		},
		Rollback: func(tx *gorm.DB) error {
			return tx.Migrator().DropTable(&RepositoryRequest{})
		},
	}
}
