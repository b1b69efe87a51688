package migrations

import (
	"github.com/d8ff42ce19a3b0e1c44a/dub-fleet-manager/pkg/db"
	"github.com/go-gormigrate/gormigrate/v2"
	"gorm.io/gorm"
)

func addUpdateRuns() *gormigrate.Migration {
	type UpdateRun struct {
		db.Model
		RepositoryID   string `json:"repository_id" gorm:"index"`
		Manager        string `json:"manager" gorm:"index"`
		DepName        string `json:"dep_name" gorm:"index"`
		CurrentVersion string `json:"current_version"`
		NewVersion     string `json:"new_version"`
		UpdateType     string `json:"update_type"`
		BaseBranch     string `json:"base_branch"`
		BranchName     string `json:"branch_name"`
		GroupName      string `json:"group_name"`
		Status         string `json:"status" gorm:"index"`
		PRNumber       int    `json:"pr_number"`
		PRURL          string `json:"pr_url"`
		Automerge      bool   `json:"automerge"`
		Labels         string `json:"labels"`
		Attempts       int    `json:"attempts"`
		FailedReason   string `json:"failed_reason"`
	}

	return &gormigrate.Migration{
		ID: "202202221510",
		Migrate: func(tx *gorm.DB) error {
			return tx.AutoMigrate(&UpdateRun{})
		},
		Rollback: func(tx *gorm.DB) error {
			return tx.Migrator().DropTable(&UpdateRun{})
		},
	}
}
