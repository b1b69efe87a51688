package dbapi

import (
	"time"

	"gorm.io/gorm"

	"github.com/d8ff42ce19a3b0e1c44a/dub-fleet-manager/pkg/api"
)

type RepositoryRequest struct {
	api.Meta
	// Name is the forge slug of the repository, e.g. "acme/billing"
	Name          string `json:"name" gorm:"index"`
	ForgeType     string `json:"forge_type" gorm:"index"`
	DefaultBranch string `json:"default_branch"`
	Status        string `json:"status" gorm:"index"`
	Owner         string `json:"owner" gorm:"index"`
	// OwnerAccountId is the AMS account id of the owner, needed when reserving quota
	OwnerAccountId string `json:"owner_account_id"`
	OrganisationId string `json:"organisation_id" gorm:"index"`
	SubscriptionId string `json:"subscription_id"`
	// the quota service type for the repository, e.g. ams, quota-management-list
	QuotaType string `json:"quota_type"`
	// InstanceType is the quota tier the repository was admitted under, standard or developer
	InstanceType string `json:"instance_type"`
	FailedReason string `json:"failed_reason"`
	// BotConfig is the bot configuration document as submitted by the owner,
	// before preset expansion
	BotConfig api.JSON `json:"bot_config"`
	// LastScanAt is the time of the last completed dependency scan, nil until the
	// first scan finished
	LastScanAt *time.Time `json:"last_scan_at"`
	// AgentClusterID is set once a scan agent cluster has been assigned
	AgentClusterID string `json:"agent_cluster_id" gorm:"index"`
}

type RepositoryList []*RepositoryRequest
type RepositoryIndex map[string]*RepositoryRequest

func (l RepositoryList) Index() RepositoryIndex {
	index := RepositoryIndex{}
	for _, o := range l {
		index[o.ID] = o
	}
	return index
}

func (r *RepositoryRequest) BeforeCreate(scope *gorm.DB) error {
	// To allow the id set on the RepositoryRequest object to be used. This is useful for testing purposes.
	id := r.ID
	if id == "" {
		r.ID = api.NewID()
	}
	return nil
}
