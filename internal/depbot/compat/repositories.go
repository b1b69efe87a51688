package compat

import (
	"time"
)

// RepositoryRequest struct for RepositoryRequest
type RepositoryRequest struct {
	Id            string `json:"id"`
	Kind          string `json:"kind"`
	Href          string `json:"href"`
	Name          string `json:"name"`
	ForgeType     string `json:"forge_type"`
	DefaultBranch string `json:"default_branch,omitempty"`
	Owner         string `json:"owner,omitempty"`
	Status        string `json:"status,omitempty"`
	// BotConfig is the configuration document as stored, before preset expansion
	BotConfig    map[string]interface{} `json:"bot_config,omitempty"`
	CreatedAt    time.Time              `json:"created_at,omitempty"`
	UpdatedAt    time.Time              `json:"updated_at,omitempty"`
	LastScanAt   *time.Time             `json:"last_scan_at,omitempty"`
	FailedReason string                 `json:"failed_reason,omitempty"`
}

// RepositoryRequestList struct for RepositoryRequestList
type RepositoryRequestList struct {
	Kind  string              `json:"kind"`
	Page  int32               `json:"page"`
	Size  int32               `json:"size"`
	Total int32               `json:"total"`
	Items []RepositoryRequest `json:"items"`
}

// RepositoryRequestPayload Schema for the request body sent to /repositories POST
type RepositoryRequestPayload struct {
	// Name is the forge slug of the repository to enroll, e.g. "acme/billing"
	Name      string `json:"name"`
	ForgeType string `json:"forge_type"`
	// DefaultBranch overrides the branch the bot targets; discovered from the
	// forge when empty
	DefaultBranch string                 `json:"default_branch,omitempty"`
	BotConfig     map[string]interface{} `json:"bot_config,omitempty"`
}

// RepositoryUpdateRequest Schema for the request body sent to /repositories/{id} PATCH.
// BotConfig is an RFC 7386 merge patch applied to the stored configuration document.
type RepositoryUpdateRequest struct {
	BotConfig map[string]interface{} `json:"bot_config,omitempty"`
}

// RepositoryBotConfig struct for RepositoryBotConfig, the preset-expanded
// configuration served from /repositories/{id}/config
type RepositoryBotConfig struct {
	Id   string `json:"id"`
	Kind string `json:"kind"`
	Href string `json:"href"`
	// Config is the resolved configuration document; its extends list is empty
	Config map[string]interface{} `json:"config"`
}

// RepositoryRequestAdminView struct for RepositoryRequestAdminView
type RepositoryRequestAdminView struct {
	Id             string     `json:"id"`
	Kind           string     `json:"kind"`
	Href           string     `json:"href"`
	Name           string     `json:"name"`
	ForgeType      string     `json:"forge_type"`
	DefaultBranch  string     `json:"default_branch,omitempty"`
	Owner          string     `json:"owner,omitempty"`
	OrganisationId string     `json:"organisation_id,omitempty"`
	SubscriptionId string     `json:"subscription_id,omitempty"`
	QuotaType      string     `json:"quota_type,omitempty"`
	AgentClusterId string     `json:"agent_cluster_id,omitempty"`
	Status         string     `json:"status,omitempty"`
	CreatedAt      time.Time  `json:"created_at,omitempty"`
	UpdatedAt      time.Time  `json:"updated_at,omitempty"`
	LastScanAt     *time.Time `json:"last_scan_at,omitempty"`
	FailedReason   string     `json:"failed_reason,omitempty"`
}

// RepositoryRequestAdminViewList struct for RepositoryRequestAdminViewList
type RepositoryRequestAdminViewList struct {
	Kind  string                       `json:"kind"`
	Page  int32                        `json:"page"`
	Size  int32                        `json:"size"`
	Total int32                        `json:"total"`
	Items []RepositoryRequestAdminView `json:"items"`
}
