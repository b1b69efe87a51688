package compat

import (
	"time"
)

// AgentCluster struct for AgentCluster
type AgentCluster struct {
	Id                 string     `json:"id"`
	Kind               string     `json:"kind"`
	Href               string     `json:"href"`
	ClusterId          string     `json:"cluster_id"`
	Status             string     `json:"status,omitempty"`
	AgentVersion       string     `json:"agent_version,omitempty"`
	MaxRepositories    int32      `json:"max_repositories,omitempty"`
	ActiveRepositories int32      `json:"active_repositories,omitempty"`
	StatusUpdatedAt    *time.Time `json:"status_updated_at,omitempty"`
	CreatedAt          time.Time  `json:"created_at,omitempty"`
	UpdatedAt          time.Time  `json:"updated_at,omitempty"`
}

// AgentClusterList struct for AgentClusterList
type AgentClusterList struct {
	Kind  string         `json:"kind"`
	Page  int32          `json:"page"`
	Size  int32          `json:"size"`
	Total int32          `json:"total"`
	Items []AgentCluster `json:"items"`
}

// AgentClusterUpdateStatusRequest Schema for the request body sent to
// /agent_clusters/{id}/status PUT, the agent heartbeat
type AgentClusterUpdateStatusRequest struct {
	Status       string `json:"status,omitempty"`
	AgentVersion string `json:"agent_version,omitempty"`
	// MaxRepositories is the scan capacity the agent advertises, 0 means unbounded
	MaxRepositories    int32                         `json:"max_repositories,omitempty"`
	ActiveRepositories int32                         `json:"active_repositories,omitempty"`
	Conditions         []AgentClusterStatusCondition `json:"conditions,omitempty"`
}

// AgentClusterStatusCondition struct for AgentClusterStatusCondition
type AgentClusterStatusCondition struct {
	Type    string `json:"type,omitempty"`
	Reason  string `json:"reason,omitempty"`
	Message string `json:"message,omitempty"`
	Status  string `json:"status,omitempty"`
}
