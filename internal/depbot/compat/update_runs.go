package compat

import (
	"time"
)

// UpdateRun struct for UpdateRun
type UpdateRun struct {
	Id             string    `json:"id"`
	Kind           string    `json:"kind"`
	Href           string    `json:"href"`
	RepositoryId   string    `json:"repository_id"`
	Manager        string    `json:"manager"`
	DepName        string    `json:"dep_name"`
	CurrentVersion string    `json:"current_version,omitempty"`
	NewVersion     string    `json:"new_version,omitempty"`
	UpdateType     string    `json:"update_type,omitempty"`
	BaseBranch     string    `json:"base_branch,omitempty"`
	BranchName     string    `json:"branch_name,omitempty"`
	GroupName      string    `json:"group_name,omitempty"`
	Status         string    `json:"status,omitempty"`
	PrNumber       int32     `json:"pr_number,omitempty"`
	PrUrl          string    `json:"pr_url,omitempty"`
	CreatedAt      time.Time `json:"created_at,omitempty"`
	UpdatedAt      time.Time `json:"updated_at,omitempty"`
	FailedReason   string    `json:"failed_reason,omitempty"`
}

// UpdateRunList struct for UpdateRunList
type UpdateRunList struct {
	Kind  string      `json:"kind"`
	Page  int32       `json:"page"`
	Size  int32       `json:"size"`
	Total int32       `json:"total"`
	Items []UpdateRun `json:"items"`
}

// DependencyDashboard struct for DependencyDashboard, the per-repository
// snapshot of current update runs grouped by status
type DependencyDashboard struct {
	Id           string                     `json:"id"`
	Kind         string                     `json:"kind"`
	Href         string                     `json:"href"`
	RepositoryId string                     `json:"repository_id"`
	GeneratedAt  time.Time                  `json:"generated_at"`
	Groups       []DependencyDashboardGroup `json:"groups"`
}

// DependencyDashboardGroup struct for DependencyDashboardGroup
type DependencyDashboardGroup struct {
	Status string      `json:"status"`
	Total  int32       `json:"total"`
	Items  []UpdateRun `json:"items"`
}
