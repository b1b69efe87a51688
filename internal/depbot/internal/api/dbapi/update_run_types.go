package dbapi

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/d8ff42ce19a3b0e1c44a/dub-fleet-manager/pkg/api"
)

type UpdateRun struct {
	api.Meta
	RepositoryID string `json:"repository_id" gorm:"index"`
	// Manager is the package manager the dependency belongs to: gomod, npm or dockerfile
	Manager string `json:"manager" gorm:"index"`
	DepName string `json:"dep_name" gorm:"index"`
	// CurrentVersion is the version currently pinned in the manifest
	CurrentVersion string `json:"current_version"`
	NewVersion     string `json:"new_version"`
	// UpdateType is one of major, minor, patch or digest
	UpdateType string `json:"update_type"`
	BaseBranch string `json:"base_branch"`
	// BranchName is the bot branch the update is pushed to
	BranchName string `json:"branch_name"`
	GroupName  string `json:"group_name"`
	Status     string `json:"status" gorm:"index"`
	PRNumber   int    `json:"pr_number"`
	PRURL      string `json:"pr_url"`
	Automerge  bool   `json:"automerge"`
	Labels     string `json:"labels"`
	// Attempts counts how many times opening the pull request has been tried
	Attempts     int    `json:"attempts"`
	FailedReason string `json:"failed_reason"`
}

type UpdateRunList []*UpdateRun
type UpdateRunIndex map[string]*UpdateRun

func (l UpdateRunList) Index() UpdateRunIndex {
	index := UpdateRunIndex{}
	for _, o := range l {
		index[o.ID] = o
	}
	return index
}

func (u *UpdateRun) BeforeCreate(scope *gorm.DB) error {
	id := u.ID
	if id == "" {
		u.ID = api.NewID()
	}
	if u.BranchName == "" {
		u.BranchName = UpdateBranchName(u.Manager, u.DepName, u.NewVersion)
	}
	return nil
}

// UpdateBranchName returns the bot branch name for an update, e.g. "dub/gomod/sarama-1.38.1"
func UpdateBranchName(manager string, depName string, newVersion string) string {
	return fmt.Sprintf("dub/%s/%s-%s", manager, slugify(depName), newVersion)
}

// slugify squashes the characters a forge does not accept in ref names
func slugify(name string) string {
	out := make([]rune, 0, len(name))
	for _, c := range name {
		switch {
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9', c == '.', c == '-', c == '_':
			out = append(out, c)
		default:
			out = append(out, '-')
		}
	}
	return string(out)
}
