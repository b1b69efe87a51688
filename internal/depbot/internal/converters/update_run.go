package converters

import (
	"github.com/d8ff42ce19a3b0e1c44a/dub-fleet-manager/internal/depbot/internal/api/dbapi"
)

func ConvertUpdateRun(updateRun *dbapi.UpdateRun) []map[string]interface{} {
	return []map[string]interface{}{
		{
			"id":              updateRun.ID,
			"repository_id":   updateRun.RepositoryID,
			"manager":         updateRun.Manager,
			"dep_name":        updateRun.DepName,
			"current_version": updateRun.CurrentVersion,
			"new_version":     updateRun.NewVersion,
			"update_type":     updateRun.UpdateType,
			"base_branch":     updateRun.BaseBranch,
			"branch_name":     updateRun.BranchName,
			"group_name":      updateRun.GroupName,
			"status":          updateRun.Status,
			"pr_number":       updateRun.PRNumber,
			"pr_url":          updateRun.PRURL,
			"automerge":       updateRun.Automerge,
			"labels":          updateRun.Labels,
			"attempts":        updateRun.Attempts,
			"failed_reason":   updateRun.FailedReason,
			"created_at":      updateRun.Meta.CreatedAt,
			"updated_at":      updateRun.Meta.UpdatedAt,
			"deleted_at":      updateRun.Meta.DeletedAt.Time,
		},
	}
}

// ConvertUpdateRunList converts an UpdateRunList to the response type expected by mocket
func ConvertUpdateRunList(updateRunList dbapi.UpdateRunList) []map[string]interface{} {
	var converted []map[string]interface{}

	for _, updateRun := range updateRunList {
		data := ConvertUpdateRun(updateRun)
		converted = append(converted, data...)
	}

	return converted
}
