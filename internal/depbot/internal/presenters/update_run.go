package presenters

import (
	"time"

	"github.com/d8ff42ce19a3b0e1c44a/dub-fleet-manager/internal/depbot/compat"
	"github.com/d8ff42ce19a3b0e1c44a/dub-fleet-manager/internal/depbot/constants"
	"github.com/d8ff42ce19a3b0e1c44a/dub-fleet-manager/internal/depbot/internal/api/dbapi"
)

// PresentUpdateRun - create UpdateRun in compat format
func PresentUpdateRun(updateRun *dbapi.UpdateRun) compat.UpdateRun {
	reference := PresentReference(updateRun.ID, updateRun)
	return compat.UpdateRun{
		Id:             reference.Id,
		Kind:           reference.Kind,
		Href:           reference.Href,
		RepositoryId:   updateRun.RepositoryID,
		Manager:        updateRun.Manager,
		DepName:        updateRun.DepName,
		CurrentVersion: updateRun.CurrentVersion,
		NewVersion:     updateRun.NewVersion,
		UpdateType:     updateRun.UpdateType,
		BaseBranch:     updateRun.BaseBranch,
		BranchName:     updateRun.BranchName,
		GroupName:      updateRun.GroupName,
		Status:         updateRun.Status,
		PrNumber:       int32(updateRun.PRNumber),
		PrUrl:          updateRun.PRURL,
		CreatedAt:      updateRun.CreatedAt,
		UpdatedAt:      updateRun.UpdatedAt,
		FailedReason:   updateRun.FailedReason,
	}
}

// dashboardStatusOrder fixes the group order of the dependency dashboard so
// the snapshot is stable for a given set of runs
var dashboardStatusOrder = []constants.UpdateRunStatus{
	constants.UpdateRunStatusPending,
	constants.UpdateRunStatusOpening,
	constants.UpdateRunStatusOpen,
	constants.UpdateRunStatusMerged,
	constants.UpdateRunStatusClosed,
	constants.UpdateRunStatusFailed,
}

// PresentDependencyDashboard - group a repository's update runs by status into
// the dashboard snapshot served from /repositories/{id}/dashboard
func PresentDependencyDashboard(repositoryRequest *dbapi.RepositoryRequest, updateRuns dbapi.UpdateRunList) compat.DependencyDashboard {
	reference := PresentReference(repositoryRequest.ID, repositoryRequest)

	byStatus := map[string][]compat.UpdateRun{}
	for _, run := range updateRuns {
		byStatus[run.Status] = append(byStatus[run.Status], PresentUpdateRun(run))
	}

	groups := []compat.DependencyDashboardGroup{}
	for _, status := range dashboardStatusOrder {
		items, ok := byStatus[status.String()]
		if !ok {
			continue
		}
		groups = append(groups, compat.DependencyDashboardGroup{
			Status: status.String(),
			Total:  int32(len(items)),
			Items:  items,
		})
	}

	return compat.DependencyDashboard{
		Id:           reference.Id,
		Kind:         "DependencyDashboard",
		Href:         reference.Href + "/dashboard",
		RepositoryId: repositoryRequest.ID,
		GeneratedAt:  time.Now().UTC(),
		Groups:       groups,
	}
}
