package updaterun_mgrs

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/d8ff42ce19a3b0e1c44a/dub-fleet-manager/internal/depbot/constants"
	"github.com/d8ff42ce19a3b0e1c44a/dub-fleet-manager/internal/depbot/internal/api/dbapi"
	"github.com/d8ff42ce19a3b0e1c44a/dub-fleet-manager/internal/depbot/internal/botconfig"
	"github.com/d8ff42ce19a3b0e1c44a/dub-fleet-manager/internal/depbot/internal/clients/forge"
	"github.com/d8ff42ce19a3b0e1c44a/dub-fleet-manager/internal/depbot/internal/services"
	"github.com/d8ff42ce19a3b0e1c44a/dub-fleet-manager/internal/depbot/internal/services/phase"
	svcErrors "github.com/d8ff42ce19a3b0e1c44a/dub-fleet-manager/pkg/errors"
	"github.com/d8ff42ce19a3b0e1c44a/dub-fleet-manager/pkg/metrics"
	"github.com/d8ff42ce19a3b0e1c44a/dub-fleet-manager/pkg/workers"

	"github.com/golang/glog"
	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// PendingUpdateRunManager represents an update run manager that periodically opens pull requests for pending update runs
type PendingUpdateRunManager struct {
	workers.BaseWorker
	updateRunService   services.UpdateRunService
	repositoryService  services.RepositoryService
	forgeClientFactory forge.ClientFactory
}

// NewPendingUpdateRunManager creates a new update run manager to open pull requests for pending update runs
func NewPendingUpdateRunManager(updateRunService services.UpdateRunService, repositoryService services.RepositoryService, forgeClientFactory forge.ClientFactory, reconciler workers.Reconciler) *PendingUpdateRunManager {
	return &PendingUpdateRunManager{
		BaseWorker: workers.BaseWorker{
			Id:         uuid.New().String(),
			WorkerType: "pending_update_run",
			Reconciler: reconciler,
		},
		updateRunService:   updateRunService,
		repositoryService:  repositoryService,
		forgeClientFactory: forgeClientFactory,
	}
}

// Start initializes the update run manager to reconcile pending update runs
func (k *PendingUpdateRunManager) Start() {
	k.StartWorker(k)
}

// Stop causes the process for reconciling pending update runs to stop.
func (k *PendingUpdateRunManager) Stop() {
	k.StopWorker(k)
}

func (k *PendingUpdateRunManager) Reconcile() []error {
	glog.Infoln("reconciling pending update runs")
	var encounteredErrors []error

	pendingRuns, serviceErr := k.updateRunService.ListByStatus(constants.UpdateRunStatusPending)
	if serviceErr != nil {
		encounteredErrors = append(encounteredErrors, errors.Wrap(serviceErr, "failed to list pending update runs"))
		return encounteredErrors
	}

	glog.Infof("pending update runs count = %d", len(pendingRuns))

	// group the runs by repository so that the concurrent pull request limit and
	// the schedule windows are applied per repository
	runsByRepository := map[string][]*dbapi.UpdateRun{}
	for _, updateRun := range pendingRuns {
		runsByRepository[updateRun.RepositoryID] = append(runsByRepository[updateRun.RepositoryID], updateRun)
	}

	for repositoryID, repositoryRuns := range runsByRepository {
		runErrors := k.reconcileRepositoryRuns(repositoryID, repositoryRuns)
		for _, err := range runErrors {
			encounteredErrors = append(encounteredErrors, errors.Wrapf(err, "failed to reconcile pending update runs of repository %s", repositoryID))
		}
	}

	return encounteredErrors
}

func (k *PendingUpdateRunManager) reconcileRepositoryRuns(repositoryID string, pendingRuns []*dbapi.UpdateRun) []error {
	repository, serviceErr := k.repositoryService.GetById(repositoryID)
	if serviceErr != nil {
		return []error{errors.Wrap(serviceErr, "failed to get repository")}
	}

	// pull requests only open for repositories that are ready. Paused repositories
	// keep their pending runs until they are resumed
	if repository.Status != constants.RepositoryRequestStatusReady.String() {
		glog.V(10).Infof("repository %s is in status %s, not opening pull requests", repository.ID, repository.Status)
		return nil
	}

	resolved, serviceErr := k.repositoryService.ResolveBotConfig(context.Background(), repository)
	if serviceErr != nil {
		return []error{errors.Wrap(serviceErr, "failed to resolve bot configuration")}
	}

	if len(resolved.Schedule) > 0 && !botconfig.InWindow(resolved.Schedule, time.Now()) {
		glog.V(10).Infof("repository %s is outside its schedule windows %v", repository.ID, resolved.Schedule)
		return nil
	}

	// a nil or explicit zero limit means unlimited
	limit := 0
	if resolved.PRConcurrentLimit != nil {
		limit = *resolved.PRConcurrentLimit
	}
	admitted := len(pendingRuns)
	if limit > 0 {
		openCount, serviceErr := k.updateRunService.CountOpenForRepository(repositoryID)
		if serviceErr != nil {
			return []error{errors.Wrap(serviceErr, "failed to count open pull requests")}
		}
		admitted = limit - openCount
		if admitted <= 0 {
			glog.V(10).Infof("repository %s reached its concurrent pull request limit of %d", repository.ID, limit)
			return nil
		}
		if admitted > len(pendingRuns) {
			admitted = len(pendingRuns)
		}
	}

	client, err := k.forgeClientFactory.GetClient(repository.ForgeType, repository.OrganisationId)
	if err != nil {
		return []error{errors.Wrapf(err, "failed to get %s forge client", repository.ForgeType)}
	}

	var encounteredErrors []error
	for _, updateRun := range pendingRuns[:admitted] {
		glog.V(10).Infof("pending update run id = %s", updateRun.ID)
		if err := k.openPullRequest(client, repository, updateRun); err != nil {
			encounteredErrors = append(encounteredErrors, err)
			continue
		}
	}

	return encounteredErrors
}

func (k *PendingUpdateRunManager) openPullRequest(client forge.Client, repository *dbapi.RepositoryRequest, updateRun *dbapi.UpdateRun) error {
	metrics.IncreaseUpdateRunTotalOperationsCountMetric(constants.UpdateRunOperationOpen)

	if _, err := phase.PerformUpdateRunOperation(updateRun, phase.OpenRun, func(updateRun *dbapi.UpdateRun) *svcErrors.ServiceError {
		return k.updateRunService.Update(updateRun)
	}); err != nil {
		return errors.Wrapf(err, "failed to move update run %s to opening state", updateRun.ID)
	}

	pullRequest, err := client.CreatePullRequest(context.Background(), repository.Name, pullRequestSpecFor(updateRun))
	if err != nil {
		return k.handlePullRequestOpenError(updateRun, err)
	}

	updateRun.PRNumber = pullRequest.Number
	updateRun.PRURL = pullRequest.URL
	if _, err := phase.PerformUpdateRunOperation(updateRun, phase.OpenedRun, func(updateRun *dbapi.UpdateRun) *svcErrors.ServiceError {
		return k.updateRunService.Update(updateRun)
	}); err != nil {
		return errors.Wrapf(err, "failed to record opened pull request %d on update run %s", pullRequest.Number, updateRun.ID)
	}

	metrics.IncreaseUpdateRunSuccessOperationsCountMetric(constants.UpdateRunOperationOpen)
	metrics.UpdatePullRequestOpenDurationMetric(metrics.JobTypePullRequestOpen, time.Since(updateRun.CreatedAt))
	glog.Infof("pull request %s opened for update run %s", pullRequest.URL, updateRun.ID)
	return nil
}

// handlePullRequestOpenError returns the run to pending for another attempt, or
// fails it for good once the attempt cap is reached.
func (k *PendingUpdateRunManager) handlePullRequestOpenError(updateRun *dbapi.UpdateRun, err error) error {
	updateRun.Attempts++
	updateRun.FailedReason = err.Error()

	if updateRun.Attempts >= constants.UpdateRunMaxAttempts {
		if _, failErr := phase.PerformUpdateRunOperation(updateRun, phase.FailRun, func(updateRun *dbapi.UpdateRun) *svcErrors.ServiceError {
			return k.updateRunService.Updates(updateRun, map[string]interface{}{
				"status":        updateRun.Status,
				"attempts":      updateRun.Attempts,
				"failed_reason": updateRun.FailedReason,
			})
		}); failErr != nil {
			return errors.Wrapf(failErr, "failed to update run %s in failed state", updateRun.ID)
		}
		return errors.Wrapf(err, "update run %s is in failed state. Maximum attempts has been reached", updateRun.ID)
	}

	if _, retryErr := phase.PerformUpdateRunOperation(updateRun, phase.RetryRun, func(updateRun *dbapi.UpdateRun) *svcErrors.ServiceError {
		return k.updateRunService.Updates(updateRun, map[string]interface{}{
			"status":        updateRun.Status,
			"attempts":      updateRun.Attempts,
			"failed_reason": updateRun.FailedReason,
		})
	}); retryErr != nil {
		return errors.Wrapf(retryErr, "failed to return update run %s to pending state", updateRun.ID)
	}
	return errors.Wrapf(err, "failed to open pull request for update run %s, attempt %d of %d", updateRun.ID, updateRun.Attempts, constants.UpdateRunMaxAttempts)
}

// pullRequestSpecFor renders the pull request of an update run: one pull request
// per dependency, manager and base branch.
func pullRequestSpecFor(updateRun *dbapi.UpdateRun) *forge.PullRequestSpec {
	var labels []string
	if updateRun.Labels != "" {
		labels = strings.Split(updateRun.Labels, ",")
	}
	body := fmt.Sprintf("Bumps `%s` from `%s` to `%s`.", updateRun.DepName, updateRun.CurrentVersion, updateRun.NewVersion)
	if updateRun.GroupName != "" {
		body = fmt.Sprintf("%s\n\nGroup: %s", body, updateRun.GroupName)
	}
	return &forge.PullRequestSpec{
		Title:  fmt.Sprintf("Update %s %s to %s", updateRun.Manager, updateRun.DepName, updateRun.NewVersion),
		Body:   body,
		Head:   updateRun.BranchName,
		Base:   updateRun.BaseBranch,
		Labels: labels,
	}
}
