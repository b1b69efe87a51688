package updaterun_mgrs

import (
	"context"

	"github.com/d8ff42ce19a3b0e1c44a/dub-fleet-manager/internal/depbot/constants"
	"github.com/d8ff42ce19a3b0e1c44a/dub-fleet-manager/internal/depbot/internal/api/dbapi"
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

// OpenUpdateRunManager represents an update run manager that periodically polls the forge state of open pull requests
type OpenUpdateRunManager struct {
	workers.BaseWorker
	updateRunService   services.UpdateRunService
	repositoryService  services.RepositoryService
	forgeClientFactory forge.ClientFactory
}

// NewOpenUpdateRunManager creates a new update run manager to poll open pull requests
func NewOpenUpdateRunManager(updateRunService services.UpdateRunService, repositoryService services.RepositoryService, forgeClientFactory forge.ClientFactory, reconciler workers.Reconciler) *OpenUpdateRunManager {
	return &OpenUpdateRunManager{
		BaseWorker: workers.BaseWorker{
			Id:         uuid.New().String(),
			WorkerType: "open_update_run",
			Reconciler: reconciler,
		},
		updateRunService:   updateRunService,
		repositoryService:  repositoryService,
		forgeClientFactory: forgeClientFactory,
	}
}

// Start initializes the update run manager to reconcile open update runs
func (k *OpenUpdateRunManager) Start() {
	k.StartWorker(k)
}

// Stop causes the process for reconciling open update runs to stop.
func (k *OpenUpdateRunManager) Stop() {
	k.StopWorker(k)
}

func (k *OpenUpdateRunManager) Reconcile() []error {
	glog.Infoln("reconciling open update runs")
	var encounteredErrors []error

	openRuns, serviceErr := k.updateRunService.ListByStatus(constants.UpdateRunStatusOpen)
	if serviceErr != nil {
		encounteredErrors = append(encounteredErrors, errors.Wrap(serviceErr, "failed to list open update runs"))
		return encounteredErrors
	}

	glog.Infof("open update runs count = %d", len(openRuns))

	// forge clients are per repository organisation, cache them for the loop
	clients := map[string]forge.Client{}

	for _, updateRun := range openRuns {
		glog.V(10).Infof("open update run id = %s", updateRun.ID)
		repository, serviceErr := k.repositoryService.GetById(updateRun.RepositoryID)
		if serviceErr != nil {
			encounteredErrors = append(encounteredErrors, errors.Wrapf(serviceErr, "failed to get repository %s of update run %s", updateRun.RepositoryID, updateRun.ID))
			continue
		}

		client, ok := clients[repository.ID]
		if !ok {
			var err error
			client, err = k.forgeClientFactory.GetClient(repository.ForgeType, repository.OrganisationId)
			if err != nil {
				encounteredErrors = append(encounteredErrors, errors.Wrapf(err, "failed to get %s forge client for repository %s", repository.ForgeType, repository.ID))
				continue
			}
			clients[repository.ID] = client
		}

		if err := k.reconcileOpenRun(client, repository, updateRun); err != nil {
			encounteredErrors = append(encounteredErrors, errors.Wrapf(err, "failed to reconcile open update run %s", updateRun.ID))
			continue
		}
	}

	return encounteredErrors
}

func (k *OpenUpdateRunManager) reconcileOpenRun(client forge.Client, repository *dbapi.RepositoryRequest, updateRun *dbapi.UpdateRun) error {
	pullRequest, err := client.GetPullRequest(context.Background(), repository.Name, updateRun.PRNumber)
	if err != nil {
		if forge.IsNotFound(err) {
			// the pull request is gone from the forge, the run is over
			glog.Infof("pull request %d of update run %s no longer exists on the forge", updateRun.PRNumber, updateRun.ID)
			return k.closeRun(updateRun)
		}
		return errors.Wrapf(err, "failed to fetch pull request %d of repository %s", updateRun.PRNumber, repository.ID)
	}

	if pullRequest.Merged {
		return k.mergeRun(updateRun)
	}

	if pullRequest.State == forge.PullRequestStateClosed {
		return k.closeRun(updateRun)
	}

	if updateRun.Automerge {
		if err := client.MergePullRequest(context.Background(), repository.Name, updateRun.PRNumber); err != nil {
			if forge.IsServerError(err) {
				return errors.Wrapf(err, "failed to automerge pull request %d of repository %s", updateRun.PRNumber, repository.ID)
			}
			// the forge refuses the merge while required checks are not passing,
			// leave the pull request open for the next poll
			glog.V(10).Infof("pull request %d of update run %s is not mergeable yet: %s", updateRun.PRNumber, updateRun.ID, err)
			return nil
		}
		return k.mergeRun(updateRun)
	}

	return nil
}

func (k *OpenUpdateRunManager) mergeRun(updateRun *dbapi.UpdateRun) error {
	metrics.IncreaseUpdateRunTotalOperationsCountMetric(constants.UpdateRunOperationMerge)
	if _, err := phase.PerformUpdateRunOperation(updateRun, phase.MergeRun, func(updateRun *dbapi.UpdateRun) *svcErrors.ServiceError {
		return k.updateRunService.Update(updateRun)
	}); err != nil {
		return errors.Wrapf(err, "failed to move update run %s to merged state", updateRun.ID)
	}
	metrics.IncreaseUpdateRunSuccessOperationsCountMetric(constants.UpdateRunOperationMerge)
	return nil
}

func (k *OpenUpdateRunManager) closeRun(updateRun *dbapi.UpdateRun) error {
	metrics.IncreaseUpdateRunTotalOperationsCountMetric(constants.UpdateRunOperationClose)
	if _, err := phase.PerformUpdateRunOperation(updateRun, phase.CloseRun, func(updateRun *dbapi.UpdateRun) *svcErrors.ServiceError {
		return k.updateRunService.Update(updateRun)
	}); err != nil {
		return errors.Wrapf(err, "failed to move update run %s to closed state", updateRun.ID)
	}
	metrics.IncreaseUpdateRunSuccessOperationsCountMetric(constants.UpdateRunOperationClose)
	return nil
}
