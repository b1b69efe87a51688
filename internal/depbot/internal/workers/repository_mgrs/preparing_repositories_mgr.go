package repository_mgrs

import (
	"context"
	"time"

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

// PreparingRepositoryManager represents a repository manager that periodically reconciles preparing repository requests
type PreparingRepositoryManager struct {
	workers.BaseWorker
	repositoryService  services.RepositoryService
	forgeClientFactory forge.ClientFactory
}

// NewPreparingRepositoryManager creates a new repository manager to reconcile preparing repositories
func NewPreparingRepositoryManager(repositoryService services.RepositoryService, forgeClientFactory forge.ClientFactory, reconciler workers.Reconciler) *PreparingRepositoryManager {
	return &PreparingRepositoryManager{
		BaseWorker: workers.BaseWorker{
			Id:         uuid.New().String(),
			WorkerType: "preparing_repository",
			Reconciler: reconciler,
		},
		repositoryService:  repositoryService,
		forgeClientFactory: forgeClientFactory,
	}
}

// Start initializes the repository manager to reconcile preparing repository requests
func (k *PreparingRepositoryManager) Start() {
	k.StartWorker(k)
}

// Stop causes the process for reconciling preparing repository requests to stop.
func (k *PreparingRepositoryManager) Stop() {
	k.StopWorker(k)
}

func (k *PreparingRepositoryManager) Reconcile() []error {
	glog.Infoln("reconciling preparing repositories")
	var encounteredErrors []error

	preparingRepositories, serviceErr := k.repositoryService.ListByStatus(constants.RepositoryRequestStatusPreparing)
	if serviceErr != nil {
		encounteredErrors = append(encounteredErrors, errors.Wrap(serviceErr, "failed to list preparing repositories"))
	} else {
		glog.Infof("preparing repositories count = %d", len(preparingRepositories))
	}

	for _, repository := range preparingRepositories {
		glog.V(10).Infof("preparing repository id = %s", repository.ID)
		metrics.UpdateRepositoryRequestsStatusSinceCreatedMetric(constants.RepositoryRequestStatusPreparing, repository.ID, time.Since(repository.CreatedAt))
		if err := k.reconcilePreparingRepository(repository); err != nil {
			encounteredErrors = append(encounteredErrors, errors.Wrapf(err, "failed to reconcile preparing repository %s", repository.ID))
			continue
		}
	}

	return encounteredErrors
}

// reconcilePreparingRepository probes the repository on its forge. The repository
// becomes ready once the forge knows it and it is not archived.
func (k *PreparingRepositoryManager) reconcilePreparingRepository(repository *dbapi.RepositoryRequest) error {
	client, err := k.forgeClientFactory.GetClient(repository.ForgeType, repository.OrganisationId)
	if err != nil {
		return errors.Wrapf(err, "failed to get %s forge client for repository %s", repository.ForgeType, repository.ID)
	}

	forgeRepository, err := client.GetRepository(context.Background(), repository.Name)
	if err != nil {
		return k.handleRepositoryProbeError(repository, err)
	}

	if forgeRepository.Archived {
		return k.failPreparingRepository(repository, "repository is archived on the forge")
	}

	repository.DefaultBranch = forgeRepository.DefaultBranch
	if _, err := phase.PerformRepositoryOperation(repository, phase.ActivateRepository, func(repository *dbapi.RepositoryRequest) *svcErrors.ServiceError {
		return k.repositoryService.Update(repository)
	}); err != nil {
		return errors.Wrapf(err, "failed to update repository %s with forge details", repository.ID)
	}

	metrics.UpdateRepositoryCreationDurationMetric(metrics.JobTypeRepositoryCreate, time.Since(repository.CreatedAt))
	metrics.IncreaseRepositorySuccessOperationsCountMetric(constants.RepositoryOperationCreate)
	return nil
}

func (k *PreparingRepositoryManager) handleRepositoryProbeError(repository *dbapi.RepositoryRequest, err error) error {
	if forge.IsServerError(err) {
		// retry the forge probe only while the time elapsed since the repository db
		// record was created is still within the threshold
		durationSinceCreation := time.Since(repository.CreatedAt)
		if durationSinceCreation <= constants.RepositoryMaxDurationWithProvisioningErrs {
			return errors.Wrapf(err, "temporary forge error while preparing repository %s", repository.ID)
		}
		if failErr := k.failPreparingRepository(repository, err.Error()); failErr != nil {
			return failErr
		}
		return errors.Wrapf(err, "repository %s is in server error failed state. Maximum attempts has been reached", repository.ID)
	}

	if forge.IsNotFound(err) {
		if failErr := k.failPreparingRepository(repository, "repository not found on the forge"); failErr != nil {
			return failErr
		}
		return errors.Wrapf(err, "error preparing repository %s", repository.ID)
	}

	return errors.Wrapf(err, "failed to probe repository %s on forge %s", repository.ID, repository.ForgeType)
}

func (k *PreparingRepositoryManager) failPreparingRepository(repository *dbapi.RepositoryRequest, reason string) error {
	metrics.IncreaseRepositoryTotalOperationsCountMetric(constants.RepositoryOperationCreate)
	repository.FailedReason = reason
	if _, err := phase.PerformRepositoryOperation(repository, phase.FailRepository, func(repository *dbapi.RepositoryRequest) *svcErrors.ServiceError {
		return k.repositoryService.Update(repository)
	}); err != nil {
		return errors.Wrapf(err, "failed to update repository %s in failed state. Repository failed reason %s", repository.ID, repository.FailedReason)
	}
	metrics.UpdateRepositoryRequestsStatusSinceCreatedMetric(constants.RepositoryRequestStatusFailed, repository.ID, time.Since(repository.CreatedAt))
	return nil
}
