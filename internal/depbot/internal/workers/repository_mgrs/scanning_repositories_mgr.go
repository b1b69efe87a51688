package repository_mgrs

import (
	"context"
	"time"

	"github.com/d8ff42ce19a3b0e1c44a/dub-fleet-manager/internal/depbot/internal/api/dbapi"
	"github.com/d8ff42ce19a3b0e1c44a/dub-fleet-manager/internal/depbot/internal/botconfig"
	"github.com/d8ff42ce19a3b0e1c44a/dub-fleet-manager/internal/depbot/internal/config"
	"github.com/d8ff42ce19a3b0e1c44a/dub-fleet-manager/internal/depbot/internal/services"
	"github.com/d8ff42ce19a3b0e1c44a/dub-fleet-manager/pkg/workers"

	"github.com/golang/glog"
	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ScanningRepositoryManager represents a repository manager that periodically schedules dependency scans
type ScanningRepositoryManager struct {
	workers.BaseWorker
	repositoryService services.RepositoryService
	scanService       services.ScanService
	repositoryConfig  *config.RepositoryConfig
}

// NewScanningRepositoryManager creates a new repository manager to schedule dependency scans
func NewScanningRepositoryManager(repositoryService services.RepositoryService, scanService services.ScanService, repositoryConfig *config.RepositoryConfig, reconciler workers.Reconciler) *ScanningRepositoryManager {
	return &ScanningRepositoryManager{
		BaseWorker: workers.BaseWorker{
			Id:         uuid.New().String(),
			WorkerType: "scanning_repository",
			Reconciler: reconciler,
		},
		repositoryService: repositoryService,
		scanService:       scanService,
		repositoryConfig:  repositoryConfig,
	}
}

// Start initializes the repository manager to schedule dependency scans
func (k *ScanningRepositoryManager) Start() {
	k.StartWorker(k)
}

// Stop causes the process for scheduling dependency scans to stop.
func (k *ScanningRepositoryManager) Stop() {
	k.StopWorker(k)
}

func (k *ScanningRepositoryManager) Reconcile() []error {
	glog.Infoln("reconciling repositories due for a dependency scan")
	var encounteredErrors []error

	dueRepositories, serviceErr := k.repositoryService.ListDueForScan(k.repositoryConfig.ScanInterval)
	if serviceErr != nil {
		encounteredErrors = append(encounteredErrors, errors.Wrap(serviceErr, "failed to list repositories due for scanning"))
		return encounteredErrors
	}

	glog.Infof("repositories due for a scan count = %d", len(dueRepositories))

	for _, repository := range dueRepositories {
		glog.V(10).Infof("scanning repository id = %s", repository.ID)
		if err := k.reconcileDueRepository(repository); err != nil {
			encounteredErrors = append(encounteredErrors, errors.Wrapf(err, "failed to scan repository %s", repository.ID))
			continue
		}
	}

	return encounteredErrors
}

func (k *ScanningRepositoryManager) reconcileDueRepository(repository *dbapi.RepositoryRequest) error {
	resolved, serviceErr := k.repositoryService.ResolveBotConfig(context.Background(), repository)
	if serviceErr != nil {
		return errors.Wrapf(serviceErr, "failed to resolve bot configuration of repository %s", repository.ID)
	}

	// repositories with a schedule only scan inside one of their windows; they
	// stay due and are picked up again by a later reconcile
	if len(resolved.Schedule) > 0 && !botconfig.InWindow(resolved.Schedule, time.Now()) {
		glog.V(10).Infof("repository %s is outside its schedule windows %v", repository.ID, resolved.Schedule)
		return nil
	}

	summary, serviceErr := k.scanService.ScanRepository(context.Background(), repository)
	if serviceErr != nil {
		return serviceErr
	}

	glog.Infof("repository %s scanned: %d manifests, %d dependencies checked, %d update runs ensured",
		repository.ID, summary.ManifestsScanned, summary.DependenciesChecked, summary.UpdateRunsEnsured)
	return nil
}
