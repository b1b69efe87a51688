package services

import (
	"context"
	"strings"
	"time"

	semver "github.com/blang/semver/v4"
	"github.com/golang/glog"

	"github.com/d8ff42ce19a3b0e1c44a/dub-fleet-manager/internal/depbot/constants"
	"github.com/d8ff42ce19a3b0e1c44a/dub-fleet-manager/internal/depbot/internal/api/dbapi"
	"github.com/d8ff42ce19a3b0e1c44a/dub-fleet-manager/internal/depbot/internal/botconfig"
	"github.com/d8ff42ce19a3b0e1c44a/dub-fleet-manager/internal/depbot/internal/clients/forge"
	"github.com/d8ff42ce19a3b0e1c44a/dub-fleet-manager/internal/depbot/internal/clients/registry"
	"github.com/d8ff42ce19a3b0e1c44a/dub-fleet-manager/internal/depbot/internal/manifests"
	"github.com/d8ff42ce19a3b0e1c44a/dub-fleet-manager/pkg/api"
	"github.com/d8ff42ce19a3b0e1c44a/dub-fleet-manager/pkg/errors"
	"github.com/d8ff42ce19a3b0e1c44a/dub-fleet-manager/pkg/metrics"
)

// ScanSummary reports what a repository scan looked at and recorded.
type ScanSummary struct {
	RepositoryID        string
	ManifestsScanned    int
	DependenciesChecked int
	UpdateRunsEnsured   int
}

//go:generate moq -out scanservice_moq.go . ScanService
type ScanService interface {
	// ScanRepository walks the repository's manifests on every configured base
	// branch and records an update run for each outdated dependency the
	// resolved bot configuration lets through. The repository's last scan time
	// is stamped even when the bot is disabled for it.
	ScanRepository(ctx context.Context, repositoryRequest *dbapi.RepositoryRequest) (*ScanSummary, *errors.ServiceError)
}

type scanService struct {
	forgeClientFactory forge.ClientFactory
	registryProvider   registry.Provider
	repositoryService  RepositoryService
	updateRunService   UpdateRunService
}

var _ ScanService = &scanService{}

func NewScanService(forgeClientFactory forge.ClientFactory, registryProvider registry.Provider, repositoryService RepositoryService, updateRunService UpdateRunService) *scanService {
	return &scanService{
		forgeClientFactory: forgeClientFactory,
		registryProvider:   registryProvider,
		repositoryService:  repositoryService,
		updateRunService:   updateRunService,
	}
}

func (s *scanService) ScanRepository(ctx context.Context, repositoryRequest *dbapi.RepositoryRequest) (*ScanSummary, *errors.ServiceError) {
	summary := &ScanSummary{RepositoryID: repositoryRequest.ID}

	resolved, svcErr := s.repositoryService.ResolveBotConfig(ctx, repositoryRequest)
	if svcErr != nil {
		return nil, svcErr
	}

	if resolved.Enabled != nil && !*resolved.Enabled {
		glog.V(10).Infof("bot is disabled for repository %s, skipping scan", repositoryRequest.ID)
		return summary, s.stampLastScan(repositoryRequest)
	}

	client, err := s.forgeClientFactory.GetClient(repositoryRequest.ForgeType, repositoryRequest.OrganisationId)
	if err != nil {
		return nil, errors.NewWithCause(errors.ErrorGeneral, err, "failed to get forge client for repository %s", repositoryRequest.ID)
	}

	for _, baseBranch := range resolved.BaseBranches {
		foundManifests, err := client.ListManifests(ctx, repositoryRequest.Name, baseBranch)
		if err != nil {
			return nil, errors.NewWithCause(errors.ErrorGeneral, err, "failed to list manifests of %s@%s", repositoryRequest.Name, baseBranch)
		}

		for _, manifest := range foundManifests {
			content, err := client.GetFileContent(ctx, repositoryRequest.Name, baseBranch, manifest.Path)
			if err != nil {
				return nil, errors.NewWithCause(errors.ErrorGeneral, err, "failed to fetch %s of %s@%s", manifest.Path, repositoryRequest.Name, baseBranch)
			}

			dependencies, err := manifests.Parse(manifest.Manager, content)
			if err != nil {
				// a broken manifest should not sink the whole scan
				glog.Warningf("skipping manifest %s of repository %s: %s", manifest.Path, repositoryRequest.ID, err)
				continue
			}
			summary.ManifestsScanned++

			for _, dependency := range dependencies {
				summary.DependenciesChecked++

				latest, err := s.lookupLatest(ctx, manifest.Manager, dependency.Name, resolved.RegistryUrls)
				if err != nil {
					glog.Warningf("failed to look up %s dependency %s: %s", manifest.Manager, dependency.Name, err)
					continue
				}

				updateType, outdated := classifyUpdate(dependency.Version, latest)
				if !outdated {
					continue
				}

				decision := resolved.Decide(botconfig.Update{
					Manager:    manifest.Manager.String(),
					DepName:    dependency.Name,
					UpdateType: updateType.String(),
					BaseBranch: baseBranch,
				})
				if !decision.Enabled || !decision.VersionAllowed(latest) {
					continue
				}

				ensured, svcErr := s.updateRunService.EnsureRun(&dbapi.UpdateRun{
					RepositoryID:   repositoryRequest.ID,
					Manager:        manifest.Manager.String(),
					DepName:        dependency.Name,
					CurrentVersion: dependency.Version,
					NewVersion:     latest,
					UpdateType:     updateType.String(),
					BaseBranch:     baseBranch,
					GroupName:      decision.GroupName,
					Automerge:      decision.Automerge,
					Labels:         strings.Join(decision.Labels, ","),
				})
				if svcErr != nil {
					return nil, svcErr
				}
				if ensured {
					summary.UpdateRunsEnsured++
				}
			}
		}
	}

	glog.V(10).Infof("scanned repository %s: %d manifests, %d dependencies, %d update runs",
		repositoryRequest.ID, summary.ManifestsScanned, summary.DependenciesChecked, summary.UpdateRunsEnsured)

	return summary, s.stampLastScan(repositoryRequest)
}

func (s *scanService) lookupLatest(ctx context.Context, manager constants.DepManager, depName string, registryUrls []string) (string, error) {
	client, err := s.registryProvider.ForManager(manager, registryUrls)
	if err != nil {
		return "", err
	}

	start := time.Now()
	latest, err := client.LatestVersion(ctx, depName)
	status := "success"
	if err != nil {
		status = "failure"
	}
	metrics.IncreaseRegistryLookupCountMetric(manager.String(), status)
	metrics.UpdateRegistryLookupDurationMetric(manager.String(), status, time.Since(start))

	return latest, err
}

func (s *scanService) stampLastScan(repositoryRequest *dbapi.RepositoryRequest) *errors.ServiceError {
	return s.repositoryService.Updates(repositoryRequest, map[string]interface{}{
		"last_scan_at": time.Now(),
	})
}

// classifyUpdate compares the pinned version with the registry's latest and
// returns the type of the due update. The second return is false when the
// dependency is already current. Versions that do not parse as semver move as
// digest updates whenever the registry reports something different.
func classifyUpdate(currentVersion string, newVersion string) (constants.UpdateType, bool) {
	current, currentErr := semver.ParseTolerant(currentVersion)
	latest, latestErr := semver.ParseTolerant(newVersion)
	if currentErr != nil || latestErr != nil {
		if currentVersion == newVersion {
			return "", false
		}
		return constants.UpdateTypeDigest, true
	}

	cmp, err := api.CompareBuildAwareSemanticVersions(currentVersion, newVersion)
	if err != nil || cmp >= 0 {
		return "", false
	}

	switch {
	case latest.Major != current.Major:
		return constants.UpdateTypeMajor, true
	case latest.Minor != current.Minor:
		return constants.UpdateTypeMinor, true
	default:
		return constants.UpdateTypePatch, true
	}
}
