package services

import (
	"context"
	"fmt"
	"testing"

	"github.com/onsi/gomega"

	"github.com/d8ff42ce19a3b0e1c44a/dub-fleet-manager/internal/depbot/constants"
	"github.com/d8ff42ce19a3b0e1c44a/dub-fleet-manager/internal/depbot/internal/api/dbapi"
	"github.com/d8ff42ce19a3b0e1c44a/dub-fleet-manager/internal/depbot/internal/botconfig"
	"github.com/d8ff42ce19a3b0e1c44a/dub-fleet-manager/internal/depbot/internal/clients/forge"
	"github.com/d8ff42ce19a3b0e1c44a/dub-fleet-manager/internal/depbot/internal/clients/registry"
	"github.com/d8ff42ce19a3b0e1c44a/dub-fleet-manager/pkg/errors"
)

const testScanGoMod = `module github.com/acme/billing

go 1.18

require github.com/Shopify/sarama v1.37.2
`

func buildScanRepositoryService(resolved *botconfig.ResolvedConfig) *RepositoryServiceMock {
	return &RepositoryServiceMock{
		ResolveBotConfigFunc: func(ctx context.Context, repositoryRequest *dbapi.RepositoryRequest) (*botconfig.ResolvedConfig, *errors.ServiceError) {
			return resolved, nil
		},
		UpdatesFunc: func(repositoryRequest *dbapi.RepositoryRequest, values map[string]interface{}) *errors.ServiceError {
			return nil
		},
	}
}

func buildScanForgeFactory(client forge.Client) *forge.ClientFactoryMock {
	return &forge.ClientFactoryMock{
		GetClientFunc: func(forgeType string, orgID string) (forge.Client, error) {
			return client, nil
		},
	}
}

func buildScanRegistryProvider(latestVersion string, lookupErr error) *registry.ProviderMock {
	return &registry.ProviderMock{
		ForManagerFunc: func(manager constants.DepManager, registryUrls []string) (registry.Client, error) {
			return &registry.ClientMock{
				LatestVersionFunc: func(ctx context.Context, depName string) (string, error) {
					return latestVersion, lookupErr
				},
			}, nil
		},
	}
}

func Test_scanService_ScanRepository(t *testing.T) {
	g := gomega.NewWithT(t)

	repositoryRequest := buildRepositoryRequest(nil)
	repositoryService := buildScanRepositoryService(&botconfig.ResolvedConfig{
		BotConfig: botconfig.BotConfig{
			BaseBranches: []string{"main", "release"},
		},
	})
	forgeClient := &forge.ClientMock{
		ListManifestsFunc: func(ctx context.Context, slug string, ref string) ([]forge.Manifest, error) {
			return []forge.Manifest{{Path: "go.mod", Manager: constants.ManagerGoMod}}, nil
		},
		GetFileContentFunc: func(ctx context.Context, slug string, ref string, path string) ([]byte, error) {
			return []byte(testScanGoMod), nil
		},
	}
	updateRunService := &UpdateRunServiceMock{
		EnsureRunFunc: func(updateRun *dbapi.UpdateRun) (bool, *errors.ServiceError) {
			return true, nil
		},
	}

	k := NewScanService(
		buildScanForgeFactory(forgeClient),
		buildScanRegistryProvider("1.38.1", nil),
		repositoryService,
		updateRunService,
	)

	summary, err := k.ScanRepository(context.Background(), repositoryRequest)
	g.Expect(err).To(gomega.BeNil())
	g.Expect(summary.ManifestsScanned).To(gomega.Equal(2))
	g.Expect(summary.DependenciesChecked).To(gomega.Equal(2))
	g.Expect(summary.UpdateRunsEnsured).To(gomega.Equal(2))

	ensured := updateRunService.EnsureRunCalls()
	g.Expect(ensured).To(gomega.HaveLen(2))
	g.Expect(ensured[0].UpdateRun.RepositoryID).To(gomega.Equal(repositoryRequest.ID))
	g.Expect(ensured[0].UpdateRun.Manager).To(gomega.Equal(constants.ManagerGoMod.String()))
	g.Expect(ensured[0].UpdateRun.DepName).To(gomega.Equal("github.com/Shopify/sarama"))
	g.Expect(ensured[0].UpdateRun.CurrentVersion).To(gomega.Equal("1.37.2"))
	g.Expect(ensured[0].UpdateRun.NewVersion).To(gomega.Equal("1.38.1"))
	g.Expect(ensured[0].UpdateRun.UpdateType).To(gomega.Equal(constants.UpdateTypeMinor.String()))
	g.Expect(ensured[0].UpdateRun.BaseBranch).To(gomega.Equal("main"))
	g.Expect(ensured[1].UpdateRun.BaseBranch).To(gomega.Equal("release"))

	// the scan must stamp the repository's last scan time
	updates := repositoryService.UpdatesCalls()
	g.Expect(updates).To(gomega.HaveLen(1))
	g.Expect(updates[0].Values).To(gomega.HaveKey("last_scan_at"))
}

func Test_scanService_ScanRepository_BotDisabled(t *testing.T) {
	g := gomega.NewWithT(t)

	disabled := false
	repositoryService := buildScanRepositoryService(&botconfig.ResolvedConfig{
		BotConfig: botconfig.BotConfig{
			Enabled:      &disabled,
			BaseBranches: []string{"main"},
		},
	})
	forgeFactory := buildScanForgeFactory(&forge.ClientMock{})

	k := NewScanService(
		forgeFactory,
		buildScanRegistryProvider("1.38.1", nil),
		repositoryService,
		&UpdateRunServiceMock{},
	)

	summary, err := k.ScanRepository(context.Background(), buildRepositoryRequest(nil))
	g.Expect(err).To(gomega.BeNil())
	g.Expect(summary.ManifestsScanned).To(gomega.Equal(0))
	g.Expect(forgeFactory.GetClientCalls()).To(gomega.BeEmpty())

	// disabled repositories still get their scan time stamped
	updates := repositoryService.UpdatesCalls()
	g.Expect(updates).To(gomega.HaveLen(1))
	g.Expect(updates[0].Values).To(gomega.HaveKey("last_scan_at"))
}

func Test_scanService_ScanRepository_IgnoredDependency(t *testing.T) {
	g := gomega.NewWithT(t)

	repositoryService := buildScanRepositoryService(&botconfig.ResolvedConfig{
		BotConfig: botconfig.BotConfig{
			BaseBranches: []string{"main"},
			IgnoreDeps:   []string{"github.com/Shopify/sarama"},
		},
	})
	forgeClient := &forge.ClientMock{
		ListManifestsFunc: func(ctx context.Context, slug string, ref string) ([]forge.Manifest, error) {
			return []forge.Manifest{{Path: "go.mod", Manager: constants.ManagerGoMod}}, nil
		},
		GetFileContentFunc: func(ctx context.Context, slug string, ref string, path string) ([]byte, error) {
			return []byte(testScanGoMod), nil
		},
	}
	updateRunService := &UpdateRunServiceMock{
		EnsureRunFunc: func(updateRun *dbapi.UpdateRun) (bool, *errors.ServiceError) {
			return true, nil
		},
	}

	k := NewScanService(
		buildScanForgeFactory(forgeClient),
		buildScanRegistryProvider("1.38.1", nil),
		repositoryService,
		updateRunService,
	)

	summary, err := k.ScanRepository(context.Background(), buildRepositoryRequest(nil))
	g.Expect(err).To(gomega.BeNil())
	g.Expect(summary.DependenciesChecked).To(gomega.Equal(1))
	g.Expect(summary.UpdateRunsEnsured).To(gomega.Equal(0))
	g.Expect(updateRunService.EnsureRunCalls()).To(gomega.BeEmpty())
}

func Test_scanService_ScanRepository_RegistryLookupFailure(t *testing.T) {
	g := gomega.NewWithT(t)

	repositoryService := buildScanRepositoryService(&botconfig.ResolvedConfig{
		BotConfig: botconfig.BotConfig{
			BaseBranches: []string{"main"},
		},
	})
	forgeClient := &forge.ClientMock{
		ListManifestsFunc: func(ctx context.Context, slug string, ref string) ([]forge.Manifest, error) {
			return []forge.Manifest{{Path: "go.mod", Manager: constants.ManagerGoMod}}, nil
		},
		GetFileContentFunc: func(ctx context.Context, slug string, ref string, path string) ([]byte, error) {
			return []byte(testScanGoMod), nil
		},
	}
	updateRunService := &UpdateRunServiceMock{}

	k := NewScanService(
		buildScanForgeFactory(forgeClient),
		buildScanRegistryProvider("", fmt.Errorf("registry unavailable")),
		repositoryService,
		updateRunService,
	)

	// a failed lookup skips the dependency without sinking the scan
	summary, err := k.ScanRepository(context.Background(), buildRepositoryRequest(nil))
	g.Expect(err).To(gomega.BeNil())
	g.Expect(summary.DependenciesChecked).To(gomega.Equal(1))
	g.Expect(summary.UpdateRunsEnsured).To(gomega.Equal(0))
	g.Expect(repositoryService.UpdatesCalls()).To(gomega.HaveLen(1))
}

func Test_scanService_ScanRepository_ForgeFailure(t *testing.T) {
	g := gomega.NewWithT(t)

	repositoryService := buildScanRepositoryService(&botconfig.ResolvedConfig{
		BotConfig: botconfig.BotConfig{
			BaseBranches: []string{"main"},
		},
	})
	forgeClient := &forge.ClientMock{
		ListManifestsFunc: func(ctx context.Context, slug string, ref string) ([]forge.Manifest, error) {
			return nil, &forge.APIError{StatusCode: 500, Message: "tree unavailable"}
		},
	}

	k := NewScanService(
		buildScanForgeFactory(forgeClient),
		buildScanRegistryProvider("1.38.1", nil),
		repositoryService,
		&UpdateRunServiceMock{},
	)

	_, err := k.ScanRepository(context.Background(), buildRepositoryRequest(nil))
	g.Expect(err).ToNot(gomega.BeNil())

	// a failed scan must not stamp the last scan time
	g.Expect(repositoryService.UpdatesCalls()).To(gomega.BeEmpty())
}

func Test_classifyUpdate(t *testing.T) {
	tests := []struct {
		name         string
		current      string
		latest       string
		wantType     constants.UpdateType
		wantOutdated bool
	}{
		{
			name:         "no update when versions match",
			current:      "1.37.2",
			latest:       "1.37.2",
			wantOutdated: false,
		},
		{
			name:         "no update when the registry is behind",
			current:      "2.0.0",
			latest:       "1.9.9",
			wantOutdated: false,
		},
		{
			name:         "patch update",
			current:      "1.2.3",
			latest:       "1.2.4",
			wantType:     constants.UpdateTypePatch,
			wantOutdated: true,
		},
		{
			name:         "minor update",
			current:      "1.37.2",
			latest:       "1.38.1",
			wantType:     constants.UpdateTypeMinor,
			wantOutdated: true,
		},
		{
			name:         "major update",
			current:      "1.2.3",
			latest:       "2.0.0",
			wantType:     constants.UpdateTypeMajor,
			wantOutdated: true,
		},
		{
			name:         "short docker style tags compare as semver",
			current:      "3.16",
			latest:       "3.17",
			wantType:     constants.UpdateTypeMinor,
			wantOutdated: true,
		},
		{
			name:         "named tags move as digest updates",
			current:      "bullseye",
			latest:       "bookworm",
			wantType:     constants.UpdateTypeDigest,
			wantOutdated: true,
		},
		{
			name:         "named tags that match are current",
			current:      "bullseye",
			latest:       "bullseye",
			wantOutdated: false,
		},
		{
			name:         "build metadata only change is a patch",
			current:      "1.2.3+build.1",
			latest:       "1.2.3+build.2",
			wantType:     constants.UpdateTypePatch,
			wantOutdated: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotType, gotOutdated := classifyUpdate(tt.current, tt.latest)
			if gotOutdated != tt.wantOutdated {
				t.Errorf("classifyUpdate() outdated = %v, want %v", gotOutdated, tt.wantOutdated)
				return
			}
			if gotOutdated && gotType != tt.wantType {
				t.Errorf("classifyUpdate() type = %v, want %v", gotType, tt.wantType)
			}
		})
	}
}
