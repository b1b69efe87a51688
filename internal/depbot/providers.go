package depbot

import (
	"github.com/d8ff42ce19a3b0e1c44a/dub-fleet-manager/internal/depbot/internal/botconfig"
	"github.com/d8ff42ce19a3b0e1c44a/dub-fleet-manager/internal/depbot/internal/clients/forge"
	"github.com/d8ff42ce19a3b0e1c44a/dub-fleet-manager/internal/depbot/internal/clients/registry"
	"github.com/d8ff42ce19a3b0e1c44a/dub-fleet-manager/internal/depbot/internal/cmd/errors"
	"github.com/d8ff42ce19a3b0e1c44a/dub-fleet-manager/internal/depbot/internal/cmd/repository"
	"github.com/d8ff42ce19a3b0e1c44a/dub-fleet-manager/internal/depbot/internal/cmd/serviceaccounts"
	"github.com/d8ff42ce19a3b0e1c44a/dub-fleet-manager/internal/depbot/internal/cmd/updaterun"
	"github.com/d8ff42ce19a3b0e1c44a/dub-fleet-manager/internal/depbot/internal/config"
	"github.com/d8ff42ce19a3b0e1c44a/dub-fleet-manager/internal/depbot/internal/environments"
	"github.com/d8ff42ce19a3b0e1c44a/dub-fleet-manager/internal/depbot/internal/handlers"
	"github.com/d8ff42ce19a3b0e1c44a/dub-fleet-manager/internal/depbot/internal/migrations"
	"github.com/d8ff42ce19a3b0e1c44a/dub-fleet-manager/internal/depbot/internal/routes"
	"github.com/d8ff42ce19a3b0e1c44a/dub-fleet-manager/internal/depbot/internal/services"
	"github.com/d8ff42ce19a3b0e1c44a/dub-fleet-manager/internal/depbot/internal/services/dashboardcertmgmt"
	"github.com/d8ff42ce19a3b0e1c44a/dub-fleet-manager/internal/depbot/internal/services/quota"
	"github.com/d8ff42ce19a3b0e1c44a/dub-fleet-manager/internal/depbot/internal/workers/agent_cluster_mgrs"
	"github.com/d8ff42ce19a3b0e1c44a/dub-fleet-manager/internal/depbot/internal/workers/dashboard_mgrs"
	"github.com/d8ff42ce19a3b0e1c44a/dub-fleet-manager/internal/depbot/internal/workers/repository_mgrs"
	"github.com/d8ff42ce19a3b0e1c44a/dub-fleet-manager/internal/depbot/internal/workers/updaterun_mgrs"
	"github.com/d8ff42ce19a3b0e1c44a/dub-fleet-manager/pkg/auth"
	environments2 "github.com/d8ff42ce19a3b0e1c44a/dub-fleet-manager/pkg/environments"
	"github.com/d8ff42ce19a3b0e1c44a/dub-fleet-manager/pkg/providers"
	"github.com/d8ff42ce19a3b0e1c44a/dub-fleet-manager/pkg/quota_management"
	"github.com/d8ff42ce19a3b0e1c44a/dub-fleet-manager/pkg/services/vault"
	"github.com/d8ff42ce19a3b0e1c44a/dub-fleet-manager/pkg/workers"
	"github.com/goava/di"
)

func EnvConfigProviders() di.Option {
	return di.Options(
		di.Provide(environments.NewDevelopmentEnvLoader, di.Tags{"env": environments2.DevelopmentEnv}),
		di.Provide(environments.NewProductionEnvLoader, di.Tags{"env": environments2.ProductionEnv}),
		di.Provide(environments.NewStageEnvLoader, di.Tags{"env": environments2.StageEnv}),
		di.Provide(environments.NewIntegrationEnvLoader, di.Tags{"env": environments2.IntegrationEnv}),
		di.Provide(environments.NewTestingEnvLoader, di.Tags{"env": environments2.TestingEnv}),
	)
}

func ConfigProviders() di.Option {
	return di.Options(

		EnvConfigProviders(),
		providers.CoreConfigProviders(),
		vault.ConfigProviders(),

		// Configuration for the fleet manager...
		di.Provide(config.NewAWSConfig, di.As(new(environments2.ConfigModule))),
		di.Provide(config.NewRepositoryConfig, di.As(new(environments2.ConfigModule))),
		di.Provide(config.NewBotConfigPresetsConfig, di.As(new(environments2.ConfigModule)), di.As(new(environments2.ServiceValidator))),
		di.Provide(config.NewForgeConfig, di.As(new(environments2.ConfigModule))),
		di.Provide(config.NewRegistryConfig, di.As(new(environments2.ConfigModule))),
		di.Provide(config.NewAgentClusterConfig, di.As(new(environments2.ConfigModule))),
		di.Provide(config.NewDashboardConfig, di.As(new(environments2.ConfigModule))),
		di.Provide(quota_management.NewQuotaManagementListConfig, di.As(new(environments2.ConfigModule))),

		// Additional CLI subcommands
		di.Provide(repository.NewRepositoryCommand),
		di.Provide(updaterun.NewUpdateRunCommand),
		di.Provide(serviceaccounts.NewServiceAccountCommand),
		di.Provide(errors.NewErrorsCommand),
		di.Provide(environments2.Func(ServiceProviders)),
		di.Provide(migrations.New),
	)
}

func ServiceProviders() di.Option {
	return di.Options(
		di.Provide(services.NewRepositoryService, di.As(new(services.RepositoryService))),
		di.Provide(services.NewUpdateRunService, di.As(new(services.UpdateRunService))),
		di.Provide(services.NewScanService, di.As(new(services.ScanService))),
		di.Provide(services.NewAgentClusterService, di.As(new(services.AgentClusterService)), di.As(new(auth.AuthAgentService))),
		di.Provide(services.NewAgentBundleService, di.As(new(services.AgentBundleService))),
		di.Provide(dashboardcertmgmt.NewDashboardCertificateManagementService),
		di.Provide(handlers.NewAuthenticationBuilder),
		di.Provide(routes.NewRouteLoader),
		di.Provide(quota.NewDefaultQuotaServiceFactory),
		di.Provide(forge.NewClientFactory),
		di.Provide(registry.NewProvider),
		di.Provide(newPresetCatalog),
		di.Provide(repository_mgrs.NewRepositoryManager, di.As(new(workers.Worker))),
		di.Provide(repository_mgrs.NewAcceptedRepositoryManager, di.As(new(workers.Worker))),
		di.Provide(repository_mgrs.NewPreparingRepositoryManager, di.As(new(workers.Worker))),
		di.Provide(repository_mgrs.NewDeletingRepositoryManager, di.As(new(workers.Worker))),
		di.Provide(repository_mgrs.NewScanningRepositoryManager, di.As(new(workers.Worker))),
		di.Provide(updaterun_mgrs.NewUpdateRunManager, di.As(new(workers.Worker))),
		di.Provide(updaterun_mgrs.NewPendingUpdateRunManager, di.As(new(workers.Worker))),
		di.Provide(updaterun_mgrs.NewOpenUpdateRunManager, di.As(new(workers.Worker))),
		di.Provide(agent_cluster_mgrs.NewAgentClusterManager, di.As(new(workers.Worker))),
		di.Provide(dashboard_mgrs.NewDashboardTLSCertificateManager, di.As(new(workers.Worker))),
	)
}

// newPresetCatalog exposes the preset catalog loaded by the presets config
// module to the services that consult it.
func newPresetCatalog(presetsConfig *config.BotConfigPresetsConfig) *botconfig.PresetCatalog {
	return botconfig.NewPresetCatalog(presetsConfig.Presets)
}
