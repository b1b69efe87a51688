package providers

import (
	"github.com/d8ff42ce19a3b0e1c44a/dub-fleet-manager/pkg/acl"
	"github.com/d8ff42ce19a3b0e1c44a/dub-fleet-manager/pkg/auth"
	"github.com/d8ff42ce19a3b0e1c44a/dub-fleet-manager/pkg/client/aws"
	"github.com/d8ff42ce19a3b0e1c44a/dub-fleet-manager/pkg/client/keycloak"
	"github.com/d8ff42ce19a3b0e1c44a/dub-fleet-manager/pkg/client/ocm"
	"github.com/d8ff42ce19a3b0e1c44a/dub-fleet-manager/pkg/cmd/migrate"
	"github.com/d8ff42ce19a3b0e1c44a/dub-fleet-manager/pkg/cmd/serve"
	"github.com/d8ff42ce19a3b0e1c44a/dub-fleet-manager/pkg/db"
	"github.com/d8ff42ce19a3b0e1c44a/dub-fleet-manager/pkg/environments"
	"github.com/d8ff42ce19a3b0e1c44a/dub-fleet-manager/pkg/handlers"
	"github.com/d8ff42ce19a3b0e1c44a/dub-fleet-manager/pkg/server"
	"github.com/d8ff42ce19a3b0e1c44a/dub-fleet-manager/pkg/services/account"
	"github.com/d8ff42ce19a3b0e1c44a/dub-fleet-manager/pkg/services/authorization"
	"github.com/d8ff42ce19a3b0e1c44a/dub-fleet-manager/pkg/services/sentry"
	"github.com/d8ff42ce19a3b0e1c44a/dub-fleet-manager/pkg/services/signalbus"
	"github.com/d8ff42ce19a3b0e1c44a/dub-fleet-manager/pkg/services/sso"
	"github.com/d8ff42ce19a3b0e1c44a/dub-fleet-manager/pkg/workers"
	"github.com/goava/di"
)

func CoreConfigProviders() di.Option {
	return di.Options(
		di.Provide(func(env *environments.Env) environments.EnvName {
			return environments.EnvName(env.Name)
		}),

		// Add config types
		di.Provide(server.NewHealthCheckConfig, di.As(new(environments.ConfigModule))),
		di.Provide(db.NewDatabaseConfig, di.As(new(environments.ConfigModule))),
		di.Provide(server.NewServerConfig, di.As(new(environments.ConfigModule))),
		di.Provide(ocm.NewOCMConfig, di.As(new(environments.ConfigModule))),
		di.Provide(keycloak.NewKeycloakConfig, di.As(new(environments.ConfigModule)), di.As(new(environments.ServiceValidator))),
		di.Provide(acl.NewAccessControlListConfig, di.As(new(environments.ConfigModule))),
		di.Provide(server.NewMetricsConfig, di.As(new(environments.ConfigModule))),
		di.Provide(workers.NewReconcilerConfig, di.As(new(environments.ConfigModule))),
		di.Provide(auth.NewContextConfig, di.As(new(environments.ConfigModule))),
		di.Provide(auth.NewAdminAuthZConfig, di.As(new(environments.ConfigModule)), di.As(new(environments.ServiceValidator))),

		// Add common CLI sub commands
		di.Provide(serve.NewServeCommand),
		di.Provide(migrate.NewMigrateCommand),

		// Add other core config providers..
		sentry.ConfigProviders(),
		signalbus.ConfigProviders(),
		authorization.ConfigProviders(),
		account.ConfigProviders(),

		di.Provide(environments.Func(ServiceProviders)),
	)
}

func ServiceProviders() di.Option {
	return di.Options(

		// provide the service constructors
		di.Provide(db.NewConnectionFactory),

		di.Provide(func(reconcilerConfig *workers.ReconcilerConfig, bus signalbus.SignalBus) workers.Reconciler {
			return workers.Reconciler{
				SignalBus:        bus,
				ReconcilerConfig: reconcilerConfig,
			}
		}),

		di.Provide(ocm.NewOcmClientProvider),
		di.Provide(func(factory *ocm.OCMClientFactory) ocm.AMSClient {
			return factory.GetClient(ocm.AMSClientType)
		}),

		di.Provide(aws.NewDefaultClientFactory, di.As(new(aws.ClientFactory))),

		di.Provide(acl.NewAccessControlListMiddleware),
		di.Provide(handlers.NewErrorsHandler),
		di.Provide(func(c *keycloak.KeycloakConfig) sso.DepbotKeycloakService {
			return sso.NewKeycloakServiceBuilder().
				ForDFM().
				WithConfiguration(c).
				Build()
		}),
		di.Provide(func(c *keycloak.KeycloakConfig) sso.DashboardKeycloakService {
			return sso.NewKeycloakServiceBuilder().
				ForDashboard().
				WithConfiguration(c).
				WithRealmConfig(c.DashboardIDPRealm).
				Build()
		}),

		// Types registered as a BootService are started when the env is started
		di.Provide(server.NewAPIServer, di.As(new(environments.BootService))),
		di.Provide(server.NewMetricsServer, di.As(new(environments.BootService))),
		di.Provide(server.NewHealthCheckServer, di.As(new(environments.BootService))),
		di.Provide(workers.NewLeaderElectionManager, di.As(new(environments.BootService))),
	)
}
