package test

import (
	"net/http/httptest"
	"testing"

	"github.com/d8ff42ce19a3b0e1c44a/dub-fleet-manager/internal/depbot"
	"github.com/d8ff42ce19a3b0e1c44a/dub-fleet-manager/internal/depbot/internal/botconfig"
	"github.com/d8ff42ce19a3b0e1c44a/dub-fleet-manager/internal/depbot/internal/config"
	"github.com/d8ff42ce19a3b0e1c44a/dub-fleet-manager/internal/depbot/internal/services"
	"github.com/d8ff42ce19a3b0e1c44a/dub-fleet-manager/pkg/client/keycloak"
	"github.com/d8ff42ce19a3b0e1c44a/dub-fleet-manager/pkg/client/ocm"
	"github.com/d8ff42ce19a3b0e1c44a/dub-fleet-manager/pkg/db"
	"github.com/d8ff42ce19a3b0e1c44a/dub-fleet-manager/pkg/environments"
	"github.com/d8ff42ce19a3b0e1c44a/dub-fleet-manager/pkg/server"
	"github.com/d8ff42ce19a3b0e1c44a/dub-fleet-manager/pkg/services/signalbus"
	coreWorkers "github.com/d8ff42ce19a3b0e1c44a/dub-fleet-manager/pkg/workers"
	"github.com/d8ff42ce19a3b0e1c44a/dub-fleet-manager/test"
	"github.com/goava/di"
	"github.com/golang/glog"
)

type Services struct {
	di.Inject
	DBFactory             *db.ConnectionFactory
	KeycloakConfig        *keycloak.KeycloakConfig
	RepositoryConfig      *config.RepositoryConfig
	AgentClusterConfig    *config.AgentClusterConfig
	MetricsServer         *server.MetricsServer
	HealthCheckServer     *server.HealthCheckServer
	Workers               []coreWorkers.Worker
	LeaderElectionManager *coreWorkers.LeaderElectionManager
	SignalBus             signalbus.SignalBus
	APIServer             *server.ApiServer
	BootupServices        []environments.BootService
	OCMConfig             *ocm.OCMConfig
	ServerConfig          *server.ServerConfig
	RepositoryService     services.RepositoryService
	UpdateRunService      services.UpdateRunService
	AgentClusterService   services.AgentClusterService
	PresetCatalog         *botconfig.PresetCatalog
}

var TestServices Services

// NewDepbotHelper registers a test environment wired with the fleet manager
// providers. This should be run before every integration test.
func NewDepbotHelper(t *testing.T, server *httptest.Server) (*test.Helper, func()) {
	return NewDepbotHelperWithHooks(t, server, nil)
}

func NewDepbotHelperWithHooks(t *testing.T, server *httptest.Server, configurationHook interface{}) (*test.Helper, func()) {
	h, teardown := test.NewHelperWithHooks(t, server, configurationHook, depbot.ConfigProviders(), di.ProvideValue(environments.BeforeCreateServicesHook{
		Func: func(repositoryConfig *config.RepositoryConfig, agentClusterConfig *config.AgentClusterConfig, forgeConfig *config.ForgeConfig) {
			repositoryConfig.ScanInterval = 0            // no background scans unless a test asks for them
			agentClusterConfig.RawKubernetesConfig = nil // disable applying resources for standalone clusters
			forgeConfig.EnableMock = true
		},
	}))
	if err := h.Env.ServiceContainer.Resolve(&TestServices); err != nil {
		glog.Fatalf("Unable to initialize testing environment: %s", err.Error())
	}
	return h, teardown
}
