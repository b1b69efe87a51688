package routes

import (
	"fmt"
	"net/http"

	"github.com/d8ff42ce19a3b0e1c44a/dub-fleet-manager/internal/depbot/internal/config"
	"github.com/d8ff42ce19a3b0e1c44a/dub-fleet-manager/internal/depbot/internal/handlers"
	"github.com/d8ff42ce19a3b0e1c44a/dub-fleet-manager/internal/depbot/internal/services"
	"github.com/d8ff42ce19a3b0e1c44a/dub-fleet-manager/internal/depbot/routes"
	"github.com/d8ff42ce19a3b0e1c44a/dub-fleet-manager/openapi"
	"github.com/d8ff42ce19a3b0e1c44a/dub-fleet-manager/pkg/acl"
	"github.com/d8ff42ce19a3b0e1c44a/dub-fleet-manager/pkg/api"
	"github.com/d8ff42ce19a3b0e1c44a/dub-fleet-manager/pkg/auth"
	"github.com/d8ff42ce19a3b0e1c44a/dub-fleet-manager/pkg/client/ocm"
	"github.com/d8ff42ce19a3b0e1c44a/dub-fleet-manager/pkg/db"
	"github.com/d8ff42ce19a3b0e1c44a/dub-fleet-manager/pkg/environments"
	"github.com/d8ff42ce19a3b0e1c44a/dub-fleet-manager/pkg/errors"
	coreHandlers "github.com/d8ff42ce19a3b0e1c44a/dub-fleet-manager/pkg/handlers"
	"github.com/d8ff42ce19a3b0e1c44a/dub-fleet-manager/pkg/server"
	"github.com/d8ff42ce19a3b0e1c44a/dub-fleet-manager/pkg/services/sso"
	"github.com/d8ff42ce19a3b0e1c44a/dub-fleet-manager/pkg/shared"
	"github.com/goava/di"
	gorillaHandlers "github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	pkgerrors "github.com/pkg/errors"
)

type options struct {
	di.Inject
	ServerConfig         *server.ServerConfig
	RepositoryConfig     *config.RepositoryConfig
	AdminRoleAuthZConfig *auth.AdminRoleAuthZConfig

	AMSClient        ocm.AMSClient
	Repository       services.RepositoryService
	UpdateRun        services.UpdateRunService
	AgentCluster     services.AgentClusterService
	AgentBundle      services.AgentBundleService
	AuthAgentService auth.AuthAgentService
	Keycloak         sso.DepbotKeycloakService
	DB               *db.ConnectionFactory

	AccessControlListMiddleware *acl.AccessControlListMiddleware
	AccessControlListConfig     *acl.AccessControlListConfig
}

func NewRouteLoader(s options) environments.RouteLoader {
	return &s
}

func (s *options) AddRoutes(mainRouter *mux.Router) error {
	basePath := fmt.Sprintf("%s/%s", routes.ApiEndpoint, routes.DepbotFleetManagementApiPrefix)
	err := s.buildApiBaseRouter(mainRouter, basePath)
	if err != nil {
		return err
	}

	return nil
}

func (s *options) buildApiBaseRouter(mainRouter *mux.Router, basePath string) error {
	openAPIDefinitions, err := shared.LoadOpenAPISpecFromYAML(openapi.DubFleetManagerOpenAPIYAMLBytes())
	if err != nil {
		return pkgerrors.Wrapf(err, "can't load OpenAPI specification")
	}

	repositoryHandler := handlers.NewRepositoryHandler(s.Repository, s.UpdateRun, s.RepositoryConfig)
	updateRunHandler := handlers.NewUpdateRunHandler(s.UpdateRun, s.Repository)
	errorsHandler := coreHandlers.NewErrorsHandler()
	serviceAccountsHandler := handlers.NewServiceAccountHandler(s.Keycloak)
	agentClusterHandler := handlers.NewAgentClusterHandler(s.AgentCluster, s.AgentBundle)

	authorizeMiddleware := s.AccessControlListMiddleware.Authorize
	requireIssuer := auth.NewRequireIssuerMiddleware().RequireIssuer([]string{s.ServerConfig.TokenIssuerURL, s.Keycloak.GetConfig().SSOProviderRealm().ValidIssuerURI}, errors.ErrorUnauthenticated)
	requireTermsAcceptance := auth.NewRequireTermsAcceptanceMiddleware().RequireTermsAcceptance(s.ServerConfig.EnableTermsAcceptance, s.AMSClient, errors.ErrorTermsNotAccepted)

	// base path. Could be /api/depbot_mgmt
	apiRouter := mainRouter.PathPrefix(basePath).Subrouter()

	// /v1
	apiV1Router := apiRouter.PathPrefix("/v1").Subrouter()

	//  /openapi
	apiV1Router.HandleFunc("/openapi", coreHandlers.NewOpenAPIHandler(openAPIDefinitions).Get).Methods(http.MethodGet)

	//  /errors
	apiV1ErrorsRouter := apiV1Router.PathPrefix("/errors").Subrouter()
	apiV1ErrorsRouter.HandleFunc("", errorsHandler.List).Methods(http.MethodGet)
	apiV1ErrorsRouter.HandleFunc("/{id}", errorsHandler.Get).Methods(http.MethodGet)

	v1Collections := []api.CollectionMetadata{}

	//  /repositories
	v1Collections = append(v1Collections, api.CollectionMetadata{
		ID:   "repositories",
		Kind: "RepositoryRequestList",
	})
	apiV1RepositoriesRouter := apiV1Router.PathPrefix("/repositories").Subrouter()
	apiV1RepositoriesRouter.HandleFunc("/{id}", repositoryHandler.Get).Methods(http.MethodGet)
	apiV1RepositoriesRouter.HandleFunc("/{id}", repositoryHandler.Delete).Methods(http.MethodDelete)
	apiV1RepositoriesRouter.HandleFunc("/{id}", repositoryHandler.Update).Methods(http.MethodPatch)
	apiV1RepositoriesRouter.HandleFunc("/{id}/config", repositoryHandler.GetConfig).Methods(http.MethodGet)
	apiV1RepositoriesRouter.HandleFunc("/{id}/dashboard", repositoryHandler.GetDashboard).Methods(http.MethodGet)
	apiV1RepositoriesRouter.HandleFunc("/{id}/update_runs", updateRunHandler.List).Methods(http.MethodGet)
	apiV1RepositoriesRouter.HandleFunc("/{id}/update_runs/{run_id}", updateRunHandler.Get).Methods(http.MethodGet)
	apiV1RepositoriesRouter.HandleFunc("", repositoryHandler.List).Methods(http.MethodGet)
	apiV1RepositoriesRouter.Use(requireIssuer)
	apiV1RepositoriesRouter.Use(authorizeMiddleware)

	apiV1RepositoriesCreateRouter := apiV1RepositoriesRouter.NewRoute().Subrouter()
	apiV1RepositoriesCreateRouter.HandleFunc("", repositoryHandler.Create).Methods(http.MethodPost)
	apiV1RepositoriesCreateRouter.Use(requireTermsAcceptance)

	//  /service_accounts
	v1Collections = append(v1Collections, api.CollectionMetadata{
		ID:   "service_accounts",
		Kind: "ServiceAccountList",
	})
	apiV1ServiceAccountsRouter := apiV1Router.PathPrefix("/service_accounts").Subrouter()
	apiV1ServiceAccountsRouter.HandleFunc("", serviceAccountsHandler.ListServiceAccounts).Methods(http.MethodGet)
	apiV1ServiceAccountsRouter.HandleFunc("", serviceAccountsHandler.CreateServiceAccount).Methods(http.MethodPost)
	apiV1ServiceAccountsRouter.HandleFunc("/{id}", serviceAccountsHandler.DeleteServiceAccount).Methods(http.MethodDelete)
	apiV1ServiceAccountsRouter.HandleFunc("/{id}/reset_credentials", serviceAccountsHandler.ResetServiceAccountCredential).Methods(http.MethodPost)
	apiV1ServiceAccountsRouter.HandleFunc("/{id}", serviceAccountsHandler.GetServiceAccountById).Methods(http.MethodGet)
	apiV1ServiceAccountsRouter.Use(requireIssuer)
	apiV1ServiceAccountsRouter.Use(authorizeMiddleware)

	v1Metadata := api.VersionMetadata{
		ID:          "v1",
		Collections: v1Collections,
	}
	apiMetadata := api.Metadata{
		ID: "depbot_mgmt",
		Versions: []api.VersionMetadata{
			v1Metadata,
		},
	}
	apiRouter.HandleFunc("", apiMetadata.ServeHTTP).Methods(http.MethodGet)
	apiRouter.Use(coreHandlers.MetricsMiddleware)
	apiRouter.Use(db.TransactionMiddleware(s.DB))
	apiRouter.Use(gorillaHandlers.CompressHandler)

	apiV1Router.HandleFunc("", v1Metadata.ServeHTTP).Methods(http.MethodGet)

	// /agent_clusters/{id}
	apiV1AgentRequestsRouter := apiV1Router.PathPrefix("/{_:agent[-_]clusters}").Subrouter()
	apiV1AgentRequestsRouter.HandleFunc("/{id}/status", agentClusterHandler.UpdateAgentClusterStatus).Methods(http.MethodPut)
	apiV1AgentRequestsRouter.HandleFunc("/{id}/resources", agentClusterHandler.GetResources).Methods(http.MethodGet)
	// deliberately returns 404 here if the request doesn't have the required role, so that it will appear as if the endpoint doesn't exist
	auth.UseOperatorAuthorisationMiddleware(apiV1AgentRequestsRouter, s.Keycloak.GetConfig().SSOProviderRealm().ValidIssuerURI, "id", s.AuthAgentService)

	adminRepositoryHandler := handlers.NewAdminRepositoryHandler(s.Repository, s.UpdateRun)
	adminRouter := apiV1Router.PathPrefix("/admin").Subrouter()
	rolesMapping := s.AdminRoleAuthZConfig.GetRoleMapping()
	adminRouter.Use(auth.NewRequireIssuerMiddleware().RequireIssuer([]string{s.Keycloak.GetConfig().DashboardIDPRealm.ValidIssuerURI}, errors.ErrorNotFound))
	adminRouter.Use(auth.NewRolesAuhzMiddleware().RequireRolesForMethods(rolesMapping, errors.ErrorNotFound))
	adminRouter.Use(auth.NewAuditLogMiddleware().AuditLog(errors.ErrorNotFound))
	adminRouter.HandleFunc("/repositories", adminRepositoryHandler.List).Methods(http.MethodGet)
	adminRouter.HandleFunc("/repositories/{id}", adminRepositoryHandler.Get).Methods(http.MethodGet)
	adminRouter.HandleFunc("/repositories/{id}", adminRepositoryHandler.Delete).Methods(http.MethodDelete)
	adminRouter.HandleFunc("/repositories/{id}", adminRepositoryHandler.Update).Methods(http.MethodPatch)
	adminRouter.HandleFunc("/repositories/{id}/update_runs", adminRepositoryHandler.ListUpdateRuns).Methods(http.MethodGet)
	adminRouter.HandleFunc("/agent_clusters", agentClusterHandler.List).Methods(http.MethodGet)
	adminRouter.HandleFunc("/agent_clusters/{id}", agentClusterHandler.Get).Methods(http.MethodGet)

	return nil
}
