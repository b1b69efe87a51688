package handlers

import (
	"fmt"

	"github.com/d8ff42ce19a3b0e1c44a/dub-fleet-manager/internal/depbot/routes"
	"github.com/d8ff42ce19a3b0e1c44a/dub-fleet-manager/pkg/client/keycloak"
	"github.com/d8ff42ce19a3b0e1c44a/dub-fleet-manager/pkg/errors"
	"github.com/d8ff42ce19a3b0e1c44a/dub-fleet-manager/pkg/server"
	"github.com/golang/glog"
	sdk "github.com/openshift-online/ocm-sdk-go"
	"github.com/openshift-online/ocm-sdk-go/authentication"
	pkgErrors "github.com/pkg/errors"
)

func NewAuthenticationBuilder(ServerConfig *server.ServerConfig, KeycloakConfig *keycloak.KeycloakConfig) (*authentication.HandlerBuilder, error) {

	authnLogger, err := sdk.NewGlogLoggerBuilder().
		InfoV(glog.Level(1)).
		DebugV(glog.Level(5)).
		Build()

	if err != nil {
		return nil, pkgErrors.Wrap(err, "unable to create authentication logger")
	}

	return authentication.NewHandler().
			Logger(authnLogger).
			KeysURL(ServerConfig.JwksURL).                             //ocm JWK JSON web token signing certificates URL
			KeysFile(ServerConfig.JwksFile).                           //ocm JWK backup JSON web token signing certificates
			KeysURL(KeycloakConfig.DepbotRealm.JwksEndpointURI).       // mas-sso JWK Cert URL
			KeysURL(KeycloakConfig.DashboardIDPRealm.JwksEndpointURI). // mas-sso SRE realm cert URL
			Error(fmt.Sprint(errors.ErrorUnauthenticated)).
			Service(errors.ERROR_CODE_PREFIX).
			Public(fmt.Sprintf("^%s/%s/?$", routes.ApiEndpoint, routes.DepbotFleetManagementApiPrefix)).
			Public(fmt.Sprintf("^%s/%s/%s/?$", routes.ApiEndpoint, routes.DepbotFleetManagementApiPrefix, routes.Version)).
			Public(fmt.Sprintf("^%s/%s/%s/openapi/?$", routes.ApiEndpoint, routes.DepbotFleetManagementApiPrefix, routes.Version)),
		nil
}
