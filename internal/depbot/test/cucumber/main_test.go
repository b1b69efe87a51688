package cucumber

import (
	"testing"

	depbottest "github.com/d8ff42ce19a3b0e1c44a/dub-fleet-manager/internal/depbot/test"
	"github.com/d8ff42ce19a3b0e1c44a/dub-fleet-manager/pkg/client/keycloak"
	"github.com/d8ff42ce19a3b0e1c44a/dub-fleet-manager/test/cucumber"
	"github.com/d8ff42ce19a3b0e1c44a/dub-fleet-manager/test/mocks"
)

const (
	ssoClientID     = "dub-fleet-manager"
	ssoClientSecret = "dub-fleet-manager-secret"
)

// TestMain starts the fleet manager against mocked external dependencies and
// runs the scenarios from the features directory against it.
func TestMain(m *testing.M) {
	t := &testing.T{}

	ocmServer := mocks.NewMockConfigurableServerBuilder().Build()
	defer ocmServer.Close()

	ssoMock := mocks.NewMockServer()
	ssoMock.RegisterPrivilegedClient(ssoClientID, ssoClientSecret)
	ssoMock.Start()
	defer ssoMock.Stop()

	h, teardown := depbottest.NewDepbotHelperWithHooks(t, ocmServer, func(keycloakConfig *keycloak.KeycloakConfig) {
		keycloakConfig.SelectSSOProvider = keycloak.REDHAT_SSO
		keycloakConfig.RedhatSSORealm.BaseURL = ssoMock.BaseURL()
		keycloakConfig.RedhatSSORealm.TokenEndpointURI = ssoMock.BaseURL() + "/auth/realms/redhat-external/protocol/openid-connect/token"
		keycloakConfig.RedhatSSORealm.ClientID = ssoClientID
		keycloakConfig.RedhatSSORealm.ClientSecret = ssoClientSecret
	})
	defer teardown()

	cucumber.TestMain(m, h)
}
