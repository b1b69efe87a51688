// Creating a user in a random organization:
//      Given a user named "Bob"
// Creating a user in a given organization:
//      Given a user named "Jimmy" in organization "13639843"
// Logging into a user session:
//      Given I am logged in as "Jimmy"
// Setting the Authorization header of the current user session:
//      Given I set the "Authorization" header to "Bearer ${agent_token}"
package cucumber

import (
	"context"
	"fmt"
	"strings"

	"github.com/d8ff42ce19a3b0e1c44a/dub-fleet-manager/pkg/client/keycloak"
	"github.com/d8ff42ce19a3b0e1c44a/dub-fleet-manager/test"
	"github.com/cucumber/godog"
	"github.com/golang-jwt/jwt/v4"
)

func init() {
	StepModules = append(StepModules, func(ctx *godog.ScenarioContext, s *TestScenario) {
		ctx.Step(`^a user named "([^"]*)"$`, s.Suite.createUserNamed)
		ctx.Step(`^a user named "([^"]*)" in organization "([^"]*)"$`, s.Suite.createUserNamedInOrganization)
		ctx.Step(`^I am logged in as "([^"]*)"$`, s.iAmLoggedInAs)
		ctx.Step(`^I set the "([^"]*)" header to "([^"]*)"$`, s.iSetTheHeaderTo)
		ctx.Step(`^an admin user named "([^"]+)" with roles "([^"]+)"$`, s.Suite.createAdminUserNamed)
	})
}

func (s *TestSuite) createUserNamed(name string) error {
	s.Mu.Lock()
	orgId := s.nextOrgId
	s.nextOrgId += 1
	s.Mu.Unlock()
	return s.createUserNamedInOrganization(name, fmt.Sprintf("%d", orgId))
}

func (s *TestSuite) createUserNamedInOrganization(name string, orgid string) error {
	// users are shared concurrently across scenarios.. so lock while we create the user...
	s.Mu.Lock()
	defer s.Mu.Unlock()

	if s.users[name] != nil {
		return nil
	}

	// setup pre-requisites to performing requests
	account := s.Helper.NewAccountWithNameAndOrg(name, orgid)
	token, err := s.Helper.AuthHelper.CreateSignedJWT(account, nil)
	if err != nil {
		return err
	}

	s.users[name] = &TestUser{
		Name:  name,
		Token: token,
		Ctx:   context.WithValue(context.Background(), test.ContextAccessToken, token),
	}
	return nil
}

func (s *TestSuite) createAdminUserNamed(name, roles string) error {
	// users are shared concurrently across scenarios.. so lock while we create the user...
	s.Mu.Lock()
	defer s.Mu.Unlock()

	if s.users[name] != nil {
		return nil
	}

	var keycloakConfig *keycloak.KeycloakConfig
	s.Helper.Env.MustResolveAll(&keycloakConfig)

	// admin tokens come from the dashboard IDP realm
	account := s.Helper.NewRandAccount()
	roleList := []interface{}{}
	for _, role := range strings.Split(strings.TrimSpace(roles), ",") {
		roleList = append(roleList, strings.TrimSpace(role))
	}
	claims := jwt.MapClaims{
		"iss": keycloakConfig.DashboardIDPRealm.ValidIssuerURI,
		"realm_access": map[string]interface{}{
			"roles": roleList,
		},
		"preferred_username": name,
	}
	token, err := s.Helper.AuthHelper.CreateSignedJWT(account, claims)
	if err != nil {
		return err
	}

	s.users[name] = &TestUser{
		Name:  name,
		Token: token,
		Ctx:   context.WithValue(context.Background(), test.ContextAccessToken, token),
	}
	return nil
}

func (s *TestScenario) iAmLoggedInAs(name string) error {
	s.Session().Header.Del("Authorization")
	s.CurrentUser = name
	return nil
}

func (s *TestScenario) iSetTheHeaderTo(name string, value string) error {
	s.Session().Header.Set(name, s.Expand(value))
	return nil
}
