package test

import (
	"context"
	"crypto/rsa"
	"encoding/json"
	"fmt"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/d8ff42ce19a3b0e1c44a/dub-fleet-manager/pkg/auth"
	"github.com/d8ff42ce19a3b0e1c44a/dub-fleet-manager/pkg/client/keycloak"
	"github.com/d8ff42ce19a3b0e1c44a/dub-fleet-manager/pkg/client/ocm"
	"github.com/d8ff42ce19a3b0e1c44a/dub-fleet-manager/pkg/db"
	"github.com/d8ff42ce19a3b0e1c44a/dub-fleet-manager/pkg/environments"
	"github.com/d8ff42ce19a3b0e1c44a/dub-fleet-manager/pkg/errors"
	"github.com/d8ff42ce19a3b0e1c44a/dub-fleet-manager/pkg/metrics"
	"github.com/d8ff42ce19a3b0e1c44a/dub-fleet-manager/pkg/server"
	"github.com/d8ff42ce19a3b0e1c44a/dub-fleet-manager/test/mocks"
	"github.com/go-faker/faker/v4"
	"github.com/goava/di"
	"github.com/golang-jwt/jwt/v4"
	"github.com/golang/glog"
	"github.com/google/uuid"
	gm "github.com/onsi/gomega"
	amv1 "github.com/openshift-online/ocm-sdk-go/accountsmgmt/v1"
	"github.com/segmentio/ksuid"
	"github.com/spf13/pflag"
)

const (
	jwtKeyFile = "test/support/jwt_private_key.pem"
	jwtCAFile  = "test/support/jwt_ca.pem"
)

type contextKey string

// ContextAccessToken takes a signed token out of a context built with
// Helper.NewAuthenticatedContext.
const ContextAccessToken contextKey = "accesstoken"

type Helper struct {
	AuthHelper    *auth.AuthHelper
	JWTPrivateKey *rsa.PrivateKey
	JWTCA         *rsa.PublicKey
	T             *testing.T
	Env           *environments.Env
}

// NewHelper creates a test environment for integration style tests. The
// returned teardown function stops the servers and rolls the database back.
func NewHelper(t *testing.T, httpServer *httptest.Server, options ...di.Option) (*Helper, func()) {
	return NewHelperWithHooks(t, httpServer, nil, options...)
}

// NewHelperWithHooks will init the Helper and start the server, and it allows to customize the configurations of the server via the hooks.
// The configuration hook will be invoked before the environments.Env is created, and it can be used to change configurations.
// configurationHook is an optional invocation of the di container.
func NewHelperWithHooks(t *testing.T, httpServer *httptest.Server, configurationHook interface{}, envProviders ...di.Option) (*Helper, func()) {

	// Register the test with gomega
	gm.RegisterTestingT(t)

	// Manually set environment name, ignoring environment variables
	validTestEnv := false
	envName := environments.GetEnvironmentStrFromEnv()
	for _, testEnv := range []string{environments.TestingEnv, environments.IntegrationEnv, environments.DevelopmentEnv} {
		if envName == testEnv {
			validTestEnv = true
			break
		}
	}
	if !validTestEnv {
		fmt.Println("OCM_ENV environment variable not set to a valid test environment, using default testing environment")
		envName = environments.TestingEnv
	}
	h := &Helper{
		T: t,
	}

	env, err := environments.New(envName, envProviders...)
	if err != nil {
		glog.Fatalf("error initializing: %v", err)
	}
	h.Env = env

	parseCommandLineFlags(env)

	var ocmConfig *ocm.OCMConfig
	var serverConfig *server.ServerConfig
	var keycloakConfig *keycloak.KeycloakConfig
	env.MustResolveAll(&ocmConfig, &serverConfig, &keycloakConfig)

	// Create a new helper
	authHelper, err := auth.NewAuthHelper(jwtKeyFile, jwtCAFile, serverConfig.TokenIssuerURL)
	if err != nil {
		t.Fatalf("failed to create a new auth helper %s", err.Error())
	}
	h.JWTPrivateKey = authHelper.JWTPrivateKey
	h.JWTCA = authHelper.JWTCA
	h.AuthHelper = authHelper

	// Set server if provided
	if httpServer != nil && ocmConfig.MockMode == ocm.MockModeEmulateServer {
		fmt.Printf("Setting OCM base URL to %s\n", httpServer.URL)
		ocmConfig.BaseURL = httpServer.URL
		ocmConfig.AmsUrl = httpServer.URL
	}

	jwkURL, stopJWKMockServer := h.StartJWKCertServerMock()
	serverConfig.JwksURL = jwkURL
	keycloakConfig.EnableAuthenticationOnDashboard = false

	// the configuration hook might set config options that influence which config files are loaded,
	// by env.CreateServices()
	if configurationHook != nil {
		env.MustInvoke(configurationHook)
	}

	err = env.CreateServices()
	if err != nil {
		glog.Fatalf("Unable to initialize testing environment: %s", err.Error())
	}

	// Reset the database to a seeded blank state
	h.CleanDB()
	h.ResetDB()
	env.Start()

	return h, buildTeardownHelperFn(
		env.Stop,
		h.CleanDB,
		metrics.Reset,
		stopJWKMockServer,
		env.Cleanup)
}

func parseCommandLineFlags(env *environments.Env) {
	commandLine := pflag.NewFlagSet("test", pflag.PanicOnError)
	err := env.AddFlags(commandLine)
	if err != nil {
		glog.Fatalf("Unable to add environment flags: %s", err.Error())
	}
	if logLevel := os.Getenv("LOGLEVEL"); logLevel != "" {
		glog.Infof("Using custom loglevel: %s", logLevel)
		err = commandLine.Set("-v", logLevel)
		if err != nil {
			glog.Warningf("Unable to set custom logLevel: %s", err.Error())
		}
	}
	err = commandLine.Parse(os.Args[1:])
	if err != nil {
		glog.Fatalf("Unable to parse command line options: %s", err.Error())
	}
}

func buildTeardownHelperFn(funcs ...func()) func() {
	return func() {
		for _, f := range funcs {
			if f != nil {
				f()
			}
		}
	}
}

// NewID creates a new unique ID used internally to CS
func (helper *Helper) NewID() string {
	return ksuid.New().String()
}

// NewUUID creates a new unique UUID, which has different formatting than ksuid
// UUID is used by telemeter and we validate the format.
func (helper *Helper) NewUUID() string {
	return uuid.New().String()
}

func (helper *Helper) DBFactory() (connectionFactory *db.ConnectionFactory) {
	helper.Env.MustResolveAll(&connectionFactory)
	return connectionFactory
}

func (helper *Helper) Migrations() (m []*db.Migration) {
	helper.Env.MustResolveAll(&m)
	return
}

func (helper *Helper) MigrateDB() {
	for _, migration := range helper.Migrations() {
		migration.Migrate()
	}
}

func (helper *Helper) MigrateDBTo(migrationID string) {
	for _, migration := range helper.Migrations() {
		migration.MigrateTo(migrationID)
	}
}

func (helper *Helper) CleanDB() {
	for _, migration := range helper.Migrations() {
		migration.RollbackAll()
	}
}

func (helper *Helper) ResetDB() {
	helper.CleanDB()
	helper.MigrateDB()
}

func (helper *Helper) RestURL(path string) string {
	var serverConfig *server.ServerConfig
	helper.Env.MustResolveAll(&serverConfig)

	protocol := "http"
	if serverConfig.EnableHTTPS {
		protocol = "https"
	}
	return fmt.Sprintf("%s://%s/api/depbot_mgmt/v1%s", protocol, serverConfig.BindAddress, path)
}

func (helper *Helper) MetricsURL(path string) string {
	var metricsConfig *server.MetricsConfig
	helper.Env.MustResolveAll(&metricsConfig)
	return fmt.Sprintf("http://%s%s", metricsConfig.BindAddress, path)
}

func (helper *Helper) HealthCheckURL(path string) string {
	var healthCheckConfig *server.HealthCheckConfig
	helper.Env.MustResolveAll(&healthCheckConfig)
	return fmt.Sprintf("http://%s%s", healthCheckConfig.BindAddress, path)
}

// NewRandAccount returns a random account that has the control plane team org id as its organisation id
// The org id value is taken from config/quota-management-list-configuration.yaml
func (helper *Helper) NewRandAccount() *amv1.Account {
	// this value if taken from config/quota-management-list-configuration.yaml
	orgId := "13640203"
	return helper.NewAccountWithNameAndOrg(faker.Name(), orgId)
}

func (helper *Helper) NewAccountWithNameAndOrg(name string, orgId string) *amv1.Account {
	account, err := helper.AuthHelper.NewAccount(helper.NewID(), name, faker.Email(), orgId)
	if err != nil {
		helper.T.Errorf("failed to create a new account: %s", err.Error())
	}
	return account
}

func (helper *Helper) NewAllowedServiceAccount() *amv1.Account {
	// this value if taken from config/quota-management-list-configuration.yaml
	allowedSA := "testuser3@example.com"
	account, err := helper.AuthHelper.NewAccount(allowedSA, allowedSA, allowedSA, "")
	if err != nil {
		helper.T.Errorf("failed to create a new service account: %s", err.Error())
	}
	return account
}

func (helper *Helper) NewAccount(username, name, email string, orgId string) *amv1.Account {
	account, err := helper.AuthHelper.NewAccount(username, name, email, orgId)
	if err != nil {
		helper.T.Errorf(fmt.Sprintf("Unable to create a new account: %s", err.Error()))
	}
	return account
}

// NewAuthenticatedContext returns an authenticated context that carries the
// signed token of the given account.
func (helper *Helper) NewAuthenticatedContext(account *amv1.Account, claims jwt.MapClaims) context.Context {
	token, err := helper.AuthHelper.CreateSignedJWT(account, claims)
	if err != nil {
		helper.T.Errorf(fmt.Sprintf("Unable to create a signed token: %s", err.Error()))
	}

	return context.WithValue(context.Background(), ContextAccessToken, token)
}

func (helper *Helper) StartJWKCertServerMock() (url string, teardown func()) {
	return mocks.NewJWKCertServerMock(helper.T, helper.JWTCA, auth.JwkKID)
}

func (helper *Helper) DeleteAll(table interface{}) {
	gorm := helper.DBFactory().New()
	err := gorm.Model(table).Unscoped().Delete(table).Error
	if err != nil {
		helper.T.Errorf("error deleting from table %v: %v", table, err)
	}
}

func (helper *Helper) Delete(obj interface{}) {
	gorm := helper.DBFactory().New()
	err := gorm.Unscoped().Delete(obj).Error
	if err != nil {
		helper.T.Errorf("error deleting object %v: %v", obj, err)
	}
}

func (helper *Helper) SkipIfShort() {
	if testing.Short() {
		helper.T.Skip("Skipping execution of test in short mode")
	}
}

func (helper *Helper) Count(table string) int64 {
	gorm := helper.DBFactory().New()
	var count int64
	err := gorm.Table(table).Count(&count).Error
	if err != nil {
		helper.T.Errorf("error getting count for table %s: %v", table, err)
	}
	return count
}

func (helper *Helper) CreateJWTString(account *amv1.Account) string {
	token, err := helper.AuthHelper.CreateSignedJWT(account, nil)
	if err != nil {
		helper.T.Errorf(fmt.Sprintf("Unable to create a signed token: %s", err.Error()))
	}
	return token
}

func (helper *Helper) CreateJWTStringWithClaim(account *amv1.Account, jwtClaims jwt.MapClaims) string {
	token, err := helper.AuthHelper.CreateSignedJWT(account, jwtClaims)
	if err != nil {
		helper.T.Errorf(fmt.Sprintf("Unable to create a signed token with the given claims: %s", err.Error()))
	}
	return token
}

func (helper *Helper) CreateJWTToken(account *amv1.Account, jwtClaims jwt.MapClaims) *jwt.Token {
	token, err := helper.AuthHelper.CreateJWTWithClaims(account, jwtClaims)
	if err != nil {
		helper.T.Errorf("Failed to create jwt token: %s", err.Error())
	}
	return token
}

// UnmarshalServiceError converts an API error response body into a service error struct.
func (helper *Helper) UnmarshalServiceError(body []byte) errors.ServiceError {
	var exErr errors.ServiceError
	jsonErr := json.Unmarshal(body, &exErr)
	if jsonErr != nil {
		helper.T.Errorf("Unable to convert error response body to service error: %s", jsonErr)
	}
	return exErr
}
