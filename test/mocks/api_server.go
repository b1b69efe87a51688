package mocks

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net"
	"net/http"
	"net/http/httptest"
	"reflect"
	"sync"
	"time"

	amsv1 "github.com/openshift-online/ocm-sdk-go/accountsmgmt/v1"
	authorizationsv1 "github.com/openshift-online/ocm-sdk-go/authorizations/v1"

	"k8s.io/apimachinery/pkg/util/wait"

	ocmErrors "github.com/d8ff42ce19a3b0e1c44a/dub-fleet-manager/pkg/errors"
	"github.com/gorilla/mux"
)

const (
	// EndpointPathClusterAuthorization ocm account management cluster authorization endpoint
	EndpointPathClusterAuthorization = "/api/accounts_mgmt/v1/cluster_authorizations"
	// EndpointPathSubscription ocm account management subscription endpoint
	EndpointPathSubscription = "/api/accounts_mgmt/v1/subscriptions/{id}"
	// EndpointPathSubscriptionSearch ocm account management subscription search endpoint
	EndpointPathSubscriptionSearch = "/api/accounts_mgmt/v1/subscriptions"
	// EndpointPathOrganizations ocm account management organization search endpoint
	EndpointPathOrganizations = "/api/accounts_mgmt/v1/organizations"
	// EndpointPathQuotaCost ocm account management organization quota cost endpoint
	EndpointPathQuotaCost = "/api/accounts_mgmt/v1/organizations/{id}/quota_cost"
	// EndpointPathCurrentAccount ocm account management current account endpoint
	EndpointPathCurrentAccount = "/api/accounts_mgmt/v1/current_account"
	// EndpointPathTermsReview ocm terms review endpoint
	EndpointPathTermsReview = "/api/authorizations/v1/terms_review"

	// Default values for getX functions

	// MockSubID default mock subscription id used in the mock ocm server
	MockSubID = "pphCb6sIQPqtjMtL0GQaX6i4bP"
	// MockOrganizationID default mock ams organization id
	MockOrganizationID = "1u5zHJpM12ZKcI3KkIO3dR0fJBQ"
	// MockOrganizationExternalID default mock ams organization external id, matches the
	// org_id claim of accounts created with test helper NewRandAccount
	MockOrganizationExternalID = "13640203"
	// MockOrganizationName default mock ams organization name
	MockOrganizationName = "dub-integration-tests"
	// MockQuotaID default quota id attached to the mock quota cost
	MockQuotaID = "cluster|rhinfra|dub|marketplace"
	// MockQuotaMaxAllowed default max allowed quota in the mock quota cost
	MockQuotaMaxAllowed = 50
	// MockQuotaResourceName resource name carried by the mock quota cost related resources
	MockQuotaResourceName = "dub"
	// MockDubProductID product id of the paid dub product in the mock quota cost
	MockDubProductID = "DUB"
	// MockDubTrialProductID product id of the trial dub product in the mock quota cost
	MockDubTrialProductID = "DUBTrial"
)

// variables for endpoints
var (
	EndpointClusterAuthorizationPost = Endpoint{EndpointPathClusterAuthorization, http.MethodPost}
	EndpointSubscriptionDelete       = Endpoint{EndpointPathSubscription, http.MethodDelete}
	EndpointSubscriptionSearch       = Endpoint{EndpointPathSubscriptionSearch, http.MethodGet}
	EndpointOrganizationsSearch      = Endpoint{EndpointPathOrganizations, http.MethodGet}
	EndpointQuotaCostGet             = Endpoint{EndpointPathQuotaCost, http.MethodGet}
	EndpointCurrentAccountGet        = Endpoint{EndpointPathCurrentAccount, http.MethodGet}
	EndpointTermsReviewPost          = Endpoint{EndpointPathTermsReview, http.MethodPost}
)

// variables for mocked ocm types
//
// these are the default types that will be returned by the emulated ocm api
// to override these values, do not set them directly e.g. mocks.MockSubscription = ...
// instead use the Set*Response functions provided by MockConfigurableServerBuilder e.g. SetSubscriptionSearchResponse(...)
var (
	MockClusterAuthorization *amsv1.ClusterAuthorizationResponse
	MockSubscription         *amsv1.Subscription
	MockSubscriptionSearch   *amsv1.SubscriptionList
	MockOrganizationList     *amsv1.OrganizationList
	MockQuotaCostList        *amsv1.QuotaCostList
	MockAccount              *amsv1.Account
	MockTermsReview          *authorizationsv1.TermsReviewResponse
)

// routerSwapper is an http.Handler that allows you to swap mux routers.
type routerSwapper struct {
	mu     sync.Mutex
	router *mux.Router
}

// Swap changes the old router with the new one.
func (rs *routerSwapper) Swap(newRouter *mux.Router) {
	rs.mu.Lock()
	rs.router = newRouter
	rs.mu.Unlock()
}

var router *mux.Router

// rSwapper is required if any change to the Router for mocked OCM server is needed
var rSwapper *routerSwapper

// Endpoint is a wrapper around an endpoint and the method used to interact with that endpoint e.g. GET /subscriptions
type Endpoint struct {
	Path   string
	Method string
}

// HandlerRegister is a cache that maps Endpoints to their handlers
type HandlerRegister map[Endpoint]func(w http.ResponseWriter, r *http.Request)

// MockConfigurableServerBuilder allows mock ocm api servers to be built
type MockConfigurableServerBuilder struct {
	// handlerRegister cache of endpoints and handlers to be used when the mock ocm api server is built
	handlerRegister HandlerRegister
}

// NewMockConfigurableServerBuilder returns a new builder that can be used to define a mock ocm api server
func NewMockConfigurableServerBuilder() *MockConfigurableServerBuilder {
	// get the default endpoint handlers that'll be used if they're not overridden
	handlerRegister, err := getDefaultHandlerRegister()
	if err != nil {
		panic(err)
	}
	return &MockConfigurableServerBuilder{
		handlerRegister: handlerRegister,
	}
}

// SetClusterAuthorizationResponse set a mock response for Post /api/accounts_mgmt/v1/cluster_authorizations
func (b *MockConfigurableServerBuilder) SetClusterAuthorizationResponse(ca *amsv1.ClusterAuthorizationResponse, err *ocmErrors.ServiceError) {
	b.handlerRegister[EndpointClusterAuthorizationPost] = buildMockRequestHandler(ca, err)
}

// SetSubscriptionDeleteResponse set a mock response for Delete /api/accounts_mgmt/v1/subscriptions/{id}
func (b *MockConfigurableServerBuilder) SetSubscriptionDeleteResponse(sub *amsv1.Subscription, err *ocmErrors.ServiceError) {
	b.handlerRegister[EndpointSubscriptionDelete] = buildMockRequestHandler(sub, err)
}

// SetSubscriptionSearchResponse set a mock response for Get /api/accounts_mgmt/v1/subscriptions
func (b *MockConfigurableServerBuilder) SetSubscriptionSearchResponse(sl *amsv1.SubscriptionList, err *ocmErrors.ServiceError) {
	b.handlerRegister[EndpointSubscriptionSearch] = buildMockRequestHandler(sl, err)
}

// SetOrganizationsSearchResponse set a mock response for Get /api/accounts_mgmt/v1/organizations
func (b *MockConfigurableServerBuilder) SetOrganizationsSearchResponse(ol *amsv1.OrganizationList, err *ocmErrors.ServiceError) {
	b.handlerRegister[EndpointOrganizationsSearch] = buildMockRequestHandler(ol, err)
}

// SetQuotaCostResponse set a mock response for Get /api/accounts_mgmt/v1/organizations/{id}/quota_cost
func (b *MockConfigurableServerBuilder) SetQuotaCostResponse(ql *amsv1.QuotaCostList, err *ocmErrors.ServiceError) {
	b.handlerRegister[EndpointQuotaCostGet] = buildMockRequestHandler(ql, err)
}

// SetCurrentAccountResponse set a mock response for Get /api/accounts_mgmt/v1/current_account
func (b *MockConfigurableServerBuilder) SetCurrentAccountResponse(account *amsv1.Account, err *ocmErrors.ServiceError) {
	b.handlerRegister[EndpointCurrentAccountGet] = buildMockRequestHandler(account, err)
}

// SetTermsReviewPostResponse set a mock response for Post /api/authorizations/v1/terms_review
func (b *MockConfigurableServerBuilder) SetTermsReviewPostResponse(tr *authorizationsv1.TermsReviewResponse, err *ocmErrors.ServiceError) {
	b.handlerRegister[EndpointTermsReviewPost] = buildMockRequestHandler(tr, err)
}

// Build builds the mock ocm api server using the endpoint handlers that have been set in the builder
func (b *MockConfigurableServerBuilder) Build() *httptest.Server {
	router = mux.NewRouter()
	rSwapper = &routerSwapper{sync.Mutex{}, router}

	// set up handlers from the builder
	for endpoint, handleFn := range b.handlerRegister {
		router.HandleFunc(endpoint.Path, handleFn).Methods(endpoint.Method)
	}
	server := httptest.NewUnstartedServer(rSwapper)
	l, err := net.Listen("tcp", "127.0.0.1:9876")
	if err != nil {
		log.Fatal(err)
	}
	server.Listener = l
	server.Start()
	err = wait.PollImmediate(time.Second, 10*time.Second, func() (done bool, err error) {
		_, err = http.Get("http://127.0.0.1:9876" + EndpointPathCurrentAccount)
		return err == nil, nil
	})
	if err != nil {
		log.Fatal("Timed out waiting for mock server to start.")
		panic(err)
	}
	return server
}

// SwapRouterResponse and update the router to handle this response
func (b *MockConfigurableServerBuilder) SwapRouterResponse(path string, method string, successType interface{}, serviceErr *ocmErrors.ServiceError) {
	b.handlerRegister[Endpoint{
		Path:   path,
		Method: method,
	}] = buildMockRequestHandler(successType, serviceErr)

	router = mux.NewRouter()
	for endpoint, handleFn := range b.handlerRegister {
		router.HandleFunc(endpoint.Path, handleFn).Methods(endpoint.Method)
	}

	rSwapper.Swap(router)
}

// ServeHTTP makes the routerSwapper to implement the http.Handler interface
// so that routerSwapper can be used by httptest.NewServer()
func (rs *routerSwapper) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	rs.mu.Lock()
	router := rs.router
	rs.mu.Unlock()
	router.ServeHTTP(w, r)
}

// getDefaultHandlerRegister returns a set of default endpoints and handlers used in the mock ocm api server
func getDefaultHandlerRegister() (HandlerRegister, error) {
	// define a list of default endpoints and handlers in the mock ocm api server, when a new
	// ams endpoint is used by the fleet manager, a default ocm response should also be added here
	return HandlerRegister{
		EndpointClusterAuthorizationPost: buildMockRequestHandler(MockClusterAuthorization, nil),
		EndpointSubscriptionDelete:       buildMockRequestHandler(MockSubscription, nil),
		EndpointSubscriptionSearch:       buildMockRequestHandler(MockSubscriptionSearch, nil),
		EndpointOrganizationsSearch:      buildMockRequestHandler(MockOrganizationList, nil),
		EndpointQuotaCostGet:             buildMockRequestHandler(MockQuotaCostList, nil),
		EndpointCurrentAccountGet:        buildMockRequestHandler(MockAccount, nil),
		EndpointTermsReviewPost:          buildMockRequestHandler(MockTermsReview, nil),
	}, nil
}

// buildMockRequestHandler builds a generic handler for all ocm api server responses
// one of successType of serviceErr should be defined
// if serviceErr is defined, it will be provided as an ocm error response
// if successType is defined, it will be provided as an ocm success response
func buildMockRequestHandler(successType interface{}, serviceErr *ocmErrors.ServiceError) func(w http.ResponseWriter, r *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if serviceErr != nil {
			w.WriteHeader(serviceErr.HttpCode)
			if err := marshalOCMType(serviceErr, w); err != nil {
				panic(err)
			}
		} else if successType != nil {
			if err := marshalOCMType(successType, w); err != nil {
				panic(err)
			}
		} else {
			panic("no response was defined")
		}
	}
}

// marshalOCMType marshals known ocm types to a provided io.Writer using the ocm sdk marshallers
func marshalOCMType(t interface{}, w io.Writer) error {
	switch v := t.(type) { //nolint
	case *amsv1.ClusterAuthorizationResponse:
		return amsv1.MarshalClusterAuthorizationResponse(v, w)
	case *amsv1.Subscription:
		return amsv1.MarshalSubscription(v, w)
	case []*amsv1.Subscription:
		return amsv1.MarshalSubscriptionList(v, w)
	// for any <type>List ocm type we'll need to follow this pattern to ensure the array of objects
	// is wrapped with an AMSList object
	case *amsv1.SubscriptionList:
		amsList, err := NewAMSList().WithItems(v.Slice())
		if err != nil {
			return err
		}
		return json.NewEncoder(w).Encode(amsList)
	case *amsv1.Organization:
		return amsv1.MarshalOrganization(v, w)
	case []*amsv1.Organization:
		return amsv1.MarshalOrganizationList(v, w)
	case *amsv1.OrganizationList:
		amsList, err := NewAMSList().WithItems(v.Slice())
		if err != nil {
			return err
		}
		return json.NewEncoder(w).Encode(amsList)
	case *amsv1.QuotaCost:
		return amsv1.MarshalQuotaCost(v, w)
	case []*amsv1.QuotaCost:
		return amsv1.MarshalQuotaCostList(v, w)
	case *amsv1.QuotaCostList:
		amsList, err := NewAMSList().WithItems(v.Slice())
		if err != nil {
			return err
		}
		return json.NewEncoder(w).Encode(amsList)
	case *amsv1.Account:
		return amsv1.MarshalAccount(v, w)
	case *authorizationsv1.TermsReviewResponse:
		return authorizationsv1.MarshalTermsReviewResponse(v, w)
	// handle ocm error type
	case *ocmErrors.ServiceError:
		return json.NewEncoder(w).Encode(v.AsOpenapiError("", ""))
	}
	return fmt.Errorf("could not recognise type %s in ocm type marshaller", reflect.TypeOf(t).String())
}

// basic wrapper to emulate the the ocm list types as they're private
type amsList struct {
	Page  int             `json:"page"`
	Size  int             `json:"size"`
	Total int             `json:"total"`
	Items json.RawMessage `json:"items"`
}

func NewAMSList() *amsList {
	return &amsList{
		Page:  0,
		Size:  0,
		Total: 0,
		Items: nil,
	}
}

func (l *amsList) WithItems(items interface{}) (*amsList, error) {
	var b bytes.Buffer
	if err := marshalOCMType(items, &b); err != nil {
		return l, err
	}
	l.Items = b.Bytes()
	return l, nil
}

// init the shared mock types, panic if we fail, this should never fail
func init() {
	var err error
	MockClusterAuthorization, err = GetMockClusterAuthorization(nil)
	if err != nil {
		panic(err)
	}
	MockSubscription, err = GetMockSubscription(nil)
	if err != nil {
		panic(err)
	}
	MockSubscriptionSearch, err = GetMockSubscriptionList(nil)
	if err != nil {
		panic(err)
	}
	MockOrganizationList, err = GetMockOrganizationList(nil)
	if err != nil {
		panic(err)
	}
	MockQuotaCostList, err = GetMockQuotaCostList(nil)
	if err != nil {
		panic(err)
	}
	MockAccount, err = GetMockAccount(nil)
	if err != nil {
		panic(err)
	}
	MockTermsReview, err = GetMockTermsReview(nil)
	if err != nil {
		panic(err)
	}
}

// GetMockSubscription for emulated OCM server
func GetMockSubscription(modifyFn func(b *amsv1.Subscription)) (*amsv1.Subscription, error) {
	builder, err := amsv1.NewSubscription().ID(MockSubID).Build()
	if modifyFn != nil {
		modifyFn(builder)
	}
	return builder, err
}

// GetMockSubscriptionList for emulated OCM server, empty by default so that
// subscription searches report no pre-existing subscriptions
func GetMockSubscriptionList(modifyFn func(l *amsv1.SubscriptionList, err error)) (*amsv1.SubscriptionList, error) {
	list, err := amsv1.NewSubscriptionList().Build()
	if modifyFn != nil {
		modifyFn(list, err)
	}
	return list, err
}

// GetMockClusterAuthorization for emulated OCM server
func GetMockClusterAuthorization(modifyFn func(b *amsv1.ClusterAuthorizationResponse)) (*amsv1.ClusterAuthorizationResponse, error) {
	sub := amsv1.SubscriptionBuilder{}
	sub.ID(MockSubID)
	sub.Status("Active")
	builder, err := amsv1.NewClusterAuthorizationResponse().Subscription(&sub).Allowed(true).Build()
	if modifyFn != nil {
		modifyFn(builder)
	}
	return builder, err
}

// GetMockOrganizationBuilder for emulated OCM server
func GetMockOrganizationBuilder(modifyFn func(b *amsv1.OrganizationBuilder)) *amsv1.OrganizationBuilder {
	builder := amsv1.NewOrganization().
		ID(MockOrganizationID).
		HREF(fmt.Sprintf("/api/accounts_mgmt/v1/organizations/%s", MockOrganizationID)).
		Name(MockOrganizationName).
		ExternalID(MockOrganizationExternalID)
	if modifyFn != nil {
		modifyFn(builder)
	}
	return builder
}

// GetMockOrganizationList for emulated OCM server
func GetMockOrganizationList(modifyFn func(l *amsv1.OrganizationList, err error)) (*amsv1.OrganizationList, error) {
	list, err := amsv1.NewOrganizationList().Items(GetMockOrganizationBuilder(nil)).Build()
	if modifyFn != nil {
		modifyFn(list, err)
	}
	return list, err
}

// GetMockQuotaCostBuilder for emulated OCM server
func GetMockQuotaCostBuilder(modifyFn func(b *amsv1.QuotaCostBuilder)) *amsv1.QuotaCostBuilder {
	builder := amsv1.NewQuotaCost().
		OrganizationID(MockOrganizationID).
		QuotaID(MockQuotaID).
		Allowed(MockQuotaMaxAllowed).
		Consumed(0).
		RelatedResources(
			amsv1.NewRelatedResource().
				ResourceName(MockQuotaResourceName).
				ResourceType("cluster.aws").
				Product(MockDubProductID).
				BillingModel("standard").
				Cost(1),
			amsv1.NewRelatedResource().
				ResourceName(MockQuotaResourceName).
				ResourceType("cluster.aws").
				Product(MockDubTrialProductID).
				BillingModel("standard").
				Cost(0))
	if modifyFn != nil {
		modifyFn(builder)
	}
	return builder
}

// GetMockQuotaCostList for emulated OCM server
func GetMockQuotaCostList(modifyFn func(l *amsv1.QuotaCostList, err error)) (*amsv1.QuotaCostList, error) {
	list, err := amsv1.NewQuotaCostList().Items(GetMockQuotaCostBuilder(nil)).Build()
	if modifyFn != nil {
		modifyFn(list, err)
	}
	return list, err
}

// GetMockAccount for emulated OCM server
func GetMockAccount(modifyFn func(b *amsv1.Account)) (*amsv1.Account, error) {
	builder, err := amsv1.NewAccount().
		ID("AcJ1oz4lz9qSC3kkhlLQsdrDpGl").
		Username("dub-fleet-manager").
		Email("dub-fleet-manager@example.com").
		Organization(GetMockOrganizationBuilder(nil)).
		Build()
	if modifyFn != nil {
		modifyFn(builder)
	}
	return builder, err
}

// GetMockTermsReview for emulated OCM server
func GetMockTermsReview(modifyFn func(b *authorizationsv1.TermsReviewResponse)) (*authorizationsv1.TermsReviewResponse, error) {
	builder, err := authorizationsv1.NewTermsReviewResponse().TermsRequired(false).Build()
	if modifyFn != nil {
		modifyFn(builder)
	}
	return builder, err
}
