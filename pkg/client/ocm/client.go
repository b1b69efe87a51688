package ocm

import (
	"fmt"
	"net/http"
	"time"

	"github.com/patrickmn/go-cache"

	"github.com/d8ff42ce19a3b0e1c44a/dub-fleet-manager/pkg/errors"
	sdkClient "github.com/openshift-online/ocm-sdk-go"
	amsv1 "github.com/openshift-online/ocm-sdk-go/accountsmgmt/v1"
	v1 "github.com/openshift-online/ocm-sdk-go/authorizations/v1"
)

const TERMS_SITECODE = "OCM"
const TERMS_EVENTCODE_ONLINE_SERVICE = "onlineService"
const TERMS_EVENTCODE_REGISTER = "register"

//go:generate moq -out client_moq.go . Client
type Client interface {
	ClusterAuthorization(cb *amsv1.ClusterAuthorizationRequest) (*amsv1.ClusterAuthorizationResponse, error)
	DeleteSubscription(id string) (int, error)
	FindSubscriptions(query string) (*amsv1.SubscriptionsListResponse, error)
	GetRequiresTermsAcceptance(username string) (termsRequired bool, redirectUrl string, err error)
	GetOrganisationIdFromExternalId(externalId string) (string, error)
	Connection() *sdkClient.Connection
	// GetQuotaCosts returns a list of quota cost for the given organizationID.
	// Each quota cost contains information on the usage and max allowed ocm resources quota given to the specified oganization.
	//
	// relatedResourceFilters will only be applied when fetchRelatedResources is set to true.
	GetQuotaCosts(organizationID string, fetchRelatedResources, fetchCloudAccounts bool, filters ...QuotaCostRelatedResourceFilter) ([]*amsv1.QuotaCost, error)
	GetQuotaCostsForProduct(organizationID, resourceName, product string) ([]*amsv1.QuotaCost, error)
	// GetCurrentAccount returns the account information of the current authenticated user
	GetCurrentAccount() (*amsv1.Account, error)
}

var _ Client = &client{}

type client struct {
	connection *sdkClient.Connection
	cache      *cache.Cache
}

type AMSClient Client

func NewOCMConnection(ocmConfig *OCMConfig, BaseUrl string) (*sdkClient.Connection, func(), error) {
	if ocmConfig.EnableMock && ocmConfig.MockMode != MockModeEmulateServer {
		return nil, func() {}, nil
	}

	builder := sdkClient.NewConnectionBuilder().
		URL(BaseUrl).
		MetricsSubsystem("api_outbound")

	if !ocmConfig.EnableMock {
		// Create a logger that has the debug level enabled:
		logger, err := sdkClient.NewGoLoggerBuilder().
			Debug(ocmConfig.Debug).
			Build()
		if err != nil {
			return nil, nil, err
		}
		builder = builder.Logger(logger)
	}

	if ocmConfig.ClientID != "" && ocmConfig.ClientSecret != "" {
		builder = builder.Client(ocmConfig.ClientID, ocmConfig.ClientSecret)
	} else if ocmConfig.SelfToken != "" {
		builder = builder.Tokens(ocmConfig.SelfToken)
	} else {
		return nil, nil, fmt.Errorf("can't build OCM client connection,no Client/Secret or Token has been provided")
	}

	connection, err := builder.Build()
	if err != nil {
		return nil, nil, err
	}
	return connection, func() {
		_ = connection.Close()
	}, nil

}

func NewClient(connection *sdkClient.Connection) Client {
	return &client{
		connection: connection,
		cache:      cache.New(168*time.Hour, 1*time.Hour),
	}
}

func (c *client) Connection() *sdkClient.Connection {
	return c.connection
}

func (c *client) Close() {
	if c.connection != nil {
		_ = c.connection.Close()
	}
}

func (c *client) GetOrganisationIdFromExternalId(externalId string) (string, error) {
	orgId, cached := c.cache.Get(externalId)
	if cached {
		orgId, ok := orgId.(string)
		if ok && orgId != "" {
			return orgId, nil
		}
	}

	res, err := c.connection.AccountsMgmt().V1().Organizations().List().Search(fmt.Sprintf("external_id='%s'", externalId)).Send()
	if err != nil {
		return "", err
	}

	items := res.Items()
	if items.Len() < 1 {
		// should never happen...
		return "", errors.New(errors.ErrorGeneral, "organisation with external_id '%s' can't be found", externalId)
	}

	organisationId := items.Get(0).ID()
	c.cache.Set(externalId, organisationId, cache.DefaultExpiration)
	return organisationId, nil
}

func (c *client) GetRequiresTermsAcceptance(username string) (termsRequired bool, redirectUrl string, err error) {
	// Check for Appendix 4 Terms
	request, err := v1.NewTermsReviewRequest().AccountUsername(username).SiteCode(TERMS_SITECODE).EventCode(TERMS_EVENTCODE_REGISTER).Build()
	if err != nil {
		return false, "", err
	}
	selfTermsReview := c.connection.Authorizations().V1().TermsReview()
	postResp, err := selfTermsReview.Post().Request(request).Send()
	if err != nil {
		return false, "", err
	}
	response, ok := postResp.GetResponse()
	if !ok {
		return false, "", fmt.Errorf("empty response from authorization post request")
	}

	redirectUrl, _ = response.GetRedirectUrl()

	return response.TermsRequired(), redirectUrl, nil
}

func (c client) ClusterAuthorization(cb *amsv1.ClusterAuthorizationRequest) (*amsv1.ClusterAuthorizationResponse, error) {
	r, err := c.connection.AccountsMgmt().V1().
		ClusterAuthorizations().
		Post().Request(cb).Send()
	if err != nil && r.Status() != http.StatusTooManyRequests {
		err = errors.NewErrorFromHTTPStatusCode(r.Status(), "OCM client failed to create cluster authorization")
		return nil, err
	}
	resp, _ := r.GetResponse()
	return resp, nil
}

func (c client) DeleteSubscription(id string) (int, error) {
	r := c.connection.AccountsMgmt().V1().Subscriptions().Subscription(id).Delete()
	resp, err := r.Send()
	return resp.Status(), err
}

func (c client) FindSubscriptions(query string) (*amsv1.SubscriptionsListResponse, error) {
	r, err := c.connection.AccountsMgmt().V1().Subscriptions().List().Search(query).Send()
	if err != nil {
		return nil, err
	}
	return r, nil
}

// QuotaCostRelatedResourceFilter represents the properties of the related resource, associated
// to each quota cost, that can be used to filter the result of the get quota costs request.
// Any property set to nil will not be applied as a filter.
type QuotaCostRelatedResourceFilter struct {
	ResourceName *string
	ResourceType *string
	Product      *string
}

// IsMatch returns true if all the given properties of the filter matches that of the given related resource.
// If a filter property was not specified, the check for that property will always return true
func (qcf *QuotaCostRelatedResourceFilter) IsMatch(relatedResource *amsv1.RelatedResource) bool {
	resourceNameMatches := (qcf.ResourceName == nil || relatedResource.ResourceName() == *qcf.ResourceName)
	resourceTypeMatches := (qcf.ResourceType == nil || relatedResource.ResourceType() == *qcf.ResourceType)
	productMatches := (qcf.Product == nil || relatedResource.Product() == *qcf.Product)

	return resourceNameMatches && resourceTypeMatches && productMatches
}

// GetQuotaCosts returns a list of quota cost for the given organizationID.
// Each quota cost contains information on the usage and max allowed ocm resources quota given to the specified oganization.
//
// relatedResourceFilters will only be applied when fetchRelatedResources is set to true.
// When relatedResourceFilters is not specified, all the quotas are returned.
// When relatedResourceFilters is specified, a quota is returned if one of the filters matches the related resources.
func (c client) GetQuotaCosts(organizationID string, fetchRelatedResources, fetchCloudAccounts bool, relatedResourceFilters ...QuotaCostRelatedResourceFilter) ([]*amsv1.QuotaCost, error) {
	organizationClient := c.connection.AccountsMgmt().V1().Organizations()
	quotaCostClient := organizationClient.Organization(organizationID).QuotaCost()

	quotaCostResp, err := quotaCostClient.List().Parameter("fetchRelatedResources", fetchRelatedResources).Parameter("fetchCloudAccounts", fetchCloudAccounts).Send()
	if err != nil {
		return nil, err
	}
	quotaCostList := quotaCostResp.Items()

	if !fetchRelatedResources || len(relatedResourceFilters) == 0 {
		return quotaCostList.Slice(), nil
	}

	var quotaCosts []*amsv1.QuotaCost

	// iterates through all Quota and only return the quota whose resources matches the given filters
	quotaCostList.Each(func(qc *amsv1.QuotaCost) bool {
		relatedResources := qc.RelatedResources()
		quotaMatchesFilters := false
		for _, relatedResource := range relatedResources {
			for _, filter := range relatedResourceFilters {
				if filter.IsMatch(relatedResource) {
					quotaMatchesFilters = true
					break
				}
			}
			if quotaMatchesFilters {
				quotaCosts = append(quotaCosts, qc)
				break
			}
		}
		return true
	})

	return quotaCosts, nil
}

// GetQuotaCostsForProduct gets the AMS QuotaCosts in the given organizationID
// whose relatedResources contains at least a relatedResource that has the
// given resourceName and product
func (c client) GetQuotaCostsForProduct(organizationID, resourceName, product string) ([]*amsv1.QuotaCost, error) {
	quotaCostList, err := c.GetQuotaCosts(organizationID, true, true, QuotaCostRelatedResourceFilter{
		ResourceName: &resourceName,
		Product:      &product,
	})

	if err != nil {
		return nil, err
	}

	return quotaCostList, nil
}

// GetCurrentAccount returns the account information of the current authenticated user
func (c *client) GetCurrentAccount() (*amsv1.Account, error) {
	currentAccountClient := c.connection.AccountsMgmt().V1().CurrentAccount()
	response, err := currentAccountClient.Get().Send()
	if err != nil {
		return nil, err
	}

	currentAccount := response.Body()
	return currentAccount, nil
}
