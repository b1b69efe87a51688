package auth

import (
	"fmt"

	"github.com/d8ff42ce19a3b0e1c44a/dub-fleet-manager/pkg/shared/utils/arrays"

	"github.com/golang-jwt/jwt/v4"
)

// clientIdClaim is the claim service account tokens carry the client id under
var clientIdClaim = "clientId"

type DFMClaims jwt.MapClaims

func (c *DFMClaims) VerifyIssuer(cmp string, req bool) bool {
	return jwt.MapClaims(*c).VerifyIssuer(cmp, req)
}

// GetUsername returns the username claim. Supported claims in order: username, preferred_username
func (c *DFMClaims) GetUsername() (string, error) {
	if idx, val := arrays.FindFirst([]interface{}{(*c)[tenantUsernameClaim], (*c)[alternateTenantUsernameClaim]}, func(x interface{}) bool { return x != nil }); idx != arrays.ElementNotFound {
		if userName, ok := val.(string); ok {
			return userName, nil
		}
	}
	return "", fmt.Errorf("can't find neither '%s' or '%s' attribute in claims", tenantUsernameClaim, alternateTenantUsernameClaim)
}

func (c *DFMClaims) GetAccountId() (string, error) {
	if (*c)[tenantUserIdClaim] != nil {
		if accountId, ok := (*c)[tenantUserIdClaim].(string); ok {
			return accountId, nil
		}
	}
	return "", fmt.Errorf("can't find '%s' attribute in claims", tenantUserIdClaim)
}

// GetOrgId returns the org id claim. Supported claims in order: org_id, rh-org-id
func (c *DFMClaims) GetOrgId() (string, error) {
	if idx, val := arrays.FindFirst([]interface{}{(*c)[tenantIdClaim], (*c)[alternateTenantIdClaim]}, func(x interface{}) bool { return x != nil }); idx != arrays.ElementNotFound {
		if orgId, ok := val.(string); ok {
			return orgId, nil
		}
	}
	return "", fmt.Errorf("can't find neither '%s' or '%s' attribute in claims", tenantIdClaim, alternateTenantIdClaim)
}

func (c *DFMClaims) IsOrgAdmin() bool {
	isOrgAdmin, _ := (*c)[tenantOrgAdminClaim].(bool)
	return isOrgAdmin
}

func (c *DFMClaims) GetClientID() (string, error) {
	if (*c)[clientIdClaim] != nil {
		if clientId, ok := (*c)[clientIdClaim].(string); ok {
			return clientId, nil
		}
	}
	return "", fmt.Errorf("can't find '%s' attribute in claims", clientIdClaim)
}
