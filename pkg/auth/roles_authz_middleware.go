package auth

import (
	"net/http"
	"strings"

	"github.com/d8ff42ce19a3b0e1c44a/dub-fleet-manager/pkg/errors"
	"github.com/d8ff42ce19a3b0e1c44a/dub-fleet-manager/pkg/shared"
)

// RolesAuthorizationMiddleware can be used to perform RBAC authorization checks on endpoints
type RolesAuthorizationMiddleware interface {
	// RequireRealmRole will check the given realm role exists in the request token
	RequireRealmRole(roleName string, code errors.ServiceErrorCode) func(handler http.Handler) http.Handler
	// RequireRolesForMethods will check that one of the realm roles mapped to the request method exists in the request token
	RequireRolesForMethods(roles map[string][]string, code errors.ServiceErrorCode) func(handler http.Handler) http.Handler
}

type rolesAuthMiddleware struct{}

var _ RolesAuthorizationMiddleware = &rolesAuthMiddleware{}

func NewRolesAuhzMiddleware() RolesAuthorizationMiddleware {
	return &rolesAuthMiddleware{}
}

func (m *rolesAuthMiddleware) RequireRealmRole(roleName string, code errors.ServiceErrorCode) func(handler http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			ctx := request.Context()
			claims, err := GetClaimsFromContext(ctx)
			serviceErr := errors.New(code, "")
			if err != nil {
				shared.HandleError(request, writer, serviceErr)
				return
			}
			roles := getRealmRolesClaim(claims)
			if hasRole(roles, roleName) {
				next.ServeHTTP(writer, request)
			} else {
				shared.HandleError(request, writer, serviceErr)
				return
			}
		})
	}
}

func (m *rolesAuthMiddleware) RequireRolesForMethods(roles map[string][]string, code errors.ServiceErrorCode) func(handler http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			ctx := request.Context()
			serviceErr := errors.New(code, "")
			requiredRoles, methodFound := roles[request.Method]
			if !methodFound {
				shared.HandleError(request, writer, serviceErr)
				return
			}
			claims, err := GetClaimsFromContext(ctx)
			if err != nil {
				shared.HandleError(request, writer, serviceErr)
				return
			}
			realmRoles := getRealmRolesClaim(claims)
			for _, role := range requiredRoles {
				if hasRole(realmRoles, role) {
					next.ServeHTTP(writer, request)
					return
				}
			}
			shared.HandleError(request, writer, serviceErr)
		})
	}
}

func getRealmRolesClaim(claims DFMClaims) []string {
	if realmRoles, ok := claims["realm_access"]; ok {
		if roles, ok := realmRoles.(map[string]interface{}); ok {
			if arr, ok := roles["roles"].([]interface{}); ok {
				var r []string
				for _, i := range arr {
					r = append(r, i.(string))
				}
				return r
			}
		}
	}
	return []string{}
}

func hasRole(roles []string, roleName string) bool {
	for _, role := range roles {
		if strings.EqualFold(role, roleName) {
			return true
		}
	}
	return false
}
