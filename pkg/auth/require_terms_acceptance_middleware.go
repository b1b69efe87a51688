package auth

import (
	"net/http"
	"time"

	"github.com/d8ff42ce19a3b0e1c44a/dub-fleet-manager/pkg/client/ocm"
	"github.com/d8ff42ce19a3b0e1c44a/dub-fleet-manager/pkg/errors"
	"github.com/d8ff42ce19a3b0e1c44a/dub-fleet-manager/pkg/shared"

	"github.com/patrickmn/go-cache"
)

type RequireTermsAcceptanceMiddleware interface {
	// RequireTermsAcceptance checks that the user has accepted the terms and conditions.
	// If they have not, the specified code is returned.
	RequireTermsAcceptance(enabled bool, ocmClient ocm.Client, code errors.ServiceErrorCode) func(handler http.Handler) http.Handler
}

type requireTermsAcceptanceMiddleware struct {
	cache *cache.Cache
}

var _ RequireTermsAcceptanceMiddleware = &requireTermsAcceptanceMiddleware{}

func NewRequireTermsAcceptanceMiddleware() RequireTermsAcceptanceMiddleware {
	return &requireTermsAcceptanceMiddleware{
		// entries expire in 5 minutes and expired entries are evicted every 10 minutes
		cache: cache.New(5*time.Minute, 10*time.Minute),
	}
}

func (m *requireTermsAcceptanceMiddleware) RequireTermsAcceptance(enabled bool, ocmClient ocm.Client, code errors.ServiceErrorCode) func(handler http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			if enabled {
				ctx := request.Context()
				claims, err := GetClaimsFromContext(ctx)
				serviceErr := errors.New(code, "")
				if err != nil {
					shared.HandleError(request, writer, serviceErr)
					return
				}
				username, _ := claims.GetUsername()

				termsRequired := true
				cachedTermsRequired, cached := m.cache.Get(username)
				if cached {
					if cachedBool, ok := cachedTermsRequired.(bool); ok {
						termsRequired = cachedBool
					}
				} else {
					termsRequired, _, err = ocmClient.GetRequiresTermsAcceptance(username)
					if err != nil {
						shared.HandleError(request, writer, serviceErr)
						return
					}
					m.cache.Set(username, termsRequired, cache.DefaultExpiration)
				}

				if termsRequired {
					shared.HandleError(request, writer, serviceErr)
					return
				}
			}
			next.ServeHTTP(writer, request)
		})
	}
}
