package authorization

import (
	"github.com/d8ff42ce19a3b0e1c44a/dub-fleet-manager/pkg/client/ocm"
	"github.com/d8ff42ce19a3b0e1c44a/dub-fleet-manager/pkg/environments"
	"github.com/goava/di"
)

func ConfigProviders() di.Option {
	return di.Options(
		di.Provide(environments.Func(ServiceProviders)),
	)
}

func ServiceProviders() di.Option {
	return di.Options(
		di.Provide(NewAuthorization),
	)
}

func NewAuthorization(ocmConfig *ocm.OCMConfig, ocmClientFactory *ocm.OCMClientFactory) Authorization {
	if ocmConfig.EnableMock {
		return NewMockAuthorization()
	} else {
		connection := ocmClientFactory.GetConnection(ocm.AMSClientType)
		return NewOCMAuthorization(connection)
	}
}
