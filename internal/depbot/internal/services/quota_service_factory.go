package services

import (
	"github.com/d8ff42ce19a3b0e1c44a/dub-fleet-manager/pkg/api"
	"github.com/d8ff42ce19a3b0e1c44a/dub-fleet-manager/pkg/errors"
)

// QuotaServiceFactory used to return an instance of QuotaService implementation
//
//go:generate moq -out quota_service_factory_moq.go . QuotaServiceFactory
type QuotaServiceFactory interface {
	GetQuotaService(quotaType api.QuotaType) (QuotaService, *errors.ServiceError)
}
