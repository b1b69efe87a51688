package dashboard_mgrs

import (
	"context"

	"github.com/d8ff42ce19a3b0e1c44a/dub-fleet-manager/internal/depbot/internal/config"
	"github.com/d8ff42ce19a3b0e1c44a/dub-fleet-manager/internal/depbot/internal/services/dashboardcertmgmt"
	"github.com/d8ff42ce19a3b0e1c44a/dub-fleet-manager/pkg/logger"
	"github.com/d8ff42ce19a3b0e1c44a/dub-fleet-manager/pkg/workers"

	"github.com/golang/glog"
	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// DashboardTLSCertificateManager represents a manager that periodically reconciles the dashboard wildcard tls certificate.
type DashboardTLSCertificateManager struct {
	workers.BaseWorker
	certificateManagementService dashboardcertmgmt.DashboardCertificateManagementService
	dashboardConfig              *config.DashboardConfig
}

// NewDashboardTLSCertificateManager creates a new manager to reconcile the dashboard tls certificate.
func NewDashboardTLSCertificateManager(certificateManagementService dashboardcertmgmt.DashboardCertificateManagementService, dashboardConfig *config.DashboardConfig, reconciler workers.Reconciler) *DashboardTLSCertificateManager {
	return &DashboardTLSCertificateManager{
		BaseWorker: workers.BaseWorker{
			Id:         uuid.New().String(),
			WorkerType: "dashboard_tls_certificate",
			Reconciler: reconciler,
		},
		certificateManagementService: certificateManagementService,
		dashboardConfig:              dashboardConfig,
	}
}

// Start initializes the manager to reconcile the dashboard tls certificate.
func (k *DashboardTLSCertificateManager) Start() {
	k.StartWorker(k)
}

// Stop causes the process for reconciling the dashboard tls certificate to stop.
func (k *DashboardTLSCertificateManager) Stop() {
	k.StopWorker(k)
}

func (k *DashboardTLSCertificateManager) Reconcile() []error {
	logger.Logger.Infof("reconciling dashboard tls certificate")

	if !k.certificateManagementService.IsDashboardExternalCertificateEnabled() {
		glog.V(10).Infoln("external certificate for the dashboard hosts is disabled")
		return nil
	}

	if !k.certificateManagementService.IsAutomaticCertificateManagementEnabled() {
		glog.V(10).Infoln("dashboard tls certificate is managed manually")
		return nil
	}

	output, err := k.certificateManagementService.ManageCertificate(context.Background(), k.dashboardConfig.BaseDomain)
	if err != nil {
		return []error{errors.Wrapf(err, "failed to manage the tls certificate for domain %q", k.dashboardConfig.WildcardDomain())}
	}

	glog.V(10).Infof("dashboard tls certificate reconciled, cert ref = %q key ref = %q", output.TLSCertRef, output.TLSKeyRef)
	return nil
}
