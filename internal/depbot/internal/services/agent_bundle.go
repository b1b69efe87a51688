package services

import (
	"bytes"
	"strings"

	"github.com/d8ff42ce19a3b0e1c44a/dub-fleet-manager/internal/depbot/constants"
	"github.com/d8ff42ce19a3b0e1c44a/dub-fleet-manager/internal/depbot/internal/api/dbapi"
	"github.com/d8ff42ce19a3b0e1c44a/dub-fleet-manager/internal/depbot/internal/clients/forge"
	"github.com/d8ff42ce19a3b0e1c44a/dub-fleet-manager/internal/depbot/internal/config"
	"github.com/d8ff42ce19a3b0e1c44a/dub-fleet-manager/pkg/db"
	"github.com/d8ff42ce19a3b0e1c44a/dub-fleet-manager/pkg/errors"
	"github.com/d8ff42ce19a3b0e1c44a/dub-fleet-manager/pkg/services/vault"
	"github.com/golang/glog"

	routev1 "github.com/openshift/api/route/v1"
	operatorsv1alpha1 "github.com/operator-framework/api/pkg/operators/v1alpha1"
	operatorsv1alpha2 "github.com/operator-framework/api/pkg/operators/v1alpha2"
	appsv1 "k8s.io/api/apps/v1"
	corev1 "k8s.io/api/core/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/util/intstr"
	"sigs.k8s.io/yaml"
)

const (
	agentOperatorCatalogSourceName = "dub-update-agent-cs"
	agentOperatorOperatorGroupName = "dub-update-agent-og"
	agentOperatorSubscriptionName  = "dub-update-agent-sub"
	agentDeploymentName            = "dub-update-agent"
	agentStatusPortName            = "status"
)

// AgentBundleService renders the Kubernetes manifests that install the update
// agent on a cluster. The bundle is what an operator applies to a standalone
// cluster to join it to the fleet.
//
//go:generate moq -out agentbundleservice_moq.go . AgentBundleService
type AgentBundleService interface {
	RenderResources(agentCluster *dbapi.AgentCluster) ([]interface{}, *errors.ServiceError)
}

var _ AgentBundleService = &agentBundleService{}

type agentBundleService struct {
	connectionFactory  *db.ConnectionFactory
	agentClusterConfig *config.AgentClusterConfig
	vaultService       vault.VaultService
}

func NewAgentBundleService(connectionFactory *db.ConnectionFactory, agentClusterConfig *config.AgentClusterConfig, vaultService vault.VaultService) *agentBundleService {
	return &agentBundleService{
		connectionFactory:  connectionFactory,
		agentClusterConfig: agentClusterConfig,
		vaultService:       vaultService,
	}
}

func (s *agentBundleService) RenderResources(agentCluster *dbapi.AgentCluster) ([]interface{}, *errors.ServiceError) {
	resources := []interface{}{
		s.buildAgentOperatorNamespace(),
		s.buildAgentServiceAccount(),
	}

	if secret := s.buildImagePullSecret(); secret != nil {
		resources = append(resources, secret)
	}

	forgeTokenSecrets, svcErr := s.buildForgeTokenSecrets(agentCluster)
	if svcErr != nil {
		return nil, svcErr
	}
	resources = append(resources, forgeTokenSecrets...)

	resources = append(resources,
		s.buildAgentOperatorCatalogSource(),
		s.buildAgentOperatorOperatorGroup(),
		s.buildAgentOperatorSubscription(),
		s.buildAgentDeployment(agentCluster),
		s.buildAgentService(),
		s.buildAgentStatusRoute(),
	)

	return resources, nil
}

// MarshalResourceSet renders the resources as a multi document YAML stream.
func MarshalResourceSet(resources []interface{}) ([]byte, error) {
	var buf bytes.Buffer
	for i, resource := range resources {
		out, err := yaml.Marshal(resource)
		if err != nil {
			return nil, err
		}
		if i > 0 {
			buf.WriteString("---\n")
		}
		buf.Write(out)
	}
	return buf.Bytes(), nil
}

func (s *agentBundleService) buildAgentOperatorNamespace() *corev1.Namespace {
	agentOperatorOLMConfig := s.agentClusterConfig.AgentOperatorOLMConfig
	return &corev1.Namespace{
		TypeMeta: metav1.TypeMeta{
			APIVersion: corev1.SchemeGroupVersion.String(),
			Kind:       "Namespace",
		},
		ObjectMeta: metav1.ObjectMeta{
			Name: agentOperatorOLMConfig.Namespace,
		},
	}
}

func (s *agentBundleService) buildAgentServiceAccount() *corev1.ServiceAccount {
	agentOperatorOLMConfig := s.agentClusterConfig.AgentOperatorOLMConfig
	return &corev1.ServiceAccount{
		TypeMeta: metav1.TypeMeta{
			APIVersion: corev1.SchemeGroupVersion.String(),
			Kind:       "ServiceAccount",
		},
		ObjectMeta: metav1.ObjectMeta{
			Name:      agentDeploymentName,
			Namespace: agentOperatorOLMConfig.Namespace,
		},
	}
}

func (s *agentBundleService) buildImagePullSecret() *corev1.Secret {
	content := s.agentClusterConfig.ImagePullDockerConfigContent
	if strings.TrimSpace(content) == "" {
		return nil
	}

	agentOperatorOLMConfig := s.agentClusterConfig.AgentOperatorOLMConfig
	return &corev1.Secret{
		TypeMeta: metav1.TypeMeta{
			APIVersion: corev1.SchemeGroupVersion.String(),
			Kind:       "Secret",
		},
		ObjectMeta: metav1.ObjectMeta{
			Name:      constants.ImagePullSecretName,
			Namespace: agentOperatorOLMConfig.Namespace,
		},
		Type: corev1.SecretTypeDockerConfigJson,
		Data: map[string][]byte{
			corev1.DockerConfigJsonKey: []byte(content),
		},
	}
}

// buildForgeTokenSecrets renders one secret per organisation with repositories
// on the cluster, under the same name the vault stores it. Organisations
// without a vault token are skipped, their agent falls back to the shared
// forge credentials.
func (s *agentBundleService) buildForgeTokenSecrets(agentCluster *dbapi.AgentCluster) ([]interface{}, *errors.ServiceError) {
	dbConn := s.connectionFactory.New()

	var repositories dbapi.RepositoryList
	if err := dbConn.Model(&dbapi.RepositoryRequest{}).Where("agent_cluster_id = ?", agentCluster.ID).Scan(&repositories).Error; err != nil {
		return nil, errors.NewWithCause(errors.ErrorGeneral, err, "failed to list repositories for agent cluster %s", agentCluster.ID)
	}

	agentOperatorOLMConfig := s.agentClusterConfig.AgentOperatorOLMConfig

	seen := map[string]bool{}
	var secrets []interface{}
	for _, repository := range repositories {
		secretName := forge.OrgTokenSecretName(repository.ForgeType, repository.OrganisationId)
		if seen[secretName] {
			continue
		}
		seen[secretName] = true

		token, err := s.vaultService.GetSecretString(secretName)
		if err != nil || token == "" {
			glog.Warningf("no forge token in vault for organisation %s, skipping secret %s", repository.OrganisationId, secretName)
			continue
		}

		secrets = append(secrets, &corev1.Secret{
			TypeMeta: metav1.TypeMeta{
				APIVersion: corev1.SchemeGroupVersion.String(),
				Kind:       "Secret",
			},
			ObjectMeta: metav1.ObjectMeta{
				Name:      secretName,
				Namespace: agentOperatorOLMConfig.Namespace,
			},
			Type: corev1.SecretTypeOpaque,
			StringData: map[string]string{
				"token": token,
			},
		})
	}

	return secrets, nil
}

func (s *agentBundleService) buildAgentOperatorCatalogSource() *operatorsv1alpha1.CatalogSource {
	agentOperatorOLMConfig := s.agentClusterConfig.AgentOperatorOLMConfig
	return &operatorsv1alpha1.CatalogSource{
		TypeMeta: metav1.TypeMeta{
			APIVersion: operatorsv1alpha1.SchemeGroupVersion.String(),
			Kind:       operatorsv1alpha1.CatalogSourceKind,
		},
		ObjectMeta: metav1.ObjectMeta{
			Name:      agentOperatorCatalogSourceName,
			Namespace: agentOperatorOLMConfig.CatalogSourceNamespace,
		},
		Spec: operatorsv1alpha1.CatalogSourceSpec{
			SourceType: operatorsv1alpha1.SourceTypeGrpc,
			Image:      agentOperatorOLMConfig.IndexImage,
		},
	}
}

func (s *agentBundleService) buildAgentOperatorOperatorGroup() *operatorsv1alpha2.OperatorGroup {
	agentOperatorOLMConfig := s.agentClusterConfig.AgentOperatorOLMConfig
	return &operatorsv1alpha2.OperatorGroup{
		TypeMeta: metav1.TypeMeta{
			APIVersion: operatorsv1alpha2.SchemeGroupVersion.String(),
			Kind:       operatorsv1alpha2.OperatorGroupKind,
		},
		ObjectMeta: metav1.ObjectMeta{
			Name:      agentOperatorOperatorGroupName,
			Namespace: agentOperatorOLMConfig.Namespace,
		},
		//Spec.TargetNamespaces intentionally not set, which means "select all namespaces"
		Spec: operatorsv1alpha2.OperatorGroupSpec{},
	}
}

func (s *agentBundleService) buildAgentOperatorSubscription() *operatorsv1alpha1.Subscription {
	agentOperatorOLMConfig := s.agentClusterConfig.AgentOperatorOLMConfig
	return &operatorsv1alpha1.Subscription{
		TypeMeta: metav1.TypeMeta{
			APIVersion: operatorsv1alpha1.SchemeGroupVersion.String(),
			Kind:       operatorsv1alpha1.SubscriptionKind,
		},
		ObjectMeta: metav1.ObjectMeta{
			Name:      agentOperatorSubscriptionName,
			Namespace: agentOperatorOLMConfig.Namespace,
		},
		Spec: &operatorsv1alpha1.SubscriptionSpec{
			CatalogSource:          agentOperatorCatalogSourceName,
			Channel:                agentOperatorOLMConfig.SubscriptionChannel,
			CatalogSourceNamespace: agentOperatorOLMConfig.CatalogSourceNamespace,
			InstallPlanApproval:    operatorsv1alpha1.ApprovalAutomatic,
			Package:                agentOperatorOLMConfig.Package,
		},
	}
}

func (s *agentBundleService) buildAgentDeployment(agentCluster *dbapi.AgentCluster) *appsv1.Deployment {
	agentOperatorOLMConfig := s.agentClusterConfig.AgentOperatorOLMConfig
	return &appsv1.Deployment{
		TypeMeta: metav1.TypeMeta{
			APIVersion: "apps/v1",
			Kind:       "Deployment",
		},
		ObjectMeta: metav1.ObjectMeta{
			Name:      agentDeploymentName,
			Namespace: agentOperatorOLMConfig.Namespace,
		},
		Spec: appsv1.DeploymentSpec{
			Selector: &metav1.LabelSelector{
				MatchLabels: map[string]string{
					"app": agentDeploymentName,
				},
			},
			Template: corev1.PodTemplateSpec{
				ObjectMeta: metav1.ObjectMeta{
					Labels: map[string]string{
						"app": agentDeploymentName,
					},
				},
				Spec: corev1.PodSpec{
					ServiceAccountName: agentDeploymentName,
					Containers: []corev1.Container{
						{
							Name:  agentDeploymentName,
							Image: s.agentClusterConfig.AgentImage,
							Env: []corev1.EnvVar{
								{
									Name:  "CLUSTER_ID",
									Value: agentCluster.ClusterID,
								},
							},
							Ports: []corev1.ContainerPort{
								{
									Name:          agentStatusPortName,
									ContainerPort: 8080,
								},
							},
						},
					},
				},
			},
		},
	}
}

func (s *agentBundleService) buildAgentService() *corev1.Service {
	agentOperatorOLMConfig := s.agentClusterConfig.AgentOperatorOLMConfig
	return &corev1.Service{
		TypeMeta: metav1.TypeMeta{
			APIVersion: "v1",
			Kind:       "Service",
		},
		ObjectMeta: metav1.ObjectMeta{
			Name:      agentDeploymentName,
			Namespace: agentOperatorOLMConfig.Namespace,
		},
		Spec: corev1.ServiceSpec{
			Selector: map[string]string{
				"app": agentDeploymentName,
			},
			Ports: []corev1.ServicePort{
				{
					Name:       agentStatusPortName,
					Protocol:   corev1.ProtocolTCP,
					Port:       8080,
					TargetPort: intstr.FromString(agentStatusPortName),
				},
			},
		},
	}
}

func (s *agentBundleService) buildAgentStatusRoute() *routev1.Route {
	agentOperatorOLMConfig := s.agentClusterConfig.AgentOperatorOLMConfig
	return &routev1.Route{
		TypeMeta: metav1.TypeMeta{
			APIVersion: "route.openshift.io/v1",
			Kind:       "Route",
		},
		ObjectMeta: metav1.ObjectMeta{
			Name:      agentDeploymentName,
			Namespace: agentOperatorOLMConfig.Namespace,
		},
		Spec: routev1.RouteSpec{
			To: routev1.RouteTargetReference{
				Kind: "Service",
				Name: agentDeploymentName,
			},
			Port: &routev1.RoutePort{
				TargetPort: intstr.FromString(agentStatusPortName),
			},
			TLS: &routev1.TLSConfig{
				Termination: routev1.TLSTerminationEdge,
			},
		},
	}
}
