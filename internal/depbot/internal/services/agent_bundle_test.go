package services

import (
	"strings"
	"testing"

	"github.com/onsi/gomega"
	mocket "github.com/selvatico/go-mocket"

	"github.com/d8ff42ce19a3b0e1c44a/dub-fleet-manager/internal/depbot/internal/api/dbapi"
	"github.com/d8ff42ce19a3b0e1c44a/dub-fleet-manager/internal/depbot/internal/clients/forge"
	"github.com/d8ff42ce19a3b0e1c44a/dub-fleet-manager/internal/depbot/internal/config"
	"github.com/d8ff42ce19a3b0e1c44a/dub-fleet-manager/internal/depbot/internal/converters"
	"github.com/d8ff42ce19a3b0e1c44a/dub-fleet-manager/pkg/db"
	"github.com/d8ff42ce19a3b0e1c44a/dub-fleet-manager/pkg/services/vault"

	routev1 "github.com/openshift/api/route/v1"
	operatorsv1alpha1 "github.com/operator-framework/api/pkg/operators/v1alpha1"
	operatorsv1alpha2 "github.com/operator-framework/api/pkg/operators/v1alpha2"
	appsv1 "k8s.io/api/apps/v1"
	corev1 "k8s.io/api/core/v1"
)

func Test_agentBundleService_RenderResources(t *testing.T) {
	g := gomega.NewWithT(t)

	vaultService, err := vault.NewTmpVaultService()
	g.Expect(err).To(gomega.BeNil())
	tokenSecretName := forge.OrgTokenSecretName("github", "13640203")
	g.Expect(vaultService.SetSecretString(tokenSecretName, "ghp_token", "repository/test")).To(gomega.Succeed())

	agentClusterConfig := config.NewAgentClusterConfig()
	agentClusterConfig.ImagePullDockerConfigContent = `{"auths":{}}`

	s := &agentBundleService{
		connectionFactory:  db.NewMockConnectionFactory(nil),
		agentClusterConfig: agentClusterConfig,
		vaultService:       vaultService,
	}

	agentCluster := buildAgentCluster(nil)

	mocket.Catcher.Reset().NewMock().
		WithQuery(`SELECT * FROM "repository_requests" WHERE agent_cluster_id = $1`).
		WithReply(converters.ConvertRepositoryRequestList(dbapi.RepositoryList{
			{Name: "acme/billing", ForgeType: "github", OrganisationId: "13640203"},
			{Name: "acme/website", ForgeType: "github", OrganisationId: "13640203"},
		}))

	resources, svcErr := s.RenderResources(agentCluster)
	g.Expect(svcErr).To(gomega.BeNil())

	// two repositories of the same organisation share one token secret
	g.Expect(resources).To(gomega.HaveLen(10))

	namespace, ok := resources[0].(*corev1.Namespace)
	g.Expect(ok).To(gomega.BeTrue())
	g.Expect(namespace.Name).To(gomega.Equal(agentClusterConfig.AgentOperatorOLMConfig.Namespace))

	_, ok = resources[1].(*corev1.ServiceAccount)
	g.Expect(ok).To(gomega.BeTrue())

	imagePullSecret, ok := resources[2].(*corev1.Secret)
	g.Expect(ok).To(gomega.BeTrue())
	g.Expect(imagePullSecret.Type).To(gomega.Equal(corev1.SecretTypeDockerConfigJson))

	tokenSecret, ok := resources[3].(*corev1.Secret)
	g.Expect(ok).To(gomega.BeTrue())
	g.Expect(tokenSecret.Name).To(gomega.Equal(tokenSecretName))
	g.Expect(tokenSecret.StringData).To(gomega.HaveKeyWithValue("token", "ghp_token"))

	catalogSource, ok := resources[4].(*operatorsv1alpha1.CatalogSource)
	g.Expect(ok).To(gomega.BeTrue())
	g.Expect(catalogSource.Spec.Image).To(gomega.Equal(agentClusterConfig.AgentOperatorOLMConfig.IndexImage))

	_, ok = resources[5].(*operatorsv1alpha2.OperatorGroup)
	g.Expect(ok).To(gomega.BeTrue())

	subscription, ok := resources[6].(*operatorsv1alpha1.Subscription)
	g.Expect(ok).To(gomega.BeTrue())
	g.Expect(subscription.Spec.Channel).To(gomega.Equal(agentClusterConfig.AgentOperatorOLMConfig.SubscriptionChannel))
	g.Expect(subscription.Spec.Package).To(gomega.Equal(agentClusterConfig.AgentOperatorOLMConfig.Package))

	deployment, ok := resources[7].(*appsv1.Deployment)
	g.Expect(ok).To(gomega.BeTrue())
	g.Expect(deployment.Spec.Template.Spec.Containers).To(gomega.HaveLen(1))
	g.Expect(deployment.Spec.Template.Spec.Containers[0].Image).To(gomega.Equal(agentClusterConfig.AgentImage))
	g.Expect(deployment.Spec.Template.Spec.Containers[0].Env).To(gomega.ContainElement(corev1.EnvVar{
		Name:  "CLUSTER_ID",
		Value: agentCluster.ClusterID,
	}))

	_, ok = resources[8].(*corev1.Service)
	g.Expect(ok).To(gomega.BeTrue())

	route, ok := resources[9].(*routev1.Route)
	g.Expect(ok).To(gomega.BeTrue())
	g.Expect(route.Spec.To.Name).To(gomega.Equal("dub-update-agent"))
}

func Test_agentBundleService_RenderResources_NoImagePullSecret(t *testing.T) {
	g := gomega.NewWithT(t)

	vaultService, err := vault.NewTmpVaultService()
	g.Expect(err).To(gomega.BeNil())

	s := &agentBundleService{
		connectionFactory:  db.NewMockConnectionFactory(nil),
		agentClusterConfig: config.NewAgentClusterConfig(),
		vaultService:       vaultService,
	}

	// no assigned repositories and no docker config content configured
	mocket.Catcher.Reset()

	resources, svcErr := s.RenderResources(buildAgentCluster(nil))
	g.Expect(svcErr).To(gomega.BeNil())
	g.Expect(resources).To(gomega.HaveLen(8))
	for _, resource := range resources {
		if secret, ok := resource.(*corev1.Secret); ok {
			t.Errorf("unexpected secret %s in bundle", secret.Name)
		}
	}
}

func Test_MarshalResourceSet(t *testing.T) {
	g := gomega.NewWithT(t)

	vaultService, err := vault.NewTmpVaultService()
	g.Expect(err).To(gomega.BeNil())

	s := &agentBundleService{
		connectionFactory:  db.NewMockConnectionFactory(nil),
		agentClusterConfig: config.NewAgentClusterConfig(),
		vaultService:       vaultService,
	}

	mocket.Catcher.Reset()

	resources, svcErr := s.RenderResources(buildAgentCluster(nil))
	g.Expect(svcErr).To(gomega.BeNil())

	out, marshalErr := MarshalResourceSet(resources)
	g.Expect(marshalErr).To(gomega.BeNil())

	docs := strings.Split(string(out), "---\n")
	g.Expect(docs).To(gomega.HaveLen(len(resources)))
	g.Expect(docs[0]).To(gomega.ContainSubstring("kind: Namespace"))
	g.Expect(string(out)).To(gomega.ContainSubstring("kind: Subscription"))
	g.Expect(string(out)).To(gomega.ContainSubstring("kind: Route"))
}
