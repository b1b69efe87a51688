package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/d8ff42ce19a3b0e1c44a/dub-fleet-manager/internal/depbot/constants"
	"github.com/d8ff42ce19a3b0e1c44a/dub-fleet-manager/internal/depbot/internal/api/dbapi"
	"github.com/d8ff42ce19a3b0e1c44a/dub-fleet-manager/pkg/shared"
	"github.com/pkg/errors"
	"github.com/spf13/pflag"
	"gopkg.in/yaml.v2"
	"k8s.io/client-go/tools/clientcmd"
	clientcmdapi "k8s.io/client-go/tools/clientcmd/api"
)

type AgentClusterConfig struct {
	ImagePullDockerConfigContent string `json:"image_pull_docker_config_content"`
	ImagePullDockerConfigFile    string `json:"image_pull_docker_config_file"`
	AgentClustersConfigFile      string `json:"agent_clusters_config_file"`
	ClusterConfig                *ClusterConfig
	Kubeconfig                   string `json:"kubeconfig"`
	RawKubernetesConfig          *clientcmdapi.Config
	AgentImage                   string                     `json:"agent_image"`
	AgentOperatorOLMConfig       OperatorInstallationConfig `json:"agent_operator_olm_config"`
}

type OperatorInstallationConfig struct {
	Namespace              string `json:"namespace"`
	IndexImage             string `json:"index_image"`
	CatalogSourceNamespace string `json:"catalog_source_namespace"`
	Package                string `json:"package"`
	SubscriptionChannel    string `json:"subscription_channel"`
}

func getDefaultKubeconfig() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(homeDir, ".kube", "config")
}

func NewAgentClusterConfig() *AgentClusterConfig {
	return &AgentClusterConfig{
		ImagePullDockerConfigContent: "",
		ImagePullDockerConfigFile:    "secrets/image-pull.dockerconfigjson",
		AgentClustersConfigFile:      "config/agent-clusters-configuration.yaml",
		ClusterConfig:                &ClusterConfig{},
		Kubeconfig:                   getDefaultKubeconfig(),
		AgentImage:                   "quay.io/dubfm/dub-update-agent:latest",
		AgentOperatorOLMConfig: OperatorInstallationConfig{
			IndexImage:             "quay.io/dubfm/dub-update-agent-index:production",
			CatalogSourceNamespace: "openshift-marketplace",
			Namespace:              constants.AgentOperatorNamespace,
			SubscriptionChannel:    "stable",
			Package:                "dub-update-agent-operator",
		},
	}
}

// ManualAgentCluster is an agent cluster declared in the agent clusters
// configuration file rather than registered through the admin API.
type ManualAgentCluster struct {
	Name            string                       `yaml:"name"`
	ClusterID       string                       `yaml:"cluster_id"`
	Standalone      bool                         `yaml:"standalone"`
	Schedulable     bool                         `yaml:"schedulable"`
	RepositoryLimit int                          `yaml:"repository_limit"`
	Status          constants.AgentClusterStatus `yaml:"status"`
}

func (c *ManualAgentCluster) UnmarshalYAML(unmarshal func(interface{}) error) error {
	type t ManualAgentCluster
	temp := t{
		Status:      constants.AgentClusterProvisioning,
		Schedulable: true,
	}
	err := unmarshal(&temp)
	if err != nil {
		return err
	}
	*c = ManualAgentCluster(temp)
	if c.ClusterID == "" {
		return fmt.Errorf("cluster_id is empty")
	}
	if c.Standalone && c.Name == "" {
		return errors.Errorf("standalone agent cluster with id %s does not have the name field provided", c.ClusterID)
	}
	return nil
}

type ClusterList []ManualAgentCluster

type ClusterConfig struct {
	clusterList      ClusterList
	clusterConfigMap map[string]ManualAgentCluster
}

func NewClusterConfig(clusters ClusterList) *ClusterConfig {
	clusterMap := make(map[string]ManualAgentCluster)
	for _, c := range clusters {
		clusterMap[c.ClusterID] = c
	}
	return &ClusterConfig{
		clusterList:      clusters,
		clusterConfigMap: clusterMap,
	}
}

func (conf *ClusterConfig) IsClusterSchedulable(clusterID string) bool {
	if cluster, exist := conf.clusterConfigMap[clusterID]; exist {
		return cluster.Schedulable
	}
	return true
}

func (conf *ClusterConfig) IsRepositoryCountWithinClusterLimit(clusterID string, count int) bool {
	if cluster, exist := conf.clusterConfigMap[clusterID]; exist {
		return cluster.RepositoryLimit == -1 || count <= cluster.RepositoryLimit
	}
	return true
}

func (conf *ClusterConfig) GetManualClusters() []ManualAgentCluster {
	return conf.clusterList
}

// ExcessClusters returns ids of registered agent clusters that are no longer
// present in the configuration file.
func (conf *ClusterConfig) ExcessClusters(clusterMap map[string]dbapi.AgentCluster) []string {
	var res []string
	for clusterID, cluster := range clusterMap {
		if _, exist := conf.clusterConfigMap[clusterID]; !exist {
			res = append(res, cluster.ClusterID)
		}
	}
	return res
}

// MissingClusters returns configured agent clusters that have not been
// registered yet, preserving file order.
func (conf *ClusterConfig) MissingClusters(clusterMap map[string]dbapi.AgentCluster) []ManualAgentCluster {
	var res []ManualAgentCluster
	for _, c := range conf.clusterList {
		if _, exists := clusterMap[c.ClusterID]; !exists {
			res = append(res, c)
		}
	}
	return res
}

func (c *AgentClusterConfig) AddFlags(fs *pflag.FlagSet) {
	fs.StringVar(&c.ImagePullDockerConfigFile, "image-pull-docker-config-file", c.ImagePullDockerConfigFile, "File containing the docker config content for pulling agent images on clusters")
	fs.StringVar(&c.AgentClustersConfigFile, "agent-clusters-config-file", c.AgentClustersConfigFile, "File containing the manually configured agent clusters")
	fs.StringVar(&c.Kubeconfig, "kubeconfig", c.Kubeconfig, "A path to the kubeconfig file used for communication with standalone agent clusters")
	fs.StringVar(&c.AgentImage, "agent-image", c.AgentImage, "The update agent image installed on agent clusters")
	fs.StringVar(&c.AgentOperatorOLMConfig.CatalogSourceNamespace, "agent-operator-cs-namespace", c.AgentOperatorOLMConfig.CatalogSourceNamespace, "Update agent operator catalog source namespace")
	fs.StringVar(&c.AgentOperatorOLMConfig.IndexImage, "agent-operator-index-image", c.AgentOperatorOLMConfig.IndexImage, "Update agent operator index image")
	fs.StringVar(&c.AgentOperatorOLMConfig.Namespace, "agent-operator-namespace", c.AgentOperatorOLMConfig.Namespace, "Update agent operator namespace")
	fs.StringVar(&c.AgentOperatorOLMConfig.Package, "agent-operator-package", c.AgentOperatorOLMConfig.Package, "Update agent operator package")
	fs.StringVar(&c.AgentOperatorOLMConfig.SubscriptionChannel, "agent-operator-sub-channel", c.AgentOperatorOLMConfig.SubscriptionChannel, "Update agent operator subscription channel")
}

func (c *AgentClusterConfig) ReadFiles() error {
	if c.ImagePullDockerConfigContent == "" && c.ImagePullDockerConfigFile != "" {
		err := shared.ReadFileValueString(c.ImagePullDockerConfigFile, &c.ImagePullDockerConfigContent)
		if err != nil {
			return err
		}
	}

	list, err := readAgentClustersConfig(c.AgentClustersConfigFile)
	if err != nil {
		return err
	}
	c.ClusterConfig = NewClusterConfig(list)

	// standalone clusters must be reachable through a kubeconfig context
	for _, cluster := range c.ClusterConfig.clusterList {
		if !cluster.Standalone {
			continue
		}
		if c.RawKubernetesConfig == nil {
			err = c.readKubeconfig()
			if err != nil {
				return err
			}
		}
		validationErr := validateClusterIsInKubeconfigContext(*c.RawKubernetesConfig, cluster)
		if validationErr != nil {
			return validationErr
		}
	}

	return nil
}

func (c *AgentClusterConfig) readKubeconfig() error {
	_, err := os.Stat(c.Kubeconfig)
	if err != nil {
		if os.IsNotExist(err) {
			return errors.Errorf("the kubeconfig file %s does not exist", c.Kubeconfig)
		}
		return err
	}
	config := clientcmd.NewNonInteractiveDeferredLoadingClientConfig(
		&clientcmd.ClientConfigLoadingRules{Precedence: []string{c.Kubeconfig}},
		&clientcmd.ConfigOverrides{})
	rawConfig, err := config.RawConfig()
	if err != nil {
		return err
	}
	c.RawKubernetesConfig = &rawConfig
	return nil
}

func validateClusterIsInKubeconfigContext(rawConfig clientcmdapi.Config, cluster ManualAgentCluster) error {
	if _, found := rawConfig.Contexts[cluster.Name]; found {
		return nil
	}
	return errors.Errorf("standalone agent cluster with ID: %s, and Name %s not in kubeconfig context", cluster.ClusterID, cluster.Name)
}

func readAgentClustersConfig(file string) (ClusterList, error) {
	fileContents, err := shared.ReadFile(file)
	if err != nil {
		if os.IsNotExist(err) {
			return ClusterList{}, nil
		}
		return nil, err
	}

	c := struct {
		ClusterList ClusterList `yaml:"clusters"`
	}{}

	err = yaml.UnmarshalStrict([]byte(fileContents), &c)
	if err != nil {
		return nil, err
	}
	return c.ClusterList, nil
}
