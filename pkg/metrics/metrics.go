package metrics

import (
	"time"

	"github.com/d8ff42ce19a3b0e1c44a/dub-fleet-manager/internal/depbot/constants"

	"github.com/prometheus/client_golang/prometheus"
)

const (
	// DubFleetManager - metrics prefix
	DubFleetManager = "dub_fleet_manager"

	// RepositoryCreateRequestDuration - name of repository creation duration metric
	RepositoryCreateRequestDuration = "worker_repository_duration"
	// PullRequestOpenRequestDuration - name of pull request open duration metric
	PullRequestOpenRequestDuration = "worker_pull_request_duration"

	labelJobType = "jobType"

	// RepositoryOperationsSuccessCount - name of the metric for successful repository operations
	RepositoryOperationsSuccessCount = "repository_operations_success_count"
	// RepositoryOperationsTotalCount - name of the metric for all repository operations
	RepositoryOperationsTotalCount = "repository_operations_total_count"

	// RepositoryRequestsStatus - repository requests status metrics
	RepositoryRequestsStatusSinceCreated = "repository_requests_status_since_created_in_seconds"
	RepositoryRequestsStatusCount        = "repository_requests_status_count"
	LabelStatus                          = "status"
	LabelID                              = "id"

	// UpdateRunsStatusCount - name of the metric counting update runs in each status
	UpdateRunsStatusCount = "update_runs_status_count"
	// AgentClustersStatusCount - name of the metric counting agent clusters in each status
	AgentClustersStatusCount = "agent_clusters_status_count"
	// UpdateRunOperationsSuccessCount - name of the metric for successful update run operations
	UpdateRunOperationsSuccessCount = "update_run_operations_success_count"
	// UpdateRunOperationsTotalCount - name of the metric for all update run operations
	UpdateRunOperationsTotalCount = "update_run_operations_total_count"
	// AgentClusterOperationsSuccessCount - name of the metric for successful agent cluster operations
	AgentClusterOperationsSuccessCount = "agent_cluster_operations_success_count"
	// AgentClusterOperationsTotalCount - name of the metric for all agent cluster operations
	AgentClusterOperationsTotalCount = "agent_cluster_operations_total_count"

	labelOperation = "operation"

	// RegistryLookupCount - name of the metric for registry datasource lookups
	RegistryLookupCount = "registry_lookup_count"
	// RegistryLookupDuration - name of the metric for registry datasource lookup duration
	RegistryLookupDuration = "registry_lookup_duration_in_seconds"
	labelRegistryType      = "registry_type"

	// ForgeRequestCount - name of the metric for forge API requests
	ForgeRequestCount = "forge_request_count"
	// ForgeRequestDuration - name of the metric for forge API request duration
	ForgeRequestDuration = "forge_request_duration_in_seconds"

	ReconcilerDuration     = "reconciler_duration_in_seconds"
	ReconcilerSuccessCount = "reconciler_success_count"
	ReconcilerFailureCount = "reconciler_failure_count"
	ReconcilerErrorsCount  = "reconciler_errors_count"
	LeaderWorker           = "leader_worker"
	labelReconcilerType    = "worker_type"

	DatabaseQueryCount     = "database_query_count"
	DatabaseQueryDuration  = "database_query_duration_in_seconds"
	labelDatabaseQueryType = "query"

	VaultServiceTotalCount   = "vault_service_total_count"
	VaultServiceSuccessCount = "vault_service_success_count"
	VaultServiceFailureCount = "vault_service_failure_count"
	VaultServiceErrorsCount  = "vault_service_errors_count"

	APICallsCount    = "api_calls_count"
	APICallsDuration = "api_calls_duration_in_seconds"
	labelMethod      = "method"
	labelPath        = "path"
	labelCode        = "code"
)

// JobType metric to capture
type JobType string

var (
	// JobTypeRepositoryCreate - repository_create job type
	JobTypeRepositoryCreate JobType = "repository_create"
	// JobTypePullRequestOpen - pull_request_open job type
	JobTypePullRequestOpen JobType = "pull_request_open"
)

// JobsMetricsLabels is the slice of labels to add to job metrics
var JobsMetricsLabels = []string{
	labelJobType,
}

// repositoryStatusSinceCreatedMetricLabels is the slice of labels to add to repository status duration metrics
var repositoryStatusSinceCreatedMetricLabels = []string{
	LabelStatus,
	LabelID,
}

// repositoryStatusCountMetricLabels is the slice of labels to add to repository status count metrics
var repositoryStatusCountMetricLabels = []string{
	LabelStatus,
}

// RepositoryOperationsCountMetricsLabels - is the slice of labels to add to repository operations count metrics
var RepositoryOperationsCountMetricsLabels = []string{
	labelOperation,
}

// UpdateRunOperationsCountMetricsLabels - is the slice of labels to add to update run operations count metrics
var UpdateRunOperationsCountMetricsLabels = []string{
	labelOperation,
}

// AgentClusterOperationsCountMetricsLabels - is the slice of labels to add to agent cluster operations count metrics
var AgentClusterOperationsCountMetricsLabels = []string{
	labelOperation,
}

var registryMetricsLabels = []string{
	labelRegistryType,
	LabelStatus,
}

var forgeMetricsLabels = []string{
	labelOperation,
	LabelStatus,
}

var ReconcilerMetricsLabels = []string{
	labelReconcilerType,
}

var databaseMetricsLabels = []string{
	LabelStatus,
	labelDatabaseQueryType,
}

var vaultMetricsLabels = []string{
	labelOperation,
}

var apiCallsMetricsLabels = []string{
	labelMethod,
	labelPath,
	labelCode,
}

// create a new histogramVec for repository creation duration
var requestRepositoryCreationDurationMetric = prometheus.NewHistogramVec(
	prometheus.HistogramOpts{
		Subsystem: DubFleetManager,
		Name:      RepositoryCreateRequestDuration,
		Help:      "Repository onboarding duration in seconds.",
		Buckets: []float64{
			1.0,
			5.0,
			10.0,
			30.0,
			60.0,
			120.0,
			300.0,
			600.0,
			1800.0,
		},
	},
	JobsMetricsLabels,
)

// UpdateRepositoryCreationDurationMetric records the duration of a job type
func UpdateRepositoryCreationDurationMetric(jobType JobType, elapsed time.Duration) {
	labels := prometheus.Labels{
		labelJobType: string(jobType),
	}
	requestRepositoryCreationDurationMetric.With(labels).Observe(elapsed.Seconds())
}

// create a new histogramVec for pull request open duration
var requestPullRequestOpenDurationMetric = prometheus.NewHistogramVec(
	prometheus.HistogramOpts{
		Subsystem: DubFleetManager,
		Name:      PullRequestOpenRequestDuration,
		Help:      "Pull request open duration in seconds.",
		Buckets: []float64{
			1.0,
			5.0,
			10.0,
			30.0,
			60.0,
			120.0,
			300.0,
			600.0,
		},
	},
	JobsMetricsLabels,
)

// UpdatePullRequestOpenDurationMetric records the duration of a job type
func UpdatePullRequestOpenDurationMetric(jobType JobType, elapsed time.Duration) {
	labels := prometheus.Labels{
		labelJobType: string(jobType),
	}
	requestPullRequestOpenDurationMetric.With(labels).Observe(elapsed.Seconds())
}

// create a new counterVec for successful repository operations counts
var repositoryOperationsSuccessCountMetric = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Subsystem: DubFleetManager,
		Name:      RepositoryOperationsSuccessCount,
		Help:      "number of successful repository operations",
	},
	RepositoryOperationsCountMetricsLabels,
)

// IncreaseRepositorySuccessOperationsCountMetric - increase counter for the repositoryOperationsSuccessCountMetric
func IncreaseRepositorySuccessOperationsCountMetric(operation constants.RepositoryOperation) {
	labels := prometheus.Labels{
		labelOperation: operation.String(),
	}
	repositoryOperationsSuccessCountMetric.With(labels).Inc()
}

// create a new counterVec for total repository operations counts
var repositoryOperationsTotalCountMetric = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Subsystem: DubFleetManager,
		Name:      RepositoryOperationsTotalCount,
		Help:      "number of total repository operations",
	},
	RepositoryOperationsCountMetricsLabels,
)

// IncreaseRepositoryTotalOperationsCountMetric - increase counter for the repositoryOperationsTotalCountMetric
func IncreaseRepositoryTotalOperationsCountMetric(operation constants.RepositoryOperation) {
	labels := prometheus.Labels{
		labelOperation: operation.String(),
	}
	repositoryOperationsTotalCountMetric.With(labels).Inc()
}

// create a new gaugeVec for repository status durations
var repositoryStatusSinceCreatedMetric = prometheus.NewGaugeVec(
	prometheus.GaugeOpts{
		Subsystem: DubFleetManager,
		Name:      RepositoryRequestsStatusSinceCreated,
		Help:      "metrics to track the repository requests in various statuses and how long they have been in that status",
	},
	repositoryStatusSinceCreatedMetricLabels,
)

// UpdateRepositoryRequestsStatusSinceCreatedMetric records the time a repository request has been in the given status
func UpdateRepositoryRequestsStatusSinceCreatedMetric(status constants.RepositoryStatus, repositoryID string, elapsed time.Duration) {
	labels := prometheus.Labels{
		LabelStatus: string(status),
		LabelID:     repositoryID,
	}
	repositoryStatusSinceCreatedMetric.With(labels).Set(elapsed.Seconds())
}

// create a new gaugeVec for repository status counts
var repositoryStatusCountMetric = prometheus.NewGaugeVec(
	prometheus.GaugeOpts{
		Subsystem: DubFleetManager,
		Name:      RepositoryRequestsStatusCount,
		Help:      "number of total repository requests in each status",
	},
	repositoryStatusCountMetricLabels,
)

// UpdateRepositoryRequestsStatusCountMetric records the number of repository requests in the given status
func UpdateRepositoryRequestsStatusCountMetric(status constants.RepositoryStatus, count int) {
	labels := prometheus.Labels{
		LabelStatus: string(status),
	}
	repositoryStatusCountMetric.With(labels).Set(float64(count))
}

// create a new gaugeVec for update run status counts
var updateRunStatusCountMetric = prometheus.NewGaugeVec(
	prometheus.GaugeOpts{
		Subsystem: DubFleetManager,
		Name:      UpdateRunsStatusCount,
		Help:      "number of total update runs in each status",
	},
	repositoryStatusCountMetricLabels,
)

// UpdateRunsStatusCountMetric records the number of update runs in the given status
func UpdateRunsStatusCountMetric(status constants.UpdateRunStatus, count int) {
	labels := prometheus.Labels{
		LabelStatus: string(status),
	}
	updateRunStatusCountMetric.With(labels).Set(float64(count))
}

// create a new gaugeVec for agent cluster status counts
var agentClusterStatusCountMetric = prometheus.NewGaugeVec(
	prometheus.GaugeOpts{
		Subsystem: DubFleetManager,
		Name:      AgentClustersStatusCount,
		Help:      "number of agent clusters in each status",
	},
	repositoryStatusCountMetricLabels,
)

// UpdateAgentClustersStatusCountMetric records the number of agent clusters in the given status
func UpdateAgentClustersStatusCountMetric(status constants.AgentClusterStatus, count int) {
	labels := prometheus.Labels{
		LabelStatus: string(status),
	}
	agentClusterStatusCountMetric.With(labels).Set(float64(count))
}

// create a new counterVec for successful update run operations counts
var updateRunOperationsSuccessCountMetric = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Subsystem: DubFleetManager,
		Name:      UpdateRunOperationsSuccessCount,
		Help:      "number of successful update run operations",
	},
	UpdateRunOperationsCountMetricsLabels,
)

// IncreaseUpdateRunSuccessOperationsCountMetric - increase counter for the updateRunOperationsSuccessCountMetric
func IncreaseUpdateRunSuccessOperationsCountMetric(operation constants.UpdateRunOperation) {
	labels := prometheus.Labels{
		labelOperation: operation.String(),
	}
	updateRunOperationsSuccessCountMetric.With(labels).Inc()
}

// create a new counterVec for total update run operations counts
var updateRunOperationsTotalCountMetric = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Subsystem: DubFleetManager,
		Name:      UpdateRunOperationsTotalCount,
		Help:      "number of total update run operations",
	},
	UpdateRunOperationsCountMetricsLabels,
)

// IncreaseUpdateRunTotalOperationsCountMetric - increase counter for the updateRunOperationsTotalCountMetric
func IncreaseUpdateRunTotalOperationsCountMetric(operation constants.UpdateRunOperation) {
	labels := prometheus.Labels{
		labelOperation: operation.String(),
	}
	updateRunOperationsTotalCountMetric.With(labels).Inc()
}

// create a new counterVec for successful agent cluster operations counts
var agentClusterOperationsSuccessCountMetric = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Subsystem: DubFleetManager,
		Name:      AgentClusterOperationsSuccessCount,
		Help:      "number of successful agent cluster operations",
	},
	AgentClusterOperationsCountMetricsLabels,
)

// IncreaseAgentClusterSuccessOperationsCountMetric - increase counter for the agentClusterOperationsSuccessCountMetric
func IncreaseAgentClusterSuccessOperationsCountMetric(operation constants.AgentClusterOperation) {
	labels := prometheus.Labels{
		labelOperation: operation.String(),
	}
	agentClusterOperationsSuccessCountMetric.With(labels).Inc()
}

// create a new counterVec for total agent cluster operations counts
var agentClusterOperationsTotalCountMetric = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Subsystem: DubFleetManager,
		Name:      AgentClusterOperationsTotalCount,
		Help:      "number of total agent cluster operations",
	},
	AgentClusterOperationsCountMetricsLabels,
)

// IncreaseAgentClusterTotalOperationsCountMetric - increase counter for the agentClusterOperationsTotalCountMetric
func IncreaseAgentClusterTotalOperationsCountMetric(operation constants.AgentClusterOperation) {
	labels := prometheus.Labels{
		labelOperation: operation.String(),
	}
	agentClusterOperationsTotalCountMetric.With(labels).Inc()
}

// create a new counterVec for registry datasource lookups
var registryLookupCountMetric = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Subsystem: DubFleetManager,
		Name:      RegistryLookupCount,
		Help:      "number of registry datasource lookups",
	},
	registryMetricsLabels,
)

// IncreaseRegistryLookupCountMetric - increase counter for the registryLookupCountMetric
func IncreaseRegistryLookupCountMetric(registryType string, status string) {
	labels := prometheus.Labels{
		labelRegistryType: registryType,
		LabelStatus:       status,
	}
	registryLookupCountMetric.With(labels).Inc()
}

// create a new histogramVec for registry datasource lookup duration
var registryLookupDurationMetric = prometheus.NewHistogramVec(
	prometheus.HistogramOpts{
		Subsystem: DubFleetManager,
		Name:      RegistryLookupDuration,
		Help:      "Registry datasource lookup duration in seconds.",
		Buckets: []float64{
			0.1,
			0.25,
			0.5,
			1.0,
			2.5,
			5.0,
			10.0,
			30.0,
		},
	},
	registryMetricsLabels,
)

// UpdateRegistryLookupDurationMetric records the duration of a registry datasource lookup
func UpdateRegistryLookupDurationMetric(registryType string, status string, elapsed time.Duration) {
	labels := prometheus.Labels{
		labelRegistryType: registryType,
		LabelStatus:       status,
	}
	registryLookupDurationMetric.With(labels).Observe(elapsed.Seconds())
}

// create a new counterVec for forge API requests
var forgeRequestCountMetric = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Subsystem: DubFleetManager,
		Name:      ForgeRequestCount,
		Help:      "number of forge API requests",
	},
	forgeMetricsLabels,
)

// IncreaseForgeRequestCountMetric - increase counter for the forgeRequestCountMetric
func IncreaseForgeRequestCountMetric(operation string, status string) {
	labels := prometheus.Labels{
		labelOperation: operation,
		LabelStatus:    status,
	}
	forgeRequestCountMetric.With(labels).Inc()
}

// create a new histogramVec for forge API request duration
var forgeRequestDurationMetric = prometheus.NewHistogramVec(
	prometheus.HistogramOpts{
		Subsystem: DubFleetManager,
		Name:      ForgeRequestDuration,
		Help:      "Forge API request duration in seconds.",
		Buckets: []float64{
			0.1,
			0.25,
			0.5,
			1.0,
			2.5,
			5.0,
			10.0,
			30.0,
		},
	},
	forgeMetricsLabels,
)

// UpdateForgeRequestDurationMetric records the duration of a forge API request
func UpdateForgeRequestDurationMetric(operation string, status string, elapsed time.Duration) {
	labels := prometheus.Labels{
		labelOperation: operation,
		LabelStatus:    status,
	}
	forgeRequestDurationMetric.With(labels).Observe(elapsed.Seconds())
}

// create a new gaugeVec for reconciler duration
var reconcilerDurationMetric = prometheus.NewGaugeVec(
	prometheus.GaugeOpts{
		Subsystem: DubFleetManager,
		Name:      ReconcilerDuration,
		Help:      "Duration of each background reconcile in seconds.",
	},
	ReconcilerMetricsLabels,
)

func UpdateReconcilerDurationMetric(reconcilerType string, elapsed time.Duration) {
	labels := prometheus.Labels{
		labelReconcilerType: reconcilerType,
	}
	reconcilerDurationMetric.With(labels).Set(float64(elapsed.Seconds()))
}

var reconcilerSuccessCountMetric = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Subsystem: DubFleetManager,
		Name:      ReconcilerSuccessCount,
		Help:      "count of success operations of the backgroup reconcilers",
	}, ReconcilerMetricsLabels)

func IncreaseReconcilerSuccessCount(reconcilerType string) {
	labels := prometheus.Labels{
		labelReconcilerType: reconcilerType,
	}
	reconcilerSuccessCountMetric.With(labels).Inc()
}

var reconcilerFailureCountMetric = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Subsystem: DubFleetManager,
		Name:      ReconcilerFailureCount,
		Help:      "count of failed operations of the backgroup reconcilers",
	}, ReconcilerMetricsLabels)

func IncreaseReconcilerFailureCount(reconcilerType string) {
	labels := prometheus.Labels{
		labelReconcilerType: reconcilerType,
	}
	reconcilerFailureCountMetric.With(labels).Inc()
}

var reconcilerErrorsCountMetric = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Subsystem: DubFleetManager,
		Name:      ReconcilerErrorsCount,
		Help:      "count of errors occured during backgroup reconcilers runs",
	}, ReconcilerMetricsLabels)

func IncreaseReconcilerErrorsCount(reconcilerType string, numOfErr int) {
	labels := prometheus.Labels{
		labelReconcilerType: reconcilerType,
	}
	reconcilerErrorsCountMetric.With(labels).Add(float64(numOfErr))
}

// create a new gaugeVec for the leader worker
var leaderWorkerMetric = prometheus.NewGaugeVec(
	prometheus.GaugeOpts{
		Subsystem: DubFleetManager,
		Name:      LeaderWorker,
		Help:      "metrics to indicate if the current instance is the leader for the worker type",
	}, ReconcilerMetricsLabels)

// SetLeaderWorkerMetric will set the metric value to 1 if the worker is the leader, 0 if the worker is not the leader
func SetLeaderWorkerMetric(workerType string, leader bool) {
	labels := prometheus.Labels{
		labelReconcilerType: workerType,
	}
	val := 0
	if leader {
		val = 1
	}
	leaderWorkerMetric.With(labels).Set(float64(val))
}

// create a new counterVec for database query counts
var databaseQueryCountMetric = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Subsystem: DubFleetManager,
		Name:      DatabaseQueryCount,
		Help:      "number of database query sent",
	},
	databaseMetricsLabels,
)

// IncreaseDatabaseQueryCount Increase the database query count metric with the query status
func IncreaseDatabaseQueryCount(status string, queryType string) {
	labels := prometheus.Labels{
		LabelStatus:            status,
		labelDatabaseQueryType: queryType,
	}
	databaseQueryCountMetric.With(labels).Inc()
}

// create a new histogramVec for database query durations
var databaseQueryDurationMetric = prometheus.NewHistogramVec(
	prometheus.HistogramOpts{
		Subsystem: DubFleetManager,
		Name:      DatabaseQueryDuration,
		Help:      "Database query duration in milliseconds.",
		Buckets: []float64{
			1.0,
			30.0,
			60.0,
			120.0,
			150.0,
			180.0,
			210.0,
			240.0,
			270.0,
			300.0,
			330.0,
			360.0,
			390.0,
			420.0,
			450.0,
			480.0,
			510.0,
			540.0,
			570.0,
			600.0,
			900.0,
			1200.0,
			1800.0,
			2400.0,
			3600.0,
			4800.0,
			7200.0,
		},
	},
	databaseMetricsLabels,
)

// UpdateDatabaseQueryDurationMetric Update the database query duration metric with the following labels:
//   - status: (i.e. "success" or "failure")
//   - queryType: type of the query
func UpdateDatabaseQueryDurationMetric(status string, queryType string, elapsed time.Duration) {
	labels := prometheus.Labels{
		LabelStatus:            status,
		labelDatabaseQueryType: queryType,
	}
	databaseQueryDurationMetric.With(labels).Observe(float64(elapsed.Milliseconds()))
}

var vaultServiceTotalCountMetric = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Subsystem: DubFleetManager,
		Name:      VaultServiceTotalCount,
		Help:      "count of operations executed against the vault service",
	}, vaultMetricsLabels)

func IncreaseVaultServiceTotalCount(operation string) {
	labels := prometheus.Labels{
		labelOperation: operation,
	}
	vaultServiceTotalCountMetric.With(labels).Inc()
}

var vaultServiceSuccessCountMetric = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Subsystem: DubFleetManager,
		Name:      VaultServiceSuccessCount,
		Help:      "count of successful operations executed against the vault service",
	}, vaultMetricsLabels)

func IncreaseVaultServiceSuccessCount(operation string) {
	labels := prometheus.Labels{
		labelOperation: operation,
	}
	vaultServiceSuccessCountMetric.With(labels).Inc()
}

var vaultServiceFailureCountMetric = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Subsystem: DubFleetManager,
		Name:      VaultServiceFailureCount,
		Help:      "count of failed operations executed against the vault service",
	}, vaultMetricsLabels)

func IncreaseVaultServiceFailureCount(operation string) {
	labels := prometheus.Labels{
		labelOperation: operation,
	}
	vaultServiceFailureCountMetric.With(labels).Inc()
}

var vaultServiceErrorsCountMetric = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Subsystem: DubFleetManager,
		Name:      VaultServiceErrorsCount,
		Help:      "count of errors occured when executing operations against the vault service",
	}, vaultMetricsLabels)

func IncreaseVaultServiceErrorsCount(operation string) {
	labels := prometheus.Labels{
		labelOperation: operation,
	}
	vaultServiceErrorsCountMetric.With(labels).Inc()
}

// create a new counterVec for API calls
var apiCallsCountMetric = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Subsystem: DubFleetManager,
		Name:      APICallsCount,
		Help:      "number of API calls",
	},
	apiCallsMetricsLabels,
)

// IncreaseAPICallsCountMetric - increase counter for the apiCallsCountMetric
func IncreaseAPICallsCountMetric(method string, path string, code string) {
	labels := prometheus.Labels{
		labelMethod: method,
		labelPath:   path,
		labelCode:   code,
	}
	apiCallsCountMetric.With(labels).Inc()
}

// create a new histogramVec for API call durations
var apiCallsDurationMetric = prometheus.NewHistogramVec(
	prometheus.HistogramOpts{
		Subsystem: DubFleetManager,
		Name:      APICallsDuration,
		Help:      "API call duration in seconds.",
		Buckets: []float64{
			0.1,
			0.25,
			0.5,
			1.0,
			2.5,
			5.0,
			10.0,
			30.0,
		},
	},
	apiCallsMetricsLabels,
)

// UpdateAPICallDurationMetric records the duration of an API call
func UpdateAPICallDurationMetric(method string, path string, code string, elapsed time.Duration) {
	labels := prometheus.Labels{
		labelMethod: method,
		labelPath:   path,
		labelCode:   code,
	}
	apiCallsDurationMetric.With(labels).Observe(elapsed.Seconds())
}

// register the metric(s)
func init() {
	prometheus.MustRegister(requestRepositoryCreationDurationMetric)
	prometheus.MustRegister(requestPullRequestOpenDurationMetric)
	prometheus.MustRegister(repositoryOperationsSuccessCountMetric)
	prometheus.MustRegister(repositoryOperationsTotalCountMetric)
	prometheus.MustRegister(repositoryStatusSinceCreatedMetric)
	prometheus.MustRegister(repositoryStatusCountMetric)
	prometheus.MustRegister(updateRunStatusCountMetric)
	prometheus.MustRegister(agentClusterStatusCountMetric)
	prometheus.MustRegister(updateRunOperationsSuccessCountMetric)
	prometheus.MustRegister(updateRunOperationsTotalCountMetric)
	prometheus.MustRegister(agentClusterOperationsSuccessCountMetric)
	prometheus.MustRegister(agentClusterOperationsTotalCountMetric)
	prometheus.MustRegister(registryLookupCountMetric)
	prometheus.MustRegister(registryLookupDurationMetric)
	prometheus.MustRegister(forgeRequestCountMetric)
	prometheus.MustRegister(forgeRequestDurationMetric)
	prometheus.MustRegister(reconcilerDurationMetric)
	prometheus.MustRegister(reconcilerSuccessCountMetric)
	prometheus.MustRegister(reconcilerFailureCountMetric)
	prometheus.MustRegister(reconcilerErrorsCountMetric)
	prometheus.MustRegister(leaderWorkerMetric)
	prometheus.MustRegister(databaseQueryCountMetric)
	prometheus.MustRegister(databaseQueryDurationMetric)
	prometheus.MustRegister(vaultServiceTotalCountMetric)
	prometheus.MustRegister(vaultServiceSuccessCountMetric)
	prometheus.MustRegister(vaultServiceFailureCountMetric)
	prometheus.MustRegister(vaultServiceErrorsCountMetric)
	prometheus.MustRegister(apiCallsCountMetric)
	prometheus.MustRegister(apiCallsDurationMetric)
}

// ResetMetricsForRepositoryManagers will reset the metrics for the repository manager workers
func ResetMetricsForRepositoryManagers() {
	repositoryStatusSinceCreatedMetric.Reset()
	repositoryStatusCountMetric.Reset()
}

// ResetMetricsForUpdateRunManagers will reset the metrics for the update run workers
func ResetMetricsForUpdateRunManagers() {
	updateRunStatusCountMetric.Reset()
}

// ResetMetricsForAgentClusterManagers will reset the metrics for the agent cluster worker
func ResetMetricsForAgentClusterManagers() {
	agentClusterStatusCountMetric.Reset()
}

// ResetMetricsForReconcilers will reset the metrics related to the reconcilers
func ResetMetricsForReconcilers() {
	reconcilerDurationMetric.Reset()
	reconcilerSuccessCountMetric.Reset()
	reconcilerFailureCountMetric.Reset()
	reconcilerErrorsCountMetric.Reset()
}

// ResetMetricsForVaultService will reset the metrics related to the vault service
func ResetMetricsForVaultService() {
	vaultServiceTotalCountMetric.Reset()
	vaultServiceSuccessCountMetric.Reset()
	vaultServiceFailureCountMetric.Reset()
	vaultServiceErrorsCountMetric.Reset()
}

// Reset the metrics we have defined. It is mainly used for testing.
func Reset() {
	requestRepositoryCreationDurationMetric.Reset()
	requestPullRequestOpenDurationMetric.Reset()
	repositoryOperationsSuccessCountMetric.Reset()
	repositoryOperationsTotalCountMetric.Reset()
	repositoryStatusSinceCreatedMetric.Reset()
	repositoryStatusCountMetric.Reset()
	updateRunStatusCountMetric.Reset()
	agentClusterStatusCountMetric.Reset()
	updateRunOperationsSuccessCountMetric.Reset()
	updateRunOperationsTotalCountMetric.Reset()
	agentClusterOperationsSuccessCountMetric.Reset()
	agentClusterOperationsTotalCountMetric.Reset()
	registryLookupCountMetric.Reset()
	registryLookupDurationMetric.Reset()
	forgeRequestCountMetric.Reset()
	forgeRequestDurationMetric.Reset()
	reconcilerDurationMetric.Reset()
	reconcilerSuccessCountMetric.Reset()
	reconcilerFailureCountMetric.Reset()
	reconcilerErrorsCountMetric.Reset()
	leaderWorkerMetric.Reset()
	databaseQueryCountMetric.Reset()
	databaseQueryDurationMetric.Reset()
	vaultServiceTotalCountMetric.Reset()
	vaultServiceSuccessCountMetric.Reset()
	vaultServiceFailureCountMetric.Reset()
	vaultServiceErrorsCountMetric.Reset()
	apiCallsCountMetric.Reset()
	apiCallsDurationMetric.Reset()
}
