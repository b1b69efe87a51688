package services

import (
	"context"
	"reflect"
	"testing"

	"github.com/onsi/gomega"
	mocket "github.com/selvatico/go-mocket"
	"gorm.io/gorm"

	"github.com/d8ff42ce19a3b0e1c44a/dub-fleet-manager/internal/depbot/constants"
	"github.com/d8ff42ce19a3b0e1c44a/dub-fleet-manager/internal/depbot/internal/api/dbapi"
	"github.com/d8ff42ce19a3b0e1c44a/dub-fleet-manager/internal/depbot/internal/config"
	"github.com/d8ff42ce19a3b0e1c44a/dub-fleet-manager/internal/depbot/internal/converters"
	"github.com/d8ff42ce19a3b0e1c44a/dub-fleet-manager/pkg/api"
	"github.com/d8ff42ce19a3b0e1c44a/dub-fleet-manager/pkg/db"
)

const testClusterID = "cluster-id"

func buildAgentCluster(modifyFn func(agentCluster *dbapi.AgentCluster)) *dbapi.AgentCluster {
	agentCluster := &dbapi.AgentCluster{
		Meta: api.Meta{
			ID:        testID,
			DeletedAt: gorm.DeletedAt{Valid: true},
		},
		ClusterID:          testClusterID,
		Status:             constants.AgentClusterAccepted.String(),
		MaxRepositories:    5,
		ActiveRepositories: 0,
	}
	if modifyFn != nil {
		modifyFn(agentCluster)
	}
	return agentCluster
}

func Test_agentClusterService_FindByClusterID(t *testing.T) {
	type fields struct {
		connectionFactory *db.ConnectionFactory
	}
	type args struct {
		clusterID string
	}
	tests := []struct {
		name    string
		fields  fields
		args    args
		setupFn func()
		want    *dbapi.AgentCluster
		wantErr bool
	}{
		{
			name: "error when clusterID is undefined",
			fields: fields{
				connectionFactory: db.NewMockConnectionFactory(nil),
			},
			args: args{
				clusterID: "",
			},
			wantErr: true,
		},
		{
			name: "error when sql where query fails",
			fields: fields{
				connectionFactory: db.NewMockConnectionFactory(nil),
			},
			args: args{
				clusterID: testClusterID,
			},
			wantErr: true,
			setupFn: func() {
				mocket.Catcher.Reset().NewMock().WithQuery("SELECT").WithQueryException()
			},
		},
		{
			name: "nil and no error when the cluster does not exist",
			fields: fields{
				connectionFactory: db.NewMockConnectionFactory(nil),
			},
			args: args{
				clusterID: testClusterID,
			},
			want: nil,
			setupFn: func() {
				mocket.Catcher.Reset()
			},
		},
		{
			name: "successful output",
			fields: fields{
				connectionFactory: db.NewMockConnectionFactory(nil),
			},
			args: args{
				clusterID: testClusterID,
			},
			want: buildAgentCluster(nil),
			setupFn: func() {
				mocket.Catcher.Reset().NewMock().
					WithQuery(`SELECT * FROM "agent_clusters" WHERE cluster_id = $1`).
					WithArgs(testClusterID).
					WithReply(converters.ConvertAgentCluster(buildAgentCluster(nil)))
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.setupFn != nil {
				tt.setupFn()
			}
			k := &agentClusterService{
				connectionFactory: tt.fields.connectionFactory,
			}
			got, err := k.FindByClusterID(tt.args.clusterID)
			if (err != nil) != tt.wantErr {
				t.Errorf("FindByClusterID() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("FindByClusterID() got = %v, want %v", got, tt.want)
			}
		})
	}
}

func Test_agentClusterService_UpdateAgentClusterStatus(t *testing.T) {
	type fields struct {
		connectionFactory *db.ConnectionFactory
	}
	type args struct {
		clusterID string
		status    *dbapi.AgentClusterStatus
	}

	readyConditions := []dbapi.AgentClusterStatusCondition{
		{Type: "Ready", Status: "True"},
	}

	tests := []struct {
		name       string
		fields     fields
		args       args
		setupFn    func()
		wantStatus string
		wantErr    bool
	}{
		{
			name: "error when the cluster is unknown",
			fields: fields{
				connectionFactory: db.NewMockConnectionFactory(nil),
			},
			args: args{
				clusterID: testClusterID,
				status:    &dbapi.AgentClusterStatus{Conditions: readyConditions},
			},
			wantErr: true,
			setupFn: func() {
				mocket.Catcher.Reset()
			},
		},
		{
			name: "report of a deprovisioning cluster is ignored",
			fields: fields{
				connectionFactory: db.NewMockConnectionFactory(nil),
			},
			args: args{
				clusterID: testClusterID,
				status:    &dbapi.AgentClusterStatus{Conditions: readyConditions},
			},
			wantStatus: constants.AgentClusterDeprovisioning.String(),
			setupFn: func() {
				mocket.Catcher.Reset().NewMock().
					WithQuery(`SELECT * FROM "agent_clusters" WHERE cluster_id = $1`).
					WithReply(converters.ConvertAgentCluster(buildAgentCluster(func(agentCluster *dbapi.AgentCluster) {
						agentCluster.Status = constants.AgentClusterDeprovisioning.String()
					})))
			},
		},
		{
			name: "ready heartbeat promotes an accepted cluster",
			fields: fields{
				connectionFactory: db.NewMockConnectionFactory(nil),
			},
			args: args{
				clusterID: testClusterID,
				status: &dbapi.AgentClusterStatus{
					Conditions:         readyConditions,
					AgentVersion:       "0.3.0",
					MaxRepositories:    5,
					ActiveRepositories: 2,
				},
			},
			wantStatus: constants.AgentClusterReady.String(),
			setupFn: func() {
				mocket.Catcher.Reset().NewMock().
					WithQuery(`SELECT * FROM "agent_clusters" WHERE cluster_id = $1`).
					WithReply(converters.ConvertAgentCluster(buildAgentCluster(nil)))
				mocket.Catcher.NewMock().WithQuery(`UPDATE "agent_clusters"`)
			},
		},
		{
			name: "heartbeat with exhausted capacity marks the cluster full",
			fields: fields{
				connectionFactory: db.NewMockConnectionFactory(nil),
			},
			args: args{
				clusterID: testClusterID,
				status: &dbapi.AgentClusterStatus{
					Conditions:         readyConditions,
					MaxRepositories:    2,
					ActiveRepositories: 2,
				},
			},
			wantStatus: constants.AgentClusterFull.String(),
			setupFn: func() {
				mocket.Catcher.Reset().NewMock().
					WithQuery(`SELECT * FROM "agent_clusters" WHERE cluster_id = $1`).
					WithReply(converters.ConvertAgentCluster(buildAgentCluster(func(agentCluster *dbapi.AgentCluster) {
						agentCluster.Status = constants.AgentClusterReady.String()
					})))
			},
		},
		{
			name: "cluster stays provisioning until the operator reports ready",
			fields: fields{
				connectionFactory: db.NewMockConnectionFactory(nil),
			},
			args: args{
				clusterID: testClusterID,
				status:    &dbapi.AgentClusterStatus{},
			},
			wantStatus: constants.AgentClusterProvisioning.String(),
			setupFn: func() {
				mocket.Catcher.Reset().NewMock().
					WithQuery(`SELECT * FROM "agent_clusters" WHERE cluster_id = $1`).
					WithReply(converters.ConvertAgentCluster(buildAgentCluster(nil)))
			},
		},
		{
			name: "error when the ready condition does not parse",
			fields: fields{
				connectionFactory: db.NewMockConnectionFactory(nil),
			},
			args: args{
				clusterID: testClusterID,
				status: &dbapi.AgentClusterStatus{
					Conditions: []dbapi.AgentClusterStatusCondition{
						{Type: "Ready", Status: "Installing"},
					},
				},
			},
			wantErr: true,
			setupFn: func() {
				mocket.Catcher.Reset().NewMock().
					WithQuery(`SELECT * FROM "agent_clusters" WHERE cluster_id = $1`).
					WithReply(converters.ConvertAgentCluster(buildAgentCluster(nil)))
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.setupFn != nil {
				tt.setupFn()
			}
			k := &agentClusterService{
				connectionFactory:  tt.fields.connectionFactory,
				agentClusterConfig: config.NewAgentClusterConfig(),
			}
			got, err := k.UpdateAgentClusterStatus(context.Background(), tt.args.clusterID, tt.args.status)
			if (err != nil) != tt.wantErr {
				t.Errorf("UpdateAgentClusterStatus() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if tt.wantErr {
				return
			}
			if got.Status != tt.wantStatus {
				t.Errorf("UpdateAgentClusterStatus() status = %v, want %v", got.Status, tt.wantStatus)
			}
		})
	}
}

func Test_agentClusterService_FindAvailableCluster(t *testing.T) {
	g := gomega.NewWithT(t)

	unschedulable := buildAgentCluster(func(agentCluster *dbapi.AgentCluster) {
		agentCluster.Meta.ID = "unschedulable"
		agentCluster.ClusterID = "unschedulable-cluster"
		agentCluster.Status = constants.AgentClusterReady.String()
	})
	full := buildAgentCluster(func(agentCluster *dbapi.AgentCluster) {
		agentCluster.Meta.ID = "full"
		agentCluster.ClusterID = "full-cluster"
		agentCluster.Status = constants.AgentClusterReady.String()
		agentCluster.MaxRepositories = 2
		agentCluster.ActiveRepositories = 2
	})
	available := buildAgentCluster(func(agentCluster *dbapi.AgentCluster) {
		agentCluster.Meta.ID = "available"
		agentCluster.ClusterID = "available-cluster"
		agentCluster.Status = constants.AgentClusterReady.String()
		agentCluster.ActiveRepositories = 1
	})

	agentClusterConfig := config.NewAgentClusterConfig()
	agentClusterConfig.ClusterConfig = config.NewClusterConfig(config.ClusterList{
		{ClusterID: "unschedulable-cluster", Schedulable: false},
	})

	k := &agentClusterService{
		connectionFactory:  db.NewMockConnectionFactory(nil),
		agentClusterConfig: agentClusterConfig,
	}

	mocket.Catcher.Reset().NewMock().
		WithQuery(`SELECT * FROM "agent_clusters" WHERE status = $1`).
		WithReply(converters.ConvertAgentClusterList(dbapi.AgentClusterList{unschedulable, full, available}))

	got, err := k.FindAvailableCluster()
	g.Expect(err).To(gomega.BeNil())
	g.Expect(got).ToNot(gomega.BeNil())
	g.Expect(got.ID).To(gomega.Equal("available"))

	// a fleet with no spare capacity yields no cluster and no error
	mocket.Catcher.Reset().NewMock().
		WithQuery(`SELECT * FROM "agent_clusters" WHERE status = $1`).
		WithReply(converters.ConvertAgentClusterList(dbapi.AgentClusterList{unschedulable, full}))

	got, err = k.FindAvailableCluster()
	g.Expect(err).To(gomega.BeNil())
	g.Expect(got).To(gomega.BeNil())

	mocket.Catcher.Reset().NewMock().WithQuery("SELECT").WithQueryException()

	_, err = k.FindAvailableCluster()
	g.Expect(err).ToNot(gomega.BeNil())
}

func Test_agentClusterService_RegisterAgentCluster(t *testing.T) {
	type fields struct {
		connectionFactory *db.ConnectionFactory
	}
	tests := []struct {
		name       string
		fields     fields
		setupFn    func()
		wantErr    bool
		wantStatus string
	}{
		{
			name: "error when sql insert fails",
			fields: fields{
				connectionFactory: db.NewMockConnectionFactory(nil),
			},
			wantErr: true,
			setupFn: func() {
				mocket.Catcher.Reset().NewMock().WithQuery("INSERT").WithExecException()
			},
		},
		{
			name: "registered cluster starts accepted",
			fields: fields{
				connectionFactory: db.NewMockConnectionFactory(nil),
			},
			wantStatus: constants.AgentClusterAccepted.String(),
			setupFn: func() {
				mocket.Catcher.Reset().NewMock().WithQuery("INSERT")
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.setupFn != nil {
				tt.setupFn()
			}
			k := &agentClusterService{
				connectionFactory: tt.fields.connectionFactory,
			}
			agentCluster := &dbapi.AgentCluster{ClusterID: testClusterID}
			err := k.RegisterAgentCluster(agentCluster)
			if (err != nil) != tt.wantErr {
				t.Errorf("RegisterAgentCluster() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if !tt.wantErr && agentCluster.Status != tt.wantStatus {
				t.Errorf("RegisterAgentCluster() status = %v, want %v", agentCluster.Status, tt.wantStatus)
			}
		})
	}
}

func Test_agentClusterService_CountByStatus(t *testing.T) {
	type fields struct {
		connectionFactory *db.ConnectionFactory
	}
	type args struct {
		status []constants.AgentClusterStatus
	}
	tests := []struct {
		name      string
		fields    fields
		args      args
		wantErr   bool
		want      []AgentClusterStatusCount
		setupFunc func()
	}{
		{
			name:   "should return the counts of agent clusters in different status",
			fields: fields{connectionFactory: db.NewMockConnectionFactory(nil)},
			args: args{
				status: []constants.AgentClusterStatus{constants.AgentClusterAccepted, constants.AgentClusterReady, constants.AgentClusterFull},
			},
			wantErr: false,
			setupFunc: func() {
				counters := []map[string]interface{}{
					{
						"status": "cluster_accepted",
						"count":  1,
					},
					{
						"status": "ready",
						"count":  2,
					},
				}
				mocket.Catcher.Reset().NewMock().WithQuery(`SELECT`).WithReply(counters)
			},
			want: []AgentClusterStatusCount{{
				Status: constants.AgentClusterAccepted,
				Count:  1,
			}, {
				Status: constants.AgentClusterReady,
				Count:  2,
			}, {
				Status: constants.AgentClusterFull,
				Count:  0,
			}},
		},
		{
			name:   "should return error when db query fails",
			fields: fields{connectionFactory: db.NewMockConnectionFactory(nil)},
			args: args{
				status: []constants.AgentClusterStatus{constants.AgentClusterReady},
			},
			wantErr: true,
			setupFunc: func() {
				mocket.Catcher.Reset().NewMock().WithQuery(`SELECT`).WithQueryException()
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gomega.RegisterTestingT(t)
			if tt.setupFunc != nil {
				tt.setupFunc()
			}
			k := &agentClusterService{
				connectionFactory: tt.fields.connectionFactory,
			}
			status, err := k.CountByStatus(tt.args.status)
			gomega.Expect(err != nil).To(gomega.Equal(tt.wantErr))
			gomega.Expect(status).To(gomega.Equal(tt.want))
		})
	}
}
