package handlers

import (
	"net/http"

	"github.com/d8ff42ce19a3b0e1c44a/dub-fleet-manager/internal/depbot/compat"
	"github.com/d8ff42ce19a3b0e1c44a/dub-fleet-manager/internal/depbot/internal/presenters"
	"github.com/d8ff42ce19a3b0e1c44a/dub-fleet-manager/internal/depbot/internal/services"
	"github.com/d8ff42ce19a3b0e1c44a/dub-fleet-manager/pkg/errors"
	"github.com/d8ff42ce19a3b0e1c44a/dub-fleet-manager/pkg/handlers"
	coreServices "github.com/d8ff42ce19a3b0e1c44a/dub-fleet-manager/pkg/services"
	"github.com/d8ff42ce19a3b0e1c44a/dub-fleet-manager/pkg/shared"
	"github.com/gorilla/mux"
)

type agentClusterHandler struct {
	service       services.AgentClusterService
	bundleService services.AgentBundleService
}

func NewAgentClusterHandler(service services.AgentClusterService, bundleService services.AgentBundleService) *agentClusterHandler {
	return &agentClusterHandler{
		service:       service,
		bundleService: bundleService,
	}
}

// UpdateAgentClusterStatus digests the agent heartbeat
func (h agentClusterHandler) UpdateAgentClusterStatus(w http.ResponseWriter, r *http.Request) {
	clusterID := mux.Vars(r)["id"]
	var agentClusterUpdateStatusRequest compat.AgentClusterUpdateStatusRequest

	cfg := &handlers.HandlerConfig{
		MarshalInto: &agentClusterUpdateStatusRequest,
		Validate: []handlers.Validate{
			handlers.ValidateLength(&clusterID, "id", &handlers.MinRequiredFieldLength, nil),
		},
		Action: func() (interface{}, *errors.ServiceError) {
			ctx := r.Context()
			status := presenters.ConvertAgentClusterStatus(agentClusterUpdateStatusRequest)
			agentCluster, err := h.service.UpdateAgentClusterStatus(ctx, clusterID, status)
			if err != nil {
				return nil, err
			}
			return presenters.PresentAgentCluster(agentCluster), nil
		},
	}
	handlers.Handle(w, r, cfg, http.StatusOK)
}

func (h agentClusterHandler) Get(w http.ResponseWriter, r *http.Request) {
	cfg := &handlers.HandlerConfig{
		Action: func() (interface{}, *errors.ServiceError) {
			id := mux.Vars(r)["id"]
			agentCluster, err := h.service.Get(id)
			if err != nil {
				return nil, err
			}
			return presenters.PresentAgentCluster(agentCluster), nil
		},
	}
	handlers.HandleGet(w, r, cfg)
}

func (h agentClusterHandler) List(w http.ResponseWriter, r *http.Request) {
	cfg := &handlers.HandlerConfig{
		Action: func() (interface{}, *errors.ServiceError) {
			listArgs := coreServices.NewListArguments(r.URL.Query())

			if err := listArgs.Validate(); err != nil {
				return nil, errors.NewWithCause(errors.ErrorMalformedRequest, err, "unable to list agent clusters: %s", err.Error())
			}

			agentClusters, paging, err := h.service.List(listArgs)
			if err != nil {
				return nil, err
			}

			agentClusterList := compat.AgentClusterList{
				Kind:  "AgentClusterList",
				Page:  int32(paging.Page),
				Size:  int32(paging.Size),
				Total: int32(paging.Total),
				Items: []compat.AgentCluster{},
			}
			for _, agentCluster := range agentClusters {
				agentClusterList.Items = append(agentClusterList.Items, presenters.PresentAgentCluster(agentCluster))
			}
			return agentClusterList, nil
		},
	}
	handlers.HandleList(w, r, cfg)
}

// GetResources serves the rendered Kubernetes install bundle of the agent
// cluster as a multi document YAML stream
func (h agentClusterHandler) GetResources(w http.ResponseWriter, r *http.Request) {
	clusterID := mux.Vars(r)["id"]
	agentCluster, svcErr := h.service.FindByClusterID(clusterID)
	if svcErr != nil {
		shared.HandleError(r, w, svcErr)
		return
	}
	if agentCluster == nil {
		shared.HandleError(r, w, errors.NotFound("agent cluster with cluster id '%s' not found", clusterID))
		return
	}
	resources, svcErr := h.bundleService.RenderResources(agentCluster)
	if svcErr != nil {
		shared.HandleError(r, w, svcErr)
		return
	}
	rendered, err := services.MarshalResourceSet(resources)
	if err != nil {
		shared.HandleError(r, w, errors.GeneralError("unable to render agent cluster resources: %v", err))
		return
	}
	w.Header().Set("Content-Type", "application/yaml")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(rendered)
}
