package handlers

import (
	"net/http"

	"github.com/d8ff42ce19a3b0e1c44a/dub-fleet-manager/internal/depbot/compat"
	"github.com/d8ff42ce19a3b0e1c44a/dub-fleet-manager/internal/depbot/internal/presenters"
	"github.com/d8ff42ce19a3b0e1c44a/dub-fleet-manager/internal/depbot/internal/services"
	"github.com/d8ff42ce19a3b0e1c44a/dub-fleet-manager/pkg/errors"
	"github.com/d8ff42ce19a3b0e1c44a/dub-fleet-manager/pkg/handlers"
	coreServices "github.com/d8ff42ce19a3b0e1c44a/dub-fleet-manager/pkg/services"
	"github.com/gorilla/mux"
)

type updateRunHandler struct {
	service           services.UpdateRunService
	repositoryService services.RepositoryService
}

func NewUpdateRunHandler(service services.UpdateRunService, repositoryService services.RepositoryService) *updateRunHandler {
	return &updateRunHandler{
		service:           service,
		repositoryService: repositoryService,
	}
}

// List serves the update runs of a repository the caller can see. The
// repository lookup carries the permission check, a foreign repository is a
// 404 before any run is read.
func (h updateRunHandler) List(w http.ResponseWriter, r *http.Request) {
	cfg := &handlers.HandlerConfig{
		Action: func() (interface{}, *errors.ServiceError) {
			id := mux.Vars(r)["id"]
			ctx := r.Context()

			repositoryRequest, err := h.repositoryService.Get(ctx, id)
			if err != nil {
				return nil, err
			}

			listArgs := coreServices.NewListArguments(r.URL.Query())

			updateRuns, paging, err := h.service.List(repositoryRequest.ID, listArgs)
			if err != nil {
				return nil, err
			}

			updateRunList := compat.UpdateRunList{
				Kind:  "UpdateRunList",
				Page:  int32(paging.Page),
				Size:  int32(paging.Size),
				Total: int32(paging.Total),
				Items: []compat.UpdateRun{},
			}

			for _, updateRun := range updateRuns {
				converted := presenters.PresentUpdateRun(updateRun)
				updateRunList.Items = append(updateRunList.Items, converted)
			}

			return updateRunList, nil
		},
	}

	handlers.HandleList(w, r, cfg)
}

// Get serves one update run, scoped through its repository
func (h updateRunHandler) Get(w http.ResponseWriter, r *http.Request) {
	cfg := &handlers.HandlerConfig{
		Action: func() (interface{}, *errors.ServiceError) {
			id := mux.Vars(r)["id"]
			runID := mux.Vars(r)["run_id"]
			ctx := r.Context()

			repositoryRequest, err := h.repositoryService.Get(ctx, id)
			if err != nil {
				return nil, err
			}

			updateRun, err := h.service.GetById(runID)
			if err != nil {
				return nil, err
			}
			if updateRun.RepositoryID != repositoryRequest.ID {
				return nil, errors.NotFound("update run with id='%s' not found", runID)
			}
			return presenters.PresentUpdateRun(updateRun), nil
		},
	}
	handlers.HandleGet(w, r, cfg)
}
