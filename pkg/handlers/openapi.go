package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/d8ff42ce19a3b0e1c44a/dub-fleet-manager/pkg/errors"
	"github.com/d8ff42ce19a3b0e1c44a/dub-fleet-manager/pkg/shared"
)

type openAPIHandler struct {
	OpenAPIDefinitions []byte
}

func NewOpenAPIHandler(openAPIDefinitions []byte) *openAPIHandler {
	return &openAPIHandler{openAPIDefinitions}
}

func (h openAPIHandler) Get(w http.ResponseWriter, r *http.Request) {
	var spec interface{}
	if err := json.Unmarshal(h.OpenAPIDefinitions, &spec); err != nil {
		shared.HandleError(r, w, errors.GeneralError("failed to unmarshal openapi definitions: %v", err))
		return
	}
	shared.WriteJSONResponse(w, http.StatusOK, spec)
}
