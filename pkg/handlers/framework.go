package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/d8ff42ce19a3b0e1c44a/dub-fleet-manager/internal/depbot/compat"
	"github.com/d8ff42ce19a3b0e1c44a/dub-fleet-manager/pkg/errors"
	"github.com/d8ff42ce19a3b0e1c44a/dub-fleet-manager/pkg/shared"
)

type Validate func() *errors.ServiceError

type HandlerConfig struct {
	// MarshalInto is decoded from the request body before validation runs
	MarshalInto  interface{}
	Validate     []Validate
	Action       HandlerAction
	ErrorHandler HandlerErrorHandler
}

type HandlerAction func() (interface{}, *errors.ServiceError)

type HandlerErrorHandler func(r *http.Request, w http.ResponseWriter, cfg *HandlerConfig, err *errors.ServiceError)

type RestHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	Create(w http.ResponseWriter, r *http.Request)
	Patch(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

func errorHandler(r *http.Request, w http.ResponseWriter, cfg *HandlerConfig, err *errors.ServiceError) {
	if cfg.ErrorHandler != nil {
		cfg.ErrorHandler(r, w, cfg, err)
	} else {
		shared.HandleError(r, w, err)
	}
}

// Handle decodes the request body into cfg.MarshalInto, runs the validators
// and writes the action result with the given status code.
func Handle(w http.ResponseWriter, r *http.Request, cfg *HandlerConfig, httpStatus int) {
	if cfg.MarshalInto != nil {
		err := json.NewDecoder(r.Body).Decode(&cfg.MarshalInto)
		if err != nil {
			errorHandler(r, w, cfg, errors.MalformedRequest("Unable to read request body: %s", err))
			return
		}
	}

	for _, v := range cfg.Validate {
		err := v()
		if err != nil {
			errorHandler(r, w, cfg, err)
			return
		}
	}

	result, serviceErr := cfg.Action()
	if serviceErr != nil {
		errorHandler(r, w, cfg, serviceErr)
		return
	}

	shared.WriteJSONResponse(w, httpStatus, result)
}

func HandleDelete(w http.ResponseWriter, r *http.Request, cfg *HandlerConfig, httpStatus int) {
	for _, v := range cfg.Validate {
		err := v()
		if err != nil {
			errorHandler(r, w, cfg, err)
			return
		}
	}

	result, serviceErr := cfg.Action()
	if serviceErr != nil {
		errorHandler(r, w, cfg, serviceErr)
		return
	}

	shared.WriteJSONResponse(w, httpStatus, result)
}

func HandleGet(w http.ResponseWriter, r *http.Request, cfg *HandlerConfig) {
	for _, v := range cfg.Validate {
		err := v()
		if err != nil {
			errorHandler(r, w, cfg, err)
			return
		}
	}

	result, serviceErr := cfg.Action()
	if serviceErr != nil {
		errorHandler(r, w, cfg, serviceErr)
		return
	}

	shared.WriteJSONResponse(w, http.StatusOK, result)
}

func HandleList(w http.ResponseWriter, r *http.Request, cfg *HandlerConfig) {
	for _, v := range cfg.Validate {
		err := v()
		if err != nil {
			errorHandler(r, w, cfg, err)
			return
		}
	}

	results, serviceError := cfg.Action()
	if serviceError != nil {
		errorHandler(r, w, cfg, serviceError)
		return
	}

	shared.WriteJSONResponse(w, http.StatusOK, results)
}

func ConvertToPrivateError(e compat.Error) compat.PrivateError {
	return compat.PrivateError{
		Id:          e.Id,
		Kind:        e.Kind,
		Href:        e.Href,
		Code:        e.Code,
		Reason:      e.Reason,
		OperationId: e.OperationId,
	}
}
