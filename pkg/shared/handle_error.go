package shared

import (
	"net/http"

	"github.com/d8ff42ce19a3b0e1c44a/dub-fleet-manager/pkg/errors"
	"github.com/d8ff42ce19a3b0e1c44a/dub-fleet-manager/pkg/logger"
)

// HandleError handles a service error by returning an appropriate HTTP response with the error reason
func HandleError(r *http.Request, w http.ResponseWriter, err *errors.ServiceError) {
	ulog := logger.NewUHCLogger(r.Context())
	operationID := logger.GetOperationID(r.Context())
	// If this is a 400 class error, log as info. Otherwise log as error.
	if err.HttpCode >= 400 && err.HttpCode <= 499 {
		ulog.Infof(err.Error())
	} else {
		ulog.Error(err)
	}

	WriteJSONResponse(w, err.HttpCode, err.AsOpenapiError(operationID, r.RequestURI))
}
