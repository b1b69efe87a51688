package db

import (
	"fmt"
	"net/http"

	"github.com/d8ff42ce19a3b0e1c44a/dub-fleet-manager/pkg/constants"
	"github.com/d8ff42ce19a3b0e1c44a/dub-fleet-manager/pkg/errors"
	"github.com/d8ff42ce19a3b0e1c44a/dub-fleet-manager/pkg/logger"
	"github.com/d8ff42ce19a3b0e1c44a/dub-fleet-manager/pkg/shared"

	"github.com/getsentry/sentry-go"
	"github.com/gorilla/mux"
)

// TransactionMiddleware creates a new HTTP middleware that begins a database transaction
// and stores it in the request context.
func TransactionMiddleware(db *ConnectionFactory) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return transactionMiddleware(db, next)
	}
}

func transactionMiddleware(db *ConnectionFactory, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Create a new Context with the transaction stored in it.
		ctx, err := db.NewContext(r.Context())
		if err != nil {
			ulog := logger.NewUHCLogger(ctx)
			ulog.Errorf("Could not create transaction: %v", err)
			// use default error to avoid exposing internals to users
			serviceErr := errors.GeneralError("")
			operationID := logger.GetOperationID(ctx)
			shared.WriteJSONResponse(w, serviceErr.HttpCode, serviceErr.AsOpenapiError(operationID, r.RequestURI))
			return
		}

		// Set the value of the request pointer to the value of a new copy of the request with the new context key,vale stored in it
		*r = *r.WithContext(ctx)

		if hub := sentry.GetHubFromContext(ctx); hub != nil {
			hub.ConfigureScope(func(scope *sentry.Scope) {
				txid := ctx.Value(constants.TransactionIDkey).(int64)
				scope.SetTag("db_transaction_id", fmt.Sprintf("%d", txid))
			})
		}

		// Returned from handlers and resolve transactions.
		defer func() {
			if err := Resolve(r.Context()); err != nil {
				logger.NewUHCLogger(r.Context()).Errorf("%s", err.Error())
			}
		}()

		// Continue handling requests.
		next.ServeHTTP(w, r)
	})
}
