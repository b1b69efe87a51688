package errors

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/d8ff42ce19a3b0e1c44a/dub-fleet-manager/internal/depbot/compat"
	"github.com/golang/glog"
	"github.com/pkg/errors"
)

const (
	ERROR_CODE_PREFIX = "DEPBOT-MGMT"

	// HREF for API errors
	ERROR_HREF = "/api/depbot_mgmt/v1/errors/"

	// Forbidden occurs when a user is not allowed to access the service
	ErrorForbidden       ServiceErrorCode = 4
	ErrorForbiddenReason string           = "Forbidden to perform this action"

	// Forbidden occurs when a user or organisation has reached maximum number of allowed instances
	ErrorMaxAllowedInstanceReached       ServiceErrorCode = 5
	ErrorMaxAllowedInstanceReachedReason string           = "Forbidden to create more instances than the maximum allowed"

	// Conflict occurs when a database constraint is violated
	ErrorConflict       ServiceErrorCode = 6
	ErrorConflictReason string           = "An entity with the specified unique values already exists"

	// NotFound occurs when a record is not found in the database
	ErrorNotFound       ServiceErrorCode = 7
	ErrorNotFoundReason string           = "Resource not found"

	// Validation occurs when an object fails validation
	ErrorValidation       ServiceErrorCode = 8
	ErrorValidationReason string           = "General validation failure"

	// General occurs when an error fails to match any other error code
	ErrorGeneral       ServiceErrorCode = 9
	ErrorGeneralReason string           = "Unspecified error"

	// NotImplemented occurs when an API REST method is not implemented in a handler
	ErrorNotImplemented       ServiceErrorCode = 10
	ErrorNotImplementedReason string           = "HTTP Method not implemented for this endpoint"

	// Unauthorized occurs when the requester is not authorized to perform the specified action
	ErrorUnauthorized       ServiceErrorCode = 11
	ErrorUnauthorizedReason string           = "Account is unauthorized to perform this action"

	// TermsNotAccepted occurs when the user has not accepted the terms of service
	ErrorTermsNotAccepted       ServiceErrorCode = 12
	ErrorTermsNotAcceptedReason string           = "Required terms have not been accepted"

	// Unauthenticated occurs when the provided credentials cannot be validated
	ErrorUnauthenticated       ServiceErrorCode = 15
	ErrorUnauthenticatedReason string           = "Account authentication could not be verified"

	// MalformedRequest occurs when the request body cannot be read
	ErrorMalformedRequest       ServiceErrorCode = 17
	ErrorMalformedRequestReason string           = "Unable to read request body"

	// Bad Request
	ErrorBadRequest       ServiceErrorCode = 21
	ErrorBadRequestReason string           = "Bad request"

	// Invalid Search Query
	ErrorFailedToParseSearch       ServiceErrorCode = 23
	ErrorFailedToParseSearchReason string           = "Failed to parse search query"

	// Invalid query parameters
	ErrorFailedToParseQueryParms       ServiceErrorCode = 24
	ErrorFailedToParseQueryParmsReason string           = "Bad request"

	// Gone
	ErrorGone       ServiceErrorCode = 25
	ErrorGoneReason string           = "Resource gone"

	// Forge provider not supported
	ErrorProviderNotSupported       ServiceErrorCode = 30
	ErrorProviderNotSupportedReason string           = "Provider not supported"

	// Package manager not supported
	ErrorManagerNotSupported       ServiceErrorCode = 31
	ErrorManagerNotSupportedReason string           = "Package manager not supported"

	// Invalid repository name
	ErrorMalformedRepositoryName       ServiceErrorCode = 32
	ErrorMalformedRepositoryNameReason string           = "Repository name is invalid"

	// Minimum field length validation
	ErrorMinimumFieldLength       ServiceErrorCode = 33
	ErrorMinimumFieldLengthReason string           = "Minimum field length not reached"

	// Maximum field length validation
	ErrorMaximumFieldLength       ServiceErrorCode = 34
	ErrorMaximumFieldLengthReason string           = "Maximum field length has been depassed"

	// Repository with the same slug already registered
	ErrorDuplicateRepositoryName       ServiceErrorCode = 36
	ErrorDuplicateRepositoryNameReason string           = "Repository name is already used"

	// Bot configuration document failed schema validation
	ErrorMalformedBotConfig       ServiceErrorCode = 37
	ErrorMalformedBotConfigReason string           = "Bot configuration is invalid"

	// A preset referenced from the extends list does not exist
	ErrorBotConfigPresetNotFound       ServiceErrorCode = 38
	ErrorBotConfigPresetNotFoundReason string           = "Bot configuration preset not found"

	// Preset expansion failed (cycles, depth, remote fetch failures)
	ErrorFailedToResolveBotConfig       ServiceErrorCode = 39
	ErrorFailedToResolveBotConfigReason string           = "Failed to resolve bot configuration"

	// Insufficient quota
	ErrorInsufficientQuota       ServiceErrorCode = 41
	ErrorInsufficientQuotaReason string           = "Insufficient quota"

	// Failed to check quota
	ErrorFailedToCheckQuota       ServiceErrorCode = 42
	ErrorFailedToCheckQuotaReason string           = "Failed to check quota"

	// Synchronous request not supported
	ErrorSyncActionNotSupported       ServiceErrorCode = 103
	ErrorSyncActionNotSupportedReason string           = "Synchronous action is not supported, use async=true parameter"

	// Failed to create sso client
	ErrorFailedToCreateSSOClient       ServiceErrorCode = 106
	ErrorFailedToCreateSSOClientReason string           = "Failed to create dub client in the mas sso"

	// Failed to get sso client secret
	ErrorFailedToGetSSOClientSecret       ServiceErrorCode = 107
	ErrorFailedToGetSSOClientSecretReason string           = "Failed to get dub client secret from the mas sso"

	// Failed to get sso client
	ErrorFailedToGetSSOClient       ServiceErrorCode = 108
	ErrorFailedToGetSSOClientReason string           = "Failed to get dub client from the mas sso"

	// Failed to delete sso client
	ErrorFailedToDeleteSSOClient       ServiceErrorCode = 109
	ErrorFailedToDeleteSSOClientReason string           = "Failed to delete dub client from the mas sso"

	// Failed to create service account
	ErrorFailedToCreateServiceAccount       ServiceErrorCode = 110
	ErrorFailedToCreateServiceAccountReason string           = "Failed to create service account"

	// Failed to get service account
	ErrorFailedToGetServiceAccount       ServiceErrorCode = 111
	ErrorFailedToGetServiceAccountReason string           = "Failed to get service account"

	// Failed to delete service account
	ErrorFailedToDeleteServiceAccount       ServiceErrorCode = 112
	ErrorFailedToDeleteServiceAccountReason string           = "Failed to delete service account"

	// Maximum number of allowed service accounts has been reached
	ErrorMaxLimitForServiceAccountReached       ServiceErrorCode = 113
	ErrorMaxLimitForServiceAccountReachedReason string           = "Max limit for the service account creation has reached"

	// Service account not found
	ErrorServiceAccountNotFound       ServiceErrorCode = 119
	ErrorServiceAccountNotFoundReason string           = "Failed to find service account"

	// Invalid service account name
	ErrorMalformedServiceAccountName       ServiceErrorCode = 120
	ErrorMalformedServiceAccountNameReason string           = "Service account name is invalid"

	// Invalid service account desc
	ErrorMalformedServiceAccountDesc       ServiceErrorCode = 121
	ErrorMalformedServiceAccountDescReason string           = "Service account desc is invalid"

	// Invalid service account id
	ErrorMalformedServiceAccountId       ServiceErrorCode = 122
	ErrorMalformedServiceAccountIdReason string           = "Service account id is invalid"

	// Failed to open an update pull request in the forge
	ErrorFailedToOpenPullRequest       ServiceErrorCode = 123
	ErrorFailedToOpenPullRequestReason string           = "Failed to open update pull request"

	// Failed to query a package registry for release information
	ErrorFailedToQueryRegistry       ServiceErrorCode = 124
	ErrorFailedToQueryRegistryReason string           = "Failed to query package registry"

	// Failure to send an error response (i.e. unable to send error response as the error can't be converted to JSON.)
	ErrorUnableToSendErrorResponse       ServiceErrorCode = 1000
	ErrorUnableToSendErrorResponseReason string           = "An unexpected error happened, please check the log of the service for details"
)

type ServiceErrorCode int

type ServiceErrors []ServiceError

func Find(code ServiceErrorCode) (bool, *ServiceError) {
	for _, err := range Errors() {
		if err.Code == code {
			return true, &err
		}
	}
	return false, nil
}

func Errors() ServiceErrors {
	return ServiceErrors{
		ServiceError{ErrorForbidden, ErrorForbiddenReason, http.StatusForbidden, nil},
		ServiceError{ErrorMaxAllowedInstanceReached, ErrorMaxAllowedInstanceReachedReason, http.StatusForbidden, nil},
		ServiceError{ErrorConflict, ErrorConflictReason, http.StatusConflict, nil},
		ServiceError{ErrorNotFound, ErrorNotFoundReason, http.StatusNotFound, nil},
		ServiceError{ErrorValidation, ErrorValidationReason, http.StatusBadRequest, nil},
		ServiceError{ErrorGeneral, ErrorGeneralReason, http.StatusInternalServerError, nil},
		ServiceError{ErrorNotImplemented, ErrorNotImplementedReason, http.StatusMethodNotAllowed, nil},
		ServiceError{ErrorUnauthorized, ErrorUnauthorizedReason, http.StatusForbidden, nil},
		ServiceError{ErrorTermsNotAccepted, ErrorTermsNotAcceptedReason, http.StatusForbidden, nil},
		ServiceError{ErrorUnauthenticated, ErrorUnauthenticatedReason, http.StatusUnauthorized, nil},
		ServiceError{ErrorMalformedRequest, ErrorMalformedRequestReason, http.StatusBadRequest, nil},
		ServiceError{ErrorBadRequest, ErrorBadRequestReason, http.StatusBadRequest, nil},
		ServiceError{ErrorFailedToParseSearch, ErrorFailedToParseSearchReason, http.StatusBadRequest, nil},
		ServiceError{ErrorFailedToParseQueryParms, ErrorFailedToParseQueryParmsReason, http.StatusBadRequest, nil},
		ServiceError{ErrorGone, ErrorGoneReason, http.StatusGone, nil},
		ServiceError{ErrorProviderNotSupported, ErrorProviderNotSupportedReason, http.StatusBadRequest, nil},
		ServiceError{ErrorManagerNotSupported, ErrorManagerNotSupportedReason, http.StatusBadRequest, nil},
		ServiceError{ErrorMalformedRepositoryName, ErrorMalformedRepositoryNameReason, http.StatusBadRequest, nil},
		ServiceError{ErrorMinimumFieldLength, ErrorMinimumFieldLengthReason, http.StatusBadRequest, nil},
		ServiceError{ErrorMaximumFieldLength, ErrorMaximumFieldLengthReason, http.StatusBadRequest, nil},
		ServiceError{ErrorDuplicateRepositoryName, ErrorDuplicateRepositoryNameReason, http.StatusConflict, nil},
		ServiceError{ErrorMalformedBotConfig, ErrorMalformedBotConfigReason, http.StatusBadRequest, nil},
		ServiceError{ErrorBotConfigPresetNotFound, ErrorBotConfigPresetNotFoundReason, http.StatusBadRequest, nil},
		ServiceError{ErrorFailedToResolveBotConfig, ErrorFailedToResolveBotConfigReason, http.StatusBadRequest, nil},
		ServiceError{ErrorInsufficientQuota, ErrorInsufficientQuotaReason, http.StatusForbidden, nil},
		ServiceError{ErrorFailedToCheckQuota, ErrorFailedToCheckQuotaReason, http.StatusInternalServerError, nil},
		ServiceError{ErrorSyncActionNotSupported, ErrorSyncActionNotSupportedReason, http.StatusBadRequest, nil},
		ServiceError{ErrorFailedToCreateSSOClient, ErrorFailedToCreateSSOClientReason, http.StatusInternalServerError, nil},
		ServiceError{ErrorFailedToGetSSOClientSecret, ErrorFailedToGetSSOClientSecretReason, http.StatusInternalServerError, nil},
		ServiceError{ErrorFailedToGetSSOClient, ErrorFailedToGetSSOClientReason, http.StatusInternalServerError, nil},
		ServiceError{ErrorFailedToDeleteSSOClient, ErrorFailedToDeleteSSOClientReason, http.StatusInternalServerError, nil},
		ServiceError{ErrorFailedToCreateServiceAccount, ErrorFailedToCreateServiceAccountReason, http.StatusInternalServerError, nil},
		ServiceError{ErrorFailedToGetServiceAccount, ErrorFailedToGetServiceAccountReason, http.StatusInternalServerError, nil},
		ServiceError{ErrorFailedToDeleteServiceAccount, ErrorFailedToDeleteServiceAccountReason, http.StatusInternalServerError, nil},
		ServiceError{ErrorMaxLimitForServiceAccountReached, ErrorMaxLimitForServiceAccountReachedReason, http.StatusForbidden, nil},
		ServiceError{ErrorServiceAccountNotFound, ErrorServiceAccountNotFoundReason, http.StatusNotFound, nil},
		ServiceError{ErrorMalformedServiceAccountName, ErrorMalformedServiceAccountNameReason, http.StatusBadRequest, nil},
		ServiceError{ErrorMalformedServiceAccountDesc, ErrorMalformedServiceAccountDescReason, http.StatusBadRequest, nil},
		ServiceError{ErrorMalformedServiceAccountId, ErrorMalformedServiceAccountIdReason, http.StatusBadRequest, nil},
		ServiceError{ErrorFailedToOpenPullRequest, ErrorFailedToOpenPullRequestReason, http.StatusInternalServerError, nil},
		ServiceError{ErrorFailedToQueryRegistry, ErrorFailedToQueryRegistryReason, http.StatusInternalServerError, nil},
		ServiceError{ErrorUnableToSendErrorResponse, ErrorUnableToSendErrorResponseReason, http.StatusInternalServerError, nil},
	}
}

func NewErrorFromHTTPStatusCode(httpCode int, reason string, values ...interface{}) *ServiceError {
	if httpCode >= http.StatusBadRequest && httpCode < http.StatusInternalServerError {
		switch httpCode {
		case http.StatusBadRequest:
			return BadRequest(reason, values...)
		case http.StatusUnauthorized:
			return Unauthorized(reason, values...)
		case http.StatusForbidden:
			return Forbidden(reason, values...)
		case http.StatusNotFound:
			return NotFound(reason, values...)
		case http.StatusMethodNotAllowed:
			return NotImplemented(reason, values...)
		case http.StatusConflict:
			return Conflict(reason, values...)
		default:
			return BadRequest(reason, values...)
		}
	}

	if httpCode >= http.StatusInternalServerError {
		switch httpCode {
		case http.StatusInternalServerError:
			return GeneralError(reason, values...)
		default:
			return GeneralError(reason, values...)
		}
	}

	return GeneralError(reason, values...)
}

func ToServiceError(err error) *ServiceError {
	switch convertedErr := err.(type) {
	case *ServiceError:
		return convertedErr
	default:
		return GeneralError(convertedErr.Error())
	}
}

type ServiceError struct {
	// Code is the numeric and distinct ID for the error
	Code ServiceErrorCode
	// Reason is the context-specific reason the error was generated
	Reason string
	// HttpCode is the HttpCode associated with the error when the error is returned as an API response
	HttpCode int
	// The original error that is causing the ServiceError, can be used for inspection
	cause error
}

type stackTracer interface {
	StackTrace() errors.StackTrace
}

// Reason can be a string with format verbs, which will be replace by the specified values
func New(code ServiceErrorCode, reason string, values ...interface{}) *ServiceError {
	return NewWithCause(code, nil, reason, values...)
}

func NewWithCause(code ServiceErrorCode, cause error, reason string, values ...interface{}) *ServiceError {
	// If the code isn't defined, use the general error code
	var err *ServiceError
	exists, err := Find(code)
	if !exists {
		glog.Errorf("Undefined error code used: %d", code)
		err = &ServiceError{ErrorGeneral, "Unspecified error", http.StatusInternalServerError, nil}
	}

	// If the reason is unspecified, use the default
	if reason != "" {
		err.Reason = fmt.Sprintf(reason, values...)
	}

	if cause != nil {
		_, ok := cause.(stackTracer)
		if !ok {
			cause = errors.WithStack(cause) // add stacktrace info
		}
	}
	err.cause = cause

	return err
}

// Unwrap returns the original error that caused the ServiceError
func (e *ServiceError) Unwrap() error {
	return e.cause
}

// StackTrace returns errors stacktrace.
func (e *ServiceError) StackTrace() errors.StackTrace {
	if e.cause == nil {
		return nil
	}

	err, ok := e.cause.(stackTracer)
	if !ok {
		return nil
	}

	return err.StackTrace()
}

func (e *ServiceError) Error() string {
	message := fmt.Sprintf("%s: %s", CodeStr(e.Code), e.Reason)
	if e.cause != nil {
		message = fmt.Sprintf("%s\n caused by: %s", message, e.cause.Error())
	}
	return message
}

func (e *ServiceError) AsError() error {
	return fmt.Errorf(e.Error())
}

func (e *ServiceError) Is404() bool {
	return e.Code == NotFound("").Code
}

func (e *ServiceError) IsConflict() bool {
	return e.Code == Conflict("").Code
}

func (e *ServiceError) IsForbidden() bool {
	return e.Code == Forbidden("").Code
}

func (e *ServiceError) IsFailedToCreateSSOClient() bool {
	return e.Code == FailedToCreateSSOClient("").Code
}

func (e *ServiceError) IsClientErrorClass() bool {
	return e.HttpCode >= http.StatusBadRequest && e.HttpCode < http.StatusInternalServerError
}

func (e *ServiceError) IsServerErrorClass() bool {
	return e.HttpCode >= http.StatusInternalServerError
}

func (e *ServiceError) IsFailedToGetSSOClientSecret() bool {
	return e.Code == FailedToGetSSOClientSecret("").Code
}

func (e *ServiceError) IsFailedToGetSSOClient() bool {
	return e.Code == FailedToGetSSOClient("").Code
}

func (e *ServiceError) IsFailedToDeleteSSOClient() bool {
	return e.Code == FailedToDeleteSSOClient("").Code
}

func (e *ServiceError) IsFailedToCreateServiceAccount() bool {
	return e.Code == FailedToCreateServiceAccount("").Code
}

func (e *ServiceError) IsFailedToGetServiceAccount() bool {
	return e.Code == FailedToGetServiceAccount("").Code
}

func (e *ServiceError) IsFailedToDeleteServiceAccount() bool {
	return e.Code == FailedToDeleteServiceAccount("").Code
}

func (e *ServiceError) IsMaxLimitForServiceAccountReached() bool {
	return e.Code == ErrorMaxLimitForServiceAccountReached
}

func (e *ServiceError) IsServiceAccountNotFound() bool {
	return e.Code == ServiceAccountNotFound("").Code
}

func (e *ServiceError) IsInstanceTypeNotSupported() bool {
	return e.Code == ErrorManagerNotSupported
}

// AsOpenapiError returns the error in the format of the API error type
func (e *ServiceError) AsOpenapiError(operationID string, basePath string) compat.Error {
	href := Href(e.Code)
	code := CodeStr(e.Code)

	return compat.Error{
		Kind:        "Error",
		Id:          strconv.Itoa(int(e.Code)),
		Href:        href,
		Code:        code,
		Reason:      e.Reason,
		OperationId: operationID,
	}
}

func CodeStr(code ServiceErrorCode) string {
	return fmt.Sprintf("%s-%d", ERROR_CODE_PREFIX, code)
}

func Href(code ServiceErrorCode) string {
	return fmt.Sprintf("%s%d", ERROR_HREF, code)
}

func NotFound(reason string, values ...interface{}) *ServiceError {
	return New(ErrorNotFound, reason, values...)
}

func GeneralError(reason string, values ...interface{}) *ServiceError {
	return New(ErrorGeneral, reason, values...)
}

func Unauthorized(reason string, values ...interface{}) *ServiceError {
	return New(ErrorUnauthorized, reason, values...)
}

func TermsNotAccepted(reason string, values ...interface{}) *ServiceError {
	return New(ErrorTermsNotAccepted, reason, values...)
}

func Unauthenticated(reason string, values ...interface{}) *ServiceError {
	return New(ErrorUnauthenticated, reason, values...)
}

func Forbidden(reason string, values ...interface{}) *ServiceError {
	return New(ErrorForbidden, reason, values...)
}

func MaximumAllowedInstanceReached(reason string, values ...interface{}) *ServiceError {
	return New(ErrorMaxAllowedInstanceReached, reason, values...)
}

func NotImplemented(reason string, values ...interface{}) *ServiceError {
	return New(ErrorNotImplemented, reason, values...)
}

func Conflict(reason string, values ...interface{}) *ServiceError {
	return New(ErrorConflict, reason, values...)
}

func Validation(reason string, values ...interface{}) *ServiceError {
	return New(ErrorValidation, reason, values...)
}

func MalformedRequest(reason string, values ...interface{}) *ServiceError {
	return New(ErrorMalformedRequest, reason, values...)
}

func BadRequest(reason string, values ...interface{}) *ServiceError {
	return New(ErrorBadRequest, reason, values...)
}

func FailedToParseSearch(reason string, values ...interface{}) *ServiceError {
	message := fmt.Sprintf("%s: %s", ErrorFailedToParseSearchReason, reason)
	return New(ErrorFailedToParseSearch, message, values...)
}

func FailedToParseQueryParms(reason string, values ...interface{}) *ServiceError {
	return New(ErrorFailedToParseQueryParms, reason, values...)
}

func SyncActionNotSupported() *ServiceError {
	return New(ErrorSyncActionNotSupported, ErrorSyncActionNotSupportedReason)
}

func FailedToCreateSSOClient(reason string, values ...interface{}) *ServiceError {
	return New(ErrorFailedToCreateSSOClient, reason, values...)
}

func FailedToGetSSOClientSecret(reason string, values ...interface{}) *ServiceError {
	return New(ErrorFailedToGetSSOClientSecret, reason, values...)
}

func FailedToGetSSOClient(reason string, values ...interface{}) *ServiceError {
	return New(ErrorFailedToGetSSOClient, reason, values...)
}

func FailedToDeleteSSOClient(reason string, values ...interface{}) *ServiceError {
	return New(ErrorFailedToDeleteSSOClient, reason, values...)
}

func FailedToCreateServiceAccount(reason string, values ...interface{}) *ServiceError {
	return New(ErrorFailedToCreateServiceAccount, reason, values...)
}

func FailedToDeleteServiceAccount(reason string, values ...interface{}) *ServiceError {
	return New(ErrorFailedToDeleteServiceAccount, reason, values...)
}

func MaxLimitForServiceAccountReached(reason string, values ...interface{}) *ServiceError {
	return New(ErrorMaxLimitForServiceAccountReached, reason, values...)
}

func FailedToGetServiceAccount(reason string, values ...interface{}) *ServiceError {
	return New(ErrorFailedToGetServiceAccount, reason, values...)
}

func ServiceAccountNotFound(reason string, values ...interface{}) *ServiceError {
	return New(ErrorServiceAccountNotFound, reason, values...)
}

func MalformedServiceAccountName(reason string, values ...interface{}) *ServiceError {
	return New(ErrorMalformedServiceAccountName, reason, values...)
}

func MalformedServiceAccountDesc(reason string, values ...interface{}) *ServiceError {
	return New(ErrorMalformedServiceAccountDesc, reason, values...)
}

func MalformedServiceAccountId(reason string, values ...interface{}) *ServiceError {
	return New(ErrorMalformedServiceAccountId, reason, values...)
}

func ProviderNotSupported(reason string, values ...interface{}) *ServiceError {
	return New(ErrorProviderNotSupported, reason, values...)
}

func ManagerNotSupported(reason string, values ...interface{}) *ServiceError {
	return New(ErrorManagerNotSupported, reason, values...)
}

func MalformedRepositoryName(reason string, values ...interface{}) *ServiceError {
	return New(ErrorMalformedRepositoryName, reason, values...)
}

func DuplicateRepositoryName(reason string, values ...interface{}) *ServiceError {
	return New(ErrorDuplicateRepositoryName, reason, values...)
}

func MalformedBotConfig(reason string, values ...interface{}) *ServiceError {
	return New(ErrorMalformedBotConfig, reason, values...)
}

func BotConfigPresetNotFound(reason string, values ...interface{}) *ServiceError {
	return New(ErrorBotConfigPresetNotFound, reason, values...)
}

func FailedToResolveBotConfig(reason string, values ...interface{}) *ServiceError {
	return New(ErrorFailedToResolveBotConfig, reason, values...)
}

func InsufficientQuotaError(reason string, values ...interface{}) *ServiceError {
	message := fmt.Sprintf("%s: %s", ErrorInsufficientQuotaReason, reason)
	return New(ErrorInsufficientQuota, message, values...)
}

func FailedToCheckQuota(reason string, values ...interface{}) *ServiceError {
	message := fmt.Sprintf("%s: %s", ErrorFailedToCheckQuotaReason, reason)
	return New(ErrorFailedToCheckQuota, message, values...)
}

func FailedToOpenPullRequest(reason string, values ...interface{}) *ServiceError {
	return New(ErrorFailedToOpenPullRequest, reason, values...)
}

func FailedToQueryRegistry(reason string, values ...interface{}) *ServiceError {
	return New(ErrorFailedToQueryRegistry, reason, values...)
}

func MinimumFieldLengthNotReached(reason string, values ...interface{}) *ServiceError {
	return New(ErrorMinimumFieldLength, reason, values...)
}

func MaximumFieldLengthExceeded(reason string, values ...interface{}) *ServiceError {
	return New(ErrorMaximumFieldLength, reason, values...)
}

func UnableToSendErrorResponse() *ServiceError {
	return New(ErrorUnableToSendErrorResponse, ErrorUnableToSendErrorResponseReason)
}

func FieldValidationError(reason string, values ...interface{}) *ServiceError {
	return New(ErrorValidation, reason, values...)
}

// ErrorList is an error type that holds multiple errors, used by the
// reconcilers to report all the failures of a reconcile loop at once.
type ErrorList []error

func (e ErrorList) Error() string {
	var res string
	for _, err := range e {
		res = res + fmt.Sprintf(";%s", err)
	}

	return fmt.Sprintf("[%s]", res)
}
