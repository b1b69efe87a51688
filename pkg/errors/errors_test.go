package errors

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"testing"

	"github.com/d8ff42ce19a3b0e1c44a/dub-fleet-manager/internal/depbot/compat"
	"github.com/onsi/gomega"
	ocmErrors "github.com/openshift-online/ocm-sdk-go/errors"
	"github.com/pkg/errors"
)

var (
	e                   = ServiceError{}
	testCause           = "failed to do something"
	testError           = New(http.StatusBadRequest, testCause)
	errorWithCause      = NewWithCause(ErrorBadRequest, testError, "Unable to list repositories: %s", testError.Error())
	genericErrorMessage = "something went wrong"
)

func TestErrorFormatting(t *testing.T) {
	g := gomega.NewWithT(t)
	err := New(ErrorGeneral, "test %s, %d", "errors", 1)
	g.Expect(err.Reason).To(gomega.Equal("test errors, 1"))
}

func TestErrorFind(t *testing.T) {
	g := gomega.NewWithT(t)
	exists, err := Find(ErrorNotFound)
	g.Expect(exists).To(gomega.Equal(true))
	g.Expect(err.Code).To(gomega.Equal(ErrorNotFound))

	// Hopefully we never reach 91,823,719 error codes or this test will fail
	exists, err = Find(ServiceErrorCode(91823719))
	g.Expect(exists).To(gomega.Equal(false))
	g.Expect(err).To(gomega.BeNil())
}

func TestErrorsCatalogIsDistinct(t *testing.T) {
	g := gomega.NewWithT(t)
	seen := map[ServiceErrorCode]bool{}
	for _, err := range Errors() {
		g.Expect(seen[err.Code]).To(gomega.BeFalse(), "duplicate error code %d", err.Code)
		seen[err.Code] = true
	}
}

func Test_NewErrorFromHTTPStatusCode(t *testing.T) {
	type args struct {
		httpCode int
		reason   string
	}

	tests := []struct {
		name string
		args args
		want *ServiceError
	}{
		{
			name: "should return bad request error",
			args: args{
				httpCode: http.StatusBadRequest,
				reason:   genericErrorMessage,
			},
			want: BadRequest(genericErrorMessage),
		},
		{
			name: "should return unauthorized error",
			args: args{
				httpCode: http.StatusUnauthorized,
				reason:   genericErrorMessage,
			},
			want: Unauthorized(genericErrorMessage),
		},
		{
			name: "should return forbidden error",
			args: args{
				httpCode: http.StatusForbidden,
				reason:   genericErrorMessage,
			},
			want: Forbidden(genericErrorMessage),
		},
		{
			name: "should return not found error",
			args: args{
				httpCode: http.StatusNotFound,
				reason:   genericErrorMessage,
			},
			want: NotFound(genericErrorMessage),
		},
		{
			name: "should return not implemented error",
			args: args{
				httpCode: http.StatusMethodNotAllowed,
				reason:   genericErrorMessage,
			},
			want: NotImplemented(genericErrorMessage),
		},
		{
			name: "should return conflict error",
			args: args{
				httpCode: http.StatusConflict,
				reason:   genericErrorMessage,
			},
			want: Conflict(genericErrorMessage),
		},
		{
			name: "should return general error",
			args: args{
				httpCode: http.StatusInternalServerError,
				reason:   genericErrorMessage,
			},
			want: GeneralError(genericErrorMessage),
		},
		{
			name: "should return general error for un-mapped 2xx codes",
			args: args{
				httpCode: http.StatusOK,
				reason:   genericErrorMessage,
			},
			want: GeneralError(genericErrorMessage),
		},
	}

	for _, testcase := range tests {
		tt := testcase
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			g := gomega.NewWithT(t)
			g.Expect(NewErrorFromHTTPStatusCode(tt.args.httpCode, tt.args.reason)).To(gomega.MatchError(tt.want))
		})
	}
}

type errorWithoutStackTrace struct {
}

func (e *errorWithoutStackTrace) Error() string {
	return "Error"
}

func Test_NewWithCause(t *testing.T) {
	internalServerCause := "Unspecified error"
	type args struct {
		code   ServiceErrorCode
		cause  error
		reason string
	}
	tests := []struct {
		name string
		args args
		want *ServiceError
	}{
		{
			name: "should return a service error with a nil cause",
			args: args{
				reason: internalServerCause,
			},
			want: &ServiceError{ErrorGeneral, "Unspecified error", http.StatusInternalServerError, nil},
		},
		{
			name: "should return a service error if the cause is not nil",
			args: args{
				reason: internalServerCause,
				cause:  GeneralError(genericErrorMessage),
			},
			want: &ServiceError{ErrorGeneral, "Unspecified error", http.StatusInternalServerError, GeneralError("")},
		},
		{
			name: "should return a service error where there is no stack trace",
			args: args{
				reason: internalServerCause,
				cause:  &errorWithoutStackTrace{},
			},
			want: &ServiceError{ErrorGeneral, "Unspecified error", http.StatusInternalServerError, errors.WithStack(&errorWithoutStackTrace{})},
		},
	}

	for _, testcase := range tests {
		tt := testcase
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			g := gomega.NewWithT(t)
			err := NewWithCause(tt.args.code, tt.args.cause, tt.args.reason)
			g.Expect(err.Code).To(gomega.Equal(tt.want.Code))
			g.Expect(err.Reason).To(gomega.Equal(tt.want.Reason))
			g.Expect(err.HttpCode).To(gomega.Equal(tt.want.HttpCode))
			if err.cause != nil {
				_, ok := err.cause.(stackTracer)
				g.Expect(ok).To(gomega.BeTrue())
			}
		})
	}
}

func Test_ServiceAccountConstructors(t *testing.T) {
	tests := []struct {
		name     string
		err      *ServiceError
		wantCode ServiceErrorCode
		wantHTTP int
	}{
		{
			name:     "FailedToCreateSSOClient returns a 500",
			err:      FailedToCreateSSOClient("failed to create the client"),
			wantCode: ErrorFailedToCreateSSOClient,
			wantHTTP: http.StatusInternalServerError,
		},
		{
			name:     "FailedToGetSSOClientSecret returns a 500",
			err:      FailedToGetSSOClientSecret("no secret"),
			wantCode: ErrorFailedToGetSSOClientSecret,
			wantHTTP: http.StatusInternalServerError,
		},
		{
			name:     "FailedToCreateServiceAccount returns a 500",
			err:      FailedToCreateServiceAccount("creation failed"),
			wantCode: ErrorFailedToCreateServiceAccount,
			wantHTTP: http.StatusInternalServerError,
		},
		{
			name:     "FailedToDeleteServiceAccount returns a 500",
			err:      FailedToDeleteServiceAccount("deletion failed"),
			wantCode: ErrorFailedToDeleteServiceAccount,
			wantHTTP: http.StatusInternalServerError,
		},
		{
			name:     "MaxLimitForServiceAccountReached returns a 403",
			err:      MaxLimitForServiceAccountReached("limit reached"),
			wantCode: ErrorMaxLimitForServiceAccountReached,
			wantHTTP: http.StatusForbidden,
		},
		{
			name:     "ServiceAccountNotFound returns a 404",
			err:      ServiceAccountNotFound("service account 123 not found"),
			wantCode: ErrorServiceAccountNotFound,
			wantHTTP: http.StatusNotFound,
		},
		{
			name:     "MalformedServiceAccountName returns a 400",
			err:      MalformedServiceAccountName("bad name"),
			wantCode: ErrorMalformedServiceAccountName,
			wantHTTP: http.StatusBadRequest,
		},
		{
			name:     "MalformedServiceAccountDesc returns a 400",
			err:      MalformedServiceAccountDesc("bad desc"),
			wantCode: ErrorMalformedServiceAccountDesc,
			wantHTTP: http.StatusBadRequest,
		},
		{
			name:     "MalformedServiceAccountId returns a 400",
			err:      MalformedServiceAccountId("bad id"),
			wantCode: ErrorMalformedServiceAccountId,
			wantHTTP: http.StatusBadRequest,
		},
	}

	for _, testcase := range tests {
		tt := testcase
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			g := gomega.NewWithT(t)
			g.Expect(tt.err.Code).To(gomega.Equal(tt.wantCode))
			g.Expect(tt.err.HttpCode).To(gomega.Equal(tt.wantHTTP))
		})
	}
}

func Test_DomainConstructors(t *testing.T) {
	tests := []struct {
		name     string
		err      *ServiceError
		wantCode ServiceErrorCode
		wantHTTP int
	}{
		{
			name:     "MalformedRepositoryName returns a 400",
			err:      MalformedRepositoryName("repository name is invalid"),
			wantCode: ErrorMalformedRepositoryName,
			wantHTTP: http.StatusBadRequest,
		},
		{
			name:     "DuplicateRepositoryName returns a 409",
			err:      DuplicateRepositoryName("repository name already used"),
			wantCode: ErrorDuplicateRepositoryName,
			wantHTTP: http.StatusConflict,
		},
		{
			name:     "MalformedBotConfig returns a 400",
			err:      MalformedBotConfig("bot configuration is invalid"),
			wantCode: ErrorMalformedBotConfig,
			wantHTTP: http.StatusBadRequest,
		},
		{
			name:     "BotConfigPresetNotFound returns a 400",
			err:      BotConfigPresetNotFound("preset not found"),
			wantCode: ErrorBotConfigPresetNotFound,
			wantHTTP: http.StatusBadRequest,
		},
		{
			name:     "ProviderNotSupported returns a 400",
			err:      ProviderNotSupported("provider not supported"),
			wantCode: ErrorProviderNotSupported,
			wantHTTP: http.StatusBadRequest,
		},
		{
			name:     "ManagerNotSupported returns a 400",
			err:      ManagerNotSupported("manager not supported"),
			wantCode: ErrorManagerNotSupported,
			wantHTTP: http.StatusBadRequest,
		},
		{
			name:     "InsufficientQuotaError includes the default reason",
			err:      InsufficientQuotaError("no quota"),
			wantCode: ErrorInsufficientQuota,
			wantHTTP: http.StatusForbidden,
		},
		{
			name:     "FailedToCheckQuota returns a 500",
			err:      FailedToCheckQuota("quota check failed"),
			wantCode: ErrorFailedToCheckQuota,
			wantHTTP: http.StatusInternalServerError,
		},
		{
			name:     "FailedToOpenPullRequest returns a 500",
			err:      FailedToOpenPullRequest("pull request failed"),
			wantCode: ErrorFailedToOpenPullRequest,
			wantHTTP: http.StatusInternalServerError,
		},
		{
			name:     "FailedToQueryRegistry returns a 500",
			err:      FailedToQueryRegistry("registry down"),
			wantCode: ErrorFailedToQueryRegistry,
			wantHTTP: http.StatusInternalServerError,
		},
	}

	for _, testcase := range tests {
		tt := testcase
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			g := gomega.NewWithT(t)
			g.Expect(tt.err.Code).To(gomega.Equal(tt.wantCode))
			g.Expect(tt.err.HttpCode).To(gomega.Equal(tt.wantHTTP))
		})
	}
}

func Test_CodeStr(t *testing.T) {
	type args struct {
		code ServiceErrorCode
	}
	tests := []struct {
		name string
		args args
		want string
	}{
		{
			name: "should return a formatted string for CodeStr()",
			args: args{
				code: http.StatusBadRequest,
			},
			want: fmt.Sprintf("%s-%d", ERROR_CODE_PREFIX, http.StatusBadRequest),
		},
	}
	for _, testcase := range tests {
		tt := testcase
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			g := gomega.NewWithT(t)
			g.Expect(CodeStr(tt.args.code)).To(gomega.Equal(tt.want))
		})
	}
}

func Test_Href(t *testing.T) {
	type args struct {
		code ServiceErrorCode
	}
	tests := []struct {
		name string
		args args
		want string
	}{
		{
			name: "should return a formatted string for Href()",
			args: args{
				code: http.StatusBadRequest,
			},
			want: fmt.Sprintf("%s%d", ERROR_HREF, http.StatusBadRequest),
		},
	}
	for _, testcase := range tests {
		tt := testcase
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			g := gomega.NewWithT(t)
			g.Expect(Href(tt.args.code)).To(gomega.Equal(tt.want))
		})
	}
}

func Test_ToServiceError(t *testing.T) {
	sampleNonServiceError, err := ocmErrors.NewError().Reason("Unspecified error").Build()
	if err != nil {
		t.Fatal("failed to build ocm error")
	}
	type args struct {
		err error
	}
	tests := []struct {
		name string
		args args
		want *ServiceError
	}{
		{
			name: "should return the service error unmodified",
			args: args{
				err: BadRequest(genericErrorMessage),
			},
			want: BadRequest(genericErrorMessage),
		},
		{
			name: "should convert a non service error to a general error",
			args: args{
				err: sampleNonServiceError,
			},
			want: GeneralError("Unspecified error"),
		},
	}
	for _, testcase := range tests {
		tt := testcase
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			g := gomega.NewWithT(t)
			g.Expect(ToServiceError(tt.args.err)).To(gomega.MatchError(tt.want))
		})
	}
}

func Test_ErrorClassChecks(t *testing.T) {
	g := gomega.NewWithT(t)

	g.Expect(NotFound("").Is404()).To(gomega.BeTrue())
	g.Expect(GeneralError("").Is404()).To(gomega.BeFalse())

	g.Expect(Conflict("").IsConflict()).To(gomega.BeTrue())
	g.Expect(NotFound("").IsConflict()).To(gomega.BeFalse())

	g.Expect(Forbidden("").IsForbidden()).To(gomega.BeTrue())
	g.Expect(Conflict("").IsForbidden()).To(gomega.BeFalse())

	g.Expect(BadRequest("").IsClientErrorClass()).To(gomega.BeTrue())
	g.Expect(GeneralError("").IsClientErrorClass()).To(gomega.BeFalse())

	g.Expect(GeneralError("").IsServerErrorClass()).To(gomega.BeTrue())
	g.Expect(BadRequest("").IsServerErrorClass()).To(gomega.BeFalse())

	g.Expect(ServiceAccountNotFound("").IsServiceAccountNotFound()).To(gomega.BeTrue())
	g.Expect(MaxLimitForServiceAccountReached("").IsMaxLimitForServiceAccountReached()).To(gomega.BeTrue())
	g.Expect(FailedToCreateServiceAccount("").IsFailedToCreateServiceAccount()).To(gomega.BeTrue())
	g.Expect(FailedToGetServiceAccount("").IsFailedToGetServiceAccount()).To(gomega.BeTrue())
	g.Expect(FailedToDeleteServiceAccount("").IsFailedToDeleteServiceAccount()).To(gomega.BeTrue())
	g.Expect(FailedToCreateSSOClient("").IsFailedToCreateSSOClient()).To(gomega.BeTrue())
	g.Expect(FailedToGetSSOClient("").IsFailedToGetSSOClient()).To(gomega.BeTrue())
	g.Expect(FailedToGetSSOClientSecret("").IsFailedToGetSSOClientSecret()).To(gomega.BeTrue())
	g.Expect(FailedToDeleteSSOClient("").IsFailedToDeleteSSOClient()).To(gomega.BeTrue())
}

func Test_AsOpenapiError(t *testing.T) {
	type args struct {
		err         *ServiceError
		operationID string
		basePath    string
	}
	tests := []struct {
		name string
		args args
		want compat.Error
	}{
		{
			name: "should return a compat error with the service error details",
			args: args{
				err:         BadRequest(genericErrorMessage),
				operationID: "12345",
				basePath:    "/api/depbot_mgmt/v1/repositories",
			},
			want: compat.Error{
				Kind:        "Error",
				Id:          strconv.Itoa(int(ErrorBadRequest)),
				Href:        Href(ErrorBadRequest),
				Code:        CodeStr(ErrorBadRequest),
				Reason:      genericErrorMessage,
				OperationId: "12345",
			},
		},
	}
	for _, testcase := range tests {
		tt := testcase
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			g := gomega.NewWithT(t)
			g.Expect(tt.args.err.AsOpenapiError(tt.args.operationID, tt.args.basePath)).To(gomega.Equal(tt.want))
		})
	}
}

func Test_StackTrace(t *testing.T) {
	type fields struct {
		err *ServiceError
	}
	tests := []struct {
		name   string
		fields fields
		want   errors.StackTrace
	}{
		{
			name: "should return error stacktrace if error cause is nil",
			fields: fields{
				err: &e,
			},
			want: nil,
		},
		{
			name: "should return error stacktrace if cause is defined",
			fields: fields{
				err: &ServiceError{
					cause: errorWithCause.cause,
				},
			},
			want: errorWithCause.StackTrace(),
		},
		{
			name: "should return nil if the cause doesn't have stacktrace",
			fields: fields{
				err: &ServiceError{
					cause: &errorWithoutStackTrace{},
				},
			},
			want: nil,
		},
	}

	for _, testcase := range tests {
		tt := testcase
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			g := gomega.NewWithT(t)
			g.Expect(tt.fields.err.StackTrace()).To(gomega.Equal(tt.want))
		})
	}
}

func Test_AsError(t *testing.T) {
	g := gomega.NewWithT(t)
	g.Expect(e.AsError()).To(gomega.MatchError(fmt.Errorf(e.Error())))
}

func Test_ErrorListToString(t *testing.T) {
	errList := ErrorList{GeneralError(genericErrorMessage), NotFound("123")}
	g := gomega.NewWithT(t)
	res := errList.Error()
	g.Expect(strings.HasPrefix(res, "[")).To(gomega.BeTrue())
	g.Expect(strings.HasSuffix(res, "]")).To(gomega.BeTrue())
	g.Expect(res).To(gomega.ContainSubstring(genericErrorMessage))
}

func Test_Unwrap(t *testing.T) {
	type fields struct {
		err *ServiceError
	}
	tests := []struct {
		name   string
		fields fields
		want   error
	}{
		{
			name: "should return the original error that caused the ServiceError",
			fields: fields{
				err: errorWithCause,
			},
			want: errorWithCause.cause,
		},
	}

	for _, testcase := range tests {
		tt := testcase
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			g := gomega.NewWithT(t)
			g.Expect(tt.fields.err.Unwrap()).To(gomega.MatchError(tt.want))
		})
	}
}

func Test_ErrorToString(t *testing.T) {
	type fields struct {
		err *ServiceError
	}
	tests := []struct {
		name   string
		fields fields
		want   string
	}{
		{
			name: "should return formatted error details",
			fields: fields{
				err: &e,
			},
			want: fmt.Sprintf("%s: %s", CodeStr(e.Code), e.Reason),
		},
		{
			name: "should return formatted error details if the cause is not nil",
			fields: fields{
				err: errorWithCause,
			},
			want: fmt.Sprintf("%s: %s\n caused by: %s", CodeStr(errorWithCause.Code), errorWithCause.Reason, errorWithCause.cause.Error()),
		},
	}

	for _, testcase := range tests {
		tt := testcase
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			g := gomega.NewWithT(t)
			g.Expect(tt.fields.err.Error()).To(gomega.BeEquivalentTo(tt.want))
		})
	}
}
