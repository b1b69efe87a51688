package handlers

import (
	"net/http"
	"net/url"
	"regexp"
	"strconv"

	"github.com/d8ff42ce19a3b0e1c44a/dub-fleet-manager/pkg/errors"
)

var (
	// Valid service account names must consist of lower-case alphanumeric characters or '-', start
	// with an alphabetic character and end with an alphanumeric character
	ValidServiceAccountNameRegexp = regexp.MustCompile(`^[a-z]([-a-z0-9]*[a-z0-9])?$`)
	ValidServiceAccountDescRegexp = regexp.MustCompile(`^[a-zA-Z0-9.,\-\s]*$`)
	ValidUuidRegexp               = regexp.MustCompile(`^[a-fA-F0-9]{8}-[a-fA-F0-9]{4}-[a-fA-F0-9]{4}-[a-fA-F0-9]{4}-[a-fA-F0-9]{12}$`)

	MinRequiredFieldLength = 1

	MaxServiceAccountNameLength = 50
	MaxServiceAccountDescLength = 255
	MaxServiceAccountId         = 36
	MaxServiceAccountClientId   = 71
)

// ValidateAsyncEnabled returns a validator that returns an error if the async query param is not true
func ValidateAsyncEnabled(r *http.Request, action string) Validate {
	return func() *errors.ServiceError {
		asyncParam := r.URL.Query().Get("async")
		if asyncParam != "true" {
			return errors.SyncActionNotSupported()
		}
		return nil
	}
}

func ValidateServiceAccountName(value *string, field string) Validate {
	return func() *errors.ServiceError {
		if !ValidServiceAccountNameRegexp.MatchString(*value) {
			return errors.MalformedServiceAccountName("%s does not match %s", field, ValidServiceAccountNameRegexp.String())
		}
		return nil
	}
}

func ValidateServiceAccountDesc(value *string, field string) Validate {
	return func() *errors.ServiceError {
		if !ValidServiceAccountDescRegexp.MatchString(*value) {
			return errors.MalformedServiceAccountDesc("%s does not match %s", field, ValidServiceAccountDescRegexp.String())
		}
		return nil
	}
}

func ValidateServiceAccountId(value *string, field string) Validate {
	return func() *errors.ServiceError {
		if !ValidUuidRegexp.MatchString(*value) {
			return errors.MalformedServiceAccountId("%s does not match %s", field, ValidUuidRegexp.String())
		}
		return nil
	}
}

// ValidateLength returns a validator that checks the minimum and optionally the maximum length of a field
func ValidateLength(value *string, field string, minVal *int, maxVal *int) Validate {
	var min = 1
	if *minVal > 1 {
		min = *minVal
	}
	return func() *errors.ServiceError {
		if value == nil || len(*value) < min {
			return errors.MinimumFieldLengthNotReached("%s is not valid. Minimum length %d is required.", field, min)
		}
		if maxVal != nil && len(*value) > *maxVal {
			return errors.MaximumFieldLengthExceeded("%s is not valid. Maximum length %d is required.", field, *maxVal)
		}
		return nil
	}
}

// ValidateMaxLength returns a validator that checks the maximum length of a field
func ValidateMaxLength(value *string, field string, maxVal *int) Validate {
	return func() *errors.ServiceError {
		if maxVal != nil && len(*value) > *maxVal {
			return errors.MaximumFieldLengthExceeded("%s is not valid. Maximum length %d is required.", field, *maxVal)
		}
		return nil
	}
}

// ValidateMinLength returns a validator that checks the minimum length of a field
func ValidateMinLength(value *string, field string, min int) Validate {
	return func() *errors.ServiceError {
		if value == nil || len(*value) < min {
			return errors.MinimumFieldLengthNotReached("%s is not valid. Minimum length %d is required.", field, min)
		}
		return nil
	}
}

// ValidateQueryParam returns a validator that checks the given query param is a parseable number
func ValidateQueryParam(queryParams url.Values, field string) Validate {
	return func() *errors.ServiceError {
		fieldValue := queryParams.Get(field)
		if fieldValue == "" {
			return errors.FailedToParseQueryParms("bad request, cannot parse query parameter '%s'", field)
		}
		if _, err := strconv.ParseInt(fieldValue, 10, 64); err != nil {
			return errors.FailedToParseQueryParms("bad request, failed to parse query parameter '%s': %v", field, err)
		}
		return nil
	}
}
