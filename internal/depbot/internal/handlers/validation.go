package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"

	"github.com/d8ff42ce19a3b0e1c44a/dub-fleet-manager/internal/depbot/compat"
	"github.com/d8ff42ce19a3b0e1c44a/dub-fleet-manager/internal/depbot/internal/botconfig"
	"github.com/d8ff42ce19a3b0e1c44a/dub-fleet-manager/internal/depbot/internal/config"
	"github.com/d8ff42ce19a3b0e1c44a/dub-fleet-manager/internal/depbot/internal/services"
	"github.com/d8ff42ce19a3b0e1c44a/dub-fleet-manager/pkg/auth"
	"github.com/d8ff42ce19a3b0e1c44a/dub-fleet-manager/pkg/errors"
	"github.com/d8ff42ce19a3b0e1c44a/dub-fleet-manager/pkg/handlers"
	coreServices "github.com/d8ff42ce19a3b0e1c44a/dub-fleet-manager/pkg/services"
)

// ValidRepositoryNameRegexp matches the "org/repo" slug a forge accepts
var ValidRepositoryNameRegexp = regexp.MustCompile(`^[A-Za-z0-9_.-]+/[A-Za-z0-9_.-]+$`)

var MaxRepositoryNameLength = 100

func ValidRepositoryName(value *string, field string) handlers.Validate {
	return func() *errors.ServiceError {
		if !ValidRepositoryNameRegexp.MatchString(*value) {
			return errors.MalformedRepositoryName("%s does not match %s", field, ValidRepositoryNameRegexp.String())
		}
		return nil
	}
}

// ValidateRepositoryNameIsUnique returns a validator that checks no visible
// repository request carries the same forge slug already
func ValidateRepositoryNameIsUnique(name *string, repositoryService services.RepositoryService, context context.Context) handlers.Validate {
	return func() *errors.ServiceError {
		_, pageMeta, err := repositoryService.List(context, &coreServices.ListArguments{Page: 1, Size: 1, Search: fmt.Sprintf("name = %s", *name)})
		if err != nil {
			return err
		}

		if pageMeta.Total > 0 {
			return errors.DuplicateRepositoryName("repository %s is already registered", *name)
		}

		return nil
	}
}

func ValidateForgeType(repositoryConfig *config.RepositoryConfig, payload *compat.RepositoryRequestPayload, field string) handlers.Validate {
	return func() *errors.ServiceError {
		if !repositoryConfig.IsForgeTypeSupported(payload.ForgeType) {
			return errors.ProviderNotSupported("%s %s is not supported, supported forge types are: %v", field, payload.ForgeType, repositoryConfig.SupportedForgeTypes)
		}
		return nil
	}
}

// ValidateBotConfigDocument validates the inline configuration document of a
// register or update payload against the bot configuration schema
func ValidateBotConfigDocument(doc *map[string]interface{}, field string) handlers.Validate {
	return func() *errors.ServiceError {
		if doc == nil || len(*doc) == 0 {
			return nil
		}
		raw, err := json.Marshal(*doc)
		if err != nil {
			return errors.MalformedBotConfig("%s is not a valid configuration document: %v", field, err)
		}
		return botconfig.Validate(raw)
	}
}

// ValidateDepbotClaims checks the token claims carry the identity fields the
// registration flow stamps on the request
func ValidateDepbotClaims(ctx context.Context) handlers.Validate {
	return func() *errors.ServiceError {
		claims, err := auth.GetClaimsFromContext(ctx)
		if err != nil {
			return errors.Unauthenticated("user not authenticated")
		}
		if _, err := claims.GetUsername(); err != nil {
			return errors.Unauthenticated("user not authenticated")
		}
		if _, err := claims.GetOrgId(); err != nil {
			return errors.Unauthenticated("user credentials are not valid")
		}
		return nil
	}
}
