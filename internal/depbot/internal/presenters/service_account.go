package presenters

import (
	"github.com/d8ff42ce19a3b0e1c44a/dub-fleet-manager/internal/depbot/compat"
	"github.com/d8ff42ce19a3b0e1c44a/dub-fleet-manager/pkg/api"
)

func ConvertServiceAccountRequest(from compat.ServiceAccountRequest) *api.ServiceAccountRequest {
	return &api.ServiceAccountRequest{
		Name:        from.Name,
		Description: from.Description,
	}
}

// PresentServiceAccount - the full view including the client secret, only
// returned on creation and on credential reset
func PresentServiceAccount(from *api.ServiceAccount) *compat.ServiceAccount {
	reference := PresentReference(from.ID, from)
	return &compat.ServiceAccount{
		ClientId:     from.ClientID,
		ClientSecret: from.ClientSecret,
		Name:         from.Name,
		Description:  from.Description,
		CreatedBy:    from.CreatedBy,
		CreatedAt:    from.CreatedAt,
		Id:           reference.Id,
		Kind:         reference.Kind,
		Href:         reference.Href,
	}
}

func PresentServiceAccountListItem(from *api.ServiceAccount) compat.ServiceAccountListItem {
	reference := PresentReference(from.ID, from)
	return compat.ServiceAccountListItem{
		Id:          reference.Id,
		Kind:        reference.Kind,
		Href:        reference.Href,
		ClientId:    from.ClientID,
		Name:        from.Name,
		Description: from.Description,
		CreatedBy:   from.CreatedBy,
		CreatedAt:   from.CreatedAt,
	}
}
