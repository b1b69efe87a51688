package account

import "time"

type AccountService interface {
	SearchOrganizations(filter string) (*OrganizationList, error)
	GetOrganization(filter string) (*Organization, error)
}

type Organization struct {
	ID            string
	Name          string
	AccountNumber string
	ExternalID    string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

type OrganizationList struct {
	items []*Organization
}

func (l *OrganizationList) Len() int {
	return len(l.items)
}

// Get returns the organization at the given index or nil when out of range
func (l *OrganizationList) Get(index int) *Organization {
	if index < 0 || index >= len(l.items) {
		return nil
	}
	return l.items[index]
}
