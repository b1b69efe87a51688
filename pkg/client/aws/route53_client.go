package aws

import (
	"github.com/aws/aws-sdk-go/service/route53"
	"github.com/aws/aws-sdk-go/service/route53/route53iface"
)

// Route53APIMock is a hand-maintained partial mock of route53iface.Route53API.
// The embedded interface satisfies the methods the client never calls; a full
// moq of the route53 surface would be several thousand lines for no gain.
type Route53APIMock struct {
	route53iface.Route53API

	// GetChangeFunc mocks the GetChange method.
	GetChangeFunc func(in1 *route53.GetChangeInput) (*route53.GetChangeOutput, error)

	// ListHostedZonesByNameFunc mocks the ListHostedZonesByName method.
	ListHostedZonesByNameFunc func(in1 *route53.ListHostedZonesByNameInput) (*route53.ListHostedZonesByNameOutput, error)

	// ChangeResourceRecordSetsFunc mocks the ChangeResourceRecordSets method.
	ChangeResourceRecordSetsFunc func(in1 *route53.ChangeResourceRecordSetsInput) (*route53.ChangeResourceRecordSetsOutput, error)
}

func (mock *Route53APIMock) GetChange(in1 *route53.GetChangeInput) (*route53.GetChangeOutput, error) {
	return mock.GetChangeFunc(in1)
}

func (mock *Route53APIMock) ListHostedZonesByName(in1 *route53.ListHostedZonesByNameInput) (*route53.ListHostedZonesByNameOutput, error) {
	return mock.ListHostedZonesByNameFunc(in1)
}

func (mock *Route53APIMock) ChangeResourceRecordSets(in1 *route53.ChangeResourceRecordSetsInput) (*route53.ChangeResourceRecordSetsOutput, error) {
	return mock.ChangeResourceRecordSetsFunc(in1)
}
