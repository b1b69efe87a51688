package dashboardcertmgmt

import "fmt"

// CertificateRevocationReason is the reason for revoking a certificate as
// specified by https://www.rfc-editor.org/rfc/rfc5280#section-5.3.1
type CertificateRevocationReason int

const (
	Unspecified          CertificateRevocationReason = 0
	KeyCompromise        CertificateRevocationReason = 1
	CACompromise         CertificateRevocationReason = 2
	AffiliationChanged   CertificateRevocationReason = 3
	Superseded           CertificateRevocationReason = 4
	CessationOfOperation CertificateRevocationReason = 5
	CertificateHold      CertificateRevocationReason = 6
	// the value 7 is not assigned by the RFC
	RemoveFromCRL      CertificateRevocationReason = 8
	PrivilegeWithdrawn CertificateRevocationReason = 9
	AACompromise       CertificateRevocationReason = 10
)

// ParseReason converts the given reason code into a CertificateRevocationReason.
// An error is returned when the code is not one of the values assigned by
// https://www.rfc-editor.org/rfc/rfc5280#section-5.3.1
func ParseReason(reason int) (CertificateRevocationReason, error) {
	parsedReason := CertificateRevocationReason(reason)
	switch parsedReason {
	case Unspecified, KeyCompromise, CACompromise, AffiliationChanged, Superseded,
		CessationOfOperation, CertificateHold, RemoveFromCRL, PrivilegeWithdrawn, AACompromise:
		return parsedReason, nil
	default:
		return CertificateRevocationReason(-1), fmt.Errorf("invalid certificate revocation reason %d", reason)
	}
}

// AsInt returns the reason code to hand to the certificate management library
func (reason CertificateRevocationReason) AsInt() int {
	return int(reason)
}
