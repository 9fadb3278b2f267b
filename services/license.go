package services

import (
	"errors"
	"fmt"
)

// PerpetualLicenseDays is the documented sentinel for a license that never
// expires.
const PerpetualLicenseDays = 9999

// ErrInvalidLicenseRequest marks a request the issuer was never called for.
var ErrInvalidLicenseRequest = errors.New("invalid license request")

// LicenseIssuer is the opaque key generation collaborator.
type LicenseIssuer interface {
	GenerateLicenseKey(identity string, validityDays int) (string, error)
}

// IssueLicense validates the request and delegates to the issuer. Issuer
// failures surface as-is; they never affect the rest of the application.
func IssueLicense(issuer LicenseIssuer, identity string, validityDays int) (string, error) {
	if identity == "" {
		return "", fmt.Errorf("%w: empty identity", ErrInvalidLicenseRequest)
	}
	if validityDays < 0 {
		return "", fmt.Errorf("%w: negative validity %d", ErrInvalidLicenseRequest, validityDays)
	}
	return issuer.GenerateLicenseKey(identity, validityDays)
}
