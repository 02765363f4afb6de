// Package certificate issues the derived KYC certificate artifact at the end
// of a completed flow. Generation is a pure function of the current instant:
// the certificate ID is derived from the timestamp and the validity window is
// issue time plus exactly 5*365 days (the original system ignored leap years
// and this one reproduces that).
package certificate

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"kycsim/internal/kyc/models"
	"kycsim/internal/kyc/providers"
)

// ValidityWindow is the fixed certificate lifetime.
const ValidityWindow = 5 * 365 * 24 * time.Hour

// Claims every certificate carries, in issue order.
var certificateClaims = []string{
	"identity_verified",
	"aadhaar_authenticated",
	"pan_linked",
	"ckyc_checked",
}

// Issuer mints certificates, optionally signing them as sandbox JWTs.
type Issuer struct {
	signingKey []byte
}

func NewIssuer(signingKey string) *Issuer {
	return &Issuer{signingKey: []byte(signingKey)}
}

// Issue produces a certificate for the given instant. The token is a signed
// demo artifact for UIs to display; it grants nothing.
func (i *Issuer) Issue(now time.Time) (*models.Certificate, error) {
	cert := &models.Certificate{
		CertificateID: providers.SimID("KYC_CERT", now),
		IssuedAt:      now,
		ValidUntil:    now.Add(ValidityWindow),
		Claims:        append([]string(nil), certificateClaims...),
		Status:        "Valid",
	}

	token, err := i.mintToken(cert)
	if err != nil {
		return nil, fmt.Errorf("mint certificate token: %w", err)
	}
	cert.Token = token
	return cert, nil
}

func (i *Issuer) mintToken(cert *models.Certificate) (string, error) {
	claims := jwt.MapClaims{
		"jti":    cert.CertificateID,
		"iss":    "kycsim",
		"iat":    cert.IssuedAt.Unix(),
		"exp":    cert.ValidUntil.Unix(),
		"claims": cert.Claims,
		"status": cert.Status,
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(i.signingKey)
}

// ParseToken verifies a certificate token and returns its claims. Demo UIs
// use this to show the decoded certificate.
func (i *Issuer) ParseToken(token string) (jwt.MapClaims, error) {
	parsed, err := jwt.Parse(token, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return i.signingKey, nil
	})
	if err != nil {
		return nil, err
	}
	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok || !parsed.Valid {
		return nil, fmt.Errorf("invalid certificate token")
	}
	return claims, nil
}
