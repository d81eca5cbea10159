package chainwalk

import (
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/rand"
	"crypto/sha256"
	"crypto/x509"
	"crypto/x509/pkix"
	"encoding/asn1"
	"math/big"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func sha256Sum(message []byte) []byte {
	digest := sha256.Sum256(message)
	return digest[:]
}

func signWithKey(key *ecdsa.PrivateKey, digest []byte) ([]byte, error) {
	return ecdsa.SignASN1(rand.Reader, key, digest)
}

// oidNetscapeStepUp is the asn1.ObjectIdentifier form of ekuNetscapeStepUp,
// for use in test fixtures via x509.Certificate.UnknownExtKeyUsage — the
// stdlib certificate builder has no named constant for it.
var oidNetscapeStepUp = asn1.ObjectIdentifier{2, 16, 840, 1, 113730, 4, 1}

var testSerial int64 = 1

func nextTestSerial() *big.Int {
	testSerial++
	return big.NewInt(testSerial)
}

func newTestKey(t *testing.T) *ecdsa.PrivateKey {
	t.Helper()
	key, err := ecdsa.GenerateKey(elliptic.P256(), rand.Reader)
	require.NoError(t, err)
	return key
}

// mintCert signs tmpl with signerKey (parentTmpl, signerKey) == (nil, nil)
// for a self-signed certificate, and returns the resulting DER encoding
// along with the subject key minted for it.
func mintCert(t *testing.T, tmpl *x509.Certificate, parentTmpl *x509.Certificate, signerKey *ecdsa.PrivateKey) ([]byte, *ecdsa.PrivateKey) {
	t.Helper()
	key := newTestKey(t)

	parent := parentTmpl
	signer := signerKey
	if parent == nil {
		parent = tmpl
		signer = key
	}

	der, err := x509.CreateCertificate(rand.Reader, tmpl, parent, &key.PublicKey, signer)
	require.NoError(t, err)
	return der, key
}

func baseTemplate(cn string) *x509.Certificate {
	now := time.Date(2026, time.July, 1, 0, 0, 0, 0, time.UTC)
	return &x509.Certificate{
		SerialNumber: nextTestSerial(),
		Subject:      pkix.Name{CommonName: cn},
		NotBefore:    now.Add(-24 * time.Hour),
		NotAfter:     now.Add(365 * 24 * time.Hour),
	}
}

func rootTemplate(cn string) *x509.Certificate {
	tmpl := baseTemplate(cn)
	tmpl.IsCA = true
	tmpl.BasicConstraintsValid = true
	return tmpl
}

func caTemplate(cn string) *x509.Certificate {
	return rootTemplate(cn)
}

func leafTemplate(cn string, dnsNames ...string) *x509.Certificate {
	tmpl := baseTemplate(cn)
	tmpl.DNSNames = dnsNames
	return tmpl
}
