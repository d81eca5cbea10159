package chainwalk

// TrustAnchor is a caller-supplied root of trust: a subject name and
// public key the caller has decided to trust directly, independent of any
// certificate signing it. Unlike a ParsedCert, a TrustAnchor carries no
// validity period, EKU, or basic constraints of its own — it is trusted
// unconditionally for whatever subCACount depth the chain search allows
// beneath it.
type TrustAnchor struct {
	Subject         []byte
	SPKI            []byte
	NameConstraints []byte // nil if the anchor asserts none
}

// NewTrustAnchor extracts a TrustAnchor from the DER encoding of a root
// certificate: its Subject, SubjectPublicKeyInfo, and NameConstraints
// extension (if present). rootCertDER is parsed with the same strictness
// as any other certificate; callers that already have a Subject/SPKI pair
// from some other source (e.g. an offline-administered trust store
// format) can construct a TrustAnchor directly instead of calling this.
func NewTrustAnchor(rootCertDER []byte) (*TrustAnchor, error) {
	cert, err := parseCert(rootCertDER, AsEndEntity())
	if err != nil {
		return nil, err
	}
	return &TrustAnchor{
		Subject:         cert.subject,
		SPKI:            cert.spki,
		NameConstraints: cert.nameConstraints,
	}, nil
}
