package chainwalk

// EndEntityCert is a parsed end-entity (leaf) certificate, ready to be
// checked against a chain of trust, a reference DNS name, or a bare
// signature. It is the public entry point into this package's
// verification logic; NewTrustAnchor is the other exported way to parse a
// certificate.
type EndEntityCert struct {
	cert *ParsedCert
}

// ParseEndEntity parses certDER as an X.509 v3 certificate to be used as
// an end-entity certificate. It performs only structural DER validation;
// no semantic check (validity period, basic constraints, EKU, signature)
// runs until VerifyTLSServerChain is called.
func ParseEndEntity(certDER []byte) (*EndEntityCert, error) {
	cert, err := parseCert(certDER, AsEndEntity())
	if err != nil {
		return nil, err
	}
	return &EndEntityCert{cert: cert}, nil
}

// VerifyTLSServerChain builds and validates a certification path from e up
// to one of anchors, requiring id-kp-serverAuth (or, for an intermediate,
// the equivalent id-Netscape-stepUp) on every certificate in the path,
// end entity included, that carries an EKU extension, and validity at time
// now. intermediates is the pool of
// candidate issuer certificates to search, in DER form; their order does
// not affect the result, only (in adversarial cases) how much work is
// done to find it.
func (e *EndEntityCert) VerifyTLSServerChain(sigAlgs []*SignatureAlgorithm, anchors []*TrustAnchor, intermediates [][]byte, now Time) error {
	return buildChain(ekuServerAuth, sigAlgs, anchors, intermediates, e.cert, now, 0)
}

// VerifyValidForDNSName reports whether e's SubjectAltName asserts
// dnsName, which must already be in its canonical lower-case ASCII form.
// Matching follows the leftmost-label wildcard rule only; CN-based
// matching is not performed here (only name constraint checking
// considers the Subject commonName).
func (e *EndEntityCert) VerifyValidForDNSName(dnsName []byte) error {
	return verifyCertDNSName(e.cert, dnsName)
}

// VerifySignature checks that signature over message was produced under
// sigAlg by e's own public key, independent of any certificate chain. It
// is the collaborator a caller uses to validate something e itself
// signed, such as a TLS CertificateVerify message.
func (e *EndEntityCert) VerifySignature(sigAlg *SignatureAlgorithm, message, signature []byte) error {
	return verifySignature(sigAlg, e.cert.spki, message, signature)
}
