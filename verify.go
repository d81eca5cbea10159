package chainwalk

import "bytes"

// maxSubCACount bounds how many subordinate CA certificates may appear
// between a trust anchor and the end-entity certificate. This ceiling is
// independent of any pathLenConstraint a CA certificate may additionally
// carry; it exists purely to bound the depth of the recursive search over
// untrusted input.
const maxSubCACount = 6

// buildChain is the recursive chain search at the core of
// EndEntityCert.VerifyTLSServerChain. cert is the candidate currently
// being checked; on the first call it is the end-entity certificate
// itself. subCACount counts how many CA certificates (not including cert,
// when cert is itself used as a CA) have been accepted so far on this
// branch of the search.
//
// A candidate issuer that fails any check is simply abandoned in favor of
// the next one; buildChain returns UnknownIssuer only once every trust
// anchor and every intermediate has been tried and none produced a valid
// chain all the way up.
func buildChain(requiredEKU []byte, sigAlgs []*SignatureAlgorithm, anchors []*TrustAnchor, intermediates [][]byte, cert *ParsedCert, now Time, subCACount int) error {
	usedAsCA := cert.eeOrCA.IsCA()

	if err := checkIssuerIndependentProperties(cert, now, usedAsCA, subCACount, requiredEKU); err != nil {
		return err
	}

	if usedAsCA && subCACount >= maxSubCACount {
		return UnknownIssuer
	}

	// TODO: revocation.

	anchorErr := firstSuccess(anchors, func(anchor *TrustAnchor) error {
		if !bytes.Equal(cert.issuer, anchor.Subject) {
			return UnknownIssuer
		}
		if anchor.NameConstraints != nil {
			if err := checkNameConstraints(anchor.NameConstraints, cert); err != nil {
				return err
			}
		}
		return checkSignatures(sigAlgs, cert, anchor.SPKI)
	})
	if anchorErr == nil {
		return nil
	}

	return firstSuccess(intermediates, func(certDER []byte) error {
		potentialIssuer, err := parseCert(certDER, AsCA(cert))
		if err != nil {
			return err
		}
		if !bytes.Equal(potentialIssuer.subject, cert.issuer) {
			return UnknownIssuer
		}

		// Prevent loops; see RFC 4158 section 5.2.
		prev := cert
		for {
			if bytes.Equal(potentialIssuer.spki, prev.spki) && bytes.Equal(potentialIssuer.subject, prev.subject) {
				return UnknownIssuer
			}
			if !prev.eeOrCA.IsCA() {
				break
			}
			prev = prev.eeOrCA.child
		}

		if potentialIssuer.nameConstraints != nil {
			if err := checkNameConstraints(potentialIssuer.nameConstraints, cert); err != nil {
				return err
			}
		}

		nextSubCACount := subCACount
		if usedAsCA {
			nextSubCACount++
		}

		return buildChain(requiredEKU, sigAlgs, anchors, intermediates, potentialIssuer, now, nextSubCACount)
	})
}

// checkSignatures verifies the signature of cert, and then of every
// certificate below it on the chain (following the EndEntityOrCA
// back-pointer down towards the end entity), each against the public key
// of the certificate one level above it. trustAnchorSPKI seeds the first
// verification.
func checkSignatures(sigAlgs []*SignatureAlgorithm, cert *ParsedCert, trustAnchorSPKI []byte) error {
	spki := trustAnchorSPKI
	for {
		if err := verifySignedData(sigAlgs, spki, cert.signedData); err != nil {
			return err
		}
		if !cert.eeOrCA.IsCA() {
			return nil
		}
		spki = cert.spki
		cert = cert.eeOrCA.child
	}
}

// checkIssuerIndependentProperties runs every check on cert that does not
// depend on which issuer ends up being found for it.
func checkIssuerIndependentProperties(cert *ParsedCert, now Time, usedAsCA bool, subCACount int, requiredEKU []byte) error {
	if err := checkValidity(cert.validity, now); err != nil {
		return err
	}
	if err := checkBasicConstraints(cert.basicConstraints, usedAsCA, subCACount); err != nil {
		return err
	}
	if err := checkEKU(cert.eku, usedAsCA, requiredEKU); err != nil {
		return err
	}
	return nil
}

// checkValidity enforces RFC 5280 §4.1.2.5 against a decoded Validity
// SEQUENCE's content octets.
func checkValidity(validityValue []byte, now Time) error {
	r := NewReader(validityValue)
	notBefore, err := TimeChoice(r)
	if err != nil {
		return err
	}
	notAfter, err := TimeChoice(r)
	if err != nil {
		return err
	}
	if !r.AtEnd() {
		return BadDER
	}

	if notAfter.Before(notBefore) {
		return InvalidCertValidity
	}
	if now.Before(notBefore) {
		return CertNotValidYet
	}
	if notAfter.Before(now) {
		return CertExpired
	}
	return nil
}

// checkBasicConstraints enforces RFC 5280 §4.2.1.9. A missing extension is
// treated as cA:false with no pathLenConstraint — bcDER is nil in that
// case, matching how parseExtensions records an absent extension.
func checkBasicConstraints(bcDER []byte, usedAsCA bool, subCACount int) error {
	isCA := false
	var pathLenConstraint *uint8

	if bcDER != nil {
		seqValue, err := NewReader(bcDER).Expect(TagSequence)
		if err != nil {
			return err
		}
		r := NewReader(seqValue)
		isCA, err = r.OptionalBoolean()
		if err != nil {
			return err
		}
		// https://bugzilla.mozilla.org/show_bug.cgi?id=985025: RFC 5280
		// says pathLenConstraint must not appear unless the certificate
		// is a CA certificate, but some real-world end-entity
		// certificates carry it anyway, so it is read unconditionally
		// here rather than only when isCA is true.
		if !r.AtEnd() {
			value, err := r.SmallNonNegativeInteger()
			if err != nil {
				return err
			}
			pathLenConstraint = &value
		}
		if !r.AtEnd() {
			return BadDER
		}
	}

	switch {
	case !usedAsCA && isCA:
		return CAUsedAsEndEntity
	case usedAsCA && !isCA:
		return EndEntityUsedAsCA
	case usedAsCA && isCA && pathLenConstraint != nil && subCACount > int(*pathLenConstraint):
		return PathLenConstraintViolated
	default:
		return nil
	}
}

// checkEKU enforces RFC 5280 §4.2.1.12, following mozilla::pkix and
// Microsoft's interpretation rather than the letter of the RFC:
//
//   - An Extended Key Usage extension on a CA certificate restricts the
//     purposes certificates it issues may be used for, not the CA
//     certificate's own usage.
//   - anyExtendedKeyUsage is never recognized as a match.
//   - id-Netscape-stepUp is accepted in place of id-kp-serverAuth, but
//     only on a certificate being used as a CA: Comodo issued
//     certificates relying on this substitution that don't expire until
//     2020 (bugzilla.mozilla.org/982292).
//   - A missing EKU extension means "any purpose", except that
//     id-kp-OCSPSigning must always be asserted explicitly (RFC 6960
//     §4.2.2.2): otherwise any end-entity certificate could sign OCSP
//     responses on its issuer's behalf.
func checkEKU(ekuDER []byte, usedAsCA bool, requiredEKU []byte) error {
	if ekuDER == nil {
		if oidEqual(requiredEKU, ekuOCSPSigning) {
			return RequiredEKUNotFound
		}
		return nil
	}

	matchStepUp := usedAsCA && oidEqual(requiredEKU, ekuServerAuth)

	seqValue, err := NewReader(ekuDER).Expect(TagSequence)
	if err != nil {
		return err
	}
	r := NewReader(seqValue)
	for {
		oid, err := r.ReadOID()
		if err != nil {
			return err
		}
		if oidEqual(oid, requiredEKU) || (matchStepUp && oidEqual(oid, ekuNetscapeStepUp)) {
			return nil
		}
		if r.AtEnd() {
			return RequiredEKUNotFound
		}
	}
}

// firstSuccess calls f with each item in turn, returning nil as soon as
// one succeeds. If every call fails, it returns UnknownIssuer, discarding
// the individual errors: a failed candidate issuer is not fatal to the
// search as a whole.
func firstSuccess[T any](items []T, f func(T) error) error {
	for _, item := range items {
		if err := f(item); err == nil {
			return nil
		}
	}
	return UnknownIssuer
}
