package chainwalk

import "bytes"

// eeOrCAKind discriminates the two cases of EndEntityOrCA.
type eeOrCAKind int

const (
	kindEndEntity eeOrCAKind = iota
	kindCA
)

// EndEntityOrCA is a tagged union: either the certificate being looked at
// is the original end-entity certificate, or it is a CA certificate found
// while walking up the chain, in which case it carries a back-pointer to
// the certificate it issued (its "child" on the walk). The back-pointer's
// lifetime is the enclosing chain-walk recursion: children are always
// created strictly before the parents that reference them, on the call
// stack, so no cycle can be constructed by this package itself.
type EndEntityOrCA struct {
	kind  eeOrCAKind
	child *ParsedCert
}

// AsEndEntity returns the EndEntityOrCA value used for the original
// end-entity certificate passed to ParseEndEntity.
func AsEndEntity() EndEntityOrCA { return EndEntityOrCA{kind: kindEndEntity} }

// AsCA returns the EndEntityOrCA value used while parsing a candidate
// issuer of child during chain search.
func AsCA(child *ParsedCert) EndEntityOrCA { return EndEntityOrCA{kind: kindCA, child: child} }

// IsCA reports whether this certificate is being used as a CA, i.e.
// whether it has a child on the current walk.
func (e EndEntityOrCA) IsCA() bool { return e.kind == kindCA }

// SignedData is the triple needed to verify a certificate's signature
// under its issuer's public key: the exact bytes of the signed
// TBSCertificate, the signature algorithm identifier as it appears
// outside TBSCertificate, and the raw signature bytes.
type SignedData struct {
	TBS       []byte
	Algorithm []byte
	Signature []byte
}

// ParsedCert is an X.509 certificate decoded just enough to drive chain
// validation. Every field is a sub-slice of the []byte passed to
// parseCert; none of them are copied, so a ParsedCert must not be used
// after its backing array is no longer reachable from the caller's own
// reference to it.
type ParsedCert struct {
	eeOrCA     EndEntityOrCA
	signedData SignedData

	issuer  []byte
	subject []byte
	spki    []byte

	// validity holds the content octets of the Validity SEQUENCE (the
	// two notBefore/notAfter time TLVs), not including the SEQUENCE's
	// own tag and length.
	validity []byte

	// Extension values below are the content octets of each
	// extension's OCTET STRING, or nil if the extension was absent.
	basicConstraints []byte
	eku              []byte
	nameConstraints  []byte
	subjectAltName   []byte
}

// Issuer returns the DER-encoded issuer Name.
func (c *ParsedCert) Issuer() []byte { return c.issuer }

// Subject returns the DER-encoded subject Name.
func (c *ParsedCert) Subject() []byte { return c.subject }

// SPKI returns the DER-encoded SubjectPublicKeyInfo.
func (c *ParsedCert) SPKI() []byte { return c.spki }

// parseCert decodes certDER as an X.509 v3 Certificate, tagging the
// result as either the end-entity certificate or (while chain-building) a
// candidate CA issuing eeOrCA.child.
func parseCert(certDER []byte, eeOrCA EndEntityOrCA) (*ParsedCert, error) {
	outer := NewReader(certDER)
	_, certValue, err := outer.ExpectRaw(TagSequence)
	if err != nil {
		return nil, err
	}
	if !outer.AtEnd() {
		return nil, BadDER
	}

	inner := NewReader(certValue)
	tbsRaw, tbsValue, err := inner.ExpectRaw(TagSequence)
	if err != nil {
		return nil, err
	}
	algRaw, _, err := inner.ExpectRaw(TagSequence)
	if err != nil {
		return nil, err
	}
	signature, err := inner.BitStringNoUnusedBits()
	if err != nil {
		return nil, err
	}
	if !inner.AtEnd() {
		return nil, BadDER
	}

	cert, err := parseTBSCertificate(tbsValue)
	if err != nil {
		return nil, err
	}
	if !bytes.Equal(cert.signedData.Algorithm, algRaw) {
		return nil, SignatureAlgorithmMismatch
	}

	cert.eeOrCA = eeOrCA
	cert.signedData.TBS = tbsRaw
	cert.signedData.Signature = signature
	return cert, nil
}

func parseTBSCertificate(tbsValue []byte) (*ParsedCert, error) {
	tbs := NewReader(tbsValue)

	if !tbs.Peek(TagContextConstructed0) {
		// Version absent means v1; this package only accepts v3.
		return nil, UnsupportedCertVersion
	}
	_, versionValue, err := tbs.ExpectRaw(TagContextConstructed0)
	if err != nil {
		return nil, err
	}
	versionInt, err := NewReader(versionValue).PositiveInteger()
	if err != nil {
		return nil, err
	}
	if len(versionInt) != 1 || versionInt[0] != 2 {
		return nil, UnsupportedCertVersion
	}

	if _, err := tbs.PositiveInteger(); err != nil { // serialNumber, not retained
		return nil, err
	}

	sigAlgRaw, _, err := tbs.ExpectRaw(TagSequence) // signature AlgorithmIdentifier
	if err != nil {
		return nil, err
	}

	issuerRaw, _, err := tbs.ExpectRaw(TagSequence) // issuer Name
	if err != nil {
		return nil, err
	}

	_, validityValue, err := tbs.ExpectRaw(TagSequence) // validity
	if err != nil {
		return nil, err
	}

	subjectRaw, _, err := tbs.ExpectRaw(TagSequence) // subject Name
	if err != nil {
		return nil, err
	}

	spkiRaw, _, err := tbs.ExpectRaw(TagSequence) // subjectPublicKeyInfo
	if err != nil {
		return nil, err
	}

	// issuerUniqueID [1] IMPLICIT BIT STRING OPTIONAL
	if tbs.Peek(Tag(0x81)) {
		if _, _, err := tbs.ExpectRaw(Tag(0x81)); err != nil {
			return nil, err
		}
	}
	// subjectUniqueID [2] IMPLICIT BIT STRING OPTIONAL
	if tbs.Peek(Tag(0x82)) {
		if _, _, err := tbs.ExpectRaw(Tag(0x82)); err != nil {
			return nil, err
		}
	}

	var basicConstraints, eku, nameConstraints, subjectAltName []byte
	if tbs.Peek(TagContextConstructed3) {
		_, extValue, err := tbs.ExpectRaw(TagContextConstructed3)
		if err != nil {
			return nil, err
		}
		basicConstraints, eku, nameConstraints, subjectAltName, err = parseExtensions(extValue)
		if err != nil {
			return nil, err
		}
	}

	if !tbs.AtEnd() {
		return nil, BadDER
	}

	return &ParsedCert{
		signedData:       SignedData{Algorithm: sigAlgRaw},
		issuer:           issuerRaw,
		subject:          subjectRaw,
		spki:             spkiRaw,
		validity:         validityValue,
		basicConstraints: basicConstraints,
		eku:              eku,
		nameConstraints:  nameConstraints,
		subjectAltName:   subjectAltName,
	}, nil
}

// parseExtensions decodes the content of a [3] EXPLICIT Extensions field:
// a SEQUENCE of Extension { OID, critical BOOLEAN DEFAULT FALSE, OCTET
// STRING }. At most one occurrence of each recognized extension is
// permitted; an unrecognized extension marked critical is an error.
func parseExtensions(extValue []byte) (basicConstraints, eku, nameConstraints, subjectAltName []byte, err error) {
	seqValue, err := NewReader(extValue).Expect(TagSequence)
	if err != nil {
		return nil, nil, nil, nil, err
	}

	list := NewReader(seqValue)
	seenKeyUsage := false
	for {
		elemValue, err := list.Expect(TagSequence)
		if err != nil {
			return nil, nil, nil, nil, err
		}
		elem := NewReader(elemValue)

		oid, err := elem.ReadOID()
		if err != nil {
			return nil, nil, nil, nil, err
		}
		critical, err := elem.OptionalBoolean()
		if err != nil {
			return nil, nil, nil, nil, err
		}
		value, err := elem.Expect(TagOctetString)
		if err != nil {
			return nil, nil, nil, nil, err
		}
		if !elem.AtEnd() {
			return nil, nil, nil, nil, ExtensionValueInvalid
		}

		switch {
		case oidEqual(oid, oidExtBasicConstraints):
			if basicConstraints != nil {
				return nil, nil, nil, nil, ExtensionValueInvalid
			}
			basicConstraints = value
		case oidEqual(oid, oidExtKeyUsage):
			// KeyUsage itself is not consulted; only Basic Constraints and
			// Extended Key Usage drive the is-CA / purpose checks.
			if seenKeyUsage {
				return nil, nil, nil, nil, ExtensionValueInvalid
			}
			seenKeyUsage = true
		case oidEqual(oid, oidExtEKU):
			if eku != nil {
				return nil, nil, nil, nil, ExtensionValueInvalid
			}
			eku = value
		case oidEqual(oid, oidExtSubjectAltName):
			if subjectAltName != nil {
				return nil, nil, nil, nil, ExtensionValueInvalid
			}
			subjectAltName = value
		case oidEqual(oid, oidExtNameConstraints):
			if nameConstraints != nil {
				return nil, nil, nil, nil, ExtensionValueInvalid
			}
			nameConstraints = value
		default:
			if critical {
				return nil, nil, nil, nil, UnsupportedCriticalExtension
			}
		}

		if list.AtEnd() {
			break
		}
	}

	return basicConstraints, eku, nameConstraints, subjectAltName, nil
}
