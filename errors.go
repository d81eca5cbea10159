package chainwalk

// Error is a terminal, value-comparable failure. Chain search treats every
// Error as non-fatal to the search as a whole: a candidate that fails is
// simply skipped in favor of the next one, and UnknownIssuer is returned
// only once every candidate has been tried. Outside of chain search, the
// first Error encountered is returned verbatim; validation never partially
// accepts.
type Error int

const (
	// BadDER means some ASN.1 DER-encoded item could not be decoded.
	BadDER Error = iota + 1

	// BadDERTime means an ASN.1 UTCTime or GeneralizedTime value was
	// malformed or used a non-Zulu time zone.
	BadDERTime

	// ExtensionValueInvalid means a recognized X.509 extension occurred
	// more than once, or its value did not parse as DER.
	ExtensionValueInvalid

	// UnsupportedCertVersion means the certificate is not an X.509 v3
	// certificate.
	UnsupportedCertVersion

	// UnsupportedCriticalExtension means the certificate carries an
	// extension marked critical that this package does not understand.
	UnsupportedCriticalExtension

	// CertExpired means the validation time is later than the
	// certificate's notAfter time.
	CertExpired

	// CertNotValidYet means the validation time is earlier than the
	// certificate's notBefore time.
	CertNotValidYet

	// InvalidCertValidity means the certificate's notBefore time is later
	// than its notAfter time.
	InvalidCertValidity

	// CertNotValidForName means the certificate does not cover the
	// requested DNS name.
	CertNotValidForName

	// InvalidReferenceName means the name passed to
	// VerifyValidForDNSName is malformed, not the certificate.
	InvalidReferenceName

	// NameConstraintViolation means a CA in the chain carries
	// NameConstraints that exclude a name the certificate asserts.
	NameConstraintViolation

	// PathLenConstraintViolated means a CA's pathLenConstraint was
	// exceeded by the number of subordinate CAs beneath it.
	PathLenConstraintViolated

	// CAUsedAsEndEntity means a certificate with Basic Constraints
	// CA:true was used as an end-entity certificate.
	CAUsedAsEndEntity

	// EndEntityUsedAsCA means a certificate without Basic Constraints
	// CA:true was used to issue another certificate.
	EndEntityUsedAsCA

	// RequiredEKUNotFound means the certificate's Extended Key Usage
	// extension (or its absence) does not permit the required purpose.
	RequiredEKUNotFound

	// SignatureAlgorithmMismatch means the signature algorithm recorded
	// inside TBSCertificate does not byte-for-byte match the outer
	// signatureAlgorithm field.
	SignatureAlgorithmMismatch

	// InvalidSignatureForPublicKey means the cryptographic signature
	// check itself failed.
	InvalidSignatureForPublicKey

	// UnsupportedSignatureAlgorithm means the signature's algorithm OID
	// does not match any algorithm in the caller's accepted set.
	UnsupportedSignatureAlgorithm

	// UnsupportedSignatureAlgorithmForPublicKey means the signature
	// algorithm's expected public-key family does not match the
	// algorithm identifier carried in the signer's SubjectPublicKeyInfo.
	UnsupportedSignatureAlgorithmForPublicKey

	// UnknownIssuer means no trust anchor or intermediate could be found
	// that both names the certificate's issuer and produces a chain that
	// validates end-to-end.
	UnknownIssuer
)

func (e Error) Error() string {
	switch e {
	case BadDER:
		return "chainwalk: invalid DER encoding"
	case BadDERTime:
		return "chainwalk: invalid DER-encoded time"
	case ExtensionValueInvalid:
		return "chainwalk: invalid or duplicated extension value"
	case UnsupportedCertVersion:
		return "chainwalk: certificate is not X.509 v3"
	case UnsupportedCriticalExtension:
		return "chainwalk: unsupported critical extension"
	case CertExpired:
		return "chainwalk: certificate has expired"
	case CertNotValidYet:
		return "chainwalk: certificate is not valid yet"
	case InvalidCertValidity:
		return "chainwalk: certificate notBefore is after notAfter"
	case CertNotValidForName:
		return "chainwalk: certificate is not valid for the requested name"
	case InvalidReferenceName:
		return "chainwalk: the reference DNS name is malformed"
	case NameConstraintViolation:
		return "chainwalk: certificate violates a name constraint"
	case PathLenConstraintViolated:
		return "chainwalk: certificate chain violates a path length constraint"
	case CAUsedAsEndEntity:
		return "chainwalk: CA certificate used as an end-entity certificate"
	case EndEntityUsedAsCA:
		return "chainwalk: end-entity certificate used as a CA"
	case RequiredEKUNotFound:
		return "chainwalk: certificate does not permit the required key usage"
	case SignatureAlgorithmMismatch:
		return "chainwalk: TBSCertificate and outer signature algorithms differ"
	case InvalidSignatureForPublicKey:
		return "chainwalk: signature is invalid for the public key"
	case UnsupportedSignatureAlgorithm:
		return "chainwalk: signature algorithm is not in the accepted set"
	case UnsupportedSignatureAlgorithmForPublicKey:
		return "chainwalk: signature algorithm does not match public key type"
	case UnknownIssuer:
		return "chainwalk: no valid issuer could be found for the certificate"
	default:
		return "chainwalk: unknown error"
	}
}
