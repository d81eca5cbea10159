package chainwalk

import "crypto"

// publicKeyFamily identifies the key type a SignatureAlgorithm expects.
type publicKeyFamily int

const (
	familyECDSA publicKeyFamily = iota + 1
	familyRSA
)

// SignatureAlgorithm names one entry from a fixed catalog: ECDSA over
// P-256/P-384 with SHA-1/256/384/512, and RSA PKCS#1 v1.5 with 2048-8192
// bit keys (3072-minimum for the SHA-384 variant). Callers build the
// []*SignatureAlgorithm they are willing to trust and pass it to
// VerifyTLSServerChain/VerifySignature; this package never chooses an
// algorithm on the caller's behalf.
type SignatureAlgorithm struct {
	name       string
	oid        []byte
	family     publicKeyFamily
	curveOID   []byte // ECDSA only; must be P-256 or P-384, a nil or other value matches no key
	hash       crypto.Hash
	minRSABits int
	maxRSABits int
}

func (a *SignatureAlgorithm) String() string { return a.name }

// The fixed signature-algorithm catalog. SHA-1 variants are included only
// for legacy interoperability; callers choose whether to include them in
// the accepted set they pass in.
var (
	ECDSAP256SHA1   = &SignatureAlgorithm{name: "ECDSA_P256_SHA1", oid: oidECDSAWithSHA1, family: familyECDSA, curveOID: oidCurveP256, hash: crypto.SHA1}
	ECDSAP256SHA256 = &SignatureAlgorithm{name: "ECDSA_P256_SHA256", oid: oidECDSAWithSHA256, family: familyECDSA, curveOID: oidCurveP256, hash: crypto.SHA256}
	ECDSAP256SHA384 = &SignatureAlgorithm{name: "ECDSA_P256_SHA384", oid: oidECDSAWithSHA384, family: familyECDSA, curveOID: oidCurveP256, hash: crypto.SHA384}
	ECDSAP256SHA512 = &SignatureAlgorithm{name: "ECDSA_P256_SHA512", oid: oidECDSAWithSHA512, family: familyECDSA, curveOID: oidCurveP256, hash: crypto.SHA512}

	ECDSAP384SHA1   = &SignatureAlgorithm{name: "ECDSA_P384_SHA1", oid: oidECDSAWithSHA1, family: familyECDSA, curveOID: oidCurveP384, hash: crypto.SHA1}
	ECDSAP384SHA256 = &SignatureAlgorithm{name: "ECDSA_P384_SHA256", oid: oidECDSAWithSHA256, family: familyECDSA, curveOID: oidCurveP384, hash: crypto.SHA256}
	ECDSAP384SHA384 = &SignatureAlgorithm{name: "ECDSA_P384_SHA384", oid: oidECDSAWithSHA384, family: familyECDSA, curveOID: oidCurveP384, hash: crypto.SHA384}
	ECDSAP384SHA512 = &SignatureAlgorithm{name: "ECDSA_P384_SHA512", oid: oidECDSAWithSHA512, family: familyECDSA, curveOID: oidCurveP384, hash: crypto.SHA512}

	RSAPKCS1_2048_8192_SHA1   = &SignatureAlgorithm{name: "RSA_PKCS1_2048_8192_SHA1", oid: oidRSAWithSHA1, family: familyRSA, hash: crypto.SHA1, minRSABits: 2048, maxRSABits: 8192}
	RSAPKCS1_2048_8192_SHA256 = &SignatureAlgorithm{name: "RSA_PKCS1_2048_8192_SHA256", oid: oidRSAWithSHA256, family: familyRSA, hash: crypto.SHA256, minRSABits: 2048, maxRSABits: 8192}
	RSAPKCS1_2048_8192_SHA384 = &SignatureAlgorithm{name: "RSA_PKCS1_2048_8192_SHA384", oid: oidRSAWithSHA384, family: familyRSA, hash: crypto.SHA384, minRSABits: 2048, maxRSABits: 8192}
	RSAPKCS1_2048_8192_SHA512 = &SignatureAlgorithm{name: "RSA_PKCS1_2048_8192_SHA512", oid: oidRSAWithSHA512, family: familyRSA, hash: crypto.SHA512, minRSABits: 2048, maxRSABits: 8192}

	RSAPKCS1_3072_8192_SHA384 = &SignatureAlgorithm{name: "RSA_PKCS1_3072_8192_SHA384", oid: oidRSAWithSHA384, family: familyRSA, hash: crypto.SHA384, minRSABits: 3072, maxRSABits: 8192}
)
