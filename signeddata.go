package chainwalk

import (
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/rsa"
	_ "crypto/sha1"
	_ "crypto/sha256"
	_ "crypto/sha512"
	"crypto/x509"
)

// verifySignedData checks signed's signature under spki, using whichever
// entry of acceptedAlgorithms matches both the signature's algorithm OID
// and the public key's type/curve/size. The actual hashing and RSA/ECDSA
// verification are delegated to the crypto.Hash registry and crypto/rsa
// and crypto/ecdsa, and the
// bignum/EC math crypto/x509 needs to turn SPKI DER bytes into a
// *rsa.PublicKey/*ecdsa.PublicKey is treated as an external collaborator
// rather than part of this package's own subject matter.
func verifySignedData(acceptedAlgorithms []*SignatureAlgorithm, spki []byte, signed SignedData) error {
	sigOID, err := decodeAlgorithmOID(signed.Algorithm)
	if err != nil {
		return err
	}

	pub, err := x509.ParsePKIXPublicKey(spki)
	if err != nil {
		return BadDER
	}
	spkiOID, err := spkiAlgorithmOID(spki)
	if err != nil {
		return BadDER
	}

	var algorithm *SignatureAlgorithm
	sawMatchingOID := false
	for _, candidate := range acceptedAlgorithms {
		if !oidEqual(candidate.oid, sigOID) {
			continue
		}
		sawMatchingOID = true
		if publicKeyMatches(candidate, spkiOID, pub) {
			algorithm = candidate
			break
		}
	}
	if algorithm == nil {
		if sawMatchingOID {
			return UnsupportedSignatureAlgorithmForPublicKey
		}
		return UnsupportedSignatureAlgorithm
	}

	return verifyWithAlgorithm(algorithm, pub, signed.TBS, signed.Signature)
}

// verifyWithAlgorithm hashes message under algorithm's hash function and
// checks signature against pub, the already-parsed public key.
func verifyWithAlgorithm(algorithm *SignatureAlgorithm, pub any, message, signature []byte) error {
	h := algorithm.hash.New()
	h.Write(message)
	digest := h.Sum(nil)

	switch algorithm.family {
	case familyRSA:
		rsaKey, ok := pub.(*rsa.PublicKey)
		if !ok {
			return UnsupportedSignatureAlgorithmForPublicKey
		}
		if err := rsa.VerifyPKCS1v15(rsaKey, algorithm.hash, digest, signature); err != nil {
			return InvalidSignatureForPublicKey
		}
		return nil
	case familyECDSA:
		ecKey, ok := pub.(*ecdsa.PublicKey)
		if !ok {
			return UnsupportedSignatureAlgorithmForPublicKey
		}
		if !ecdsa.VerifyASN1(ecKey, digest, signature) {
			return InvalidSignatureForPublicKey
		}
		return nil
	default:
		return UnsupportedSignatureAlgorithm
	}
}

// publicKeyMatches reports whether pub is compatible with candidate: the
// SPKI's own algorithm identifier names the key family candidate expects
// (id-ecPublicKey/rsaEncryption, checked directly against spkiOID rather
// than trusted from pub's Go type alone), the Go key type agrees, and for
// RSA the key size falls within the algorithm's accepted range, and for
// ECDSA the curve matches exactly (the catalog has distinct entries per
// curve, unlike RSA's single 2048-8192 bit range).
func publicKeyMatches(candidate *SignatureAlgorithm, spkiOID []byte, pub any) bool {
	switch candidate.family {
	case familyRSA:
		if !oidEqual(spkiOID, oidPublicKeyRSA) {
			return false
		}
		rsaKey, ok := pub.(*rsa.PublicKey)
		if !ok {
			return false
		}
		bits := rsaKey.N.BitLen()
		return bits >= candidate.minRSABits && bits <= candidate.maxRSABits
	case familyECDSA:
		if !oidEqual(spkiOID, oidPublicKeyECDSA) {
			return false
		}
		ecKey, ok := pub.(*ecdsa.PublicKey)
		if !ok {
			return false
		}
		switch {
		case oidEqual(candidate.curveOID, oidCurveP256):
			return ecKey.Curve == elliptic.P256()
		case oidEqual(candidate.curveOID, oidCurveP384):
			return ecKey.Curve == elliptic.P384()
		default:
			return false
		}
	default:
		return false
	}
}

// decodeAlgorithmOID extracts the algorithm OID from the raw DER bytes of
// an AlgorithmIdentifier SEQUENCE. Any parameters present are ignored:
// the signature-algorithm catalog this package supports has none worth
// inspecting (unlike, say, RSA-PSS, which is deliberately not in the
// catalog).
func decodeAlgorithmOID(algorithmIdentifierDER []byte) ([]byte, error) {
	value, err := NewReader(algorithmIdentifierDER).Expect(TagSequence)
	if err != nil {
		return nil, err
	}
	return NewReader(value).ReadOID()
}

// spkiAlgorithmOID extracts the algorithm OID from the content of a
// SubjectPublicKeyInfo SEQUENCE { algorithm AlgorithmIdentifier,
// subjectPublicKey BIT STRING }, the same way decodeAlgorithmOID reads one
// out of a Certificate's signatureAlgorithm field.
func spkiAlgorithmOID(spki []byte) ([]byte, error) {
	content, err := NewReader(spki).Expect(TagSequence)
	if err != nil {
		return nil, err
	}
	algRaw, _, err := NewReader(content).ExpectRaw(TagSequence)
	if err != nil {
		return nil, err
	}
	return decodeAlgorithmOID(algRaw)
}

// verifySignature checks that signature over message was produced by the
// key described in spki, using sigAlg. It is the direct collaborator
// behind EndEntityCert.VerifySignature, so it does not consult a list of
// accepted algorithms or an outer AlgorithmIdentifier — the caller has
// already chosen exactly one algorithm, as happens with a TLS
// DigitallySigned value.
func verifySignature(sigAlg *SignatureAlgorithm, spki, message, signature []byte) error {
	pub, err := x509.ParsePKIXPublicKey(spki)
	if err != nil {
		return BadDER
	}
	spkiOID, err := spkiAlgorithmOID(spki)
	if err != nil {
		return BadDER
	}
	if !publicKeyMatches(sigAlg, spkiOID, pub) {
		return UnsupportedSignatureAlgorithmForPublicKey
	}
	return verifyWithAlgorithm(sigAlg, pub, message, signature)
}
