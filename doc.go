// Package chainwalk validates X.509 certificate chains for TLS server
// authentication. An end-entity certificate, together with the
// intermediates a peer presents and the trust anchors a caller trusts
// locally, is checked for cryptographic and semantic acceptability at a
// given time, for validity against a DNS name, and for raw signature
// correctness.
//
// Server certificate processing in a TLS connection consists of three
// independent steps, all of which are necessary:
//
//   - EndEntityCert.VerifyTLSServerChain: verify that the server's
//     certificate chains to a trusted root and is currently valid.
//   - EndEntityCert.VerifyValidForDNSName: verify that the certificate is
//     valid for the host being connected to.
//   - EndEntityCert.VerifySignature: verify a signature made with the
//     server's certified key.
//
// These steps are deliberately not combined into a single call: some
// callers run them in parallel, and ParseEndEntity is cheap and
// deterministic enough to call once per step if needed.
//
// Hashing, RSA/ECDSA verification, and bignum/EC math are not implemented
// here; they are delegated to the standard library (crypto/sha1,
// crypto/sha256, crypto/sha512, crypto/rsa, crypto/ecdsa, crypto/x509). Revocation
// checking (OCSP/CRL), HPKP, and policy-OID processing are not
// implemented at all.
package chainwalk
