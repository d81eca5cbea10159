package chainwalk

// OID byte literals below are the raw DER content octets of an OBJECT
// IDENTIFIER (i.e. what ReadOID returns), encoded by hand exactly as
// original_source/src/der.rs's oid!/oid_1_2_840_10045!/oid_1_2_840_113549!
// macros do, rather than decoded at runtime from an arc-number list: every
// use of these values is a byte-identical comparison, so there is nothing
// to gain from a general-purpose OID parser.

// id-kp-serverAuth: { id-pkix 3 1 }, id-pkix = { 1 3 6 1 5 5 7 }.
var ekuServerAuth = []byte{(1 * 40) + 3, 6, 1, 5, 5, 7, 3, 1}

// id-kp-OCSPSigning: { id-pkix 3 9 }.
var ekuOCSPSigning = []byte{(1 * 40) + 3, 6, 1, 5, 5, 7, 3, 9}

// id-Netscape-stepUp: { 2 16 840 1 113730 4 1 }. Comodo issued
// certificates relying on this OID being accepted in place of
// id-kp-serverAuth on CA certificates; see bugzilla.mozilla.org/982292.
var ekuNetscapeStepUp = []byte{(2 * 40) + 16, 0x86, 0x48, 0x01, 0x86, 0xf8, 0x42, 0x04, 0x01}

// Signature algorithm OIDs.
var (
	oidECDSAWithSHA1   = []byte{(1 * 40) + 2, 0x86, 0x48, 0xce, 0x3d, 0x04, 0x01}
	oidECDSAWithSHA256 = []byte{(1 * 40) + 2, 0x86, 0x48, 0xce, 0x3d, 0x04, 0x03, 0x02}
	oidECDSAWithSHA384 = []byte{(1 * 40) + 2, 0x86, 0x48, 0xce, 0x3d, 0x04, 0x03, 0x03}
	oidECDSAWithSHA512 = []byte{(1 * 40) + 2, 0x86, 0x48, 0xce, 0x3d, 0x04, 0x03, 0x04}

	oidRSAWithSHA1   = []byte{(1 * 40) + 2, 0x86, 0x48, 0x86, 0xf7, 0x0d, 0x01, 0x01, 0x05}
	oidRSAWithSHA256 = []byte{(1 * 40) + 2, 0x86, 0x48, 0x86, 0xf7, 0x0d, 0x01, 0x01, 0x0b}
	oidRSAWithSHA384 = []byte{(1 * 40) + 2, 0x86, 0x48, 0x86, 0xf7, 0x0d, 0x01, 0x01, 0x0c}
	oidRSAWithSHA512 = []byte{(1 * 40) + 2, 0x86, 0x48, 0x86, 0xf7, 0x0d, 0x01, 0x01, 0x0d}
)

// Public key algorithm OIDs, as carried in SubjectPublicKeyInfo.
var (
	oidPublicKeyECDSA = []byte{(1 * 40) + 2, 0x86, 0x48, 0xce, 0x3d, 0x02, 0x01}
	oidPublicKeyRSA   = []byte{(1 * 40) + 2, 0x86, 0x48, 0x86, 0xf7, 0x0d, 0x01, 0x01, 0x01}
)

// Named curve OIDs, as carried in an ECDSA SubjectPublicKeyInfo's
// algorithm parameters.
var (
	oidCurveP256 = []byte{(1 * 40) + 2, 0x86, 0x48, 0xce, 0x3d, 0x03, 0x01, 0x07}
	oidCurveP384 = []byte{(1 * 40) + 3, 0x81, 0x04, 0x00, 0x22}
)

// Extension OIDs recognized inside Certificate extensions.
var (
	oidExtBasicConstraints = []byte{(2 * 40) + 5, 0x1d, 0x13}
	oidExtKeyUsage         = []byte{(2 * 40) + 5, 0x1d, 0x0f}
	oidExtEKU              = []byte{(2 * 40) + 5, 0x1d, 0x25}
	oidExtSubjectAltName   = []byte{(2 * 40) + 5, 0x1d, 0x11}
	oidExtNameConstraints  = []byte{(2 * 40) + 5, 0x1d, 0x1e}
)

func oidEqual(a, b []byte) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
