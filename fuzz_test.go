package chainwalk

import (
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/rand"
	"crypto/x509"
	"testing"

	fuzz "github.com/AdaLogics/go-fuzz-headers"
)

// FuzzParseEndEntity feeds adversarial bytes through the full certificate
// parser, asserting only that it never panics: ParseEndEntity must fail
// cleanly on anything that is not a well-formed X.509 v3 certificate.
func FuzzParseEndEntity(f *testing.F) {
	if der, err := mintSelfSignedForFuzz(); err == nil {
		f.Add(der)
	}
	f.Add([]byte{})
	f.Add([]byte{0x30, 0x00})
	f.Add([]byte{0xff, 0xff, 0xff, 0xff})

	f.Fuzz(func(t *testing.T, data []byte) {
		_, _ = ParseEndEntity(data)
	})
}

// FuzzReaderExpect drives the low-level DER reader directly from a
// fuzz-controlled consumer, covering malformed tag/length encodings that a
// hand-built certificate fixture would rarely stumble into on its own.
func FuzzReaderExpect(f *testing.F) {
	f.Add([]byte{byte(TagSequence), 0x02, 0x01, 0x00})
	f.Add([]byte{byte(TagInteger), 0x81, 0x01, 0x00})

	f.Fuzz(func(t *testing.T, data []byte) {
		fc := fuzz.NewConsumer(data)
		tagByte, err := fc.GetByte()
		if err != nil {
			return
		}
		remaining, err := fc.GetBytes()
		if err != nil {
			return
		}
		r := NewReader(remaining)
		_, _ = r.Expect(Tag(tagByte))
	})
}

// FuzzNameConstraints exercises the NameConstraints/SAN decoders, which
// unwrap an extra nested SEQUENCE before reaching individual GeneralName
// entries and are consequently the most tag-sensitive code in this package.
func FuzzNameConstraints(f *testing.F) {
	f.Fuzz(func(t *testing.T, data []byte) {
		fc := fuzz.NewConsumer(data)
		ncBytes, err := fc.GetBytes()
		if err != nil {
			return
		}
		sanBytes, err := fc.GetBytes()
		if err != nil {
			return
		}
		_, _, _ = parseNameConstraints(ncBytes)
		_, _ = parseDNSNamesFromSAN(sanBytes)
	})
}

// mintSelfSignedForFuzz builds one self-signed certificate to seed the
// FuzzParseEndEntity corpus with a structurally valid starting point.
func mintSelfSignedForFuzz() ([]byte, error) {
	key, err := ecdsa.GenerateKey(elliptic.P256(), rand.Reader)
	if err != nil {
		return nil, err
	}
	tmpl := rootTemplate("fuzz-seed")
	return x509.CreateCertificate(rand.Reader, tmpl, tmpl, &key.PublicKey, key)
}
