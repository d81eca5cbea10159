package chainwalk

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestVerifySignedDataAndRawSignature(t *testing.T) {
	rootDER, rootKey := mintCert(t, rootTemplate("root"), nil, nil)
	root, err := parseCert(rootDER, AsEndEntity())
	require.NoError(t, err)

	leafDER, _ := mintCert(t, leafTemplate("leaf", "example.com"), rootTemplate("root"), rootKey)
	leaf, err := parseCert(leafDER, AsEndEntity())
	require.NoError(t, err)

	algs := []*SignatureAlgorithm{ECDSAP256SHA256}
	require.NoError(t, verifySignedData(algs, root.spki, leaf.signedData))

	// Tampering with the signed bytes must invalidate the signature.
	tampered := leaf.signedData
	tamperedTBS := append([]byte{}, tampered.TBS...)
	tamperedTBS[len(tamperedTBS)-1] ^= 0xff
	tampered.TBS = tamperedTBS
	require.Equal(t, InvalidSignatureForPublicKey, verifySignedData(algs, root.spki, tampered))

	// An algorithm not in the accepted set is rejected even though the
	// signature itself is valid.
	require.Equal(t, UnsupportedSignatureAlgorithm, verifySignedData([]*SignatureAlgorithm{RSAPKCS1_2048_8192_SHA256}, root.spki, leaf.signedData))
}

func TestVerifySignatureDirect(t *testing.T) {
	der, key := mintCert(t, leafTemplate("signer", "signer.example.com"), nil, nil)
	cert, err := parseCert(der, AsEndEntity())
	require.NoError(t, err)

	message := []byte("tls certificate verify payload")
	digest := sha256Sum(message)
	sig, err := signWithKey(key, digest)
	require.NoError(t, err)

	require.NoError(t, verifySignature(ECDSAP256SHA256, cert.spki, message, sig))

	sig[0] ^= 0xff
	require.Equal(t, InvalidSignatureForPublicKey, verifySignature(ECDSAP256SHA256, cert.spki, message, sig))
}
