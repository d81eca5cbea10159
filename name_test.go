package chainwalk

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMatchNameConstraint(t *testing.T) {
	tests := map[string]struct {
		domain, constraint string
		want                bool
	}{
		"exact match":                   {"example.com", "example.com", true},
		"subdomain matches":             {"foo.example.com", "example.com", true},
		"sibling domain does not match": {"evilexample.com", "example.com", false},
		"unrelated domain":              {"example.org", "example.com", false},
		"leading dot excludes exact":    {"example.com", ".example.com", false},
		"leading dot allows subdomain":  {"foo.example.com", ".example.com", true},
		"empty constraint matches all":  {"anything.test", "", true},
		"case insensitive":              {"FOO.EXAMPLE.COM", "example.com", true},
	}
	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			require.Equal(t, test.want, matchNameConstraint(test.domain, test.constraint))
		})
	}
}

func TestMatchDNSName(t *testing.T) {
	tests := map[string]struct {
		pattern, name string
		want          bool
	}{
		"exact match":                      {"example.com", "example.com", true},
		"leftmost wildcard matches":        {"*.example.com", "foo.example.com", true},
		"wildcard does not cross labels":   {"*.example.com", "foo.bar.example.com", false},
		"partial-label wildcard rejected":  {"f*.example.com", "foo.example.com", false},
		"label count mismatch":             {"example.com", "foo.example.com", false},
		"case insensitive":                 {"Example.COM", "example.com", true},
		"wildcard label must still exist":  {"*.example.com", "example.com", false},
	}
	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			got := matchDNSName([]byte(test.pattern), []byte(test.name))
			require.Equal(t, test.want, got)
		})
	}
}

func TestVerifyCertDNSName(t *testing.T) {
	der, _ := mintCert(t, leafTemplate("leaf", "example.com", "*.wild.example.com"), nil, nil)
	cert, err := parseCert(der, AsEndEntity())
	require.NoError(t, err)

	require.NoError(t, verifyCertDNSName(cert, []byte("example.com")))
	require.NoError(t, verifyCertDNSName(cert, []byte("host.wild.example.com")))
	require.Equal(t, CertNotValidForName, verifyCertDNSName(cert, []byte("other.com")))
	require.Equal(t, InvalidReferenceName, verifyCertDNSName(cert, []byte("Example.com")))
	require.Equal(t, InvalidReferenceName, verifyCertDNSName(cert, nil))
}

func TestCheckNameConstraintsViolation(t *testing.T) {
	root := rootTemplate("root")
	root.PermittedDNSDomains = []string{"example.com"}
	root.PermittedDNSDomainsCritical = true
	rootDER, rootKey := mintCert(t, root, nil, nil)
	rootCert, err := parseCert(rootDER, AsEndEntity())
	require.NoError(t, err)
	require.NotNil(t, rootCert.nameConstraints)

	goodLeafDER, _ := mintCert(t, leafTemplate("host.example.com", "host.example.com"), root, rootKey)
	goodLeaf, err := parseCert(goodLeafDER, AsEndEntity())
	require.NoError(t, err)
	require.NoError(t, checkNameConstraints(rootCert.nameConstraints, goodLeaf))

	badLeafDER, _ := mintCert(t, leafTemplate("host.evil.com", "host.evil.com"), root, rootKey)
	badLeaf, err := parseCert(badLeafDER, AsEndEntity())
	require.NoError(t, err)
	require.Equal(t, NameConstraintViolation, checkNameConstraints(rootCert.nameConstraints, badLeaf))
}

func TestCheckNameConstraintsExcluded(t *testing.T) {
	root := rootTemplate("root")
	root.ExcludedDNSDomains = []string{"banned.example.com"}
	rootDER, rootKey := mintCert(t, root, nil, nil)
	rootCert, err := parseCert(rootDER, AsEndEntity())
	require.NoError(t, err)

	leafDER, _ := mintCert(t, leafTemplate("leaf", "host.banned.example.com"), root, rootKey)
	leaf, err := parseCert(leafDER, AsEndEntity())
	require.NoError(t, err)
	require.Equal(t, NameConstraintViolation, checkNameConstraints(rootCert.nameConstraints, leaf))
}
