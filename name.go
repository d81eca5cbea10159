package chainwalk

import "strings"

// id-at-commonName: { 2 5 4 3 }.
var oidCommonName = []byte{0x55, 0x04, 0x03}

const (
	tagGeneralNameDNSName Tag = 0x82 // [2] IMPLICIT IA5String, primitive
	tagSET                Tag = 0x11 | constructed
	tagNCPermitted        Tag = 0x00 | constructed | 0x80
	tagNCExcluded         Tag = 0x01 | constructed | 0x80
)

// parseDNSNamesFromSAN extracts every dNSName GeneralName from the
// content of a SubjectAltName extension. Other GeneralName choices
// (rfc822Name, iPAddress, directoryName, ...) are skipped; DNS-name
// checking is scoped to SAN dNSName entries only.
func parseDNSNamesFromSAN(sanValue []byte) ([][]byte, error) {
	seqValue, err := NewReader(sanValue).Expect(TagSequence)
	if err != nil {
		return nil, err
	}

	var names [][]byte
	r := NewReader(seqValue)
	for !r.AtEnd() {
		tag, value, err := r.ReadTagAndLength()
		if err != nil {
			return nil, err
		}
		if tag == tagGeneralNameDNSName {
			names = append(names, value)
		}
	}
	return names, nil
}

// parseNameConstraints decodes the content of a NameConstraints extension
// (itself a SEQUENCE { permittedSubtrees [0], excludedSubtrees [1] }),
// returning only the dNSName base entries of each GeneralSubtree: this
// package only evaluates DNS-name constraints.
func parseNameConstraints(ncDER []byte) (permitted, excluded [][]byte, err error) {
	seqValue, err := NewReader(ncDER).Expect(TagSequence)
	if err != nil {
		return nil, nil, err
	}
	r := NewReader(seqValue)

	for !r.AtEnd() {
		tag, value, err := r.ReadTagAndLength()
		if err != nil {
			return nil, nil, err
		}
		switch tag {
		case tagNCPermitted:
			subtrees, err := parseGeneralSubtreesDNS(value)
			if err != nil {
				return nil, nil, err
			}
			permitted = append(permitted, subtrees...)
		case tagNCExcluded:
			subtrees, err := parseGeneralSubtreesDNS(value)
			if err != nil {
				return nil, nil, err
			}
			excluded = append(excluded, subtrees...)
		default:
			return nil, nil, BadDER
		}
	}
	return permitted, excluded, nil
}

// parseGeneralSubtreesDNS reads a GeneralSubtrees SEQUENCE OF
// GeneralSubtree { base GeneralName, minimum [0] DEFAULT 0, maximum [1]
// OPTIONAL }, returning the value of each subtree whose base is a
// dNSName. minimum/maximum are not interpreted: every validator in the
// pack this package was grounded on (zcrypto's name-constraint checker)
// treats them as always (0, absent) in practice.
func parseGeneralSubtreesDNS(subtreesValue []byte) ([][]byte, error) {
	var out [][]byte
	list := NewReader(subtreesValue)
	for !list.AtEnd() {
		elemValue, err := list.Expect(TagSequence)
		if err != nil {
			return nil, err
		}
		base := NewReader(elemValue)
		tag, value, err := base.ReadTagAndLength()
		if err != nil {
			return nil, err
		}
		if tag == tagGeneralNameDNSName {
			out = append(out, value)
		}
	}
	return out, nil
}

// extractCommonName returns the value of the first commonName attribute
// found in the DER-encoded Name nameDER, if any.
func extractCommonName(nameDER []byte) (cn []byte, ok bool, err error) {
	seqValue, err := NewReader(nameDER).Expect(TagSequence)
	if err != nil {
		return nil, false, err
	}
	rdns := NewReader(seqValue)
	for !rdns.AtEnd() {
		setValue, err := rdns.Expect(tagSET)
		if err != nil {
			return nil, false, err
		}
		atv := NewReader(setValue)
		for !atv.AtEnd() {
			elemValue, err := atv.Expect(TagSequence)
			if err != nil {
				return nil, false, err
			}
			e := NewReader(elemValue)
			oid, err := e.ReadOID()
			if err != nil {
				return nil, false, err
			}
			_, value, err := e.ReadTagAndLength()
			if err != nil {
				return nil, false, err
			}
			if oidEqual(oid, oidCommonName) {
				return value, true, nil
			}
		}
	}
	return nil, false, nil
}

// checkNameConstraints enforces ncDER (the content of a NameConstraints
// extension) against candidate's Subject commonName and every dNSName
// entry of its SubjectAltName.
func checkNameConstraints(ncDER []byte, candidate *ParsedCert) error {
	permitted, excluded, err := parseNameConstraints(ncDER)
	if err != nil {
		return err
	}
	if len(permitted) == 0 && len(excluded) == 0 {
		return nil
	}

	var names [][]byte
	if cn, ok, err := extractCommonName(candidate.subject); err != nil {
		return err
	} else if ok {
		names = append(names, cn)
	}
	if candidate.subjectAltName != nil {
		sanNames, err := parseDNSNamesFromSAN(candidate.subjectAltName)
		if err != nil {
			return err
		}
		names = append(names, sanNames...)
	}

	for _, name := range names {
		if !nameConstraintsAllow(string(name), permitted, excluded) {
			return NameConstraintViolation
		}
	}
	return nil
}

func nameConstraintsAllow(name string, permitted, excluded [][]byte) bool {
	for _, c := range excluded {
		if matchNameConstraint(name, string(c)) {
			return false
		}
	}
	if len(permitted) == 0 {
		return true
	}
	for _, c := range permitted {
		if matchNameConstraint(name, string(c)) {
			return true
		}
	}
	return false
}

// matchNameConstraint reports whether domain satisfies the DNS name
// constraint in constraint, per RFC 5280 §4.2.1.10: a constraint is a
// suffix match on whole labels, and a leading '.' on the constraint
// excludes the exact domain while still matching subdomains.
func matchNameConstraint(domain, constraint string) bool {
	// The meaning of a zero-length constraint is unspecified; this
	// follows established implementations in accepting it as matching
	// everything.
	if len(constraint) == 0 {
		return true
	}
	if len(domain) < len(constraint) {
		return false
	}

	prefixLen := len(domain) - len(constraint)
	if !strings.EqualFold(domain[prefixLen:], constraint) {
		return false
	}
	if prefixLen == 0 {
		return true
	}

	isSubdomain := domain[prefixLen-1] == '.'
	constraintHasLeadingDot := constraint[0] == '.'
	return isSubdomain != constraintHasLeadingDot
}

// matchDNSName reports whether pattern (a SAN dNSName entry, which may
// carry a single wildcard in its left-most label) matches name (a
// pre-normalized, lower-case reference name). Wildcards are recognized
// only as an entire left-most label ("*.example.com"); a partial-label
// wildcard ("f*.example.com") is treated as a literal string and will not
// match.
func matchDNSName(pattern, name []byte) bool {
	patternLabels := strings.Split(string(pattern), ".")
	nameLabels := strings.Split(string(name), ".")
	if len(patternLabels) != len(nameLabels) || len(patternLabels) == 0 {
		return false
	}
	for i, p := range patternLabels {
		if i == 0 && p == "*" {
			continue
		}
		if !strings.EqualFold(p, nameLabels[i]) {
			return false
		}
	}
	return true
}

// verifyCertDNSName checks dnsName, which must already be in canonical
// lower-case ASCII form, against every dNSName entry of cert's
// SubjectAltName. The Subject commonName is not consulted here: unlike
// name constraint checking, reference-name verification matches SAN
// entries only.
func verifyCertDNSName(cert *ParsedCert, dnsName []byte) error {
	if len(dnsName) == 0 {
		return InvalidReferenceName
	}
	for _, b := range dnsName {
		if b >= 'A' && b <= 'Z' {
			return InvalidReferenceName
		}
	}

	if cert.subjectAltName == nil {
		return CertNotValidForName
	}
	sanNames, err := parseDNSNamesFromSAN(cert.subjectAltName)
	if err != nil {
		return err
	}
	for _, pattern := range sanNames {
		if matchDNSName(pattern, dnsName) {
			return nil
		}
	}
	return CertNotValidForName
}
