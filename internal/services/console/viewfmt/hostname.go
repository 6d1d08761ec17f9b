package viewfmt

import "strconv"

// NagiosHostname builds the monitoring host name of a member VLAN interface.
// The abbreviated name is lower-cased and every byte outside [a-z0-9] becomes
// a dash, so two names differing only in punctuation share a prefix.
func NagiosHostname(abbreviatedName string, asn int64, protocol int, vlanID int64, vlanInterfaceID int64) string {
	slug := make([]byte, 0, len(abbreviatedName)+48)
	for i := 0; i < len(abbreviatedName); i++ {
		c := abbreviatedName[i]
		switch {
		case c >= 'a' && c <= 'z', c >= '0' && c <= '9':
			slug = append(slug, c)
		case c >= 'A' && c <= 'Z':
			slug = append(slug, c+('a'-'A'))
		default:
			slug = append(slug, '-')
		}
	}
	slug = append(slug, "-as"...)
	slug = strconv.AppendInt(slug, asn, 10)
	slug = append(slug, "-ipv"...)
	slug = strconv.AppendInt(slug, int64(protocol), 10)
	slug = append(slug, "-vlanid"...)
	slug = strconv.AppendInt(slug, vlanID, 10)
	slug = append(slug, "-vliid"...)
	slug = strconv.AppendInt(slug, vlanInterfaceID, 10)
	return string(slug)
}
