package sync

import "strings"

// ExportTag is the case-sensitive prefix marking a stack export as a DNS
// directive.
const ExportTag = "ClouDNS:"

// Directive is the record type and dotted hostname recovered from one
// qualifying export name.
type Directive struct {
	RecordType string
	Hostname   string
}

// ParseExportName decodes the ClouDNS:<type>:<label>:<label>... convention.
// The second return is false when the name does not carry the tag; such
// exports are not directives and are silently skipped. The record type is
// passed through verbatim, the provider validates it. A name with no labels
// after the type yields an empty hostname, an apex record at whatever zone
// resolution finds.
func ParseExportName(name string) (Directive, bool) {
	if !strings.HasPrefix(name, ExportTag) {
		return Directive{}, false
	}

	parts := strings.Split(strings.TrimPrefix(name, ExportTag), ":")
	return Directive{
		RecordType: parts[0],
		Hostname:   strings.Join(parts[1:], "."),
	}, true
}
