package gen

import "strings"

// Ident returns the Go identifier of an entry: the upper-cased source name
// followed by the entry name in Go case ("rfc4519" + "cn" = RFC4519CN,
// "rfc5280" + "id-ce-keyUsage" = RFC5280IDCeKeyUsage).
func (s *Source) Ident(e Entry) string {
	return strings.ToUpper(s.Source) + goName(e.Name)
}

func goName(name string) string {
	// short attribute descriptors are abbreviations: cn, ou, dc
	if len(name) <= 2 && name == strings.ToLower(name) && !strings.Contains(name, "-") {
		return strings.ToUpper(name)
	}

	var sb strings.Builder
	for _, part := range strings.Split(name, "-") {
		switch part {
		case "":
		case "id":
			sb.WriteString("ID")
		default:
			sb.WriteString(strings.ToUpper(part[:1]))
			sb.WriteString(part[1:])
		}
	}
	return sb.String()
}
