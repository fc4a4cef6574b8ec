package collector

import "strings"

// sanitizeDeviceName maps an OS-reported device/interface name (which may
// contain uppercase letters, dots, dashes or slashes) into a segment that
// satisfies StandardMetricName's [a-z0-9_]+ requirement.
func sanitizeDeviceName(name string) string {
	name = strings.ToLower(name)
	var b strings.Builder
	b.Grow(len(name))
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
		default:
			b.WriteByte('_')
		}
	}
	out := b.String()
	if out == "" {
		out = "unknown"
	}
	return out
}
