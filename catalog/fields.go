package catalog

import "strings"

// SplitList turns a comma-separated form field into its stored sequence.
// Each element is trimmed; empty segments carry no meaning and are dropped,
// so an empty field yields an empty sequence rather than [""].
func SplitList(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}

	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

// JoinList is the inverse of SplitList, used to refill editable text inputs.
func JoinList(items []string) string {
	return strings.Join(items, ", ")
}
