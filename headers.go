package tably

import "strings"

// reservedPrefix marks internal metadata fields that never become columns.
const reservedPrefix = "_"

// DeriveHeaders computes the ordered, de-duplicated column set for rows.
//
// With a nil include list the result is the union of field names across all
// rows in first-seen order, with reserved (underscore-prefixed) names
// excluded. With an include list the caller's order is authoritative: the
// list is filtered to names that occur in the data and everything else is
// dropped silently, reserved names included if the caller asked for them.
func DeriveHeaders(rows []Row, include []string) []string {
	if len(rows) == 0 {
		return nil
	}
	present := make(map[string]bool)
	var union []string
	for _, r := range rows {
		for _, k := range r.Keys() {
			if !present[k] {
				present[k] = true
				union = append(union, k)
			}
		}
	}
	if include == nil {
		var headers []string
		for _, k := range union {
			if !strings.HasPrefix(k, reservedPrefix) {
				headers = append(headers, k)
			}
		}
		return headers
	}
	var headers []string
	seen := make(map[string]bool, len(include))
	for _, k := range include {
		if present[k] && !seen[k] {
			seen[k] = true
			headers = append(headers, k)
		}
	}
	return headers
}
