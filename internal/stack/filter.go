package stack

import "strings"

// Name extracts the short stack name from a stack ARN of the shape
// arn:*:*:*:*:stack/<name>/<id>. It returns "" for identifiers in any other
// shape.
func Name(stackID string) string {
	parts := strings.SplitN(stackID, ":", 6)
	if len(parts) != 6 {
		return ""
	}

	resource := strings.Split(parts[5], "/")
	if len(resource) < 2 || resource[0] != "stack" {
		return ""
	}

	return resource[1]
}

// MatchesFilter reports whether an export owned by stackID passes the
// stack-name filter. An empty filter admits every export; otherwise either
// the full identifier or its embedded short name must literally equal one of
// the filter entries.
func MatchesFilter(stackID string, filter []string) bool {
	if len(filter) == 0 {
		return true
	}

	name := Name(stackID)
	for _, entry := range filter {
		if entry == stackID {
			return true
		}
		if name != "" && entry == name {
			return true
		}
	}

	return false
}
