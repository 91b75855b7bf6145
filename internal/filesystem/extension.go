package filesystem

import "strings"

// Extension returns the lower-cased extension of a file name without its
// leading dot. A dot at the very start (hidden files) or the very end of the
// name does not start an extension, in which case an empty string is
// returned.
func Extension(name string) string {
	i := strings.LastIndex(name, ".")
	if i <= 0 || i == len(name)-1 {
		return ""
	}

	return strings.ToLower(name[i+1:])
}
