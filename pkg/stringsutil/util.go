package stringsutil

import "strings"

// TrimEmpty trims every string and drops the ones left empty.
func TrimEmpty(slice []string) []string {
	var result []string

	for _, s := range slice {
		if s = strings.TrimSpace(s); s != "" {
			result = append(result, s)
		}
	}

	return result
}
