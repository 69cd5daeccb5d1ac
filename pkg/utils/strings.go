package utils

// RemoveEmptyStrings returns the non-empty elements of slice in order.
func RemoveEmptyStrings(slice []string) []string {
	var result []string

	for _, s := range slice {
		if s != "" {
			result = append(result, s)
		}
	}

	return result
}
