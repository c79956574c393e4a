package util

func RemoveDuplicateStrings(values []string) []string {
	presentStrings := make(map[string]bool)
	var list []string

	for _, item := range values {
		if _, value := presentStrings[item]; !value && item != "" {
			presentStrings[item] = true
			list = append(list, item)
		}
	}

	return list
}
