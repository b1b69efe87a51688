package shared

import "strings"

// StringEqualsIgnoreCase compares two strings ignoring case
func StringEqualsIgnoreCase(s1 string, s2 string) bool {
	return strings.EqualFold(s1, s2)
}

// checks if slice of strings Contains given string
func Contains(s []string, str string) bool {
	for _, v := range s {
		if v == str {
			return true
		}
	}
	return false
}

// StringEmpty returns true if the given string is empty
func StringEmpty(value string) bool {
	return value == ""
}

func SafeString(ptr *string) string {
	if ptr == nil {
		return ""
	}
	return *ptr
}

func SafeInt64(ptr *int64) int64 {
	if ptr == nil {
		return 0
	}
	return *ptr
}
