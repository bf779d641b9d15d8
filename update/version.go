package update

import (
	"strconv"
	"strings"
)

// Version is the running application version.
const Version = "1.2.0"

// IsNewer reports whether version1 is strictly newer than version2.
// Versions compare segment by segment numerically, so "1.10.0" is newer
// than "1.9.0". Equal or empty versions are never newer.
func IsNewer(version1, version2 string) bool {
	v1 := strings.TrimSpace(version1)
	v2 := strings.TrimSpace(version2)

	if v1 == "" || v2 == "" || v1 == v2 {
		return false
	}

	return compareVersions(v1, v2) > 0
}

// compareVersions returns 1, 0 or -1 as v1 is newer, equal or older.
func compareVersions(v1, v2 string) int {
	parts1 := strings.Split(v1, ".")
	parts2 := strings.Split(v2, ".")

	maxLen := len(parts1)
	if len(parts2) > maxLen {
		maxLen = len(parts2)
	}

	for i := 0; i < maxLen; i++ {
		var part1, part2 string
		if i < len(parts1) {
			part1 = parts1[i]
		}
		if i < len(parts2) {
			part2 = parts2[i]
		}

		num1 := parseVersionPart(part1)
		num2 := parseVersionPart(part2)

		if num1 > num2 {
			return 1
		}
		if num1 < num2 {
			return -1
		}
	}

	return 0
}

// parseVersionPart converts a version segment to an integer, ignoring any
// non-numeric characters ("3b" counts as 3, "rc1" as 1).
func parseVersionPart(part string) int {
	clean := ""
	for _, char := range part {
		if char >= '0' && char <= '9' {
			clean += string(char)
		}
	}

	if clean == "" {
		return 0
	}

	num, err := strconv.Atoi(clean)
	if err != nil {
		return 0
	}

	return num
}
