package store

import (
	"fmt"
	"math/rand"
	"regexp"
	"strings"
)

const placeholderPhoto = "https://via.placeholder.com/150?text=No+Image"

var (
	nonDigitRe     = regexp.MustCompile(`\D`)
	driveTokenRe   = regexp.MustCompile(`[-\w]{25,}`)
	branchPrefixRe = regexp.MustCompile(`(?i)^(meama collect\s*[-–—]\s*)`)
)

// PadID left-pads a numeric id to 7 digits (e.g. 42 -> "0000042").
func PadID(raw string) string {
	s := strings.TrimSpace(raw)
	if len(s) >= 7 {
		return s
	}
	return strings.Repeat("0", 7-len(s)) + s
}

// FormatID normalizes a raw cell into the canonical prefixed form, e.g.
// FormatID("B", "42") -> "B0000042". Missing or non-numeric ids get a random
// numeric suffix so the row still links up; the shape stays canonical.
func FormatID(prefix, raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return prefix + PadID(fmt.Sprint(rand.Intn(1000000)))
	}
	digits := nonDigitRe.ReplaceAllString(raw, "")
	if digits == "" {
		return prefix + PadID(fmt.Sprint(rand.Intn(1000000)))
	}
	return prefix + PadID(digits)
}

// ProcessDriveLink rewrites a free-form Google Drive share link into the
// direct thumbnail URL. Empty links get the placeholder image, links that are
// already direct pass through, and anything without a recognizable file token
// is returned unchanged.
func ProcessDriveLink(link string) string {
	if link == "" {
		return placeholderPhoto
	}
	if strings.Contains(link, "drive.google.com/thumbnail") || strings.Contains(link, "googleusercontent") {
		return link
	}
	token := driveTokenRe.FindString(link)
	if token == "" {
		return link
	}
	return "https://drive.google.com/thumbnail?id=" + token + "&sz=w800"
}

// FormatBranchName strips the "Meama Collect -" prefix some sheet rows carry.
func FormatBranchName(branch string) string {
	if branch == "" {
		return ""
	}
	return strings.TrimSpace(branchPrefixRe.ReplaceAllString(branch, ""))
}
