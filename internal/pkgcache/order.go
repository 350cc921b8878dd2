// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package pkgcache

import (
	"regexp"
	"strings"
)

var segmentRe = regexp.MustCompile(`[.-]`)

// segment is one dot or dash separated piece of a version. Numeric segments
// order before textual ones at the same position.
type segment struct {
	numeric bool
	digits  string // leading zeros stripped
	text    string // lowercased
}

func segments(v string) []segment {
	parts := segmentRe.Split(v, -1)
	out := make([]segment, 0, len(parts))
	for _, p := range parts {
		if isDigits(p) {
			d := strings.TrimLeft(p, "0")
			out = append(out, segment{numeric: true, digits: d})
			continue
		}
		out = append(out, segment{text: strings.ToLower(p)})
	}
	return out
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

func (a segment) compare(b segment) int {
	switch {
	case a.numeric && !b.numeric:
		return -1
	case !a.numeric && b.numeric:
		return 1
	case a.numeric:
		// Compare by magnitude without parsing so huge segments cannot
		// overflow.
		if len(a.digits) != len(b.digits) {
			if len(a.digits) < len(b.digits) {
				return -1
			}
			return 1
		}
		return strings.Compare(a.digits, b.digits)
	default:
		return strings.Compare(a.text, b.text)
	}
}

// Compare orders two version strings segment by segment. When one version
// is a prefix of the other the shorter one sorts first, so "1.2.0-beta"
// sorts after "1.2.0".
func Compare(a, b string) int {
	sa, sb := segments(a), segments(b)
	for i := 0; i < len(sa) && i < len(sb); i++ {
		if c := sa[i].compare(sb[i]); c != 0 {
			return c
		}
	}
	switch {
	case len(sa) < len(sb):
		return -1
	case len(sa) > len(sb):
		return 1
	}
	return 0
}

// Max returns the greatest version under Compare. The first of equal
// versions wins. Max of an empty slice is "".
func Max(versions []string) string {
	if len(versions) == 0 {
		return ""
	}
	best := versions[0]
	for _, v := range versions[1:] {
		if Compare(v, best) > 0 {
			best = v
		}
	}
	return best
}
