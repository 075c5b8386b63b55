package domain

import "strings"

// SplitVirtualPath splits a virtual path on its first separator into the
// formula name and the remainder inside the formula. A path without a
// separator names the formula root and has an empty remainder.
func SplitVirtualPath(virtualPath string) (formula, remainder string) {
	formula, remainder, _ = strings.Cut(virtualPath, VirtualSeparator)
	return formula, remainder
}

// JoinVirtualPath builds the virtual path of rel inside formula.
// rel must already use forward slashes.
func JoinVirtualPath(formula, rel string) string {
	if rel == "" || rel == "." {
		return formula
	}
	return formula + VirtualSeparator + rel
}
