// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package links

import (
	"regexp"
	"strings"
)

// TransformFunc rewrites the HTML body of the document at relPath.
// relPath is slash-separated and relative to the content root.
type TransformFunc func(relPath, body string) string

var (
	// fragmentLink matches a parent-relative href whose target ends in "/#anchor".
	fragmentLink = regexp.MustCompile(`href="\.\./.*?(/#.*?)"`)

	// parentLink matches a leading "../" followed by a real path segment.
	parentLink = regexp.MustCompile(`href="\.\./([^.])`)

	// doubleParentLink matches a doubled "../../" prefix.
	doubleParentLink = regexp.MustCompile(`href="\.\./\.\./`)

	// hrefAttr matches any href attribute value.
	hrefAttr = regexp.MustCompile(`href="[^"]*"`)
)

const (
	apidocsSegment = "sections/api/apidocs/"
	apidocsShort   = "_apidocs/"
)

// ShortenFragmentLinks rewrites "/#" to "#" inside parent-relative hrefs that
// carry a fragment, leaving the "../" prefix in place.
func ShortenFragmentLinks(body string) string {
	return fragmentLink.ReplaceAllStringFunc(body, func(m string) string {
		return strings.Replace(m, "/#", "#", 1)
	})
}

// StripParentPrefix drops the leading "../" from hrefs whose next character
// is not a dot.
func StripParentPrefix(body string) string {
	return parentLink.ReplaceAllString(body, `href="$1`)
}

// CollapseDoubleParent rewrites every href="../../ to href="../.
func CollapseDoubleParent(body string) string {
	return doubleParentLink.ReplaceAllLiteralString(body, `href="../`)
}

// IsLibraryPage reports whether relPath sits under a "libraries" directory.
func IsLibraryPage(relPath string) bool {
	return strings.Contains("/"+relPath, "/libraries/")
}

// TransformDocLink rewrites links in a regular content page. Library pages
// only get their doubled parent prefixes collapsed, starting from the
// original body.
func TransformDocLink(relPath, body string) string {
	if IsLibraryPage(relPath) {
		return CollapseDoubleParent(body)
	}
	return StripParentPrefix(ShortenFragmentLinks(body))
}

// TransformModuleLink rewrites links in a module page: the API docs section
// prefix becomes "_apidocs/" and the first "/#" in each href becomes "#".
func TransformModuleLink(_, body string) string {
	return hrefAttr.ReplaceAllStringFunc(body, func(m string) string {
		m = strings.ReplaceAll(m, apidocsSegment, apidocsShort)
		return strings.Replace(m, "/#", "#", 1)
	})
}
