// Package inkwell is a styled text-editing widget core: a span-styled buffer,
// an editing session with undo history, pointer and key input translation,
// password and placeholder display transforms, and a terminal host.
//
// The packages are buffer, editor, input, transform, widget, config and tui.
package inkwell

import (
	_ "embed"
	"regexp"
	"strings"
)

var semverRE = regexp.MustCompile(`^(0|[1-9]\d*)\.(0|[1-9]\d*)\.(0|[1-9]\d*)(?:-[0-9A-Za-z-]+(?:\.[0-9A-Za-z-]+)*)?(?:\+[0-9A-Za-z-]+(?:\.[0-9A-Za-z-]+)*)?$`)

//go:embed VERSION
var embeddedVersion string

// Version returns the module version in SemVer form, without the leading v.
func Version() string {
	return strings.TrimSpace(embeddedVersion)
}

// VersionTag returns Version as a git tag.
func VersionTag() string {
	return "v" + Version()
}

// IsSemver reports whether v is a SemVer 2.0.0 version.
func IsSemver(v string) bool {
	return semverRE.MatchString(strings.TrimSpace(v))
}
