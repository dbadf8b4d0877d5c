package writer

import (
	"strings"

	"github.com/ariel-frischer/chglog-uae/internal/commit"
	"github.com/ariel-frischer/chglog-uae/internal/semtag"
)

// ReleaseMarker identifies a release record commit subject.
const ReleaseMarker = "Online Operation Version"

// OnlineMarkVersion is the version of a release started by a record commit.
const OnlineMarkVersion = "onlinemark"

// GenerateOn reports whether c starts a new release and the version label of
// that release.
func (o *Options) GenerateOn(c commit.Commit) (string, bool) {
	if semtag.Valid(c.Version) {
		return c.Version, true
	}
	if o.Variant == VariantRefined && strings.Contains(c.Subject, ReleaseMarker) {
		return OnlineMarkVersion, true
	}
	return "", false
}
