package writer

import (
	"fmt"

	"github.com/rs/zerolog"
)

// Variant selects between the two flavours of the preset.
type Variant string

const (
	// VariantSimple shows feat/fix/perf/revert commits and only looks for
	// release records under "Features".
	VariantSimple Variant = "simple"
	// VariantRefined adds the Chores category, marker-based release
	// boundaries, and clears the title of a group emptied by extraction.
	VariantRefined Variant = "refined"
)

// Routing decides whether an extracted record is new or historical.
type Routing string

const (
	// RouteByReleaseCount treats a record as new when ReleaseCount is non-zero;
	// zero means the whole history is being regenerated.
	RouteByReleaseCount Routing = "release_count"
	// RouteByVersion treats a record as new when the context has no version.
	RouteByVersion Routing = "version"
)

// Options is the writer configuration handed to the changelog driver.
type Options struct {
	Variant      Variant
	Routing      Routing
	ReleaseCount int

	// SemverTags lists the repository's semantic-version tags, newest first.
	SemverTags []string

	GroupBy          string
	CommitGroupsSort string
	CommitsSort      []string
	NoteGroupsSort   string

	Finalize Pipeline

	Logger zerolog.Logger
}

// NewOptions returns the preset's options for variant with its default routing.
func NewOptions(variant Variant) (*Options, error) {
	var routing Routing
	switch variant {
	case VariantSimple:
		routing = RouteByVersion
	case VariantRefined:
		routing = RouteByReleaseCount
	default:
		return nil, fmt.Errorf("unknown variant %q (expected %q or %q)", variant, VariantSimple, VariantRefined)
	}

	return &Options{
		Variant:          variant,
		Routing:          routing,
		ReleaseCount:     1,
		GroupBy:          "type",
		CommitGroupsSort: "title",
		CommitsSort:      []string{"scope", "subject"},
		NoteGroupsSort:   "title",
		Finalize:         Pipeline{FinalizeBase, FinalizeOnline},
		Logger:           zerolog.Nop(),
	}, nil
}

// recordGroups returns the group titles scanned for release records.
func (o *Options) recordGroups() map[string]bool {
	if o.Variant == VariantRefined {
		return map[string]bool{"Features": true, "Chores": true}
	}
	return map[string]bool{"Features": true}
}
