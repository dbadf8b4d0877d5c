// Package changelog drives changelog generation for a repository:
//
//   - parsed commits are split into releases at tag and release-record boundaries
//   - each release is transformed, grouped and finalized into a writer.Context
//   - contexts are rendered with the preset templates
//   - the result is printed or prepended to an existing CHANGELOG.md
package changelog
