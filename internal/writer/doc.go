// Package writer holds the preset's writer options: the per-commit transform,
// grouping and sorting rules, the release-boundary predicate and the ordered
// finalize stages that enrich each release context before rendering.
//
// A release context goes through the stages in order:
//   - FinalizeBase infers the previous and current tags and whether a compare
//     link can be rendered.
//   - FinalizeOnline extracts at most one "Online Operation Version" record
//     commit from the grouped commits into OnlineInfo or OnlineInfoHistory.
//
// Stages only touch the context they are given.
package writer
