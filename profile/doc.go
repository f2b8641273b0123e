// Package profile holds statement profiles: the label vocabulary, boilerplate
// markers, and formatting conventions of one bank's statement family.
//
// The extractor is tuned for one semi-structured document shape, but the
// vocabulary that shape uses is data, not code. A [Profile] carries the label
// variants the boundary extractor matches, the boilerplate markers spatial
// selection excludes, the keyword lists bank detection scores against, and
// the currency format amount parsing honors.
//
// [Default] returns the built-in BBVA México profile. Additional profiles
// load from YAML:
//
//	profiles, err := profile.LoadFile("profiles.yaml")
//
// [Detect] scores candidate profiles against document text and picks the best
// match, falling back to the default below a confidence threshold.
package profile
