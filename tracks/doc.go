// Package tracks fuses pairwise feature correspondences between images into
// scene-point tracks.
//
// Given a set of ImagePairs, each carrying the IndMatches found between two
// images, Builder.Build interns every referenced (image, feature) node into
// a registry.Registry, then unites the two endpoints of every match inside a
// unionfind.UnionFind. Each resulting class is a candidate track. Filter
// removes classes that are too short or that observe the same image twice
// (geometrically impossible for one scene point). FilterPairWiseMinimumMatches
// additionally removes tracks whose supporting image pair is too weakly
// co-observed to trust. ExportToSTL and ExportToStream materialize whatever
// classes survive.
//
// A Builder is a single-use, single-threaded pipeline: Build once, run the
// two filters any number of times in any order, then Export. Calling Export
// concurrently with a filter, or calling Build twice, is a programmer error
// and returns ErrAlreadyBuilt / produces undefined results by design - the
// type does not attempt to make misuse a data race.
package tracks
