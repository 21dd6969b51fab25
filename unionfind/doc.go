// Package unionfind implements an enumerable disjoint-set (union-find)
// structure over a fixed universe [0, N).
//
// A plain disjoint-set forest answers "same class?" queries but cannot list
// a class's members without a full O(N) scan. The filters in the tracks
// package need to inspect every member of every class, so this
// implementation keeps an intrusive singly-linked member list per class
// (spliced in O(1) on Unite) and a doubly-linked list of live class roots
// (spliced in O(1) on Unite and Erase), so Classes and Items are each
// O(number yielded) rather than O(N).
//
// Mutation discipline follows the owning builder's pipeline: Unite is only
// ever called while building; Erase is the only mutator during filtering.
// Once Erase removes a root from the live-root list, later Classes calls
// skip it, but its member list and parent pointers are left untouched -
// there is nothing left that reads them.
package unionfind
