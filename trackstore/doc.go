// Package trackstore persists exported tracks to a SQLite database.
//
// Schema migrations live under migrations/ and are embedded into the binary;
// Open applies every pending migration before returning. The persisted model
// narrows ImageId to string, since a SQL column has one concrete storage
// type regardless of the generic ImageId a Builder was parameterized with.
package trackstore
