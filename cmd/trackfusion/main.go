// Command trackfusion fuses pairwise feature matches into tracks: node
// registration, transitive union, conflict and pairwise-support filtering,
// and export to a text stream, a SQLite store, or an S3 bucket.
package main

import "github.com/arqui-vision/trackfusion/cmd/trackfusion/cmd"

func main() {
	cmd.Execute()
}
