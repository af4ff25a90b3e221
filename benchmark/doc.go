// Package benchmark compares the cost of the timezone-aware line format
// across the logging libraries it can be installed into.
//
// Every logger writes the identical line to io.Discard, so the numbers
// measure each library's dispatch plus the shared formatter:
//
//	go test -bench . -benchmem ./benchmark
package benchmark
