// Package fixtures contains minimal test documents and collaborators for lifecycle testing.
//
// It provides documents for each combination of timestamp behaviors (localized only, global,
// none), an accessor spy that records document writes, a node that fails on demand, and a
// locale inspector with a fixed answer.
//
// This is testing infrastructure - not production domain code.
package fixtures
