// Package memory provides in-memory implementations of every paramlink port.
//
// It backs the test suites and the demo CLI: a registry with synchronous
// membership broadcasts, a scene graph of nodes and containers, a recording
// widget factory, a recording error sink and a snapshot store.
package memory
