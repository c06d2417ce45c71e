// Package testutil provides deterministic helpers for tests: a seeded random
// number generator and raw vertex/face fixtures for common mesh shapes.
//
// The fixtures return plain vertex and face lists rather than constructed
// meshes, so they stay import-cycle-free and usable from meshgo's own tests.
package testutil
