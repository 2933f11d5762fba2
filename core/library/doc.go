// Package library resolves the on-disk layout of per-game resources.
//
// Every game owns a resources folder; its cheat data lives under a fixed
// cheats/ suffix inside it (cheats.txt for the flat file, sibling files
// for uploaded cheat blobs). Paths centralizes that derivation so no
// feature hard-codes filepath joins.
package library
