// Package roms implements the minimal rom catalog the cheat subsystem
// hangs off: create, list, get and delete of catalogued games.
//
// The service doubles as the sync engine's owner resolver (id to resources
// path) and cascades rom deletion into the cheat purger so no orphaned
// cheat rows or blobs survive a deleted game.
package roms
