// Package cheats implements the cheat-code subsystem of the game library.
//
// A game owns a set of typed cheat codes kept in two places at once: the
// cheat_codes table and a human-readable cheats.txt flat file inside the
// game's resources folder. The package keeps both representations
// consistent on every read and write.
//
// # Components
//
//   - registry: the mutable store of cheat-code types and their validation
//     patterns, persisted to a JSON document.
//   - validator: field validation, per-type format validation and input
//     sanitization against the registry.
//   - codec: the cheats.txt parser and serializer.
//   - sync: the reconciliation engine merging rows and file records per
//     game, with a database-wins conflict policy and per-owner locking.
//   - Service: the operation surface (types, codes, uploaded cheat files)
//     enforcing the sync-mutate-resync discipline on every code mutation.
//   - Handler: the Fiber routes.
//
// # Conflict policy
//
// The flat file imports net-new codes into the database; for codes present
// on both sides the database values win and the file is rewritten from the
// rows. The engine counts resolved conflicts so the silent branch stays
// observable.
package cheats
