// Package integrity implements read-only health checks for the cheat
// subsystem's dual store.
//
// The cheats check compares a rom's relational rows with the records in
// its flat file and reports anything the next sync pass would have to
// repair. The schema check verifies the cheat tables carry their expected
// columns. Neither check mutates anything; a clean cheats report is the
// steady state a sync pass leaves behind.
package integrity
