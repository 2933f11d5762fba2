// Package faults defines the error taxonomy shared by all features.
//
// Four kinds of failure cross package boundaries:
//
//   - ErrNotFound: an unknown rom, cheat code, cheat file or registry type.
//   - ValidationError: the complete field->message map of a rejected input.
//   - ConfigError: an unreadable persistent document (warn-and-continue).
//   - IOError: a filesystem failure, surfaced to the caller.
//
// Handlers map these to transport status codes; services only wrap and
// propagate them.
package faults
