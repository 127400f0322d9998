// Package models defines the core domain models for patungan.
//
// # Models
//
//   - Receipt: the active receipt being split, owner of its line items
//   - Item: a single receipt line (name, unit price, category)
//   - Participant: a person splitting the bill
//   - Assignment: a participant's claim on some count of units of one item
//
// Participants are identified by name strings for display but always by
// opaque ids for identity: two participants (or two items) may share a
// name and remain distinct entities.
//
// # Design Principles
//
//  1. **Identity by id**: relationships use id strings, never pointers to
//     peers, so entities serialize to plain JSON without cycles.
//  2. **Composition over inheritance**: every entity embeds Entity for
//     id/timestamp bookkeeping instead of extending a base type.
//  3. **Reference, don't copy**: an Assignment points at the registry's
//     Item, so correction edits made before assignment are visible in
//     every claim on that item.
//  4. **Lossless round-trip**: every model marshals to a flat JSON shape
//     usable for session snapshots, file caches, and comparator inputs.
package models
