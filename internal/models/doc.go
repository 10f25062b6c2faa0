// Package models defines the core domain models for tripsplit.
//
// # Models
//
//   - Trip: a shared-expense ledger for one group of people
//   - Expense: a single payment recorded against a trip
//   - Snapshot: the immutable view of a trip handed to the splitter
//
// Participants are identified by display name (strings, case-sensitive,
// unique within a trip). There are no user accounts; names are the sole
// identity key, exactly as people write them down.
//
// # Design Principles
//
//  1. **Names over IDs**: participants carry no surrogate keys, so removing
//     and re-adding a name is indistinguishable from never having left
//  2. **Snapshot passing**: calculations never see live collections; the
//     storage layer materializes a Snapshot per request
//  3. **Settlements are output-only**: they are computed fresh every time
//     and never persisted or fed back as input
package models
