// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package store persists accepted answer-sheet submissions and enforces the
system's core invariant: at most one record per image fingerprint.

# Contract

The Store interface exposes three operations:

	Exists(ctx, fingerprint)    → bool
	Append(ctx, record)         → error
	InsertIfAbsent(ctx, record) → (inserted bool, error)

Exists and Append are the primitive lookup/append pair. A caller sequencing
them itself is racy — a second submission of the same photo can slip between
the check and the append — so the submit handler only ever calls
InsertIfAbsent, and each backend makes that operation atomic.

# Backends

SheetsStore (production): one row per submission in a Google sheet, columns

	A name | B mbti | C score ("87%") | D image hash | E date (YYYY-MM-DD)

Lookups read column D with trimmed exact-match comparison; a header row is
naturally excluded because no label equals a 64-character hex digest. The
Sheets API has no conditional write, so InsertIfAbsent serializes
exists+append through an in-process mutex (single writer).

SQLStore (local/dev, also postgres): the same columns in one table with a
UNIQUE constraint on image_hash. InsertIfAbsent is INSERT ... ON CONFLICT
DO NOTHING, so the race is resolved inside the database.

# Records are immutable

Nothing in this package updates or deletes a row. Once a fingerprint is
seen, it stays seen.
*/
package store
