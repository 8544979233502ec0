// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package client is the submission gateway: it packages a candidate result
(name, type code, completion score, sheet photo) and talks to the backend's
submit endpoint.

Preconditions are enforced before any network I/O — a submission without a
name or an image payload fails locally with ErrMissingName/ErrMissingImage
and the backend is never contacted.

The type code defaults to whatever the extractor finds in the recognized
text, falling back to the "UNKNOWN" marker; a caller-supplied override
always wins.

Outcomes are kept distinct so the user can be told what actually happened:

  - accepted: Result{OK:true}
  - already recorded: Result{Duplicate:true}, nil error (expected outcome,
    nothing appended)
  - server rejected the request: *APIError with the server's message
  - server unreachable: wrapped transport error

One request per Submit call, bounded by a fixed timeout, no automatic
retries.
*/
package client
