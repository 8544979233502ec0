// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines the request, response, and domain types shared across
the MBTI backend.

The central type is SubmissionRecord: one accepted answer-sheet submission,
owned exclusively by the record store once persisted. Its ImageHash field is
the content fingerprint of the submitted photo and is unique across all
persisted records — the system's core invariant.

Request and response types mirror the JSON wire contract of POST /api/submit
and GET /health exactly; nothing here is reused for storage layout (the
store renders its own row format).
*/
package models
