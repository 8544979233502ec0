// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the MBTI backend.

# Submission

SubmitHandler owns the submission acceptance protocol for POST /api/submit:

 1. Validate required fields (name, mbti, score) — rejected with 400 before
    any storage access.
 2. Resolve the image fingerprint: the supplied imageHash, or one derived
    from imageBase64 via the imagehash package (undecodable payloads are a
    400; neither field present is a 400).
 3. Persist through store.InsertIfAbsent. A duplicate fingerprint is a 409
    with duplicate:true and no new record; a store failure is a 500 with a
    generic message (details go to the server log only).
 4. Accepted submissions get today's calendar date (server clock) and a
    201 {ok:true, duplicate:false}.

The handler is created with its store dependency injected:

	h := handlers.NewSubmitHandler(st)

# Health

Health answers GET /health with the service name and current server time.
It touches no storage, so it stays truthful even when the backend is down.
*/
package handlers
