// Package session persists the signed-in user between runs.
//
// # Overview
//
// The session lives in a small key/value "local storage" file, by default
// ~/.coderefine/storage.json. Two fixed keys are used:
//
//	coderefine_user   JSON-encoded user object ({"id","email","username"})
//	coderefine_token  the bearer token returned by sign-in
//
// # Lifecycle
//
// 1. Save: after a successful sign-in both keys are written, overwriting any
// previous session.
//
// 2. Load: at startup the user key decides which view is shown. A missing
// user key means nobody is signed in. A missing token with a present user is
// still a session; requests are then sent without a credential.
//
// 3. Clear: sign-out removes both keys. Nothing is sent to the service.
//
// # Storage
//
// Storage is an interface so the TUI and tests can swap the file for memory.
// FileStorage rewrites the whole file on every change through a temp file and
// rename, so a crash never leaves a half-written session.
package session
