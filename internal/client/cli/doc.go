// Package cli is the interactive eldercare terminal client.
//
// It wires configuration, local storage and the REST client into a
// line-oriented REPL with two screens. The auth screen accepts login and
// register; the home screen manages the four record lists and the session.
// Every home command re-checks the stored token first and falls back to the
// auth screen when it is gone or expired.
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
package cli
