// Package cli provides the interactive pwkeeper command-line front end.
//
// It runs a REPL over a CredentialService: identifiers are registered and
// authenticated interactively, stored credentials can be inspected, the
// hashing cost can be benchmarked, and a scripted demo shows the whole flow
// on a throwaway in-memory store.
//
// Passwords are read without echo when stdin is a terminal and are wiped
// after use. Login prints the same message for an unknown identifier and a
// wrong password.
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
package cli
