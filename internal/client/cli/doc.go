// Package cli provides the interactive MedMate command-line client.
//
// It wires configuration, logging, snapshot storage, the identity directory
// and the session store, then runs a small REPL over them. The commands walk
// through the same screens the web client had: signup, login, profile,
// dashboard and logout.
//
// Store operations run behind await, which shows a spinner while the
// session is authenticating. App.Run blocks until the user exits or the
// context is cancelled.
package cli
