// Package cli is the interactive terminal client for the yacht transport
// API.
//
// It wires configuration, the local schedule cache, the API client and the
// services, then runs a REPL in which every informational page, the sailing
// schedule and the quote request form are commands. The quote request page
// is protected: opening it while signed out runs the login page, and a
// successful login navigates back to it.
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
package cli
