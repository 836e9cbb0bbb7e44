// Package forms holds the client-side form machinery: the per-field error
// state a screen renders, the measured field positions used for
// scroll-to-error, local validation, and Reconcile, which maps a server
// validation failure onto the form.
package forms
