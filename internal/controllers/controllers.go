// Package controllers holds the admin view controllers: a server-entity
// list plus a local form buffer that stays decoupled from the list until a
// save is confirmed. Every mutation follows the refresh-after-confirm
// policy — the list is re-fetched from the server, never patched
// optimistically (the section reorder in internal/reorder is the one
// deliberate exception to that rule).
package controllers

import "errors"

// ErrConfirmationRequired gates destructive actions: the caller must ask
// the user first and retry with confirmed set.
var ErrConfirmationRequired = errors.New("confirmation required")
