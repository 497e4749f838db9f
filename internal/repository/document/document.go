// Package document implements the repositories over JSON documents held by
// storage.Store.
package document

import "errors"

// errUnchanged aborts a store update without writing
var errUnchanged = errors.New("unchanged")
