// Package repository holds what the gorm and in-memory stores share.
package repository

import "errors"

// ErrNotFound is returned by every store when the requested record does not exist.
var ErrNotFound = errors.New("record not found")
