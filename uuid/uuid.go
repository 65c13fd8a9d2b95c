package uuid

import suuid "github.com/satori/go.uuid"

// This package only exists so the rest of the module leans on a single
// vendored uuid lib instead of every package picking its own.

// New returns random generated UUID.
func New() string {
	return suuid.NewV4().String()
}
