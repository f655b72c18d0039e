package keccak

import "errors"

// ErrInvalidArgument is returned when a digest size or output buffer
// does not satisfy the contract of HashBuffer.
var ErrInvalidArgument = errors.New("keccak: invalid argument")

// ErrOutOfOrder is returned when an operation is called outside its
// allowed place in the Context lifecycle: SetMode after the first
// Update, or Update after Finalize.
var ErrOutOfOrder = errors.New("keccak: operation out of order")
