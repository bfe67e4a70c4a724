// Copyright © 2019 Binance
//
// This file is part of Binance. The full Binance copyright notice, including
// terms governing use, modification, and redistribution, is contained in the
// file LICENSE at the root of the source code distribution tree.

package common

import "github.com/pkg/errors"

// Sentinel errors for the Paillier core. Callers should use errors.Is against
// these values; most fallible operations wrap one of them with
// github.com/pkg/errors for call-site context and a stack trace. Malformed
// or corrupted params files and unknown scheme tags are reported with plain
// errors that match none of these sentinels.
var (
	// ErrMessageOutOfRange is returned when a plaintext m does not satisfy 0 <= m < n.
	ErrMessageOutOfRange = errors.New("paillier: message out of range [0, n)")

	// ErrMessageTooWideForTables is returned when a Tm-bearing variant is asked
	// to encrypt a message wider than 2*log2(Power) bits.
	ErrMessageTooWideForTables = errors.New("paillier: message too wide for precomputed message table")

	// ErrCiphertextOutOfRange is returned when a ciphertext does not satisfy 0 <= c < n^2.
	ErrCiphertextOutOfRange = errors.New("paillier: ciphertext out of range [0, n^2)")

	// ErrNotInvertible is returned when a modular inverse is requested for a
	// non-coprime pair. It indicates corrupted key material or a programming error.
	ErrNotInvertible = errors.New("paillier: value has no modular inverse")

	// ErrAssertionFailure is returned when an algebraic invariant required by a
	// key generation strategy does not hold. Fatal: generation is not retried.
	ErrAssertionFailure = errors.New("paillier: key generation invariant violated")

	// ErrMissingTable is returned by Load when the file lacks a table the
	// requested scheme requires.
	ErrMissingTable = errors.New("paillier: persisted keypair is missing a required table")

	// ErrFileNotFound is returned by Load when given an empty or unresolvable path.
	ErrFileNotFound = errors.New("paillier: key file not found")

	// ErrTypeMismatch is returned when a parallel worker produces a result of
	// an unexpected shape. Indicates a programming error, never a user input problem.
	ErrTypeMismatch = errors.New("paillier: worker returned unexpected result shape")

	// ErrKeypairNotReady is returned when encrypt/decrypt/add is called on a
	// keypair whose tables have not finished building.
	ErrKeypairNotReady = errors.New("paillier: keypair is not ready (tables still building)")
)

// Wrap attaches msg as context to err using github.com/pkg/errors, preserving
// a stack trace at the call site. Returns nil if err is nil.
func Wrap(err error, msg string) error {
	if err == nil {
		return nil
	}
	return errors.Wrap(err, msg)
}

// Wrapf is the formatted form of Wrap.
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return errors.Wrapf(err, format, args...)
}
