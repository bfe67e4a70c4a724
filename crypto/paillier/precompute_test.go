// Copyright © 2019 Binance
//
// This file is part of Binance. The full Binance copyright notice, including
// terms governing use, modification, and redistribution, is contained in the
// file LICENSE at the root of the source code distribution tree.

package paillier

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// A public key with N <= 0 makes every randomizerElement call panic inside
// crypto/bigint's RandRange (invalid bounds for crypto/rand.Int). buildTr's
// workers must recover that panic into an error rather than crash the test
// binary, and buildTables must surface it as the build's returned error.
func brokenPub() *PublicKey {
	return &PublicKey{G: big.NewInt(2), N: big.NewInt(0), NSquare: big.NewInt(25)}
}

func TestBuildTrRecoversWorkerPanicIntoError(t *testing.T) {
	_, err := buildTr(brokenPub(), 8)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "tr worker panicked")
}

func TestBuildTablesAggregatesWorkerPanics(t *testing.T) {
	_, err := buildTables(PrecomputeGnr, brokenPub(), 8, 2)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "table build failed")
}
