// Copyright © 2019 Binance
//
// This file is part of Binance. The full Binance copyright notice, including
// terms governing use, modification, and redistribution, is contained in the
// file LICENSE at the root of the source code distribution tree.

package paillier_test

import (
	"math/big"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/binance-chain/paillier-variants/common"
	"github.com/binance-chain/paillier-variants/crypto/paillier"
)

const testKeyLength = 512

func TestMain(m *testing.M) {
	code := m.Run()
	os.RemoveAll("params")
	os.Exit(code)
}

// S1: Scheme1 round-trip and additive homomorphism.
func TestScheme1RoundTripAndHomomorphism(t *testing.T) {
	kp, err := paillier.Generate(paillier.Scheme1, testKeyLength)
	require.NoError(t, err)

	c7, err := kp.Encrypt(big.NewInt(7))
	require.NoError(t, err)
	m7, err := kp.Decrypt(c7)
	require.NoError(t, err)
	assert.Equal(t, big.NewInt(7), m7)

	c11, err := kp.Encrypt(big.NewInt(11))
	require.NoError(t, err)
	m11, err := kp.Decrypt(c11)
	require.NoError(t, err)
	assert.Equal(t, big.NewInt(11), m11)

	sum, err := kp.Add(c7, c11)
	require.NoError(t, err)
	mSum, err := kp.Decrypt(sum)
	require.NoError(t, err)
	assert.Equal(t, big.NewInt(18), mSum)
}

// S2: Scheme3 homomorphism for a sum just below n: 1 + (n-2) = n-1.
func TestScheme3ModularHomomorphism(t *testing.T) {
	kp, err := paillier.Generate(paillier.Scheme3, testKeyLength)
	require.NoError(t, err)

	nMinus2 := new(big.Int).Sub(kp.Pub.N, big.NewInt(2))
	c1, err := kp.Encrypt(big.NewInt(1))
	require.NoError(t, err)
	c2, err := kp.Encrypt(nMinus2)
	require.NoError(t, err)

	sum, err := kp.Add(c1, c2)
	require.NoError(t, err)
	m, err := kp.Decrypt(sum)
	require.NoError(t, err)

	nMinus1 := new(big.Int).Sub(kp.Pub.N, big.NewInt(1))
	assert.Equal(t, 0, m.Cmp(new(big.Int).Mod(nMinus1, kp.Pub.N)))
}

// S3: PrecomputeGm table bounds rejection.
func TestPrecomputeGmTableBounds(t *testing.T) {
	const power = 256 // message limit: 2*log2(256) = 16 bits
	kp, err := paillier.GenerateWithConfig(paillier.PrecomputeGm, testKeyLength, power, 0)
	require.NoError(t, err)

	ok, err := kp.Encrypt(big.NewInt(0xFFFF))
	require.NoError(t, err)
	m, err := kp.Decrypt(ok)
	require.NoError(t, err)
	assert.Equal(t, big.NewInt(0xFFFF), m)

	_, err = kp.Encrypt(big.NewInt(0x10000))
	assert.Error(t, err)
}

// S4: PrecomputeGnr produces distinct ciphertexts for the same plaintext.
func TestPrecomputeGnrRandomization(t *testing.T) {
	kp, err := paillier.GenerateWithConfig(paillier.PrecomputeGnr, testKeyLength, 64, 4)
	require.NoError(t, err)

	c1, err := kp.Encrypt(big.NewInt(42))
	require.NoError(t, err)
	c2, err := kp.Encrypt(big.NewInt(42))
	require.NoError(t, err)

	assert.NotEqual(t, c1, c2)

	m1, err := kp.Decrypt(c1)
	require.NoError(t, err)
	m2, err := kp.Decrypt(c2)
	require.NoError(t, err)
	assert.Equal(t, big.NewInt(42), m1)
	assert.Equal(t, big.NewInt(42), m2)
}

// S5: persistence round-trip.
func TestPersistenceRoundTrip(t *testing.T) {
	kp, err := paillier.GenerateWithConfig(paillier.PrecomputeBoth, testKeyLength, 64, 4)
	require.NoError(t, err)

	path, err := paillier.Save(kp)
	require.NoError(t, err)

	reloaded, err := paillier.Load(paillier.PrecomputeBoth, path)
	require.NoError(t, err)

	c, err := reloaded.Encrypt(big.NewInt(12345))
	require.NoError(t, err)
	m, err := reloaded.Decrypt(c)
	require.NoError(t, err)
	assert.Equal(t, big.NewInt(12345), m)
}

// S6: loading a file as the wrong variant fails with a missing-table error.
func TestLoadRejectsMissingTable(t *testing.T) {
	kp, err := paillier.GenerateWithConfig(paillier.PrecomputeGnr, testKeyLength, 64, 4)
	require.NoError(t, err)

	path, err := paillier.Save(kp)
	require.NoError(t, err)

	_, err = paillier.Load(paillier.PrecomputeBoth, path)
	assert.ErrorIs(t, err, common.ErrMissingTable)
}

func TestCiphertextRange(t *testing.T) {
	kp, err := paillier.Generate(paillier.Scheme1, testKeyLength)
	require.NoError(t, err)
	c, err := kp.Encrypt(big.NewInt(99))
	require.NoError(t, err)
	assert.True(t, c.Sign() >= 0)
	assert.True(t, c.Cmp(kp.Pub.NSquare) < 0)
}

func TestRejectsOutOfRangeMessages(t *testing.T) {
	kp, err := paillier.Generate(paillier.Scheme1, testKeyLength)
	require.NoError(t, err)

	_, err = kp.Encrypt(kp.Pub.N)
	assert.Error(t, err)
	_, err = kp.Encrypt(new(big.Int).Add(kp.Pub.N, big.NewInt(1)))
	assert.Error(t, err)
	_, err = kp.Encrypt(big.NewInt(-1))
	assert.Error(t, err)
}

func TestDecryptRejectsOutOfRangeCiphertext(t *testing.T) {
	kp, err := paillier.Generate(paillier.Scheme1, testKeyLength)
	require.NoError(t, err)
	_, err = kp.Decrypt(kp.Pub.NSquare)
	assert.Error(t, err)
}

// The Cheat toggle swaps the DSA-variant randomizer source (cipher.go's
// randomizer) but must never break correctness — only the information it
// leaks differs from the default branch.
func TestCheatToggleRoundTrip(t *testing.T) {
	kp, err := paillier.Generate(paillier.Scheme3, testKeyLength)
	require.NoError(t, err)
	kp.Cheat = true

	c1, err := kp.Encrypt(big.NewInt(77))
	require.NoError(t, err)
	m1, err := kp.Decrypt(c1)
	require.NoError(t, err)
	assert.Equal(t, big.NewInt(77), m1)

	c2, err := kp.Encrypt(big.NewInt(3))
	require.NoError(t, err)
	sum, err := kp.Add(c1, c2)
	require.NoError(t, err)
	mSum, err := kp.Decrypt(sum)
	require.NoError(t, err)
	assert.Equal(t, big.NewInt(80), mSum)
}

func TestGenerateMessageBatch(t *testing.T) {
	kp, err := paillier.Generate(paillier.Scheme1, testKeyLength)
	require.NoError(t, err)
	batch := kp.GenerateMessageBatch(25)
	assert.Len(t, batch, 25)
	for _, m := range batch {
		assert.True(t, m.Sign() >= 0)
		assert.True(t, m.Cmp(kp.Pub.N) < 0)
	}
}
