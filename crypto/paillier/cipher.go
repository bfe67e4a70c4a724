// Copyright © 2019 Binance
//
// This file is part of Binance. The full Binance copyright notice, including
// terms governing use, modification, and redistribution, is contained in the
// file LICENSE at the root of the source code distribution tree.

package paillier

import (
	"math/big"

	"github.com/binance-chain/paillier-variants/common"
	"github.com/binance-chain/paillier-variants/crypto/bigint"
)

// Encrypt produces a ciphertext c in [0, n^2) for plaintext m in [0, n),
// dispatching on which tables the keypair carries (spec §4.4.1).
func (kp *Keypair) Encrypt(m *big.Int) (*big.Int, error) {
	if err := kp.requireReady(); err != nil {
		return nil, err
	}
	if m.Sign() < 0 || m.Cmp(kp.Pub.N) >= 0 {
		return nil, common.Wrapf(common.ErrMessageOutOfRange, "m=%s, n=%s", m.String(), kp.Pub.N.String())
	}
	if kp.Scheme.usesTm() {
		if m.BitLen() > common.TableBitWidth(len(kp.Tables.Tm[0])) {
			return nil, common.Wrapf(common.ErrMessageTooWideForTables, "m has %d bits", m.BitLen())
		}
	}

	gm := kp.computeGm(m)
	gnr := kp.computeGnr()

	c := new(big.Int).Mul(gm, gnr)
	c.Mod(c, kp.Pub.NSquare)
	return c, nil
}

func (kp *Keypair) computeGm(m *big.Int) *big.Int {
	if kp.Scheme.usesTm() {
		power := len(kp.Tables.Tm[0])
		base := big.NewInt(int64(power))
		j0 := new(big.Int).Mod(m, base)
		j1 := new(big.Int).Div(m, base)
		j1.Mod(j1, base)
		a := kp.Tables.Tm[0][j0.Int64()]
		b := kp.Tables.Tm[1][j1.Int64()]
		gm := new(big.Int).Mul(a, b)
		return gm.Mod(gm, kp.Pub.NSquare)
	}
	return bigint.ModPow(kp.Pub.G, m, kp.Pub.NSquare)
}

func (kp *Keypair) computeGnr() *big.Int {
	if kp.Scheme.usesTr() {
		return kp.sampleGnrFromTable()
	}
	r := kp.randomizer()
	if kp.Scheme == Scheme1 {
		return bigint.ModPow(r, kp.Pub.N, kp.Pub.NSquare)
	}
	g := bigint.ModPow(kp.Pub.G, kp.Pub.N, kp.Pub.NSquare)
	return bigint.ModPow(g, r, kp.Pub.NSquare)
}

// randomizer draws the DSA-variant randomizer r. Under Cheat it is a direct
// small random integer, which leaks information and exists only to measure
// how much the "real" generator-derived randomizer costs.
func (kp *Keypair) randomizer() *big.Int {
	if kp.Scheme == Scheme1 {
		return randomizerElement(kp.Pub)
	}
	if kp.Cheat {
		return bigint.RandRange(one, new(big.Int).Sub(kp.Priv.Alpha, one))
	}
	return randomizerElement(kp.Pub)
}

// sampleGnrFromTable multiplies NoGnr entries sampled without replacement
// from Tr into a single randomizer mask, per spec §3's Tr rationale.
func (kp *Keypair) sampleGnrFromTable() *big.Int {
	k := kp.NoGnr
	if k <= 0 {
		k = common.NoGnr
	}
	if k > len(kp.Tables.Tr) {
		k = len(kp.Tables.Tr)
	}
	idxs := bigint.SampleWithoutReplacement(len(kp.Tables.Tr), k)
	gnr := big.NewInt(1)
	for _, idx := range idxs {
		gnr.Mul(gnr, kp.Tables.Tr[idx])
		gnr.Mod(gnr, kp.Pub.NSquare)
	}
	return gnr
}

// Decrypt reverses Encrypt via the Paillier L-function (spec §4.4.2),
// uniform across all five variants.
func (kp *Keypair) Decrypt(c *big.Int) (*big.Int, error) {
	if err := kp.requireReady(); err != nil {
		return nil, err
	}
	if c.Sign() < 0 || c.Cmp(kp.Pub.NSquare) >= 0 {
		return nil, common.Wrapf(common.ErrCiphertextOutOfRange, "c has %d bits, n^2 has %d bits", c.BitLen(), kp.Pub.NSquare.BitLen())
	}

	d := kp.Priv.decryptionExponent(kp.Scheme)
	cd := bigint.ModPow(c, d, kp.Pub.NSquare)
	num := bigint.L(cd, kp.Pub.N)
	den := kp.decryptionDen()

	denInv, err := bigint.ModInverse(den, kp.Pub.N)
	if err != nil {
		return nil, common.Wrap(err, "decrypt: denominator not invertible mod n")
	}
	m := new(big.Int).Mul(num, denInv)
	m.Mod(m, kp.Pub.N)
	return m, nil
}

// Add computes the homomorphic sum of two ciphertexts: decrypting the result
// yields (m1+m2) mod n (spec §4.4.3). Note the n^2 used here is always the
// receiver's own modulus — the original research code read a module-level
// value here, which would silently mix up keys; this binds it to kp.
func (kp *Keypair) Add(c1, c2 *big.Int) (*big.Int, error) {
	if err := kp.requireReady(); err != nil {
		return nil, err
	}
	c := new(big.Int).Mul(c1, c2)
	c.Mod(c, kp.Pub.NSquare)
	return c, nil
}
