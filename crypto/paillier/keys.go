// Copyright © 2019 Binance
//
// This file is part of Binance. The full Binance copyright notice, including
// terms governing use, modification, and redistribution, is contained in the
// file LICENSE at the root of the source code distribution tree.

// Package paillier implements the cryptographic core of a research
// comparison of five Paillier variants: two keypair-generation strategies
// (strong-prime and DSA-parameter) and three precomputation configurations
// layered on top of the DSA strategy. It exposes Generate, Load, Encrypt,
// Decrypt and Add — the surface the (out of scope) benchmark driver, chart
// renderer and CLI consume.
package paillier

import (
	"math/big"
	"sync"

	"github.com/binance-chain/paillier-variants/common"
	"github.com/binance-chain/paillier-variants/crypto/bigint"
)

// Scheme names one of the five variants under comparison.
type Scheme string

const (
	Scheme1        Scheme = "scheme1"
	Scheme3        Scheme = "scheme3"
	PrecomputeGm   Scheme = "precompute_gm"
	PrecomputeGnr  Scheme = "precompute_gnr"
	PrecomputeBoth Scheme = "precompute_both"
)

func (s Scheme) usesTm() bool {
	return s == PrecomputeGm || s == PrecomputeBoth
}

func (s Scheme) usesTr() bool {
	return s == PrecomputeGnr || s == PrecomputeBoth
}

func (s Scheme) usesDSA() bool {
	return s != Scheme1
}

// PublicKey is Pk = (n, g, n^2).
type PublicKey struct {
	N       *big.Int
	G       *big.Int
	NSquare *big.Int
}

// PrivateKey carries the decryption exponent under whichever shape its
// generation strategy produced. Exactly one of the two forms is populated,
// matching which Scheme built this keypair.
type PrivateKey struct {
	// Scheme1 shape.
	P, Q, Gamma *big.Int

	// Scheme3 / precompute shape.
	P1, P2, Alpha *big.Int
}

// decryptionExponent returns gamma for Scheme1, alpha otherwise.
func (sk *PrivateKey) decryptionExponent(s Scheme) *big.Int {
	if s == Scheme1 {
		return sk.Gamma
	}
	return sk.Alpha
}

// Tables holds the optional encryption-speedup precomputation. Tm is a 2xB
// grid indexed [i][j] = g^(B^i * j) mod n^2; Tr is a sequence of B values
// (g^n)^r_i mod n^2 for independent random r_i.
type Tables struct {
	Tm [2][]*big.Int
	Tr []*big.Int
}

type keypairState int

const (
	stateFresh keypairState = iota // just generated, tables may still be building
	stateReady                     // tables complete (or not needed), safe to serve
)

// Keypair is the top-level handle returned by Generate and Load. It is
// immutable once Ready, so Encrypt/Decrypt/Add may be called concurrently
// from multiple goroutines against the same instance.
type Keypair struct {
	Scheme Scheme
	Pub    *PublicKey
	Priv   *PrivateKey
	Tables *Tables

	// Cheat swaps the DSA-variant randomizer source from g^{rand_range(1,n)}
	// mod n to a direct rand_range(1, alpha-1); a research-only toggle that
	// leaks information. Carried per-keypair, never a package global, so a
	// single process can exercise both branches side by side.
	Cheat bool

	// NoGnr is the number of Tr entries combined per encryption for this
	// keypair. Defaults to common.NoGnr; GenerateWithConfig may override it.
	NoGnr int

	mu    sync.Mutex
	state keypairState
	// den caches L(g^d mod n^2), which depends only on key material and is
	// reused across every Decrypt call.
	den *big.Int
}

func (kp *Keypair) markReady() {
	kp.mu.Lock()
	defer kp.mu.Unlock()
	kp.state = stateReady
}

func (kp *Keypair) requireReady() error {
	kp.mu.Lock()
	defer kp.mu.Unlock()
	if kp.state != stateReady {
		return common.ErrKeypairNotReady
	}
	return nil
}

// decryptionDen returns the cached L(g^d mod n^2), computing it on first use.
func (kp *Keypair) decryptionDen() *big.Int {
	kp.mu.Lock()
	defer kp.mu.Unlock()
	if kp.den != nil {
		return kp.den
	}
	d := kp.Priv.decryptionExponent(kp.Scheme)
	gd := bigint.ModPow(kp.Pub.G, d, kp.Pub.NSquare)
	kp.den = bigint.L(gd, kp.Pub.N)
	return kp.den
}
