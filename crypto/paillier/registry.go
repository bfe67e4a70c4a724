// Copyright © 2019 Binance
//
// This file is part of Binance. The full Binance copyright notice, including
// terms governing use, modification, and redistribution, is contained in the
// file LICENSE at the root of the source code distribution tree.

package paillier

import (
	"fmt"

	"github.com/binance-chain/paillier-variants/common"
)

// schemes lists every variant this registry knows how to build, the only
// place that decides which keypair-factory strategy and which tables a given
// Scheme tag gets (spec §2's "scheme registry is the only thing that knows
// which variant applies which recipe").
var schemes = map[Scheme]bool{
	Scheme1:        true,
	Scheme3:        true,
	PrecomputeGm:   true,
	PrecomputeGnr:  true,
	PrecomputeBoth: true,
}

// ParseScheme validates a scheme tag string against the registry.
func ParseScheme(tag string) (Scheme, error) {
	s := Scheme(tag)
	if !schemes[s] {
		return "", fmt.Errorf("paillier: unknown scheme %q", tag)
	}
	return s, nil
}

// Generate builds a new keypair for the given scheme at nLength bits using
// the default table configuration (common.Power, common.NoGnr), and
// persists the result under params/. This is the library's primary entry
// point (spec §6).
func Generate(scheme Scheme, nLength int) (*Keypair, error) {
	return GenerateWithConfig(scheme, nLength, common.Power, common.NoGnr)
}

// GenerateWithConfig is Generate with an explicit table base and Tr
// combination count, letting tests and benchmarks exercise smaller tables
// than the 2^16 production default without touching package state.
func GenerateWithConfig(scheme Scheme, nLength, power, noGnr int) (*Keypair, error) {
	if !schemes[scheme] {
		return nil, fmt.Errorf("paillier: unknown scheme %q", scheme)
	}

	common.Logger.Infof("%s: generating key material at %d bits", scheme, nLength)
	var pub *PublicKey
	var priv *PrivateKey
	var err error
	if scheme.usesDSA() {
		pub, priv, err = generateDSA(nLength)
	} else {
		pub, priv, err = generateScheme1(nLength)
	}
	if err != nil {
		return nil, common.Wrapf(err, "%s: key generation failed", scheme)
	}

	kp := &Keypair{Scheme: scheme, Pub: pub, Priv: priv, state: stateFresh, NoGnr: noGnr}

	if scheme.usesTm() || scheme.usesTr() {
		common.Logger.Infof("%s: building precomputation tables", scheme)
		tables, err := buildTables(scheme, pub, power, noGnr)
		if err != nil {
			return nil, common.Wrapf(err, "%s: table precomputation failed", scheme)
		}
		kp.Tables = tables
	}
	kp.markReady()

	path, err := Save(kp)
	if err != nil {
		return nil, common.Wrapf(err, "%s: failed to persist generated keypair", scheme)
	}
	common.Logger.Infof("%s: keypair persisted to %s", scheme, path)

	return kp, nil
}
