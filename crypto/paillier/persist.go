// Copyright © 2019 Binance
//
// This file is part of Binance. The full Binance copyright notice, including
// terms governing use, modification, and redistribution, is contained in the
// file LICENSE at the root of the source code distribution tree.

package paillier

import (
	"encoding/json"
	"fmt"
	"math/big"
	"os"
	"path/filepath"
	"time"

	"golang.org/x/crypto/sha3"

	"github.com/binance-chain/paillier-variants/common"
)

const paramsDir = "params"

// fileFormat is the canonical on-disk encoding of a Keypair (spec §4.5,
// §6). Every big.Int is a decimal string; tables the variant does not use
// are simply omitted rather than written as empty arrays. An empty
// precomputed_gnr is omitted as well, so Load reads it back as absent.
type fileFormat struct {
	Scheme string `json:"scheme"`
	Public struct {
		N       string `json:"n"`
		G       string `json:"g"`
		NSquare string `json:"nsquared"`
	} `json:"public"`
	Private struct {
		P     string `json:"p"`
		Q     string `json:"q"`
		Gamma string `json:"gamma,omitempty"`
		Alpha string `json:"alpha,omitempty"`
	} `json:"private"`
	PrecomputedGm  *[2][]string `json:"precomputed_gm,omitempty"`
	PrecomputedGnr []string     `json:"precomputed_gnr,omitempty"`
	Checksum       string       `json:"checksum"`
}

// Save writes kp to a new timestamp-named file under params/, creating the
// directory on demand, and returns the path written. The file handle is
// scoped to this call and released on every return path.
func Save(kp *Keypair) (string, error) {
	if err := os.MkdirAll(paramsDir, 0o755); err != nil {
		return "", common.Wrap(err, "persist: could not create params directory")
	}

	doc := toFileFormat(kp)
	path := filepath.Join(paramsDir, fmt.Sprintf("%s_%d.json", kp.Scheme, time.Now().UnixNano()))

	f, err := os.Create(path)
	if err != nil {
		return "", common.Wrapf(err, "persist: could not create %s", path)
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return "", common.Wrapf(err, "persist: could not write %s", path)
	}
	return path, nil
}

// Load reconstructs a Ready keypair from a previously Saved file, verifying
// the variant named by scheme carries every table it requires.
func Load(scheme Scheme, path string) (*Keypair, error) {
	if path == "" {
		return nil, common.Wrap(common.ErrFileNotFound, "persist: empty path given to Load")
	}
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, common.Wrapf(common.ErrFileNotFound, "persist: %s", path)
		}
		return nil, common.Wrapf(err, "persist: could not open %s", path)
	}
	defer f.Close()

	var doc fileFormat
	if err := json.NewDecoder(f).Decode(&doc); err != nil {
		return nil, common.Wrapf(err, "persist: could not parse %s", path)
	}

	if err := verifyChecksum(doc); err != nil {
		return nil, common.Wrapf(err, "persist: %s failed integrity check", path)
	}

	if scheme.usesTm() && doc.PrecomputedGm == nil {
		return nil, common.Wrapf(common.ErrMissingTable, "persist: %s requires precomputed_gm", scheme)
	}
	if scheme.usesTr() && doc.PrecomputedGnr == nil {
		return nil, common.Wrapf(common.ErrMissingTable, "persist: %s requires precomputed_gnr", scheme)
	}

	kp, err := fromFileFormat(scheme, doc)
	if err != nil {
		return nil, common.Wrapf(err, "persist: could not reconstruct keypair from %s", path)
	}
	kp.markReady()
	return kp, nil
}

func toFileFormat(kp *Keypair) fileFormat {
	var doc fileFormat
	doc.Scheme = string(kp.Scheme)
	doc.Public.N = kp.Pub.N.String()
	doc.Public.G = kp.Pub.G.String()
	doc.Public.NSquare = kp.Pub.NSquare.String()

	if kp.Scheme == Scheme1 {
		doc.Private.P = kp.Priv.P.String()
		doc.Private.Q = kp.Priv.Q.String()
		doc.Private.Gamma = kp.Priv.Gamma.String()
	} else {
		doc.Private.P = kp.Priv.P1.String()
		doc.Private.Q = kp.Priv.P2.String()
		doc.Private.Alpha = kp.Priv.Alpha.String()
	}

	if kp.Scheme.usesTm() {
		var grid [2][]string
		for i := 0; i < 2; i++ {
			row := make([]string, len(kp.Tables.Tm[i]))
			for j, v := range kp.Tables.Tm[i] {
				row[j] = v.String()
			}
			grid[i] = row
		}
		doc.PrecomputedGm = &grid
	}
	if kp.Scheme.usesTr() {
		seq := make([]string, len(kp.Tables.Tr))
		for i, v := range kp.Tables.Tr {
			seq[i] = v.String()
		}
		doc.PrecomputedGnr = seq
	}

	doc.Checksum = checksumOf(doc)
	return doc
}

func fromFileFormat(scheme Scheme, doc fileFormat) (*Keypair, error) {
	n, ok := new(big.Int).SetString(doc.Public.N, 10)
	if !ok {
		return nil, fmt.Errorf("persist: malformed public.n")
	}
	g, ok := new(big.Int).SetString(doc.Public.G, 10)
	if !ok {
		return nil, fmt.Errorf("persist: malformed public.g")
	}
	nSquare, ok := new(big.Int).SetString(doc.Public.NSquare, 10)
	if !ok {
		return nil, fmt.Errorf("persist: malformed public.nsquared")
	}
	pub := &PublicKey{N: n, G: g, NSquare: nSquare}

	p, ok := new(big.Int).SetString(doc.Private.P, 10)
	if !ok {
		return nil, fmt.Errorf("persist: malformed private.p")
	}
	q, ok := new(big.Int).SetString(doc.Private.Q, 10)
	if !ok {
		return nil, fmt.Errorf("persist: malformed private.q")
	}

	priv := &PrivateKey{}
	if scheme == Scheme1 {
		gamma, ok := new(big.Int).SetString(doc.Private.Gamma, 10)
		if !ok {
			return nil, fmt.Errorf("persist: malformed private.gamma")
		}
		priv.P, priv.Q, priv.Gamma = p, q, gamma
	} else {
		alpha, ok := new(big.Int).SetString(doc.Private.Alpha, 10)
		if !ok {
			return nil, fmt.Errorf("persist: malformed private.alpha")
		}
		priv.P1, priv.P2, priv.Alpha = p, q, alpha
	}

	kp := &Keypair{Scheme: scheme, Pub: pub, Priv: priv}

	if scheme.usesTm() {
		var tm [2][]*big.Int
		for i := 0; i < 2; i++ {
			row := make([]*big.Int, len(doc.PrecomputedGm[i]))
			for j, s := range doc.PrecomputedGm[i] {
				v, ok := new(big.Int).SetString(s, 10)
				if !ok {
					return nil, fmt.Errorf("persist: malformed precomputed_gm[%d][%d]", i, j)
				}
				row[j] = v
			}
			tm[i] = row
		}
		kp.Tables = &Tables{Tm: tm}
	}
	if scheme.usesTr() {
		tr := make([]*big.Int, len(doc.PrecomputedGnr))
		for i, s := range doc.PrecomputedGnr {
			v, ok := new(big.Int).SetString(s, 10)
			if !ok {
				return nil, fmt.Errorf("persist: malformed precomputed_gnr[%d]", i)
			}
			tr[i] = v
		}
		if kp.Tables == nil {
			kp.Tables = &Tables{}
		}
		kp.Tables.Tr = tr
	}

	return kp, nil
}

// checksumOf hashes every field but Checksum itself, so Load can detect a
// truncated or hand-edited params file before it is ever used for crypto.
func checksumOf(doc fileFormat) string {
	doc.Checksum = ""
	bz, _ := json.Marshal(doc)
	sum := sha3.Sum256(bz)
	return fmt.Sprintf("%x", sum)
}

func verifyChecksum(doc fileFormat) error {
	want := doc.Checksum
	got := checksumOf(doc)
	if want != got {
		return fmt.Errorf("persist: checksum mismatch (file may be corrupted or hand-edited)")
	}
	return nil
}
