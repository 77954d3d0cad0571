/*
 * Copyright (c) 2018 XLAB d.o.o
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 * http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package abe

import (
	"crypto/rand"
	"math/big"

	"github.com/fentec-project/bn256"
	"github.com/pkg/errors"

	"github.com/lincolncryptools/pracy/sample"
)

// Ops bundles the field and group arithmetic shared by every algorithm
// of the scheme. It carries no mutable state of its own; every method
// other than SampleZ and RandomGt is a pure function of its arguments
// plus the group order.
type Ops struct {
	order *big.Int
}

// NewOps builds an Ops bundle tied to the pairing group's scalar order.
func NewOps() Ops {
	return Ops{order: bn256.Order}
}

// SampleZ draws a uniformly random scalar in [0, order).
func (o Ops) SampleZ() (Z, error) {
	v, err := sample.NewUniform(o.order).Sample()
	if err != nil {
		return Z{}, errors.Wrap(err, "failed to sample scalar")
	}
	return zFromBigInt(v), nil
}

// OneZ returns the multiplicative identity of the scalar field.
func (o Ops) OneZ() Z {
	return zFromBigInt(big.NewInt(1))
}

// SetZ builds a scalar from a native int, reduced modulo the group order.
func (o Ops) SetZ(v int64) Z {
	r := new(big.Int).Mod(big.NewInt(v), o.order)
	return zFromBigInt(r)
}

// ReadZ parses the decimal representation produced by Z.String.
func (o Ops) ReadZ(s string) (Z, error) {
	v, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return Z{}, errors.Errorf("cannot parse scalar from %q", s)
	}
	return zFromBigInt(new(big.Int).Mod(v, o.order)), nil
}

// AddZ returns a + b mod order.
func (o Ops) AddZ(a, b Z) Z {
	r := new(big.Int).Add(&a.v, &b.v)
	r.Mod(r, o.order)
	return zFromBigInt(r)
}

// SubZ returns a - b mod order.
func (o Ops) SubZ(a, b Z) Z {
	r := new(big.Int).Sub(&a.v, &b.v)
	r.Mod(r, o.order)
	return zFromBigInt(r)
}

// MulZ returns a * b mod order.
func (o Ops) MulZ(a, b Z) Z {
	r := new(big.Int).Mul(&a.v, &b.v)
	r.Mod(r, o.order)
	return zFromBigInt(r)
}

// NegZ returns -a mod order, reduced to the canonical non-negative
// representative (big.Int.Mod already returns a non-negative result for
// a positive modulus, but we keep this explicit since the original
// RELIC backend's mod reduction needed the same correction applied by hand).
func (o Ops) NegZ(a Z) Z {
	r := new(big.Int).Neg(&a.v)
	r.Mod(r, o.order)
	return zFromBigInt(r)
}

// InvZ returns the multiplicative inverse of a mod order. a must be
// nonzero modulo order.
func (o Ops) InvZ(a Z) (Z, error) {
	if new(big.Int).Mod(&a.v, o.order).Sign() == 0 {
		return Z{}, errors.New("cannot invert zero scalar")
	}
	r := new(big.Int).ModInverse(&a.v, o.order)
	if r == nil {
		return Z{}, errors.New("scalar has no inverse modulo group order")
	}
	return zFromBigInt(r), nil
}

// ScaleZ returns c*a mod order, the scalar analogue of ScaleG/ScaleH/ScaleGt.
func (o Ops) ScaleZ(c Z, a Z) Z {
	return o.MulZ(c, a)
}

// ResetZ returns the additive identity, for symmetry with ResetG/ResetH/ResetGt.
func (o Ops) ResetZ() Z {
	return Z{}
}

// LiftG maps a scalar into G via the fixed generator.
func (o Ops) LiftG(z Z) G {
	return G{p: new(bn256.G1).ScalarBaseMult(&z.v)}
}

// ScaleG returns c*g.
func (o Ops) ScaleG(c Z, g G) G {
	return G{p: new(bn256.G1).ScalarMult(g.p, &c.v)}
}

// AddG returns a+b.
func (o Ops) AddG(a, b G) G {
	return G{p: new(bn256.G1).Add(a.p, b.p)}
}

// ResetG returns the identity of G.
func (o Ops) ResetG() G {
	return gIdentity()
}

// FdhG is a full-domain hash of name into G, giving an element with no
// known discrete-log relationship to the generator. Encrypt uses it to
// derive the ciphertext's policy tag.
func (o Ops) FdhG(name string) (G, error) {
	p, err := bn256.HashG1(name)
	if err != nil {
		return G{}, errors.Wrapf(err, "failed to hash %q into G", name)
	}
	return G{p: p}, nil
}

// LiftH maps a scalar into H via the fixed generator.
func (o Ops) LiftH(z Z) H {
	return H{p: new(bn256.G2).ScalarBaseMult(&z.v)}
}

// ScaleH returns c*h.
func (o Ops) ScaleH(c Z, h H) H {
	return H{p: new(bn256.G2).ScalarMult(h.p, &c.v)}
}

// AddH returns a+b.
func (o Ops) AddH(a, b H) H {
	return H{p: new(bn256.G2).Add(a.p, b.p)}
}

// ResetH returns the identity of H.
func (o Ops) ResetH() H {
	return hIdentity()
}

// FdhH is the H-side counterpart of FdhG.
func (o Ops) FdhH(name string) (H, error) {
	p, err := bn256.HashG2(name)
	if err != nil {
		return H{}, errors.Wrapf(err, "failed to hash %q into H", name)
	}
	return H{p: p}, nil
}

// LiftGt maps a scalar into Gt via the fixed generator e(g,h).
func (o Ops) LiftGt(z Z) Gt {
	return Gt{p: new(bn256.GT).ScalarBaseMult(&z.v)}
}

// ScaleGt returns c*g in Gt (exponentiation, written additively).
func (o Ops) ScaleGt(c Z, g Gt) Gt {
	return Gt{p: new(bn256.GT).ScalarMult(g.p, &c.v)}
}

// AddGt returns a+b in Gt (multiplication, written additively).
func (o Ops) AddGt(a, b Gt) Gt {
	return Gt{p: new(bn256.GT).Add(a.p, b.p)}
}

// InvGt returns -a in Gt.
func (o Ops) InvGt(a Gt) Gt {
	return Gt{p: new(bn256.GT).Neg(a.p)}
}

// ResetGt returns the identity of Gt.
func (o Ops) ResetGt() Gt {
	return gtIdentity()
}

// RandomGt draws a uniformly random element of the target group,
// independent of the scalar field, the way a session key or blinding
// factor is sampled for encapsulation.
func (o Ops) RandomGt() (Gt, error) {
	_, p, err := bn256.RandomGT(rand.Reader)
	if err != nil {
		return Gt{}, errors.Wrap(err, "failed to sample random Gt element")
	}
	return Gt{p: p}, nil
}

// Pair evaluates the bilinear map e: G x H -> Gt.
func (o Ops) Pair(g G, h H) Gt {
	return Gt{p: bn256.Pair(g.p, h.p)}
}
