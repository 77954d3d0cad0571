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
	"math/big"

	"github.com/fentec-project/bn256"
)

// H is an element of the second pairing source group. Its zero value is
// not the group identity: an H must come from Ops (LiftH, ScaleH, AddH,
// ResetH, FdhH) or from Copy of an already-built value.
type H struct {
	p *bn256.G2
}

func hIdentity() H {
	return H{p: new(bn256.G2).ScalarBaseMult(big.NewInt(0))}
}

// Copy returns an element with the same value, sharing no state with h.
func (h H) Copy() H {
	return H{p: new(bn256.G2).ScalarMult(h.p, big.NewInt(1))}
}

// Equal reports whether h and other are the same group element.
func (h H) Equal(other H) bool {
	return h.p.String() == other.p.String()
}

func (h H) String() string {
	return h.p.String()
}
