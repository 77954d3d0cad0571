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

// G is an element of the first pairing source group. Its zero value is
// not the group identity: a G must come from Ops (LiftG, ScaleG, AddG,
// ResetG, FdhG) or from Copy of an already-built value.
type G struct {
	p *bn256.G1
}

func gIdentity() G {
	return G{p: new(bn256.G1).ScalarBaseMult(big.NewInt(0))}
}

// Copy returns an element with the same value, sharing no state with g.
func (g G) Copy() G {
	return G{p: new(bn256.G1).ScalarMult(g.p, big.NewInt(1))}
}

// Equal reports whether g and other are the same group element.
func (g G) Equal(other G) bool {
	return g.p.String() == other.p.String()
}

func (g G) String() string {
	return g.p.String()
}
