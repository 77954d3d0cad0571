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

// Gt is an element of the pairing target group. Its zero value is not
// the group identity: a Gt must come from Ops (LiftGt, ScaleGt, AddGt,
// InvGt, ResetGt, RandomGt, Pair) or from Copy of an already-built value.
type Gt struct {
	p *bn256.GT
}

func gtIdentity() Gt {
	return Gt{p: new(bn256.GT).ScalarBaseMult(big.NewInt(0))}
}

// Copy returns an element with the same value, sharing no state with g.
func (g Gt) Copy() Gt {
	return Gt{p: new(bn256.GT).Set(g.p)}
}

// Equal reports whether g and other are the same target-group element.
func (g Gt) Equal(other Gt) bool {
	return g.p.String() == other.p.String()
}

func (g Gt) String() string {
	return g.p.String()
}
