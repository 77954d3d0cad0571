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

import "math/big"

// Z is an element of the prime-order scalar field of the pairing group.
// Its zero value is the scalar 0, matching the field's additive identity,
// so a Z never needs an explicit constructor to be usable.
type Z struct {
	v big.Int
}

// String renders the scalar in decimal, the same representation ReadZ parses.
func (z Z) String() string {
	return z.v.String()
}

// Equal reports whether the two scalars denote the same residue.
func (z Z) Equal(other Z) bool {
	return z.v.Cmp(&other.v) == 0
}

func zFromBigInt(v *big.Int) Z {
	var z Z
	z.v.Set(v)
	return z
}
