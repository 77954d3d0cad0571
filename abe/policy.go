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
	"strconv"
	"strings"
)

// Policy is a conjunction of entries, some of which may be negated.
// A negated row at index i is satisfied, OT-style, when the user holds
// exactly one attribute value at the same (auth, lbl) slot other than
// the one named at that row — no alternative, or more than one, fails
// the row. Whether the named value itself is also held is not checked.
type Policy struct {
	Conjunction []Entry
	Negations   []int
}

// NewPolicy builds a purely positive policy from a set of attributes.
func NewPolicy(attrs UserAttributes) Policy {
	return Policy{Conjunction: append([]Entry(nil), attrs.Entries...)}
}

// NewNegatedPolicy builds a policy from attrs, negating the rows at negs.
func NewNegatedPolicy(attrs UserAttributes, negs []int) Policy {
	return Policy{
		Conjunction: append([]Entry(nil), attrs.Entries...),
		Negations:   append([]int(nil), negs...),
	}
}

func (p Policy) isNegated(i int) bool {
	for _, n := range p.Negations {
		if n == i {
			return true
		}
	}
	return false
}

func (p Policy) String() string {
	parts := make([]string, len(p.Conjunction))
	for i, e := range p.Conjunction {
		prefix := ""
		if p.isNegated(i) {
			prefix = "!"
		}
		parts[i] = prefix + e.String()
	}
	return strings.Join(parts, " && ")
}

// IsSatisfied reports whether userAttrs satisfies the policy.
func (p Policy) IsSatisfied(userAttrs UserAttributes) bool {
	for i, curr := range p.Conjunction {
		if p.isNegated(i) {
			numAlts := 0
			for _, e := range userAttrs.Entries {
				if e.Auth == curr.Auth && e.Lbl == curr.Lbl && e.Attr != curr.Attr {
					numAlts++
				}
			}
			if numAlts != 1 {
				return false
			}
		} else if !userAttrs.HasAttr(curr) {
			return false
		}
	}
	return true
}

// ShareSecret splits secret into a trivial additive LSSS sharing over
// the policy's rows: lambdas sum to secret, mus sum to zero. Row 0
// absorbs the randomness so both invariants hold with a single pass.
func (p Policy) ShareSecret(secret Z, ops Ops) (lambdas []Z, mus []Z, err error) {
	n := len(p.Conjunction)
	lambdas = make([]Z, n)
	mus = make([]Z, n)
	if n == 0 {
		return lambdas, mus, nil
	}

	sumLambda := Z{}
	sumMu := Z{}
	for i := 1; i < n; i++ {
		v, sErr := ops.SampleZ()
		if sErr != nil {
			return nil, nil, sErr
		}
		vPrime, sErr := ops.SampleZ()
		if sErr != nil {
			return nil, nil, sErr
		}
		lambdas[i] = ops.NegZ(v)
		mus[i] = ops.NegZ(vPrime)
		sumLambda = ops.AddZ(sumLambda, v)
		sumMu = ops.AddZ(sumMu, vPrime)
	}
	lambdas[0] = ops.AddZ(secret, sumLambda)
	mus[0] = sumMu
	return lambdas, mus, nil
}

func rowLabel(i int) string {
	return strconv.Itoa(i)
}
