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
	"github.com/pkg/errors"
)

// Env deterministically coordinates the randomness and the attribute
// indexing that Setup, KeyGen, Encrypt and Decrypt all need to agree
// on for one encryption: the blinded secret, the GID-binding scalars,
// the LSSS shares, and the lazily-sampled per-attribute identity
// scalars used by the negation gadget. It is built once per user
// attribute set and policy pair and shared by all four algorithms.
type Env struct {
	ops Ops

	policy    Policy
	userAttrs UserAttributes

	attrToAuth map[string]string
	attrToLbl  map[string]string
	authSet    map[string]struct{}
	lblSet     map[string]struct{}
	attrSet    map[string]struct{}

	secret Z
	rgidG  G
	rgidH  H

	lambdas []Z
	mus     []Z

	xattrs map[string]Z
}

// NewEnv builds an Env for one policy/user-attribute pair, sampling
// fresh randomness and rejecting attribute universes where the same
// attribute value is claimed by two different authorities or slots.
func NewEnv(userAttrs UserAttributes, policy Policy, ops Ops) (*Env, error) {
	e := &Env{
		ops:        ops,
		policy:     policy,
		userAttrs:  userAttrs,
		attrToAuth: map[string]string{},
		attrToLbl:  map[string]string{},
		authSet:    map[string]struct{}{},
		lblSet:     map[string]struct{}{},
		attrSet:    map[string]struct{}{},
		xattrs:     map[string]Z{},
	}

	for _, entry := range policy.Conjunction {
		if err := e.absorb(entry); err != nil {
			return nil, err
		}
	}
	for _, entry := range userAttrs.Entries {
		if err := e.absorb(entry); err != nil {
			return nil, err
		}
	}

	var err error
	if e.secret, err = ops.SampleZ(); err != nil {
		return nil, err
	}
	rgidGScalar, err := ops.SampleZ()
	if err != nil {
		return nil, err
	}
	rgidHScalar, err := ops.SampleZ()
	if err != nil {
		return nil, err
	}
	e.rgidG = ops.LiftG(rgidGScalar)
	e.rgidH = ops.LiftH(rgidHScalar)

	e.lambdas, e.mus, err = policy.ShareSecret(e.secret, ops)
	if err != nil {
		return nil, err
	}

	return e, nil
}

func (e *Env) absorb(entry Entry) error {
	e.authSet[entry.Auth] = struct{}{}
	e.lblSet[entry.Lbl] = struct{}{}
	e.attrSet[entry.Attr] = struct{}{}
	if a, ok := e.attrToAuth[entry.Attr]; ok && a != entry.Auth {
		return errors.Errorf("attribute %q claimed by both authority %q and %q", entry.Attr, a, entry.Auth)
	}
	e.attrToAuth[entry.Attr] = entry.Auth
	if l, ok := e.attrToLbl[entry.Attr]; ok && l != entry.Lbl {
		return errors.Errorf("attribute %q claimed by both label %q and %q", entry.Attr, l, entry.Lbl)
	}
	e.attrToLbl[entry.Attr] = entry.Lbl
	return nil
}

func keys(m map[string]struct{}) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	return out
}

// Authorities returns the set of authorities named by the policy or
// the user's attributes.
func (e *Env) Authorities() []string { return keys(e.authSet) }

// AttributeUniverse returns every attribute value named by the policy
// or the user's attributes.
func (e *Env) AttributeUniverse() []string { return keys(e.attrSet) }

// UserAttributeValues returns the attribute values the user holds.
func (e *Env) UserAttributeValues() []string {
	out := make([]string, len(e.userAttrs.Entries))
	for i, entry := range e.userAttrs.Entries {
		out[i] = entry.Attr
	}
	return out
}

// Labels returns the set of slots named by the policy or the user's attributes.
func (e *Env) Labels() []string { return keys(e.lblSet) }

// LsssRows returns the indices of every policy row.
func (e *Env) LsssRows() []int {
	rows := make([]int, len(e.policy.Conjunction))
	for i := range rows {
		rows[i] = i
	}
	return rows
}

// PosLsssRows returns the indices of the policy's non-negated rows.
func (e *Env) PosLsssRows() []int {
	var rows []int
	for i := range e.policy.Conjunction {
		if !e.policy.isNegated(i) {
			rows = append(rows, i)
		}
	}
	return rows
}

// NegLsssRows returns the indices of the policy's negated rows.
func (e *Env) NegLsssRows() []int {
	var rows []int
	for i := range e.policy.Conjunction {
		if e.policy.isNegated(i) {
			rows = append(rows, i)
		}
	}
	return rows
}

// DeduplicationIdcs names the aspects along which attribute values can
// collide. Every attribute value is currently unique in every aspect,
// so this is a single constant placeholder carried forward from the
// scheme this package generalizes, left for a future scheme that needs
// to deduplicate shared sub-terms across rows.
func (e *Env) DeduplicationIdcs() []int { return []int{1} }

// LsRowToDedupIdx reports which deduplication aspect row i belongs to.
func (e *Env) LsRowToDedupIdx(i int) int { return 1 }

// LsRowToAuth returns the authority governing row i.
func (e *Env) LsRowToAuth(i int) string { return e.policy.Conjunction[i].Auth }

// LsRowToLbl returns the slot row i fills.
func (e *Env) LsRowToLbl(i int) string { return e.policy.Conjunction[i].Lbl }

// LsRowToAttr returns the attribute value row i names.
func (e *Env) LsRowToAttr(i int) string { return e.policy.Conjunction[i].Attr }

// LsRowToAltAttr returns the unique attribute value the user holds in
// row i's (auth, lbl) slot other than the value row i names. It is
// only ever called for negated rows already confirmed satisfied by
// Policy.IsSatisfied, so failure here indicates a caller bug rather
// than an unsatisfiable policy.
func (e *Env) LsRowToAltAttr(i int) (string, error) {
	auth := e.LsRowToAuth(i)
	lbl := e.LsRowToLbl(i)
	target := e.LsRowToAttr(i)
	var alts []string
	for _, entry := range e.userAttrs.Entries {
		if entry.Auth == auth && entry.Lbl == lbl && entry.Attr != target {
			alts = append(alts, entry.Attr)
		}
	}
	if len(alts) != 1 {
		return "", errors.Errorf("row %d has no unique alternative attribute", i)
	}
	return alts[0], nil
}

// RgidG returns the GID-binding randomizer lifted into G.
func (e *Env) RgidG() G { return e.rgidG }

// RgidH returns the GID-binding randomizer lifted into H.
func (e *Env) RgidH() H { return e.rgidH }

// Secret returns the value shared across the policy's rows.
func (e *Env) Secret() Z { return e.secret }

// Lambda returns row i's primary LSSS share.
func (e *Env) Lambda(i int) Z { return e.lambdas[i] }

// Mu returns row i's secondary (zero-summing) LSSS share.
func (e *Env) Mu(i int) Z { return e.mus[i] }

// Epsilon returns row i's constant coefficient, always one for the
// trivial additive sharing this package implements.
func (e *Env) Epsilon(i int) Z { return e.ops.OneZ() }

// Xattr returns attribute value attr's identity scalar, sampling and
// memoising it on first use so every reference to the same attribute
// within one Env agrees on the same value.
func (e *Env) Xattr(attr string) (Z, error) {
	if z, ok := e.xattrs[attr]; ok {
		return z, nil
	}
	z, err := e.ops.SampleZ()
	if err != nil {
		return Z{}, err
	}
	e.xattrs[attr] = z
	return z, nil
}

// XattrAlt returns the identity scalar of row j's unique alternative
// attribute value, enforcing the same one-alternative rule as
// Policy.IsSatisfied and, unlike it, also failing when the user holds
// the value row j names.
func (e *Env) XattrAlt(j int) (Z, error) {
	auth := e.LsRowToAuth(j)
	lbl := e.LsRowToLbl(j)
	attr := e.LsRowToAttr(j)

	var alt *Entry
	for i := range e.userAttrs.Entries {
		entry := e.userAttrs.Entries[i]
		if entry.Auth != auth || entry.Lbl != lbl {
			continue
		}
		if entry.Attr == attr {
			return Z{}, errors.New("negation is not satisfied as the attribute itself is present")
		}
		if alt != nil {
			return Z{}, errors.New("negation is not satisfied as OT negation only allows exactly one alternative")
		}
		found := entry
		alt = &found
	}
	if alt == nil {
		return Z{}, errors.New("negation is not satisfied as no alternative is present")
	}
	return e.Xattr(alt.Attr)
}

// AttrToAuth returns the authority that governs attr.
func (e *Env) AttrToAuth(attr string) (string, error) {
	a, ok := e.attrToAuth[attr]
	if !ok {
		return "", errors.Errorf("cannot compute authority for unknown attribute %q", attr)
	}
	return a, nil
}

// AttrToLbl returns the slot attr fills.
func (e *Env) AttrToLbl(attr string) (string, error) {
	l, ok := e.attrToLbl[attr]
	if !ok {
		return "", errors.Errorf("cannot compute label for unknown attribute %q", attr)
	}
	return l, nil
}
