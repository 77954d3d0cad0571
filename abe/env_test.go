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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEnvRejectsConflictingAuthorities(t *testing.T) {
	ops := NewOps()
	userAttrs := UserAttributes{Entries: []Entry{{Auth: "AA", Lbl: "aa", Attr: "00"}}}
	policy := Policy{Conjunction: []Entry{{Auth: "BB", Lbl: "aa", Attr: "00"}}}

	_, err := NewEnv(userAttrs, policy, ops)
	assert.Error(t, err)
}

func TestNewEnvRejectsConflictingLabels(t *testing.T) {
	ops := NewOps()
	userAttrs := UserAttributes{Entries: []Entry{{Auth: "AA", Lbl: "aa", Attr: "00"}}}
	policy := Policy{Conjunction: []Entry{{Auth: "AA", Lbl: "bb", Attr: "00"}}}

	_, err := NewEnv(userAttrs, policy, ops)
	assert.Error(t, err)
}

func TestEnvShareSecretAccessorsMatchPolicy(t *testing.T) {
	ops := NewOps()
	userAttrs, err := RandomUserAttributes(4, true)
	require.NoError(t, err)
	policy := NewPolicy(userAttrs)

	env, err := NewEnv(userAttrs, policy, ops)
	require.NoError(t, err)

	assert.ElementsMatch(t, env.LsssRows(), env.PosLsssRows())
	assert.Empty(t, env.NegLsssRows())

	sum := ops.ResetZ()
	for _, i := range env.LsssRows() {
		sum = ops.AddZ(sum, env.Lambda(i))
	}
	assert.True(t, sum.Equal(env.Secret()))
}

func TestEnvXattrMemoizes(t *testing.T) {
	ops := NewOps()
	userAttrs, err := RandomUserAttributes(2, true)
	require.NoError(t, err)
	policy := NewPolicy(userAttrs)
	env, err := NewEnv(userAttrs, policy, ops)
	require.NoError(t, err)

	a, err := env.Xattr("00")
	require.NoError(t, err)
	b, err := env.Xattr("00")
	require.NoError(t, err)
	assert.True(t, a.Equal(b))
}

func TestEnvLsRowToAltAttr(t *testing.T) {
	ops := NewOps()
	userAttrs, err := RandomUserAttributes(2, true)
	require.NoError(t, err)

	var policyAttrs UserAttributes
	for _, e := range userAttrs.Entries {
		policyAttrs.Entries = append(policyAttrs.Entries, Entry{Auth: e.Auth, Lbl: e.Lbl, Attr: e.Attr + "_neg"})
	}
	policy := NewNegatedPolicy(policyAttrs, []int{0, 1})
	env, err := NewEnv(userAttrs, policy, ops)
	require.NoError(t, err)

	alt, err := env.LsRowToAltAttr(0)
	require.NoError(t, err)
	assert.Equal(t, userAttrs.Entries[0].Attr, alt)
}
