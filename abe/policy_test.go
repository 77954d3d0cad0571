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

func TestPolicyIsSatisfiedPositive(t *testing.T) {
	userAttrs, err := RandomUserAttributes(5, true)
	require.NoError(t, err)

	policy := NewPolicy(userAttrs)
	assert.True(t, policy.IsSatisfied(userAttrs))

	missingOne := UserAttributes{Entries: userAttrs.Entries[1:]}
	assert.False(t, policy.IsSatisfied(missingOne))
}

func TestPolicyIsSatisfiedNegated(t *testing.T) {
	userAttrs, err := RandomUserAttributes(3, true)
	require.NoError(t, err)

	var policyAttrs UserAttributes
	negs := []int{0, 1, 2}
	for _, e := range userAttrs.Entries {
		policyAttrs.Entries = append(policyAttrs.Entries, Entry{Auth: e.Auth, Lbl: e.Lbl, Attr: e.Attr + "_neg"})
	}
	policy := NewNegatedPolicy(policyAttrs, negs)

	assert.True(t, policy.IsSatisfied(userAttrs))

	// holding only the negated value itself leaves no alternative, which fails the row
	assert.False(t, policy.IsSatisfied(policyAttrs))

	// a second alternative in the same slot breaks the "exactly one" rule
	ambiguous := UserAttributes{Entries: append(append([]Entry{}, userAttrs.Entries...),
		Entry{Auth: userAttrs.Entries[0].Auth, Lbl: userAttrs.Entries[0].Lbl, Attr: "yet-another"})}
	assert.False(t, policy.IsSatisfied(ambiguous))
}

func TestShareSecretInvariants(t *testing.T) {
	ops := NewOps()
	userAttrs, err := RandomUserAttributes(6, true)
	require.NoError(t, err)
	policy := NewPolicy(userAttrs)

	secret, err := ops.SampleZ()
	require.NoError(t, err)

	lambdas, mus, err := policy.ShareSecret(secret, ops)
	require.NoError(t, err)
	require.Len(t, lambdas, 6)
	require.Len(t, mus, 6)

	sumLambda := ops.ResetZ()
	sumMu := ops.ResetZ()
	for i := range lambdas {
		sumLambda = ops.AddZ(sumLambda, lambdas[i])
		sumMu = ops.AddZ(sumMu, mus[i])
	}
	assert.True(t, sumLambda.Equal(secret))
	assert.True(t, sumMu.Equal(ops.ResetZ()))
}

func TestShareSecretEmptyPolicy(t *testing.T) {
	ops := NewOps()
	secret, err := ops.SampleZ()
	require.NoError(t, err)

	lambdas, mus, err := Policy{}.ShareSecret(secret, ops)
	require.NoError(t, err)
	assert.Empty(t, lambdas)
	assert.Empty(t, mus)
}
