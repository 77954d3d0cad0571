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

// CorrectnessCheck exercises Setup, KeyGen, Encrypt and Decrypt
// end-to-end over a freshly generated random attribute set, mirroring
// the fixture this package's test suite and the original C++ harness
// both build their scenarios from. policyLen is the number of entries
// in the user's attribute set and of rows in the policy. When
// multiAuth is false every entry is governed by the same authority.
// When useNegs is true, the policy negates every row: it names a
// "<attr>_neg" sibling value in each slot, satisfied because the user
// holds the original, different value there.
func CorrectnessCheck(policyLen int, multiAuth bool, useNegs bool) (bool, error) {
	scheme := NewScheme()

	userAttrs, err := RandomUserAttributes(policyLen, multiAuth)
	if err != nil {
		return false, err
	}

	var policy Policy
	if useNegs {
		var policyAttrs UserAttributes
		negs := make([]int, policyLen)
		for i, entry := range userAttrs.Entries {
			negs[i] = i
			policyAttrs.Entries = append(policyAttrs.Entries, Entry{
				Auth: entry.Auth,
				Lbl:  entry.Lbl,
				Attr: entry.Attr + "_neg",
			})
		}
		policy = NewNegatedPolicy(policyAttrs, negs)
	} else {
		policy = NewPolicy(userAttrs)
	}

	ops := NewOps()
	env, err := NewEnv(userAttrs, policy, ops)
	if err != nil {
		return false, errors.Wrap(err, "building env")
	}

	msk, mpk, err := scheme.Setup(env.Authorities(), env.AttributeUniverse())
	if err != nil {
		return false, errors.Wrap(err, "setup")
	}

	usk, err := scheme.KeyGen(msk, env, userAttrs)
	if err != nil {
		return false, errors.Wrap(err, "keygen")
	}

	if !policy.IsSatisfied(userAttrs) {
		return false, nil
	}

	msg, err := ops.RandomGt()
	if err != nil {
		return false, err
	}

	ct, err := scheme.Encrypt(msg, mpk, env, policy)
	if err != nil {
		return false, errors.Wrap(err, "encrypt")
	}

	recovered, err := scheme.Decrypt(ct, usk, env)
	if err != nil {
		return false, errors.Wrap(err, "decrypt")
	}

	return msg.Equal(recovered), nil
}
