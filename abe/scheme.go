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

// Scheme drives Setup, KeyGen, Encrypt and Decrypt. It carries no state
// beyond the shared Ops bundle.
type Scheme struct {
	ops Ops
}

// NewScheme builds a Scheme over the package's fixed pairing group.
func NewScheme() Scheme {
	return Scheme{ops: NewOps()}
}

// Setup generates one authority per name in auths plus the scheme-wide
// negation trapdoor, and one y-scalar for every attribute value in
// attrUniverse.
func (s Scheme) Setup(auths []string, attrUniverse []string) (MasterSecretKey, MasterPublicKey, error) {
	msk := MasterSecretKey{
		Alphas:     map[string]Z{},
		CommonVars: map[string]Z{},
	}
	mpk := MasterPublicKey{
		Alphas:      map[string]Gt{},
		CommonVarsG: map[string]G{},
		CommonVarsH: map[string]H{},
	}

	for _, a := range auths {
		alpha, err := s.ops.SampleZ()
		if err != nil {
			return MasterSecretKey{}, MasterPublicKey{}, errors.Wrapf(err, "sampling alpha for authority %q", a)
		}
		msk.Alphas[a] = alpha
		mpk.Alphas[a] = s.ops.LiftGt(alpha)
	}

	beta, err := s.ops.SampleZ()
	if err != nil {
		return MasterSecretKey{}, MasterPublicKey{}, errors.Wrap(err, "sampling negation trapdoor")
	}
	msk.CommonVars[betaKey] = beta
	mpk.CommonVarsG[betaKey] = s.ops.LiftG(beta)

	for _, attr := range attrUniverse {
		y, err := s.ops.SampleZ()
		if err != nil {
			return MasterSecretKey{}, MasterPublicKey{}, errors.Wrapf(err, "sampling y for attribute %q", attr)
		}
		msk.CommonVars[attr] = y
		mpk.CommonVarsH[attr] = s.ops.LiftH(y)
	}

	return msk, mpk, nil
}

// KeyGen issues a user secret key for userAttrs under env, an Env built
// for the same userAttrs against whatever policy will later be decrypted.
// Every attribute value the user holds gets both a positive-row key term
// and a negation-alternative key term, since which role it will play is
// only known at Decrypt time.
func (s Scheme) KeyGen(msk MasterSecretKey, env *Env, userAttrs UserAttributes) (UserSecretKey, error) {
	usk := UserSecretKey{
		UserAttrs:    userAttrs,
		NonLoneVarsG: map[string]G{"gid": env.RgidG()},
		NonLoneVarsH: map[string]H{"gid": env.RgidH()},
		PolysG:       map[string]G{},
		PolysH:       map[string]H{},
	}

	beta, ok := msk.CommonVars[betaKey]
	if !ok {
		return UserSecretKey{}, errors.New("master secret key is missing its negation trapdoor")
	}

	for _, entry := range userAttrs.Entries {
		alpha, ok := msk.Alphas[entry.Auth]
		if !ok {
			return UserSecretKey{}, errors.Errorf("no authority key for %q", entry.Auth)
		}
		y, ok := msk.CommonVars[entry.Attr]
		if !ok {
			return UserSecretKey{}, errors.Errorf("no common variable for attribute %q", entry.Attr)
		}
		usk.PolysG[entry.Attr] = s.ops.AddG(s.ops.LiftG(alpha), s.ops.ScaleG(y, env.RgidG()))

		x, err := env.Xattr(entry.Attr)
		if err != nil {
			return UserSecretKey{}, err
		}
		denom := s.ops.SubZ(x, beta)
		inv, err := s.ops.InvZ(denom)
		if err != nil {
			return UserSecretKey{}, errors.Wrapf(err, "attribute %q collides with the negation trapdoor", entry.Attr)
		}
		usk.PolysH["neg:"+entry.Attr] = s.ops.LiftH(inv)
	}

	return usk, nil
}

// Encrypt encrypts msg (an element of Gt) under policy, using env to
// source the policy's LSSS shares and the per-attribute randomness.
func (s Scheme) Encrypt(msg Gt, mpk MasterPublicKey, env *Env, policy Policy) (Ciphertext, error) {
	ct := Ciphertext{
		Policy:         policy,
		NonLoneVarsG:   map[string]G{},
		NonLoneVarsH:   map[string]H{},
		PrimaryPolysG:  map[string]G{},
		PrimaryPolysH:  map[string]H{},
		SecondaryPolys: map[string]Gt{},
	}

	// tag binds the ciphertext to the exact policy it was encrypted
	// under; it plays no role in Decrypt's pairing algebra and is kept
	// only as a diagnostic/integrity fingerprint.
	tagG, err := s.ops.FdhG("1:" + policy.String())
	if err != nil {
		return Ciphertext{}, err
	}
	tagH, err := s.ops.FdhH("0:" + policy.String())
	if err != nil {
		return Ciphertext{}, err
	}
	ct.NonLoneVarsG["tag"] = tagG
	ct.NonLoneVarsH["tag"] = tagH

	beta, ok := mpk.CommonVarsG[betaKey]
	if !ok {
		return Ciphertext{}, errors.New("master public key is missing its negation trapdoor")
	}

	for _, i := range env.PosLsssRows() {
		attr := env.LsRowToAttr(i)
		auth := env.LsRowToAuth(i)
		yH, ok := mpk.CommonVarsH[attr]
		if !ok {
			return Ciphertext{}, errors.Errorf("no public common variable for attribute %q", attr)
		}
		alpha, ok := mpk.Alphas[auth]
		if !ok {
			return Ciphertext{}, errors.Errorf("no public authority key for %q", auth)
		}

		r, err := s.ops.SampleZ()
		if err != nil {
			return Ciphertext{}, err
		}
		lambda := env.Lambda(i)
		mu := env.Mu(i)

		ct.PrimaryPolysH["C2:"+rowLabel(i)] = s.ops.LiftH(r)
		ct.PrimaryPolysH["C3:"+rowLabel(i)] = s.ops.AddH(s.ops.ScaleH(r, yH), s.ops.LiftH(mu))
		ct.SecondaryPolys[rowLabel(i)] = s.ops.AddGt(s.ops.LiftGt(lambda), s.ops.ScaleGt(r, alpha))
	}

	for _, i := range env.NegLsssRows() {
		attr := env.LsRowToAttr(i)
		x, err := env.Xattr(attr)
		if err != nil {
			return Ciphertext{}, err
		}
		lambda := env.Lambda(i)

		ct.PrimaryPolysG["D1:"+rowLabel(i)] = s.ops.LiftG(lambda)
		// D2 = G^{lambda*x} * (G^beta)^{-lambda}, computed from the
		// public G^beta term alone since Encrypt never sees beta itself.
		lambdaX := s.ops.MulZ(lambda, x)
		negLambdaBeta := s.ops.ScaleG(s.ops.NegZ(lambda), beta)
		ct.PrimaryPolysG["D2:"+rowLabel(i)] = s.ops.AddG(s.ops.LiftG(lambdaX), negLambdaBeta)
	}

	ct.BlindingPoly = s.ops.AddGt(msg, s.ops.LiftGt(env.Secret()))

	return ct, nil
}

// Decrypt recovers the message encrypted in ct using usk, provided
// usk's attribute set satisfies ct's policy. If it does not, Decrypt
// returns an error before any pairing is computed.
func (s Scheme) Decrypt(ct Ciphertext, usk UserSecretKey, env *Env) (Gt, error) {
	if !ct.Policy.IsSatisfied(usk.UserAttrs) {
		return Gt{}, errors.New("user attributes do not satisfy the ciphertext policy")
	}

	recovered := s.ops.ResetGt()

	for _, i := range env.PosLsssRows() {
		attr := env.LsRowToAttr(i)
		key, ok := usk.PolysG[attr]
		if !ok {
			return Gt{}, errors.Errorf("user key is missing the positive-row term for %q", attr)
		}
		c2, ok := ct.PrimaryPolysH["C2:"+rowLabel(i)]
		if !ok {
			return Gt{}, errors.Errorf("ciphertext is missing C2 for row %d", i)
		}
		c3, ok := ct.PrimaryPolysH["C3:"+rowLabel(i)]
		if !ok {
			return Gt{}, errors.Errorf("ciphertext is missing C3 for row %d", i)
		}
		secondary, ok := ct.SecondaryPolys[rowLabel(i)]
		if !ok {
			return Gt{}, errors.Errorf("ciphertext is missing the secondary poly for row %d", i)
		}

		term := s.ops.AddGt(secondary, s.ops.Pair(usk.NonLoneVarsG["gid"], c3))
		term = s.ops.AddGt(term, s.ops.InvGt(s.ops.Pair(key, c2)))
		recovered = s.ops.AddGt(recovered, term)
	}

	for _, i := range env.NegLsssRows() {
		alt, err := env.LsRowToAltAttr(i)
		if err != nil {
			return Gt{}, err
		}
		key, ok := usk.PolysH["neg:"+alt]
		if !ok {
			return Gt{}, errors.Errorf("user key is missing the negation term for alternative %q", alt)
		}
		d1, ok := ct.PrimaryPolysG["D1:"+rowLabel(i)]
		if !ok {
			return Gt{}, errors.Errorf("ciphertext is missing D1 for row %d", i)
		}
		d2, ok := ct.PrimaryPolysG["D2:"+rowLabel(i)]
		if !ok {
			return Gt{}, errors.Errorf("ciphertext is missing D2 for row %d", i)
		}

		xTarget, err := env.Xattr(env.LsRowToAttr(i))
		if err != nil {
			return Gt{}, err
		}
		xAlt, err := env.XattrAlt(i)
		if err != nil {
			return Gt{}, err
		}
		diff := s.ops.SubZ(xTarget, xAlt)

		term := s.ops.AddGt(s.ops.Pair(d2, key), s.ops.InvGt(s.ops.ScaleGt(diff, s.ops.Pair(d1, key))))
		recovered = s.ops.AddGt(recovered, term)
	}

	// recovered now equals e(G,H)^secret for a purely positive or purely
	// negated policy: a positive row's term is lift(lambda_i + rgid*mu_i),
	// whose mu parts cancel because the mus sum to zero; a negated row's
	// term is lift(lambda_i); and the lambdas sum to the secret
	// Policy.ShareSecret shared.
	msg := s.ops.AddGt(ct.BlindingPoly, s.ops.InvGt(recovered))
	return msg, nil
}
