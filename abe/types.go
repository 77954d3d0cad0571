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
	"fmt"
	"sort"
	"strings"
)

// betaKey indexes the scheme-wide negation trapdoor scalar inside the
// otherwise attribute-keyed common-variable maps.
const betaKey = "beta"

// MasterSecretKey holds every authority's alpha and every attribute
// value's y-scalar, plus the scheme-wide negation trapdoor beta.
type MasterSecretKey struct {
	Alphas     map[string]Z
	CommonVars map[string]Z
}

// MasterPublicKey is the public projection of MasterSecretKey.
type MasterPublicKey struct {
	Alphas      map[string]Gt
	CommonVarsG map[string]G
	CommonVarsH map[string]H
}

// UserSecretKey is the key material a user receives for one attribute set.
type UserSecretKey struct {
	UserAttrs    UserAttributes
	NonLoneVarsG map[string]G
	NonLoneVarsH map[string]H
	PolysG       map[string]G
	PolysH       map[string]H
}

// Ciphertext is the output of Encrypt, bound to the policy it was
// encrypted under.
type Ciphertext struct {
	Policy         Policy
	NonLoneVarsG   map[string]G
	NonLoneVarsH   map[string]H
	PrimaryPolysG  map[string]G
	PrimaryPolysH  map[string]H
	SecondaryPolys map[string]Gt
	BlindingPoly   Gt
}

func keysZ(m map[string]Z) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

func keysG(m map[string]G) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

func keysH(m map[string]H) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

func keysGt(m map[string]Gt) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

func (m MasterSecretKey) String() string {
	var b strings.Builder
	b.WriteString("master secret key:\n  alphas:\n")
	for _, k := range keysZ(m.Alphas) {
		fmt.Fprintf(&b, "    %s = %s\n", k, m.Alphas[k])
	}
	b.WriteString("  common vars:\n")
	for _, k := range keysZ(m.CommonVars) {
		fmt.Fprintf(&b, "    %s = %s\n", k, m.CommonVars[k])
	}
	return b.String()
}

func (m MasterPublicKey) String() string {
	var b strings.Builder
	b.WriteString("master public key:\n  alphas:\n")
	for _, k := range keysGt(m.Alphas) {
		fmt.Fprintf(&b, "    %s = %s\n", k, m.Alphas[k])
	}
	b.WriteString("  common vars (G):\n")
	for _, k := range keysG(m.CommonVarsG) {
		fmt.Fprintf(&b, "    %s = %s\n", k, m.CommonVarsG[k])
	}
	b.WriteString("  common vars (H):\n")
	for _, k := range keysH(m.CommonVarsH) {
		fmt.Fprintf(&b, "    %s = %s\n", k, m.CommonVarsH[k])
	}
	return b.String()
}

func (u UserSecretKey) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "user secret key\n  user attributes:\n    %s\n", u.UserAttrs)
	b.WriteString("  non-lone vars (G):\n")
	for _, k := range keysG(u.NonLoneVarsG) {
		fmt.Fprintf(&b, "    %s = %s\n", k, u.NonLoneVarsG[k])
	}
	b.WriteString("  non-lone vars (H):\n")
	for _, k := range keysH(u.NonLoneVarsH) {
		fmt.Fprintf(&b, "    %s = %s\n", k, u.NonLoneVarsH[k])
	}
	b.WriteString("  key polys (G):\n")
	for _, k := range keysG(u.PolysG) {
		fmt.Fprintf(&b, "    %s = %s\n", k, u.PolysG[k])
	}
	b.WriteString("  key polys (H):\n")
	for _, k := range keysH(u.PolysH) {
		fmt.Fprintf(&b, "    %s = %s\n", k, u.PolysH[k])
	}
	return b.String()
}

func (c Ciphertext) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "ciphertext\n  policy:\n    %s\n", c.Policy)
	b.WriteString("  non-lone vars (G):\n")
	for _, k := range keysG(c.NonLoneVarsG) {
		fmt.Fprintf(&b, "    %s = %s\n", k, c.NonLoneVarsG[k])
	}
	b.WriteString("  non-lone vars (H):\n")
	for _, k := range keysH(c.NonLoneVarsH) {
		fmt.Fprintf(&b, "    %s = %s\n", k, c.NonLoneVarsH[k])
	}
	b.WriteString("  primary polys (G):\n")
	for _, k := range keysG(c.PrimaryPolysG) {
		fmt.Fprintf(&b, "    %s = %s\n", k, c.PrimaryPolysG[k])
	}
	b.WriteString("  primary polys (H):\n")
	for _, k := range keysH(c.PrimaryPolysH) {
		fmt.Fprintf(&b, "    %s = %s\n", k, c.PrimaryPolysH[k])
	}
	b.WriteString("  secondary polys:\n")
	for _, k := range keysGt(c.SecondaryPolys) {
		fmt.Fprintf(&b, "    %s = %s\n", k, c.SecondaryPolys[k])
	}
	return b.String()
}
