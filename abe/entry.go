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
	"strings"

	"github.com/pkg/errors"
)

// Entry names one attribute value: the authority that governs it, the
// slot (label) it fills, and the value itself. A conjunction of entries
// forms a policy; a set of entries forms a user's attribute set.
type Entry struct {
	Auth string
	Lbl  string
	Attr string
}

// NewEntry parses the "auth.lbl:attr" notation used throughout this package.
func NewEntry(s string) (Entry, error) {
	dot := strings.IndexByte(s, '.')
	colon := strings.IndexByte(s, ':')
	if dot < 0 || colon < 0 || colon < dot {
		return Entry{}, errors.Errorf("malformed entry %q, want auth.lbl:attr", s)
	}
	return Entry{
		Auth: s[:dot],
		Lbl:  s[dot+1 : colon],
		Attr: s[colon+1:],
	}, nil
}

func (e Entry) String() string {
	return fmt.Sprintf("%s.%s:%s", e.Auth, e.Lbl, e.Attr)
}

// Equal reports whether two entries denote the same (auth, lbl, attr) triple.
func (e Entry) Equal(other Entry) bool {
	return e.Auth == other.Auth && e.Lbl == other.Lbl && e.Attr == other.Attr
}

// UserAttributes is the set of attribute values a user holds.
type UserAttributes struct {
	Entries []Entry
}

// AddAttr parses and appends one entry.
func (u *UserAttributes) AddAttr(s string) error {
	e, err := NewEntry(s)
	if err != nil {
		return err
	}
	u.Entries = append(u.Entries, e)
	return nil
}

// HasAttr reports whether the set contains entry.
func (u UserAttributes) HasAttr(entry Entry) bool {
	for _, e := range u.Entries {
		if e.Equal(entry) {
			return true
		}
	}
	return false
}

func (u UserAttributes) String() string {
	parts := make([]string, len(u.Entries))
	for i, e := range u.Entries {
		parts[i] = e.String()
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// RandomUserAttributes builds a deterministic-layout, count-sized
// attribute set for the correctness harness. When multiAuth is false
// every entry shares the same authority; otherwise authorities are two
// uppercase letters derived from the entry's index. Labels are two
// lowercase letters and attribute values two decimal digits, both
// derived from the index, mirroring the fixture generator this
// package's harness is modelled on.
func RandomUserAttributes(count int, multiAuth bool) (UserAttributes, error) {
	if count > 100 {
		return UserAttributes{}, errors.New("at most 100 user attributes are supported")
	}
	var attrs UserAttributes
	for i := 0; i < count; i++ {
		var auth string
		if multiAuth {
			auth = string([]byte{byte('A' + i/26), byte('A' + i%26)})
		} else {
			auth = "AA"
		}
		lbl := string([]byte{byte('a' + i/26), byte('a' + i%26)})
		attr := fmt.Sprintf("%d%d", i/10, i%10)
		attrs.Entries = append(attrs.Entries, Entry{Auth: auth, Lbl: lbl, Attr: attr})
	}
	return attrs, nil
}
