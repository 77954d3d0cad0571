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

func TestNewEntry(t *testing.T) {
	e, err := NewEntry("AA.aa:00")
	require.NoError(t, err)
	assert.Equal(t, Entry{Auth: "AA", Lbl: "aa", Attr: "00"}, e)
	assert.Equal(t, "AA.aa:00", e.String())

	_, err = NewEntry("malformed")
	assert.Error(t, err)
}

func TestUserAttributesHasAttr(t *testing.T) {
	var attrs UserAttributes
	require.NoError(t, attrs.AddAttr("AA.aa:00"))
	require.NoError(t, attrs.AddAttr("AA.bb:01"))

	assert.True(t, attrs.HasAttr(Entry{Auth: "AA", Lbl: "aa", Attr: "00"}))
	assert.False(t, attrs.HasAttr(Entry{Auth: "AA", Lbl: "aa", Attr: "01"}))
}

func TestRandomUserAttributes(t *testing.T) {
	attrs, err := RandomUserAttributes(5, false)
	require.NoError(t, err)
	assert.Len(t, attrs.Entries, 5)
	for _, e := range attrs.Entries {
		assert.Equal(t, "AA", e.Auth)
	}

	multi, err := RandomUserAttributes(30, true)
	require.NoError(t, err)
	assert.NotEqual(t, multi.Entries[0].Auth, multi.Entries[29].Auth)

	_, err = RandomUserAttributes(101, false)
	assert.Error(t, err)
}
