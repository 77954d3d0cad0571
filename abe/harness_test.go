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

func TestCorrectnessCheck(t *testing.T) {
	cases := []struct {
		name      string
		policyLen int
		multiAuth bool
		useNegs   bool
	}{
		{"single attribute, single authority", 1, false, false},
		{"several attributes, single authority", 5, false, false},
		{"several attributes, multiple authorities", 5, true, false},
		{"negated policy, single authority", 3, false, true},
		{"negated policy, multiple authorities", 3, true, true},
	}

	for _, c := range cases {
		c := c
		t.Run(c.name, func(t *testing.T) {
			ok, err := CorrectnessCheck(c.policyLen, c.multiAuth, c.useNegs)
			require.NoError(t, err)
			assert.True(t, ok)
		})
	}
}

func TestCorrectnessCheckRejectsTooManyAttributes(t *testing.T) {
	_, err := CorrectnessCheck(101, false, false)
	assert.Error(t, err)
}
