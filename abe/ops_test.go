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

func TestZArithmetic(t *testing.T) {
	ops := NewOps()

	a, err := ops.SampleZ()
	require.NoError(t, err)
	b, err := ops.SampleZ()
	require.NoError(t, err)

	assert.True(t, ops.AddZ(a, ops.NegZ(a)).Equal(ops.ResetZ()))
	assert.True(t, ops.AddZ(a, b).Equal(ops.AddZ(b, a)))
	assert.True(t, ops.SubZ(a, a).Equal(ops.ResetZ()))

	inv, err := ops.InvZ(a)
	require.NoError(t, err)
	assert.True(t, ops.MulZ(a, inv).Equal(ops.OneZ()))

	_, err = ops.InvZ(ops.ResetZ())
	assert.Error(t, err)
}

func TestZReadString(t *testing.T) {
	ops := NewOps()
	z := ops.SetZ(42)
	parsed, err := ops.ReadZ(z.String())
	require.NoError(t, err)
	assert.True(t, z.Equal(parsed))

	_, err = ops.ReadZ("not-a-number")
	assert.Error(t, err)
}

func TestGHArithmetic(t *testing.T) {
	ops := NewOps()

	a, err := ops.SampleZ()
	require.NoError(t, err)
	b, err := ops.SampleZ()
	require.NoError(t, err)

	g := ops.LiftG(a)
	h := ops.LiftH(b)

	assert.True(t, ops.AddG(g, ops.ResetG()).Equal(g))
	assert.True(t, ops.AddH(h, ops.ResetH()).Equal(h))
	assert.True(t, g.Copy().Equal(g))
	assert.True(t, h.Copy().Equal(h))
}

func TestPairBilinearity(t *testing.T) {
	ops := NewOps()

	a, err := ops.SampleZ()
	require.NoError(t, err)
	b, err := ops.SampleZ()
	require.NoError(t, err)

	g := ops.LiftG(ops.OneZ())
	h := ops.LiftH(ops.OneZ())

	left := ops.Pair(ops.ScaleG(a, g), ops.ScaleH(b, h))
	right := ops.ScaleGt(ops.MulZ(a, b), ops.Pair(g, h))
	assert.True(t, left.Equal(right))
}

func TestGtArithmetic(t *testing.T) {
	ops := NewOps()
	a, err := ops.SampleZ()
	require.NoError(t, err)

	gt := ops.LiftGt(a)
	assert.True(t, ops.AddGt(gt, ops.InvGt(gt)).Equal(ops.ResetGt()))
	assert.True(t, gt.Copy().Equal(gt))
}

func TestRandomGt(t *testing.T) {
	ops := NewOps()
	a, err := ops.RandomGt()
	require.NoError(t, err)
	b, err := ops.RandomGt()
	require.NoError(t, err)
	assert.False(t, a.Equal(b))
}

func TestFdh(t *testing.T) {
	ops := NewOps()
	g1, err := ops.FdhG("same-input")
	require.NoError(t, err)
	g2, err := ops.FdhG("same-input")
	require.NoError(t, err)
	assert.True(t, g1.Equal(g2))

	h1, err := ops.FdhH("same-input")
	require.NoError(t, err)
	h2, err := ops.FdhH("different-input")
	require.NoError(t, err)
	assert.False(t, h1.Equal(h2))
}
