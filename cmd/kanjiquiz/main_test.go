package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/anzumura/kanjitools-go/pkg/kanjiquiz"
)

func TestMemberFromFlag(t *testing.T) {
	m, err := memberFromFlag("jlpt")
	require.NoError(t, err)
	assert.Equal(t, kanjiquiz.JLPT, m)

	_, err = memberFromFlag("bogus")
	require.Error(t, err)
}

func TestOrderFromFlag(t *testing.T) {
	o, err := orderFromFlag("end")
	require.NoError(t, err)
	assert.Equal(t, kanjiquiz.FromEnd, o)

	_, err = orderFromFlag("bogus")
	require.Error(t, err)
}

func TestStyleFromFlag(t *testing.T) {
	s, err := styleFromFlag("r2k")
	require.NoError(t, err)
	assert.Equal(t, kanjiquiz.ReadingToKanji, s)

	_, err = styleFromFlag("bogus")
	require.Error(t, err)
}

func TestCommandRequiresListOrGroupFlags(t *testing.T) {
	cmd := newRootCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetArgs([]string{"--data", "../../data"})
	err := cmd.Execute()
	require.Error(t, err)
}
