package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTargetFromFlag(t *testing.T) {
	_, err := targetFromFlag("bogus")
	require.Error(t, err)

	romaji, err := targetFromFlag("romaji")
	require.NoError(t, err)
	assert.Equal(t, "Romaji", romaji.String())
}

func TestCommandConvertsStdinToHiragana(t *testing.T) {
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetIn(strings.NewReader("kanji\n"))
	cmd.SetArgs([]string{"--target", "hiragana"})
	require.NoError(t, cmd.Execute())
	assert.Equal(t, "かんじ\n", out.String())
}

func TestCommandConvertsArgsDirectly(t *testing.T) {
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"--target", "katakana", "kanji"})
	require.NoError(t, cmd.Execute())
	assert.Equal(t, "カンジ\n", out.String())
}

func TestCommandRejectsUnrecognizedTarget(t *testing.T) {
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"--target", "bogus", "kanji"})
	require.Error(t, cmd.Execute())
}
