package sigedit_test

import (
	"testing"

	"github.com/fwojciec/sigedit"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckMarkup(t *testing.T) {
	t.Parallel()

	t.Run("accepts markup", func(t *testing.T) {
		t.Parallel()

		assert.NoError(t, sigedit.CheckMarkup("<p>Jane</p>"))
	})

	t.Run("accepts unclosed tags", func(t *testing.T) {
		t.Parallel()

		assert.NoError(t, sigedit.CheckMarkup("<div><p>Jane"))
	})

	t.Run("rejects plain text", func(t *testing.T) {
		t.Parallel()

		err := sigedit.CheckMarkup("Jane Smith, Product Manager")
		require.Error(t, err)
		assert.Equal(t, sigedit.EPARSE, sigedit.ErrorCode(err))
	})

	t.Run("rejects text with only one delimiter", func(t *testing.T) {
		t.Parallel()

		err := sigedit.CheckMarkup("a < b")
		assert.Equal(t, sigedit.EPARSE, sigedit.ErrorCode(err))
	})

	t.Run("rejects empty input", func(t *testing.T) {
		t.Parallel()

		err := sigedit.CheckMarkup("   ")
		assert.Equal(t, sigedit.EPARSE, sigedit.ErrorCode(err))
	})
}

func TestKeepText(t *testing.T) {
	t.Parallel()

	assert.False(t, sigedit.KeepText(""))
	assert.False(t, sigedit.KeepText("ab"))
	assert.False(t, sigedit.KeepText("é|"))
	assert.True(t, sigedit.KeepText("abc"))
	assert.True(t, sigedit.KeepText("Jöe"))
}

func TestParseDimension(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want int
	}{
		{"120", 120},
		{" 64 ", 64},
		{"120px", 120},
		{"", sigedit.DefaultDimension},
		{"auto", sigedit.DefaultDimension},
		{"0", sigedit.DefaultDimension},
		{"-5", sigedit.DefaultDimension},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, sigedit.ParseDimension(tt.in), "input %q", tt.in)
	}
}
