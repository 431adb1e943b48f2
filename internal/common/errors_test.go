package common

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKindOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want error
	}{
		{"plain", ErrAlreadyVoted, ErrAlreadyVoted},
		{"wrapped", fmt.Errorf("market m1: %w", ErrExpired), ErrExpired},
		{"double wrapped", fmt.Errorf("a: %w", fmt.Errorf("b: %w", ErrInvalidProof)), ErrInvalidProof},
		{"foreign", errors.New("boom"), nil},
		{"nil", nil, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, KindOf(tt.err))
		})
	}
}

func TestKindByMessage(t *testing.T) {
	for _, k := range Kinds {
		got, ok := KindByMessage(k.Error())
		require.True(t, ok, k.Error())
		assert.Same(t, k, got)
	}

	_, ok := KindByMessage("something else")
	assert.False(t, ok)
}

func TestKinds_UniqueMessages(t *testing.T) {
	seen := map[string]bool{}
	for _, k := range Kinds {
		require.False(t, seen[k.Error()], "duplicate message %q", k.Error())
		seen[k.Error()] = true
	}
}
