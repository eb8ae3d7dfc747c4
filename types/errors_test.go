package types_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitweave/bitweave/types"
)

func TestKindString(t *testing.T) {
	assert.Equal(t, "corrupt", types.Corrupt.String())
	assert.Equal(t, "invalid", types.Invalid.String())
	assert.Equal(t, "bug", types.Bug.String())
	assert.Equal(t, "not ready", types.NotReady.String())
}

func TestErrorMessage(t *testing.T) {
	err := types.Invalidf("length %d exceeds maximum", 42)
	require.EqualError(t, err, "invalid: length 42 exceeds maximum")
}

func TestIsKind(t *testing.T) {
	err := types.Invalidf("bad input")

	assert.True(t, types.IsKind(err, types.Invalid))
	assert.False(t, types.IsKind(err, types.Corrupt))

	// Kind survives wrapping.
	wrapped := fmt.Errorf("decoding header: %w", err)
	assert.True(t, types.IsKind(wrapped, types.Invalid))

	assert.False(t, types.IsKind(errors.New("plain"), types.Invalid))
	assert.False(t, types.IsKind(nil, types.Invalid))
}

func TestErrorsIsByKind(t *testing.T) {
	err := types.Corruptf("mac mismatch")
	assert.True(t, errors.Is(err, &types.Error{Kind: types.Corrupt}))
	assert.False(t, errors.Is(err, &types.Error{Kind: types.Invalid}))
	assert.True(t, errors.Is(err, &types.Error{Kind: types.Corrupt, Msg: "mac mismatch"}))
	assert.False(t, errors.Is(err, &types.Error{Kind: types.Corrupt, Msg: "other"}))
}
