package util

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWrapErrorf(t *testing.T) {
	errBase := errors.New("base")
	err := WrapErrorf(errBase, ErrNotFound, "node %s", "Reception")

	assert.ErrorIs(t, err, errBase)
	assert.Equal(t, ErrNotFound, ErrorCode(err))
	assert.Equal(t, "node Reception: base", err.Error())

	assert.Equal(t, ErrInternalServerError, ErrorCode(errors.New("plain")))
}

func TestReverseG(t *testing.T) {
	arr := []int{1, 2, 3}
	assert.Equal(t, []int{3, 2, 1}, ReverseG(arr))
	assert.Equal(t, []int{1, 2, 3}, arr)
}
