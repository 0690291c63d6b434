package market

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

type fakeTimeoutError struct{}

func (fakeTimeoutError) Error() string   { return "i/o timeout" }
func (fakeTimeoutError) Timeout() bool   { return true }
func (fakeTimeoutError) Temporary() bool { return true }

func TestClassify(t *testing.T) {
	t.Run("Deadline Exceeded", func(t *testing.T) {
		err := classify(fmt.Errorf("call: %w", context.DeadlineExceeded))
		assert.ErrorIs(t, err, ErrTimeout)
	})

	t.Run("Net Timeout", func(t *testing.T) {
		err := classify(fmt.Errorf("call: %w", fakeTimeoutError{}))
		assert.ErrorIs(t, err, ErrTimeout)
	})

	t.Run("Other Errors Are Connection Failures", func(t *testing.T) {
		err := classify(errors.New("connection refused"))
		assert.ErrorIs(t, err, ErrConnection)
	})
}

func TestStatusError_Error(t *testing.T) {
	assert.Equal(t, "market: unexpected status 403",
		(&StatusError{Status: 403}).Error())
	assert.Equal(t, "market: unexpected status 420: limit exceeded",
		(&StatusError{Status: 420, Body: "limit exceeded"}).Error())
}
