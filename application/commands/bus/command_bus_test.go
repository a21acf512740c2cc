package bus

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "commerce-backend/pkg/errors"
)

type stubCommand struct {
	validateErr error
}

func (c stubCommand) Validate() error { return c.validateErr }

func TestCommandBusReturnsHandlerResult(t *testing.T) {
	b := NewCommandBus()
	require.NoError(t, b.Register(stubCommand{}, CommandHandlerFunc(func(ctx context.Context, cmd Command) (interface{}, error) {
		return 42, nil
	})))

	result, err := b.Send(context.Background(), stubCommand{})

	require.NoError(t, err)
	assert.Equal(t, 42, result)
}

func TestCommandBusRejectedCommandNeverReachesHandler(t *testing.T) {
	b := NewCommandBus()
	called := false
	require.NoError(t, b.Register(stubCommand{}, CommandHandlerFunc(func(ctx context.Context, cmd Command) (interface{}, error) {
		called = true
		return nil, nil
	})))

	_, err := b.Send(context.Background(), stubCommand{validateErr: apperrors.NewValidationError("nope")})

	require.Error(t, err)
	assert.True(t, apperrors.IsValidation(err))
	assert.False(t, called, "a rejected command must cause no side effects")
}

func TestCommandBusUnknownCommand(t *testing.T) {
	b := NewCommandBus()

	_, err := b.Send(context.Background(), stubCommand{})

	require.Error(t, err)
	assert.True(t, apperrors.IsType(err, apperrors.ErrorTypeInternal))
}
