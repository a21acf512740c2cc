package bus

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "commerce-backend/pkg/errors"
)

type stubQuery struct {
	validateErr error
}

func (q stubQuery) Validate() error { return q.validateErr }

func TestQueryBusDispatchesToRegisteredHandler(t *testing.T) {
	b := NewQueryBus()
	called := false
	err := b.Register(stubQuery{}, QueryHandlerFunc(func(ctx context.Context, query Query) (interface{}, error) {
		called = true
		return "result", nil
	}))
	require.NoError(t, err)

	result, err := b.Ask(context.Background(), stubQuery{})

	require.NoError(t, err)
	assert.True(t, called)
	assert.Equal(t, "result", result)
}

func TestQueryBusValidatesBeforeDispatch(t *testing.T) {
	b := NewQueryBus()
	called := false
	require.NoError(t, b.Register(stubQuery{}, QueryHandlerFunc(func(ctx context.Context, query Query) (interface{}, error) {
		called = true
		return nil, nil
	})))

	_, err := b.Ask(context.Background(), stubQuery{validateErr: errors.New("bad input")})

	require.Error(t, err)
	assert.True(t, apperrors.IsValidation(err), "plain validation errors are wrapped")
	assert.False(t, called, "handler never runs for invalid input")
}

func TestQueryBusRejectsDuplicateRegistration(t *testing.T) {
	b := NewQueryBus()
	handler := QueryHandlerFunc(func(ctx context.Context, query Query) (interface{}, error) { return nil, nil })

	require.NoError(t, b.Register(stubQuery{}, handler))
	assert.Error(t, b.Register(stubQuery{}, handler))
}

func TestQueryBusUnknownQuery(t *testing.T) {
	b := NewQueryBus()

	_, err := b.Ask(context.Background(), stubQuery{})

	require.Error(t, err)
	assert.True(t, apperrors.IsType(err, apperrors.ErrorTypeInternal))
}
