package mocks_test

import (
	"context"
	"errors"
	"testing"

	"github.com/phrazzld/copygen-api/internal/generation"
	"github.com/phrazzld/copygen-api/internal/mocks"
	"github.com/stretchr/testify/assert"
)

func TestMockProvider(t *testing.T) {
	t.Parallel()

	t.Run("Default success case", func(t *testing.T) {
		t.Parallel()

		provider := mocks.NewMockProviderWithText("Hello world")

		text, err := provider.Generate(context.Background(), "prompt one")

		assert.NoError(t, err)
		assert.Equal(t, "Hello world", text)
		assert.Equal(t, 1, provider.CallCount(), "Generate should be called once")
		assert.Equal(t, "prompt one", provider.LastPrompt())
		assert.NotNil(t, provider.LastContext())
		assert.Equal(t, "mock", provider.Name())
	})

	t.Run("Canned failures", func(t *testing.T) {
		t.Parallel()

		_, err := mocks.MockProviderOverloaded().Generate(context.Background(), "p")
		var apiErr *generation.APIError
		if assert.ErrorAs(t, err, &apiErr) {
			assert.Equal(t, 529, apiErr.StatusCode)
			assert.Equal(t, "overloaded", apiErr.Message)
		}

		_, err = mocks.MockProviderUnreachable().Generate(context.Background(), "p")
		assert.ErrorIs(t, err, generation.ErrTransport)

		_, err = mocks.MockProviderWithEmptyResult().Generate(context.Background(), "p")
		assert.ErrorIs(t, err, generation.ErrEmptyGeneration)
	})

	t.Run("Custom function and reset", func(t *testing.T) {
		t.Parallel()

		customErr := errors.New("custom")
		provider := &mocks.MockProvider{
			ProviderName: "fake",
			GenerateFn: func(ctx context.Context, prompt string) (string, error) {
				return "", customErr
			},
		}

		_, err := provider.Generate(context.Background(), "p")
		assert.ErrorIs(t, err, customErr)
		assert.Equal(t, "fake", provider.Name())

		provider.Reset()
		assert.Equal(t, 0, provider.CallCount())
		assert.Empty(t, provider.LastPrompt())
		assert.Nil(t, provider.LastContext())
	})
}
