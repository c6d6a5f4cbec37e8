package copywriting

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBrief(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		req         GenerationRequest
		expectedErr error
	}{
		{
			name: "valid",
			req: GenerationRequest{
				ProductName:    "Desk Lamp",
				Features:       json.RawMessage(`["Dimmable"]`),
				TargetCustomer: "Students",
			},
		},
		{
			name: "missing product name",
			req: GenerationRequest{
				Features:       json.RawMessage(`["Dimmable"]`),
				TargetCustomer: "Students",
			},
			expectedErr: ErrMissingProductName,
		},
		{
			name: "missing target customer",
			req: GenerationRequest{
				ProductName: "Desk Lamp",
				Features:    json.RawMessage(`["Dimmable"]`),
			},
			expectedErr: ErrMissingTargetCustomer,
		},
		{
			name:        "product name reported before target customer",
			req:         GenerationRequest{Features: json.RawMessage(`"x"`)},
			expectedErr: ErrMissingProductName,
		},
		{
			name: "text fields checked before features",
			req: GenerationRequest{
				ProductName: "Desk Lamp",
				Features:    json.RawMessage(`[]`),
			},
			expectedErr: ErrMissingTargetCustomer,
		},
		{
			name: "no features",
			req: GenerationRequest{
				ProductName:    "Desk Lamp",
				Features:       json.RawMessage(`"\n\n"`),
				TargetCustomer: "Students",
			},
			expectedErr: ErrNoFeatures,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			brief, err := NewBrief(&tc.req)
			if tc.expectedErr != nil {
				assert.ErrorIs(t, err, tc.expectedErr)
				assert.ErrorIs(t, err, ErrValidation)
				assert.Nil(t, brief)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, "Desk Lamp", brief.ProductName)
			assert.Equal(t, []string{"Dimmable"}, brief.Features)
			assert.Equal(t, "Students", brief.TargetCustomer)
		})
	}
}
