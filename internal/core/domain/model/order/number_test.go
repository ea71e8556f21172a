package order_test

import (
	"testing"

	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateNumberFormat(t *testing.T) {
	for range 100 {
		n := order.GenerateNumber()
		assert.NoError(t, n.Validate())
		assert.Len(t, n.String(), 10)
		assert.Equal(t, byte('R'), n.String()[0])
	}
}

func TestParseNumber(t *testing.T) {
	tests := map[string]struct {
		input   string
		wantErr error
	}{
		"valid short":       {input: "R12345"},
		"valid long":        {input: "R1234567890"},
		"empty":             {input: "", wantErr: errs.ErrValueIsRequired},
		"missing prefix":    {input: "123456789", wantErr: errs.ErrValueIsInvalid},
		"lowercase prefix":  {input: "r123456789", wantErr: errs.ErrValueIsInvalid},
		"too few digits":    {input: "R1234", wantErr: errs.ErrValueIsInvalid},
		"too many digits":   {input: "R12345678901", wantErr: errs.ErrValueIsInvalid},
		"non-digit payload": {input: "R12345678X", wantErr: errs.ErrValueIsInvalid},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			n, err := order.ParseNumber(tc.input)

			if tc.wantErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.input, n.String())
		})
	}
}
