package osil

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVariableTypeCode(t *testing.T) {
	tests := []struct {
		vt   VariableType
		want string
	}{
		{Continuous, "C"},
		{Integer, "I"},
		{Binary, "B"},
		{SemiContinuous, "S"},
		{SemiInteger, "D"},
		{Fixed, "C"}, // fixed variables ride on the continuous code
	}
	for _, tt := range tests {
		code, err := tt.vt.Code()
		require.NoError(t, err, "type %s", tt.vt)
		assert.Equal(t, tt.want, code, "type %s", tt.vt)
	}
}

func TestVariableTypeCodeUnknown(t *testing.T) {
	_, err := VariableType(99).Code()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "99")
}
