package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSnapshotSchema(t *testing.T) {
	v := NewSchemaValidator()

	tests := []struct {
		name     string
		data     string
		wantErr  bool
		errorMsg string
	}{
		{"empty document", `{}`, false, ""},
		{"full snapshot", `{"balances":{"1":1000,"2":0},"dailyClaims":{"1":"2026-03-01"}}`, false, ""},
		{"null maps", `{"balances":null,"dailyClaims":null}`, false, ""},
		{"negative balance", `{"balances":{"1":-5}}`, true, "/balances/1"},
		{"fractional balance", `{"balances":{"1":1.5}}`, true, "type"},
		{"string balance", `{"balances":{"1":"lots"}}`, true, "type"},
		{"bad claim date", `{"dailyClaims":{"1":"March 1st"}}`, true, "pattern"},
		{"not an object", `[1,2,3]`, true, "(root)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.ValidateBytes([]byte(tt.data), SnapshotSchema)
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errorMsg)
		})
	}
}

func TestSchemaValidator_InvalidJSON(t *testing.T) {
	err := NewSchemaValidator().ValidateBytes([]byte(`{"balances":`), SnapshotSchema)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse JSON data")
}

func TestSchemaValidator_UnknownSchema(t *testing.T) {
	err := NewSchemaValidator().ValidateBytes([]byte(`{}`), "missing.schema.json")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load schema")
}

func TestDefault_Validates(t *testing.T) {
	assert.NoError(t, Default().ValidateBytes([]byte(`{"balances":{"1":5}}`), SnapshotSchema))
}

func TestDefault_Shared(t *testing.T) {
	assert.Same(t, Default(), Default())
}
