package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseTransactionType(t *testing.T) {
	tests := []struct {
		value string
		want  TransactionType
		ok    bool
	}{
		{"1", Sale, true},
		{"12", DeferredAuthorization, true},
		{" 21 ", CompleteDeferredAuthorization, true},
		{"22", ReverseDeferredAuthorization, true},
		{"24", Reversal, true},
		{"90", StatusCheck, true},
		{"2", 0, false},
		{"", 0, false},
		{"sale", 0, false},
	}
	for _, tt := range tests {
		got, ok := ParseTransactionType(tt.value)
		assert.Equal(t, tt.ok, ok, tt.value)
		assert.Equal(t, tt.want, got, tt.value)
	}
}

func TestTransactionType_String(t *testing.T) {
	assert.Equal(t, "sale", Sale.String())
	assert.Equal(t, "90", StatusCheck.Code())
	assert.Equal(t, "unknown(3)", TransactionType(3).String())
	assert.Len(t, TransactionTypes(), 6)
}

func TestParseMacMode(t *testing.T) {
	mode, ok := ParseMacMode("Extended")
	assert.True(t, ok)
	assert.Equal(t, MacExtended, mode)

	_, ok = ParseMacMode("full")
	assert.False(t, ok)
}
