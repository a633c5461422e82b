package internal

import (
	"strconv"
	"testing"
	"unicode/utf8"

	"borica/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildMac_Request(t *testing.T) {
	fields := []string{"TERMINAL", "TRTYPE", "AMOUNT", "DESC"}
	values := map[string]string{
		"TERMINAL": "T0000001",
		"TRTYPE":   "1",
		"AMOUNT":   "10.20",
		"DESC":     "",
	}

	assert.Equal(t, "8T000000111510.200", BuildMac(fields, values, MacRequest))
}

func TestBuildMac_Response(t *testing.T) {
	fields := []string{"ACTION", "RC", "APPROVAL", "TERMINAL"}
	values := map[string]string{
		"ACTION":   "0",
		"RC":       "00",
		"APPROVAL": "",
	}

	assert.Equal(t, "10200--", BuildMac(fields, values, MacResponse))
}

func TestBuildMac_CountsCharacters(t *testing.T) {
	values := map[string]string{"DESC": "Поръчка"}

	// 7 letters, 14 bytes
	assert.Equal(t, "7Поръчка", BuildMac([]string{"DESC"}, values, MacRequest))
	assert.Equal(t, "7Поръчка", BuildMac([]string{"DESC"}, values, MacResponse))
}

func TestBuildMac_MissingKeyIsEmpty(t *testing.T) {
	assert.Equal(t, "0", BuildMac([]string{"NONCE"}, map[string]string{}, MacRequest))
	assert.Equal(t, "-", BuildMac([]string{"NONCE"}, nil, MacResponse))
}

func TestBuildMac_Order(t *testing.T) {
	values := map[string]string{"A": "x", "B": "yy"}

	assert.Equal(t, "1x2yy", BuildMac([]string{"A", "B"}, values, MacRequest))
	assert.Equal(t, "2yy1x", BuildMac([]string{"B", "A"}, values, MacRequest))
	assert.Empty(t, BuildMac(nil, values, MacRequest))
}

func TestBuildMac_LengthOfEveryType(t *testing.T) {
	for _, trType := range entity.TransactionTypes() {
		r := newSale(t)
		r.transactionType = trType
		schema, ok := entity.SchemaFor(trType)
		require.True(t, ok)
		r.schema = schema
		r.SetOriginalTransactionType("1").SetDescription("Поръчка 123")

		for _, mode := range []entity.MacMode{entity.MacSimple, entity.MacExtended} {
			fields, _ := schema.RequestMacFields(mode)
			values := r.ToPostData()

			want := 0
			for _, field := range fields {
				length := utf8.RuneCountInString(values[field])
				want += len(strconv.Itoa(length)) + length
			}
			assert.Equal(t, want, utf8.RuneCountInString(BuildMac(fields, values, MacRequest)), "%s %s", trType, mode)
		}
	}
}
