package common

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeJSONKeepsNumbers(t *testing.T) {
	var v map[string]interface{}
	require.NoError(t, DecodeJSON(strings.NewReader(`{"slot_ano": 2019, "slot_cepa": " carmenere "}`), &v))

	assert.Equal(t, "2019", StringValue(v["slot_ano"]))
	assert.Equal(t, "carmenere", StringValue(v["slot_cepa"]))
}

func TestDecodeJSONRejectsTrailingData(t *testing.T) {
	var v map[string]interface{}
	assert.Error(t, DecodeJSON(strings.NewReader(`{"a":1} {"b":2}`), &v))
	assert.Error(t, DecodeJSON(strings.NewReader(``), &v))
}

func TestStringValue(t *testing.T) {
	assert.Equal(t, "", StringValue(nil))
	assert.Equal(t, "", StringValue(false))
	assert.Equal(t, "true", StringValue(true))
	assert.Equal(t, "2019", StringValue(float64(2019)))
	assert.Equal(t, "4.5", StringValue(4.5))
	assert.Equal(t, "7", StringValue(7))
	assert.Equal(t, "", StringValue("   "))
}
