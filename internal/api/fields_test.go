package api

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTextUnmarshal(t *testing.T) {
	tests := []struct {
		json string
		want Text
	}{
		{`"buy milk"`, "buy milk"},
		{`""`, ""},
		{`null`, ""},
		{`5`, "5"},
		{`-1.25`, "-1.25"},
		{`0`, ""},
		{`true`, "true"},
		{`false`, ""},
	}

	for _, tc := range tests {
		t.Run(tc.json, func(t *testing.T) {
			var got Text
			require.NoError(t, json.Unmarshal([]byte(tc.json), &got))
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestTextUnmarshalRejectsCompositeValues(t *testing.T) {
	for _, input := range []string{`{}`, `{"a":1}`, `[]`, `["a"]`} {
		t.Run(input, func(t *testing.T) {
			var got Text
			err := json.Unmarshal([]byte(input), &got)

			var castErr *CastError
			require.True(t, errors.As(err, &castErr), "got %v", err)
			assert.Equal(t, "string", castErr.Kind)
			assert.Equal(t, input, castErr.Value)
		})
	}
}

func TestFlagUnmarshal(t *testing.T) {
	tests := []struct {
		json string
		want Flag
	}{
		{`true`, true},
		{`false`, false},
		{`null`, false},
		{`1`, true},
		{`0`, false},
		{`"true"`, true},
		{`"false"`, false},
		{`"1"`, true},
		{`"0"`, false},
		{`"yes"`, true},
		{`"no"`, false},
	}

	for _, tc := range tests {
		t.Run(tc.json, func(t *testing.T) {
			got := Flag(!tc.want)
			require.NoError(t, json.Unmarshal([]byte(tc.json), &got))
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestFlagUnmarshalRejectsOtherValues(t *testing.T) {
	for _, input := range []string{`2`, `"maybe"`, `"TRUE"`, `{}`, `[]`} {
		t.Run(input, func(t *testing.T) {
			var got Flag
			err := json.Unmarshal([]byte(input), &got)

			var castErr *CastError
			require.True(t, errors.As(err, &castErr), "got %v", err)
			assert.Equal(t, "boolean", castErr.Kind)
			assert.Equal(t, "cast to boolean failed for value "+input, castErr.Error())
		})
	}
}

func TestCreateTaskRequestStopsAtFirstBadField(t *testing.T) {
	var req CreateTaskRequest
	err := json.Unmarshal([]byte(`{"title":"ok","completed":"maybe"}`), &req)

	var castErr *CastError
	require.ErrorAs(t, err, &castErr)
	assert.Equal(t, Text("ok"), req.Title)
}
