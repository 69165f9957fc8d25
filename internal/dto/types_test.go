package dto

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStringListUnmarshal(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want []string
	}{
		{"json array", `["React","Node.js","Postgres"]`, []string{"React", "Node.js", "Postgres"}},
		{"comma string", `"React, Node.js, Postgres"`, []string{"React", "Node.js", "Postgres"}},
		{"single value", `"Go"`, []string{"Go"}},
		{"empty string", `""`, []string{}},
		{"empty array", `[]`, []string{}},
		{"whitespace and empties", `" a ,, b ,  "`, []string{"a", "b"}},
		{"array keeps order", `["z","a","m"]`, []string{"z", "a", "m"}},
		{"array entries trimmed", `["  a  ",""," b"]`, []string{"a", "b"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var list StringList
			require.NoError(t, json.Unmarshal([]byte(tc.in), &list))
			assert.Equal(t, StringList(tc.want), list)
		})
	}
}

func TestStringListUnmarshalRejectsOtherTypes(t *testing.T) {
	var list StringList
	assert.Error(t, json.Unmarshal([]byte(`42`), &list))
	assert.Error(t, json.Unmarshal([]byte(`{"a":1}`), &list))
}

func TestStringListInsideRequest(t *testing.T) {
	var req CreateServiceRequest
	payload := `{"title":"Web Development","features":"Design, Build, Deploy"}`
	require.NoError(t, json.Unmarshal([]byte(payload), &req))
	assert.Equal(t, StringList{"Design", "Build", "Deploy"}, req.Features)
}

func TestUpdateRequestFieldsOnlySetValues(t *testing.T) {
	price := "from $9000"
	req := UpdateServiceRequest{Price: &price}

	fields := req.Fields()
	assert.Equal(t, map[string]interface{}{"price": "from $9000"}, fields)
}

func TestUpdateRequestFieldsEmpty(t *testing.T) {
	var req UpdateServiceRequest
	assert.Empty(t, req.Fields())
}

func TestUpdatePostFieldsColumns(t *testing.T) {
	published := true
	tags := StringList{"go", "web"}
	req := UpdatePostRequest{
		IsPublished: &published,
		Tags:        &tags,
	}

	fields := req.Fields()
	assert.Contains(t, fields, "is_published")
	assert.Contains(t, fields, "tags")
	assert.Len(t, fields, 2)
}
