package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestItem_Column(t *testing.T) {
	it := Item{
		ID:          7,
		Secret:      "s3cr3t",
		DisplayName: "ftp login",
		Attributes: Attributes{
			"user":  Text("bob"),
			"port":  Int(21),
			"zero":  Int(0),
			"blank": Text(""),
		},
	}

	tests := []struct {
		col  string
		want string
	}{
		{"id", "7"},
		{"secret", "s3cr3t"},
		{"name", "ftp login"},
		{"user", "bob"},
		{"port", "21"},
		{"zero", ""},
		{"blank", ""},
		{"missing", ""},
	}
	for _, tt := range tests {
		t.Run(tt.col, func(t *testing.T) {
			assert.Equal(t, tt.want, it.Column(tt.col))
		})
	}
}

func TestItem_Column_KeywordsShadowAttributes(t *testing.T) {
	it := Item{ID: 3, Attributes: Attributes{"id": Text("other")}}
	assert.Equal(t, "3", it.Column("id"))
}

func TestParseItemType(t *testing.T) {
	for _, want := range ItemTypes() {
		got, err := ParseItemType(string(want))
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}

	_, err := ParseItemType("password")
	require.Error(t, err)
}

func TestRequest(t *testing.T) {
	r := Request{Columns: []string{"id", "name"}}
	assert.False(t, r.HasID())
	assert.True(t, r.Wants("name"))
	assert.False(t, r.Wants("secret"))

	r.ID = 12
	assert.True(t, r.HasID())

	assert.Equal(t, "query", ModeQuery.String())
	assert.Equal(t, "create", ModeCreate.String())
	assert.Equal(t, "delete", ModeDelete.String())
}
