package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTextAttributes(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Attributes
		wantErr error
	}{
		{name: "two pairs", input: "a=1,b=2", want: Attributes{"a": Text("1"), "b": Text("2")}},
		{name: "empty token skipped", input: "a=1,,b=2", want: Attributes{"a": Text("1"), "b": Text("2")}},
		{name: "leading and trailing commas", input: ",a=1,", want: Attributes{"a": Text("1")}},
		{name: "split on first equals", input: "url=http://x/?q=1", want: Attributes{"url": Text("http://x/?q=1")}},
		{name: "empty value", input: "a=", want: Attributes{"a": Text("")}},
		{name: "empty input", input: "", want: Attributes{}},
		{name: "duplicate key last wins", input: "a=1,a=2", want: Attributes{"a": Text("2")}},
		{name: "no equals", input: "abc", wantErr: ErrAttributeSyntax},
		{name: "empty name", input: "=v", wantErr: ErrAttributeName},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseTextAttributes(tt.input)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseIntAttributes(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Attributes
		wantErr error
	}{
		{name: "two pairs", input: "a=1,b=2", want: Attributes{"a": Int(1), "b": Int(2)}},
		{name: "empty token skipped", input: "a=1,,b=2", want: Attributes{"a": Int(1), "b": Int(2)}},
		{name: "signed and padded", input: "a=-3,b= 7 ,c=+4", want: Attributes{"a": Int(-3), "b": Int(7), "c": Int(4)}},
		{name: "not a number", input: "a=xyz", wantErr: ErrAttributeInt},
		{name: "hex rejected", input: "a=0x10", wantErr: ErrAttributeInt},
		{name: "empty value rejected", input: "a=", wantErr: ErrAttributeInt},
		{name: "no equals", input: "abc", wantErr: ErrAttributeSyntax},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseIntAttributes(tt.input)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestAttributes_Merge_LastWriteWins(t *testing.T) {
	text := Attributes{"port": Text("21"), "server": Text("a")}
	ints := Attributes{"port": Int(22)}

	got := text.Merge(ints)

	assert.Equal(t, Attributes{"port": Int(22), "server": Text("a")}, got)
	assert.Equal(t, Text("21"), text["port"], "inputs must not be modified")
}

func TestAttributes_Matches(t *testing.T) {
	item := Attributes{"server": Text("host"), "port": Text("22")}

	assert.True(t, item.Matches(Attributes{}))
	assert.True(t, item.Matches(Attributes{"server": Text("host")}))
	assert.True(t, item.Matches(Attributes{"port": Int(22)}), "integers compare by their decimal form")
	assert.False(t, item.Matches(Attributes{"server": Text("other")}))
	assert.False(t, item.Matches(Attributes{"user": Text("bob")}))
}

func TestValue(t *testing.T) {
	assert.Equal(t, "42", Int(42).String())
	assert.True(t, Int(0).Empty())
	assert.True(t, Text("").Empty())
	assert.False(t, Text("0").Empty())
	assert.True(t, Int(5).IsInt())
	assert.False(t, Text("5").IsInt())
	assert.Equal(t, map[string]string{"a": "1", "b": "x"}, Attributes{"a": Int(1), "b": Text("x")}.Strings())
	assert.Equal(t, []string{"a", "b"}, Attributes{"b": Text(""), "a": Text("")}.Names())
}
