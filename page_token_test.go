package numpager

import (
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/require"
)

func Test_PageToken_Decode(t *testing.T) {
	tests := []struct {
		name          string
		input         string
		expectedPage  int
		expectedEmpty bool
		expectError   bool
	}{
		{
			"empty string",
			"",
			1,
			true,
			false,
		},
		{
			"first page encoded",
			base64.RawURLEncoding.EncodeToString([]byte("1")),
			1,
			true,
			false,
		},
		{
			"later page",
			base64.RawURLEncoding.EncodeToString([]byte("15")),
			15,
			false,
			false,
		},
		{
			"not base64",
			"%%%",
			0,
			false,
			true,
		},
		{
			"not a number",
			base64.RawURLEncoding.EncodeToString([]byte("abc")),
			0,
			false,
			true,
		},
		{
			"zero page",
			base64.RawURLEncoding.EncodeToString([]byte("0")),
			0,
			false,
			true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tok, err := DecodePageToken(tt.input)
			if tt.expectError {
				require.Error(t, err)
				return
			}

			require.NoError(t, err)
			require.Equal(t, tt.expectedEmpty, tok.IsEmpty())
			require.Equal(t, tt.expectedPage, tok.Page())
		})
	}
}

func Test_PageToken_String(t *testing.T) {
	require.Equal(t, "", (*PageToken)(nil).String())
	require.Equal(t, "", NewPageToken(1).String())

	encoded := NewPageToken(42).String()
	require.NotEmpty(t, encoded)

	decoded, err := DecodePageToken(encoded)
	require.NoError(t, err)
	require.Equal(t, 42, decoded.Page())
}
