package slug

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecode(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    int64
		wantErr bool
	}{
		{name: "plain", in: "laptop-dell-xps-13-123", want: 123},
		{name: "numeric slug segments", in: "model-15-6-123", want: 123},
		{name: "bare id", in: "42", want: 42},
		{name: "empty slug text", in: "-7", want: 7},
		{name: "zero", in: "item-0", want: 0},
		{name: "non numeric tail", in: "laptop-dell", wantErr: true},
		{name: "trailing hyphen", in: "laptop-", wantErr: true},
		{name: "empty", in: "", wantErr: true},
		{name: "signed tail", in: "laptop-+5", wantErr: true},
		{name: "overflow", in: "laptop-99999999999999999999", wantErr: true},
		{name: "mixed tail", in: "laptop-12a", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Decode(tt.in)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidSlug)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	slugs := []string{"", "laptop", "laptop-dell-xps-13", "màn-hình-27", "a--b", "15-6"}
	ids := []int64{0, 1, 123, 9_007_199_254_740_993}

	for _, s := range slugs {
		for _, id := range ids {
			got, err := Decode(Encode(s, id))
			require.NoError(t, err, "%q %d", s, id)
			assert.Equal(t, id, got)
		}
	}
}

func TestMake(t *testing.T) {
	assert.Equal(t, "laptop-dell-xps-13-123", Make("Laptop Dell XPS 13", 123))
	assert.Equal(t, "item-9", Make("   ", 9))

	id, err := Decode(Make("Màn hình Dell 27 inch", 55))
	require.NoError(t, err)
	assert.Equal(t, int64(55), id)
}
