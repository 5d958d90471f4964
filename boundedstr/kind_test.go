package boundedstr

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewKind(t *testing.T) {
	tests := []struct {
		name      string
		spec      KindSpec
		wantErr   bool
		wantField string
	}{
		{
			name: "valid stack-only kind",
			spec: KindSpec{Min: 3, Max: 16, Capacity: 16},
		},
		{
			name: "valid heap kind with max above capacity",
			spec: KindSpec{Min: 0, Max: 65536, Capacity: 4096, AllowHeap: true},
		},
		{
			name: "valid zero-capacity heap kind",
			spec: KindSpec{Min: 1, Max: 100, Capacity: 0, AllowHeap: true},
		},
		{
			name:      "negative min",
			spec:      KindSpec{Min: -1, Max: 10, Capacity: 10},
			wantErr:   true,
			wantField: "Min",
		},
		{
			name:      "max below min",
			spec:      KindSpec{Min: 5, Max: 4, Capacity: 10},
			wantErr:   true,
			wantField: "Max",
		},
		{
			name:      "negative capacity",
			spec:      KindSpec{Min: 0, Max: 0, Capacity: -1},
			wantErr:   true,
			wantField: "Capacity",
		},
		{
			name:      "stack-only max exceeds capacity",
			spec:      KindSpec{Min: 1, Max: 17, Capacity: 16},
			wantErr:   true,
			wantField: "Max",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			k, err := NewKind(tt.spec)
			if tt.wantErr {
				require.Error(t, err)
				var kindErr *KindError
				require.ErrorAs(t, err, &kindErr)
				assert.Equal(t, tt.wantField, kindErr.Field)
				assert.Nil(t, k)
				return
			}
			require.NoError(t, err)
			require.NotNil(t, k)
			assert.Equal(t, tt.spec.Min, k.Min())
			assert.Equal(t, tt.spec.Max, k.Max())
			assert.Equal(t, tt.spec.Capacity, k.Capacity())
			assert.Equal(t, tt.spec.AllowHeap, k.AllowHeap())
		})
	}
}

func TestNewKind_PolicyDefaults(t *testing.T) {
	k, err := NewKind(KindSpec{Min: 0, Max: 10, Capacity: 10})
	require.NoError(t, err)

	assert.Equal(t, "bytes", k.LengthPolicy().String())
	assert.Equal(t, "any", k.FormatPolicy().String())
}

func TestMustKind_PanicsOnBadSpec(t *testing.T) {
	assert.Panics(t, func() {
		MustKind(KindSpec{Min: 5, Max: 1, Capacity: 10})
	})
	assert.NotPanics(t, func() {
		MustKind(KindSpec{Min: 1, Max: 5, Capacity: 10})
	})
}

func TestRepresentation_String(t *testing.T) {
	assert.Equal(t, "inline", RepInline.String())
	assert.Equal(t, "heap", RepHeap.String())
}
