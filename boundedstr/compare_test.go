package boundedstr

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEqual_ContentOnly(t *testing.T) {
	inlineKind, err := NewKind(KindSpec{Min: 1, Max: 100, Capacity: 100, AllowHeap: true})
	require.NoError(t, err)
	heapKind, err := NewKind(KindSpec{Min: 1, Max: 100, Capacity: 2, AllowHeap: true})
	require.NoError(t, err)

	inline, err := inlineKind.New("same text")
	require.NoError(t, err)
	heap, err := heapKind.New("same text")
	require.NoError(t, err)
	require.Equal(t, RepInline, inline.Representation())
	require.Equal(t, RepHeap, heap.Representation())

	assert.True(t, inline.Equal(heap), "identical text must compare equal across representations")
	assert.True(t, heap.Equal(inline))
	assert.True(t, inline.EqualString("same text"))

	other, err := inlineKind.New("different")
	require.NoError(t, err)
	assert.False(t, inline.Equal(other))
}

func TestConstantTimeEqual(t *testing.T) {
	secret, err := NewKind(KindSpec{Min: 1, Max: 32, Capacity: 32, ConstantTime: true, SecureErase: true})
	require.NoError(t, err)

	s1, err := secret.New("password123")
	require.NoError(t, err)
	s2, err := secret.New("password123")
	require.NoError(t, err)
	s3, err := secret.New("wrongpassword")
	require.NoError(t, err)
	s4, err := secret.New("pass")
	require.NoError(t, err)

	assert.True(t, s1.ConstantTimeEqual(s2))
	assert.False(t, s1.ConstantTimeEqual(s3))
	assert.False(t, s1.ConstantTimeEqual(s4), "different lengths compare unequal")
}

func TestConstantTimeEqual_HeapValues(t *testing.T) {
	k, err := NewKind(KindSpec{Min: 1, Max: 1000, Capacity: 4, AllowHeap: true})
	require.NoError(t, err)

	a, err := k.New(strings.Repeat("s", 100))
	require.NoError(t, err)
	b, err := k.New(strings.Repeat("s", 100))
	require.NoError(t, err)
	c, err := k.New(strings.Repeat("t", 100))
	require.NoError(t, err)

	assert.True(t, a.ConstantTimeEqual(b))
	assert.False(t, a.ConstantTimeEqual(c))
}

func TestCompare_Ordering(t *testing.T) {
	k, err := NewKind(KindSpec{Min: 1, Max: 10, Capacity: 10})
	require.NoError(t, err)

	a, err := k.New("apple")
	require.NoError(t, err)
	b, err := k.New("banana")
	require.NoError(t, err)

	assert.Equal(t, -1, a.Compare(b))
	assert.Equal(t, 1, b.Compare(a))
	assert.Equal(t, 0, a.Compare(a))
}

func TestDigest_RepresentationIndependent(t *testing.T) {
	inlineKind, err := NewKind(KindSpec{Min: 1, Max: 100, Capacity: 100, AllowHeap: true})
	require.NoError(t, err)
	heapKind, err := NewKind(KindSpec{Min: 1, Max: 100, Capacity: 2, AllowHeap: true})
	require.NoError(t, err)

	inline, err := inlineKind.New("hash me")
	require.NoError(t, err)
	heap, err := heapKind.New("hash me")
	require.NoError(t, err)

	assert.Equal(t, inline.Digest(), heap.Digest(), "digest must depend on content only")

	other, err := inlineKind.New("hash you")
	require.NoError(t, err)
	assert.NotEqual(t, inline.Digest(), other.Digest())
}

func TestDigest_UsableAsMapKey(t *testing.T) {
	k, err := NewKind(KindSpec{Min: 1, Max: 20, Capacity: 20})
	require.NoError(t, err)

	seen := map[[32]byte]string{}
	for _, text := range []string{"one", "two", "one"} {
		s, err := k.New(text)
		require.NoError(t, err)
		seen[s.Digest()] = text
	}
	assert.Len(t, seen, 2)
}
