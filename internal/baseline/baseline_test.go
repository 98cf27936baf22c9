package baseline

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestIndexes(t *testing.T) {
	words := make([]string, 500)
	for i := range words {
		words[i] = "w" + strconv.Itoa(i*7%500)
	}
	for _, name := range Names() {
		t.Run(name, func(t *testing.T) {
			require := require.New(t)
			idx, err := New(name)
			require.NoError(err)
			require.Equal(name, idx.Name())
			require.False(idx.Has("w1"))
			require.Equal(0, idx.Len())

			idx.Load(words)
			require.Equal(len(words), idx.Len())
			for _, w := range words {
				require.True(idx.Has(w), "missing %s", w)
			}
			require.False(idx.Has("w500"))
			require.False(idx.Has(""))

			idx.Load(words[:10])
			require.Equal(10, idx.Len())
			require.False(idx.Has(words[10]))
		})
	}
}

func TestNewUnknown(t *testing.T) {
	_, err := New("skiplist")
	require.Error(t, err)
}

func TestNames(t *testing.T) {
	require.Equal(t, []string{"bst", "btree", "hashmap", "haxmap", "linear", "llrb"}, Names())
}
