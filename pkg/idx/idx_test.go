package idx

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	a := New()
	b := New()

	require.False(t, a.IsZero())
	require.Len(t, a.String(), 26)
	require.NotEqual(t, a, b)

	// Monotonic source: IDs minted in sequence must sort in creation order.
	require.Less(t, a.String(), b.String())
}

func TestNewAt(t *testing.T) {
	at := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	id := NewAt(at)

	require.False(t, id.IsZero())
	require.WithinDuration(t, at, id.Time(), time.Millisecond)
}

func TestParse(t *testing.T) {
	id := New()

	parsed, err := Parse(id.String())
	require.NoError(t, err)
	require.Equal(t, id, parsed)

	t.Run("rejects empty", func(t *testing.T) {
		_, err := Parse("")
		require.ErrorIs(t, err, ErrInvalid)
	})

	t.Run("rejects garbage", func(t *testing.T) {
		_, err := Parse("not-a-ulid")
		require.ErrorIs(t, err, ErrInvalid)
	})

	t.Run("trims whitespace", func(t *testing.T) {
		parsed, err := Parse("  " + id.String() + " ")
		require.NoError(t, err)
		require.Equal(t, id, parsed)
	})
}

func TestMustParsePanics(t *testing.T) {
	require.Panics(t, func() { MustParse("bogus") })
}
