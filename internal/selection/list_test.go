package selection

import (
	"testing"

	"github.com/stretchr/testify/require"
)

type change struct {
	prev, next *string
}

func TestListNotifiesOnChangeOnly(t *testing.T) {
	t.Parallel()

	l := NewList([]string{"a", "b"})
	var got []change
	unsubscribe := l.OnSelectionChanged(func(prev, next *string) {
		got = append(got, change{prev, next})
	})

	require.True(t, l.Select(0))
	require.True(t, l.Select(0))
	require.True(t, l.Select(1))
	l.ClearSelection()
	l.ClearSelection()
	require.Len(t, got, 3)

	require.Nil(t, got[0].prev)
	require.Equal(t, "a", *got[0].next)
	require.Equal(t, "a", *got[1].prev)
	require.Equal(t, "b", *got[1].next)
	require.Equal(t, "b", *got[2].prev)
	require.Nil(t, got[2].next)

	unsubscribe()
	require.True(t, l.Select(0))
	require.Len(t, got, 3)
}

func TestListSelectBounds(t *testing.T) {
	t.Parallel()

	l := NewList([]string{"a", "b", "c"})
	require.False(t, l.Select(-1))
	require.False(t, l.Select(3))
	require.Equal(t, -1, l.SelectedIndex())

	require.True(t, l.SelectPrev())
	require.Equal(t, 2, l.SelectedIndex())
	l.SelectNext()
	require.Equal(t, 2, l.SelectedIndex())
	l.SelectPrev()
	l.SelectPrev()
	l.SelectPrev()
	require.Equal(t, 0, l.SelectedIndex())

	empty := NewList[string](nil)
	require.False(t, empty.SelectNext())
	require.False(t, empty.SelectPrev())
}
