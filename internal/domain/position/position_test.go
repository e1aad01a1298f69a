package position_test

import (
	"testing"

	"github.com/rpggio/corkboard/internal/domain/position"
	"github.com/stretchr/testify/require"
)

type item struct {
	id  string
	pos int
}

func posOf(i item) int { return i.pos }

func TestNext(t *testing.T) {
	require.Equal(t, 0, position.Next([]item{}, posOf))
	require.Equal(t, 0, position.Next[item](nil, posOf))
	require.Equal(t, 1, position.Next([]item{{"a", 0}}, posOf))
	require.Equal(t, 8, position.Next([]item{{"a", 3}, {"b", 7}, {"c", 1}}, posOf))
}

func TestNext_UniqueAfterRepeatedAppends(t *testing.T) {
	var siblings []item
	for i := 0; i < 50; i++ {
		siblings = append(siblings, item{pos: position.Next(siblings, posOf)})
	}

	seen := map[int]bool{}
	for _, s := range siblings {
		require.False(t, seen[s.pos], "duplicate position %d", s.pos)
		seen[s.pos] = true
	}
}

func TestSort_Stable(t *testing.T) {
	siblings := []item{{"c", 2}, {"a", 0}, {"b1", 1}, {"b2", 1}}
	position.Sort(siblings, posOf)
	require.Equal(t, []item{{"a", 0}, {"b1", 1}, {"b2", 1}, {"c", 2}}, siblings)
}

func TestRenumber(t *testing.T) {
	siblings := []item{{"c", 9}, {"a", 0}, {"b", 4}}
	changes := position.Renumber(siblings, posOf)
	require.Equal(t, []position.Change{
		{Index: 2, From: 4, To: 1},
		{Index: 0, From: 9, To: 2},
	}, changes)

	require.Empty(t, position.Renumber([]item{{"a", 0}, {"b", 1}}, posOf))
	require.Empty(t, position.Renumber[item](nil, posOf))
}
