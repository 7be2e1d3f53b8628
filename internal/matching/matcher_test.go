package matching

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain name untouched", "星空のマリス", "星空のマリス"},
		{"corner quotes", "「星空のマリス」", "星空のマリス"},
		{"double corner quotes", "『星空のマリス』", "星空のマリス"},
		{"book emoji", "📗星空のマリス", "星空のマリス"},
		{"private prefix", "貸・星空のマリス", "星空のマリス"},
		{"recruiting prefix", "募・星空のマリス", "星空のマリス"},
		{"gm test prefix", "GMテスト・星空のマリス", "星空のマリス"},
		{"inquiry prefix", "打診・星空のマリス", "星空のマリス"},
		{"tentative fullwidth paren", "（仮）星空のマリス", "星空のマリス"},
		{"tentative ascii paren", "(仮)星空のマリス", "星空のマリス"},
		{"tentative bare", "仮星空のマリス", "星空のマリス"},
		{"surrounding space", "  星空のマリス ", "星空のマリス"},
		{"quote then prefix", "「貸・星空のマリス」", "星空のマリス"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Normalize(tt.in))
		})
	}
}

func TestMatch(t *testing.T) {
	candidates := []Candidate{
		{ID: 1, Title: "星空のマリス"},
		{ID: 2, Title: "グノーシア"},
		{ID: 3, Title: "何度だって青い月に火を灯した"},
	}

	t.Run("exact match after normalization", func(t *testing.T) {
		got, ok := Match("貸・星空のマリス", candidates)
		require.True(t, ok)
		assert.Equal(t, uint(1), got.ID)
	})

	t.Run("exact match beats substring", func(t *testing.T) {
		got, ok := Match("グノーシア", candidates)
		require.True(t, ok)
		assert.Equal(t, uint(2), got.ID)
	})

	t.Run("substring match for long names", func(t *testing.T) {
		got, ok := Match("何度だって青い月に", candidates)
		require.True(t, ok)
		assert.Equal(t, uint(3), got.ID)
	})

	t.Run("candidate title inside the event name", func(t *testing.T) {
		got, ok := Match("星空のマリス 追加公演", candidates)
		require.True(t, ok)
		assert.Equal(t, uint(1), got.ID)
	})

	t.Run("too short after normalization", func(t *testing.T) {
		_, ok := Match("仮マリ", candidates)
		assert.False(t, ok)
	})

	t.Run("short names never substring match", func(t *testing.T) {
		// 4 runes: enough to try an exact match, below the substring floor.
		_, ok := Match("のマリス", candidates)
		assert.False(t, ok)
	})

	t.Run("no match", func(t *testing.T) {
		_, ok := Match("存在しないシナリオ", candidates)
		assert.False(t, ok)
	})
}
