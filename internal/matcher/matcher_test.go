package matcher

import (
	"testing"

	"personal-info-system/internal/store"

	"github.com/stretchr/testify/require"
)

func sampleRows() []store.Row {
	return []store.Row{
		{"id": 1, "title": "三好学生", "category": "荣誉", "notes": nil},
		{"id": 2, "title": "蓝桥杯一等奖", "category": "竞赛", "notes": "省级"},
		{"id": 3, "title": "英语四级", "category": "证书", "notes": "CET-4"},
	}
}

func TestMatchEmptyKeyword(t *testing.T) {
	rows := sampleRows()
	require.Equal(t, rows, Match(rows, ""))
	require.Equal(t, rows, Match(rows, "   "))
}

func TestMatchSubstring(t *testing.T) {
	rows := sampleRows()

	matched := Match(rows, "蓝桥杯")
	require.Len(t, matched, 1)
	require.Equal(t, 2, matched[0]["id"])

	// 任意字段都参与匹配
	matched = Match(rows, "证书")
	require.Len(t, matched, 1)
	require.Equal(t, 3, matched[0]["id"])

	require.Empty(t, Match(rows, "不存在的关键词"))
}

func TestMatchCaseInsensitive(t *testing.T) {
	rows := sampleRows()
	matched := Match(rows, "cet-4")
	require.Len(t, matched, 1)
	matched = Match(rows, "  CET-4  ")
	require.Len(t, matched, 1)
}

func TestMatchPreservesOrder(t *testing.T) {
	rows := sampleRows()
	matched := Match(rows, "荣")
	require.Len(t, matched, 1)

	matched = Match(rows, "级")
	// "省级" 与 "英语四级"/"CET-4" 行，原有顺序不变
	require.Len(t, matched, 2)
	require.Equal(t, 2, matched[0]["id"])
	require.Equal(t, 3, matched[1]["id"])
}

func TestMatchIdempotent(t *testing.T) {
	rows := sampleRows()
	once := Match(rows, "级")
	twice := Match(once, "级")
	require.Equal(t, once, twice)
}
