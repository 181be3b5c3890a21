// Package matcher 在查询结果集上做关键词匹配。
// 匹配规则刻意粗糙：把一行所有非空字段拼成一个字符串做子串包含，
// 不分词不排序，对个人数据这种小数据量足够了。
package matcher

import (
	"fmt"
	"sort"
	"strings"

	"personal-info-system/internal/store"
)

// Match 返回包含关键词的行，保持原有顺序；空关键词匹配全部
func Match(rows []store.Row, keyword string) []store.Row {
	keyword = strings.ToLower(strings.TrimSpace(keyword))
	if keyword == "" {
		return rows
	}

	var matched []store.Row
	for _, row := range rows {
		if contains(row, keyword) {
			matched = append(matched, row)
		}
	}
	return matched
}

func contains(row store.Row, keyword string) bool {
	// 列名排序保证拼接结果稳定
	keys := make([]string, 0, len(row))
	for k := range row {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		v := row[k]
		if v == nil {
			continue
		}
		parts = append(parts, strings.ToLower(fmt.Sprintf("%v", v)))
	}
	return strings.Contains(strings.Join(parts, " "), keyword)
}
