package model

import "time"

// TimeLayout 所有 created_at 等时间字段统一使用的文本格式
const TimeLayout = "2006-01-02 15:04:05"

// 优先级三级枚举
const (
	PriorityLow    = "低"
	PriorityMedium = "中"
	PriorityHigh   = "高"
)

// 日程状态枚举
const (
	StatusPending    = "待开始"
	StatusInProgress = "进行中"
	StatusDone       = "已完成"
	StatusCancelled  = "已取消"
)

// Now 返回当前时间的文本表示
func Now() string {
	return time.Now().Format(TimeLayout)
}

// Priorities 合法的优先级取值
func Priorities() []string {
	return []string{PriorityLow, PriorityMedium, PriorityHigh}
}

// ScheduleStatuses 合法的日程状态取值
func ScheduleStatuses() []string {
	return []string{StatusPending, StatusInProgress, StatusDone, StatusCancelled}
}
