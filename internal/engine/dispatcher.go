// Package engine 把结构化动作路由到存储与匹配器。
// 自由文本只允许两类自动执行：任意表的查询，和向 records 表的插入
// （缺字段时走会话补全）。其余动作一律提示手动操作，
// 避免误解的自然语言指令直接改动数据。
package engine

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"personal-info-system/internal/global/logger"
	"personal-info-system/internal/matcher"
	"personal-info-system/internal/model"
	"personal-info-system/internal/nlu"
	"personal-info-system/internal/schema"
	"personal-info-system/internal/store"
)

// OutcomeKind 一次调度的结果类别
type OutcomeKind string

const (
	// OutcomeRows 查询结果
	OutcomeRows OutcomeKind = "rows"
	// OutcomeInserted 已自动插入一条记录
	OutcomeInserted OutcomeKind = "inserted"
	// OutcomePending 信息不完整，进入补全流程
	OutcomePending OutcomeKind = "pending"
	// OutcomeManual 动作不自动执行，需要在对应页面手动完成
	OutcomeManual OutcomeKind = "manual"
)

// Outcome 调度结果，直接序列化给调用方
type Outcome struct {
	Kind    OutcomeKind    `json:"kind"`
	Action  string         `json:"action"`
	Table   string         `json:"table"`
	Message string         `json:"message"`
	Rows    []store.Row    `json:"rows,omitempty"`
	Pending map[string]any `json:"pending,omitempty"`
	ID      uint           `json:"id,omitempty"`
}

// IntentParser 由 nlu.Parser 实现；接口化便于测试时替换
type IntentParser interface {
	Parse(ctx context.Context, freeText string) (*nlu.ActionDescriptor, error)
}

type Engine struct {
	store  *store.Store
	parser IntentParser
	log    *slog.Logger
}

func New(st *store.Store, parser IntentParser) *Engine {
	return &Engine{
		store:  st,
		parser: parser,
		log:    logger.New("Engine"),
	}
}

// Store 返回底层存储，供补全确认时使用
func (e *Engine) Store() *store.Store {
	return e.store
}

// Dispatch 解析自由文本并执行；解析失败时不产生任何写入
func (e *Engine) Dispatch(ctx context.Context, sess *Session, userInput string) (*Outcome, error) {
	descriptor, err := e.parser.Parse(ctx, userInput)
	if err != nil {
		return nil, err
	}
	return e.Execute(sess, userInput, descriptor)
}

// Execute 按 (action, table) 路由一个已校验的动作描述
func (e *Engine) Execute(sess *Session, userInput string, d *nlu.ActionDescriptor) (*Outcome, error) {
	outcome := &Outcome{Action: d.Action, Table: d.Table}

	switch d.Action {
	case "query":
		rows, err := e.store.GetAll(d.Table)
		if err != nil {
			return nil, err
		}
		criteria := strings.TrimSpace(d.Criteria)
		if criteria == "" {
			criteria = userInput
		}
		matched := matcher.Match(rows, criteria)
		outcome.Kind = OutcomeRows
		outcome.Rows = matched
		if len(matched) == 0 {
			outcome.Message = fmt.Sprintf("没有找到与『%s』相关的记录", criteria)
		} else {
			outcome.Message = fmt.Sprintf("找到 %d 条记录", len(matched))
		}
		return outcome, nil

	case "insert":
		if d.Table != schema.TableRecord {
			outcome.Kind = OutcomeManual
			outcome.Message = fmt.Sprintf("AI建议添加到%s表，但此功能需要手动操作", d.Table)
			return outcome, nil
		}
		if hasValue(d.Data, "title") && hasValue(d.Data, "category") {
			d.Data["created_at"] = model.Now()
			d.Data["attachment"] = ""
			id, err := e.store.Insert(schema.TableRecord, d.Data)
			if err != nil {
				return nil, err
			}
			e.log.Info("AI 自动插入记录", "id", id, "title", d.Data["title"])
			outcome.Kind = OutcomeInserted
			outcome.ID = id
			outcome.Message = fmt.Sprintf("已添加记录：%v", d.Data["title"])
			return outcome, nil
		}
		sess.Begin(d.Data)
		outcome.Kind = OutcomePending
		outcome.Pending = sess.Pending()
		outcome.Message = "信息不完整，请补充。"
		return outcome, nil

	case "update":
		outcome.Kind = OutcomeManual
		outcome.Message = "更新操作需要手动在相应页面完成"
		return outcome, nil

	case "delete":
		outcome.Kind = OutcomeManual
		outcome.Message = "删除操作需要手动在相应页面完成"
		return outcome, nil
	}

	// Parser 已做过枚举校验，到不了这里
	return nil, nlu.ErrUnrecognizedIntent
}

func hasValue(data map[string]any, key string) bool {
	v, ok := data[key]
	if !ok || v == nil {
		return false
	}
	s, ok := v.(string)
	if ok {
		return strings.TrimSpace(s) != ""
	}
	return true
}
