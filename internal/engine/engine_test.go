package engine

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"personal-info-system/internal/global/database"
	"personal-info-system/internal/model"
	"personal-info-system/internal/nlu"
	"personal-info-system/internal/schema"
	"personal-info-system/internal/store"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// stubParser 返回预置的动作描述或错误，替代真实的 AI 服务
type stubParser struct {
	descriptor *nlu.ActionDescriptor
	err        error
}

func (s *stubParser) Parse(_ context.Context, _ string) (*nlu.ActionDescriptor, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.descriptor, nil
}

func newTestEngine(t *testing.T, parser IntentParser) *Engine {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_fk=1",
		strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: logger.Discard})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&model.Person{}, &model.Category{}, &model.Honor{},
		&model.Schedule{}, &model.Education{}, &model.Record{},
	))
	require.NoError(t, database.Seed(db))
	return New(store.New(db), parser)
}

func mustCount(t *testing.T, e *Engine, table string) int64 {
	t.Helper()
	count, err := e.Store().Count(table)
	require.NoError(t, err)
	return count
}

func TestDispatchQuery(t *testing.T) {
	e := newTestEngine(t, &stubParser{descriptor: &nlu.ActionDescriptor{
		Action: "query", Table: schema.TableRecord, Criteria: "蓝桥杯",
	}})
	sess := NewSession()

	_, err := e.Store().Insert(schema.TableRecord, map[string]any{
		"title": "蓝桥杯一等奖", "category": "竞赛",
	})
	require.NoError(t, err)
	_, err = e.Store().Insert(schema.TableRecord, map[string]any{
		"title": "三好学生", "category": "荣誉",
	})
	require.NoError(t, err)

	outcome, err := e.Dispatch(context.Background(), sess, "查一下蓝桥杯")
	require.NoError(t, err)
	require.Equal(t, OutcomeRows, outcome.Kind)
	require.Len(t, outcome.Rows, 1)
	require.Equal(t, "蓝桥杯一等奖", outcome.Rows[0]["title"])
	require.Equal(t, "找到 1 条记录", outcome.Message)
	require.Equal(t, StateIdle, sess.State)
}

func TestDispatchQueryFallsBackToUserInput(t *testing.T) {
	e := newTestEngine(t, &stubParser{descriptor: &nlu.ActionDescriptor{
		Action: "query", Table: schema.TableRecord,
	}})
	sess := NewSession()

	_, err := e.Store().Insert(schema.TableRecord, map[string]any{
		"title": "三好学生", "category": "荣誉",
	})
	require.NoError(t, err)

	// criteria 为空时用原始输入做关键词
	outcome, err := e.Dispatch(context.Background(), sess, "三好学生")
	require.NoError(t, err)
	require.Len(t, outcome.Rows, 1)

	outcome, err = e.Dispatch(context.Background(), sess, "不存在的内容")
	require.NoError(t, err)
	require.Empty(t, outcome.Rows)
	require.Contains(t, outcome.Message, "没有找到")
}

func TestDispatchInsertRecordComplete(t *testing.T) {
	e := newTestEngine(t, &stubParser{descriptor: &nlu.ActionDescriptor{
		Action: "insert", Table: schema.TableRecord,
		Data: map[string]any{"title": "三好学生", "category": "荣誉"},
	}})
	sess := NewSession()

	outcome, err := e.Dispatch(context.Background(), sess, "我获得了三好学生")
	require.NoError(t, err)
	require.Equal(t, OutcomeInserted, outcome.Kind)
	require.NotZero(t, outcome.ID)
	require.Equal(t, "已添加记录：三好学生", outcome.Message)
	require.Equal(t, StateIdle, sess.State, "字段齐全时不进入补全流程")
	require.EqualValues(t, 1, mustCount(t, e, schema.TableRecord))
}

func TestDispatchInsertRecordIncomplete(t *testing.T) {
	e := newTestEngine(t, &stubParser{descriptor: &nlu.ActionDescriptor{
		Action: "insert", Table: schema.TableRecord,
		Data: map[string]any{"notes": "x"},
	}})
	sess := NewSession()

	outcome, err := e.Dispatch(context.Background(), sess, "记一下")
	require.NoError(t, err)
	require.Equal(t, OutcomePending, outcome.Kind)
	require.Equal(t, "信息不完整，请补充。", outcome.Message)
	require.Equal(t, StateAwaitingCompletion, sess.State)
	require.Zero(t, mustCount(t, e, schema.TableRecord), "确认之前不写库")

	// 补全并确认
	require.NoError(t, sess.SetField("title", "三好学生"))
	require.NoError(t, sess.SetField("category", "荣誉"))
	id, err := sess.Confirm(e.Store())
	require.NoError(t, err)
	require.NotZero(t, id)
	require.Equal(t, StateIdle, sess.State)

	rows, err := e.Store().GetAll(schema.TableRecord)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	require.Equal(t, "三好学生", rows[0]["title"])
	require.Equal(t, "荣誉", rows[0]["category"])
	require.Equal(t, "x", rows[0]["notes"])
	require.NotEmpty(t, rows[0]["created_at"])
}

func TestDispatchInsertRejectsBadPriority(t *testing.T) {
	e := newTestEngine(t, &stubParser{descriptor: &nlu.ActionDescriptor{
		Action: "insert", Table: schema.TableRecord,
		Data: map[string]any{"title": "三好学生", "category": "荣誉", "priority": "特急"},
	}})
	sess := NewSession()

	// AI 返回枚举外的优先级：拒绝入库而不是照单全收
	_, err := e.Dispatch(context.Background(), sess, "我获得了三好学生")
	require.True(t, errors.Is(err, store.ErrValidation))
	require.Zero(t, mustCount(t, e, schema.TableRecord))
}

func TestDispatchIncompleteOverwritesPending(t *testing.T) {
	e := newTestEngine(t, &stubParser{descriptor: &nlu.ActionDescriptor{
		Action: "insert", Table: schema.TableRecord,
		Data: map[string]any{"notes": "第二次"},
	}})
	sess := NewSession()
	sess.Begin(map[string]any{"notes": "第一次"})

	_, err := e.Dispatch(context.Background(), sess, "再记一下")
	require.NoError(t, err)
	// 新的不完整意图覆盖旧的，不排队
	require.Equal(t, "第二次", sess.Pending()["notes"])
}

func TestCancelDiscardsPending(t *testing.T) {
	e := newTestEngine(t, &stubParser{descriptor: &nlu.ActionDescriptor{
		Action: "insert", Table: schema.TableRecord,
		Data: map[string]any{"notes": "x"},
	}})
	sess := NewSession()

	_, err := e.Dispatch(context.Background(), sess, "记一下")
	require.NoError(t, err)
	require.Equal(t, StateAwaitingCompletion, sess.State)

	sess.Cancel()
	require.Equal(t, StateIdle, sess.State)
	require.Nil(t, sess.Pending())
	require.Zero(t, mustCount(t, e, schema.TableRecord))

	_, err = sess.Confirm(e.Store())
	require.True(t, errors.Is(err, ErrNoPending))
}

func TestSetFieldRequiresWhitelist(t *testing.T) {
	sess := NewSession()
	require.True(t, errors.Is(sess.SetField("title", "x"), ErrNoPending))

	sess.Begin(map[string]any{})
	require.True(t, errors.Is(sess.SetField("created_at", "1999"), store.ErrInvalidField))
	require.NoError(t, sess.SetField("title", "x"))
}

func TestDispatchInsertOtherTableIsManual(t *testing.T) {
	e := newTestEngine(t, &stubParser{descriptor: &nlu.ActionDescriptor{
		Action: "insert", Table: schema.TableHonor,
		Data: map[string]any{"title": "蓝桥杯一等奖"},
	}})
	sess := NewSession()

	outcome, err := e.Dispatch(context.Background(), sess, "我获得了蓝桥杯一等奖")
	require.NoError(t, err)
	require.Equal(t, OutcomeManual, outcome.Kind)
	require.Equal(t, "AI建议添加到honors表，但此功能需要手动操作", outcome.Message)
	require.Equal(t, StateIdle, sess.State)
	require.Zero(t, mustCount(t, e, schema.TableHonor), "非 records 表的插入不自动执行")
}

func TestDispatchUpdateAndDeleteAreManual(t *testing.T) {
	for action, message := range map[string]string{
		"update": "更新操作需要手动在相应页面完成",
		"delete": "删除操作需要手动在相应页面完成",
	} {
		e := newTestEngine(t, &stubParser{descriptor: &nlu.ActionDescriptor{
			Action: action, Table: schema.TableRecord,
		}})
		outcome, err := e.Dispatch(context.Background(), NewSession(), "改一下")
		require.NoError(t, err)
		require.Equal(t, OutcomeManual, outcome.Kind)
		require.Equal(t, message, outcome.Message)
	}
}

func TestDispatchParserErrorLeavesStoreUntouched(t *testing.T) {
	e := newTestEngine(t, &stubParser{err: errors.Wrap(nlu.ErrMalformedIntent, "not json")})
	sess := NewSession()

	_, err := e.Dispatch(context.Background(), sess, "随便说点什么")
	require.True(t, errors.Is(err, nlu.ErrMalformedIntent))
	require.Equal(t, StateIdle, sess.State)
	require.Zero(t, mustCount(t, e, schema.TableRecord))
}
