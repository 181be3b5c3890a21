package engine

import (
	"personal-info-system/internal/model"
	"personal-info-system/internal/schema"
	"personal-info-system/internal/store"

	"github.com/pkg/errors"
)

// State 会话补全状态机的状态
type State string

const (
	// StateIdle 没有待补全的动作
	StateIdle State = "idle"
	// StateAwaitingCompletion 持有一个缺少必填字段的插入动作，等待补全
	StateAwaitingCompletion State = "awaiting_completion"
)

// ErrNoPending 当前没有待补全的动作
var ErrNoPending = errors.New("当前没有待补全的记录")

// Session 单个会话的状态：最多同时持有一个待补全的插入动作，
// 新的不完整意图直接覆盖旧的（last-write-wins，不排队）。
// 字段导出以便会话存储直接做 JSON 序列化。
type Session struct {
	State       State          `json:"state"`
	PendingData map[string]any `json:"pending_data,omitempty"`
}

func NewSession() *Session {
	return &Session{State: StateIdle}
}

// Begin 持有一份不完整的记录数据，进入等待补全状态
func (s *Session) Begin(data map[string]any) {
	if data == nil {
		data = map[string]any{}
	}
	s.PendingData = data
	s.State = StateAwaitingCompletion
}

// Pending 返回待补全数据；空闲状态返回 nil
func (s *Session) Pending() map[string]any {
	if s.State != StateAwaitingCompletion {
		return nil
	}
	return s.PendingData
}

// SetField 编辑待补全数据的单个字段，字段名同样经过白名单检查
func (s *Session) SetField(field string, value any) error {
	if s.State != StateAwaitingCompletion {
		return ErrNoPending
	}
	if !schema.HasField(schema.TableRecord, field) {
		return errors.Wrapf(store.ErrInvalidField, "records.%s", field)
	}
	s.PendingData[field] = value
	return nil
}

// Confirm 提交待补全的记录：补上 created_at 和空附件后写入存储。
// 写入失败时保持等待补全状态，成功后回到空闲。
func (s *Session) Confirm(st *store.Store) (uint, error) {
	if s.State != StateAwaitingCompletion {
		return 0, ErrNoPending
	}

	data := s.PendingData
	data["created_at"] = model.Now()
	if data["attachment"] == nil {
		data["attachment"] = ""
	}

	id, err := st.Insert(schema.TableRecord, data)
	if err != nil {
		return 0, err
	}

	s.reset()
	return id, nil
}

// Cancel 丢弃待补全数据，回到空闲状态；没有待补全数据时也是安全的
func (s *Session) Cancel() {
	s.reset()
}

func (s *Session) reset() {
	s.PendingData = nil
	s.State = StateIdle
}
