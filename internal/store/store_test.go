package store

import (
	"fmt"
	"strings"
	"testing"

	"personal-info-system/internal/global/database"
	"personal-info-system/internal/model"
	"personal-info-system/internal/schema"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	// 每个测试一个独立的共享内存库，避免连接池拿到空库
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_fk=1",
		strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: logger.Discard})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&model.Person{}, &model.Category{}, &model.Honor{},
		&model.Schedule{}, &model.Education{}, &model.Record{},
	))
	require.NoError(t, database.Seed(db))
	return New(db)
}

func TestSeedDefaults(t *testing.T) {
	s := newTestStore(t)

	people, err := s.GetAll(schema.TablePerson)
	require.NoError(t, err)
	require.Len(t, people, 1)
	require.EqualValues(t, 1, asUint(people[0]["id"]))
	require.Equal(t, "胡一心", people[0]["name"])

	categories, err := s.GetAll(schema.TableCategory)
	require.NoError(t, err)
	require.Len(t, categories, 5)
	require.Equal(t, "学术荣誉", categories[0]["name"])
}

func TestInsertRoundTrip(t *testing.T) {
	s := newTestStore(t)

	id, err := s.Insert(schema.TableRecord, map[string]any{
		"title":    "三好学生",
		"category": "荣誉",
		"notes":    "校级",
		"priority": "高",
		"progress": 80,
	})
	require.NoError(t, err)
	require.NotZero(t, id)

	rows, err := s.GetAll(schema.TableRecord)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	row := rows[0]
	require.Equal(t, "三好学生", row["title"])
	require.Equal(t, "荣誉", row["category"])
	require.Equal(t, "校级", row["notes"])
	require.Equal(t, "高", row["priority"])
	require.EqualValues(t, 80, asInt(row["progress"]))
	require.NotEmpty(t, row["created_at"], "插入时必须生成 created_at")
	// 默认关联到默认个人信息，join 出姓名
	require.Equal(t, "胡一心", row["person_name"])
}

func TestInsertMissingRequired(t *testing.T) {
	s := newTestStore(t)

	_, err := s.Insert(schema.TableRecord, map[string]any{"notes": "x"})
	require.True(t, errors.Is(err, ErrValidation))

	_, err = s.Insert(schema.TableRecord, map[string]any{"title": "  ", "category": "荣誉"})
	require.True(t, errors.Is(err, ErrValidation), "空白标题同样算缺失")

	count, err := s.Count(schema.TableRecord)
	require.NoError(t, err)
	require.Zero(t, count)
}

func TestInsertRejectsDanglingForeignKey(t *testing.T) {
	s := newTestStore(t)

	_, err := s.Insert(schema.TableHonor, map[string]any{
		"person_id": 99,
		"title":     "蓝桥杯一等奖",
	})
	require.True(t, errors.Is(err, ErrValidation))

	_, err = s.Insert(schema.TableHonor, map[string]any{
		"person_id":   1,
		"category_id": 42,
		"title":       "蓝桥杯一等奖",
	})
	require.True(t, errors.Is(err, ErrValidation))
}

func TestInsertUnknownTable(t *testing.T) {
	s := newTestStore(t)
	_, err := s.Insert("users", map[string]any{"name": "x"})
	require.True(t, errors.Is(err, schema.ErrUnknownEntity))
}

func TestInsertClampsProgress(t *testing.T) {
	s := newTestStore(t)

	_, err := s.Insert(schema.TableRecord, map[string]any{
		"title": "a", "category": "b", "progress": 150,
	})
	require.NoError(t, err)
	_, err = s.Insert(schema.TableRecord, map[string]any{
		"title": "c", "category": "d", "progress": -3,
	})
	require.NoError(t, err)

	rows, err := s.GetAll(schema.TableRecord)
	require.NoError(t, err)
	require.EqualValues(t, 100, asInt(rows[0]["progress"]))
	require.EqualValues(t, 0, asInt(rows[1]["progress"]))
}

func TestInsertValidatesEnums(t *testing.T) {
	s := newTestStore(t)

	// AI 生成的数据直接进 Insert，枚举外的取值必须在这里拦住
	_, err := s.Insert(schema.TableRecord, map[string]any{
		"title": "三好学生", "category": "荣誉", "priority": "特急",
	})
	require.True(t, errors.Is(err, ErrValidation))

	_, err = s.Insert(schema.TableSchedule, map[string]any{
		"person_id": 1, "title": "答辩", "status": "摸鱼中",
	})
	require.True(t, errors.Is(err, ErrValidation))

	count, err := s.Count(schema.TableRecord)
	require.NoError(t, err)
	require.Zero(t, count)

	_, err = s.Insert(schema.TableRecord, map[string]any{
		"title": "三好学生", "category": "荣誉", "priority": model.PriorityHigh,
	})
	require.NoError(t, err)
	_, err = s.Insert(schema.TableSchedule, map[string]any{
		"person_id": 1, "title": "答辩", "status": model.StatusInProgress,
	})
	require.NoError(t, err)
}

func TestGetAllJoinsDanglingCategory(t *testing.T) {
	s := newTestStore(t)

	id, err := s.Insert(schema.TableHonor, map[string]any{
		"person_id":   1,
		"category_id": 2,
		"title":       "蓝桥杯一等奖",
		"issue_date":  "2025-06-01",
	})
	require.NoError(t, err)

	// 删除被引用的分类：荣誉行保留，category_name 变为空
	require.NoError(t, s.Delete(schema.TableCategory, 2))

	rows, err := s.GetAll(schema.TableHonor)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	require.EqualValues(t, id, asUint(rows[0]["id"]))
	require.Empty(t, rows[0]["category_name"])
	require.Equal(t, "胡一心", rows[0]["person_name"])
}

func TestUpdateFieldWhitelist(t *testing.T) {
	s := newTestStore(t)

	id, err := s.Insert(schema.TableRecord, map[string]any{
		"title": "三好学生", "category": "荣誉", "progress": 10,
	})
	require.NoError(t, err)

	err = s.UpdateField(schema.TableRecord, id, "person_id = 2; --", 1)
	require.True(t, errors.Is(err, ErrInvalidField))
	err = s.UpdateField(schema.TableRecord, id, "created_at", "1999-01-01 00:00:00")
	require.True(t, errors.Is(err, ErrInvalidField), "created_at 不可更新")

	// 非法字段更新后行保持不变
	rows, err := s.GetAll(schema.TableRecord)
	require.NoError(t, err)
	require.EqualValues(t, 10, asInt(rows[0]["progress"]))

	require.NoError(t, s.UpdateField(schema.TableRecord, id, "progress", 55))
	rows, err = s.GetAll(schema.TableRecord)
	require.NoError(t, err)
	require.EqualValues(t, 55, asInt(rows[0]["progress"]))
}

func TestUpdateFieldValidatesEnums(t *testing.T) {
	s := newTestStore(t)

	id, err := s.Insert(schema.TableSchedule, map[string]any{
		"person_id": 1, "title": "答辩", "start_time": "2026-09-01 09:00",
	})
	require.NoError(t, err)

	err = s.UpdateField(schema.TableSchedule, id, "status", "摸鱼中")
	require.True(t, errors.Is(err, ErrValidation))
	err = s.UpdateField(schema.TableSchedule, id, "priority", "特高")
	require.True(t, errors.Is(err, ErrValidation))

	require.NoError(t, s.UpdateField(schema.TableSchedule, id, "status", model.StatusDone))
	require.NoError(t, s.UpdateField(schema.TableSchedule, id, "priority", model.PriorityHigh))
}

func TestUpdateFieldNotFound(t *testing.T) {
	s := newTestStore(t)
	err := s.UpdateField(schema.TableRecord, 999, "progress", 10)
	require.True(t, errors.Is(err, ErrNotFound))
}

func TestDeletePersonCascades(t *testing.T) {
	s := newTestStore(t)

	_, err := s.Insert(schema.TableHonor, map[string]any{"person_id": 1, "title": "h"})
	require.NoError(t, err)
	_, err = s.Insert(schema.TableSchedule, map[string]any{"person_id": 1, "title": "s"})
	require.NoError(t, err)
	_, err = s.Insert(schema.TableEducation, map[string]any{"person_id": 1, "institution": "e"})
	require.NoError(t, err)
	_, err = s.Insert(schema.TableRecord, map[string]any{"title": "r", "category": "c"})
	require.NoError(t, err)

	require.NoError(t, s.Delete(schema.TablePerson, 1))

	for _, table := range []string{
		schema.TableHonor, schema.TableSchedule,
		schema.TableEducation, schema.TableRecord, schema.TablePerson,
	} {
		count, err := s.Count(table)
		require.NoError(t, err)
		require.Zero(t, count, table)
	}
}

func TestDeletePersonCascadeRollsBack(t *testing.T) {
	s := newTestStore(t)

	_, err := s.Insert(schema.TableHonor, map[string]any{"person_id": 1, "title": "h"})
	require.NoError(t, err)
	_, err = s.Insert(schema.TableSchedule, map[string]any{"person_id": 1, "title": "s"})
	require.NoError(t, err)
	_, err = s.Insert(schema.TableEducation, map[string]any{"person_id": 1, "institution": "e"})
	require.NoError(t, err)

	// 级联删到 records 时表已不存在，整个事务必须回滚
	require.NoError(t, s.db.Migrator().DropTable(&model.Record{}))

	err = s.Delete(schema.TablePerson, 1)
	require.Error(t, err)

	for _, table := range []string{
		schema.TableHonor, schema.TableSchedule,
		schema.TableEducation, schema.TablePerson,
	} {
		count, err := s.Count(table)
		require.NoError(t, err)
		require.EqualValues(t, 1, count, table)
	}
}

func TestGroupCount(t *testing.T) {
	s := newTestStore(t)

	for _, priority := range []string{"高", "高", "低"} {
		_, err := s.Insert(schema.TableHonor, map[string]any{
			"person_id": 1, "title": "t", "priority": priority,
		})
		require.NoError(t, err)
	}

	groups, err := s.GroupCount(schema.TableHonor, "priority")
	require.NoError(t, err)
	byValue := map[string]int64{}
	for _, g := range groups {
		byValue[g.Value] = g.Count
	}
	require.EqualValues(t, 2, byValue["高"])
	require.EqualValues(t, 1, byValue["低"])

	_, err = s.GroupCount(schema.TableHonor, "priority; DROP TABLE honors")
	require.True(t, errors.Is(err, ErrInvalidField))
}
