// Package store 是六张数据表的唯一持有者：所有读写都经过这里，
// 插入校验必填字段与外键，动态字段更新经过 schema 白名单检查，
// 删除个人信息时在单个事务内级联删除全部子表记录。
package store

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"personal-info-system/internal/global/logger"
	"personal-info-system/internal/model"
	"personal-info-system/internal/schema"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

var (
	// ErrValidation 缺少必填字段或外键不指向已有记录
	ErrValidation = errors.New("数据校验失败")
	// ErrInvalidField 更新了白名单之外的字段
	ErrInvalidField = errors.New("非法的字段名")
	// ErrNotFound 目标记录不存在
	ErrNotFound = errors.New("记录不存在")
)

// Row 一行查询结果，键为列名
type Row = map[string]any

type Store struct {
	db  *gorm.DB
	log *slog.Logger
}

func New(db *gorm.DB) *Store {
	return &Store{
		db:  db,
		log: logger.New("Store"),
	}
}

// Insert 校验后插入一行，返回自增 id。
// created_at 缺省时取当前时间；progress 截断到 [0,100]。
func (s *Store) Insert(table string, values map[string]any) (uint, error) {
	fields, err := schema.Fields(table)
	if err != nil {
		return 0, err
	}

	for _, f := range fields {
		if !f.Required {
			continue
		}
		if isEmpty(values[f.Name]) {
			return 0, errors.Wrapf(ErrValidation, "缺少必填字段 %s.%s", table, f.Name)
		}
	}

	fks, _ := schema.ForeignKeys(table)
	for _, fk := range fks {
		id := asUint(values[fk.Field])
		if id == 0 {
			// 外键未提供或为空：records 由模型默认关联到 id=1，其余留空
			continue
		}
		exists, err := s.rowExists(s.db, fk.Parent, id)
		if err != nil {
			return 0, err
		}
		if !exists {
			return 0, errors.Wrapf(ErrValidation, "外键 %s.%s=%d 不存在", table, fk.Field, id)
		}
	}

	// 插入与更新共用同一套枚举校验，AI 生成的数据也走这条路
	for _, field := range []string{"priority", "status"} {
		if v, ok := values[field]; ok {
			if err := validateEnum(table, field, v); err != nil {
				return 0, err
			}
		}
	}

	if _, ok := values["progress"]; ok {
		values["progress"] = clampProgress(values["progress"])
	}
	if isEmpty(values["created_at"]) {
		values["created_at"] = model.Now()
	}

	entity, err := buildModel(table, values)
	if err != nil {
		return 0, err
	}
	if err := s.db.Create(entity).Error; err != nil {
		s.log.Error("插入记录失败", "table", table, "error", err)
		return 0, err
	}
	return entityID(entity), nil
}

// GetAll 返回指定表的全部行，外键的父表名称以 left join 方式补充
// （person_name / category_name），外键悬空时父字段为空而不丢行。
func (s *Store) GetAll(table string) ([]Row, error) {
	var rows []map[string]any
	var err error

	switch table {
	case schema.TablePerson:
		err = s.db.Table("personal_info").Order("id").Find(&rows).Error
	case schema.TableCategory:
		err = s.db.Table("categories").Order("id").Find(&rows).Error
	case schema.TableHonor:
		err = s.db.Table("honors h").
			Select("h.*, c.name AS category_name, p.name AS person_name").
			Joins("LEFT JOIN categories c ON h.category_id = c.id").
			Joins("LEFT JOIN personal_info p ON h.person_id = p.id").
			Order("h.issue_date DESC").
			Find(&rows).Error
	case schema.TableSchedule:
		err = s.db.Table("schedules s").
			Select("s.*, p.name AS person_name").
			Joins("LEFT JOIN personal_info p ON s.person_id = p.id").
			Order("s.start_time").
			Find(&rows).Error
	case schema.TableEducation:
		err = s.db.Table("education e").
			Select("e.*, p.name AS person_name").
			Joins("LEFT JOIN personal_info p ON e.person_id = p.id").
			Order("e.start_date DESC").
			Find(&rows).Error
	case schema.TableRecord:
		err = s.db.Table("records r").
			Select("r.*, p.name AS person_name").
			Joins("LEFT JOIN personal_info p ON r.person_id = p.id").
			Order("r.id").
			Find(&rows).Error
	default:
		return nil, errors.Wrap(schema.ErrUnknownEntity, table)
	}

	if err != nil {
		s.log.Error("查询记录失败", "table", table, "error", err)
		return nil, err
	}
	return rows, nil
}

// UpdateField 更新单个字段；字段名必须在 schema 白名单内，
// 这是对来自不可信输入的动态字段更新的防护。
func (s *Store) UpdateField(table string, id uint, field string, value any) error {
	if _, err := schema.Fields(table); err != nil {
		return err
	}
	if !schema.HasField(table, field) {
		return errors.Wrapf(ErrInvalidField, "%s.%s", table, field)
	}

	if field == "progress" {
		value = clampProgress(value)
	} else if err := validateEnum(table, field, value); err != nil {
		return err
	}

	result := s.db.Table(table).Where("id = ?", id).Update(field, value)
	if result.Error != nil {
		s.log.Error("更新字段失败", "table", table, "id", id, "field", field, "error", result.Error)
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errors.Wrapf(ErrNotFound, "%s id=%d", table, id)
	}
	return nil
}

// UpdateFields 按白名单逐字段更新一行（个人信息表单的多字段提交）
func (s *Store) UpdateFields(table string, id uint, values map[string]any) error {
	for field, value := range values {
		if err := s.UpdateField(table, id, field, value); err != nil {
			return err
		}
	}
	return nil
}

// Delete 删除一行；删除 personal_info 时在同一事务内
// 级联删除 honors/schedules/education/records，要么全部成功要么全部回滚。
func (s *Store) Delete(table string, id uint) error {
	if _, err := schema.Fields(table); err != nil {
		return err
	}

	if table == schema.TablePerson {
		return s.db.Transaction(func(tx *gorm.DB) error {
			for _, child := range []any{
				&model.Honor{}, &model.Schedule{},
				&model.Education{}, &model.Record{},
			} {
				if err := tx.Where("person_id = ?", id).Delete(child).Error; err != nil {
					return err
				}
			}
			return tx.Delete(&model.Person{}, id).Error
		})
	}

	if err := s.db.Delete(modelFor(table), id).Error; err != nil {
		s.log.Error("删除记录失败", "table", table, "id", id, "error", err)
		return err
	}
	return nil
}

func modelFor(table string) any {
	switch table {
	case schema.TablePerson:
		return &model.Person{}
	case schema.TableCategory:
		return &model.Category{}
	case schema.TableHonor:
		return &model.Honor{}
	case schema.TableSchedule:
		return &model.Schedule{}
	case schema.TableEducation:
		return &model.Education{}
	default:
		return &model.Record{}
	}
}

// Count 返回指定表的行数
func (s *Store) Count(table string) (int64, error) {
	if _, err := schema.Fields(table); err != nil {
		return 0, err
	}
	var count int64
	if err := s.db.Table(table).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// GroupCount 单字段分组计数（系统概览的分布图数据）
type GroupCount struct {
	Value string `json:"value"`
	Count int64  `json:"count"`
}

func (s *Store) GroupCount(table, field string) ([]GroupCount, error) {
	if !schema.HasField(table, field) {
		return nil, errors.Wrapf(ErrInvalidField, "%s.%s", table, field)
	}
	var result []GroupCount
	err := s.db.Table(table).
		Select(fmt.Sprintf("%s AS value, COUNT(*) AS count", field)).
		Group(field).
		Find(&result).Error
	if err != nil {
		return nil, err
	}
	return result, nil
}

// RecentRecords 最近创建的 n 条记录
func (s *Store) RecentRecords(n int) ([]Row, error) {
	var rows []map[string]any
	err := s.db.Table("records").
		Select("title, created_at").
		Order("created_at DESC").
		Limit(n).
		Find(&rows).Error
	return rows, err
}

// UpcomingSchedules 从今天起即将开始的 n 条日程
func (s *Store) UpcomingSchedules(n int) ([]Row, error) {
	today := time.Now().Format("2006-01-02")
	var rows []map[string]any
	err := s.db.Table("schedules").
		Select("title, start_time").
		Where("start_time >= ?", today).
		Order("start_time").
		Limit(n).
		Find(&rows).Error
	return rows, err
}

// validateEnum 校验优先级与日程状态的取值，空值放过（走模型默认值）
func validateEnum(table, field string, value any) error {
	switch field {
	case "priority":
		if str := asString(value); str != "" && !contains(model.Priorities(), str) {
			return errors.Wrapf(ErrValidation, "非法的优先级 %q", str)
		}
	case "status":
		if table == schema.TableSchedule {
			if str := asString(value); str != "" && !contains(model.ScheduleStatuses(), str) {
				return errors.Wrapf(ErrValidation, "非法的日程状态 %q", str)
			}
		}
	}
	return nil
}

func (s *Store) rowExists(tx *gorm.DB, table string, id uint) (bool, error) {
	var count int64
	if err := tx.Table(table).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// buildModel 将字段映射转换为对应的类型化模型
func buildModel(table string, values map[string]any) (any, error) {
	switch table {
	case schema.TablePerson:
		return &model.Person{
			Name:           asString(values["name"]),
			Gender:         asString(values["gender"]),
			BirthDate:      asString(values["birth_date"]),
			Email:          asString(values["email"]),
			Phone:          asString(values["phone"]),
			Address:        asString(values["address"]),
			Occupation:     asString(values["occupation"]),
			EducationLevel: asString(values["education_level"]),
			CreatedAt:      asString(values["created_at"]),
		}, nil
	case schema.TableCategory:
		return &model.Category{
			Name:        asString(values["name"]),
			Description: asString(values["description"]),
		}, nil
	case schema.TableHonor:
		return &model.Honor{
			PersonID:         asUint(values["person_id"]),
			CategoryID:       asUintPtr(values["category_id"]),
			Title:            asString(values["title"]),
			Description:      asString(values["description"]),
			IssuingAuthority: asString(values["issuing_authority"]),
			IssueDate:        asString(values["issue_date"]),
			Priority:         asString(values["priority"]),
			Progress:         asInt(values["progress"]),
			Attachment:       asString(values["attachment"]),
			CreatedAt:        asString(values["created_at"]),
		}, nil
	case schema.TableSchedule:
		return &model.Schedule{
			PersonID:    asUint(values["person_id"]),
			Title:       asString(values["title"]),
			Description: asString(values["description"]),
			StartTime:   asString(values["start_time"]),
			EndTime:     asString(values["end_time"]),
			Location:    asString(values["location"]),
			Status:      asString(values["status"]),
			Priority:    asString(values["priority"]),
			Reminder:    asString(values["reminder"]),
			CreatedAt:   asString(values["created_at"]),
		}, nil
	case schema.TableEducation:
		return &model.Education{
			PersonID:     asUint(values["person_id"]),
			Institution:  asString(values["institution"]),
			Degree:       asString(values["degree"]),
			Major:        asString(values["major"]),
			StartDate:    asString(values["start_date"]),
			EndDate:      asString(values["end_date"]),
			GPA:          asFloat(values["gpa"]),
			Achievements: asString(values["achievements"]),
			CreatedAt:    asString(values["created_at"]),
		}, nil
	case schema.TableRecord:
		personID := asUint(values["person_id"])
		if personID == 0 {
			// 通用记录默认关联到默认个人信息
			personID = 1
		}
		return &model.Record{
			PersonID:   personID,
			Title:      asString(values["title"]),
			Category:   asString(values["category"]),
			Notes:      asString(values["notes"]),
			Priority:   asString(values["priority"]),
			Progress:   asInt(values["progress"]),
			CreatedAt:  asString(values["created_at"]),
			Attachment: asString(values["attachment"]),
		}, nil
	}
	return nil, errors.Wrap(schema.ErrUnknownEntity, table)
}

func entityID(entity any) uint {
	switch e := entity.(type) {
	case *model.Person:
		return e.ID
	case *model.Category:
		return e.ID
	case *model.Honor:
		return e.ID
	case *model.Schedule:
		return e.ID
	case *model.Education:
		return e.ID
	case *model.Record:
		return e.ID
	}
	return 0
}

func isEmpty(v any) bool {
	switch t := v.(type) {
	case nil:
		return true
	case string:
		return strings.TrimSpace(t) == ""
	case int, int64, uint, float64:
		return asInt(v) == 0
	default:
		return strings.TrimSpace(asString(t)) == ""
	}
}

func clampProgress(v any) int {
	p := asInt(v)
	if p < 0 {
		return 0
	}
	if p > 100 {
		return 100
	}
	return p
}

func contains(list []string, v string) bool {
	for _, item := range list {
		if item == v {
			return true
		}
	}
	return false
}

// JSON 解码出的数字是 float64，表单里可能是字符串，这里统一转换

func asString(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case float64:
		if t == float64(int64(t)) {
			return strconv.FormatInt(int64(t), 10)
		}
		return strconv.FormatFloat(t, 'f', -1, 64)
	default:
		return fmt.Sprintf("%v", t)
	}
}

func asInt(v any) int {
	switch t := v.(type) {
	case nil:
		return 0
	case int:
		return t
	case int64:
		return int(t)
	case uint:
		return int(t)
	case float64:
		return int(t)
	case string:
		n, _ := strconv.Atoi(strings.TrimSpace(t))
		return n
	default:
		return 0
	}
}

func asUint(v any) uint {
	n := asInt(v)
	if n < 0 {
		return 0
	}
	return uint(n)
}

func asUintPtr(v any) *uint {
	n := asUint(v)
	if n == 0 {
		return nil
	}
	return &n
}

func asFloat(v any) float64 {
	switch t := v.(type) {
	case nil:
		return 0
	case float64:
		return t
	case int:
		return float64(t)
	case string:
		f, _ := strconv.ParseFloat(strings.TrimSpace(t), 64)
		return f
	default:
		return 0
	}
}
