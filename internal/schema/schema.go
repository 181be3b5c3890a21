// Package schema 静态描述六张数据表的字段、类型与外键关系，
// 供存储层校验插入数据和动态字段更新时做白名单检查。
package schema

import (
	"github.com/pkg/errors"
)

// 表名常量，与持久化表名一一对应
const (
	TablePerson    = "personal_info"
	TableCategory  = "categories"
	TableHonor     = "honors"
	TableSchedule  = "schedules"
	TableEducation = "education"
	TableRecord    = "records"
)

// ErrUnknownEntity 查询了注册表中不存在的表
var ErrUnknownEntity = errors.New("未知的数据表")

type FieldType string

const (
	TypeString FieldType = "string"
	TypeInt    FieldType = "int"
	TypeFloat  FieldType = "float"
)

// Field 单个字段的描述
type Field struct {
	Name     string
	Type     FieldType
	Required bool
}

// ForeignKey 外键描述；OnDeleteCascade 表示父记录删除时本表记录是否随之删除
type ForeignKey struct {
	Field           string
	Parent          string
	OnDeleteCascade bool
}

var tableFields = map[string][]Field{
	TablePerson: {
		{Name: "name", Type: TypeString, Required: true},
		{Name: "gender", Type: TypeString},
		{Name: "birth_date", Type: TypeString},
		{Name: "email", Type: TypeString},
		{Name: "phone", Type: TypeString},
		{Name: "address", Type: TypeString},
		{Name: "occupation", Type: TypeString},
		{Name: "education_level", Type: TypeString},
	},
	TableCategory: {
		{Name: "name", Type: TypeString, Required: true},
		{Name: "description", Type: TypeString},
	},
	TableHonor: {
		{Name: "person_id", Type: TypeInt, Required: true},
		{Name: "category_id", Type: TypeInt},
		{Name: "title", Type: TypeString, Required: true},
		{Name: "description", Type: TypeString},
		{Name: "issuing_authority", Type: TypeString},
		{Name: "issue_date", Type: TypeString},
		{Name: "priority", Type: TypeString},
		{Name: "progress", Type: TypeInt},
		{Name: "attachment", Type: TypeString},
	},
	TableSchedule: {
		{Name: "person_id", Type: TypeInt, Required: true},
		{Name: "title", Type: TypeString, Required: true},
		{Name: "description", Type: TypeString},
		{Name: "start_time", Type: TypeString},
		{Name: "end_time", Type: TypeString},
		{Name: "location", Type: TypeString},
		{Name: "status", Type: TypeString},
		{Name: "priority", Type: TypeString},
		{Name: "reminder", Type: TypeString},
	},
	TableEducation: {
		{Name: "person_id", Type: TypeInt, Required: true},
		{Name: "institution", Type: TypeString, Required: true},
		{Name: "degree", Type: TypeString},
		{Name: "major", Type: TypeString},
		{Name: "start_date", Type: TypeString},
		{Name: "end_date", Type: TypeString},
		{Name: "gpa", Type: TypeFloat},
		{Name: "achievements", Type: TypeString},
	},
	TableRecord: {
		{Name: "person_id", Type: TypeInt},
		{Name: "title", Type: TypeString, Required: true},
		{Name: "category", Type: TypeString, Required: true},
		{Name: "notes", Type: TypeString},
		{Name: "priority", Type: TypeString},
		{Name: "progress", Type: TypeInt},
		{Name: "attachment", Type: TypeString},
	},
}

var tableForeignKeys = map[string][]ForeignKey{
	TablePerson:   {},
	TableCategory: {},
	TableHonor: {
		{Field: "person_id", Parent: TablePerson, OnDeleteCascade: true},
		{Field: "category_id", Parent: TableCategory},
	},
	TableSchedule: {
		{Field: "person_id", Parent: TablePerson, OnDeleteCascade: true},
	},
	TableEducation: {
		{Field: "person_id", Parent: TablePerson, OnDeleteCascade: true},
	},
	TableRecord: {
		{Field: "person_id", Parent: TablePerson, OnDeleteCascade: true},
	},
}

// Tables 返回注册的全部表名，顺序固定
func Tables() []string {
	return []string{
		TablePerson, TableCategory, TableHonor,
		TableSchedule, TableEducation, TableRecord,
	}
}

// Fields 返回指定表的字段描述（不含 id 与 created_at，二者由存储层维护）
func Fields(table string) ([]Field, error) {
	fields, ok := tableFields[table]
	if !ok {
		return nil, errors.Wrap(ErrUnknownEntity, table)
	}
	return fields, nil
}

// ForeignKeys 返回指定表的外键描述
func ForeignKeys(table string) ([]ForeignKey, error) {
	fks, ok := tableForeignKeys[table]
	if !ok {
		return nil, errors.Wrap(ErrUnknownEntity, table)
	}
	return fks, nil
}

// HasField 判断字段是否属于指定表的白名单
func HasField(table, field string) bool {
	fields, ok := tableFields[table]
	if !ok {
		return false
	}
	for _, f := range fields {
		if f.Name == field {
			return true
		}
	}
	return false
}

// RequiredFields 返回指定表的必填字段名
func RequiredFields(table string) []string {
	var required []string
	for _, f := range tableFields[table] {
		if f.Required {
			required = append(required, f.Name)
		}
	}
	return required
}
