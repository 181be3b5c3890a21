package stats

import (
	"fmt"
	"time"

	"personal-info-system/internal/global/database"
	"personal-info-system/internal/global/response"
	"personal-info-system/internal/schema"
	"personal-info-system/tools"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"
)

// Overview 各表的记录数
func Overview(c *gin.Context) {
	counts := gin.H{}
	for _, table := range []string{
		schema.TableRecord, schema.TableHonor,
		schema.TableSchedule, schema.TableEducation,
	} {
		count, err := db.Count(table)
		if err != nil {
			log.Error("统计表行数失败", "table", table, "error", err)
			response.Fail(c, response.MapError(err))
			return
		}
		counts[table] = count
	}
	response.Success(c, counts)
}

// Distribution 荣誉按优先级、日程按状态的分布
func Distribution(c *gin.Context) {
	honorsByPriority, err := db.GroupCount(schema.TableHonor, "priority")
	if err != nil {
		log.Error("统计荣誉优先级分布失败", "error", err)
		response.Fail(c, response.MapError(err))
		return
	}
	schedulesByStatus, err := db.GroupCount(schema.TableSchedule, "status")
	if err != nil {
		log.Error("统计日程状态分布失败", "error", err)
		response.Fail(c, response.MapError(err))
		return
	}
	response.Success(c, gin.H{
		"honors_by_priority":  honorsByPriority,
		"schedules_by_status": schedulesByStatus,
	})
}

// Recent 最近创建的记录与即将到来的日程
func Recent(c *gin.Context) {
	records, err := db.RecentRecords(5)
	if err != nil {
		log.Error("查询最近记录失败", "error", err)
		response.Fail(c, response.MapError(err))
		return
	}
	upcoming, err := db.UpcomingSchedules(5)
	if err != nil {
		log.Error("查询即将到来的日程失败", "error", err)
		response.Fail(c, response.MapError(err))
		return
	}
	response.Success(c, gin.H{
		"recent_records":     records,
		"upcoming_schedules": upcoming,
	})
}

// recordInExcel 导出表格的一行
type recordInExcel struct {
	ID         uint   `gorm:"column:id" excel:"ID"`
	Title      string `gorm:"column:title" excel:"标题"`
	Category   string `gorm:"column:category" excel:"类别"`
	Notes      string `gorm:"column:notes" excel:"备注"`
	Priority   string `gorm:"column:priority" excel:"优先级"`
	Progress   int    `gorm:"column:progress" excel:"进度"`
	PersonName string `gorm:"column:person_name" excel:"所属人"`
	CreatedAt  string `gorm:"column:created_at" excel:"创建时间"`
}

// Export 把全部记录导出为 xlsx
func Export(c *gin.Context) {
	var records []recordInExcel
	if err := database.DB.Table("records r").
		Select("r.id, r.title, r.category, r.notes, r.priority, r.progress, r.created_at, p.name AS person_name").
		Joins("LEFT JOIN personal_info p ON r.person_id = p.id").
		Order("r.id").
		Scan(&records).Error; err != nil {
		log.Error("查询 records 表错误", "error", err)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	f := excelize.NewFile()
	defer func() {
		tools.PanicOnErr(f.Close())
	}()
	if err := tools.ExportToExcel(f, "", records); err != nil {
		log.Error("导出 excel 错误", "error", err)
		response.Fail(c, response.ErrServerInternal.WithOrigin(err))
		return
	}

	filename := fmt.Sprintf("records_%d.xlsx", time.Now().Unix())
	c.Header("Content-Type", "application/octet-stream")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))
	c.Header("Content-Transfer-Encoding", "binary")
	c.Header("Cache-Control", "must-revalidate")
	c.Header("Pragma", "public")
	c.Header("Expires", "0")
	_ = f.Write(c.Writer)
}
