package nlu

import "fmt"

// promptTemplate 固定的表结构摘要，AI 根据它把自然语言转成结构化动作
const promptTemplate = `
你是一个信息管理AI助手，数据库表结构如下：
- personal_info(id, name, gender, birth_date, email, phone, address, occupation, education_level)
- records(id, person_id, title, category, notes, priority, progress, created_at, attachment)
- honors(id, person_id, category_id, title, description, issuing_authority, issue_date, priority, progress)
- schedules(id, person_id, title, description, start_time, end_time, location, status, priority, reminder)
- education(id, person_id, institution, degree, major, start_date, end_date, gpa, achievements)
- categories(id, name, description)

请根据用户输入的自然语言，判断其意图和操作的表：
- 查询个人信息（如"我的基本信息"）
- 新增荣誉（如"我获得了蓝桥杯一等奖"）
- 查询日程（如"查看我的日程"）
- 修改进度（如"把项目进度更新为50%%"）

请返回一个JSON对象：
{
  "action": "query" | "insert" | "update" | "delete",
  "table": "personal_info" | "records" | "honors" | "schedules" | "education",
  "criteria": "筛选条件或识别关键词",
  "data": {
      // 根据操作的表不同，字段也不同
  }
}
用户输入：%s
`

func buildPrompt(userInput string) string {
	return fmt.Sprintf(promptTemplate, userInput)
}
