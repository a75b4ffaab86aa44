package ai

import (
	"fmt"
	"strings"
)

const systemPrompt = `你是一个专业的AI学习导师，擅长根据学习者的需求生成个性化的学习计划。你的回复简洁、专业、有针对性。`

// QA is an answered clarification question carried into the plan prompt.
type QA struct {
	Question string
	Answer   string
}

func BuildClarificationPrompt(topic, goal, currentLevel string) string {
	return fmt.Sprintf(`
作为AI学习导师，用户想学习"%s"，目标是"%s"，当前水平是"%s"。

请生成3-5个针对性的澄清问题，帮助更好地了解用户需求，生成更个性化的学习计划。

要求：
1. 问题要针对学习内容的特点
2. 包含不同类型的问题（选择、填空）
3. 问题要有深度，能帮助精确定制学习路径
4. 用JSON数组格式返回，每道问题包含：
   - question: 问题内容
   - type: "choice" 或 "text"
   - options: 选项数组（如果是选择题）

示例格式：
`+"```json"+`
[
  {
    "question": "你学习Python的主要目的是什么？",
    "type": "choice",
    "options": ["Web开发", "数据分析", "机器学习", "自动化脚本"]
  },
  {
    "question": "你每天能投入多少时间学习？",
    "type": "text",
    "options": null
  }
]
`+"```"+`

请直接返回JSON，不要有其他内容。
`, topic, goal, currentLevel)
}

func BuildPlanPrompt(topic, goal, currentLevel, preference string, duration int, answers []QA) string {
	lines := make([]string, 0, len(answers))
	for _, qa := range answers {
		lines = append(lines, fmt.Sprintf("Q: %s\nA: %s", qa.Question, qa.Answer))
	}
	clarificationText := strings.Join(lines, "\n")

	return fmt.Sprintf(`
作为AI学习导师，请为以下学习需求生成个性化的学习计划：

**基础信息**：
- 学习主题: %s
- 学习目标: %s
- 当前水平: %s
- 学习偏好: %s
- 单节课时长: %d分钟

**澄清信息**：
%s

请生成一个完整的学习计划，要求：
1. 课程标题要体现学习内容
2. 3-5个章节，每个章节包含：标题、描述、学习目标、学习方式、预计时长
3. 学习方式要结合用户偏好和澄清问题的答案
4. 章节要有逻辑递进性

请用JSON格式返回：
`+"```json"+`
{
  "course_title": "课程标题",
  "chapters": [
    {
      "title": "章节标题",
      "description": "章节描述",
      "learning_goal": "学习目标",
      "learning_method": "理论/实践/理论+实践",
      "estimated_duration": 预计时长分钟数
    }
  ]
}
`+"```"+`
`, topic, goal, currentLevel, preference, duration, clarificationText)
}

func BuildContentPrompt(topic, chapterTitle, goal, method string) string {
	return fmt.Sprintf(`
作为AI学习导师，请为"%s"的"%s"章节生成学习内容。

学习目标：%s
学习方式：%s

要求：
1. 生成详细的学习内容，包括概念解释、原理说明
2. 提供2-3个实际示例或代码片段
3. 包含动手操作的步骤指南
4. 内容要有深度，但也要通俗易懂
5. 使用Markdown格式

请直接返回学习内容。
`, topic, chapterTitle, goal, method)
}

func BuildAssessmentPrompt(topic, chapterTitle, learningGoal string) string {
	return fmt.Sprintf(`
作为AI学习导师，请为"%s"的"%s"章节生成3个评估问题。

**学习目标**: %s

要求：
1. 包含不同类型的问题（判断题、简答题、实践题）
2. 问题要有针对性，能检验学习效果
3. 简答题要提供参考答案要点

请用JSON格式返回：
`+"```json"+`
[
  {
    "question": "问题内容",
    "type": "judgment/short/practice",
    "expected_answer": "参考答案"
  }
]
`+"```"+`
`, topic, chapterTitle, learningGoal)
}

func BuildEvaluationPrompt(question, userAnswer, expectedAnswer string) string {
	return fmt.Sprintf(`
作为AI学习导师，请评估用户对以下问题的回答：

问题：%s
参考答案：%s
用户回答：%s

请评估用户回答的质量，返回JSON格式：
`+"```json"+`
{
  "correct": true/false,
  "score": 0-100的分数,
  "feedback": "简短的评价和反馈"
}
`+"```"+`
`, question, expectedAnswer, userAnswer)
}
