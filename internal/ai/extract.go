package ai

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
)

// Source marks whether an extracted structure came from the model's reply
// or from the deterministic fallback generator.
type Source string

const (
	SourceModel    Source = "model"
	SourceFallback Source = "fallback"
)

var jsonFence = regexp.MustCompile("```json\\s*\\n([\\s\\S]*?)```")

// payload returns the candidate JSON text: the interior of the first
// ```json fence when present, otherwise the whole reply.
func payload(raw string) string {
	if m := jsonFence.FindStringSubmatch(raw); m != nil {
		return strings.TrimSpace(m[1])
	}
	return strings.TrimSpace(raw)
}

type PlanChapter struct {
	Title             string `json:"title"`
	Description       string `json:"description"`
	LearningGoal      string `json:"learning_goal"`
	LearningMethod    string `json:"learning_method"`
	EstimatedDuration int    `json:"estimated_duration"`
}

type Plan struct {
	CourseTitle string        `json:"course_title"`
	Chapters    []PlanChapter `json:"chapters"`
}

// ExtractPlan never fails: when the reply holds no usable plan it returns
// the deterministic fallback built from topic/preference/duration. Parsed
// chapters with an empty method or a non-positive duration inherit the
// stated preference and duration.
func ExtractPlan(raw, topic, preference string, duration int) (Plan, Source) {
	var plan Plan
	if err := json.Unmarshal([]byte(payload(raw)), &plan); err == nil && validPlan(plan) {
		for i := range plan.Chapters {
			if plan.Chapters[i].LearningMethod == "" {
				plan.Chapters[i].LearningMethod = preference
			}
			if plan.Chapters[i].EstimatedDuration <= 0 {
				plan.Chapters[i].EstimatedDuration = duration
			}
		}
		return plan, SourceModel
	}
	return fallbackPlan(topic, preference, duration), SourceFallback
}

func validPlan(p Plan) bool {
	if p.CourseTitle == "" || len(p.Chapters) == 0 {
		return false
	}
	for _, c := range p.Chapters {
		if c.Title == "" {
			return false
		}
	}
	return true
}

func fallbackPlan(topic, preference string, duration int) Plan {
	return Plan{
		CourseTitle: topic + "学习课程",
		Chapters: []PlanChapter{
			{Title: "基础概念", Description: "学习核心概念", LearningGoal: "掌握基础", LearningMethod: preference, EstimatedDuration: duration},
			{Title: "进阶内容", Description: "深入学习", LearningGoal: "深入理解", LearningMethod: preference, EstimatedDuration: duration},
			{Title: "实践应用", Description: "动手实践", LearningGoal: "能够应用", LearningMethod: preference, EstimatedDuration: duration},
		},
	}
}

type ClarificationItem struct {
	Question string   `json:"question"`
	Type     string   `json:"type"`
	Options  []string `json:"options"`
}

// ExtractClarifications never fails: malformed or incomplete replies
// yield three generic questions derived from the topic.
func ExtractClarifications(raw, topic string) ([]ClarificationItem, Source) {
	var items []ClarificationItem
	if err := json.Unmarshal([]byte(payload(raw)), &items); err == nil && validClarifications(items) {
		return items, SourceModel
	}
	return fallbackClarifications(topic), SourceFallback
}

func validClarifications(items []ClarificationItem) bool {
	if len(items) == 0 {
		return false
	}
	for _, it := range items {
		if it.Question == "" || it.Type == "" {
			return false
		}
	}
	return true
}

func fallbackClarifications(topic string) []ClarificationItem {
	return []ClarificationItem{
		{Question: fmt.Sprintf("你学习%s每天能投入多少时间？", topic), Type: "text", Options: nil},
		{Question: "你更倾向于哪种学习方式？", Type: "choice", Options: []string{"理论学习", "动手实践", "理论+实践"}},
		{Question: "你有相关的学习经验吗？", Type: "choice", Options: []string{"完全没有", "了解一些", "有一定基础", "比较熟练"}},
	}
}

type AssessmentItem struct {
	Question       string `json:"question"`
	Type           string `json:"type"`
	ExpectedAnswer string `json:"expected_answer"`
}

// ExtractAssessment never fails: unusable replies yield generic questions
// built from the chapter title and learning goal.
func ExtractAssessment(raw, chapterTitle, learningGoal string) ([]AssessmentItem, Source) {
	var items []AssessmentItem
	if err := json.Unmarshal([]byte(payload(raw)), &items); err == nil && validAssessment(items) {
		return items, SourceModel
	}
	return fallbackAssessment(chapterTitle, learningGoal), SourceFallback
}

func validAssessment(items []AssessmentItem) bool {
	if len(items) == 0 {
		return false
	}
	for _, it := range items {
		if it.Question == "" {
			return false
		}
	}
	return true
}

func fallbackAssessment(chapterTitle, learningGoal string) []AssessmentItem {
	return []AssessmentItem{
		{Question: fmt.Sprintf("请简述%s的核心概念", chapterTitle), Type: "short", ExpectedAnswer: ""},
		{Question: fmt.Sprintf("判断：%s是本章的学习目标", learningGoal), Type: "judgment", ExpectedAnswer: "正确"},
	}
}

type Evaluation struct {
	Correct  bool   `json:"correct"`
	Feedback string `json:"feedback"`
	Score    int    `json:"score"`
}

// ExtractEvaluation never fails: when the reply holds no usable verdict
// the answer is graded by case-insensitive substring containment of the
// expected answer, scoring 100 or 50.
func ExtractEvaluation(raw, userAnswer, expectedAnswer string) (Evaluation, Source) {
	var ev Evaluation
	if err := json.Unmarshal([]byte(payload(raw)), &ev); err == nil && ev.Feedback != "" {
		return ev, SourceModel
	}
	return fallbackEvaluation(userAnswer, expectedAnswer), SourceFallback
}

func fallbackEvaluation(userAnswer, expectedAnswer string) Evaluation {
	correct := strings.Contains(strings.ToLower(userAnswer), strings.ToLower(expectedAnswer))
	if correct {
		return Evaluation{Correct: true, Feedback: "回答正确！", Score: 100}
	}
	return Evaluation{Correct: false, Feedback: "建议再学习一下相关内容", Score: 50}
}

// FallbackContent is the chapter content served when the completion
// transport fails or the provider runs keyless. Plan/clarification/
// assessment replies go through the extractors above; free-form markdown
// has no shape to validate, so callers only fall back on an empty reply,
// a transport error or the mock notice.
func FallbackContent(chapterTitle, learningGoal string) string {
	return fmt.Sprintf(`# %s

## 简介
欢迎学习本章内容！本章将帮助您达成学习目标：%s。

## 核心知识点

- 概念一：基础定义和原理
- 概念二：关键术语解释
- 概念三：应用场景
- 概念四：最佳实践

## 详细讲解

### 1. 基础概念
（这里应该是详细的讲解内容...）

### 2. 进阶内容
（这里应该是进阶内容...）

## 小贴士
- 建议边学边练
- 多做笔记加深记忆
- 实践出真知
`, chapterTitle, learningGoal)
}
