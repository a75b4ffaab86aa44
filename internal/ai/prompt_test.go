package ai

import (
	"strings"
	"testing"
)

func TestBuildPlanPrompt(t *testing.T) {
	answers := []QA{
		{Question: "每天多少时间？", Answer: "1小时"},
		{Question: "偏好方式？", Answer: "动手实践"},
	}
	prompt := BuildPlanPrompt("Go并发", "写出并发安全的代码", "初学者", "理论+实践", 45, answers)

	for _, want := range []string{
		"学习主题: Go并发",
		"学习目标: 写出并发安全的代码",
		"当前水平: 初学者",
		"学习偏好: 理论+实践",
		"单节课时长: 45分钟",
		"Q: 每天多少时间？\nA: 1小时",
		"Q: 偏好方式？\nA: 动手实践",
		"```json",
		"course_title",
	} {
		if !strings.Contains(prompt, want) {
			t.Errorf("plan prompt missing %q", want)
		}
	}
}

func TestBuildPlanPromptEmptyOptionals(t *testing.T) {
	prompt := BuildPlanPrompt("Go并发", "", "", "理论+实践", 30, nil)
	if !strings.Contains(prompt, "学习目标: \n") {
		t.Error("empty goal must interpolate as an empty string")
	}
}

func TestBuildClarificationPrompt(t *testing.T) {
	prompt := BuildClarificationPrompt("Python", "做数据分析", "零基础")
	for _, want := range []string{`"Python"`, `"做数据分析"`, `"零基础"`, "```json", `"question"`} {
		if !strings.Contains(prompt, want) {
			t.Errorf("clarification prompt missing %q", want)
		}
	}
}

func TestBuildEvaluationPrompt(t *testing.T) {
	prompt := BuildEvaluationPrompt("什么是channel？", "一种通信机制", "goroutine间的通信机制")
	for _, want := range []string{
		"问题：什么是channel？",
		"参考答案：goroutine间的通信机制",
		"用户回答：一种通信机制",
		`"correct"`,
	} {
		if !strings.Contains(prompt, want) {
			t.Errorf("evaluation prompt missing %q", want)
		}
	}
}

func TestBuildAssessmentPrompt(t *testing.T) {
	prompt := BuildAssessmentPrompt("Go并发", "channel通信", "掌握channel的收发与关闭")
	if !strings.Contains(prompt, `"Go并发"`) || !strings.Contains(prompt, `"channel通信"`) {
		t.Error("assessment prompt must interpolate topic and chapter title")
	}
	if !strings.Contains(prompt, "**学习目标**: 掌握channel的收发与关闭") {
		t.Error("assessment prompt must interpolate the learning goal")
	}
	if !strings.Contains(prompt, "expected_answer") {
		t.Error("assessment prompt must show the expected JSON shape")
	}
}
