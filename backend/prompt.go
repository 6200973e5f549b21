package main

import (
	"errors"
	"fmt"
	"strings"
)

// planOutline 兩種輸入共用的輸出格式；最後一行的旅行路线會被 itinerary.ParseRoute 讀取。
const planOutline = `请按照以下格式返回旅行规划：

1. 行程概览：
   - 旅行主题：
   - 适合人群：
   - 行程亮点：

2. 详细行程安排（按天）：
   - 第1天：
     - 上午：
     - 中午：
     - 下午：
     - 晚上：

3. 住宿推荐：
   - 推荐区域：
   - 酒店类型：

4. 餐饮推荐：
   - 特色美食：
   - 推荐餐厅：

5. 预算分析：
   - 交通费用：
   - 住宿费用：
   - 餐饮费用：
   - 门票费用：
   - 其他费用：
   - 总计：
`

const routeInstruction = `请在最后单独换行并按照以下格式返回旅行规划中的所有旅游景点：

旅行路线：xxx->xxx->xxx->xxx`

func (r TravelRequest) validate() error {
	if r.IsVoiceInput {
		if strings.TrimSpace(r.Preferences) == "" {
			return errors.New("voice input requires preferences text")
		}
		return nil
	}
	if strings.TrimSpace(r.Destination) == "" {
		return errors.New("destination is required")
	}
	if r.Duration <= 0 {
		return errors.New("duration must be positive")
	}
	return nil
}

// companions 同行人數：group 用填寫的人數，couple 為 2，其餘為 1
func (r TravelRequest) companions() int {
	switch r.CompanionsType {
	case "group":
		return r.CompanionsCount
	case "couple":
		return 2
	default:
		return 1
	}
}

const (
	voicePromptTmpl = "你是一个专业的旅行规划师AI助手。请根据用户的语音输入内容为用户生成详细的旅行规划：\n  \n" +
		"用户需求：%s\n\n%s\n请确保规划内容详细、实用且满足用户的需求。\n%s"

	manualPromptTmpl = "你是一个专业的旅行规划师AI助手。请根据以下信息为用户生成详细的旅行规划：\n  \n" +
		"目的地：%s\n旅行天数：%d天\n预算：%d元\n同行人数：%d人\n旅行偏好：%s\n\n" +
		"%s\n请确保规划内容详细、实用且符合用户预算。\n%s"
)

// buildPrompt 區分語音輸入（整段文字就是需求）與表單輸入
func buildPrompt(r TravelRequest) string {
	if r.IsVoiceInput {
		return fmt.Sprintf(voicePromptTmpl, r.Preferences, planOutline, routeInstruction)
	}
	return fmt.Sprintf(manualPromptTmpl,
		r.Destination, r.Duration, r.Budget, r.companions(), r.Preferences,
		planOutline, routeInstruction)
}
