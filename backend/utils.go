package main

import (
	"time"

	"travelplanner/itinerary"
)

const dateLayout = "2006-01-02"

// maxScheduledDay 超過這個天數不排日期
const maxScheduledDay = 3660

// ========== 輔助函數 ==========

// scheduleDays 以 startDate 為第 1 天，替每一天加上日期。
// startDate 空白或格式錯誤時回傳 nil。
func scheduleDays(startDate string, days itinerary.Itinerary) []ScheduledDay {
	if startDate == "" || len(days) == 0 {
		return nil
	}
	start, err := time.Parse(dateLayout, startDate)
	if err != nil {
		return nil
	}

	result := make([]ScheduledDay, len(days))
	for i, d := range days {
		date := ""
		if d.Day > 0 && d.Day <= maxScheduledDay {
			date = start.AddDate(0, 0, d.Day-1).Format(dateLayout)
		}
		result[i] = ScheduledDay{
			Day:    d.Day,
			Date:   date,
			Places: d.Places,
		}
	}

	return result
}
