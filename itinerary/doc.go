// Package itinerary 把大模型產生的自由格式行程文字，解析成逐日的景點清單。
//
// 輸入是以 "\n" 分行的純文字，"第N天" 開啟新的一天，"上午/中午/下午/晚上"
// 開頭的行提供景點描述。輸出為 []Day，保持原文出現順序，不重新排序。
// 解析對任何字串都不會失敗：空字串得到空的 Itinerary。
package itinerary
