package itinerary

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Extractor 從一段描述中取出零或多個地名。
type Extractor func(description string) []string

var (
	bracketRe     = regexp.MustCompile(`【([^】]+)】`)
	asciiParenRe  = regexp.MustCompile(`\(.*?\)`)
	cjkParenRe    = regexp.MustCompile(`（.*?）`)
	trailingSepRe = regexp.MustCompile(`[、,，.。;；]$`)
)

// clauseRes 每個 nonPlaceKeyword 連同後面的子句（到下一個逗號或句號為止）。
var clauseRes = compileClauseRes(nonPlaceKeywords)

func compileClauseRes(keywords []string) []*regexp.Regexp {
	res := make([]*regexp.Regexp, len(keywords))
	for i, kw := range keywords {
		res[i] = regexp.MustCompile(regexp.QuoteMeta(kw) + `[^,，.。]*[,，.。]?`)
	}
	return res
}

// gazetteerExtractor 依 names 的順序收集所有出現在描述中的名稱。
func gazetteerExtractor(names []string) Extractor {
	var vocab placeSet
	for _, name := range names {
		if isPlaceName(name) {
			vocab.add(name)
		}
	}
	list := vocab.list()

	return func(description string) []string {
		var found []string
		for _, name := range list {
			if strings.Contains(description, name) {
				found = append(found, name)
			}
		}
		return found
	}
}

// extractBracketed 取出【】中的名稱，略過【免费】這類屬性說明。
func extractBracketed(description string) []string {
	var found placeSet
	for _, m := range bracketRe.FindAllStringSubmatch(description, -1) {
		name := strings.TrimSpace(m[1])
		if !isPlaceName(name) || isGeneric(name) {
			continue
		}
		found.add(name)
	}
	return found.items
}

func isGeneric(name string) bool {
	for _, term := range genericTerms {
		if strings.Contains(name, term) {
			return true
		}
	}
	return false
}

// extractSingleName 最後手段：把描述中的說明與動作子句去掉，剩下的當成地名。
func extractSingleName(description string) []string {
	cleaned := asciiParenRe.ReplaceAllString(description, "")
	cleaned = cjkParenRe.ReplaceAllString(cleaned, "")

	for _, re := range clauseRes {
		cleaned = re.ReplaceAllString(cleaned, "")
	}
	for _, kw := range nonPlaceKeywords {
		cleaned = strings.TrimSuffix(cleaned, kw)
	}

	cleaned = strings.TrimSpace(trailingSepRe.ReplaceAllString(cleaned, ""))

	if utf8.RuneCountInString(cleaned) < 2 || strings.Contains(cleaned, transitMarker) {
		return nil
	}
	if !isPlaceName(cleaned) {
		return nil
	}
	return []string{cleaned}
}

// isPlaceName 非空，而且不是只有標點或符號。
func isPlaceName(s string) bool {
	for _, r := range s {
		if !unicode.IsPunct(r) && !unicode.IsSymbol(r) && !unicode.IsSpace(r) {
			return true
		}
	}
	return false
}
