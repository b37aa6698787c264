package i18n

import (
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"
	"golang.org/x/text/language"
)

const (
	LocaleEnUS = "en-US"
	LocaleZhCN = "zh-CN"

	// DefaultLocale 未匹配时使用的语言
	DefaultLocale = LocaleEnUS
)

var supported = []language.Tag{
	language.AmericanEnglish,
	language.SimplifiedChinese,
}

var matcher = language.NewMatcher(supported)

// ResolveLocale 解析请求语言：?lang= 优先，其次 Accept-Language
func ResolveLocale(c *gin.Context) string {
	if c == nil || c.Request == nil {
		return DefaultLocale
	}
	if lang := strings.TrimSpace(c.Query("lang")); lang != "" {
		return Match(lang)
	}
	return Match(c.GetHeader("Accept-Language"))
}

// Match 将语言偏好映射到支持的 locale
func Match(preferences ...string) string {
	tags := make([]language.Tag, 0, len(preferences))
	for _, pref := range preferences {
		if strings.TrimSpace(pref) == "" {
			continue
		}
		parsed, _, err := language.ParseAcceptLanguage(pref)
		if err != nil {
			continue
		}
		tags = append(tags, parsed...)
	}
	if len(tags) == 0 {
		return DefaultLocale
	}
	_, index, confidence := matcher.Match(tags...)
	if confidence == language.No {
		return DefaultLocale
	}
	switch supported[index] {
	case language.SimplifiedChinese:
		return LocaleZhCN
	default:
		return LocaleEnUS
	}
}

// T 翻译 key，缺失时回退到默认语言，再缺失返回 key 本身
func T(locale, key string) string {
	if msgs, ok := catalog[locale]; ok {
		if msg, ok := msgs[key]; ok {
			return msg
		}
	}
	if msg, ok := catalog[DefaultLocale][key]; ok {
		return msg
	}
	return key
}

// Sprintf 翻译后格式化
func Sprintf(locale, key string, args ...interface{}) string {
	return fmt.Sprintf(T(locale, key), args...)
}
