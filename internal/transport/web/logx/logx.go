package logx

import (
	"fmt"
	"log"
	"strings"
)

// Хелперы для key=value логов с request id поверх *log.Logger.

func Info(l *log.Logger, reqID, op, msg string, kv ...any) {
	l.Printf("lvl=info req_id=%s op=%s msg=%q%s", reqID, op, msg, pairs(kv))
}

func Error(l *log.Logger, reqID, op, msg string, err error, kv ...any) {
	l.Printf("lvl=error req_id=%s op=%s msg=%q err=%q%s", reqID, op, msg, errText(err), pairs(kv))
}

func errText(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}

// kv — чередование ключ/значение; непарный хвост пишем как есть
func pairs(kv []any) string {
	if len(kv) == 0 {
		return ""
	}
	var sb strings.Builder
	for i := 0; i+1 < len(kv); i += 2 {
		sb.WriteString(fmt.Sprintf(" %v=%v", kv[i], kv[i+1]))
	}
	if len(kv)%2 == 1 {
		sb.WriteString(fmt.Sprintf(" %v", kv[len(kv)-1]))
	}
	return sb.String()
}
