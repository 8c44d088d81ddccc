package utils

import (
	"strings"
	"time"
)

// Layouts aceitos para datas digitadas como texto nas planilhas
var dateLayouts = []string{
	time.DateOnly,
	time.DateTime,
	"02/01/2006",
	"02/01/2006 15:04:05",
	"02/01/2006 15:04",
	time.RFC3339,
}

// ParseDate interpreta uma data textual. O segundo retorno é falso quando
// nenhum layout reconhece o valor.
func ParseDate(dateStr string) (time.Time, bool) {
	dateStr = strings.TrimSpace(dateStr)
	if dateStr == "" {
		return time.Time{}, false
	}

	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, dateStr); err == nil {
			return t, true
		}
	}

	return time.Time{}, false
}
