package domain

import (
	"strings"
	"time"
)

// Contact контакт клиента: идентификация и способы связи
type Contact struct {
	ID      string
	Name    string
	Phone   string
	Email   string
	Address string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// NormalizePhone приводит номер телефона к канонической форме (только цифры)
// Дедупликация контактов выполняется по нормализованному номеру
func NormalizePhone(phone string) string {
	var b strings.Builder
	for _, r := range phone {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
