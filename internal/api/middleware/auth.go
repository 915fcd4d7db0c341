package middleware

import (
	"context"
	"encoding/json"
	"net/http"
)

type contextKey string

const staffIDKey contextKey = "staffID"

// HeaderStaffID заголовок идентификации сотрудника
const HeaderStaffID = "X-Staff-ID"

// Auth проверяет наличие заголовка X-Staff-ID и кладёт его в контекст.
// Служебные маршруты дашборда без него недоступны.
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		staffID := r.Header.Get(HeaderStaffID)
		if staffID == "" {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusUnauthorized)
			_ = json.NewEncoder(w).Encode(map[string]string{
				"error": "missing " + HeaderStaffID + " header",
			})
			return
		}

		ctx := context.WithValue(r.Context(), staffIDKey, staffID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetStaffID достаёт идентификатор сотрудника из контекста
func GetStaffID(ctx context.Context) (string, bool) {
	staffID, ok := ctx.Value(staffIDKey).(string)
	return staffID, ok
}
