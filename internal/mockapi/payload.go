package mockapi

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/tinytelemetry/dashshell/internal/model"
)

// Users returns the fixed users listing.
func Users() []model.User {
	return []model.User{
		{ID: 1, Name: "John Doe", Email: "john@example.com", Role: "Admin"},
		{ID: 2, Name: "Jane Smith", Email: "jane@example.com", Role: "User"},
		{ID: 3, Name: "Bob Johnson", Email: "bob@example.com", Role: "Moderator"},
	}
}

// Metrics returns the fixed dashboard summary.
func Metrics() model.DashboardMetrics {
	return model.DashboardMetrics{TotalUsers: 1234, ActiveUsers: 567, Revenue: 89012, Growth: 12.5}
}

// PayloadFor picks the payload for key by substring. "users" is checked
// before "dashboard".
func PayloadFor(key string) any {
	switch {
	case strings.Contains(key, "users"):
		return Users()
	case strings.Contains(key, "dashboard"):
		return Metrics()
	default:
		return model.Acknowledgement{Message: "Data loaded successfully"}
	}
}

// Decode narrows a fetched payload to T. Payloads that already have the
// requested type are returned as is; anything else goes through JSON, which
// covers payloads that arrived over the wire.
func Decode[T any](payload any) (T, error) {
	var out T
	if v, ok := payload.(T); ok {
		return v, nil
	}
	var raw []byte
	switch p := payload.(type) {
	case []byte:
		raw = p
	case json.RawMessage:
		raw = p
	default:
		b, err := json.Marshal(payload)
		if err != nil {
			return out, fmt.Errorf("mockapi: encode payload: %w", err)
		}
		raw = b
	}
	if err := json.Unmarshal(raw, &out); err != nil {
		return out, fmt.Errorf("mockapi: decode %T: %w", out, err)
	}
	return out, nil
}
