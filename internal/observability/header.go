package observability

import (
	"fmt"
	"net/http"
)

// AppendServerTiming adds one Server-Timing metric; zero or negative durations are omitted.
func AppendServerTiming(w http.ResponseWriter, name string, durMs float64, desc string) {
	v := name
	if durMs > 0 {
		v += fmt.Sprintf(";dur=%.2f", durMs)
	}
	if desc != "" {
		v += fmt.Sprintf(";desc=%q", desc)
	}
	if v == name {
		return
	}
	w.Header().Add("Server-Timing", v)
}

func SetIfPos(w http.ResponseWriter, key string, ms float64) {
	if ms > 0 {
		w.Header().Set(key, fmt.Sprintf("%.2f", ms))
	}
}
