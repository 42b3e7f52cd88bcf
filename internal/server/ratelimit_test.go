package server

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestRateLimiterBurst(t *testing.T) {
	m := NewRateLimiter(60, time.Minute, 2, nil)
	defer m.Close()

	if !m.Allow("ip:10.0.0.1") {
		t.Error("first request within burst should be allowed")
	}
	if !m.Allow("ip:10.0.0.1") {
		t.Error("second request within burst should be allowed")
	}
	if m.Allow("ip:10.0.0.1") {
		t.Error("request beyond burst capacity should be denied")
	}

	// A different key gets its own bucket
	if !m.Allow("ip:10.0.0.2") {
		t.Error("request from a different key should be allowed")
	}
}

func TestRateLimiterStats(t *testing.T) {
	m := NewRateLimiter(120, time.Minute, 5, nil)
	defer m.Close()

	m.Allow("ip:10.0.0.1")
	m.Allow("api:some-key")

	stats := m.GetStats()
	if stats["active_limiters"] != 2 {
		t.Errorf("expected 2 active limiters, got %v", stats["active_limiters"])
	}
	if stats["burst_capacity"] != 5 {
		t.Errorf("expected burst capacity 5, got %v", stats["burst_capacity"])
	}
	if stats["rate_per_minute"] != 120.0 {
		t.Errorf("expected 120 requests per minute, got %v", stats["rate_per_minute"])
	}
}

func TestGetRateLimitKey(t *testing.T) {
	tests := []struct {
		name     string
		byAPIKey bool
		byIP     bool
		headers  map[string]string
		want     string
	}{
		{
			name:     "api key header preferred",
			byAPIKey: true,
			byIP:     true,
			headers:  map[string]string{"X-API-Key": "abc123"},
			want:     "api:abc123",
		},
		{
			name:     "bearer token fallback",
			byAPIKey: true,
			byIP:     false,
			headers:  map[string]string{"Authorization": "Bearer tok456"},
			want:     "api:tok456",
		},
		{
			name:     "ip fallback when no key present",
			byAPIKey: true,
			byIP:     true,
			headers:  nil,
			want:     "ip:192.0.2.1",
		},
		{
			name:     "disabled",
			byAPIKey: false,
			byIP:     false,
			headers:  nil,
			want:     "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodPost, "/analyze", nil)
			r.RemoteAddr = "192.0.2.1:54321"
			for k, v := range tt.headers {
				r.Header.Set(k, v)
			}
			if got := getRateLimitKey(r, tt.byAPIKey, tt.byIP); got != tt.want {
				t.Errorf("getRateLimitKey() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestGetClientIP(t *testing.T) {
	tests := []struct {
		name       string
		remoteAddr string
		headers    map[string]string
		want       string
	}{
		{
			name:       "forwarded for",
			remoteAddr: "10.0.0.1:1234",
			headers:    map[string]string{"X-Forwarded-For": "203.0.113.7, 10.0.0.1"},
			want:       "203.0.113.7",
		},
		{
			name:       "real ip",
			remoteAddr: "10.0.0.1:1234",
			headers:    map[string]string{"X-Real-IP": "203.0.113.9"},
			want:       "203.0.113.9",
		},
		{
			name:       "remote addr fallback",
			remoteAddr: "198.51.100.4:9999",
			headers:    nil,
			want:       "198.51.100.4",
		},
		{
			name:       "invalid forwarded for falls through",
			remoteAddr: "198.51.100.4:9999",
			headers:    map[string]string{"X-Forwarded-For": "not-an-ip"},
			want:       "198.51.100.4",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodGet, "/health", nil)
			r.RemoteAddr = tt.remoteAddr
			for k, v := range tt.headers {
				r.Header.Set(k, v)
			}
			if got := getClientIP(r); got != tt.want {
				t.Errorf("getClientIP() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestMaskAPIKey(t *testing.T) {
	if got := maskAPIKey("short"); got != "****" {
		t.Errorf("maskAPIKey(short) = %q", got)
	}
	if got := maskAPIKey("abcdefgh12345678"); got != "abcdefgh****" {
		t.Errorf("maskAPIKey(long) = %q", got)
	}
}
