package utilities_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vasapolrittideah/streamhub-api/shared/utilities"
)

func TestNewTrustedProxies(t *testing.T) {
	_, err := utilities.NewTrustedProxies([]string{"10.0.0.0/8", " 192.0.2.1 ", "", "::1"})
	assert.NoError(t, err)

	_, err = utilities.NewTrustedProxies([]string{"10.0.0.0/33"})
	assert.ErrorContains(t, err, `invalid trusted proxy "10.0.0.0/33"`)

	_, err = utilities.NewTrustedProxies([]string{"proxy.internal"})
	assert.ErrorContains(t, err, `invalid trusted proxy "proxy.internal"`)
}

func TestTrustedProxies_ClientIP(t *testing.T) {
	proxies, err := utilities.NewTrustedProxies([]string{"10.0.0.0/8"})
	require.NoError(t, err)

	tests := []struct {
		name       string
		proxies    *utilities.TrustedProxies
		headers    map[string]string
		remoteAddr string
		want       string
	}{
		{
			name:       "untrusted peer cannot spoof forwarded for",
			proxies:    proxies,
			headers:    map[string]string{"X-Forwarded-For": "203.0.113.7"},
			remoteAddr: "198.51.100.20:5555",
			want:       "198.51.100.20",
		},
		{
			name:       "untrusted peer cannot spoof real ip",
			proxies:    proxies,
			headers:    map[string]string{"X-Real-IP": "203.0.113.7"},
			remoteAddr: "198.51.100.20:5555",
			want:       "198.51.100.20",
		},
		{
			name:       "trusted proxy reports the right-most untrusted hop",
			proxies:    proxies,
			headers:    map[string]string{"X-Forwarded-For": "1.2.3.4, 203.0.113.7, 10.0.0.2"},
			remoteAddr: "10.0.0.1:5555",
			want:       "203.0.113.7",
		},
		{
			name:       "malformed hop stops the walk",
			proxies:    proxies,
			headers:    map[string]string{"X-Forwarded-For": "203.0.113.7, not-an-ip"},
			remoteAddr: "10.0.0.1:5555",
			want:       "10.0.0.1",
		},
		{
			name:       "trusted proxy without forwarded for falls back to real ip",
			proxies:    proxies,
			headers:    map[string]string{"X-Real-IP": "198.51.100.2"},
			remoteAddr: "10.0.0.1:5555",
			want:       "198.51.100.2",
		},
		{
			name:       "no trusted proxies configured",
			proxies:    nil,
			headers:    map[string]string{"X-Forwarded-For": "203.0.113.7"},
			remoteAddr: "10.0.0.1:5555",
			want:       "10.0.0.1",
		},
		{
			name:       "remote addr without port",
			proxies:    proxies,
			remoteAddr: "192.0.2.10",
			want:       "192.0.2.10",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api", nil)
			req.RemoteAddr = tt.remoteAddr
			for k, v := range tt.headers {
				req.Header.Set(k, v)
			}

			assert.Equal(t, tt.want, tt.proxies.ClientIP(req))
		})
	}
}

func TestTrustedProxies_RealIP(t *testing.T) {
	proxies, err := utilities.NewTrustedProxies([]string{"10.0.0.1"})
	require.NoError(t, err)

	var seen string
	h := proxies.RealIP(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		seen = utilities.RemoteIP(r)
	}))

	req := httptest.NewRequest(http.MethodGet, "/api", nil)
	req.RemoteAddr = "10.0.0.1:443"
	req.Header.Set("X-Forwarded-For", "203.0.113.7")
	h.ServeHTTP(httptest.NewRecorder(), req)
	assert.Equal(t, "203.0.113.7", seen)

	req = httptest.NewRequest(http.MethodGet, "/api", nil)
	req.RemoteAddr = "198.51.100.20:443"
	req.Header.Set("X-Forwarded-For", "203.0.113.7")
	h.ServeHTTP(httptest.NewRecorder(), req)
	assert.Equal(t, "198.51.100.20", seen)
}
