package config

import "testing"

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"postgres": map[string]any{
			"sslMode":      "disable",
			"maxOpenConns": 10,
		},
		"http": map[string]any{
			"timeouts": map[string]any{
				"readTimeout": "5s",
			},
		},
		"env": map[string]any{
			"serviceName": "coverd",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "POSTGRES_SSLMODE", want: "postgres.sslMode"},
		{envKey: "POSTGRES_MAXOPENCONNS", want: "postgres.maxOpenConns"},
		{envKey: "HTTP_TIMEOUTS_READTIMEOUT", want: "http.timeouts.readTimeout"},
		{envKey: "ENV_SERVICENAME", want: "env.serviceName"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			if got := canonicalizeEnvKey(tt.envKey, existing); got != tt.want {
				t.Fatalf("canonicalizeEnvKey(%q) = %q, want %q", tt.envKey, got, tt.want)
			}
		})
	}
}
