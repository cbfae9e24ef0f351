package config

import "testing"

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"database": map[string]any{
			"sqlite": map[string]any{
				"busyTimeout": "5s",
			},
			"postgres": map[string]any{
				"sslMode":  "disable",
				"userName": "user",
			},
		},
		"events": map[string]any{
			"topicId": "",
		},
		"dispatch": map[string]any{
			"strictTokenValidation": false,
		},
		"firebase": map[string]any{
			"credentialsPath": "",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "DATABASE_POSTGRES_SSLMODE", want: "database.postgres.sslMode"},
		{envKey: "DATABASE_POSTGRES_USERNAME", want: "database.postgres.userName"},
		{envKey: "DATABASE_SQLITE_BUSYTIMEOUT", want: "database.sqlite.busyTimeout"},
		{envKey: "EVENTS_TOPICID", want: "events.topicId"},
		{envKey: "DISPATCH_STRICTTOKENVALIDATION", want: "dispatch.strictTokenValidation"},
		{envKey: "FIREBASE_CREDENTIALSPATH", want: "firebase.credentialsPath"},
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
