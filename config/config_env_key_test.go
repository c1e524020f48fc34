package config

import "testing"

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"postgres": map[string]any{
			"sslMode": "disable",
			"master": map[string]any{
				"userName": "user",
			},
		},
		"quality": map[string]any{
			"minOrders": 10,
		},
		"notify": map[string]any{
			"antispamHours": 24,
		},
		"push": map[string]any{
			"webpush": map[string]any{
				"publicKey": "",
			},
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "POSTGRES_SSLMODE", want: "postgres.sslMode"},
		{envKey: "POSTGRES_MASTER_USERNAME", want: "postgres.master.userName"},
		{envKey: "QUALITY_MINORDERS", want: "quality.minOrders"},
		{envKey: "NOTIFY_ANTISPAMHOURS", want: "notify.antispamHours"},
		{envKey: "PUSH_WEBPUSH_PUBLICKEY", want: "push.webpush.publicKey"},
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

func TestApplyDefaults_FillsPipelineDefaults(t *testing.T) {
	cfg := &Config{}
	cfg.applyDefaults()

	if cfg.Notify.AntispamHours != 24 {
		t.Fatalf("AntispamHours = %d, want 24", cfg.Notify.AntispamHours)
	}
	if cfg.Notify.DefaultRadiusKm != 5.0 {
		t.Fatalf("DefaultRadiusKm = %f, want 5", cfg.Notify.DefaultRadiusKm)
	}
	if cfg.Quality.MinOrders != 10 {
		t.Fatalf("MinOrders = %d, want 10", cfg.Quality.MinOrders)
	}
	if cfg.Quality.MinCompletionRate != 0.90 {
		t.Fatalf("MinCompletionRate = %f, want 0.90", cfg.Quality.MinCompletionRate)
	}
	if cfg.Quality.RunAt != "03:00" {
		t.Fatalf("RunAt = %q, want 03:00", cfg.Quality.RunAt)
	}
	if cfg.Scheduler.ActivationInterval.Minutes() != 1 {
		t.Fatalf("ActivationInterval = %s, want 1m", cfg.Scheduler.ActivationInterval)
	}
}
