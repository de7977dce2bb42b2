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
		"pubsub": map[string]any{
			"topicId": "",
		},
		"reservation": map[string]any{
			"maxAttempts":    3,
			"retryBaseDelay": "20ms",
		},
		"secretKey": map[string]any{
			"access": "",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "POSTGRES_SSLMODE", want: "postgres.sslMode"},
		{envKey: "POSTGRES_MASTER_USERNAME", want: "postgres.master.userName"},
		{envKey: "PUBSUB_TOPICID", want: "pubsub.topicId"},
		{envKey: "SECRETKEY_ACCESS", want: "secretKey.access"},
		{envKey: "RESERVATION_MAXATTEMPTS", want: "reservation.maxAttempts"},
		{envKey: "RESERVATION_RETRYBASEDELAY", want: "reservation.retryBaseDelay"},
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

func TestApplyDefaults_FillsMissingSections(t *testing.T) {
	cfg := &Config{}
	applyDefaults(cfg)

	if cfg.HTTP.MaxRequestBodySize != defaultMaxRequestBodySize {
		t.Fatalf("MaxRequestBodySize = %q, want %q", cfg.HTTP.MaxRequestBodySize, defaultMaxRequestBodySize)
	}
	if cfg.Reservation.MaxAttempts != defaultReservationMaxAttempts {
		t.Fatalf("Reservation.MaxAttempts = %d, want %d", cfg.Reservation.MaxAttempts, defaultReservationMaxAttempts)
	}
	if cfg.Reservation.RetryMaxDelay < cfg.Reservation.RetryBaseDelay {
		t.Fatalf("RetryMaxDelay %s below RetryBaseDelay %s", cfg.Reservation.RetryMaxDelay, cfg.Reservation.RetryBaseDelay)
	}
	if cfg.Pagination.DefaultSize != defaultPageSize || cfg.Pagination.MaxSize != defaultMaxPageSize {
		t.Fatalf("Pagination = %+v", *cfg.Pagination)
	}
	if cfg.PasswordStrength.MinLength != defaultPasswordMinLength {
		t.Fatalf("PasswordStrength.MinLength = %d", cfg.PasswordStrength.MinLength)
	}
	if cfg.Auth.AccessTokenTTL != defaultAccessTokenTTL {
		t.Fatalf("Auth.AccessTokenTTL = %s", cfg.Auth.AccessTokenTTL)
	}
	if cfg.Metrics != nil {
		t.Fatalf("Metrics should stay disabled when not configured")
	}
}

func TestApplyDefaults_KeepsExplicitValues(t *testing.T) {
	cfg := &Config{
		Reservation: &ReservationConfig{MaxAttempts: 5},
		Pagination:  &PaginationConfig{DefaultSize: 10, MaxSize: 100},
		Metrics:     &MetricsConfig{Enabled: true},
	}
	applyDefaults(cfg)

	if cfg.Reservation.MaxAttempts != 5 {
		t.Fatalf("Reservation.MaxAttempts = %d, want 5", cfg.Reservation.MaxAttempts)
	}
	if cfg.Pagination.DefaultSize != 10 || cfg.Pagination.MaxSize != 100 {
		t.Fatalf("Pagination = %+v", *cfg.Pagination)
	}
	if cfg.Metrics.Path != defaultMetricsPath {
		t.Fatalf("Metrics.Path = %q, want %q", cfg.Metrics.Path, defaultMetricsPath)
	}
}
