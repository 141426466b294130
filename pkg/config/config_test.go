package config

import "testing"

func validConfig() *Config {
	return &Config{
		Upload:   UploadConfig{MaxBytes: 1024, Extensions: "mp3,wav"},
		Whisper:  WhisperConfig{Backend: "local"},
		JobStore: JobStoreConfig{Driver: "memory"},
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults pass", func(c *Config) {}, false},
		{"redis driver passes", func(c *Config) { c.JobStore.Driver = "redis" }, false},
		{"unknown driver fails", func(c *Config) { c.JobStore.Driver = "postgres" }, true},
		{"unknown backend fails", func(c *Config) { c.Whisper.Backend = "cloud" }, true},
		{"assemblyai without key fails", func(c *Config) { c.Whisper.Backend = "assemblyai" }, true},
		{"assemblyai with key passes", func(c *Config) {
			c.Whisper.Backend = "assemblyai"
			c.Assembly.APIKey = "secret"
		}, false},
		{"zero max bytes fails", func(c *Config) { c.Upload.MaxBytes = 0 }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)
			if err := cfg.Validate(); (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestAllowedExtensions(t *testing.T) {
	cfg := &Config{Upload: UploadConfig{Extensions: "MP3, wav , ,flac"}}
	allowed := cfg.AllowedExtensions()

	for _, ext := range []string{"mp3", "wav", "flac"} {
		if !allowed[ext] {
			t.Errorf("extension %q should be allowed", ext)
		}
	}
	if allowed[""] {
		t.Error("empty extension should not be allowed")
	}
	if allowed["pdf"] {
		t.Error("pdf should not be allowed")
	}
}

func TestGetRedisAddr(t *testing.T) {
	cfg := &Config{Redis: RedisConfig{Host: "cache", Port: "6380"}}
	if got := cfg.GetRedisAddr(); got != "cache:6380" {
		t.Errorf("GetRedisAddr = %q", got)
	}
}

func TestAllowedOriginList(t *testing.T) {
	cfg := &Config{Server: ServerConfig{AllowedOrigins: "http://a.test, http://b.test ,"}}
	got := cfg.AllowedOriginList()
	if len(got) != 2 || got[0] != "http://a.test" || got[1] != "http://b.test" {
		t.Errorf("AllowedOriginList = %q", got)
	}
}
