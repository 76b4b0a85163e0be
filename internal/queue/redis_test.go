package queue

import (
	"crypto/tls"
	"testing"

	"github.com/hibiken/asynq"
)

func TestParseRedisURL(t *testing.T) {
	tests := []struct {
		name      string
		redisURL  string
		want      asynq.RedisClientOpt
		wantError bool
	}{
		{
			name:     "simple host:port format (legacy)",
			redisURL: "localhost:6379",
			want: asynq.RedisClientOpt{
				Addr: "localhost:6379",
				DB:   0,
			},
		},
		{
			name:     "redis URL without password",
			redisURL: "redis://localhost:6379",
			want: asynq.RedisClientOpt{
				Addr: "localhost:6379",
				DB:   0,
			},
		},
		{
			name:     "redis URL with password",
			redisURL: "redis://:mypassword@localhost:6379",
			want: asynq.RedisClientOpt{
				Addr:     "localhost:6379",
				Password: "mypassword",
				DB:       0,
			},
		},
		{
			name:     "redis URL with password and database number",
			redisURL: "redis://:secretpass@redis.example.com:6379/1",
			want: asynq.RedisClientOpt{
				Addr:     "redis.example.com:6379",
				Password: "secretpass",
				DB:       1,
			},
		},
		{
			name:     "redis URL with URL-encoded password",
			redisURL: "redis://:p%40ssw0rd%21%40%23%24@localhost:6379/0",
			want: asynq.RedisClientOpt{
				Addr:     "localhost:6379",
				Password: "p@ssw0rd!@#$",
				DB:       0,
			},
		},
		{
			name:     "rediss URL with TLS",
			redisURL: "rediss://:password@secure-redis.example.com:6380/0",
			want: asynq.RedisClientOpt{
				Addr:      "secure-redis.example.com:6380",
				Password:  "password",
				DB:        0,
				TLSConfig: &tls.Config{MinVersion: tls.VersionTLS12},
			},
		},
		{
			name:     "redis URL with database number 5",
			redisURL: "redis://localhost:6379/5",
			want: asynq.RedisClientOpt{
				Addr: "localhost:6379",
				DB:   5,
			},
		},
		{
			name:      "invalid scheme",
			redisURL:  "http://localhost:6379",
			wantError: true,
		},
		{
			name:      "invalid database number",
			redisURL:  "redis://localhost:6379/abc",
			wantError: true,
		},
		{
			name:      "redis URL missing host",
			redisURL:  "redis://:password@/0",
			wantError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseRedisURL(tt.redisURL)
			if (err != nil) != tt.wantError {
				t.Errorf("ParseRedisURL() error = %v, wantError %v", err, tt.wantError)
				return
			}
			if err != nil {
				return
			}

			if got.Addr != tt.want.Addr {
				t.Errorf("ParseRedisURL() Addr = %v, want %v", got.Addr, tt.want.Addr)
			}
			if got.Password != tt.want.Password {
				t.Errorf("ParseRedisURL() Password = %v, want %v", got.Password, tt.want.Password)
			}
			if got.DB != tt.want.DB {
				t.Errorf("ParseRedisURL() DB = %v, want %v", got.DB, tt.want.DB)
			}
			if (got.TLSConfig != nil) != (tt.want.TLSConfig != nil) {
				t.Errorf("ParseRedisURL() TLSConfig presence = %v, want %v",
					got.TLSConfig != nil, tt.want.TLSConfig != nil)
			}
		})
	}
}

func TestStoreSnapshotPayloadRoundTrip(t *testing.T) {
	payload, err := NewStoreSnapshotPayload("UC123", "Tech Channel", 20, "newest", "UTC", []byte(`{"channel_info":{}}`))
	if err != nil {
		t.Fatalf("NewStoreSnapshotPayload() error = %v", err)
	}

	data, err := payload.Marshal()
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}

	got, err := UnmarshalStoreSnapshotPayload(data)
	if err != nil {
		t.Fatalf("UnmarshalStoreSnapshotPayload() error = %v", err)
	}
	if got.ChannelID != "UC123" || got.ChannelName != "Tech Channel" || got.VideoCount != 20 {
		t.Errorf("round trip mismatch: %+v", got)
	}
}

func TestNewStoreSnapshotPayloadValidation(t *testing.T) {
	if _, err := NewStoreSnapshotPayload("", "name", 10, "newest", "UTC", []byte(`{}`)); err == nil {
		t.Error("expected error for missing channel ID")
	}
	if _, err := NewStoreSnapshotPayload("UC123", "name", 10, "newest", "UTC", nil); err == nil {
		t.Error("expected error for empty result")
	}
}
