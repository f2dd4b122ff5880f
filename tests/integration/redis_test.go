package integration

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
)

// TestRedis_BasicOperations tests basic Redis operations
func TestRedis_BasicOperations(t *testing.T) {
	env := SetupTestEnvironment(t)
	if env == nil || env.Redis == nil {
		t.Skip("Redis not available")
	}

	FlushRedis(t, env.Redis)
	ctx := context.Background()

	t.Run("SetGet", func(t *testing.T) {
		err := env.Redis.Set(ctx, "test:key", "test-value", time.Minute).Err()
		if err != nil {
			t.Fatalf("Failed to set key: %v", err)
		}

		val, err := env.Redis.Get(ctx, "test:key").Result()
		if err != nil {
			t.Fatalf("Failed to get key: %v", err)
		}

		if val != "test-value" {
			t.Errorf("Expected 'test-value', got '%s'", val)
		}
	})

	t.Run("SetWithExpiration", func(t *testing.T) {
		err := env.Redis.Set(ctx, "test:expiring", "value", 100*time.Millisecond).Err()
		if err != nil {
			t.Fatalf("Failed to set key: %v", err)
		}

		_, err = env.Redis.Get(ctx, "test:expiring").Result()
		if err != nil {
			t.Fatalf("Key should exist: %v", err)
		}

		time.Sleep(150 * time.Millisecond)

		_, err = env.Redis.Get(ctx, "test:expiring").Result()
		if err != redis.Nil {
			t.Errorf("Expected key to be expired, got err=%v", err)
		}
	})

	t.Run("Delete", func(t *testing.T) {
		env.Redis.Set(ctx, "test:delete", "value", time.Minute)

		if err := env.Redis.Del(ctx, "test:delete").Err(); err != nil {
			t.Fatalf("Failed to delete key: %v", err)
		}

		_, err := env.Redis.Get(ctx, "test:delete").Result()
		if err != redis.Nil {
			t.Errorf("Expected key to be gone, got err=%v", err)
		}
	})
}

// TestRedis_GuestRateCache tests the cached guest-rate payload shape
func TestRedis_GuestRateCache(t *testing.T) {
	env := SetupTestEnvironment(t)
	if env == nil || env.Redis == nil {
		t.Skip("Redis not available")
	}

	FlushRedis(t, env.Redis)
	ctx := context.Background()

	rates := map[string]float64{"day": 10000, "night": 15000}
	payload, _ := json.Marshal(rates)

	if err := env.Redis.Set(ctx, "fees:guest_rates", payload, 5*time.Minute).Err(); err != nil {
		t.Fatalf("Failed to cache rates: %v", err)
	}

	raw, err := env.Redis.Get(ctx, "fees:guest_rates").Result()
	if err != nil {
		t.Fatalf("Failed to read rates: %v", err)
	}

	var got map[string]float64
	if err := json.Unmarshal([]byte(raw), &got); err != nil {
		t.Fatalf("Failed to decode rates: %v", err)
	}

	if got["day"] != 10000 || got["night"] != 15000 {
		t.Errorf("Unexpected cached rates: %+v", got)
	}
}

// TestRedis_TokenRevocation tests the revoked-token marker keys
func TestRedis_TokenRevocation(t *testing.T) {
	env := SetupTestEnvironment(t)
	if env == nil || env.Redis == nil {
		t.Skip("Redis not available")
	}

	FlushRedis(t, env.Redis)
	ctx := context.Background()

	jti := "8c9e2c3a-test-token-id"
	key := "revoked_token:" + jti

	if err := env.Redis.Set(ctx, key, "revoked", time.Hour).Err(); err != nil {
		t.Fatalf("Failed to mark token revoked: %v", err)
	}

	exists, err := env.Redis.Exists(ctx, key).Result()
	if err != nil {
		t.Fatalf("Failed to check key: %v", err)
	}
	if exists != 1 {
		t.Error("Expected revocation marker to exist")
	}

	ttl, err := env.Redis.TTL(ctx, key).Result()
	if err != nil {
		t.Fatalf("Failed to read TTL: %v", err)
	}
	if ttl <= 0 || ttl > time.Hour {
		t.Errorf("Expected bounded TTL, got %v", ttl)
	}
}
