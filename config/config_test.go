package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	if err := load(false); err != nil {
		t.Fatal(err)
	}

	if GetRPC() != "https://mainnet.aleorpc.com" {
		t.Fatalf("Get=%s, want=%s", GetRPC(), "https://mainnet.aleorpc.com")
	}
	if GetExplorer() != "https://api.explorer.provable.com/v1" {
		t.Fatalf("Get=%s, want=%s", GetExplorer(), "https://api.explorer.provable.com/v1")
	}
	if GetNetwork() != "mainnet" {
		t.Fatalf("Get=%s, want=mainnet", GetNetwork())
	}
	if GetPollDelay() != 10*time.Second {
		t.Fatalf("Get=%v, want=10s", GetPollDelay())
	}
	if GetPollAttempts() != 1 {
		t.Fatalf("Get=%d, want=1", GetPollAttempts())
	}
	if GetMaxAuthFileSize() != 16<<20 {
		t.Fatalf("Get=%d, want=%d", GetMaxAuthFileSize(), 16<<20)
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("BROADCASTER_RPC", "localhost:3030")
	t.Setenv("BROADCASTER_EXPLORER", "http://127.0.0.1:8080/v2/")
	t.Setenv("BROADCASTER_POLL_DELAY", "250ms")
	t.Setenv("BROADCASTER_POLL_ATTEMPTS", "3")

	if err := load(false); err != nil {
		t.Fatal(err)
	}

	if GetRPC() != "https://localhost:3030" {
		t.Fatalf("Get=%s, want=%s", GetRPC(), "https://localhost:3030")
	}
	if GetExplorer() != "http://127.0.0.1:8080/v2" {
		t.Fatalf("Get=%s, want=%s", GetExplorer(), "http://127.0.0.1:8080/v2")
	}
	if GetPollDelay() != 250*time.Millisecond {
		t.Fatalf("Get=%v, want=250ms", GetPollDelay())
	}
	if GetPollAttempts() != 3 {
		t.Fatalf("Get=%d, want=3", GetPollAttempts())
	}
}

func TestLoadInvalid(t *testing.T) {
	testCases := map[string]string{
		"BROADCASTER_POLL_ATTEMPTS":      "0",
		"BROADCASTER_MAX_AUTH_FILE_SIZE": "-1",
		"BROADCASTER_RPC":                "https://",
	}

	for key, value := range testCases {
		t.Run(key, func(t *testing.T) {
			t.Setenv(key, value)

			if err := load(false); err == nil {
				t.Fatalf("Get error=nil, want an error for %s=%q", key, value)
			}
		})
	}
}
