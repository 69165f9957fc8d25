package integration_test

import (
	"os"
	"sync"
	"testing"

	"atlasweb_backend/test/helpers"
)

var (
	globalTestServer *helpers.TestServer
	serverOnce       sync.Once
)

// GetTestServer returns the shared test server, creating it on first
// use. Tests run against the database named by DATABASE_URL and are
// skipped when it is not set.
func GetTestServer(t *testing.T) *helpers.TestServer {
	if os.Getenv("DATABASE_URL") == "" {
		t.Skip("DATABASE_URL not set, skipping integration test")
	}

	serverOnce.Do(func() {
		os.Setenv("SERVER_ENV", "test")
		if os.Getenv("JWT_SECRET") == "" {
			os.Setenv("JWT_SECRET", "integration-test-secret")
		}
		if os.Getenv("CACHE_SECRET") == "" {
			os.Setenv("CACHE_SECRET", "test-cache-secret")
		}
		globalTestServer = helpers.NewTestServer(t)
	})

	return globalTestServer
}

func TestMain(m *testing.M) {
	code := m.Run()
	if globalTestServer != nil {
		globalTestServer.Close()
	}
	os.Exit(code)
}
