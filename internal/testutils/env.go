package testutils

import (
	"os"
	"testing"
)

// Environment variables naming the databases integration tests may use.
const (
	MongoURLEnv    = "TASKS_TEST_MONGO_URL"
	PostgresURLEnv = "TASKS_TEST_DATABASE_URL"
)

// IntegrationURL returns the value of the named environment variable, or
// skips the test when it is unset.
func IntegrationURL(t *testing.T, envVar string) string {
	t.Helper()
	url := os.Getenv(envVar)
	if url == "" {
		t.Skipf("%s not set, skipping integration test", envVar)
	}
	return url
}
