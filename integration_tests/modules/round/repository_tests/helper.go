package roundrepositorytests

import (
	"log"
	"sync"
	"testing"

	rounddb "github.com/fairway-collective/scorecard/app/modules/round/infrastructure/repositories"
	"github.com/fairway-collective/scorecard/integration_tests/testutils"
)

var (
	testEnv     *testutils.TestEnvironment
	testEnvErr  error
	testEnvOnce sync.Once
)

// GetTestEnv lazily starts the shared container environment for this package.
func GetTestEnv(t *testing.T) *testutils.TestEnvironment {
	t.Helper()

	testEnvOnce.Do(func() {
		log.Println("Initializing round repository test environment...")
		env, err := testutils.NewTestEnvironment(t)
		if err != nil {
			testEnvErr = err
			return
		}
		testEnv = env
	})

	if testEnvErr != nil {
		t.Fatalf("Round repository test environment initialization failed: %v", testEnvErr)
	}

	return testEnv
}

func newRepo(t *testing.T) (rounddb.Repository, *testutils.TestEnvironment) {
	t.Helper()

	env := GetTestEnv(t)
	if err := env.TruncateTables(env.Ctx); err != nil {
		t.Fatalf("failed to truncate tables: %v", err)
	}
	return &rounddb.RoundDBImpl{DB: env.DB}, env
}
