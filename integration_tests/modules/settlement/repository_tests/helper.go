package settlementrepositorytests

import (
	"log"
	"sync"
	"testing"

	settlementdb "github.com/fairway-collective/scorecard/app/modules/settlement/infrastructure/repositories"
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
		log.Println("Initializing settlement repository test environment...")
		env, err := testutils.NewTestEnvironment(t)
		if err != nil {
			testEnvErr = err
			return
		}
		testEnv = env
	})

	if testEnvErr != nil {
		t.Fatalf("Settlement repository test environment initialization failed: %v", testEnvErr)
	}

	return testEnv
}

func newRepo(t *testing.T) (settlementdb.Repository, *testutils.TestEnvironment) {
	t.Helper()

	env := GetTestEnv(t)
	if err := env.TruncateTables(env.Ctx); err != nil {
		t.Fatalf("failed to truncate tables: %v", err)
	}
	return &settlementdb.SettlementDBImpl{DB: env.DB}, env
}
