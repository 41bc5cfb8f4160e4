package courserepositorytests

import (
	"log"
	"sync"
	"testing"

	coursedb "github.com/fairway-collective/scorecard/app/modules/course/infrastructure/repositories"
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
		log.Println("Initializing course repository test environment...")
		env, err := testutils.NewTestEnvironment(t)
		if err != nil {
			testEnvErr = err
			return
		}
		testEnv = env
	})

	if testEnvErr != nil {
		t.Fatalf("Course repository test environment initialization failed: %v", testEnvErr)
	}

	return testEnv
}

func newRepo(t *testing.T) (coursedb.Repository, *testutils.TestEnvironment) {
	t.Helper()

	env := GetTestEnv(t)
	if err := env.TruncateTables(env.Ctx); err != nil {
		t.Fatalf("failed to truncate tables: %v", err)
	}
	return &coursedb.CourseDBImpl{DB: env.DB}, env
}
