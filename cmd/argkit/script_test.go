// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/argkit/argkit/internal/config"

	"github.com/rogpeppe/go-internal/testscript"
)

// configDirEnv points the scripts' argkit at a per-script config directory,
// independent of the platform's config location.
const configDirEnv = "ARGKIT_TEST_CONFIG_DIR"

func TestMain(m *testing.M) {
	testscript.Main(m, map[string]func(){
		"argkit": func() {
			if dir := os.Getenv(configDirEnv); dir != "" {
				config.SetConfigDirOverride(dir)
			}
			os.Exit(Run(context.Background(), NewApp(Dependencies{})))
		},
	})
}

// TestScripts runs the CLI scripts in testdata/script against an in-process argkit.
func TestScripts(t *testing.T) {
	t.Parallel()

	testscript.Run(t, testscript.Params{
		Dir: "testdata/script",
		Setup: func(env *testscript.Env) error {
			// Keep the user's configuration out of the scripts.
			env.Setenv(configDirEnv, filepath.Join(env.WorkDir, "cfg"))
			env.Setenv("NO_COLOR", "1")
			return nil
		},
	})
}
