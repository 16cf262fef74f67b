package game

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arebrov/GoatGroupBot/gamescript"
)

func TestGameScripts(t *testing.T) {
	files, err := filepath.Glob("test_scripts/*.yaml")
	require.NoError(t, err)
	require.NotEmpty(t, files, "no game scripts found")

	for _, file := range files {
		file := file
		t.Run(filepath.Base(file), func(t *testing.T) {
			script, err := gamescript.ReadGameScript(file)
			require.NoError(t, err)

			driver := NewScriptDriver(script)
			require.NoError(t, driver.Run())
			require.NoError(t, driver.Verify())
		})
	}
}
