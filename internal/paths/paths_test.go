package paths

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfigDir_Linux(t *testing.T) {
	if runtime.GOOS != "linux" {
		t.Skip("linux-only test")
	}

	t.Run("uses XDG_CONFIG_HOME when set", func(t *testing.T) {
		t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg-config")
		got, err := DefaultConfigDir()
		require.NoError(t, err)
		assert.Equal(t, "/tmp/xdg-config/duebook", got)
	})

	t.Run("falls back to ~/.config when XDG unset", func(t *testing.T) {
		t.Setenv("XDG_CONFIG_HOME", "")
		home, err := os.UserHomeDir()
		require.NoError(t, err)

		got, err := DefaultConfigDir()
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(home, ".config", "duebook"), got)
	})
}

func TestDefaultTodosDir(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	got, err := DefaultTodosDir()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, TodosDirName), got)
}

func TestResolveConfigDir(t *testing.T) {
	tests := []struct {
		name    string
		flag    string
		envVal  string
		wantSub string // substring the result must contain
	}{
		{
			name:    "flag wins over env",
			flag:    "/explicit/config",
			envVal:  "/env/config",
			wantSub: "/explicit/config",
		},
		{
			name:    "env wins when flag empty",
			flag:    "",
			envVal:  "/env/config",
			wantSub: "/env/config",
		},
		{
			name:    "platform default when both empty",
			flag:    "",
			envVal:  "",
			wantSub: "duebook",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(EnvConfigDir, tt.envVal)
			got, err := ResolveConfigDir(tt.flag)
			require.NoError(t, err)
			assert.Contains(t, got, tt.wantSub)
		})
	}
}

func TestResolveTodosDir(t *testing.T) {
	tests := []struct {
		name      string
		flag      string
		configVal string
		envVal    string
		want      string
	}{
		{
			name:      "flag wins over all",
			flag:      "/flag/todos",
			configVal: "/config/todos",
			envVal:    "/env/todos",
			want:      "/flag/todos",
		},
		{
			name:      "config.yaml wins over env",
			flag:      "",
			configVal: "/config/todos",
			envVal:    "/env/todos",
			want:      "/config/todos",
		},
		{
			name:      "env wins when flag and config empty",
			flag:      "",
			configVal: "",
			envVal:    "/env/todos",
			want:      "/env/todos",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(EnvTodosDir, tt.envVal)
			got, err := ResolveTodosDir(tt.flag, tt.configVal)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	t.Run("home default when all empty", func(t *testing.T) {
		t.Setenv(EnvTodosDir, "")
		home, err := os.UserHomeDir()
		require.NoError(t, err)

		got, err := ResolveTodosDir("", "")
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(home, TodosDirName), got)
	})
}

func TestResolveTodosDir_AbsolutePath(t *testing.T) {
	t.Run("relative flag becomes absolute", func(t *testing.T) {
		t.Setenv(EnvTodosDir, "")
		got, err := ResolveTodosDir("relative/path", "")
		require.NoError(t, err)
		assert.True(t, filepath.IsAbs(got), "expected absolute path, got %s", got)
	})

	t.Run("relative config value becomes absolute", func(t *testing.T) {
		t.Setenv(EnvTodosDir, "")
		got, err := ResolveTodosDir("", "relative/config")
		require.NoError(t, err)
		assert.True(t, filepath.IsAbs(got), "expected absolute path, got %s", got)
	})
}
