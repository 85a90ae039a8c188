package bucketidx

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	require.Equal(t, 256, cfg.NumBuckets)
	require.Equal(t, 0, cfg.TaskID)
	require.Equal(t, 1, cfg.TotalTasks)
	require.Empty(t, cfg.IndexKeyFields)
	require.Equal(t, uint64(0), cfg.HashSeed)
}

func TestSetDefaults(t *testing.T) {
	t.Run("fills zero values", func(t *testing.T) {
		cfg := Config{IndexKeyFields: []string{"id"}}
		SetDefaults(&cfg)

		require.Equal(t, 256, cfg.NumBuckets)
		require.Equal(t, 1, cfg.TotalTasks)
	})

	t.Run("preserves explicit values", func(t *testing.T) {
		cfg := Config{
			NumBuckets:     97,
			IndexKeyFields: []string{"id"},
			TaskID:         2,
			TotalTasks:     5,
			HashSeed:       42,
		}
		SetDefaults(&cfg)

		require.Equal(t, 97, cfg.NumBuckets)
		require.Equal(t, 2, cfg.TaskID)
		require.Equal(t, 5, cfg.TotalTasks)
		require.Equal(t, uint64(42), cfg.HashSeed)
	})
}

func TestConfigValidate(t *testing.T) {
	valid := Config{
		NumBuckets:     8,
		IndexKeyFields: []string{"id"},
		TaskID:         0,
		TotalTasks:     1,
	}

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{
			name:   "valid",
			mutate: func(_ /* cfg */ *Config) {},
		},
		{
			name:    "zero buckets",
			mutate:  func(cfg *Config) { cfg.NumBuckets = 0 },
			wantErr: "NumBuckets",
		},
		{
			name:    "negative buckets",
			mutate:  func(cfg *Config) { cfg.NumBuckets = -1 },
			wantErr: "NumBuckets",
		},
		{
			name:    "zero tasks",
			mutate:  func(cfg *Config) { cfg.TotalTasks = 0 },
			wantErr: "TotalTasks",
		},
		{
			name:    "negative task id",
			mutate:  func(cfg *Config) { cfg.TaskID = -1 },
			wantErr: "TaskID",
		},
		{
			name:    "task id out of range",
			mutate:  func(cfg *Config) { cfg.TaskID = 1; cfg.TotalTasks = 1 },
			wantErr: "TaskID",
		},
		{
			name:    "no index key fields",
			mutate:  func(cfg *Config) { cfg.IndexKeyFields = nil },
			wantErr: "IndexKeyFields",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid
			tt.mutate(&cfg)

			err := cfg.Validate()
			if tt.wantErr == "" {
				require.NoError(t, err)
			} else {
				require.ErrorContains(t, err, tt.wantErr)
			}
		})
	}
}

func TestLoadConfig(t *testing.T) {
	t.Run("parses yaml", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yaml")
		content := `
numBuckets: 64
indexKeyFields:
  - uuid
  - region
taskId: 1
totalTasks: 4
hashSeed: 7
`
		require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

		cfg, err := LoadConfig(path)
		require.NoError(t, err)
		require.Equal(t, 64, cfg.NumBuckets)
		require.Equal(t, []string{"uuid", "region"}, cfg.IndexKeyFields)
		require.Equal(t, 1, cfg.TaskID)
		require.Equal(t, 4, cfg.TotalTasks)
		require.Equal(t, uint64(7), cfg.HashSeed)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadConfig(filepath.Join(t.TempDir(), "absent.yaml"))
		require.Error(t, err)
	})

	t.Run("malformed yaml", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yaml")
		require.NoError(t, os.WriteFile(path, []byte("numBuckets: [not an int"), 0o600))

		_, err := LoadConfig(path)
		require.Error(t, err)
	})
}
