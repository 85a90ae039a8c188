package bucketidx

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the configuration for the Router.
//
// All fields are read-only for the task's lifetime. NumBuckets, HashSeed and
// IndexKeyFields are part of the table's published bucketing scheme: changing
// any of them between restarts of an existing table is an unchecked
// precondition violation, not a handled error, and silently re-routes records
// to different buckets.
type Config struct {
	// NumBuckets is the total bucket count of the table. Fixed at table
	// creation; compaction and query readers must use the same value.
	NumBuckets int `yaml:"numBuckets"`

	// IndexKeyFields is the ordered list of record key fields hashed to
	// compute a record's bucket.
	IndexKeyFields []string `yaml:"indexKeyFields"`

	// TaskID is the index of this task within the operator, in [0, TotalTasks).
	TaskID int `yaml:"taskId"`

	// TotalTasks is the operator parallelism. Task T owns bucket b iff
	// b % TotalTasks == T.
	TotalTasks int `yaml:"totalTasks"`

	// HashSeed seeds the bucket hash. 0 selects the default scheme. Must
	// match the value the table was created with.
	HashSeed uint64 `yaml:"hashSeed"`
}

// DefaultConfig returns a Config with sensible defaults.
//
// IndexKeyFields has no meaningful default and must always be set by the
// caller.
//
// Returns:
//   - Config: Configuration with default values
func DefaultConfig() Config {
	return Config{
		NumBuckets: 256,
		TaskID:     0,
		TotalTasks: 1,
	}
}

// SetDefaults fills in missing configuration values with production defaults.
//
// Parameters:
//   - cfg: Config to apply defaults to (modified in place)
func SetDefaults(cfg *Config) {
	defaults := DefaultConfig()

	if cfg.NumBuckets == 0 {
		cfg.NumBuckets = defaults.NumBuckets
	}
	if cfg.TotalTasks == 0 {
		cfg.TotalTasks = defaults.TotalTasks
	}
	// Note: TaskID of 0 and HashSeed of 0 are valid values, so we don't apply defaults
}

// Validate checks configuration constraints and returns error for invalid values.
//
// Hard Validation Rules:
//   - NumBuckets > 0
//   - TotalTasks > 0
//   - 0 <= TaskID < TotalTasks
//   - IndexKeyFields non-empty (the bucket hash needs at least one field)
//
// Returns:
//   - error: Validation error with clear explanation, nil if valid
func (cfg *Config) Validate() error {
	if cfg.NumBuckets <= 0 {
		return fmt.Errorf("NumBuckets must be > 0, got %d", cfg.NumBuckets)
	}

	if cfg.TotalTasks <= 0 {
		return fmt.Errorf("TotalTasks must be > 0, got %d", cfg.TotalTasks)
	}

	if cfg.TaskID < 0 || cfg.TaskID >= cfg.TotalTasks {
		return fmt.Errorf(
			"TaskID (%d) must be in [0, TotalTasks), TotalTasks is %d",
			cfg.TaskID, cfg.TotalTasks,
		)
	}

	if len(cfg.IndexKeyFields) == 0 {
		return fmt.Errorf("IndexKeyFields must name at least one record key field")
	}

	return nil
}

// LoadConfig reads a Config from a YAML file.
//
// Missing values are left zero; NewRouter applies defaults and validates.
//
// Parameters:
//   - path: Path to the YAML configuration file
//
// Returns:
//   - Config: Parsed configuration
//   - error: File or parse error
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config file %q: %w", path, err)
	}

	return cfg, nil
}
