package solver

import (
	"runtime"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	require.Equal(t, runtime.NumCPU(), cfg.Workers)
	require.Equal(t, DefaultSearchBound, cfg.SearchBound)
	require.Equal(t, DefaultScanBatch, cfg.ScanBatch)
	require.NoError(t, cfg.Validate())
}

func TestSetDefaults(t *testing.T) {
	t.Run("fills zero values", func(t *testing.T) {
		cfg := Config{}

		SetDefaults(&cfg)

		require.Equal(t, runtime.NumCPU(), cfg.Workers)
		require.Equal(t, DefaultSearchBound, cfg.SearchBound)
		require.Equal(t, DefaultScanBatch, cfg.ScanBatch)
	})

	t.Run("preserves explicit values", func(t *testing.T) {
		cfg := Config{Workers: 3, SearchBound: 12345, ScanBatch: 7}

		SetDefaults(&cfg)

		require.Equal(t, 3, cfg.Workers)
		require.Equal(t, uint64(12345), cfg.SearchBound)
		require.Equal(t, uint64(7), cfg.ScanBatch)
	})

	t.Run("does not mask negative workers", func(t *testing.T) {
		cfg := Config{Workers: -1, SearchBound: 100, ScanBatch: 1}

		SetDefaults(&cfg)

		require.Equal(t, -1, cfg.Workers)
		require.Error(t, cfg.Validate())
	})
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"valid", Config{Workers: 4, SearchBound: 1000, ScanBatch: 16}, false},
		{"single worker", Config{Workers: 1, SearchBound: 1, ScanBatch: 1}, false},
		{"zero workers", Config{Workers: 0, SearchBound: 1000, ScanBatch: 1}, true},
		{"negative workers", Config{Workers: -5, SearchBound: 1000, ScanBatch: 1}, true},
		{"zero bound", Config{Workers: 4, SearchBound: 0, ScanBatch: 1}, true},
		{"zero batch", Config{Workers: 4, SearchBound: 1000, ScanBatch: 0}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()

			if tt.wantErr {
				require.Error(t, err)
				require.ErrorIs(t, err, ErrInvalidConfig)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestTestConfig(t *testing.T) {
	cfg := TestConfig()

	require.NoError(t, cfg.Validate())
	require.Equal(t, uint64(1), cfg.ScanBatch)
	require.LessOrEqual(t, cfg.SearchBound, uint64(1<<16))
}
