package app_test

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/histo/internal/adapters/cas"
	"go.trai.ch/histo/internal/adapters/rng"
	"go.trai.ch/histo/internal/app"
	"go.trai.ch/histo/internal/core/domain"
	"go.trai.ch/histo/internal/core/ports"
	"go.trai.ch/histo/internal/core/ports/mocks"
	"go.trai.ch/histo/internal/engine/harness"
	"go.uber.org/mock/gomock"
)

type testApp struct {
	app       *app.App
	loader    *mocks.MockConfigLoader
	logger    *mocks.MockLogger
	solutions *mocks.MockSolutionFactory
	stdout    *bytes.Buffer
	cacheDir  string
}

func setupApp(t *testing.T) (*gomock.Controller, *testApp) {
	t.Helper()
	ctrl := gomock.NewController(t)

	ta := &testApp{
		loader:    mocks.NewMockConfigLoader(ctrl),
		logger:    mocks.NewMockLogger(ctrl),
		solutions: mocks.NewMockSolutionFactory(ctrl),
		stdout:    &bytes.Buffer{},
		cacheDir:  t.TempDir(),
	}
	ta.logger.EXPECT().Info(gomock.Any()).AnyTimes()

	store := cas.NewStore(ta.logger)
	h := harness.New(store, cas.NewLocker(ta.logger), cas.NewHasher(), rng.New(), ta.logger)
	ta.app = app.New(ta.loader, ta.logger, store, ta.solutions, h).WithStdout(ta.stdout)
	return ctrl, ta
}

func (ta *testApp) config(solution ...string) *domain.Config {
	cfg := domain.DefaultConfig()
	cfg.CacheDir = ta.cacheDir
	cfg.Solution = solution
	cfg.LockWait = time.Second
	return &cfg
}

func TestApp_Run_Reference(t *testing.T) {
	_, ta := setupApp(t)
	ta.loader.EXPECT().Load(domain.ConfigFileName, domain.Overrides{}).Return(ta.config("@reference"), nil)

	out := t.TempDir()
	reportPath := filepath.Join(out, "report.json")
	metricsPath := filepath.Join(out, "histo.prom")
	tracePath := filepath.Join(out, "trace.json")

	result, err := ta.app.Run(context.Background(), app.RunOptions{
		Args:        []string{"1000", "16", "42"},
		ReportPath:  reportPath,
		MetricsPath: metricsPath,
		TracePath:   tracePath,
	})
	require.NoError(t, err)
	assert.True(t, result.Passed())

	stdout := ta.stdout.String()
	assert.Contains(t, stdout, "[1/4] Looking for input file\n")
	assert.Contains(t, stdout, "[4/4] Running student solution\n")
	assert.Regexp(t, `Execution time: \d+ ms\n$`, stdout)

	var report map[string]any
	data, err := os.ReadFile(reportPath)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(data, &report))
	assert.Equal(t, "passed", report["status"])
	assert.Equal(t, "verified", report["stage"])

	prom, err := os.ReadFile(metricsPath)
	require.NoError(t, err)
	assert.Contains(t, string(prom), `histo_run_passed{b="16",n="1000"} 1`)

	trace, err := os.ReadFile(tracePath)
	require.NoError(t, err)
	assert.Contains(t, string(trace), `"Name": "run"`)
}

func TestApp_Run_ExternalSolution(t *testing.T) {
	ctrl, ta := setupApp(t)
	overrides := domain.Overrides{CacheDir: ta.cacheDir}
	ta.loader.EXPECT().Load("custom.yaml", overrides).Return(ta.config("./solve"), nil)

	solution := mocks.NewMockSolution(ctrl)
	ta.solutions.EXPECT().NewSolution([]string{"./solve"}).Return(solution, nil)
	solution.EXPECT().Compute(gomock.Any(), filepath.Join(ta.cacheDir, "input-4.dat"), int32(4), int32(2)).
		Return("", domain.ErrSolutionNoOutput)

	result, err := ta.app.Run(context.Background(), app.RunOptions{
		GlobalOptions: app.GlobalOptions{ConfigPath: "custom.yaml", Overrides: overrides},
		Args:          []string{"4", "2"},
	})
	require.ErrorIs(t, err, domain.ErrSolutionNoOutput)
	assert.Equal(t, domain.KindSolution, result.Kind)
}

func TestApp_Run_Usage(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		wantErr error
	}{
		{name: "too few", args: []string{"10"}, wantErr: domain.ErrInvalidArguments},
		{name: "too many", args: []string{"10", "4", "1", "2"}, wantErr: domain.ErrInvalidArguments},
		{name: "not a number", args: []string{"ten", "4"}, wantErr: domain.ErrInvalidArguments},
		{name: "negative N", args: []string{"-1", "4"}, wantErr: domain.ErrInvalidParams},
		{name: "zero buckets", args: []string{"10", "0"}, wantErr: domain.ErrInvalidParams},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, ta := setupApp(t)

			result, err := ta.app.Run(context.Background(), app.RunOptions{Args: tt.args})
			require.ErrorIs(t, err, tt.wantErr)
			assert.Nil(t, result)
			assert.Equal(t, domain.KindUsage, domain.KindOf(err))

			entries, err := os.ReadDir(ta.cacheDir)
			require.NoError(t, err)
			assert.Empty(t, entries, "no cache file is created")
			assert.Empty(t, ta.stdout.String())
		})
	}
}

func TestApp_Run_NoSolution(t *testing.T) {
	_, ta := setupApp(t)
	ta.loader.EXPECT().Load(gomock.Any(), gomock.Any()).Return(ta.config(), nil)
	ta.solutions.EXPECT().NewSolution(gomock.Nil()).Return(nil, domain.ErrNoSolution)

	_, err := ta.app.Run(context.Background(), app.RunOptions{Args: []string{"10", "4"}})
	require.ErrorIs(t, err, domain.ErrNoSolution)
	assert.Equal(t, domain.KindUsage, domain.KindOf(err))
}

func TestApp_Run_ConfigError(t *testing.T) {
	_, ta := setupApp(t)
	ta.loader.EXPECT().Load(gomock.Any(), gomock.Any()).Return(nil, domain.ErrConfigParseFailed)

	_, err := ta.app.Run(context.Background(), app.RunOptions{Args: []string{"10", "4"}})
	require.ErrorIs(t, err, domain.ErrConfigParseFailed)
}

func TestApp_Run_ReportFailure(t *testing.T) {
	t.Run("after a pass", func(t *testing.T) {
		_, ta := setupApp(t)
		ta.loader.EXPECT().Load(gomock.Any(), gomock.Any()).Return(ta.config("@reference"), nil)

		result, err := ta.app.Run(context.Background(), app.RunOptions{
			Args:       []string{"10", "4"},
			ReportPath: filepath.Join(t.TempDir(), "missing", "report.json"),
		})
		require.ErrorIs(t, err, domain.ErrReportWriteFailed)
		assert.True(t, result.Passed())
	})

	t.Run("after a failure", func(t *testing.T) {
		ctrl, ta := setupApp(t)
		ta.loader.EXPECT().Load(gomock.Any(), gomock.Any()).Return(ta.config("./solve"), nil)
		solution := mocks.NewMockSolution(ctrl)
		ta.solutions.EXPECT().NewSolution(gomock.Any()).Return(solution, nil)
		solution.EXPECT().Compute(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return("", domain.ErrSolutionFailed)
		ta.logger.EXPECT().Warn(gomock.Any())

		_, err := ta.app.Run(context.Background(), app.RunOptions{
			Args:       []string{"10", "4"},
			ReportPath: filepath.Join(t.TempDir(), "missing", "report.json"),
		})
		require.ErrorIs(t, err, domain.ErrSolutionFailed, "the verdict wins over the report error")
	})
}

// formatLogger records the log format applied after configuration loads.
type formatLogger struct {
	ports.Logger
	format string
}

func (l *formatLogger) SetFormat(format string) { l.format = format }

func TestApp_AppliesLogFormat(t *testing.T) {
	_, ta := setupApp(t)
	cfg := ta.config()
	cfg.LogFormat = domain.LogFormatJSON
	ta.loader.EXPECT().Load(gomock.Any(), gomock.Any()).Return(cfg, nil)

	log := &formatLogger{Logger: ta.logger}
	store := cas.NewStore(log)
	h := harness.New(store, cas.NewLocker(log), cas.NewHasher(), rng.New(), log)
	a := app.New(ta.loader, log, store, ta.solutions, h)

	_, err := a.Clean(context.Background(), app.CleanOptions{})
	require.NoError(t, err)
	assert.Equal(t, domain.LogFormatJSON, log.format)
}

func TestApp_Warm(t *testing.T) {
	_, ta := setupApp(t)
	cfg := ta.config()
	cfg.Jobs = 2
	ta.loader.EXPECT().Load(gomock.Any(), gomock.Any()).Return(cfg, nil)
	seed := uint64(5)

	warmed, err := ta.app.Warm(context.Background(), app.WarmOptions{
		Pairs: []string{"64:8", "64:4", "16:2"},
		Seed:  &seed,
	})
	require.NoError(t, err)
	require.Len(t, warmed, 3)

	for _, name := range []string{"input-64.dat", "input-16.dat", "sol-64-8.dat", "sol-64-4.dat", "sol-16-2.dat"} {
		assert.FileExists(t, filepath.Join(ta.cacheDir, name))
	}
}

func TestApp_Warm_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		pairs   []string
		wantErr error
	}{
		{name: "no pairs", pairs: nil, wantErr: domain.ErrInvalidPair},
		{name: "missing colon", pairs: []string{"64"}, wantErr: domain.ErrInvalidPair},
		{name: "not a number", pairs: []string{"64:x"}, wantErr: domain.ErrInvalidPair},
		{name: "zero buckets", pairs: []string{"64:0"}, wantErr: domain.ErrInvalidParams},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, ta := setupApp(t)

			_, err := ta.app.Warm(context.Background(), app.WarmOptions{Pairs: tt.pairs})
			require.ErrorIs(t, err, tt.wantErr)
			assert.Equal(t, domain.KindUsage, domain.KindOf(err))
		})
	}
}

func TestApp_Clean(t *testing.T) {
	_, ta := setupApp(t)
	ta.loader.EXPECT().Load(gomock.Any(), gomock.Any()).Return(ta.config(), nil).Times(2)
	for _, name := range []string{"input-8.dat", "sol-8-2.dat", "keep.txt"} {
		require.NoError(t, os.WriteFile(filepath.Join(ta.cacheDir, name), []byte("x"), 0o600))
	}

	planned, err := ta.app.Clean(context.Background(), app.CleanOptions{DryRun: true})
	require.NoError(t, err)
	assert.Len(t, planned, 2)
	assert.FileExists(t, filepath.Join(ta.cacheDir, "input-8.dat"))

	removed, err := ta.app.Clean(context.Background(), app.CleanOptions{})
	require.NoError(t, err)
	assert.Len(t, removed, 2)
	assert.NoFileExists(t, filepath.Join(ta.cacheDir, "input-8.dat"))
	assert.FileExists(t, filepath.Join(ta.cacheDir, "keep.txt"))
}
