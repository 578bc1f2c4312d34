package config_test

import (
	"path/filepath"
	"runtime"
	"testing"

	"github.com/gnames/gnplants/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDirs(t *testing.T) {
	tempHome := t.TempDir()

	tests := []struct {
		msg string
		fn  func(string) string
		res string
	}{
		{
			msg: "config dir",
			fn:  config.ConfigDir,
			res: filepath.Join(tempHome, ".config", "gnplants"),
		},
		{
			msg: "cache dir",
			fn:  config.CacheDir,
			res: filepath.Join(tempHome, ".cache", "gnplants"),
		},
		{
			msg: "log dir",
			fn:  config.LogDir,
			res: filepath.Join(tempHome, ".local", "share", "gnplants", "logs"),
		},
		{
			msg: "regions file",
			fn:  config.RegionsFilePath,
			res: filepath.Join(tempHome, ".config", "gnplants", "regions.yaml"),
		},
		{
			msg: "plants db",
			fn:  config.PlantsDBFilePath,
			res: filepath.Join(tempHome, ".local", "share", "gnplants", "plants.db"),
		},
	}

	for _, v := range tests {
		res := v.fn(tempHome)
		assert.Equal(t, v.res, res, v.msg)
	}
}

func TestNew(t *testing.T) {
	cfg := config.New()
	require.NotNil(t, cfg)

	assert.Equal(t, "sqlite", cfg.Gallformers.Driver)
	assert.Equal(t, 5432, cfg.Gallformers.Port)
	assert.Equal(t, "gallformers", cfg.Gallformers.Database)
	assert.Equal(t, "disable", cfg.Gallformers.SSLMode)

	assert.Equal(t, "utf-8", cfg.USDA.Encoding)
	assert.Equal(t, 5, cfg.VASCAN.RequestsPerSecond)
	assert.Equal(t, 30, cfg.VASCAN.Timeout)
	assert.Contains(t, cfg.VASCAN.URL, "vascan")

	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "file", cfg.Log.Destination)

	assert.Equal(t, runtime.NumCPU(), cfg.JobsNumber)
	assert.Empty(t, cfg.Export.ReportPath)
	assert.False(t, cfg.Force)
}

func TestDefaultPaths(t *testing.T) {
	assert := assert.New(t)
	cfg := config.New()
	cfg.Update([]config.Option{config.OptHomeDir("/home/user")})
	assert.Equal("/home/user/.local/share/gnplants/plants.db", cfg.PlantsDBPath())
	assert.Equal(
		"/home/user/.local/share/gnplants/gallformers.sqlite",
		cfg.GallformersPath(),
	)
	assert.Equal("/home/user/.local/share/gnplants/usda", cfg.USDADir())

	cfg.Update([]config.Option{
		config.OptPlantsDBPath("/tmp/p.db"),
		config.OptGallformersPath("/tmp/gf.sqlite"),
		config.OptUSDADataDir("/tmp/usda"),
	})
	assert.Equal("/tmp/p.db", cfg.PlantsDBPath())
	assert.Equal("/tmp/gf.sqlite", cfg.GallformersPath())
	assert.Equal("/tmp/usda", cfg.USDADir())
}

func TestOptionStrings(t *testing.T) {
	tests := []struct {
		msg   string
		opt   func(string) config.Option
		get   func(*config.Config) string
		input string
		res   string
	}{
		{
			msg:   "host",
			opt:   config.OptGallformersHost,
			get:   func(c *config.Config) string { return c.Gallformers.Host },
			input: "  db.example.com  ",
			res:   "db.example.com",
		},
		{
			msg:   "empty host",
			opt:   config.OptGallformersHost,
			get:   func(c *config.Config) string { return c.Gallformers.Host },
			input: "   ",
			res:   "localhost",
		},
		{
			msg:   "driver",
			opt:   config.OptGallformersDriver,
			get:   func(c *config.Config) string { return c.Gallformers.Driver },
			input: "Postgres",
			res:   "postgres",
		},
		{
			msg:   "bad driver",
			opt:   config.OptGallformersDriver,
			get:   func(c *config.Config) string { return c.Gallformers.Driver },
			input: "mysql",
			res:   "sqlite",
		},
		{
			msg:   "ssl mode",
			opt:   config.OptGallformersSSLMode,
			get:   func(c *config.Config) string { return c.Gallformers.SSLMode },
			input: "REQUIRE",
			res:   "require",
		},
		{
			msg:   "encoding",
			opt:   config.OptUSDAEncoding,
			get:   func(c *config.Config) string { return c.USDA.Encoding },
			input: "Windows-1252",
			res:   "windows-1252",
		},
		{
			msg:   "bad encoding",
			opt:   config.OptUSDAEncoding,
			get:   func(c *config.Config) string { return c.USDA.Encoding },
			input: "koi8-r",
			res:   "utf-8",
		},
		{
			msg:   "log level",
			opt:   config.OptLogLevel,
			get:   func(c *config.Config) string { return c.Log.Level },
			input: "DEBUG",
			res:   "debug",
		},
		{
			msg:   "bad log level",
			opt:   config.OptLogLevel,
			get:   func(c *config.Config) string { return c.Log.Level },
			input: "trace",
			res:   "info",
		},
		{
			msg:   "log format",
			opt:   config.OptLogFormat,
			get:   func(c *config.Config) string { return c.Log.Format },
			input: "tint",
			res:   "tint",
		},
		{
			msg:   "log destination",
			opt:   config.OptLogDestination,
			get:   func(c *config.Config) string { return c.Log.Destination },
			input: "stderr",
			res:   "stderr",
		},
		{
			msg:   "report path",
			opt:   config.OptExportReportPath,
			get:   func(c *config.Config) string { return c.Export.ReportPath },
			input: "report.xlsx",
			res:   "report.xlsx",
		},
	}

	for _, v := range tests {
		cfg := config.New()
		cfg.Update([]config.Option{v.opt(v.input)})
		assert.Equal(t, v.res, v.get(cfg), v.msg)
	}
}

func TestOptionInts(t *testing.T) {
	tests := []struct {
		msg   string
		opt   func(int) config.Option
		get   func(*config.Config) int
		input int
		res   int
	}{
		{
			msg:   "port",
			opt:   config.OptGallformersPort,
			get:   func(c *config.Config) int { return c.Gallformers.Port },
			input: 5433,
			res:   5433,
		},
		{
			msg:   "zero port",
			opt:   config.OptGallformersPort,
			get:   func(c *config.Config) int { return c.Gallformers.Port },
			input: 0,
			res:   5432,
		},
		{
			msg:   "rate",
			opt:   config.OptVASCANRequestsPerSecond,
			get:   func(c *config.Config) int { return c.VASCAN.RequestsPerSecond },
			input: 2,
			res:   2,
		},
		{
			msg:   "negative timeout",
			opt:   config.OptVASCANTimeout,
			get:   func(c *config.Config) int { return c.VASCAN.Timeout },
			input: -1,
			res:   30,
		},
		{
			msg:   "jobs",
			opt:   config.OptJobsNumber,
			get:   func(c *config.Config) int { return c.JobsNumber },
			input: 8,
			res:   8,
		},
	}

	for _, v := range tests {
		cfg := config.New()
		cfg.Update([]config.Option{v.opt(v.input)})
		assert.Equal(t, v.res, v.get(cfg), v.msg)
	}
}

func TestOptImportRegions(t *testing.T) {
	cfg := config.New()
	cfg.Update([]config.Option{config.OptImportRegions([]string{" nc", "", "VA"})})
	assert.Equal(t, []string{"NC", "VA"}, cfg.Import.Regions)

	cfg = config.New()
	cfg.Update([]config.Option{config.OptImportRegions(nil)})
	assert.Nil(t, cfg.Import.Regions)
}

func TestToOptions(t *testing.T) {
	cfg := config.New()
	cfg.Update([]config.Option{
		config.OptGallformersDriver("postgres"),
		config.OptGallformersHost("db.example.org"),
		config.OptUSDADataDir("/data/usda"),
		config.OptVASCANTimeout(5),
		config.OptJobsNumber(3),
		config.OptExportReportPath("r.xlsx"),
		config.OptHomeDir("/home/user"),
	})

	cfg2 := config.New()
	cfg2.Update(cfg.ToOptions())

	assert.Equal(t, cfg.Gallformers, cfg2.Gallformers)
	assert.Equal(t, cfg.USDA, cfg2.USDA)
	assert.Equal(t, cfg.VASCAN, cfg2.VASCAN)
	assert.Equal(t, cfg.Log, cfg2.Log)
	assert.Equal(t, 3, cfg2.JobsNumber)

	// runtime-only fields
	assert.Empty(t, cfg2.Export.ReportPath)
	assert.Empty(t, cfg2.HomeDir)
}
