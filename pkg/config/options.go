package config

import (
	"strings"
)

// Option is a function that modifies a Config.
// Options validate inputs and reject invalid values with warnings.
type Option func(*Config)

// OptPlantsDBPath sets the path of the plants SQLite database.
func OptPlantsDBPath(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("PlantsDB Path", s) {
			c.PlantsDB.Path = s
		}
	}
}

// OptGallformersDriver sets the Gallformers database driver.
// Valid values: "sqlite", "postgres".
func OptGallformersDriver(s string) Option {
	s = strings.ToLower(strings.TrimSpace(s))
	return func(c *Config) {
		if isValidEnum("Gallformers.Driver", s) {
			c.Gallformers.Driver = s
		}
	}
}

// OptGallformersPath sets the Gallformers SQLite file.
func OptGallformersPath(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Gallformers Path", s) {
			c.Gallformers.Path = s
		}
	}
}

// OptGallformersHost sets the PostgreSQL server hostname or IP address.
func OptGallformersHost(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Gallformers Host", s) {
			c.Gallformers.Host = s
		}
	}
}

// OptGallformersPort sets the PostgreSQL server port number.
func OptGallformersPort(i int) Option {
	return func(c *Config) {
		if isValidInt("Gallformers Port", i) {
			c.Gallformers.Port = i
		}
	}
}

// OptGallformersUser sets the PostgreSQL database username.
func OptGallformersUser(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Gallformers User", s) {
			c.Gallformers.User = s
		}
	}
}

// OptGallformersPassword sets the PostgreSQL database password.
func OptGallformersPassword(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Gallformers Password", s) {
			c.Gallformers.Password = s
		}
	}
}

// OptGallformersDatabase sets the PostgreSQL database name.
func OptGallformersDatabase(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Gallformers Database", s) {
			c.Gallformers.Database = s
		}
	}
}

// OptGallformersSSLMode sets the SSL connection mode.
// Valid values: "disable", "require", "verify-ca", "verify-full".
func OptGallformersSSLMode(s string) Option {
	s = strings.ToLower(strings.TrimSpace(s))
	return func(c *Config) {
		if isValidEnum("Gallformers.SSLMode", s) {
			c.Gallformers.SSLMode = s
		}
	}
}

// OptUSDADataDir sets the directory with USDA checklists.
func OptUSDADataDir(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("USDA DataDir", s) {
			c.USDA.DataDir = s
		}
	}
}

// OptUSDAEncoding sets the encoding of USDA CSV files.
// Valid values: "utf-8", "windows-1252".
func OptUSDAEncoding(s string) Option {
	s = strings.ToLower(strings.TrimSpace(s))
	return func(c *Config) {
		if isValidEnum("USDA.Encoding", s) {
			c.USDA.Encoding = s
		}
	}
}

// OptVASCANURL sets the VASCAN search endpoint.
func OptVASCANURL(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("VASCAN URL", s) {
			c.VASCAN.URL = s
		}
	}
}

// OptVASCANRequestsPerSecond limits the rate of VASCAN requests.
func OptVASCANRequestsPerSecond(i int) Option {
	return func(c *Config) {
		if isValidInt("VASCAN RequestsPerSecond", i) {
			c.VASCAN.RequestsPerSecond = i
		}
	}
}

// OptVASCANTimeout sets the timeout of one VASCAN request in seconds.
func OptVASCANTimeout(i int) Option {
	return func(c *Config) {
		if isValidInt("VASCAN Timeout", i) {
			c.VASCAN.Timeout = i
		}
	}
}

// OptImportRegions limits USDA import to the given region codes.
// Runtime-only field - not in ToOptions().
func OptImportRegions(ss []string) Option {
	var regions []string
	for _, v := range ss {
		v = strings.ToUpper(strings.TrimSpace(v))
		if v != "" {
			regions = append(regions, v)
		}
	}
	return func(c *Config) {
		if len(regions) > 0 {
			c.Import.Regions = regions
		}
	}
}

// OptExportReportPath sets the XLSX file of the match report.
// Runtime-only field - not in ToOptions().
func OptExportReportPath(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Report Path", s) {
			c.Export.ReportPath = s
		}
	}
}

// OptLogLevel sets the logging level.
// Valid values: "debug", "info", "warn", "error".
func OptLogLevel(s string) Option {
	s = strings.ToLower(strings.TrimSpace(s))
	return func(c *Config) {
		if isValidEnum("Log.Level", s) {
			c.Log.Level = s
		}
	}
}

// OptLogFormat sets the log output format.
// Valid values: "json", "text", "tint".
func OptLogFormat(s string) Option {
	s = strings.ToLower(strings.TrimSpace(s))
	return func(c *Config) {
		if isValidEnum("Log.Format", s) {
			c.Log.Format = s
		}
	}
}

// OptLogDestination sets where logs are written.
// Valid values: "file", "stderr", "stdout".
func OptLogDestination(s string) Option {
	s = strings.ToLower(strings.TrimSpace(s))
	return func(c *Config) {
		if isValidEnum("Log.Destination", s) {
			c.Log.Destination = s
		}
	}
}

// OptJobsNumber sets the number of concurrent workers.
// Default is runtime.NumCPU().
func OptJobsNumber(i int) Option {
	return func(c *Config) {
		if isValidInt("Jobs Number", i) {
			c.JobsNumber = i
		}
	}
}

// OptForce skips confirmations of destructive operations.
// Runtime-only field - not in ToOptions().
func OptForce(b bool) Option {
	return func(c *Config) {
		c.Force = b
	}
}

// OptHomeDir sets the home directory for config, data and log locations.
// Runtime-only field - not in ToOptions().
func OptHomeDir(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Home Directory", s) {
			c.HomeDir = s
		}
	}
}
