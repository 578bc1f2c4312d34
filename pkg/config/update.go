package config

import (
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/gnames/gn"
)

// Update applies a slice of Option functions to the Config.
// Invalid options are rejected with warnings, config remains valid.
func (c *Config) Update(opts []Option) {
	for _, opt := range opts {
		opt(c)
	}
}

// ToOptions converts the Config to a slice of Option functions.
// Only includes persistent fields appropriate for config.yaml.
func (c *Config) ToOptions() []Option {
	var res []Option
	addStr := func(s string, fn func(string) Option) {
		if s != "" {
			res = append(res, fn(s))
		}
	}
	addInt := func(i int, fn func(int) Option) {
		if i > 0 {
			res = append(res, fn(i))
		}
	}

	addStr(c.PlantsDB.Path, OptPlantsDBPath)

	addStr(c.Gallformers.Driver, OptGallformersDriver)
	addStr(c.Gallformers.Path, OptGallformersPath)
	addStr(c.Gallformers.Host, OptGallformersHost)
	addInt(c.Gallformers.Port, OptGallformersPort)
	addStr(c.Gallformers.User, OptGallformersUser)
	addStr(c.Gallformers.Password, OptGallformersPassword)
	addStr(c.Gallformers.Database, OptGallformersDatabase)
	addStr(c.Gallformers.SSLMode, OptGallformersSSLMode)

	addStr(c.USDA.DataDir, OptUSDADataDir)
	addStr(c.USDA.Encoding, OptUSDAEncoding)

	addStr(c.VASCAN.URL, OptVASCANURL)
	addInt(c.VASCAN.RequestsPerSecond, OptVASCANRequestsPerSecond)
	addInt(c.VASCAN.Timeout, OptVASCANTimeout)

	addStr(c.Log.Format, OptLogFormat)
	addStr(c.Log.Level, OptLogLevel)
	addStr(c.Log.Destination, OptLogDestination)

	addInt(c.JobsNumber, OptJobsNumber)
	return res
}

func isValidString(name, s string) bool {
	res := s != ""
	if !res {
		gn.Warn("<em>%s</em> cannot be empty, ignoring", name)
	}
	return res
}

func isValidInt(name string, i int) bool {
	res := i > 0
	if !res {
		gn.Warn("<em>%s</em> has to be positive number, ignoring %d", name, i)
	}
	return res
}

var enums = func() map[string]map[string]struct{} {
	s := struct{}{}
	return map[string]map[string]struct{}{
		"Gallformers.Driver": {"sqlite": s, "postgres": s},
		"Gallformers.SSLMode": {"disable": s, "require": s,
			"verify-ca": s, "verify-full": s},
		"USDA.Encoding":   {"utf-8": s, "windows-1252": s},
		"Log.Level":       {"debug": s, "info": s, "warn": s, "error": s},
		"Log.Format":      {"json": s, "text": s, "tint": s},
		"Log.Destination": {"file": s, "stderr": s, "stdout": s},
	}
}()

func isValidEnum(name, val string) bool {
	if _, ok := enums[name][val]; ok {
		return true
	}

	vals := slices.Sorted(maps.Keys(enums[name]))
	var lines []string
	for _, v := range vals {
		lines = append(lines, fmt.Sprintf("  * %s", v))
	}
	gn.Warn(
		"<em>%s</em> does not support '%s' as a value. "+
			"Valid values are: \n%s\nIgnoring...",
		name, val, strings.Join(lines, "\n"),
	)
	return false
}
