package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/cory-johannsen/skirmish/internal/game/combat"
)

func validConfig() Config {
	return Config{
		Logging: LoggingConfig{Level: "info", Format: "json", Output: "stderr"},
		Rules:   RulesConfig{ChargeMultiplier: 2, DefendMultiplier: 2},
	}
}

func TestValidConfig(t *testing.T) {
	assert.NoError(t, validConfig().Validate())
}

func TestRulesConfig_ToRules(t *testing.T) {
	r := RulesConfig{ChargeMultiplier: 3, DefendMultiplier: 1.5}.ToRules()
	assert.Equal(t, combat.Rules{ChargeMultiplier: 3, DefendMultiplier: 1.5}, r)
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.yaml")
	err := os.WriteFile(path, []byte(`
logging:
  level: debug
  format: console
rules:
  charge_multiplier: 3
content:
  roster_file: content/roster.yaml
`), 0o644)
	require.NoError(t, err)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "console", cfg.Logging.Format)
	assert.Equal(t, "stderr", cfg.Logging.Output)
	assert.Equal(t, 3.0, cfg.Rules.ChargeMultiplier)
	assert.Equal(t, 2.0, cfg.Rules.DefendMultiplier)
	assert.Equal(t, "content/roster.yaml", cfg.Content.RosterFile)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoad_EnvOverride(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.yaml")
	require.NoError(t, os.WriteFile(path, []byte("logging:\n  level: info\n"), 0o644))
	t.Setenv("SKIRMISH_RULES_DEFEND_MULTIPLIER", "4")
	t.Setenv("SKIRMISH_LOGGING_LEVEL", "warn")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 4.0, cfg.Rules.DefendMultiplier)
	assert.Equal(t, "warn", cfg.Logging.Level)
}

func TestLoadFromViper_Defaults(t *testing.T) {
	cfg, err := LoadFromViper(NewViper())
	require.NoError(t, err)
	assert.Equal(t, combat.DefaultRules(), cfg.Rules.ToRules())
	assert.Equal(t, "", cfg.Content.RosterFile)
}

func TestLoadFromViper_Invalid(t *testing.T) {
	v := NewViper()
	v.Set("rules.charge_multiplier", 0)
	_, err := LoadFromViper(v)
	assert.Error(t, err)
}

func TestValidate_InvalidLogging(t *testing.T) {
	cfg := validConfig()
	cfg.Logging.Level = "trace"
	cfg.Logging.Format = "xml"
	cfg.Logging.Output = ""
	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "logging.level")
	assert.Contains(t, err.Error(), "logging.format")
	assert.Contains(t, err.Error(), "logging.output")
}

func TestValidate_ReportsAllRuleViolations(t *testing.T) {
	cfg := validConfig()
	cfg.Rules = RulesConfig{ChargeMultiplier: -1, DefendMultiplier: 0}
	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "rules.charge_multiplier")
	assert.Contains(t, err.Error(), "rules.defend_multiplier")
}

func TestPropertyValidate_PositiveMultipliersAccepted(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		cfg := validConfig()
		cfg.Rules.ChargeMultiplier = rapid.Float64Range(0.01, 100).Draw(rt, "charge")
		cfg.Rules.DefendMultiplier = rapid.Float64Range(0.01, 100).Draw(rt, "defend")
		assert.NoError(rt, cfg.Validate())
	})
}

func TestPropertyValidate_NonPositiveMultiplierRejected(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		cfg := validConfig()
		cfg.Rules.ChargeMultiplier = rapid.Float64Range(-100, 0).Draw(rt, "charge")
		assert.Error(rt, cfg.Validate())
	})
}
