// Package config holds the tunable arena settings.
// Defaults come from the parameter package; a YAML file may override any field.
package config

import (
	"github.com/lixenwraith/cthulhu-strike/parameter"
)

// Config is the full arena configuration
type Config struct {
	Player    PlayerConfig        `yaml:"player" json:"player"`
	Enemy     EnemyConfig         `yaml:"enemy" json:"enemy"`
	Spawn     SpawnConfig         `yaml:"spawn" json:"spawn"`
	Targeting TargetingConfig     `yaml:"targeting" json:"targeting"`
	Weapons   []WeaponConfig      `yaml:"weapons" json:"weapons" jsonschema:"minItems=5,maxItems=5"`
	Audio     AudioConfig         `yaml:"audio" json:"audio"`
	Keys      map[string][]string `yaml:"keys,omitempty" json:"keys,omitempty" jsonschema:"description=Action name to key names; replaces the default binding of each listed action"`
}

type PlayerConfig struct {
	Speed               float64  `yaml:"speed" json:"speed" jsonschema:"exclusiveMinimum=0,description=World units per second"`
	Health              int      `yaml:"health" json:"health" jsonschema:"minimum=1"`
	InvincibilityWindow Duration `yaml:"invincibility_window" json:"invincibility_window"`
	HalfExtent          float64  `yaml:"half_extent" json:"half_extent" jsonschema:"exclusiveMinimum=0"`
}

type EnemyConfig struct {
	Speed      float64 `yaml:"speed" json:"speed" jsonschema:"minimum=0"`
	Health     int     `yaml:"health" json:"health" jsonschema:"minimum=1"`
	HalfExtent float64 `yaml:"half_extent" json:"half_extent" jsonschema:"exclusiveMinimum=0"`
}

type SpawnConfig struct {
	Interval Duration `yaml:"interval" json:"interval"`
	Distance float64  `yaml:"distance" json:"distance" jsonschema:"minimum=0"`
	MaxCount int      `yaml:"max_count" json:"max_count" jsonschema:"minimum=0"`
}

type TargetingConfig struct {
	Range            float64 `yaml:"range" json:"range" jsonschema:"exclusiveMinimum=0"`
	HalfAngleDegrees float64 `yaml:"half_angle_degrees" json:"half_angle_degrees" jsonschema:"exclusiveMinimum=0,exclusiveMaximum=90"`
}

// WeaponConfig is one arsenal entry; list order is hotkey order
type WeaponConfig struct {
	Name      string   `yaml:"name" json:"name" jsonschema:"minLength=1"`
	Damage    int      `yaml:"damage" json:"damage" jsonschema:"minimum=0"`
	Ammo      int      `yaml:"ammo" json:"ammo" jsonschema:"minimum=1"`
	FireDelay Duration `yaml:"fire_delay" json:"fire_delay"`
	Reload    Duration `yaml:"reload" json:"reload"`
	Automatic bool     `yaml:"automatic,omitempty" json:"automatic,omitempty"`
}

type AudioConfig struct {
	Enabled      bool    `yaml:"enabled" json:"enabled"`
	MasterVolume float64 `yaml:"master_volume" json:"master_volume" jsonschema:"minimum=0,maximum=1"`
}

// Default returns the compiled-in configuration
func Default() *Config {
	weapons := make([]WeaponConfig, 0, len(parameter.WeaponCatalog))
	for _, p := range parameter.WeaponCatalog {
		weapons = append(weapons, WeaponConfig{
			Name:      p.Name,
			Damage:    p.Damage,
			Ammo:      p.Ammo,
			FireDelay: Duration(p.FireDelay),
			Reload:    Duration(p.Reload),
			Automatic: p.Automatic,
		})
	}

	return &Config{
		Player: PlayerConfig{
			Speed:               parameter.PlayerSpeed,
			Health:              parameter.PlayerHealth,
			InvincibilityWindow: Duration(parameter.PlayerInvincibilityWindow),
			HalfExtent:          parameter.ActorHalfExtent,
		},
		Enemy: EnemyConfig{
			Speed:      parameter.EnemySpeed,
			Health:     parameter.EnemyHealth,
			HalfExtent: parameter.ActorHalfExtent,
		},
		Spawn: SpawnConfig{
			Interval: Duration(parameter.EnemySpawnInterval),
			Distance: parameter.EnemySpawnDistance,
			MaxCount: parameter.EnemyMaxCount,
		},
		Targeting: TargetingConfig{
			Range:            parameter.EngagementRange,
			HalfAngleDegrees: parameter.ConeHalfAngleDegrees,
		},
		Weapons: weapons,
		Audio: AudioConfig{
			Enabled:      true,
			MasterVolume: parameter.AudioMasterVolume,
		},
	}
}
