package tui

import (
	"encoding/json"
	"fmt"

	"github.com/zarlcorp/core/pkg/zstore"
)

// configEnvelope wraps a JSON-encoded config value so heterogeneous config
// types share a single zstore collection.
type configEnvelope struct {
	Data json.RawMessage `json:"data"`
}

// fraudRatePresets are the selectable withdrawal/transfer fraud rates.
// Zero is the all-legitimate practice mode.
var fraudRatePresets = []float64{0, 0.15, 0.30, 0.50}

// GameSettings tunes a shift before punch-in.
type GameSettings struct {
	FraudRate          float64 `json:"fraud_rate"`
	StartLevel         int     `json:"start_level"`
	AutoAdvanceSeconds int     `json:"auto_advance_seconds"`
}

// defaultSettings is what a fresh install plays with.
func defaultSettings() GameSettings {
	return GameSettings{
		FraudRate:          0.30,
		StartLevel:         1,
		AutoAdvanceSeconds: 2,
	}
}

// normalized clamps loaded settings into playable ranges.
func (s GameSettings) normalized() GameSettings {
	if s.FraudRate < 0 || s.FraudRate > 1 {
		s.FraudRate = 0.30
	}
	if s.StartLevel < 1 || s.StartLevel > 5 {
		s.StartLevel = 1
	}
	if s.AutoAdvanceSeconds < 0 || s.AutoAdvanceSeconds > 5 {
		s.AutoAdvanceSeconds = 2
	}
	return s
}

// loadConfig reads a typed config from the envelope collection. Missing or
// unreadable configs yield the zero value.
func loadConfig[T any](col *zstore.Collection[configEnvelope], key string) (T, bool) {
	var zero T
	if col == nil {
		return zero, false
	}

	env, err := col.Get(key)
	if err != nil {
		return zero, false
	}

	var v T
	if err := json.Unmarshal(env.Data, &v); err != nil {
		return zero, false
	}

	return v, true
}

// saveConfig persists a typed config into the envelope collection.
func saveConfig[T any](col *zstore.Collection[configEnvelope], key string, v T) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	return col.Put(key, configEnvelope{Data: data})
}
