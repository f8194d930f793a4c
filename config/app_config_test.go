package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// MockPreferences implements fyne.Preferences for testing
type MockPreferences struct {
	data map[string]interface{}
}

func NewMockPreferences() *MockPreferences {
	return &MockPreferences{
		data: make(map[string]interface{}),
	}
}

func (m *MockPreferences) Bool(key string) bool {
	val, ok := m.data[key]
	if !ok {
		return false
	}
	return val.(bool)
}

func (m *MockPreferences) BoolWithFallback(key string, fallback bool) bool {
	val, ok := m.data[key]
	if !ok {
		return fallback
	}
	return val.(bool)
}

func (m *MockPreferences) SetBool(key string, value bool) {
	m.data[key] = value
}

func (m *MockPreferences) Float(key string) float64 {
	val, ok := m.data[key]
	if !ok {
		return 0.0
	}
	return val.(float64)
}

func (m *MockPreferences) FloatWithFallback(key string, fallback float64) float64 {
	val, ok := m.data[key]
	if !ok {
		return fallback
	}
	return val.(float64)
}

func (m *MockPreferences) SetFloat(key string, value float64) {
	m.data[key] = value
}

func (m *MockPreferences) Int(key string) int {
	val, ok := m.data[key]
	if !ok {
		return 0
	}
	return val.(int)
}

func (m *MockPreferences) IntWithFallback(key string, fallback int) int {
	val, ok := m.data[key]
	if !ok {
		return fallback
	}
	return val.(int)
}

func (m *MockPreferences) SetInt(key string, value int) {
	m.data[key] = value
}

func (m *MockPreferences) String(key string) string {
	val, ok := m.data[key]
	if !ok {
		return ""
	}
	return val.(string)
}

func (m *MockPreferences) StringWithFallback(key string, fallback string) string {
	val, ok := m.data[key]
	if !ok {
		return fallback
	}
	return val.(string)
}

func (m *MockPreferences) SetString(key string, value string) {
	m.data[key] = value
}

func (m *MockPreferences) StringList(key string) []string {
	val, ok := m.data[key]
	if !ok {
		return []string{}
	}
	return val.([]string)
}

func (m *MockPreferences) StringListWithFallback(key string, fallback []string) []string {
	val, ok := m.data[key]
	if !ok {
		return fallback
	}
	return val.([]string)
}

func (m *MockPreferences) SetStringList(key string, value []string) {
	m.data[key] = value
}

func (m *MockPreferences) BoolList(key string) []bool {
	val, ok := m.data[key]
	if !ok {
		return []bool{}
	}
	return val.([]bool)
}

func (m *MockPreferences) BoolListWithFallback(key string, fallback []bool) []bool {
	val, ok := m.data[key]
	if !ok {
		return fallback
	}
	return val.([]bool)
}

func (m *MockPreferences) SetBoolList(key string, value []bool) {
	m.data[key] = value
}

func (m *MockPreferences) FloatList(key string) []float64 {
	val, ok := m.data[key]
	if !ok {
		return []float64{}
	}
	return val.([]float64)
}

func (m *MockPreferences) FloatListWithFallback(key string, fallback []float64) []float64 {
	val, ok := m.data[key]
	if !ok {
		return fallback
	}
	return val.([]float64)
}

func (m *MockPreferences) SetFloatList(key string, value []float64) {
	m.data[key] = value
}

func (m *MockPreferences) IntList(key string) []int {
	val, ok := m.data[key]
	if !ok {
		return []int{}
	}
	return val.([]int)
}

func (m *MockPreferences) IntListWithFallback(key string, fallback []int) []int {
	val, ok := m.data[key]
	if !ok {
		return fallback
	}
	return val.([]int)
}

func (m *MockPreferences) SetIntList(key string, value []int) {
	m.data[key] = value
}

func (m *MockPreferences) RemoveValue(key string) {
	delete(m.data, key)
}

func (m *MockPreferences) AddChangeListener(func()) {
	// No-op for now
}

func (m *MockPreferences) ChangeListeners() []func() {
	return []func(){}
}

func TestAppConfigDefaults(t *testing.T) {
	cfg := NewAppConfig(NewMockPreferences())

	assert.Equal(t, DefaultInitialOpacity, cfg.GetInitialOpacity())
	assert.Equal(t, DefaultOpacityStep, cfg.GetOpacityStep())
	assert.Equal(t, DefaultMinWidth, cfg.GetMinWidth())
	assert.Equal(t, DefaultScreenFraction, cfg.GetScreenFraction())
	assert.Equal(t, DefaultCornerRadius, cfg.GetCornerRadius())
	assert.Equal(t, DefaultFadeDuration, cfg.GetFadeDuration())

	assert.Equal(t, Default(), cfg.Load())
}

func TestAppConfigOverrides(t *testing.T) {
	prefs := NewMockPreferences()
	prefs.SetFloat(InitialOpacityKey, 0.5)
	prefs.SetFloat(OpacityStepKey, 0.1)
	prefs.SetFloat(MinWidthKey, 150)
	prefs.SetFloat(ScreenFractionKey, 0.6)
	prefs.SetFloat(CornerRadiusKey, 0)
	prefs.SetInt(FadeDurationKey, 350)

	loaded := NewAppConfig(prefs).Load()

	assert.Equal(t, 0.5, loaded.InitialOpacity)
	assert.Equal(t, 0.1, loaded.OpacityStep)
	assert.Equal(t, 150.0, loaded.MinWidth)
	assert.Equal(t, 0.6, loaded.ScreenFraction)
	assert.Equal(t, 0.0, loaded.CornerRadius)
	assert.Equal(t, 350*time.Millisecond, loaded.FadeDuration)
}

func TestAppConfigRejectsInvalid(t *testing.T) {
	tests := []struct {
		name  string
		apply func(p *MockPreferences)
		check func(t *testing.T, c Config)
	}{
		{
			name:  "Opacity too low",
			apply: func(p *MockPreferences) { p.SetFloat(InitialOpacityKey, 0.01) },
			check: func(t *testing.T, c Config) { assert.Equal(t, DefaultInitialOpacity, c.InitialOpacity) },
		},
		{
			name:  "Opacity too high",
			apply: func(p *MockPreferences) { p.SetFloat(InitialOpacityKey, 1.5) },
			check: func(t *testing.T, c Config) { assert.Equal(t, DefaultInitialOpacity, c.InitialOpacity) },
		},
		{
			name:  "Zero step",
			apply: func(p *MockPreferences) { p.SetFloat(OpacityStepKey, 0) },
			check: func(t *testing.T, c Config) { assert.Equal(t, DefaultOpacityStep, c.OpacityStep) },
		},
		{
			name:  "Negative width",
			apply: func(p *MockPreferences) { p.SetFloat(MinWidthKey, -10) },
			check: func(t *testing.T, c Config) { assert.Equal(t, DefaultMinWidth, c.MinWidth) },
		},
		{
			name:  "Fraction above one",
			apply: func(p *MockPreferences) { p.SetFloat(ScreenFractionKey, 1.2) },
			check: func(t *testing.T, c Config) { assert.Equal(t, DefaultScreenFraction, c.ScreenFraction) },
		},
		{
			name:  "Negative radius",
			apply: func(p *MockPreferences) { p.SetFloat(CornerRadiusKey, -1) },
			check: func(t *testing.T, c Config) { assert.Equal(t, DefaultCornerRadius, c.CornerRadius) },
		},
		{
			name:  "Negative fade",
			apply: func(p *MockPreferences) { p.SetInt(FadeDurationKey, -5) },
			check: func(t *testing.T, c Config) { assert.Equal(t, DefaultFadeDuration, c.FadeDuration) },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			prefs := NewMockPreferences()
			tt.apply(prefs)
			tt.check(t, NewAppConfig(prefs).Load())
		})
	}
}
