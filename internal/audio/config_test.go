package audio

import "testing"

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv(EnvEnabled, "")
	t.Setenv(EnvVolume, "")

	cfg := LoadConfig()
	if cfg != DefaultConfig() {
		t.Errorf("LoadConfig() = %+v, expected defaults %+v", cfg, DefaultConfig())
	}
}

func TestLoadConfigEnabled(t *testing.T) {
	testCases := []struct {
		value    string
		expected bool
	}{
		{"true", true},
		{"false", false},
		{"1", true},
		{"0", false},
		{"garbage", true}, // Unparseable keeps the default
	}

	for _, tc := range testCases {
		t.Run(tc.value, func(t *testing.T) {
			t.Setenv(EnvEnabled, tc.value)
			if cfg := LoadConfig(); cfg.Enabled != tc.expected {
				t.Errorf("Expected Enabled=%v for value %s, got %v", tc.expected, tc.value, cfg.Enabled)
			}
		})
	}
}

func TestLoadConfigVolume(t *testing.T) {
	testCases := []struct {
		value    string
		expected float64
	}{
		{"0", 0.0},
		{"50", 0.5},
		{"75", 0.75},
		{"100", 1.0},
		{"-50", 0.0},
		{"150", 1.0},
		{"loud", 0.5},
	}

	for _, tc := range testCases {
		t.Run(tc.value, func(t *testing.T) {
			t.Setenv(EnvVolume, tc.value)
			if cfg := LoadConfig(); cfg.Volume != tc.expected {
				t.Errorf("Expected Volume=%f for value %s, got %f", tc.expected, tc.value, cfg.Volume)
			}
		})
	}
}
