package entities_test

import (
	"errors"
	"testing"

	"pdfmerger/internal/domain/entities"
)

func TestParseCompressionLevel(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected entities.CompressionLevel
		wantErr  bool
	}{
		{"Low", "low", entities.LevelLow, false},
		{"Medium", "medium", entities.LevelMedium, false},
		{"High", "high", entities.LevelHigh, false},
		{"Mixed case", "HIGH", entities.LevelHigh, false},
		{"Whitespace", " medium ", entities.LevelMedium, false},
		{"Unknown", "extreme", entities.LevelMedium, true},
		{"Empty", "", entities.LevelMedium, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			level, err := entities.ParseCompressionLevel(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ParseCompressionLevel(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err == nil && level != tt.expected {
				t.Errorf("Expected level %v, got %v", tt.expected, level)
			}
			if tt.wantErr && !errors.Is(err, entities.ErrInvalidLevel) {
				t.Errorf("Expected ErrInvalidLevel, got %v", err)
			}
		})
	}
}

func TestNewCompressionConfig_MetadataPolicy(t *testing.T) {
	tests := []struct {
		level                entities.CompressionLevel
		expectedCopyMetadata bool
	}{
		{entities.LevelLow, false},
		{entities.LevelMedium, true},
		{entities.LevelHigh, true},
	}

	for _, tt := range tests {
		t.Run(tt.level.String(), func(t *testing.T) {
			config := entities.NewCompressionConfig(tt.level)

			if config.CopyMetadata != tt.expectedCopyMetadata {
				t.Errorf("Level %s: expected CopyMetadata %v, got %v",
					tt.level, tt.expectedCopyMetadata, config.CopyMetadata)
			}

			// Потоки сжимаются одинаково на всех уровнях
			if !config.CompressStreams {
				t.Errorf("Level %s: CompressStreams must always be enabled", tt.level)
			}
		})
	}
}

func TestNewCompressionConfigWithLicense(t *testing.T) {
	config := entities.NewCompressionConfigWithLicense(entities.LevelHigh, "test-key")

	if config.UniPDFLicenseKey != "test-key" {
		t.Errorf("Expected license key to be kept, got %q", config.UniPDFLicenseKey)
	}
	if err := config.Validate(); err != nil {
		t.Errorf("Valid config must pass validation, got %v", err)
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		config  *entities.Config
		wantErr bool
	}{
		{
			name: "Valid config",
			config: &entities.Config{
				Compression: entities.AppCompressionConfig{Level: "medium", Algorithm: "pdfcpu"},
			},
			wantErr: false,
		},
		{
			name: "Unknown level",
			config: &entities.Config{
				Compression: entities.AppCompressionConfig{Level: "turbo", Algorithm: "pdfcpu"},
			},
			wantErr: true,
		},
		{
			name: "Unknown algorithm",
			config: &entities.Config{
				Compression: entities.AppCompressionConfig{Level: "low", Algorithm: "ghostscript"},
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
