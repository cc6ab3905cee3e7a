package entities

import "strings"

// CompressionLevel уровень сжатия
type CompressionLevel int

const (
	LevelLow CompressionLevel = iota
	LevelMedium
	LevelHigh
)

// ParseCompressionLevel разбирает уровень сжатия из строки
func ParseCompressionLevel(s string) (CompressionLevel, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "low":
		return LevelLow, nil
	case "medium":
		return LevelMedium, nil
	case "high":
		return LevelHigh, nil
	default:
		return LevelMedium, ErrInvalidLevel
	}
}

// String возвращает строковое представление уровня
func (l CompressionLevel) String() string {
	switch l {
	case LevelLow:
		return "low"
	case LevelMedium:
		return "medium"
	case LevelHigh:
		return "high"
	default:
		return "unknown"
	}
}

// CompressionConfig представляет конфигурацию сжатия.
// Сами потоки данных сжимаются кодеком одинаково для всех уровней,
// уровень управляет только сопутствующей политикой (метаданные).
type CompressionConfig struct {
	Level            CompressionLevel
	CopyMetadata     bool   // Переносить метаданные документа в результат
	CompressStreams  bool   // Сжимать потоки данных
	UniPDFLicenseKey string // Лицензионный ключ для UniPDF
}

// NewCompressionConfig создает конфигурацию сжатия на основе уровня
func NewCompressionConfig(level CompressionLevel) *CompressionConfig {
	return NewCompressionConfigWithLicense(level, "")
}

// NewCompressionConfigWithLicense создает конфигурацию сжатия с лицензионным ключом
func NewCompressionConfigWithLicense(level CompressionLevel, licenseKey string) *CompressionConfig {
	config := &CompressionConfig{
		Level:            level,
		CompressStreams:  true,
		UniPDFLicenseKey: licenseKey,
	}

	// Метаданные переносятся начиная с уровня medium
	switch level {
	case LevelLow:
		config.CopyMetadata = false
	case LevelMedium, LevelHigh:
		config.CopyMetadata = true
	}

	return config
}

// Validate проверяет корректность конфигурации
func (c *CompressionConfig) Validate() error {
	if c.Level < LevelLow || c.Level > LevelHigh {
		return ErrInvalidLevel
	}
	return nil
}
