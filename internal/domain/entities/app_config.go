package entities

import (
	"fmt"
	"time"
)

// Config представляет конфигурацию приложения
type Config struct {
	Merge       MergeConfig          `yaml:"merge"`
	Compression AppCompressionConfig `yaml:"compression"`
	Output      OutputConfig         `yaml:"output"`
}

// MergeConfig настройки объединения по умолчанию
type MergeConfig struct {
	SourceDirectory string `yaml:"source_directory"`
	OutputFileName  string `yaml:"output_file_name"`
	ExcludeOutput   bool   `yaml:"exclude_output"`
}

// AppCompressionConfig настройки сжатия приложения
type AppCompressionConfig struct {
	Level            string `yaml:"level"`     // low | medium | high
	Algorithm        string `yaml:"algorithm"` // pdfcpu | unipdf
	OutputDirectory  string `yaml:"output_directory"`
	OutputSuffix     string `yaml:"output_suffix"`
	UniPDFLicenseKey string `yaml:"unipdf_license_key"`
}

// OutputConfig настройки вывода
type OutputConfig struct {
	LogLevel     string `yaml:"log_level"`
	LogToFile    bool   `yaml:"log_to_file"`
	LogFileName  string `yaml:"log_file_name"`
	LogMaxSizeMB int    `yaml:"log_max_size_mb"`
}

// Validate проверяет корректность конфигурации приложения
func (c *Config) Validate() error {
	if _, err := ParseCompressionLevel(c.Compression.Level); err != nil {
		return err
	}

	switch c.Compression.Algorithm {
	case "pdfcpu", "unipdf":
	default:
		return ErrUnknownAlgorithm
	}

	return nil
}

// OperationKind тип фоновой операции
type OperationKind int

const (
	OperationMergeFolder OperationKind = iota
	OperationMergeFiles
	OperationCompressFile
	OperationCompressFolder
)

// String возвращает название операции
func (k OperationKind) String() string {
	switch k {
	case OperationMergeFolder:
		return "Объединение директории"
	case OperationMergeFiles:
		return "Объединение списка файлов"
	case OperationCompressFile:
		return "Сжатие файла"
	case OperationCompressFolder:
		return "Сжатие директории"
	default:
		return "Неизвестная операция"
	}
}

// OperationOutcome одноразовое уведомление о завершении фоновой операции.
// Это единственные данные, пересекающие границу между фоновой горутиной
// и интерфейсом; читается получателем ровно один раз.
type OperationOutcome struct {
	Kind        OperationKind
	Success     bool
	Message     string
	Merge       *MergeResult
	Summary     *CompressionSummary
	Stat        *CompressionStat
	ElapsedTime time.Duration
	Err         error
}

// FormatDetails формирует развернутый текст результата для диалога UI
func (o *OperationOutcome) FormatDetails() string {
	details := o.Message

	switch {
	case o.Merge != nil:
		details += fmt.Sprintf("\n\nОбъединено файлов: %d", o.Merge.MergedCount)
		if o.Merge.SkippedCount > 0 {
			details += fmt.Sprintf("\nПропущено (нечитаемые): %d", o.Merge.SkippedCount)
		}
		details += fmt.Sprintf("\nРезультат: %s", o.Merge.OutputPath)

	case o.Summary != nil:
		details += fmt.Sprintf("\n\nОбработано файлов: %d", o.Summary.FilesCount)
		details += fmt.Sprintf("\nИсходный размер: %.2f MB", float64(o.Summary.TotalOriginalSize)/1024/1024)
		details += fmt.Sprintf("\nСжатый размер: %.2f MB", float64(o.Summary.TotalCompressedSize)/1024/1024)
		details += fmt.Sprintf("\nСжатие: %.1f%%", o.Summary.TotalReductionPct)
		details += fmt.Sprintf("\nСэкономлено: %.2f MB", float64(o.Summary.TotalSavedSpace)/1024/1024)
		if o.Summary.FailedCount > 0 {
			details += fmt.Sprintf("\nОшибок: %d", o.Summary.FailedCount)
		}

	case o.Stat != nil:
		details += fmt.Sprintf("\n\nИсходный размер: %.2f KB", float64(o.Stat.OriginalSize)/1024)
		details += fmt.Sprintf("\nСжатый размер: %.2f KB", float64(o.Stat.CompressedSize)/1024)
		details += fmt.Sprintf("\nСжатие: %.1f%%", o.Stat.ReductionPct)
		details += fmt.Sprintf("\nРезультат: %s", o.Stat.OutputPath)
	}

	return details
}

// UIScreen типы экранов UI
type UIScreen int

const (
	UIScreenMenu UIScreen = iota
	UIScreenMerge
	UIScreenCompress
	UIScreenConfig
	UIScreenProcessing
)
