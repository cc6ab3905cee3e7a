package usecases

import (
	"fmt"
	"path/filepath"

	"pdfmerger/internal/domain/entities"
	"pdfmerger/internal/domain/repositories"
)

// CompressFolderUseCase сценарий сжатия всех PDF файлов в директории
type CompressFolderUseCase struct {
	resolver         *ResolveInputsUseCase
	compressor       repositories.PDFCompressor
	fileRepo         repositories.FileRepository
	logger           repositories.Logger
	progressReporter func(processed, total int, stat *entities.CompressionStat)
}

// NewCompressFolderUseCase создает новый сценарий сжатия директории
func NewCompressFolderUseCase(
	resolver *ResolveInputsUseCase,
	compressor repositories.PDFCompressor,
	fileRepo repositories.FileRepository,
	logger repositories.Logger,
) *CompressFolderUseCase {
	return &CompressFolderUseCase{
		resolver:   resolver,
		compressor: compressor,
		fileRepo:   fileRepo,
		logger:     logger,
	}
}

// SetProgressReporter устанавливает функцию для отчета о прогрессе
func (uc *CompressFolderUseCase) SetProgressReporter(reporter func(processed, total int, stat *entities.CompressionStat)) {
	uc.progressReporter = reporter
}

// Execute сжимает все PDF файлы директории в outputFolder под теми же
// именами. Файлы обрабатываются строго последовательно в лексикографическом
// порядке; ошибка отдельного файла фиксируется в сводке и не прерывает
// обработку остальных.
func (uc *CompressFolderUseCase) Execute(folderPath, outputFolder string, config *entities.CompressionConfig) (*entities.CompressionSummary, error) {
	// Выходные файлы кладутся в отдельную директорию, поэтому исключать
	// результат из входов не нужно
	inputs, err := uc.resolver.ResolveFolder(folderPath, "", false)
	if err != nil {
		return nil, err
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("ошибка валидации конфигурации: %w", err)
	}

	if outputFolder == "" {
		outputFolder = filepath.Join(folderPath, "compressed")
	}

	if err := uc.fileRepo.CreateDirectory(outputFolder); err != nil {
		return nil, fmt.Errorf("ошибка создания выходной директории: %w", err)
	}

	uc.logInfo("Найдено файлов для сжатия: %d", inputs.Len())

	stats := make([]*entities.CompressionStat, 0, inputs.Len())
	for i, inputFile := range inputs.Files {
		fileName := filepath.Base(inputFile)
		outputFile := filepath.Join(outputFolder, fileName)

		stat, err := uc.compressor.Compress(inputFile, outputFile, config)
		if err != nil {
			if stat == nil {
				stat = &entities.CompressionStat{FileName: fileName, Error: err}
			}
			uc.logError("[%d/%d] ✗ %s: %v", i+1, inputs.Len(), fileName, err)
		} else {
			uc.logSuccess("[%d/%d] ✓ %s: %.2f KB → %.2f KB (%.1f%%)",
				i+1, inputs.Len(), fileName,
				float64(stat.OriginalSize)/1024,
				float64(stat.CompressedSize)/1024,
				stat.ReductionPct)
		}

		stats = append(stats, stat)

		if uc.progressReporter != nil {
			uc.progressReporter(i+1, inputs.Len(), stat)
		}
	}

	summary := entities.Summarize(stats)

	uc.logInfo("╔════════════════════════════════════════════════════════════")
	uc.logInfo("║ Сжатие директории завершено")
	uc.logInfo("╠════════════════════════════════════════════════════════════")
	uc.logInfo("║ Всего файлов: %d", summary.FilesCount)
	uc.logSuccess("║ Успешно: %d", summary.SuccessCount)
	if summary.FailedCount > 0 {
		uc.logError("║ Ошибок: %d", summary.FailedCount)
	}
	if summary.TotalOriginalSize > 0 {
		uc.logInfo("║ Исходный размер: %.2f MB", float64(summary.TotalOriginalSize)/1024/1024)
		uc.logInfo("║ Сжатый размер: %.2f MB", float64(summary.TotalCompressedSize)/1024/1024)
		uc.logSuccess("║ Сжатие: %.1f%% | Сэкономлено: %.2f MB",
			summary.TotalReductionPct,
			float64(summary.TotalSavedSpace)/1024/1024)
	}
	uc.logInfo("╚════════════════════════════════════════════════════════════")

	return summary, nil
}

// Методы для логирования
func (uc *CompressFolderUseCase) logInfo(format string, args ...interface{}) {
	if uc.logger != nil {
		uc.logger.Info(format, args...)
	}
}

func (uc *CompressFolderUseCase) logSuccess(format string, args ...interface{}) {
	if uc.logger != nil {
		uc.logger.Success(format, args...)
	}
}

func (uc *CompressFolderUseCase) logError(format string, args ...interface{}) {
	if uc.logger != nil {
		uc.logger.Error(format, args...)
	}
}
