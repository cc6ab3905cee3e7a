package usecases

import (
	"fmt"
	"path/filepath"

	"pdfmerger/internal/domain/entities"
	"pdfmerger/internal/domain/repositories"
)

// CompressPDFUseCase сценарий сжатия одного PDF файла
type CompressPDFUseCase struct {
	compressor repositories.PDFCompressor
	fileRepo   repositories.FileRepository
	logger     repositories.Logger
}

// NewCompressPDFUseCase создает новый сценарий сжатия PDF
func NewCompressPDFUseCase(
	compressor repositories.PDFCompressor,
	fileRepo repositories.FileRepository,
	logger repositories.Logger,
) *CompressPDFUseCase {
	return &CompressPDFUseCase{
		compressor: compressor,
		fileRepo:   fileRepo,
		logger:     logger,
	}
}

// Execute сжимает PDF файл. Если выходной путь не указан, результат
// сохраняется рядом с исходным файлом с суффиксом _compressed.
func (uc *CompressPDFUseCase) Execute(inputPath, outputPath string, config *entities.CompressionConfig) (*entities.CompressionStat, error) {
	if !uc.fileRepo.FileExists(inputPath) {
		return nil, entities.ErrFileNotFound
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("ошибка валидации конфигурации: %w", err)
	}

	if outputPath == "" {
		outputPath = DefaultCompressedPath(inputPath)
	}

	if uc.logger != nil {
		uc.logger.Info("Сжатие %s (уровень %s)", filepath.Base(inputPath), config.Level)
	}

	stat, err := uc.compressor.Compress(inputPath, outputPath, config)
	if err != nil {
		if uc.logger != nil {
			uc.logger.Error("Ошибка сжатия %s: %v", filepath.Base(inputPath), err)
		}
		return stat, fmt.Errorf("ошибка сжатия файла: %w", err)
	}

	if uc.logger != nil {
		uc.logger.Success("Сжато %s: %.2f KB → %.2f KB (%.1f%%)",
			stat.FileName,
			float64(stat.OriginalSize)/1024,
			float64(stat.CompressedSize)/1024,
			stat.ReductionPct)
	}

	return stat, nil
}

// DefaultCompressedPath возвращает путь результата по умолчанию:
// <имя_без_расширения>_compressed.pdf рядом с исходным файлом
func DefaultCompressedPath(inputPath string) string {
	ext := filepath.Ext(inputPath)
	base := inputPath[:len(inputPath)-len(ext)]
	return base + "_compressed" + ext
}
