package compressors

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pdfcpu/pdfcpu/pkg/api"

	"pdfmerger/internal/domain/entities"
)

// PDFCPUCompressor реализация компрессора с использованием PDFCPU
type PDFCPUCompressor struct{}

// NewPDFCPUCompressor создает новый PDFCPU компрессор
func NewPDFCPUCompressor() *PDFCPUCompressor {
	return &PDFCPUCompressor{}
}

// Compress сжимает PDF файл используя PDFCPU библиотеку.
// Оптимизация выполняется единственным проходом библиотеки, одинаковым
// для всех уровней; метаданные документа PDFCPU сохраняет сам, поэтому
// флаг CopyMetadata здесь ни на что не влияет.
func (p *PDFCPUCompressor) Compress(inputPath, outputPath string, config *entities.CompressionConfig) (*entities.CompressionStat, error) {
	originalInfo, err := os.Stat(inputPath)
	if err != nil {
		return nil, fmt.Errorf("ошибка получения информации об исходном файле: %w", err)
	}

	stat := &entities.CompressionStat{
		FileName:     filepath.Base(inputPath),
		OutputPath:   outputPath,
		OriginalSize: originalInfo.Size(),
	}

	if err := api.OptimizeFile(inputPath, outputPath, nil); err != nil {
		stat.Error = err
		return stat, fmt.Errorf("ошибка оптимизации PDFCPU: %w", err)
	}

	compressedInfo, err := os.Stat(outputPath)
	if err != nil {
		stat.Error = err
		return stat, fmt.Errorf("ошибка получения информации о сжатом файле: %w", err)
	}

	stat.CompressedSize = compressedInfo.Size()
	stat.Success = true
	stat.CalculateReduction()

	return stat, nil
}
