package repositories

import (
	"pdfmerger/internal/domain/entities"
)

// PDFMerger интерфейс для объединения PDF файлов
type PDFMerger interface {
	// Validate проверяет, что файл читается как PDF
	Validate(path string) error
	// Merge записывает все страницы входных файлов в один выходной файл
	Merge(inputPaths []string, outputPath string) error
}

// PDFCompressor интерфейс для сжатия PDF файлов
type PDFCompressor interface {
	Compress(inputPath, outputPath string, config *entities.CompressionConfig) (*entities.CompressionStat, error)
}

// FileRepository интерфейс для работы с файловой системой
type FileRepository interface {
	FileExists(path string) bool
	FileSize(path string) (int64, error)
	CreateDirectory(path string) error
	ListPDFFiles(directory string) ([]string, error)
}
