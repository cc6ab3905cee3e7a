package compressors

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/unidoc/unipdf/v3/model"
	"github.com/unidoc/unipdf/v3/model/optimize"

	"pdfmerger/internal/domain/entities"
)

// UniPDFCompressor реализация компрессора с использованием UniPDF
type UniPDFCompressor struct{}

// NewUniPDFCompressor создает новый UniPDF компрессор
func NewUniPDFCompressor() *UniPDFCompressor {
	return &UniPDFCompressor{}
}

// Compress сжимает PDF файл используя UniPDF библиотеку.
// Страницы копируются в новый документ и проходят один проход оптимизатора,
// одинаковый для всех уровней. При CopyMetadata метаданные исходного
// документа переносятся в результат.
func (u *UniPDFCompressor) Compress(inputPath, outputPath string, config *entities.CompressionConfig) (*entities.CompressionStat, error) {
	// Проверяем лицензионный ключ из конфигурации или переменной окружения
	licenseKey := config.UniPDFLicenseKey
	if licenseKey == "" {
		licenseKey = os.Getenv("UNIDOC_LICENSE_API_KEY")
	}

	if licenseKey == "" {
		return nil, fmt.Errorf("%w: установите ключ в конфигурации или в переменной UNIDOC_LICENSE_API_KEY, либо используйте алгоритм 'pdfcpu'", entities.ErrLicenseKeyRequired)
	}
	os.Setenv("UNIDOC_LICENSE_API_KEY", licenseKey)

	originalInfo, err := os.Stat(inputPath)
	if err != nil {
		return nil, fmt.Errorf("ошибка получения информации об исходном файле: %w", err)
	}

	stat := &entities.CompressionStat{
		FileName:     filepath.Base(inputPath),
		OutputPath:   outputPath,
		OriginalSize: originalInfo.Size(),
	}

	pdfReader, file, err := model.NewPdfReaderFromFile(inputPath, nil)
	if err != nil {
		stat.Error = err
		return stat, fmt.Errorf("ошибка открытия файла: %w", err)
	}
	defer file.Close()

	pdfWriter := model.NewPdfWriter()

	pdfWriter.SetOptimizer(optimize.New(optimize.Options{
		CombineDuplicateDirectObjects:   true,
		CombineIdenticalIndirectObjects: true,
		CompressStreams:                 config.CompressStreams,
	}))

	numPages, err := pdfReader.GetNumPages()
	if err != nil {
		stat.Error = err
		return stat, fmt.Errorf("ошибка получения количества страниц: %w", err)
	}

	for i := 1; i <= numPages; i++ {
		page, err := pdfReader.GetPage(i)
		if err != nil {
			stat.Error = err
			return stat, fmt.Errorf("ошибка получения страницы %d: %w", i, err)
		}

		if err := pdfWriter.AddPage(page); err != nil {
			stat.Error = err
			return stat, fmt.Errorf("ошибка добавления страницы %d: %w", i, err)
		}
	}

	// Перенос метаданных документа для уровней medium и high
	if config.CopyMetadata {
		if info, err := pdfReader.GetPdfInfo(); err == nil && info != nil {
			pdfWriter.SetDocInfo(info)
		}
	}

	outputFile, err := os.Create(outputPath)
	if err != nil {
		stat.Error = err
		return stat, fmt.Errorf("ошибка создания выходного файла: %w", err)
	}
	defer outputFile.Close()

	if err := pdfWriter.Write(outputFile); err != nil {
		stat.Error = err
		return stat, fmt.Errorf("ошибка записи файла: %w", err)
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
