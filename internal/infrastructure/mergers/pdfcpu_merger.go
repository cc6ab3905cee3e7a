package mergers

import (
	"fmt"

	"github.com/pdfcpu/pdfcpu/pkg/api"

	"pdfmerger/internal/domain/entities"
)

// PDFCPUMerger реализация объединения PDF с использованием PDFCPU
type PDFCPUMerger struct{}

// NewPDFCPUMerger создает новый PDFCPU объединитель
func NewPDFCPUMerger() *PDFCPUMerger {
	return &PDFCPUMerger{}
}

// Validate проверяет, что файл читается библиотекой как корректный PDF
func (m *PDFCPUMerger) Validate(path string) error {
	return api.ValidateFile(path, nil)
}

// Merge записывает страницы всех входных файлов в выходной файл.
// Страницы каждого файла сохраняют свой порядок, файлы идут в порядке списка.
// Запись происходит один раз, после обработки всех входов.
func (m *PDFCPUMerger) Merge(inputPaths []string, outputPath string) error {
	if len(inputPaths) == 0 {
		return entities.ErrNoInputsForMerge
	}

	if err := api.MergeCreateFile(inputPaths, outputPath, false, nil); err != nil {
		return fmt.Errorf("ошибка объединения PDFCPU: %w", err)
	}

	return nil
}
