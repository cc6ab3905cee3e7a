package usecases

import (
	"path/filepath"

	"pdfmerger/internal/domain/entities"
	"pdfmerger/internal/domain/repositories"
)

// MergePDFsUseCase сценарий объединения набора PDF файлов в один документ
type MergePDFsUseCase struct {
	merger   repositories.PDFMerger
	fileRepo repositories.FileRepository
	logger   repositories.Logger
}

// NewMergePDFsUseCase создает новый сценарий объединения PDF
func NewMergePDFsUseCase(
	merger repositories.PDFMerger,
	fileRepo repositories.FileRepository,
	logger repositories.Logger,
) *MergePDFsUseCase {
	return &MergePDFsUseCase{
		merger:   merger,
		fileRepo: fileRepo,
		logger:   logger,
	}
}

// Execute объединяет страницы всех входных файлов в outputPath.
// Нечитаемый входной файл пропускается с предупреждением и не прерывает
// операцию; ошибка записи результата фатальна.
func (uc *MergePDFsUseCase) Execute(inputs *entities.OrderedInputSet, outputPath string) (*entities.MergeResult, error) {
	outputPath = uc.resolveOutputPath(inputs, outputPath)

	uc.logInfo("Объединение %d файлов в %s", inputs.Len(), outputPath)

	readable := make([]string, 0, inputs.Len())
	skipped := 0
	for _, inputFile := range inputs.Files {
		if err := uc.merger.Validate(inputFile); err != nil {
			uc.logWarning("Файл %s пропущен: %v", filepath.Base(inputFile), err)
			skipped++
			continue
		}
		readable = append(readable, inputFile)
	}

	if len(readable) == 0 {
		return nil, entities.ErrNoInputsForMerge
	}

	// Результат записывается один раз, после обработки всех входов
	if err := uc.merger.Merge(readable, outputPath); err != nil {
		return nil, &entities.WriteError{Path: outputPath, Err: err}
	}

	result := &entities.MergeResult{
		OutputPath:   outputPath,
		MergedCount:  len(readable),
		SkippedCount: skipped,
		Success:      true,
	}

	uc.logSuccess("Объединено файлов: %d, результат: %s", result.MergedCount, outputPath)
	if skipped > 0 {
		uc.logWarning("Пропущено нечитаемых файлов: %d", skipped)
	}

	return result, nil
}

// resolveOutputPath разрешает относительный путь результата.
// В режиме директории он считается от директории входов, в явном режиме
// от рабочей директории.
func (uc *MergePDFsUseCase) resolveOutputPath(inputs *entities.OrderedInputSet, outputPath string) string {
	if filepath.IsAbs(outputPath) {
		return outputPath
	}
	if inputs.Mode == entities.InputModeFolder && inputs.SourceDir != "" {
		return filepath.Join(inputs.SourceDir, outputPath)
	}
	return outputPath
}

func (uc *MergePDFsUseCase) logInfo(format string, args ...interface{}) {
	if uc.logger != nil {
		uc.logger.Info(format, args...)
	}
}

func (uc *MergePDFsUseCase) logWarning(format string, args ...interface{}) {
	if uc.logger != nil {
		uc.logger.Warning(format, args...)
	}
}

func (uc *MergePDFsUseCase) logSuccess(format string, args ...interface{}) {
	if uc.logger != nil {
		uc.logger.Success(format, args...)
	}
}
