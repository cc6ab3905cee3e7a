package controllers

import (
	"fmt"
	"path/filepath"

	"pdfmerger/internal/domain/entities"
	usecases "pdfmerger/internal/usecase"
)

// CLIController контроллер для командной строки.
// Операции выполняются синхронно: командный режим запускает ровно одну
// операцию за вызов, поэтому фоновая горутина и страж выходного пути
// здесь не нужны.
type CLIController struct {
	resolver              *usecases.ResolveInputsUseCase
	mergeUseCase          *usecases.MergePDFsUseCase
	compressUseCase       *usecases.CompressPDFUseCase
	compressFolderUseCase *usecases.CompressFolderUseCase
	config                *entities.Config
}

// NewCLIController создает новый CLI контроллер
func NewCLIController(
	resolver *usecases.ResolveInputsUseCase,
	mergeUseCase *usecases.MergePDFsUseCase,
	compressUseCase *usecases.CompressPDFUseCase,
	compressFolderUseCase *usecases.CompressFolderUseCase,
	config *entities.Config,
) *CLIController {
	return &CLIController{
		resolver:              resolver,
		mergeUseCase:          mergeUseCase,
		compressUseCase:       compressUseCase,
		compressFolderUseCase: compressFolderUseCase,
		config:                config,
	}
}

// HandleMergeFolder объединяет все PDF файлы директории
func (c *CLIController) HandleMergeFolder(folder, outputName string, excludeOutput bool) error {
	fmt.Println("🔥 PDF Merger - Объединение PDF файлов")
	fmt.Println("======================================")

	inputs, err := c.resolver.ResolveFolder(folder, filepath.Base(outputName), excludeOutput)
	if err != nil {
		return fmt.Errorf("ошибка подбора файлов: %w", err)
	}

	fmt.Printf("\nНайдено %d PDF файлов:\n", inputs.Len())
	for i, file := range inputs.Files {
		fmt.Printf("  %d. %s\n", i+1, filepath.Base(file))
	}

	result, err := c.mergeUseCase.Execute(inputs, outputName)
	if err != nil {
		return fmt.Errorf("ошибка объединения: %w", err)
	}

	c.showMergeResult(result)
	return nil
}

// HandleMergeFiles объединяет явный список PDF файлов
func (c *CLIController) HandleMergeFiles(paths []string, outputPath string) error {
	fmt.Println("🔥 PDF Merger - Объединение списка файлов")
	fmt.Println("=========================================")

	inputs, err := c.resolver.ResolveExplicit(paths)
	if err != nil {
		return fmt.Errorf("ошибка подбора файлов: %w", err)
	}

	result, err := c.mergeUseCase.Execute(inputs, outputPath)
	if err != nil {
		return fmt.Errorf("ошибка объединения: %w", err)
	}

	c.showMergeResult(result)
	return nil
}

// HandleCompressFile обрабатывает сжатие одного файла
func (c *CLIController) HandleCompressFile(inputPath, outputPath string, level entities.CompressionLevel) error {
	fmt.Println("🔥 PDF Compressor - Сжатие PDF файла")
	fmt.Println("====================================")
	fmt.Printf("\n🚀 Сжатие файла: %s (уровень %s)\n", inputPath, level)

	config := entities.NewCompressionConfigWithLicense(level, c.config.Compression.UniPDFLicenseKey)

	stat, err := c.compressUseCase.Execute(inputPath, outputPath, config)
	if err != nil {
		return fmt.Errorf("ошибка сжатия: %w", err)
	}

	c.showCompressionStat(stat)
	return nil
}

// HandleCompressFolder обрабатывает сжатие директории
func (c *CLIController) HandleCompressFolder(folder, outputFolder string, level entities.CompressionLevel) error {
	fmt.Println("🔥 PDF Compressor - Сжатие директории PDF файлов")
	fmt.Println("================================================")
	fmt.Printf("\n🚀 Сжатие директории: %s (уровень %s)\n\n", folder, level)

	config := entities.NewCompressionConfigWithLicense(level, c.config.Compression.UniPDFLicenseKey)

	summary, err := c.compressFolderUseCase.Execute(folder, outputFolder, config)
	if err != nil {
		return fmt.Errorf("ошибка сжатия директории: %w", err)
	}

	c.showSummary(summary)
	return nil
}

// showMergeResult показывает результат объединения
func (c *CLIController) showMergeResult(result *entities.MergeResult) {
	fmt.Println("\n📊 Результаты объединения:")
	fmt.Printf("Объединено файлов: %d\n", result.MergedCount)
	if result.SkippedCount > 0 {
		fmt.Printf("⚠️ Пропущено нечитаемых файлов: %d\n", result.SkippedCount)
	}
	fmt.Printf("\n🎉 Готово! Результат сохранен как: %s\n", result.OutputPath)
}

// showCompressionStat показывает результат сжатия файла
func (c *CLIController) showCompressionStat(stat *entities.CompressionStat) {
	fmt.Println("\n📊 Результаты сжатия:")
	fmt.Printf("Исходный размер: %.2f KB\n", float64(stat.OriginalSize)/1024)
	fmt.Printf("Сжатый размер: %.2f KB\n", float64(stat.CompressedSize)/1024)
	fmt.Printf("Сжатие: %.1f%%\n", stat.ReductionPct)
	fmt.Printf("Сэкономлено: %.2f KB\n", float64(stat.SavedSpace)/1024)

	if stat.IsEffective() {
		fmt.Println("✅ Сжатие выполнено успешно!")
	} else {
		fmt.Println("⚠️ Файл не был сжат (возможно, уже оптимизирован)")
	}

	fmt.Printf("\n🎉 Готово! Сжатый файл сохранен как: %s\n", stat.OutputPath)
}

// showSummary показывает результат сжатия директории
func (c *CLIController) showSummary(summary *entities.CompressionSummary) {
	fmt.Println("\n📊 Результаты сжатия директории:")
	fmt.Printf("Всего файлов: %d\n", summary.FilesCount)
	fmt.Printf("Успешно сжато: %d\n", summary.SuccessCount)
	fmt.Printf("Ошибок: %d\n", summary.FailedCount)

	for i, stat := range summary.Stats {
		if stat.Success {
			fmt.Printf("[%d] %s: %.1f%%, сэкономлено %.2f KB\n",
				i+1, stat.FileName, stat.ReductionPct, float64(stat.SavedSpace)/1024)
		} else {
			fmt.Printf("[%d] %s: ✗ %v\n", i+1, stat.FileName, stat.Error)
		}
	}

	if summary.TotalOriginalSize > 0 {
		fmt.Printf("\nИтого: %.2f MB → %.2f MB (%.1f%%)\n",
			float64(summary.TotalOriginalSize)/1024/1024,
			float64(summary.TotalCompressedSize)/1024/1024,
			summary.TotalReductionPct)
	}

	fmt.Printf("\n🎉 Обработка завершена! Успешно сжато: %d/%d файлов\n",
		summary.SuccessCount, summary.FilesCount)
}
