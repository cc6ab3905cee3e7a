package main

import (
	"fmt"
	"log"
	"os"
	"strings"

	"pdfmerger/internal/domain/entities"
	"pdfmerger/internal/domain/repositories"
	"pdfmerger/internal/infrastructure/compressors"
	"pdfmerger/internal/infrastructure/config"
	"pdfmerger/internal/infrastructure/logging"
	"pdfmerger/internal/infrastructure/mergers"
	infraRepos "pdfmerger/internal/infrastructure/repositories"
	"pdfmerger/internal/interface/controllers"
	"pdfmerger/internal/presentation/tui"
	usecases "pdfmerger/internal/usecase"
)

func main() {
	// Загрузка конфигурации
	configRepo := config.NewRepository()
	appConfig, err := configRepo.Load("config.yaml")
	if err != nil {
		log.Fatalf("Ошибка загрузки конфигурации: %v", err)
	}

	// Инициализация базового логгера (в файл)
	fileLogger, err := logging.NewFileLogger(
		appConfig.Output.LogFileName,
		appConfig.Output.LogLevel,
		appConfig.Output.LogMaxSizeMB,
		appConfig.Output.LogToFile,
	)
	if err != nil {
		log.Printf("Предупреждение: не удалось инициализировать логгер: %v", err)
	}

	// NewFileLogger возвращает nil при отключенном логе в файл;
	// интерфейсная переменная должна остаться nil, а не обернуть nil-указатель
	var logger repositories.Logger
	if fileLogger != nil {
		logger = fileLogger
		defer fileLogger.Close()
	}

	// Разбор аргументов: извлекаем --level и --gui, остальное - команда
	level, err := entities.ParseCompressionLevel(appConfig.Compression.Level)
	if err != nil {
		log.Fatalf("Ошибка конфигурации: %v", err)
	}

	guiMode := false
	var args []string
	for _, arg := range os.Args[1:] {
		switch {
		case arg == "--help" || arg == "-h":
			printUsage()
			return
		case arg == "--gui":
			guiMode = true
		case strings.HasPrefix(arg, "--level="):
			parsed, err := entities.ParseCompressionLevel(strings.TrimPrefix(arg, "--level="))
			if err != nil {
				fmt.Fprintf(os.Stderr, "Ошибка: %v\n", err)
				os.Exit(1)
			}
			level = parsed
		default:
			args = append(args, arg)
		}
	}

	if guiMode {
		runTUI(appConfig, logger, level)
		return
	}

	if err := runCLI(appConfig, logger, level, args); err != nil {
		fmt.Fprintf(os.Stderr, "Ошибка: %v\n", err)
		os.Exit(1)
	}
}

// buildUseCases собирает сценарии поверх выбранного по конфигурации движка
func buildUseCases(appConfig *entities.Config, logger repositories.Logger) (
	*usecases.ResolveInputsUseCase,
	*usecases.MergePDFsUseCase,
	*usecases.CompressPDFUseCase,
	*usecases.CompressFolderUseCase,
) {
	fileRepo := infraRepos.NewFileSystemRepository()
	merger := mergers.NewPDFCPUMerger()

	// Выбираем компрессор на основе конфигурации
	var compressor repositories.PDFCompressor
	switch appConfig.Compression.Algorithm {
	case "unipdf":
		compressor = compressors.NewUniPDFCompressor()
	default:
		compressor = compressors.NewPDFCPUCompressor()
	}

	resolver := usecases.NewResolveInputsUseCase(fileRepo)
	mergeUseCase := usecases.NewMergePDFsUseCase(merger, fileRepo, logger)
	compressUseCase := usecases.NewCompressPDFUseCase(compressor, fileRepo, logger)
	compressFolderUseCase := usecases.NewCompressFolderUseCase(resolver, compressor, fileRepo, logger)

	return resolver, mergeUseCase, compressUseCase, compressFolderUseCase
}

// runCLI обрабатывает команды командной строки
func runCLI(appConfig *entities.Config, logger repositories.Logger, level entities.CompressionLevel, args []string) error {
	resolver, mergeUseCase, compressUseCase, compressFolderUseCase := buildUseCases(appConfig, logger)

	controller := controllers.NewCLIController(
		resolver,
		mergeUseCase,
		compressUseCase,
		compressFolderUseCase,
		appConfig,
	)

	// Команда merge подразумевается по умолчанию
	if len(args) > 0 && args[0] == "merge" {
		args = args[1:]
	} else if len(args) > 0 {
		switch args[0] {
		case "merge-files":
			if len(args) < 3 {
				return fmt.Errorf("команда merge-files требует выходной файл и хотя бы один входной")
			}
			return controller.HandleMergeFiles(args[2:], args[1])

		case "compress":
			if len(args) < 2 {
				return fmt.Errorf("команда compress требует входной файл")
			}
			output := ""
			if len(args) >= 3 {
				output = args[2]
			}
			return controller.HandleCompressFile(args[1], output, level)

		case "compress-folder":
			if len(args) < 2 {
				return fmt.Errorf("команда compress-folder требует директорию")
			}
			output := ""
			if len(args) >= 3 {
				output = args[2]
			}
			return controller.HandleCompressFolder(args[1], output, level)
		}
	}

	// Варианты merge: без аргументов, <output>, <folder> <output>
	folder := appConfig.Merge.SourceDirectory
	output := appConfig.Merge.OutputFileName
	switch len(args) {
	case 0:
	case 1:
		output = args[0]
	case 2:
		folder = args[0]
		output = args[1]
	default:
		return fmt.Errorf("слишком много аргументов, см. --help")
	}

	return controller.HandleMergeFolder(folder, output, appConfig.Merge.ExcludeOutput)
}

// runTUI запускает терминальный интерфейс
func runTUI(appConfig *entities.Config, fileLogger repositories.Logger, level entities.CompressionLevel) {
	tuiManager := tui.NewManager(appConfig, level)
	tuiManager.Initialize()

	// Оборачиваем логгер адаптером, чтобы видеть логи в TUI
	logger := tui.NewUILogger(fileLogger, tuiManager)

	resolver, mergeUseCase, compressUseCase, compressFolderUseCase := buildUseCases(appConfig, logger)

	processor := NewApplicationProcessor(
		mergeUseCase,
		compressUseCase,
		compressFolderUseCase,
		resolver,
		appConfig,
		logger,
	)
	defer processor.Shutdown()

	compressFolderUseCase.SetProgressReporter(func(processed, total int, stat *entities.CompressionStat) {
		tuiManager.SendProgress(processed, total, stat)
	})

	// Привязываем запуск операций к TUI
	tuiManager.SetHandlers(tui.OperationHandlers{
		MergeFolder: func(folder, output string) <-chan entities.OperationOutcome {
			processor.SetConfig(tuiManager.GetConfig())
			return processor.MergeFolder(folder, output)
		},
		MergeFiles: func(paths []string, output string) <-chan entities.OperationOutcome {
			processor.SetConfig(tuiManager.GetConfig())
			return processor.MergeFiles(paths, output)
		},
		CompressFile: func(input, output string, level entities.CompressionLevel) <-chan entities.OperationOutcome {
			processor.SetConfig(tuiManager.GetConfig())
			return processor.CompressFile(input, output, level)
		},
		CompressFolder: func(folder, output string, level entities.CompressionLevel) <-chan entities.OperationOutcome {
			processor.SetConfig(tuiManager.GetConfig())
			return processor.CompressFolder(folder, output, level)
		},
	})

	if err := tuiManager.Run(); err != nil {
		log.Fatalf("Ошибка запуска TUI: %v", err)
	}

	tuiManager.Cleanup()
}

// printUsage печатает справку по командам
func printUsage() {
	fmt.Println("PDF Merger & Compressor")
	fmt.Println()
	fmt.Println("Объединение:")
	fmt.Println("  pdfmerger                          объединить PDF из директории по конфигурации")
	fmt.Println("  pdfmerger merge <output.pdf>       объединить с заданным именем результата")
	fmt.Println("  pdfmerger merge <folder> <output>  объединить PDF из указанной директории")
	fmt.Println("  pdfmerger merge-files <output.pdf> <file1.pdf> <file2.pdf> ...")
	fmt.Println("                                     объединить явный список файлов по порядку")
	fmt.Println()
	fmt.Println("Сжатие:")
	fmt.Println("  pdfmerger compress <file.pdf> [<output.pdf>]")
	fmt.Println("  pdfmerger compress-folder <folder> [<output-folder>]")
	fmt.Println()
	fmt.Println("Флаги:")
	fmt.Println("  --level=low|medium|high  уровень сжатия (по умолчанию из config.yaml)")
	fmt.Println("  --gui                    запустить терминальный интерфейс")
	fmt.Println("  --help                   показать эту справку")
}
