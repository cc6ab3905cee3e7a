package main

import (
	"path/filepath"
	"sync"
	"time"

	"pdfmerger/internal/domain/entities"
	"pdfmerger/internal/domain/repositories"
	usecases "pdfmerger/internal/usecase"
)

// ApplicationProcessor выполняет операции объединения и сжатия в фоне.
// На каждую операцию запускается одна горутина; сама обработка файлов
// внутри операции строго последовательна. Завершение доставляется через
// одноразовый буферизованный канал, который читается ровно один раз.
type ApplicationProcessor struct {
	mergeUseCase          *usecases.MergePDFsUseCase
	compressUseCase       *usecases.CompressPDFUseCase
	compressFolderUseCase *usecases.CompressFolderUseCase
	resolver              *usecases.ResolveInputsUseCase
	guard                 *usecases.OutputGuard
	config                *entities.Config
	logger                repositories.Logger

	wg sync.WaitGroup
}

// NewApplicationProcessor создает новый процессор приложения
func NewApplicationProcessor(
	mergeUseCase *usecases.MergePDFsUseCase,
	compressUseCase *usecases.CompressPDFUseCase,
	compressFolderUseCase *usecases.CompressFolderUseCase,
	resolver *usecases.ResolveInputsUseCase,
	config *entities.Config,
	logger repositories.Logger,
) *ApplicationProcessor {
	return &ApplicationProcessor{
		mergeUseCase:          mergeUseCase,
		compressUseCase:       compressUseCase,
		compressFolderUseCase: compressFolderUseCase,
		resolver:              resolver,
		guard:                 usecases.NewOutputGuard(),
		config:                config,
		logger:                logger,
	}
}

// SetConfig обновляет конфигурацию перед запуском операции
func (p *ApplicationProcessor) SetConfig(config *entities.Config) {
	p.config = config
}

// MergeFolder объединяет все PDF файлы директории в фоне
func (p *ApplicationProcessor) MergeFolder(folder, outputName string) <-chan entities.OperationOutcome {
	guardPath := outputName
	if !filepath.IsAbs(guardPath) {
		guardPath = filepath.Join(folder, outputName)
	}

	return p.run(entities.OperationMergeFolder, guardPath, func() entities.OperationOutcome {
		inputs, err := p.resolver.ResolveFolder(folder, filepath.Base(outputName), p.config.Merge.ExcludeOutput)
		if err != nil {
			return failure(entities.OperationMergeFolder, err)
		}
		result, err := p.mergeUseCase.Execute(inputs, outputName)
		if err != nil {
			return failure(entities.OperationMergeFolder, err)
		}
		return entities.OperationOutcome{
			Kind:    entities.OperationMergeFolder,
			Success: true,
			Message: "Объединение завершено успешно",
			Merge:   result,
		}
	})
}

// MergeFiles объединяет явный список PDF файлов в фоне
func (p *ApplicationProcessor) MergeFiles(paths []string, outputPath string) <-chan entities.OperationOutcome {
	return p.run(entities.OperationMergeFiles, outputPath, func() entities.OperationOutcome {
		inputs, err := p.resolver.ResolveExplicit(paths)
		if err != nil {
			return failure(entities.OperationMergeFiles, err)
		}
		result, err := p.mergeUseCase.Execute(inputs, outputPath)
		if err != nil {
			return failure(entities.OperationMergeFiles, err)
		}
		return entities.OperationOutcome{
			Kind:    entities.OperationMergeFiles,
			Success: true,
			Message: "Объединение завершено успешно",
			Merge:   result,
		}
	})
}

// CompressFile сжимает один PDF файл в фоне
func (p *ApplicationProcessor) CompressFile(inputPath, outputPath string, level entities.CompressionLevel) <-chan entities.OperationOutcome {
	guardPath := outputPath
	if guardPath == "" {
		guardPath = usecases.DefaultCompressedPath(inputPath)
	}

	return p.run(entities.OperationCompressFile, guardPath, func() entities.OperationOutcome {
		config := entities.NewCompressionConfigWithLicense(level, p.config.Compression.UniPDFLicenseKey)
		stat, err := p.compressUseCase.Execute(inputPath, outputPath, config)
		if err != nil {
			return failure(entities.OperationCompressFile, err)
		}
		return entities.OperationOutcome{
			Kind:    entities.OperationCompressFile,
			Success: true,
			Message: "Сжатие завершено успешно",
			Stat:    stat,
		}
	})
}

// CompressFolder сжимает все PDF файлы директории в фоне
func (p *ApplicationProcessor) CompressFolder(folder, outputFolder string, level entities.CompressionLevel) <-chan entities.OperationOutcome {
	guardPath := outputFolder
	if guardPath == "" {
		guardPath = filepath.Join(folder, "compressed")
	}

	return p.run(entities.OperationCompressFolder, guardPath, func() entities.OperationOutcome {
		config := entities.NewCompressionConfigWithLicense(level, p.config.Compression.UniPDFLicenseKey)
		summary, err := p.compressFolderUseCase.Execute(folder, outputFolder, config)
		if err != nil {
			return failure(entities.OperationCompressFolder, err)
		}
		return entities.OperationOutcome{
			Kind:    entities.OperationCompressFolder,
			Success: true,
			Message: "Сжатие директории завершено успешно",
			Summary: summary,
		}
	})
}

// run запускает операцию в фоновой горутине под стражем выходного пути
func (p *ApplicationProcessor) run(kind entities.OperationKind, guardPath string, op func() entities.OperationOutcome) <-chan entities.OperationOutcome {
	done := make(chan entities.OperationOutcome, 1)

	if err := p.guard.Acquire(guardPath); err != nil {
		done <- failure(kind, err)
		close(done)
		return done
	}

	p.wg.Add(1)
	go func() {
		defer p.wg.Done()
		defer p.guard.Release(guardPath)

		start := time.Now()
		outcome := op()
		outcome.ElapsedTime = time.Since(start)

		if p.logger != nil {
			if outcome.Success {
				p.logger.Info("%s: выполнено за %s", kind, outcome.ElapsedTime.Round(time.Millisecond))
			} else {
				p.logger.Error("%s: %v", kind, outcome.Err)
			}
		}

		done <- outcome
		close(done)
	}()

	return done
}

// Shutdown дожидается завершения всех фоновых операций
func (p *ApplicationProcessor) Shutdown() {
	p.wg.Wait()
}

// failure собирает уведомление о неудачной операции
func failure(kind entities.OperationKind, err error) entities.OperationOutcome {
	return entities.OperationOutcome{
		Kind:    kind,
		Success: false,
		Message: err.Error(),
		Err:     err,
	}
}
