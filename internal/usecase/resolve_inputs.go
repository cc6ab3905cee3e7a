package usecases

import (
	"path/filepath"

	"pdfmerger/internal/domain/entities"
	"pdfmerger/internal/domain/repositories"
)

// ResolveInputsUseCase сценарий подбора входных PDF файлов
type ResolveInputsUseCase struct {
	fileRepo repositories.FileRepository
}

// NewResolveInputsUseCase создает новый сценарий подбора входных файлов
func NewResolveInputsUseCase(fileRepo repositories.FileRepository) *ResolveInputsUseCase {
	return &ResolveInputsUseCase{fileRepo: fileRepo}
}

// ResolveFolder сканирует директорию без подпапок и возвращает найденные
// PDF файлы в лексикографическом порядке. При excludeOutput из набора
// убирается файл с именем outputName, чтобы результат прошлого запуска
// не попал во входы.
func (uc *ResolveInputsUseCase) ResolveFolder(path, outputName string, excludeOutput bool) (*entities.OrderedInputSet, error) {
	if !uc.fileRepo.FileExists(path) {
		return nil, entities.ErrDirectoryNotFound
	}

	names, err := uc.fileRepo.ListPDFFiles(path)
	if err != nil {
		return nil, err
	}

	if excludeOutput && outputName != "" {
		target := filepath.Base(outputName)
		for i, name := range names {
			if name == target {
				names = append(names[:i], names[i+1:]...)
				break
			}
		}
	}

	if len(names) == 0 {
		return nil, entities.ErrNoFilesFound
	}

	files := make([]string, len(names))
	for i, name := range names {
		files[i] = filepath.Join(path, name)
	}

	return &entities.OrderedInputSet{
		Files:     files,
		Mode:      entities.InputModeFolder,
		SourceDir: path,
	}, nil
}

// ResolveExplicit проверяет явный список путей. Порядок вызывающей стороны
// сохраняется без фильтрации и дедупликации; отсутствующие файлы собираются
// все до единого и возвращаются одной ошибкой.
func (uc *ResolveInputsUseCase) ResolveExplicit(paths []string) (*entities.OrderedInputSet, error) {
	var missing []string
	for _, path := range paths {
		if !uc.fileRepo.FileExists(path) {
			missing = append(missing, path)
		}
	}

	if len(missing) > 0 {
		return nil, &entities.MissingFilesError{Files: missing}
	}

	files := make([]string, len(paths))
	copy(files, paths)

	return &entities.OrderedInputSet{
		Files: files,
		Mode:  entities.InputModeExplicit,
	}, nil
}
