package usecases_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"pdfmerger/internal/domain/entities"
	"pdfmerger/internal/infrastructure/compressors"
	infraRepos "pdfmerger/internal/infrastructure/repositories"
	usecases "pdfmerger/internal/usecase"
)

func newCompressFolderUseCase() *usecases.CompressFolderUseCase {
	fileRepo := infraRepos.NewFileSystemRepository()
	return usecases.NewCompressFolderUseCase(
		usecases.NewResolveInputsUseCase(fileRepo),
		compressors.NewPDFCPUCompressor(),
		fileRepo,
		nil,
	)
}

func TestCompressFolder_PartialFailure(t *testing.T) {
	dir := t.TempDir()
	writeSamplePDF(t, filepath.Join(dir, "a.pdf"), 1)
	writeGarbageFile(t, filepath.Join(dir, "b.pdf"))
	writeSamplePDF(t, filepath.Join(dir, "c.pdf"), 2)

	config := entities.NewCompressionConfig(entities.LevelMedium)

	// Ошибка одного файла не прерывает обработку остальных
	summary, err := newCompressFolderUseCase().Execute(dir, "", config)
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	if summary.FilesCount != 3 {
		t.Errorf("Expected FilesCount 3, got %d", summary.FilesCount)
	}
	if summary.SuccessCount != 2 {
		t.Errorf("Expected SuccessCount 2, got %d", summary.SuccessCount)
	}
	if summary.FailedCount != 1 {
		t.Errorf("Expected FailedCount 1, got %d", summary.FailedCount)
	}

	// Агрегаты считаются только по успешным файлам
	var expectedOriginal int64
	for _, name := range []string{"a.pdf", "c.pdf"} {
		info, err := os.Stat(filepath.Join(dir, name))
		if err != nil {
			t.Fatal(err)
		}
		expectedOriginal += info.Size()
	}
	if summary.TotalOriginalSize != expectedOriginal {
		t.Errorf("Expected TotalOriginalSize %d from successful files only, got %d",
			expectedOriginal, summary.TotalOriginalSize)
	}
}

func TestCompressFolder_DefaultOutputFolder(t *testing.T) {
	dir := t.TempDir()
	writeSamplePDF(t, filepath.Join(dir, "a.pdf"), 1)

	config := entities.NewCompressionConfig(entities.LevelLow)

	summary, err := newCompressFolderUseCase().Execute(dir, "", config)
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if summary.SuccessCount != 1 {
		t.Fatalf("Expected 1 successful file, got %d", summary.SuccessCount)
	}

	// Результат сохраняется под тем же именем в поддиректории compressed
	if _, err := os.Stat(filepath.Join(dir, "compressed", "a.pdf")); err != nil {
		t.Errorf("Expected output in default compressed folder: %v", err)
	}
}

func TestCompressFolder_ExplicitOutputFolder(t *testing.T) {
	dir := t.TempDir()
	writeSamplePDF(t, filepath.Join(dir, "a.pdf"), 1)
	writeSamplePDF(t, filepath.Join(dir, "b.pdf"), 1)

	// Несуществующая выходная директория создается вместе с родителями
	output := filepath.Join(t.TempDir(), "nested", "out")
	config := entities.NewCompressionConfig(entities.LevelMedium)

	summary, err := newCompressFolderUseCase().Execute(dir, output, config)
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if summary.SuccessCount != 2 {
		t.Fatalf("Expected 2 successful files, got %d", summary.SuccessCount)
	}

	for _, name := range []string{"a.pdf", "b.pdf"} {
		if _, err := os.Stat(filepath.Join(output, name)); err != nil {
			t.Errorf("Expected %s in output folder: %v", name, err)
		}
	}
}

func TestCompressFolder_EmptyFolder(t *testing.T) {
	config := entities.NewCompressionConfig(entities.LevelMedium)

	_, err := newCompressFolderUseCase().Execute(t.TempDir(), "", config)
	if !errors.Is(err, entities.ErrNoFilesFound) {
		t.Errorf("Expected ErrNoFilesFound, got %v", err)
	}
}

func TestCompressFolder_ProgressReporter(t *testing.T) {
	dir := t.TempDir()
	writeSamplePDF(t, filepath.Join(dir, "a.pdf"), 1)
	writeSamplePDF(t, filepath.Join(dir, "b.pdf"), 1)

	uc := newCompressFolderUseCase()

	type progressCall struct {
		processed, total int
	}
	var calls []progressCall
	uc.SetProgressReporter(func(processed, total int, stat *entities.CompressionStat) {
		if stat == nil {
			t.Error("Progress reporter must receive a stat for every file")
		}
		calls = append(calls, progressCall{processed, total})
	})

	config := entities.NewCompressionConfig(entities.LevelMedium)
	if _, err := uc.Execute(dir, "", config); err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	// Отчет о прогрессе приходит после каждого файла
	expected := []progressCall{{1, 2}, {2, 2}}
	if len(calls) != len(expected) {
		t.Fatalf("Expected %d progress calls, got %d", len(expected), len(calls))
	}
	for i, call := range calls {
		if call != expected[i] {
			t.Errorf("Call %d: expected %+v, got %+v", i, expected[i], call)
		}
	}
}
