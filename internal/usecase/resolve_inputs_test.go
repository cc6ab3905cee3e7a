package usecases_test

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"pdfmerger/internal/domain/entities"
	infraRepos "pdfmerger/internal/infrastructure/repositories"
	usecases "pdfmerger/internal/usecase"
)

func newResolver() *usecases.ResolveInputsUseCase {
	return usecases.NewResolveInputsUseCase(infraRepos.NewFileSystemRepository())
}

func touch(t *testing.T, path string) {
	t.Helper()
	if err := os.WriteFile(path, []byte("x"), 0644); err != nil {
		t.Fatalf("failed to create %s: %v", path, err)
	}
}

func baseNames(files []string) []string {
	names := make([]string, len(files))
	for i, f := range files {
		names[i] = filepath.Base(f)
	}
	return names
}

func TestResolveFolder_LexicographicOrder(t *testing.T) {
	dir := t.TempDir()
	// Порядок создания намеренно перемешан
	for _, name := range []string{"10.pdf", "1.pdf", "2.pdf"} {
		touch(t, filepath.Join(dir, name))
	}

	inputs, err := newResolver().ResolveFolder(dir, "", false)
	if err != nil {
		t.Fatalf("ResolveFolder() error = %v", err)
	}

	// Побайтовая сортировка: 1, 10, 2 - а не натуральная 1, 2, 10
	expected := []string{"1.pdf", "10.pdf", "2.pdf"}
	if got := baseNames(inputs.Files); !reflect.DeepEqual(got, expected) {
		t.Errorf("Expected order %v, got %v", expected, got)
	}
	if inputs.Mode != entities.InputModeFolder {
		t.Errorf("Expected folder mode, got %v", inputs.Mode)
	}
}

func TestResolveFolder_CaseInsensitiveExtension(t *testing.T) {
	dir := t.TempDir()
	touch(t, filepath.Join(dir, "upper.PDF"))
	touch(t, filepath.Join(dir, "lower.pdf"))
	touch(t, filepath.Join(dir, "notes.txt"))

	inputs, err := newResolver().ResolveFolder(dir, "", false)
	if err != nil {
		t.Fatalf("ResolveFolder() error = %v", err)
	}

	if inputs.Len() != 2 {
		t.Errorf("Expected 2 PDF files, got %d: %v", inputs.Len(), baseNames(inputs.Files))
	}
}

func TestResolveFolder_NonRecursive(t *testing.T) {
	dir := t.TempDir()
	touch(t, filepath.Join(dir, "top.pdf"))
	if err := os.MkdirAll(filepath.Join(dir, "nested"), 0755); err != nil {
		t.Fatal(err)
	}
	touch(t, filepath.Join(dir, "nested", "deep.pdf"))

	inputs, err := newResolver().ResolveFolder(dir, "", false)
	if err != nil {
		t.Fatalf("ResolveFolder() error = %v", err)
	}

	if inputs.Len() != 1 || filepath.Base(inputs.Files[0]) != "top.pdf" {
		t.Errorf("Expected only top.pdf, got %v", baseNames(inputs.Files))
	}
}

func TestResolveFolder_ExcludesOutput(t *testing.T) {
	dir := t.TempDir()
	touch(t, filepath.Join(dir, "a.pdf"))
	touch(t, filepath.Join(dir, "b.pdf"))
	touch(t, filepath.Join(dir, "merged_output.pdf"))

	inputs, err := newResolver().ResolveFolder(dir, "merged_output.pdf", true)
	if err != nil {
		t.Fatalf("ResolveFolder() error = %v", err)
	}

	expected := []string{"a.pdf", "b.pdf"}
	if got := baseNames(inputs.Files); !reflect.DeepEqual(got, expected) {
		t.Errorf("Expected %v, got %v", expected, got)
	}
}

func TestResolveFolder_KeepsOutputWithoutFlag(t *testing.T) {
	dir := t.TempDir()
	touch(t, filepath.Join(dir, "a.pdf"))
	touch(t, filepath.Join(dir, "merged_output.pdf"))

	inputs, err := newResolver().ResolveFolder(dir, "merged_output.pdf", false)
	if err != nil {
		t.Fatalf("ResolveFolder() error = %v", err)
	}

	if inputs.Len() != 2 {
		t.Errorf("Expected 2 files without exclusion, got %d", inputs.Len())
	}
}

func TestResolveFolder_EmptyDirectory(t *testing.T) {
	dir := t.TempDir()
	touch(t, filepath.Join(dir, "readme.md"))

	_, err := newResolver().ResolveFolder(dir, "", false)
	if !errors.Is(err, entities.ErrNoFilesFound) {
		t.Errorf("Expected ErrNoFilesFound, got %v", err)
	}
}

func TestResolveFolder_MissingDirectory(t *testing.T) {
	_, err := newResolver().ResolveFolder(filepath.Join(t.TempDir(), "nope"), "", false)
	if !errors.Is(err, entities.ErrDirectoryNotFound) {
		t.Errorf("Expected ErrDirectoryNotFound, got %v", err)
	}
}

func TestResolveExplicit_CollectsAllMissing(t *testing.T) {
	dir := t.TempDir()
	existing := filepath.Join(dir, "a.pdf")
	touch(t, existing)

	missing1 := filepath.Join(dir, "missing1.pdf")
	missing2 := filepath.Join(dir, "missing2.pdf")

	_, err := newResolver().ResolveExplicit([]string{existing, missing1, missing2})

	var missingErr *entities.MissingFilesError
	if !errors.As(err, &missingErr) {
		t.Fatalf("Expected MissingFilesError, got %v", err)
	}

	// Собираются все отсутствующие файлы, а не только первый
	expected := []string{missing1, missing2}
	if !reflect.DeepEqual(missingErr.Files, expected) {
		t.Errorf("Expected missing %v, got %v", expected, missingErr.Files)
	}
}

func TestResolveExplicit_PreservesOrderAndDuplicates(t *testing.T) {
	dir := t.TempDir()
	a := filepath.Join(dir, "a.pdf")
	b := filepath.Join(dir, "b.pdf")
	touch(t, a)
	touch(t, b)

	// Порядок вызывающей стороны сохраняется, дубликаты не убираются
	paths := []string{b, a, b}
	inputs, err := newResolver().ResolveExplicit(paths)
	if err != nil {
		t.Fatalf("ResolveExplicit() error = %v", err)
	}

	if !reflect.DeepEqual(inputs.Files, paths) {
		t.Errorf("Expected %v, got %v", paths, inputs.Files)
	}
	if inputs.Mode != entities.InputModeExplicit {
		t.Errorf("Expected explicit mode, got %v", inputs.Mode)
	}
}
