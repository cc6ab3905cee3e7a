package repositories

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// FileSystemRepository реализация репозитория для работы с файловой системой
type FileSystemRepository struct{}

// NewFileSystemRepository создает новый репозиторий файловой системы
func NewFileSystemRepository() *FileSystemRepository {
	return &FileSystemRepository{}
}

// FileExists проверяет существование файла
func (r *FileSystemRepository) FileExists(path string) bool {
	_, err := os.Stat(path)
	return !os.IsNotExist(err)
}

// FileSize возвращает размер файла в байтах
func (r *FileSystemRepository) FileSize(path string) (int64, error) {
	info, err := os.Stat(path)
	if err != nil {
		return 0, err
	}
	return info.Size(), nil
}

// CreateDirectory создает директорию вместе с родительскими
func (r *FileSystemRepository) CreateDirectory(path string) error {
	return os.MkdirAll(path, 0755)
}

// ListPDFFiles возвращает список PDF файлов в директории без захода в подпапки.
// Расширение сравнивается без учета регистра, результат сортируется
// побайтово-лексикографически: 1.pdf, 10.pdf, 2.pdf.
func (r *FileSystemRepository) ListPDFFiles(directory string) ([]string, error) {
	entries, err := os.ReadDir(directory)
	if err != nil {
		return nil, err
	}

	var pdfFiles []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if strings.EqualFold(filepath.Ext(entry.Name()), ".pdf") {
			pdfFiles = append(pdfFiles, entry.Name())
		}
	}

	sort.Strings(pdfFiles)
	return pdfFiles, nil
}
