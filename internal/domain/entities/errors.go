package entities

import (
	"errors"
	"fmt"
	"strings"
)

// Доменные ошибки
var (
	ErrDirectoryNotFound  = errors.New("директория не найдена")
	ErrFileNotFound       = errors.New("файл не найден")
	ErrNoFilesFound       = errors.New("PDF файлы не найдены")
	ErrInvalidLevel       = errors.New("уровень сжатия должен быть low, medium или high")
	ErrOutputBusy         = errors.New("операция с этим выходным файлом уже выполняется")
	ErrNoInputsForMerge   = errors.New("не выбраны файлы для объединения")
	ErrUnknownAlgorithm   = errors.New("неизвестный алгоритм сжатия")
	ErrLicenseKeyRequired = errors.New("UniPDF требует лицензионный ключ")
)

// MissingFilesError ошибка со списком отсутствующих файлов.
// Список собирается целиком, без прерывания на первом отсутствующем файле,
// чтобы пользователь увидел все проблемные пути сразу.
type MissingFilesError struct {
	Files []string
}

// Error возвращает текст ошибки
func (e *MissingFilesError) Error() string {
	return fmt.Sprintf("файлы не существуют: %s", strings.Join(e.Files, ", "))
}

// WriteError фатальная ошибка записи выходного файла
type WriteError struct {
	Path string
	Err  error
}

// Error возвращает текст ошибки
func (e *WriteError) Error() string {
	return fmt.Sprintf("ошибка записи выходного файла %s: %v", e.Path, e.Err)
}

// Unwrap возвращает исходную ошибку
func (e *WriteError) Unwrap() error {
	return e.Err
}
