package entities

// InputMode режим выбора входных файлов
type InputMode int

const (
	// InputModeFolder файлы найдены сканированием директории
	InputModeFolder InputMode = iota
	// InputModeExplicit файлы заданы явным списком
	InputModeExplicit
)

// OrderedInputSet упорядоченный набор PDF файлов для обработки.
// В режиме директории порядок строго лексикографический, в явном режиме
// сохраняется порядок, заданный вызывающей стороной.
type OrderedInputSet struct {
	Files     []string
	Mode      InputMode
	SourceDir string // директория сканирования (только для InputModeFolder)
}

// Len возвращает количество файлов в наборе
func (s *OrderedInputSet) Len() int {
	return len(s.Files)
}

// MergeResult результат объединения PDF файлов
type MergeResult struct {
	OutputPath   string
	MergedCount  int // файлы, реально попавшие в результат
	SkippedCount int // нечитаемые файлы, пропущенные с предупреждением
	Success      bool
}

// CompressionStat статистика сжатия одного файла
type CompressionStat struct {
	FileName       string
	OutputPath     string
	OriginalSize   int64
	CompressedSize int64
	ReductionPct   float64
	SavedSpace     int64
	Success        bool
	Error          error
}

// CalculateReduction вычисляет процент уменьшения размера.
// При нулевом исходном размере процент равен 0.
func (cs *CompressionStat) CalculateReduction() {
	if cs.OriginalSize > 0 {
		cs.ReductionPct = ((float64(cs.OriginalSize) - float64(cs.CompressedSize)) / float64(cs.OriginalSize)) * 100
		cs.SavedSpace = cs.OriginalSize - cs.CompressedSize
	} else {
		cs.ReductionPct = 0
		cs.SavedSpace = 0
	}
}

// IsEffective проверяет, было ли сжатие эффективным
func (cs *CompressionStat) IsEffective() bool {
	return cs.Success && cs.ReductionPct > 0
}

// CompressionSummary итоговая статистика сжатия набора файлов
type CompressionSummary struct {
	FilesCount          int // все обработанные файлы, включая неудачные
	SuccessCount        int
	FailedCount         int
	TotalOriginalSize   int64
	TotalCompressedSize int64
	TotalSavedSpace     int64
	TotalReductionPct   float64
	Stats               []*CompressionStat
}

// Summarize сворачивает список статистик в итоговую сводку.
// Суммарные размеры считаются только по успешно сжатым файлам,
// FilesCount учитывает все попытки.
func Summarize(stats []*CompressionStat) *CompressionSummary {
	summary := &CompressionSummary{
		FilesCount: len(stats),
		Stats:      stats,
	}

	for _, stat := range stats {
		if stat.Success && stat.Error == nil {
			summary.SuccessCount++
			summary.TotalOriginalSize += stat.OriginalSize
			summary.TotalCompressedSize += stat.CompressedSize
			summary.TotalSavedSpace += stat.SavedSpace
		} else {
			summary.FailedCount++
		}
	}

	if summary.TotalOriginalSize > 0 {
		summary.TotalReductionPct = ((float64(summary.TotalOriginalSize) - float64(summary.TotalCompressedSize)) / float64(summary.TotalOriginalSize)) * 100
	}

	return summary
}
