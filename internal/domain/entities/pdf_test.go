package entities_test

import (
	"errors"
	"testing"

	"pdfmerger/internal/domain/entities"
)

func TestCompressionStat_CalculateReduction(t *testing.T) {
	tests := []struct {
		name               string
		originalSize       int64
		compressedSize     int64
		expectedPct        float64
		expectedSavedSpace int64
	}{
		{
			name:               "50% reduction",
			originalSize:       1000,
			compressedSize:     500,
			expectedPct:        50.0,
			expectedSavedSpace: 500,
		},
		{
			name:               "25% reduction",
			originalSize:       1000,
			compressedSize:     750,
			expectedPct:        25.0,
			expectedSavedSpace: 250,
		},
		{
			name:               "No reduction",
			originalSize:       1000,
			compressedSize:     1000,
			expectedPct:        0.0,
			expectedSavedSpace: 0,
		},
		{
			name:               "File got bigger",
			originalSize:       1000,
			compressedSize:     1100,
			expectedPct:        -10.0,
			expectedSavedSpace: -100,
		},
		{
			name:               "Zero original size must not divide by zero",
			originalSize:       0,
			compressedSize:     0,
			expectedPct:        0.0,
			expectedSavedSpace: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stat := &entities.CompressionStat{
				OriginalSize:   tt.originalSize,
				CompressedSize: tt.compressedSize,
			}

			stat.CalculateReduction()

			if stat.ReductionPct != tt.expectedPct {
				t.Errorf("Expected reduction %f, got %f", tt.expectedPct, stat.ReductionPct)
			}

			if stat.SavedSpace != tt.expectedSavedSpace {
				t.Errorf("Expected saved space %d, got %d", tt.expectedSavedSpace, stat.SavedSpace)
			}
		})
	}
}

func TestCompressionStat_IsEffective(t *testing.T) {
	tests := []struct {
		name              string
		stat              *entities.CompressionStat
		expectedEffective bool
	}{
		{
			name: "Effective compression",
			stat: &entities.CompressionStat{
				OriginalSize:   1000,
				CompressedSize: 500,
				ReductionPct:   50.0,
				Success:        true,
			},
			expectedEffective: true,
		},
		{
			name: "No reduction but successful",
			stat: &entities.CompressionStat{
				OriginalSize:   1000,
				CompressedSize: 1000,
				ReductionPct:   0.0,
				Success:        true,
			},
			expectedEffective: false,
		},
		{
			name: "Good reduction but failed",
			stat: &entities.CompressionStat{
				OriginalSize:   1000,
				CompressedSize: 500,
				ReductionPct:   50.0,
				Success:        false,
			},
			expectedEffective: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.stat.IsEffective(); got != tt.expectedEffective {
				t.Errorf("IsEffective() = %v, want %v", got, tt.expectedEffective)
			}
		})
	}
}

func TestSummarize(t *testing.T) {
	makeStat := func(name string, orig, compressed int64, success bool) *entities.CompressionStat {
		stat := &entities.CompressionStat{
			FileName:       name,
			OriginalSize:   orig,
			CompressedSize: compressed,
			Success:        success,
		}
		if success {
			stat.CalculateReduction()
		}
		return stat
	}

	stats := []*entities.CompressionStat{
		makeStat("a.pdf", 1000, 500, true),
		makeStat("b.pdf", 2000, 0, false),
		makeStat("c.pdf", 3000, 1500, true),
	}

	summary := entities.Summarize(stats)

	if summary.FilesCount != 3 {
		t.Errorf("Expected FilesCount 3, got %d", summary.FilesCount)
	}
	if summary.SuccessCount != 2 {
		t.Errorf("Expected SuccessCount 2, got %d", summary.SuccessCount)
	}
	if summary.FailedCount != 1 {
		t.Errorf("Expected FailedCount 1, got %d", summary.FailedCount)
	}

	// Суммарные размеры считаются только по успешным файлам
	if summary.TotalOriginalSize != 4000 {
		t.Errorf("Expected TotalOriginalSize 4000, got %d", summary.TotalOriginalSize)
	}
	if summary.TotalCompressedSize != 2000 {
		t.Errorf("Expected TotalCompressedSize 2000, got %d", summary.TotalCompressedSize)
	}
	if summary.TotalReductionPct != 50.0 {
		t.Errorf("Expected TotalReductionPct 50.0, got %f", summary.TotalReductionPct)
	}
}

func TestSummarize_EmptyAndAllFailed(t *testing.T) {
	empty := entities.Summarize(nil)
	if empty.FilesCount != 0 || empty.TotalReductionPct != 0 {
		t.Errorf("Empty summary must be zeroed, got %+v", empty)
	}

	failed := entities.Summarize([]*entities.CompressionStat{
		{FileName: "a.pdf", Error: errors.New("broken"), Success: false},
	})
	if failed.FilesCount != 1 || failed.FailedCount != 1 {
		t.Errorf("Expected 1 failed file, got %+v", failed)
	}
	if failed.TotalReductionPct != 0 {
		t.Errorf("All-failed summary must not compute a reduction, got %f", failed.TotalReductionPct)
	}
}

func TestMissingFilesError(t *testing.T) {
	err := &entities.MissingFilesError{Files: []string{"a.pdf", "b.pdf"}}

	if len(err.Files) != 2 {
		t.Errorf("Expected 2 missing files, got %d", len(err.Files))
	}

	var target *entities.MissingFilesError
	if !errors.As(error(err), &target) {
		t.Error("errors.As must match MissingFilesError")
	}
}

func TestWriteError_Unwrap(t *testing.T) {
	cause := errors.New("disk full")
	err := &entities.WriteError{Path: "out.pdf", Err: cause}

	if !errors.Is(err, cause) {
		t.Error("WriteError must unwrap to its cause")
	}
}
