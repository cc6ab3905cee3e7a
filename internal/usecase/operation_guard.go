package usecases

import (
	"fmt"
	"path/filepath"
	"sync"

	"pdfmerger/internal/domain/entities"
)

// OutputGuard не допускает более одной одновременной операции
// на один и тот же выходной путь.
type OutputGuard struct {
	mu     sync.Mutex
	active map[string]struct{}
}

// NewOutputGuard создает новый страж выходных путей
func NewOutputGuard() *OutputGuard {
	return &OutputGuard{
		active: make(map[string]struct{}),
	}
}

// Acquire резервирует выходной путь на время операции.
// Возвращает ErrOutputBusy, если путь уже занят другой операцией.
func (g *OutputGuard) Acquire(outputPath string) error {
	key := g.normalize(outputPath)

	g.mu.Lock()
	defer g.mu.Unlock()

	if _, busy := g.active[key]; busy {
		return fmt.Errorf("%w: %s", entities.ErrOutputBusy, outputPath)
	}

	g.active[key] = struct{}{}
	return nil
}

// Release освобождает выходной путь
func (g *OutputGuard) Release(outputPath string) {
	key := g.normalize(outputPath)

	g.mu.Lock()
	defer g.mu.Unlock()

	delete(g.active, key)
}

// normalize приводит путь к абсолютной форме, чтобы относительная
// и абсолютная записи одного файла считались одним путем
func (g *OutputGuard) normalize(path string) string {
	abs, err := filepath.Abs(path)
	if err != nil {
		return filepath.Clean(path)
	}
	return abs
}
