package usecases_test

import (
	"bytes"
	"fmt"
	"os"
	"strings"
	"testing"
)

// writeSamplePDF пишет минимальный корректный PDF с заданным числом пустых
// страниц. Смещения в таблице xref вычисляются по фактическим позициям
// объектов, поэтому файл проходит валидацию библиотеки.
func writeSamplePDF(t *testing.T, path string, pages int) {
	t.Helper()

	var buf bytes.Buffer
	offsets := make([]int, 0, pages+2)

	buf.WriteString("%PDF-1.4\n")

	// Объект 1: каталог
	offsets = append(offsets, buf.Len())
	buf.WriteString("1 0 obj\n<< /Type /Catalog /Pages 2 0 R >>\nendobj\n")

	// Объект 2: дерево страниц
	offsets = append(offsets, buf.Len())
	kids := make([]string, pages)
	for i := 0; i < pages; i++ {
		kids[i] = fmt.Sprintf("%d 0 R", i+3)
	}
	fmt.Fprintf(&buf, "2 0 obj\n<< /Type /Pages /Kids [%s] /Count %d >>\nendobj\n",
		strings.Join(kids, " "), pages)

	// Объекты страниц
	for i := 0; i < pages; i++ {
		offsets = append(offsets, buf.Len())
		fmt.Fprintf(&buf, "%d 0 obj\n<< /Type /Page /Parent 2 0 R /MediaBox [0 0 612 792] /Resources << >> >>\nendobj\n", i+3)
	}

	xrefPos := buf.Len()
	total := pages + 3
	fmt.Fprintf(&buf, "xref\n0 %d\n", total)
	buf.WriteString("0000000000 65535 f \n")
	for _, off := range offsets {
		fmt.Fprintf(&buf, "%010d %05d n \n", off, 0)
	}
	fmt.Fprintf(&buf, "trailer\n<< /Size %d /Root 1 0 R >>\nstartxref\n%d\n%%%%EOF\n", total, xrefPos)

	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		t.Fatalf("failed to write sample pdf %s: %v", path, err)
	}
}

// writeGarbageFile пишет файл, который не является PDF
func writeGarbageFile(t *testing.T, path string) {
	t.Helper()
	if err := os.WriteFile(path, []byte("this is not a pdf document"), 0644); err != nil {
		t.Fatalf("failed to write garbage file %s: %v", path, err)
	}
}
