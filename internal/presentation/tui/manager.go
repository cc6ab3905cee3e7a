package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"pdfmerger/internal/domain/entities"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
	"gopkg.in/yaml.v3"
)

// UI Configuration constants
const (
	MaxLogBufferSize   = 1000
	LogFlushInterval   = 50 * time.Millisecond
	ResultViewHeight   = 12
	ConfigFileName     = "config.yaml"
	FieldWidth         = 60
	LevelFieldWidth    = 10
	LogBatchSize       = 20
	LogChanCapacity    = 100
	MaxFileNameDisplay = 57
)

// OperationHandlers функции запуска фоновых операций, привязываются в main.
// Каждая возвращает одноразовый канал завершения, который менеджер
// читает ровно один раз.
type OperationHandlers struct {
	MergeFolder    func(folder, output string) <-chan entities.OperationOutcome
	MergeFiles     func(paths []string, output string) <-chan entities.OperationOutcome
	CompressFile   func(input, output string, level entities.CompressionLevel) <-chan entities.OperationOutcome
	CompressFolder func(folder, output string, level entities.CompressionLevel) <-chan entities.OperationOutcome
}

// session состояние полей форм, принадлежит менеджеру и передается
// в сценарии только значениями при запуске операции
type session struct {
	mergeFolder    string
	mergeFiles     string // пути через точку с запятой, порядок сохраняется
	mergeOutput    string
	compressInput  string
	compressOutput string
	compressDir    bool
	level          entities.CompressionLevel
}

// Manager управляет TUI интерфейсом
type Manager struct {
	app           *tview.Application
	pages         *tview.Pages
	currentScreen entities.UIScreen

	// UI компоненты
	mainMenu     *tview.List
	mergeForm    *tview.Form
	compressForm *tview.Form
	configForm   *tview.Form
	resultView   *tview.TextView
	logView      *tview.TextView

	// Callbacks
	handlers OperationHandlers

	// Состояние
	config       *entities.Config
	session      session
	logBuffer    []string
	statusMutex  sync.RWMutex
	isProcessing bool

	// Оптимизированный батчинг логов через канал
	logChan  chan string
	logDone  chan struct{}
	logMutex sync.Mutex
}

// NewManager создает новый менеджер TUI
func NewManager(config *entities.Config, level entities.CompressionLevel) *Manager {
	m := &Manager{
		app:       tview.NewApplication(),
		pages:     tview.NewPages(),
		config:    config,
		logBuffer: make([]string, 0, MaxLogBufferSize),
		logChan:   make(chan string, LogChanCapacity),
		logDone:   make(chan struct{}),
	}

	m.session = session{
		mergeFolder: config.Merge.SourceDirectory,
		mergeOutput: config.Merge.OutputFileName,
		level:       level,
	}

	// Запускаем горутину обработки логов
	go m.logProcessor()
	return m
}

// Initialize инициализирует TUI
func (m *Manager) Initialize() {
	m.createUI()
	m.setupKeyBindings()
}

// Run запускает TUI
func (m *Manager) Run() error {
	return m.app.SetRoot(m.pages, true).EnableMouse(true).Run()
}

// SetHandlers устанавливает функции запуска операций
func (m *Manager) SetHandlers(handlers OperationHandlers) {
	m.handlers = handlers
}

// GetConfig возвращает текущую конфигурацию
func (m *Manager) GetConfig() *entities.Config {
	return m.config
}

// SendProgress отправляет обновление прогресса сжатия директории
func (m *Manager) SendProgress(processed, total int, stat *entities.CompressionStat) {
	if m.resultView == nil || stat == nil {
		return
	}

	line := fmt.Sprintf("[cyan]Обработано %d/%d[white]", processed, total)
	if stat.Success {
		line += fmt.Sprintf("  [green]✓[white] %s (%.1f%%)", m.truncateFileName(stat.FileName), stat.ReductionPct)
	} else {
		line += fmt.Sprintf("  [red]✗[white] %s", m.truncateFileName(stat.FileName))
	}

	m.app.QueueUpdateDraw(func() {
		m.resultView.SetText(line)
	})
}

// saveConfig сохраняет конфигурацию
func (m *Manager) saveConfig() {
	data, err := yaml.Marshal(m.config)
	if err != nil {
		return
	}
	os.WriteFile(ConfigFileName, data, 0644)
}

// createUI создает пользовательский интерфейс
func (m *Manager) createUI() {
	m.createMainMenu()
	m.createMergeForm()
	m.createCompressForm()
	m.createConfigForm()
	m.createProcessingScreen()

	m.pages.AddPage("menu", m.mainMenu, true, true)
	m.pages.AddPage("merge", m.mergeForm, true, false)
	m.pages.AddPage("compress", m.compressForm, true, false)
	m.pages.AddPage("config", m.configForm, true, false)
	m.pages.AddPage("processing", m.createProcessingLayout(), true, false)

	m.currentScreen = entities.UIScreenMenu
}

// createMainMenu создает главное меню
func (m *Manager) createMainMenu() {
	m.mainMenu = tview.NewList().
		AddItem("📎 Объединение PDF", "Склеить файлы директории или списка в один документ", '1', func() {
			m.switchToScreen(entities.UIScreenMerge)
		}).
		AddItem("🗜 Сжатие PDF", "Сжать один файл или все файлы директории", '2', func() {
			m.switchToScreen(entities.UIScreenCompress)
		}).
		AddItem("⚙️ Конфигурация", "Настроить параметры по умолчанию", '3', func() {
			m.switchToScreen(entities.UIScreenConfig)
		}).
		AddItem("❌ Выход", "Закрыть приложение", 'q', func() {
			m.Cleanup()
			m.app.Stop()
		})

	m.mainMenu.SetBorder(true).
		SetTitle("🔥 PDF Merger & Compressor - Главное меню").
		SetTitleAlign(tview.AlignCenter)

	// Настраиваем стиль
	m.mainMenu.SetSelectedBackgroundColor(tcell.ColorDarkBlue).
		SetSelectedTextColor(tcell.ColorWhite).
		SetMainTextColor(tcell.ColorWhite).
		SetSecondaryTextColor(tcell.ColorGray)
}

// createMergeForm создает форму объединения
func (m *Manager) createMergeForm() {
	m.mergeForm = tview.NewForm().
		AddInputField("Директория с PDF", m.session.mergeFolder, FieldWidth, nil, func(text string) {
			m.session.mergeFolder = text
		}).
		AddInputField("Список файлов (через ;)", m.session.mergeFiles, FieldWidth, nil, func(text string) {
			m.session.mergeFiles = text
		}).
		AddInputField("Выходной файл", m.session.mergeOutput, FieldWidth, nil, func(text string) {
			m.session.mergeOutput = text
		}).
		AddButton("Объединить директорию", func() {
			m.startMergeFolder()
		}).
		AddButton("Объединить список", func() {
			m.startMergeFiles()
		}).
		AddButton("Назад", func() {
			m.switchToScreen(entities.UIScreenMenu)
		})

	m.mergeForm.SetBorder(true).
		SetTitle("📎 Объединение PDF (ESC - в меню)").
		SetTitleAlign(tview.AlignCenter)

	m.mergeForm.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		if event.Key() == tcell.KeyEscape {
			m.switchToScreen(entities.UIScreenMenu)
			return nil
		}
		return event
	})
}

// createCompressForm создает форму сжатия
func (m *Manager) createCompressForm() {
	m.compressForm = tview.NewForm().
		AddCheckbox("Сжимать директорию целиком", m.session.compressDir, func(checked bool) {
			m.session.compressDir = checked
		}).
		AddInputField("Входной файл или директория", m.session.compressInput, FieldWidth, nil, func(text string) {
			m.session.compressInput = text
		}).
		AddInputField("Результат (пусто - по умолчанию)", m.session.compressOutput, FieldWidth, nil, func(text string) {
			m.session.compressOutput = text
		}).
		AddDropDown("Уровень сжатия", []string{"low", "medium", "high"}, int(m.session.level), func(option string, optionIndex int) {
			if level, err := entities.ParseCompressionLevel(option); err == nil {
				m.session.level = level
			}
		}).
		AddButton("Сжать", func() {
			m.startCompress()
		}).
		AddButton("Назад", func() {
			m.switchToScreen(entities.UIScreenMenu)
		})

	m.compressForm.SetBorder(true).
		SetTitle("🗜 Сжатие PDF (ESC - в меню)").
		SetTitleAlign(tview.AlignCenter)

	m.compressForm.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		if event.Key() == tcell.KeyEscape {
			m.switchToScreen(entities.UIScreenMenu)
			return nil
		}
		return event
	})
}

// createConfigForm создает экран конфигурации
func (m *Manager) createConfigForm() {
	m.configForm = tview.NewForm().
		AddInputField("Директория объединения", m.config.Merge.SourceDirectory, FieldWidth, nil, func(text string) {
			m.config.Merge.SourceDirectory = text
		}).
		AddInputField("Имя результата объединения", m.config.Merge.OutputFileName, FieldWidth, nil, func(text string) {
			m.config.Merge.OutputFileName = text
		}).
		AddCheckbox("Исключать результат из входов", m.config.Merge.ExcludeOutput, func(checked bool) {
			m.config.Merge.ExcludeOutput = checked
		}).
		AddDropDown("Уровень сжатия", []string{"low", "medium", "high"}, levelIndex(m.config.Compression.Level), func(option string, optionIndex int) {
			m.config.Compression.Level = option
		}).
		AddDropDown("Алгоритм", []string{"pdfcpu", "unipdf"}, func() int {
			if m.config.Compression.Algorithm == "unipdf" {
				return 1
			}
			return 0
		}(), func(option string, optionIndex int) {
			m.config.Compression.Algorithm = option
		}).
		AddInputField("Лицензия UniPDF (UNIDOC_LICENSE_API_KEY)", m.config.Compression.UniPDFLicenseKey, FieldWidth, nil, func(text string) {
			m.config.Compression.UniPDFLicenseKey = text
		}).
		AddInputField("Директория результатов сжатия", m.config.Compression.OutputDirectory, FieldWidth, nil, func(text string) {
			m.config.Compression.OutputDirectory = text
		}).
		AddButton("Сохранить", func() {
			m.saveConfig()
			m.switchToScreen(entities.UIScreenMenu)
		})

	m.configForm.SetBorder(true).
		SetTitle("⚙️ Конфигурация (ESC - выйти без сохранения)").
		SetTitleAlign(tview.AlignCenter)

	m.configForm.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		if event.Key() == tcell.KeyEscape {
			m.switchToScreen(entities.UIScreenMenu)
			return nil
		}
		return event
	})
}

// createProcessingScreen создает экран обработки
func (m *Manager) createProcessingScreen() {
	m.resultView = tview.NewTextView().
		SetDynamicColors(true).
		SetScrollable(true)

	m.resultView.SetBorder(true).
		SetTitle("📊 Результат операции").
		SetTitleAlign(tview.AlignCenter)

	m.logView = tview.NewTextView().
		SetDynamicColors(true).
		SetScrollable(true).
		SetMaxLines(MaxLogBufferSize)

	m.logView.SetBorder(true).
		SetTitle("📋 Журнал событий").
		SetTitleAlign(tview.AlignCenter)
}

// createProcessingLayout создает layout для экрана обработки
func (m *Manager) createProcessingLayout() *tview.Flex {
	return tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(m.logView, 0, 1, false).
		AddItem(m.resultView, ResultViewHeight, 0, false)
}

// setupKeyBindings настраивает горячие клавиши
func (m *Manager) setupKeyBindings() {
	m.app.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch event.Key() {
		case tcell.KeyF1:
			m.switchToScreen(entities.UIScreenMenu)
			return nil
		case tcell.KeyF3:
			if m.isProcessing {
				m.switchToScreen(entities.UIScreenProcessing)
			}
			return nil
		case tcell.KeyEscape:
			// На формах ESC обрабатывается локально
			if m.currentScreen == entities.UIScreenProcessing {
				m.switchToScreen(entities.UIScreenMenu)
				return nil
			}
		}
		return event
	})
}

// switchToScreen переключает на указанный экран
func (m *Manager) switchToScreen(screen entities.UIScreen) {
	m.statusMutex.Lock()
	defer m.statusMutex.Unlock()

	m.currentScreen = screen

	switch screen {
	case entities.UIScreenMenu:
		m.pages.SwitchToPage("menu")
	case entities.UIScreenMerge:
		m.pages.SwitchToPage("merge")
	case entities.UIScreenCompress:
		m.pages.SwitchToPage("compress")
	case entities.UIScreenConfig:
		m.pages.SwitchToPage("config")
	case entities.UIScreenProcessing:
		m.pages.SwitchToPage("processing")
	}
}

// startMergeFolder запускает объединение директории
func (m *Manager) startMergeFolder() {
	if m.handlers.MergeFolder == nil {
		return
	}
	if m.session.mergeFolder == "" {
		m.AddLog("WARNING", "Укажите директорию с PDF файлами")
		return
	}

	output := m.ensurePDFExt(m.session.mergeOutput)
	m.beginOperation()
	m.consumeOutcome(m.handlers.MergeFolder(m.session.mergeFolder, output))
}

// startMergeFiles запускает объединение явного списка
func (m *Manager) startMergeFiles() {
	if m.handlers.MergeFiles == nil {
		return
	}

	var paths []string
	for _, p := range strings.Split(m.session.mergeFiles, ";") {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			paths = append(paths, trimmed)
		}
	}
	if len(paths) == 0 {
		m.AddLog("WARNING", "Укажите список PDF файлов через точку с запятой")
		return
	}

	output := m.ensurePDFExt(m.session.mergeOutput)
	m.beginOperation()
	m.consumeOutcome(m.handlers.MergeFiles(paths, output))
}

// startCompress запускает сжатие файла или директории
func (m *Manager) startCompress() {
	if m.session.compressInput == "" {
		m.AddLog("WARNING", "Укажите входной файл или директорию")
		return
	}

	m.beginOperation()
	if m.session.compressDir {
		if m.handlers.CompressFolder == nil {
			return
		}
		m.consumeOutcome(m.handlers.CompressFolder(m.session.compressInput, m.session.compressOutput, m.session.level))
	} else {
		if m.handlers.CompressFile == nil {
			return
		}
		m.consumeOutcome(m.handlers.CompressFile(m.session.compressInput, m.session.compressOutput, m.session.level))
	}
}

// beginOperation переводит UI в режим выполнения операции
func (m *Manager) beginOperation() {
	m.isProcessing = true
	m.switchToScreen(entities.UIScreenProcessing)
}

// consumeOutcome читает одноразовое уведомление о завершении операции
// и отображает его. Канал потребляется ровно один раз.
func (m *Manager) consumeOutcome(done <-chan entities.OperationOutcome) {
	go func() {
		outcome := <-done

		var text string
		if outcome.Success {
			text = fmt.Sprintf("[green]✅ %s[white]\n\n%s\n\n[dim]Время: %s[white]",
				outcome.Kind, outcome.FormatDetails(), outcome.ElapsedTime.Round(time.Millisecond))
		} else {
			text = fmt.Sprintf("[red]❌ %s[white]\n\n%s", outcome.Kind, outcome.Message)
		}
		text += "\n\n[yellow]F1[white] / [yellow]ESC[white] - Главное меню"

		m.app.QueueUpdateDraw(func() {
			m.resultView.SetText(text)
		})

		m.statusMutex.Lock()
		m.isProcessing = false
		m.statusMutex.Unlock()
	}()
}

// ensurePDFExt гарантирует расширение .pdf у имени результата
func (m *Manager) ensurePDFExt(name string) string {
	if name == "" {
		name = m.config.Merge.OutputFileName
	}
	if !strings.EqualFold(filepath.Ext(name), ".pdf") {
		name += ".pdf"
	}
	return name
}

// truncateFileName корректно усекает имя файла с учетом UTF-8
func (m *Manager) truncateFileName(fileName string) string {
	runes := []rune(fileName)
	if len(runes) <= MaxFileNameDisplay {
		return fileName
	}
	return string(runes[:MaxFileNameDisplay]) + "..."
}

// AddLog добавляет запись в лог через канал (неблокирующе)
func (m *Manager) AddLog(level, message string) {
	var color string
	switch strings.ToLower(level) {
	case "error":
		color = "red"
	case "warning":
		color = "yellow"
	case "success":
		color = "green"
	case "debug":
		color = "gray"
	default:
		color = "white"
	}

	logLine := fmt.Sprintf("[%s]%s:[white] %s", color, strings.ToUpper(level), message)

	// Неблокирующая отправка в канал
	select {
	case m.logChan <- logLine:
	default:
		// Если канал переполнен, пропускаем лог (лучше чем блокировка)
	}
}

// logProcessor обрабатывает логи в отдельной горутине с батчингом
func (m *Manager) logProcessor() {
	ticker := time.NewTicker(LogFlushInterval)
	defer ticker.Stop()

	batch := make([]string, 0, LogBatchSize)

	for {
		select {
		case logLine := <-m.logChan:
			batch = append(batch, logLine)

			if len(batch) >= LogBatchSize {
				m.flushLogBatch(batch)
				batch = make([]string, 0, LogBatchSize)
			}

		case <-ticker.C:
			// Периодический сброс
			if len(batch) > 0 {
				m.flushLogBatch(batch)
				batch = make([]string, 0, LogBatchSize)
			}

		case <-m.logDone:
			// Финальный сброс при завершении
			if len(batch) > 0 {
				m.flushLogBatch(batch)
			}
			return
		}
	}
}

// flushLogBatch сбрасывает батч логов в UI
func (m *Manager) flushLogBatch(batch []string) {
	m.statusMutex.Lock()
	m.logBuffer = append(m.logBuffer, batch...)

	// Ограничиваем размер буфера
	if len(m.logBuffer) > MaxLogBufferSize {
		m.logBuffer = m.logBuffer[len(m.logBuffer)-MaxLogBufferSize:]
	}

	logText := strings.Join(m.logBuffer, "\n")
	m.statusMutex.Unlock()

	if m.logView != nil {
		m.app.QueueUpdateDraw(func() {
			if m.logView != nil {
				m.logView.SetText(logText)
				m.logView.ScrollToEnd()
			}
		})
	}
}

// Cleanup освобождает ресурсы менеджера (идемпотентный)
func (m *Manager) Cleanup() {
	m.logMutex.Lock()
	defer m.logMutex.Unlock()

	select {
	case <-m.logDone:
		// Канал уже закрыт
		return
	default:
		close(m.logDone)
	}
}

// levelIndex возвращает индекс уровня для выпадающего списка
func levelIndex(level string) int {
	if parsed, err := entities.ParseCompressionLevel(level); err == nil {
		return int(parsed)
	}
	return int(entities.LevelMedium)
}
