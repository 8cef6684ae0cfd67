// Package logger содержит общий логгер для server и agent.
//
// Пакет предоставляет Zap-логгер, настроенный на запись в файл с ротацией
// (lumberjack) и удобный метод для логирования HTTP-запросов.
package logger

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// HTTPLogger представляет обёртку над zap.Logger для логирования HTTP-событий.
//
// Встраивание *zap.Logger позволяет использовать все методы zap напрямую.
type HTTPLogger struct {
	*zap.Logger
}

// Options описывает куда и как писать логи.
//
// Нулевые значения заменяются дефолтами из DefaultOptions.
type Options struct {
	Level      string // debug|info|warn|error
	Format     string // console|json
	File       string // путь к файлу логов
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
	Compress   bool
	Stdout     bool // дублировать логи в stdout
}

// DefaultOptions возвращает настройки по умолчанию: runtime/logs/http.log,
// уровень info, текстовый формат.
func DefaultOptions() Options {
	return Options{
		Level:      "info",
		Format:     "console",
		File:       filepath.Join("runtime", "logs", "http.log"),
		MaxSizeMB:  100, // MB ≈ ~300 000 строк
		MaxBackups: 10,
		MaxAgeDays: 30,
		Compress:   true,
	}
}

// NewHTTPLogger создаёт файловый zap-логгер с настройками по умолчанию.
//
// Формат времени: "HH:MM:SS DD.MM.YYYY".
func NewHTTPLogger() *HTTPLogger {
	l, err := New(DefaultOptions())
	if err != nil {
		// дефолты валидны всегда, сюда попадаем только если нет прав на каталог
		return &HTTPLogger{Logger: zap.NewNop()}
	}
	return l
}

// New создаёт логгер по переданным настройкам.
func New(opts Options) (*HTTPLogger, error) {
	def := DefaultOptions()
	if opts.File == "" {
		opts.File = def.File
	}
	if opts.Level == "" {
		opts.Level = def.Level
	}
	if opts.MaxSizeMB == 0 {
		opts.MaxSizeMB = def.MaxSizeMB
	}
	if opts.MaxBackups == 0 {
		opts.MaxBackups = def.MaxBackups
	}
	if opts.MaxAgeDays == 0 {
		opts.MaxAgeDays = def.MaxAgeDays
	}

	level, err := zapcore.ParseLevel(opts.Level)
	if err != nil {
		return nil, fmt.Errorf("log level %q: %w", opts.Level, err)
	}

	if err := os.MkdirAll(filepath.Dir(opts.File), 0o755); err != nil {
		return nil, fmt.Errorf("create log dir: %w", err)
	}

	// lumberjack отвечает за ротацию файлов
	writer := zapcore.AddSync(&lumberjack.Logger{
		Filename:   opts.File,
		MaxSize:    opts.MaxSizeMB,
		MaxBackups: opts.MaxBackups,
		MaxAge:     opts.MaxAgeDays,
		Compress:   opts.Compress,
	})
	if opts.Stdout {
		writer = zapcore.NewMultiWriteSyncer(writer, zapcore.AddSync(os.Stdout))
	}

	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.TimeKey = "ts"
	encoderCfg.EncodeTime = customTimeEncoder

	var encoder zapcore.Encoder
	switch opts.Format {
	case "json":
		encoder = zapcore.NewJSONEncoder(encoderCfg)
	case "", "console":
		encoder = zapcore.NewConsoleEncoder(encoderCfg)
	default:
		return nil, fmt.Errorf("log format %q: expected console|json", opts.Format)
	}

	core := zapcore.NewCore(encoder, writer, level)
	return &HTTPLogger{Logger: zap.New(core, zap.AddCaller(), zap.AddCallerSkip(1))}, nil
}

// LogRequest записывает структурированный лог об HTTP-запросе.
//
// duration — длительность обработки запроса в миллисекундах.
func (logger *HTTPLogger) LogRequest(method, uri string, status, responseSize int, duration float64) {
	logger.Info("HTTP request",
		zap.String("method", method),
		zap.String("uri", uri),
		zap.Int("status", status),
		zap.Int("response_size", responseSize),
		zap.Float64("duration_ms", duration),
	)
}

// customTimeEncoder форматирует время для логов в виде "HH:MM:SS DD.MM.YYYY".
func customTimeEncoder(t time.Time, enc zapcore.PrimitiveArrayEncoder) {
	enc.AppendString(t.Format("15:04:05 02.01.2006"))
}
