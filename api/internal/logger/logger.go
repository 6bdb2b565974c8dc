package logger

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"runtime"
	"strconv"
	"time"

	"lnticket/api/internal/config"

	"github.com/golang-cz/devslog"
	"github.com/google/uuid"
)

type Logger struct {
	ship *shipper
}

// forwards structured records to parseable. nil when shipping is not
// configured, console only then.
type shipper struct {
	url    string
	bearer string
	client *http.Client
}

func Init(config *config.Config) Logger {
	slogOpts := &slog.HandlerOptions{}

	if !config.Prod_env {
		slogOpts.Level = slog.LevelDebug
	}

	// new logger with options
	opts := &devslog.Options{
		HandlerOptions:    slogOpts,
		MaxSlicePrintSize: 4,
		SortKeys:          true,
		NewLineAfterLog:   true,
	}

	logger := slog.New(devslog.NewHandler(os.Stdout, opts))

	slog.SetDefault(logger)

	var ship *shipper
	if config.Secrets.ParseableUrl != "" {
		ship = &shipper{
			url:    config.Secrets.ParseableUrl + "/api/v1/logstream/",
			bearer: base64.RawStdEncoding.EncodeToString([]byte(config.Secrets.ParseableUsername + ":" + config.Secrets.ParseablePassword)),
			client: &http.Client{Timeout: 10 * time.Second},
		}
	}

	return Logger{ship: ship}
}

// example Info("ticket paid", LS_SETTLEMENTS, false, "ticket_id", id)
func (l Logger) Info(message string, logStream Logstream, isTemplate bool, args ...any) {
	l.log(LL_INFO, message, logStream, isTemplate, args...)
}

// example Error("settle error", LS_SETTLEMENTS, false, "error", err.Error())
func (l Logger) Error(message string, logStream Logstream, isTemplate bool, args ...any) {
	l.log(LL_ERROR, message, logStream, isTemplate, args...)
}

// use only for fatal errors
func (l Logger) Fatal(message string, logStream Logstream, isTemplate bool, args ...any) {
	l.log(LL_FATAL, message, logStream, isTemplate, args...)
}

func (l Logger) Debug(message string, args ...any) {
	_, file, line, _ := runtime.Caller(1)

	printLog(LL_DEBUG, message, file, line, args...)
}

func (l Logger) log(ll LogLevel, message string, logStream Logstream, isTemplate bool, args ...any) {
	var skip int

	if isTemplate {
		skip = 3
	} else {
		skip = 2
	}

	pc, file, line, _ := runtime.Caller(skip)
	log, err := l.formatLog(ll, message, pc, file, line, args...)
	if err != nil {
		fmt.Printf("%s:%d: format log error: %v\n", file, line, err)
		return
	}

	printLog(ll, message, file, line, args...)

	if l.ship == nil {
		return
	}

	if ll == LL_FATAL {
		l.ship.send(log, logStream)
		return
	}
	go l.ship.send(log, logStream)
}

func printLog(ll LogLevel, message string, file string, line int, args ...any) {
	args = append(args, "source", file+":"+strconv.Itoa(line))
	switch ll {
	case LL_ERROR:
		slog.Error(message, args...)
	case LL_INFO:
		slog.Info(message, args...)
	case LL_FATAL:
		slog.Error(message, args...)
	case LL_DEBUG:
		slog.Debug(message, args...)
	}

}

func (s *shipper) send(log []byte, logstream Logstream) {
	req, err := http.NewRequest("POST", s.url+logstream.ToString(), bytes.NewBuffer(log))
	if err != nil {
		fmt.Println("Error creating request:", err)
		return
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Basic "+s.bearer)

	resp, err := s.client.Do(req)
	if err != nil {
		fmt.Println("Error sending:", err)
		return
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return
	}
	if string(body) != "" {
		fmt.Println("Error sending:", string(body))
	}
}

func (l Logger) formatLog(ll LogLevel, message string, pc uintptr, file string, line int, args ...any) (log []byte, err error) {
	callerFunc := runtime.FuncForPC(pc).Name()

	logLevel := ll.ToString()

	logMessage := LogMessage{
		Message:  message,
		LogLevel: logLevel,
		Args:     make(map[string]interface{}),
		Source: Source{
			Function: callerFunc,
			File:     file,
			Line:     line,
		},
		AppInfo: AppInfo{
			Pid:       os.Getpid(),
			GoVersion: runtime.Version(),
		},
	}

	if len(args)%2 != 0 {
		return nil, fmt.Errorf("odd number of args")
	}

	for i := 0; i < len(args); i += 2 {
		key, ok := args[i].(string)
		if !ok {
			return nil, fmt.Errorf("the key must be a string: %v", args[i])
		}
		value := args[i+1]
		logMessage.Args[key] = value
	}

	b, err := json.Marshal(logMessage)
	if err != nil {
		return nil, err
	}

	return b, nil
}

func AnyToStr(t any) string {
	return fmt.Sprintf("%v", t)
}

func GenErrorId() string {
	var errorId string
	uuid, err := uuid.NewRandom()
	if err != nil {
		errorId = NA
	} else {
		errorId = uuid.String()
	}
	return errorId
}
