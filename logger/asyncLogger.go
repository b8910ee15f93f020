package logger

import (
	log_model "restaurant-pos/models/log"
	"restaurant-pos/types"

	"gorm.io/gorm"
)

// AsyncLogger persists request audit entries off the request path.
type AsyncLogger struct {
	db      *gorm.DB
	channel chan types.LogEntry
}

func NewAsyncLogger(db *gorm.DB) *AsyncLogger {
	return &AsyncLogger{
		db:      db,
		channel: make(chan types.LogEntry, 100),
	}
}

// ProcessLog drains the channel until Close is called.
func (logger *AsyncLogger) ProcessLog() {
	Info("Starting asynchronous request logger...")

	for logEntry := range logger.channel {
		dbLog := log_model.Log{
			Method:          logEntry.Method,
			URL:             logEntry.URL,
			RequestBody:     logEntry.RequestBody,
			ResponseBody:    logEntry.ResponseBody,
			RequestHeaders:  logEntry.RequestHeaders,
			ResponseHeaders: logEntry.ResponseHeaders,
			StatusCode:      logEntry.StatusCode,
			CreatedAt:       logEntry.CreatedAt,
		}

		if err := logger.db.Create(&dbLog).Error; err != nil {
			Error("Failed to insert request log entry", err)
		}
	}
}

// Log queues an entry. When the buffer is full the entry is dropped so that
// request handling never waits on the audit table.
func (logger *AsyncLogger) Log(entry types.LogEntry) {
	select {
	case logger.channel <- entry:
	default:
		Warning("Request log buffer full, dropping entry for " + entry.Method + " " + entry.URL)
	}
}

func (logger *AsyncLogger) Close() {
	close(logger.channel)
}
