package middleware

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"sync"
	"time"

	"Warsha/Models"

	"github.com/gofiber/fiber/v2"
)

// LogData is one request record as written to the log file.
type LogData struct {
	Timestamp     time.Time     `json:"timestamp"`
	Method        string        `json:"method"`
	Path          string        `json:"path"`
	URL           string        `json:"url"`
	Status        int           `json:"status"`
	Latency       time.Duration `json:"latency"`
	IP            string        `json:"ip"`
	UserAgent     string        `json:"user_agent"`
	Error         string        `json:"error,omitempty"`
	UserID        interface{}   `json:"user_id"`
	Username      string        `json:"username"`
	ContentLength int64         `json:"content_length"`
}

var logFileMutex sync.Mutex

// RequestLogger logs every request to the console and to logs/requests.log as
// JSON lines. Health checks are skipped.
func RequestLogger() fiber.Handler {
	if err := os.MkdirAll("logs", 0755); err != nil {
		log.Printf("Error creating logs directory: %v\n", err)
	}

	return func(c *fiber.Ctx) error {
		if c.Path() == "/health" {
			return c.Next()
		}

		start := time.Now()
		err := c.Next()
		latency := time.Since(start)

		var userID interface{}
		var username string
		if user := c.Locals("user"); user != nil {
			if userStruct, ok := user.(Models.User); ok {
				userID = userStruct.Id
				username = userStruct.Name
			}
		}

		data := LogData{
			Timestamp:     start,
			Method:        c.Method(),
			Path:          c.Path(),
			URL:           c.OriginalURL(),
			Status:        c.Response().StatusCode(),
			Latency:       latency,
			IP:            c.IP(),
			UserAgent:     c.Get("User-Agent"),
			UserID:        userID,
			Username:      username,
			ContentLength: int64(len(c.Response().Body())),
		}
		if err != nil {
			data.Error = err.Error()
		}

		logRequest(data)
		return err
	}
}

func logRequest(data LogData) {
	jsonData, marshalErr := json.Marshal(data)
	if marshalErr != nil {
		log.Printf("Error marshaling request log: %v\n", marshalErr)
		return
	}

	log.Printf("%s %s %d %s", data.Method, data.Path, data.Status, data.Latency)

	logFileMutex.Lock()
	defer logFileMutex.Unlock()

	file, err := os.OpenFile("logs/requests.log", os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		log.Printf("Error opening request log file: %v\n", err)
		return
	}
	defer file.Close()

	if _, err := fmt.Fprintln(file, string(jsonData)); err != nil {
		log.Printf("Error writing request log: %v\n", err)
	}
}
