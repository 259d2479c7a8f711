package utils

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"
)

type Context map[string]interface{}

type Message struct {
	Time    string  `json:"time"`
	Service string  `json:"service"`
	Message string  `json:"message"`
	Context Context `json:"context"`
}

// DebugOutput receives the JSON debug lines; stdout is kept for results.
var DebugOutput io.Writer = os.Stderr

// LogFn handles every Debug call. It is a no-op until the caller enables
// debugging, usually with JSONLog.
var LogFn = func(service, message string, context Context) {}

func Debug(service string, message string) {
	LogFn(service, message, nil)
}

func DebugWithContext(service string, message string, context Context) {
	LogFn(service, message, context)
}

// JSONLog writes one JSON object per message to DebugOutput.
func JSONLog(service, message string, context Context) {
	if context == nil {
		context = make(Context, 0)
	}

	if hostname, err := os.Hostname(); err == nil {
		context["hostname"] = hostname
	}

	messageStruct := Message{
		Time:    time.Now().Format(time.RFC3339),
		Service: service,
		Message: message,
		Context: context,
	}

	data, _ := json.Marshal(messageStruct)

	fmt.Fprintln(DebugOutput, string(data))
}
