package utils

import (
	"encoding/json"
	"strings"
	"time"

	"restaurant-pos/types"

	"github.com/gofiber/fiber/v2"
)

// ValidCountryCodes lists the dialing prefixes accepted for staff phone numbers.
var ValidCountryCodes = []string{
	"+91",  // India
	"+1",   // USA
	"+971", // UAE
	"+44",  // UK
	"+61",  // Australia
}

// MinSubscriberDigits is the minimum length of a phone number after its country code.
const MinSubscriberDigits = 7

// PhoneCountryCode returns the first accepted country code the phone starts with.
func PhoneCountryCode(phone string) (string, bool) {
	phone = strings.TrimSpace(phone)
	for _, code := range ValidCountryCodes {
		if strings.HasPrefix(phone, code) {
			return code, true
		}
	}
	return "", false
}

// ValidatePhoneNumber checks the country code prefix and the minimum length after it.
func ValidatePhoneNumber(phone string) bool {
	phone = strings.TrimSpace(phone)
	code, ok := PhoneCountryCode(phone)
	if !ok {
		return false
	}
	return len(phone) >= len(code)+MinSubscriberDigits
}

var sensitiveFields = map[string]bool{
	"password":     true,
	"new_password": true,
	"token":        true,
}

// sanitizeRequestBody strips file content and credentials from the body before it is stored
func sanitizeRequestBody(c *fiber.Ctx) string {
	contentType := c.Get("Content-Type")
	if strings.Contains(contentType, "multipart/form-data") {
		formData := make(map[string]interface{})

		if form, err := c.MultipartForm(); err == nil {
			for key, values := range form.Value {
				if len(values) > 0 && !sensitiveFields[key] {
					formData[key] = values[0]
				}
			}

			for key, files := range form.File {
				fileInfo := make([]map[string]interface{}, len(files))
				for i, file := range files {
					fileInfo[i] = map[string]interface{}{
						"filename": file.Filename,
						"size":     file.Size,
						"content":  "[FILE_CONTENT_REMOVED]",
					}
				}
				formData[key] = fileInfo
			}
		}

		if jsonBytes, err := json.Marshal(formData); err == nil {
			return string(jsonBytes)
		}
		return "[MULTIPART_FORM_DATA]"
	}

	body := c.Body()
	if len(body) > 1000 && (strings.Contains(string(body), "data:image/") || isLikelyBase64(string(body))) {
		return "[LARGE_REQUEST_BODY_WITH_POSSIBLE_FILE_CONTENT]"
	}

	return redactJSON(body)
}

// redactJSON masks credential fields of a top level JSON object.
func redactJSON(body []byte) string {
	var payload map[string]interface{}
	if err := json.Unmarshal(body, &payload); err != nil {
		return string(body)
	}
	redacted := false
	for key := range payload {
		if sensitiveFields[key] {
			payload[key] = "[REDACTED]"
			redacted = true
		}
	}
	if !redacted {
		return string(body)
	}
	out, err := json.Marshal(payload)
	if err != nil {
		return "[UNREADABLE_BODY]"
	}
	return string(out)
}

// isLikelyBase64 detects if content looks like base64
func isLikelyBase64(content string) bool {
	if len(content) < 100 {
		return false
	}

	base64Chars := 0
	for _, char := range content {
		if (char >= 'A' && char <= 'Z') ||
			(char >= 'a' && char <= 'z') ||
			(char >= '0' && char <= '9') ||
			char == '+' || char == '/' || char == '=' {
			base64Chars++
		}
	}

	return float64(base64Chars)/float64(len(content)) > 0.8
}

// CreateSanitizedLogEntry copies everything it needs out of the fiber context,
// since fasthttp reuses request buffers once the handler returns.
func CreateSanitizedLogEntry(c *fiber.Ctx) types.LogEntry {
	method := string([]byte(c.Method()))
	url := string([]byte(c.OriginalURL()))
	requestBody := sanitizeRequestBody(c)
	responseBody := string(append([]byte(nil), c.Response().Body()...))

	requestHeaders := make([]byte, len(c.Request().Header.Header()))
	copy(requestHeaders, c.Request().Header.Header())

	responseHeaders := make([]byte, len(c.Response().Header.Header()))
	copy(responseHeaders, c.Response().Header.Header())

	return types.LogEntry{
		Method:          method,
		URL:             url,
		RequestBody:     requestBody,
		ResponseBody:    responseBody,
		RequestHeaders:  string(requestHeaders),
		ResponseHeaders: string(responseHeaders),
		StatusCode:      c.Response().StatusCode(),
		CreatedAt:       time.Now(),
	}
}
