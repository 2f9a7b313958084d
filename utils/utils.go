package utils

import (
	"encoding/json"
	"regexp"
	"strings"
	"time"

	"hotel-booking/types"

	"github.com/gofiber/fiber/v2"
)

var nonDigit = regexp.MustCompile(`\D`)

// NormalizePhone reduces a phone number to its digits, keeping a leading "+".
// The normalized form is what the guest registry dedups on.
func NormalizePhone(phone string) string {
	phone = strings.TrimSpace(phone)
	// A leading "+" may sit behind spaces or an opening parenthesis, as in
	// "(+250) 788...".
	plus := strings.HasPrefix(strings.TrimLeft(phone, " ("), "+")
	digits := nonDigit.ReplaceAllString(phone, "")
	if plus && digits != "" {
		return "+" + digits
	}
	return digits
}

// ValidatePhoneNumber checks that a phone number has a plausible length after
// normalization.
func ValidatePhoneNumber(phone string) bool {
	digits := nonDigit.ReplaceAllString(phone, "")
	return len(digits) >= 7 && len(digits) <= 15
}

// ValidateTimeOfDay checks an "HH:MM" clock string such as a check-in time.
func ValidateTimeOfDay(value string) bool {
	_, err := time.Parse("15:04", value)
	return err == nil
}

// sanitizeRequestBody keeps request logs readable by flattening multipart
// uploads and eliding likely-binary payloads.
func sanitizeRequestBody(c *fiber.Ctx) string {
	contentType := c.Get("Content-Type")
	if strings.Contains(contentType, "multipart/form-data") {
		formData := make(map[string]interface{})
		if form, err := c.MultipartForm(); err == nil {
			for key, values := range form.Value {
				if len(values) > 0 {
					formData[key] = values[0]
				}
			}
			for key, files := range form.File {
				names := make([]string, len(files))
				for i, file := range files {
					names[i] = file.Filename
				}
				formData[key] = names
			}
		}
		if jsonBytes, err := json.Marshal(formData); err == nil {
			return string(jsonBytes)
		}
		return "[MULTIPART_FORM_DATA]"
	}

	body := string(c.Body())
	if len(body) > 10000 {
		return "[LARGE_REQUEST_BODY]"
	}
	return body
}

// CreateSanitizedLogEntry deep-copies request/response data into a log entry
// so the async logger never references fasthttp buffers after the handler
// returns.
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
