package middleware

import (
	"bytes"
	"encoding/json"
	"html"
	"io"
	"net/url"
	"strings"

	"github.com/gin-gonic/gin"
)

// maxSanitizedBody caps how much of a request body the sanitizer will buffer.
const maxSanitizedBody = 1 << 20 // 1 MiB

// sanitizeString trims whitespace and HTML-escapes a value.
func sanitizeString(s string) string {
	return html.EscapeString(strings.TrimSpace(s))
}

// sanitizeValue recursively sanitizes every string in a decoded JSON value.
func sanitizeValue(v interface{}) interface{} {
	switch val := v.(type) {
	case string:
		return sanitizeString(val)
	case map[string]interface{}:
		for k, inner := range val {
			val[k] = sanitizeValue(inner)
		}
		return val
	case []interface{}:
		for i, inner := range val {
			val[i] = sanitizeValue(inner)
		}
		return val
	default:
		return v
	}
}

// SanitizeBody HTML-escapes and trims every string value in a JSON request
// body before it reaches binding. Non-JSON and empty bodies pass through
// untouched.
func SanitizeBody() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Body == nil || !strings.HasPrefix(c.ContentType(), "application/json") {
			c.Next()
			return
		}

		raw, err := io.ReadAll(io.LimitReader(c.Request.Body, maxSanitizedBody))
		if err != nil {
			c.Next()
			return
		}
		_ = c.Request.Body.Close()

		var decoded interface{}
		if err := json.Unmarshal(raw, &decoded); err != nil {
			// Leave malformed JSON for binding to reject with 400.
			c.Request.Body = io.NopCloser(bytes.NewReader(raw))
			c.Next()
			return
		}

		sanitized, err := json.Marshal(sanitizeValue(decoded))
		if err != nil {
			c.Request.Body = io.NopCloser(bytes.NewReader(raw))
			c.Next()
			return
		}

		c.Request.Body = io.NopCloser(bytes.NewReader(sanitized))
		c.Request.ContentLength = int64(len(sanitized))
		c.Next()
	}
}

// SanitizeQuery HTML-escapes and trims every query parameter value.
func SanitizeQuery() gin.HandlerFunc {
	return func(c *gin.Context) {
		query := c.Request.URL.Query()
		changed := false

		for key, values := range query {
			for i, v := range values {
				clean := sanitizeString(v)
				if clean != v {
					values[i] = clean
					changed = true
				}
			}
			query[key] = values
		}

		if changed {
			c.Request.URL.RawQuery = url.Values(query).Encode()
		}

		c.Next()
	}
}

// SanitizeParams HTML-escapes and trims every path parameter value.
func SanitizeParams() gin.HandlerFunc {
	return func(c *gin.Context) {
		for i, p := range c.Params {
			c.Params[i].Value = sanitizeString(p.Value)
		}
		c.Next()
	}
}
