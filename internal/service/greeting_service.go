// internal/service/greeting_service.go
package service

import (
    "strings"
)

// RenderGreeting fills {placeholder} slots in an outreach template. Empty
// values render as <unknown>.
func RenderGreeting(template string, data map[string]string) string {
    result := template
    for k, v := range data {
        if v == "" {
            v = "<unknown>"
        }
        result = strings.ReplaceAll(result, "{"+k+"}", v)
    }
    return result
}
