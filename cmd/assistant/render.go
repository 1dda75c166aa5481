package main

import (
	"strings"

	"github.com/valyala/bytebufferpool"
)

const (
	emphasisDelimiter = "**"
	ansiBold          = "\x1b[1m"
	ansiReset         = "\x1b[0m"
)

// renderEmphasis splits on the literal delimiter; odd segments are emphasized.
// An unpaired delimiter leaves the trailing segment emphasized, matching the split.
func renderEmphasis(text string, color bool) string {
	parts := strings.Split(text, emphasisDelimiter)
	if len(parts) == 1 {
		return text
	}

	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)
	for i, part := range parts {
		if i%2 == 1 && color && part != "" {
			_, _ = buf.WriteString(ansiBold)
			_, _ = buf.WriteString(part)
			_, _ = buf.WriteString(ansiReset)
			continue
		}
		_, _ = buf.WriteString(part)
	}
	return buf.String()
}
