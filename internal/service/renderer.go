package service

import (
	"html"
	"strings"
)

// escapeRenderer — минимальный ContentRenderer по умолчанию: экранирует
// HTML и переводит пустые строки в абзацы. Полноценный рендер подключается
// снаружи через New.
type escapeRenderer struct{}

func (escapeRenderer) Render(content string) (string, error) {
	if strings.TrimSpace(content) == "" {
		return "", nil
	}

	paragraphs := strings.Split(strings.ReplaceAll(content, "\r\n", "\n"), "\n\n")
	var b strings.Builder
	for _, p := range paragraphs {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}

		b.WriteString("<p>")
		b.WriteString(html.EscapeString(p))
		b.WriteString("</p>")
	}

	return b.String(), nil
}
