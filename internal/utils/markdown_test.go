package utils

import (
	"strings"
	"testing"
)

func TestRenderMarkdownBasic(t *testing.T) {
	html := RenderMarkdown("**bold** text")
	if !strings.Contains(html, "<strong>bold</strong>") {
		t.Errorf("Expected bold markup, got %s", html)
	}
}

func TestRenderMarkdownStripsScript(t *testing.T) {
	html := RenderMarkdown(`hello <script>alert("x")</script>`)
	if strings.Contains(html, "<script>") {
		t.Errorf("Script tag survived sanitization: %s", html)
	}
	if !strings.Contains(html, "hello") {
		t.Errorf("Legitimate content was dropped: %s", html)
	}
}

func TestRenderMarkdownLinks(t *testing.T) {
	html := RenderMarkdown("[site](https://example.com)")
	if !strings.Contains(html, `href="https://example.com"`) {
		t.Errorf("Expected link to survive, got %s", html)
	}
}
