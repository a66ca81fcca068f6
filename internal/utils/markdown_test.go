package utils

import (
	"strings"
	"testing"
)

func TestRenderMarkdown(t *testing.T) {
	out := string(RenderMarkdown("**bold** and [a link](https://example.com)"))
	if !strings.Contains(out, "<strong>bold</strong>") {
		t.Errorf("expected bold markup, got %q", out)
	}
	if !strings.Contains(out, `href="https://example.com"`) {
		t.Errorf("expected link, got %q", out)
	}
}

func TestRenderMarkdownStripsScript(t *testing.T) {
	out := string(RenderMarkdown(`hello <script>alert("x")</script>`))
	if strings.Contains(out, "<script>") {
		t.Errorf("script tag survived sanitization: %q", out)
	}
}
