package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderMarkdownPage(t *testing.T) {
	md := []byte("# Welcome\n\nSome *text* here.\n")

	out, err := renderMarkdownPage(md, "My Page")
	require.NoError(t, err)

	assert.Contains(t, out, "<!DOCTYPE html>")
	assert.Contains(t, out, "<title>My Page</title>")
	assert.Contains(t, out, "<h1>Welcome</h1>")
	assert.Contains(t, out, "<em>text</em>")
	assert.Contains(t, out, "</html>")
}

func TestRenderMarkdownPageEscapesTitle(t *testing.T) {
	out, err := renderMarkdownPage([]byte("hi"), `<script>"x"</script>`)
	require.NoError(t, err)

	assert.NotContains(t, out, "<script>")
	assert.Contains(t, out, "&lt;script&gt;")
}

func TestRenderMarkdownPageDefaultTitle(t *testing.T) {
	out, err := renderMarkdownPage([]byte("hi"), "")
	require.NoError(t, err)

	assert.Contains(t, out, "<title>fromblank</title>")
}
