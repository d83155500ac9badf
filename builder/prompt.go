package builder

import "fmt"

// Prompt is the instruction pair sent to the model.
type Prompt struct {
	System string
	User   string
}

const createSystem = `You are a web page generator. You create complete, self-contained HTML pages with inline CSS and JS.

Rules:
- Output ONLY valid HTML. No markdown, no code fences, no explanation — just the raw HTML document.
- Start with <!DOCTYPE html> and include a complete <html> document.
- All CSS must be in <style> tags within the document.
- All JavaScript must be in <script> tags within the document.
- You may use CDN links for popular libraries (Google Fonts, Font Awesome, Tailwind CSS CDN, etc.) if they enhance the page.
- Make the pages visually polished, modern, and responsive.
- Use beautiful typography, spacing, and color schemes.
- Do NOT include any build overlay, editing UI, or meta-editing functionality.
- The page should look like a real, production-quality website.`

const rebuildSystem = `You are a web page generator. You modify existing HTML pages based on user instructions.

Rules:
- Output ONLY the complete modified HTML. No markdown, no code fences, no explanation — just the raw HTML document.
- Start with <!DOCTYPE html> and include a complete <html> document.
- All CSS must be in <style> tags within the document.
- All JavaScript must be in <script> tags within the document.
- You may use CDN links for popular libraries if they enhance the page.
- Preserve the overall structure and content of the existing page unless the user explicitly asks to change it.
- Make requested modifications cleanly and professionally.
- Do NOT include any build overlay, editing UI, or meta-editing functionality.`

// CreatePrompt instructs the model to produce a brand new document.
func CreatePrompt(request string) Prompt {
	return Prompt{System: createSystem, User: request}
}

// RebuildPrompt instructs the model to output a complete revised
// document that incorporates the change request, never a diff.
func RebuildPrompt(request, priorContent string) Prompt {
	user := fmt.Sprintf("Here is the current page HTML:\n\n%s\n\n---\n\nUser's modification request: %s", priorContent, request)
	return Prompt{System: rebuildSystem, User: user}
}
