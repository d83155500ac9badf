package server

import (
	"fmt"
	"html"
	"strings"
)

// overlayTemplate is injected before </body> when an existing page is
// viewed with ?build. Placeholders: displayed path, pre-filled last
// prompt (both HTML-escaped), JS-escaped path for the generate call.
const overlayTemplate = `
<div id="build-overlay">
  <div class="overlay-card">
    <div class="overlay-path">%s</div>
    <form id="rebuild-form">
      <textarea id="rebuild-prompt" placeholder="Describe what to change...">%s</textarea>
      <div class="overlay-actions">
        <button type="button" class="btn-cancel" onclick="cancelOverlay()">Cancel</button>
        <button type="submit" class="btn-build" id="rebuild-btn">Build</button>
      </div>
      <div class="overlay-error" id="rebuild-error"></div>
      <div class="overlay-building" id="rebuild-building"><div class="spinner"></div><span>Building&hellip;</span></div>
    </form>
  </div>
</div>
<link rel="stylesheet" href="/static/shell.css">
<script>
function cancelOverlay() { window.location.href = window.location.pathname; }
document.addEventListener('keydown', (e) => { if (e.key === 'Escape') cancelOverlay(); });
document.getElementById('rebuild-form').addEventListener('submit', async (e) => {
  e.preventDefault();
  const prompt = document.getElementById('rebuild-prompt').value.trim();
  if (!prompt) return;
  const btn = document.getElementById('rebuild-btn');
  const building = document.getElementById('rebuild-building');
  const errorEl = document.getElementById('rebuild-error');
  btn.disabled = true;
  building.style.display = 'flex';
  errorEl.style.display = 'none';
  try {
    const response = await fetch('/api/generate', {
      method: 'POST',
      headers: {'Content-Type': 'application/json'},
      body: JSON.stringify({path: "%s", prompt: prompt})
    });
    if (!response.ok) throw new Error('generation failed: ' + response.statusText);
    const reader = response.body.getReader();
    const decoder = new TextDecoder();
    let doc = '';
    while (true) {
      const {done, value} = await reader.read();
      if (done) break;
      doc += decoder.decode(value, {stream: true});
    }
    doc += decoder.decode();
    document.open();
    document.write(doc);
    document.close();
    window.history.replaceState({}, '', window.location.pathname);
  } catch (err) {
    errorEl.textContent = err.message;
    errorEl.style.display = 'block';
    btn.disabled = false;
    building.style.display = 'none';
  }
});
</script>
`

// injectOverlay layers the rebuild affordance over an existing document.
// The fragment goes before the last </body> so the page's own markup is
// served byte-for-byte untouched otherwise.
func injectOverlay(doc, path, lastPrompt string) string {
	overlay := fmt.Sprintf(overlayTemplate,
		html.EscapeString(path),
		html.EscapeString(lastPrompt),
		jsEscape(path),
	)
	if idx := strings.LastIndex(strings.ToLower(doc), "</body>"); idx >= 0 {
		return doc[:idx] + overlay + doc[idx:]
	}
	return doc + overlay
}

func jsEscape(s string) string {
	r := strings.NewReplacer(
		`\`, `\\`,
		`"`, `\"`,
		"'", `\'`,
		"\n", `\n`,
	)
	return r.Replace(s)
}
