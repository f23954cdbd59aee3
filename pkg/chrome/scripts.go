package chrome

import (
	"encoding/json"
	"strconv"
	"time"
)

// jsString encodes s as a JavaScript string literal. encoding/json escapes
// <, > and & so the literal is safe inside a <script> element.
func jsString(s string) string {
	b, err := json.Marshal(s)
	if err != nil {
		return `""`
	}
	return string(b)
}

// DownloadScript saves text as filename through a temporary object URL.
func DownloadScript(text, mimeType, filename string) string {
	return "(()=>{const b=new Blob([" + jsString(text) + "],{type:" + jsString(mimeType) + "});" +
		"const a=document.createElement('a');a.href=URL.createObjectURL(b);a.download=" + jsString(filename) + ";" +
		"a.style.display='none';document.body.appendChild(a);a.click();" +
		"setTimeout(()=>{URL.revokeObjectURL(a.href);a.remove();},0);})()"
}

// SelectionCopyScript copies text by selecting a hidden textarea. It works
// where the asynchronous clipboard API is missing or denied.
func SelectionCopyScript(text string) string {
	return "(()=>{const t=document.createElement('textarea');t.value=" + jsString(text) + ";" +
		"t.style.position='fixed';t.style.opacity='0';document.body.appendChild(t);" +
		"t.select();document.execCommand('copy');t.remove();})()"
}

// ClipboardScript copies text with navigator.clipboard and falls back to a
// selection copy when the API is unavailable or rejects.
func ClipboardScript(text string) string {
	fallback := "()=>" + SelectionCopyScript(text)
	return "(()=>{const f=" + fallback + ";" +
		"if(!navigator.clipboard||!window.isSecureContext){f();return;}" +
		"navigator.clipboard.writeText(" + jsString(text) + ").catch(f);})()"
}

// RemoveAfterScript removes the element with id once ttl has elapsed.
func RemoveAfterScript(id string, ttl time.Duration) string {
	return "setTimeout(()=>{const e=document.getElementById(" + jsString(id) + ");if(e)e.remove();}," +
		strconv.FormatInt(ttl.Milliseconds(), 10) + ")"
}

// PrintScript opens html in a new window which prints itself on load.
func PrintScript(html string) string {
	return "(()=>{const w=window.open('','_blank');if(!w)return;w.document.open();w.document.write(" +
		jsString(html) + ");w.document.close();})()"
}
