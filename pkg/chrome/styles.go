package chrome

import (
	"context"
	"io"
	"strings"
	"sync"

	"github.com/a-h/templ"
)

// Styles collects the CSS blocks the chrome components rely on. Blocks are
// registered once by name; the sheet is frozen on first render so every
// page receives the same stylesheet.
type Styles struct {
	mu     sync.Mutex
	names  map[string]bool
	blocks []string

	once  sync.Once
	sheet string
}

// NewStyles creates a registry holding the built-in chrome styles followed
// by blocks, which are keyed by name.
func NewStyles(blocks ...StyleBlock) *Styles {
	s := &Styles{names: map[string]bool{}}
	for _, b := range defaultBlocks {
		s.Register(b.Name, b.CSS)
	}
	for _, b := range blocks {
		s.Register(b.Name, b.CSS)
	}
	return s
}

// StyleBlock is a named piece of CSS.
type StyleBlock struct {
	Name string
	CSS  string
}

// Register adds css under name. It reports false when name is already
// registered or the sheet has been rendered.
func (s *Styles) Register(name, css string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.names[name] || s.frozen() {
		return false
	}
	s.names[name] = true
	s.blocks = append(s.blocks, strings.TrimSpace(css))
	return true
}

func (s *Styles) frozen() bool {
	return s.sheet != ""
}

// CSS returns the combined stylesheet.
func (s *Styles) CSS() string {
	s.once.Do(func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		s.sheet = strings.Join(s.blocks, "\n")
	})
	return s.sheet
}

// Component renders the stylesheet as a <style> element for page layouts.
func (s *Styles) Component() templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		_, err := io.WriteString(w, `<style id="`+StyleElementID+`">`+s.CSS()+`</style>`)
		return err
	})
}

// InjectScript returns a script that appends the stylesheet to <head>
// unless the page already carries it.
func (s *Styles) InjectScript() string {
	return "(()=>{if(document.getElementById(" + jsString(StyleElementID) + "))return;" +
		"const s=document.createElement('style');s.id=" + jsString(StyleElementID) + ";" +
		"s.textContent=" + jsString(s.CSS()) + ";document.head.appendChild(s);})()"
}

var defaultBlocks = []StyleBlock{
	{Name: "notifications", CSS: `
.notification-container{position:fixed;top:1rem;right:1rem;z-index:50;display:flex;flex-direction:column;gap:.5rem}
.notification{background:#fff;padding:1rem 1.5rem;border-radius:8px;box-shadow:0 4px 12px rgba(0,0,0,.15);display:flex;align-items:center;gap:.75rem;animation:slideIn .3s ease;min-width:300px;border-left:4px solid #2979ff}
.notification-success{border-left-color:#00c853}
.notification-error{border-left-color:#ff1744}
.notification-warning{border-left-color:#ff9100}
.notification-title{font-weight:600}
.notification-close{margin-left:auto;background:none;border:none;color:#666;cursor:pointer;padding:.25rem}
@keyframes slideIn{from{opacity:0;transform:translateX(100%)}to{opacity:1;transform:translateX(0)}}
@keyframes slideOutRight{from{transform:translateX(0);opacity:1}to{transform:translateX(100%);opacity:0}}`},
	{Name: "feedback", CSS: `
.error-message{color:#e53935;font-size:.85rem;margin-top:5px;display:flex;align-items:center;gap:5px}
.success-message{color:#68d391;font-size:.85rem;margin-top:5px;display:flex;align-items:center;gap:5px}
.search-highlight{animation:highlight 1s ease}
@keyframes highlight{0%{background-color:rgba(229,57,53,.2)}100%{background-color:transparent}}
@keyframes shake{0%,100%{transform:translateX(0)}10%,30%,50%,70%,90%{transform:translateX(-5px)}20%,40%,60%,80%{transform:translateX(5px)}}`},
	{Name: "eligibility", CSS: `
.age-display{margin-top:10px;padding:10px;border-radius:8px;font-weight:600;transition:all .3s ease;display:flex;align-items:center;gap:10px}
.age-display-eligible{background:rgba(104,211,145,.1);border:2px solid #68d391}
.age-display-eligible small{color:#2e7d32;font-weight:500}
.age-display-ineligible{background:rgba(229,57,53,.1);border:2px solid #e53935}
.age-display-ineligible small{color:#e53935;font-weight:600}
.eligibility-alert{position:fixed;top:20px;left:50%;transform:translateX(-50%);background:linear-gradient(135deg,#e53935,#ff5252);color:#fff;padding:15px 25px;border-radius:10px;box-shadow:0 10px 25px rgba(229,57,53,.3);z-index:1000;display:flex;align-items:center;gap:15px;animation:slideInDown .5s ease}
.eligibility-alert-close{margin-left:auto;background:none;border:none;color:#fff;cursor:pointer}
@keyframes slideInDown{from{transform:translate(-50%,-100%);opacity:0}to{transform:translate(-50%,0);opacity:1}}
@keyframes slideOutUp{from{transform:translate(-50%,0);opacity:1}to{transform:translate(-50%,-100%);opacity:0}}`},
	{Name: "donation", CSS: `
.donation-info{background:rgba(33,150,243,.1);border-left:4px solid #2196f3;padding:15px;margin-top:15px;border-radius:8px;font-size:.9rem;color:#1565c0}
.donation-info ul{margin:10px 0 0 20px}
.modal-overlay{position:fixed;inset:0;background:rgba(0,0,0,.5);display:flex;align-items:center;justify-content:center;z-index:900}
.modal{background:#fff;border-radius:10px;padding:1.5rem;min-width:320px}
.download-spinner{display:inline-block;width:16px;height:16px;border:2px solid rgba(255,255,255,.3);border-top-color:#fff;border-radius:50%;animation:spin 1s linear infinite}
@keyframes spin{to{transform:rotate(360deg)}}`},
}
