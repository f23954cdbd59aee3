package chrome_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/donorkit/handler"
	"github.com/dmitrymomot/donorkit/pkg/chrome"
	"github.com/dmitrymomot/donorkit/pkg/eligibility"
	"github.com/dmitrymomot/donorkit/pkg/notifications"
	"github.com/dmitrymomot/donorkit/pkg/validator"
)

func newSSEChrome(t *testing.T, opts ...chrome.Option) (*chrome.SSEChrome, *httptest.ResponseRecorder) {
	t.Helper()
	r := httptest.NewRequest(http.MethodPost, "/", nil)
	r.Header.Set("Datastar-Request", "true")
	w := httptest.NewRecorder()
	stream, err := handler.NewStreamContext(handler.NewContext(w, r))
	require.NoError(t, err)
	opts = append([]chrome.Option{chrome.WithIDGenerator(func() string { return "id1" })}, opts...)
	return chrome.NewSSEChrome(stream, opts...), w
}

func TestSSEChrome_ShowResult(t *testing.T) {
	t.Parallel()

	c, w := newSSEChrome(t, chrome.WithLocalizer(func(key, fallback string, _ map[string]any) string {
		if key == "validation.email" {
			return "Introduce un correo válido"
		}
		return fallback
	}))

	res := validator.Validate(validator.FieldSpec{Name: "email", Kind: validator.KindEmail, Value: "nope"}, time.Now())
	require.NoError(t, c.ShowResult(context.Background(), "email", res))

	body := w.Body.String()
	assert.Contains(t, body, "datastar-patch-elements")
	assert.Contains(t, body, `id="email-feedback"`)
	assert.Contains(t, body, "Introduce un correo válido")
}

func TestSSEChrome_ShowEligibilityBanner(t *testing.T) {
	t.Parallel()

	t.Run("eligible shows age only", func(t *testing.T) {
		t.Parallel()
		c, w := newSSEChrome(t)
		require.NoError(t, c.ShowEligibilityBanner(context.Background(), eligibility.Result{Age: 24, Eligible: true, Reason: eligibility.ReasonEligible}))

		body := w.Body.String()
		assert.Contains(t, body, "24 years")
		assert.Contains(t, body, "Eligible to donate")
		assert.NotContains(t, body, "eligibility-alert")
	})

	t.Run("too young adds self dismissing banner", func(t *testing.T) {
		t.Parallel()
		c, w := newSSEChrome(t)
		require.NoError(t, c.ShowEligibilityBanner(context.Background(), eligibility.Result{Age: 14, Reason: eligibility.ReasonTooYoung}))

		body := w.Body.String()
		assert.Contains(t, body, "Not eligible (must be 18-65 years)")
		assert.Contains(t, body, "selector #banner-container")
		assert.Contains(t, body, "Age 14: Too young to donate. Minimum age is 18 years.")
		assert.Contains(t, body, `getElementById("banner-id1")`)
		assert.Contains(t, body, "},5000)")
	})

	t.Run("custom window", func(t *testing.T) {
		t.Parallel()
		c, w := newSSEChrome(t, chrome.WithWindow(eligibility.Window{Min: 17, Max: 70}))
		require.NoError(t, c.ShowEligibilityBanner(context.Background(), eligibility.Result{Age: 71, Reason: eligibility.ReasonTooOld}))
		assert.Contains(t, w.Body.String(), "Maximum age is 70 years.")
	})
}

func TestSSEChrome_Actions(t *testing.T) {
	t.Parallel()

	c, w := newSSEChrome(t, chrome.WithStyles(chrome.NewStyles()))
	ctx := context.Background()

	require.NoError(t, c.EnsureStyles(ctx))
	require.NoError(t, c.TriggerDownload(ctx, "Name,Age\n", "text/csv;charset=utf-8;", "donors_2024-06-01.csv"))
	require.NoError(t, c.WriteClipboard(ctx, "a\tb\n"))
	require.NoError(t, chrome.CopyText(ctx, c, "x"))
	require.NoError(t, c.OpenPrintView(ctx, "<html></html>"))

	n := notifications.New(notifications.TypeSuccess, "Download Successful", "CSV file downloaded successfully!", notifications.ToastTTL, time.Now())
	n.ID = "n1"
	require.NoError(t, c.Deliver(ctx, n))

	body := w.Body.String()
	assert.Contains(t, body, chrome.StyleElementID)
	assert.Contains(t, body, "URL.createObjectURL")
	assert.Contains(t, body, `"donors_2024-06-01.csv"`)
	assert.Contains(t, body, "navigator.clipboard.writeText")
	assert.Contains(t, body, "window.open")
	assert.Contains(t, body, "selector #toast-container")
	assert.Contains(t, body, "mode prepend")
	assert.Contains(t, body, `getElementById("toast-n1")`)
	assert.Contains(t, body, "},3000)")
}

func TestRecorder(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	rec := &chrome.Recorder{}
	require.NoError(t, rec.ShowResult(ctx, "phone", validator.ValidResult()))
	require.NoError(t, rec.TriggerDownload(ctx, "a,b", "text/csv", "x.csv"))
	require.NoError(t, chrome.CopyText(ctx, rec, "t"))

	events := rec.Events()
	require.Len(t, events, 3)
	assert.Equal(t, chrome.EventResult, events[0].Kind)
	assert.Equal(t, "phone", events[0].FieldID)
	last, ok := rec.Last(chrome.EventDownload)
	require.True(t, ok)
	assert.Equal(t, "x.csv", last.Filename)
	assert.Equal(t, chrome.EventClipboard, events[2].Kind)

	rec.Reset()
	rec.ClipboardUnavailable = true
	assert.ErrorIs(t, rec.WriteClipboard(ctx, "t"), chrome.ErrClipboardUnavailable)
	require.NoError(t, chrome.CopyText(ctx, rec, "fallback"))
	last, ok = rec.Last(chrome.EventSelectionCopy)
	require.True(t, ok)
	assert.Equal(t, "fallback", last.Text)
	_, ok = rec.Last(chrome.EventClipboard)
	assert.False(t, ok)
}

func TestStyles(t *testing.T) {
	t.Parallel()

	s := chrome.NewStyles(chrome.StyleBlock{Name: "custom", CSS: ".donor-row{color:red}"})
	assert.False(t, s.Register("custom", ".other{}"), "names register once")
	assert.True(t, s.Register("extra", ".extra{}"))

	css := s.CSS()
	assert.Contains(t, css, ".notification{")
	assert.Contains(t, css, ".donor-row{color:red}")
	assert.Contains(t, css, ".extra{}")
	assert.NotContains(t, css, ".other{}")

	assert.False(t, s.Register("late", ".late{}"), "sheet is frozen after first use")
	assert.Equal(t, css, s.CSS())

	script := s.InjectScript()
	assert.Contains(t, script, `getElementById("donorkit-chrome-styles")`)
	assert.Equal(t, 1, strings.Count(script, "document.head.appendChild"))
}

func TestScripts(t *testing.T) {
	t.Parallel()

	script := chrome.DownloadScript("</script><b>", "text/html", "a.xls")
	assert.NotContains(t, script, "</script>")
	assert.Contains(t, script, `\u003c/script\u003e`)

	assert.Equal(t,
		`setTimeout(()=>{const e=document.getElementById("x");if(e)e.remove();},5000)`,
		chrome.RemoveAfterScript("x", 5*time.Second),
	)
	assert.Contains(t, chrome.ClipboardScript("hi"), "execCommand('copy')")
	assert.Contains(t, chrome.SelectionCopyScript("hi"), `t.value="hi"`)
}
