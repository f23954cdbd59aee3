package binder_test

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/donorkit/pkg/binder"
)

type fieldRequest struct {
	Field    string   `form:"field" json:"field" query:"field"`
	Kind     string   `form:"kind" json:"kind"`
	Value    string   `form:"value" json:"value"`
	Required bool     `form:"required" json:"required"`
	Page     int      `query:"page"`
	Tags     []string `form:"tags"`
	Note     *string  `form:"note"`
	Skip     string   `form:"-"`
}

func TestForm(t *testing.T) {
	t.Parallel()

	t.Run("urlencoded", func(t *testing.T) {
		t.Parallel()
		body := url.Values{
			"field":    {"email"},
			"kind":     {"email"},
			"value":    {"a@b.co"},
			"required": {"on"},
			"tags":     {"x", "y,z"},
			"note":     {"hi"},
			"-":        {"ignored"},
		}
		r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body.Encode()))
		r.Header.Set("Content-Type", "application/x-www-form-urlencoded")

		var req fieldRequest
		require.NoError(t, binder.Form()(r, &req))
		assert.Equal(t, "email", req.Field)
		assert.Equal(t, "a@b.co", req.Value)
		assert.True(t, req.Required)
		assert.Equal(t, []string{"x", "y,z"}, req.Tags)
		require.NotNil(t, req.Note)
		assert.Equal(t, "hi", *req.Note)
		assert.Empty(t, req.Skip)
	})

	t.Run("multipart", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		mw := multipart.NewWriter(&buf)
		require.NoError(t, mw.WriteField("field", "phone"))
		require.NoError(t, mw.WriteField("value", "5551234567"))
		require.NoError(t, mw.Close())

		r := httptest.NewRequest(http.MethodPost, "/", &buf)
		r.Header.Set("Content-Type", mw.FormDataContentType())

		var req fieldRequest
		require.NoError(t, binder.Form()(r, &req))
		assert.Equal(t, "phone", req.Field)
		assert.Equal(t, "5551234567", req.Value)
	})

	t.Run("not applicable", func(t *testing.T) {
		t.Parallel()
		r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{}`))
		r.Header.Set("Content-Type", "application/json")

		var req fieldRequest
		assert.ErrorIs(t, binder.Form()(r, &req), binder.ErrBinderNotApplicable)
	})

	t.Run("invalid bool", func(t *testing.T) {
		t.Parallel()
		r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader("required=maybe"))
		r.Header.Set("Content-Type", "application/x-www-form-urlencoded")

		var req fieldRequest
		assert.ErrorIs(t, binder.Form()(r, &req), binder.ErrInvalidForm)
	})

	t.Run("non pointer target", func(t *testing.T) {
		t.Parallel()
		r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader("field=x"))
		r.Header.Set("Content-Type", "application/x-www-form-urlencoded")

		err := binder.Form()(r, fieldRequest{})
		assert.ErrorIs(t, err, binder.ErrInvalidTarget)
	})
}

func TestQuery(t *testing.T) {
	t.Parallel()

	r := httptest.NewRequest(http.MethodGet, "/?field=dob&page=3", nil)
	var req fieldRequest
	require.NoError(t, binder.Query()(r, &req))
	assert.Equal(t, "dob", req.Field)
	assert.Equal(t, 3, req.Page)

	r = httptest.NewRequest(http.MethodGet, "/?page=abc", nil)
	assert.ErrorIs(t, binder.Query()(r, &req), binder.ErrInvalidQuery)
}

func TestJSON(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		body      string
		ct        string
		datastar  bool
		wantErr   error
		wantField string
	}{
		{name: "valid", body: `{"field":"email","value":"x"}`, ct: "application/json", wantField: "email"},
		{name: "with charset", body: `{"field":"dob"}`, ct: "application/json; charset=utf-8", wantField: "dob"},
		{name: "malformed", body: `{"field":`, ct: "application/json", wantErr: binder.ErrInvalidJSON},
		{name: "empty", body: ``, ct: "application/json", wantErr: binder.ErrInvalidJSON},
		{name: "form content", body: `field=x`, ct: "application/x-www-form-urlencoded", wantErr: binder.ErrBinderNotApplicable},
		{name: "datastar request", body: `{"field":"x"}`, ct: "application/json", datastar: true, wantErr: binder.ErrBinderNotApplicable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(tt.body))
			r.Header.Set("Content-Type", tt.ct)
			if tt.datastar {
				r.Header.Set("Datastar-Request", "true")
			}

			var req fieldRequest
			err := binder.JSON()(r, &req)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantField, req.Field)
		})
	}
}

func TestSignals(t *testing.T) {
	t.Parallel()

	t.Run("post body", func(t *testing.T) {
		t.Parallel()
		r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"field":"phone","value":"555"}`))
		r.Header.Set("Content-Type", "application/json")
		r.Header.Set("Datastar-Request", "true")

		var req fieldRequest
		require.NoError(t, binder.Signals()(r, &req))
		assert.Equal(t, "phone", req.Field)
		assert.Equal(t, "555", req.Value)
	})

	t.Run("get query", func(t *testing.T) {
		t.Parallel()
		q := url.Values{"datastar": {`{"field":"dob"}`}}
		r := httptest.NewRequest(http.MethodGet, "/?"+q.Encode(), nil)
		r.Header.Set("Datastar-Request", "true")

		var req fieldRequest
		require.NoError(t, binder.Signals()(r, &req))
		assert.Equal(t, "dob", req.Field)
	})

	t.Run("plain request", func(t *testing.T) {
		t.Parallel()
		r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{}`))
		var req fieldRequest
		assert.ErrorIs(t, binder.Signals()(r, &req), binder.ErrBinderNotApplicable)
	})
}
