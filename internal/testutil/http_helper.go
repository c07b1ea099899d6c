// Package testutil provides utility functions for testing HTTP handlers.
package testutil

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"

	"github.com/gin-gonic/gin"
)

// SessionCookie is the name of the session cookie set at login
const SessionCookie = "session"

func serve(req *http.Request, authToken string, r *gin.Engine) (*httptest.ResponseRecorder, map[string]interface{}) {
	req.Header.Set("Accept", "application/json")
	if authToken != "" {
		req.AddCookie(&http.Cookie{Name: SessionCookie, Value: authToken})
	}

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	resp := map[string]interface{}{}
	_ = json.Unmarshal(rec.Body.Bytes(), &resp)

	return rec, resp
}

// MakeJSONRequest is a helper function for making JSON requests in tests.
// A non-empty authToken is sent as the session cookie.
func MakeJSONRequest(body gin.H, authToken string, r *gin.Engine, endpoint string, method string) (*httptest.ResponseRecorder, map[string]interface{}) {
	var reader io.Reader = http.NoBody
	if body != nil {
		payload, _ := json.Marshal(body)
		reader = bytes.NewReader(payload)
	}

	req, _ := http.NewRequest(method, endpoint, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return serve(req, authToken, r)
}

// MakeFormRequest submits form as application/x-www-form-urlencoded, the way browsers post pages.
func MakeFormRequest(form url.Values, authToken string, r *gin.Engine, endpoint string, method string) (*httptest.ResponseRecorder, map[string]interface{}) {
	req, _ := http.NewRequest(method, endpoint, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return serve(req, authToken, r)
}

// MakeMultipartRequest posts fields plus one file part named fileField.
// The file part is omitted when filename is empty.
func MakeMultipartRequest(fields map[string]string, fileField, filename string, content []byte, authToken string, r *gin.Engine, endpoint string) (*httptest.ResponseRecorder, map[string]interface{}) {
	body := &bytes.Buffer{}
	w := multipart.NewWriter(body)
	for k, v := range fields {
		_ = w.WriteField(k, v)
	}
	if filename != "" {
		part, _ := w.CreateFormFile(fileField, filename)
		_, _ = part.Write(content)
	}
	_ = w.Close()

	req, _ := http.NewRequest(http.MethodPost, endpoint, body)
	req.Header.Set("Content-Type", w.FormDataContentType())
	return serve(req, authToken, r)
}

// FlashMessages returns the notice texts of a JSON page or redirect body.
func FlashMessages(resp map[string]interface{}) []string {
	var out []string
	list, _ := resp["flashes"].([]interface{})
	for _, f := range list {
		if m, ok := f.(map[string]interface{}); ok {
			out = append(out, fmt.Sprint(m["message"]))
		}
	}
	return out
}

// MinimalPDF returns a valid single-page PDF document.
func MinimalPDF() []byte {
	var b bytes.Buffer
	b.WriteString("%PDF-1.4\n")
	objs := []string{
		"<< /Type /Catalog /Pages 2 0 R >>",
		"<< /Type /Pages /Kids [3 0 R] /Count 1 >>",
		"<< /Type /Page /Parent 2 0 R /MediaBox [0 0 612 792] >>",
	}
	offsets := make([]int, len(objs))
	for i, o := range objs {
		offsets[i] = b.Len()
		fmt.Fprintf(&b, "%d 0 obj\n%s\nendobj\n", i+1, o)
	}
	xref := b.Len()
	fmt.Fprintf(&b, "xref\n0 %d\n", len(objs)+1)
	b.WriteString("0000000000 65535 f \n")
	for _, off := range offsets {
		fmt.Fprintf(&b, "%010d 00000 n \n", off)
	}
	fmt.Fprintf(&b, "trailer\n<< /Size %d /Root 1 0 R >>\nstartxref\n%d\n%%%%EOF\n", len(objs)+1, xref)
	return b.Bytes()
}
