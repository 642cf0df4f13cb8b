package main

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"time"

	"github.com/icholy/digest"
	"github.com/julienschmidt/httprouter"
)

const editorRealm = "Turq editor"

// fakeEditorServer behaves like the mock server's rules editor endpoint.
type fakeEditorServer struct {
	*httptest.Server
	mu       sync.Mutex
	received map[string][]string
	password string
	nonces   int
	nonce    string
	attempts int
}

func newFakeEditorServer() *fakeEditorServer {
	return newProtectedEditorServer("")
}

// newProtectedEditorServer guards the editor with digest authentication and
// one-time nonces, as the mock server does when it has an editor password.
func newProtectedEditorServer(password string) *fakeEditorServer {
	s := &fakeEditorServer{password: password}
	s.rotateNonce()
	router := httprouter.New()
	router.GET("/editor", s.auth(s.getEditor))
	router.POST("/editor", s.auth(s.postEditor))
	router.POST("/saved", s.postPlain)
	router.POST("/json404", s.postJSONNotFound)
	router.POST("/slow", s.postSlow)
	s.Server = httptest.NewServer(router)
	return s
}

func (s *fakeEditorServer) form() map[string][]string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.received
}

func (s *fakeEditorServer) requests() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.attempts
}

func (s *fakeEditorServer) rotateNonce() {
	s.nonces++
	s.nonce = fmt.Sprintf("nonce-%d", s.nonces)
}

func (s *fakeEditorServer) auth(h httprouter.Handle) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
		s.mu.Lock()
		s.attempts++
		if s.password == "" {
			s.mu.Unlock()
			h(w, r, ps)
			return
		}
		passwordOK := false
		if cred, err := digest.ParseCredentials(r.Header.Get("Authorization")); err == nil {
			expected, err := digest.Digest(&digest.Challenge{Realm: editorRealm, Nonce: cred.Nonce, QOP: []string{"auth"}}, digest.Options{
				Method:   r.Method,
				URI:      cred.URI,
				Count:    cred.Nc,
				Cnonce:   cred.Cnonce,
				Username: cred.Username,
				Password: s.password,
			})
			passwordOK = err == nil && cred.Realm == editorRealm && expected.Response == cred.Response
			if passwordOK && cred.Nonce == s.nonce {
				s.rotateNonce()
				s.mu.Unlock()
				h(w, r, ps)
				return
			}
		}
		w.Header().Set("WWW-Authenticate", fmt.Sprintf(`Digest realm="%s", qop="auth", charset=UTF-8, nonce="%s", stale=%t`, editorRealm, s.nonce, passwordOK))
		s.mu.Unlock()
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte("401 Unauthorized"))
	}
}

func (s *fakeEditorServer) record(r *http.Request) bool {
	if err := r.ParseMultipartForm(1 << 20); err != nil {
		return false
	}
	s.mu.Lock()
	s.received = r.MultipartForm.Value
	s.mu.Unlock()
	return true
}

func (s *fakeEditorServer) getEditor(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write([]byte("<form method=\"post\"><textarea name=\"rules\"></textarea></form>"))
}

func (s *fakeEditorServer) postEditor(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	if !s.record(r) || len(r.MultipartForm.Value["rules"]) == 0 {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte("Bad form"))
		return
	}
	if strings.Count(r.FormValue("rules"), "(") != strings.Count(r.FormValue("rules"), ")") {
		w.WriteHeader(http.StatusUnprocessableEntity)
		w.Write([]byte("unexpected EOF while parsing (<rules>, line 1)"))
		return
	}
	w.Header().Set("Location", "/editor")
	w.WriteHeader(http.StatusSeeOther)
	w.Write([]byte("Rules installed successfully."))
}

func (s *fakeEditorServer) postPlain(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	s.record(r)
	w.Header().Set("Content-Type", "TEXT/PLAIN")
	w.Write([]byte("Saved."))
}

func (s *fakeEditorServer) postJSONNotFound(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusNotFound)
	w.Write([]byte(`{"msg":"nf"}`))
}

func (s *fakeEditorServer) postSlow(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	select {
	case <-r.Context().Done():
	case <-time.After(2 * time.Second):
	}
	w.Header().Set("Content-Type", "text/plain")
	w.Write([]byte("too late"))
}
