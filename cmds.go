package main

import (
	"bytes"
	"fmt"
	"io"
	"log"
	"net/http"
	"strconv"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/icholy/digest"
)

const connectionErrorText = "Connection error"

// outcome is what a finished submission reports: either a response or a
// transport failure, never both.
type outcome struct {
	statusCode  int
	reason      string
	contentType string
	body        string
	err         error
}

type submitResultMsg struct {
	seq int
	outcome
}

func submit(client *http.Client, seq int, snapshot formSnapshot, method, action string) tea.Cmd {
	return func() tea.Msg {
		return submitResultMsg{seq: seq, outcome: doSubmit(client, snapshot, method, action)}
	}
}

// newSubmitClient answers the editor's digest challenges at the transport
// level when a password is set.
func newSubmitClient(username, password string) *http.Client {
	c := &http.Client{Timeout: submitTimeoutMs * time.Millisecond}
	if len(password) > 0 {
		c.Transport = &digest.Transport{
			Username: username,
			Password: password,
		}
	}
	return c
}

func doSubmit(client *http.Client, snapshot formSnapshot, method, action string) outcome {
	body, contentType, err := snapshot.encode()
	if err != nil {
		return outcome{err: err}
	}

	req, err := http.NewRequest(method, action, bytes.NewReader(body))
	if err != nil {
		return outcome{err: fmt.Errorf("failed to create request: %w", err)}
	}
	req.Header.Set("Content-Type", contentType)

	res, err := client.Do(req)
	if err != nil {
		log.Printf("[error] %s %s: %v", method, action, err)
		return outcome{err: err}
	}
	defer res.Body.Close()

	data, err := io.ReadAll(res.Body)
	if err != nil {
		log.Printf("[error] reading response of %s %s: %v", method, action, err)
		return outcome{err: err}
	}
	log.Printf("[info] %s %s: %s", method, action, res.Status)

	return outcome{
		statusCode:  res.StatusCode,
		reason:      reasonPhrase(res),
		contentType: res.Header.Get("Content-Type"),
		body:        string(data),
	}
}

func reasonPhrase(res *http.Response) string {
	reason := strings.TrimSpace(strings.TrimPrefix(res.Status, strconv.Itoa(res.StatusCode)))
	if reason == "" {
		reason = http.StatusText(res.StatusCode)
	}
	return reason
}

// message picks the notification text and severity for a finished submission.
func (o outcome) message() (string, bool) {
	if o.err != nil || o.statusCode == 0 {
		return connectionErrorText, true
	}

	isError := o.statusCode >= http.StatusBadRequest
	if strings.HasPrefix(strings.ToLower(o.contentType), "text/plain") {
		return o.body, isError
	}
	return o.reason, isError
}
