package main

import (
	"flag"
	"fmt"
	"net/url"
	"os"
	"strings"
)

const (
	defaultEditorURL  = "http://localhost:13086/editor"
	defaultMethod     = "POST"
	defaultFieldName  = "rules"
	defaultRules      = "error(404)\n"
	defaultStyle      = "monokai"
	defaultUsername   = "rulesedit"
	submitTimeoutMs   = 5000
	dismissDelayMs    = 1000
	editorIndentWidth = 4
)

// Config describes the editor client configuration.
type Config struct {
	EditorURL string
	Method    string
	FieldName string
	Rules     string
	LogFile   string
	Style     string
	Username  string
	Password  string
}

// CreateConfig creates client configuration based on application command line arguments
func CreateConfig(args []string) (*Config, error) {
	return parseConfig(os.Args[0], args)
}

func parseConfig(name string, args []string) (*Config, error) {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	var editorURL = fs.String("url", defaultEditorURL, "Rules editor endpoint of the mock server")
	var method = fs.String("method", defaultMethod, "HTTP method used to submit the rules")
	var fieldName = fs.String("field", defaultFieldName, "Form field carrying the rules code")
	var rulesFile = fs.String("r", "", "File with initial rules code")
	var logFile = fs.String("log", "", "Debug log file, logging is disabled if not provided")
	var style = fs.String("style", defaultStyle, "Syntax highlighting style for example snippets")
	var username = fs.String("user", defaultUsername, "Editor username, any name is accepted by the mock server")
	var password = fs.String("password", "", "Editor password, digest authentication is disabled if not provided")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	u, err := url.Parse(*editorURL)
	if err != nil {
		return nil, fmt.Errorf("invalid editor url %q: %w", *editorURL, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" || u.Host == "" {
		return nil, fmt.Errorf("invalid editor url %q: expected http(s)://host[:port]/path", *editorURL)
	}

	if len(strings.TrimSpace(*fieldName)) == 0 {
		return nil, fmt.Errorf("form field name must not be empty")
	}

	rules := defaultRules
	if len(*rulesFile) > 0 {
		data, err := os.ReadFile(*rulesFile)
		if err != nil {
			return nil, fmt.Errorf("failed to read rules: %w", err)
		}
		rules = string(data)
	}

	return &Config{
		EditorURL: u.String(),
		Method:    strings.ToUpper(*method),
		FieldName: *fieldName,
		Rules:     rules,
		LogFile:   *logFile,
		Style:     *style,
		Username:  *username,
		Password:  *password,
	}, nil
}
