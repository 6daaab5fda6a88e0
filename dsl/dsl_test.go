package dsl

import (
	"errors"
	"reflect"
	"testing"

	"github.com/thisisjab/tably/fault"
	"gopkg.in/yaml.v3"
)

// Translate output is checked by re-reading it with the generic YAML
// unmarshaller, the way any downstream consumer would.
func decodeYAML(t *testing.T, doc []byte) map[string]any {
	t.Helper()

	var decoded map[string]any
	if err := yaml.Unmarshal(doc, &decoded); err != nil {
		t.Fatalf("output is not valid YAML: %v\n%s", err, doc)
	}
	return decoded
}

func TestTranslateSimpleTable(t *testing.T) {
	doc, err := Translate(`table([
		key = "value"
	])`)
	if err != nil {
		t.Fatalf("Translate: %v", err)
	}

	expected := map[string]any{"key": "value"}
	if got := decodeYAML(t, doc); !reflect.DeepEqual(got, expected) {
		t.Fatalf("Translate = %v, want %v", got, expected)
	}
}

func TestTranslateBooleansAndNumbers(t *testing.T) {
	doc, err := Translate(`
	count = 3;
	table([
		enabled = true,
		retries = ?{count},
		description = "Test run"
	])
	`)
	if err != nil {
		t.Fatalf("Translate: %v", err)
	}

	expected := map[string]any{
		"enabled":     true,
		"retries":     3,
		"description": "Test run",
	}
	if got := decodeYAML(t, doc); !reflect.DeepEqual(got, expected) {
		t.Fatalf("Translate = %v, want %v", got, expected)
	}
}

func TestTranslateNestedTables(t *testing.T) {
	doc, err := Translate(`
	table([
		database = table([
			host = "localhost",
			port = 5432
		]),
		service = table([
			url = "http://example.com",
			timeout = 10
		])
	])
	`)
	if err != nil {
		t.Fatalf("Translate: %v", err)
	}

	expected := map[string]any{
		"database": map[string]any{
			"host": "localhost",
			"port": 5432,
		},
		"service": map[string]any{
			"url":     "http://example.com",
			"timeout": 10,
		},
	}
	if got := decodeYAML(t, doc); !reflect.DeepEqual(got, expected) {
		t.Fatalf("Translate = %v, want %v", got, expected)
	}
}

func TestTranslateEmptyTable(t *testing.T) {
	doc, err := Translate("table([])")
	if err != nil {
		t.Fatalf("Translate: %v", err)
	}

	if string(doc) != "{}\n" {
		t.Fatalf("Translate = %q, want {}", doc)
	}
}

func TestTranslateKeyOrder(t *testing.T) {
	doc, err := Translate(`table([zebra = 1, alpha = 2, mid = 3])`)
	if err != nil {
		t.Fatalf("Translate: %v", err)
	}

	expected := "zebra: 1\nalpha: 2\nmid: 3\n"
	if string(doc) != expected {
		t.Fatalf("Translate = %q, want %q", doc, expected)
	}
}

func TestTranslateIgnoresComments(t *testing.T) {
	doc, err := Translate(`
	<# defaults tuned for the staging cluster,
	   see the deploy notes #>
	table([a = 1<# inline #>, b = 2])
	`)
	if err != nil {
		t.Fatalf("Translate: %v", err)
	}

	expected := "a: 1\nb: 2\n"
	if string(doc) != expected {
		t.Fatalf("Translate = %q, want %q", doc, expected)
	}
}

func TestTranslateErrorsAreFaults(t *testing.T) {
	tests := []struct {
		input string
		code  fault.Code
	}{
		{"table([a = $])", fault.LexErrorCode},
		{"table([a = 1", fault.ParseErrorCode},
		{"table([a = 1, a = 2])", fault.DuplicateKeyCode},
		{"table([x = ?{missing}])", fault.UndefinedConstantCode},
		{"n = 1; n = 2; table([])", fault.DuplicateConstantCode},
	}

	for i, tt := range tests {
		_, err := Translate(tt.input)
		if err == nil {
			t.Fatalf("#%d - Translate(%q) expected error, got none", i, tt.input)
		}

		var f fault.Fault
		if !errors.As(err, &f) {
			t.Fatalf("#%d - expected a fault, got %T", i, err)
		}
		if f.Code() != tt.code {
			t.Fatalf("#%d - expected code %s, got %s", i, tt.code, f.Code())
		}
	}
}
