package templates

import (
	"bytes"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestExecute(t *testing.T) {
	for _, name := range []string{"tilerect.yaml.tmpl", "suite.yaml.tmpl"} {
		t.Run(name, func(t *testing.T) {
			var buf bytes.Buffer
			if err := Execute(&buf, name, Project{Name: "demo"}); err != nil {
				t.Fatalf("Execute() error = %v", err)
			}
			var doc map[string]any
			if err := yaml.Unmarshal(buf.Bytes(), &doc); err != nil {
				t.Fatalf("rendered %s is not valid yaml: %v", name, err)
			}
		})
	}
}

func TestGetMissing(t *testing.T) {
	_, err := Get("nope.tmpl")
	if err == nil || !strings.Contains(err.Error(), "not found") {
		t.Errorf("Get() error = %v, want not found", err)
	}
}
