package schemavalidation

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	"github.com/santhosh-tekuri/jsonschema/v5"

	"rhythmd/internal/rhythm"
)

func TestFixtureMatchesSchema(t *testing.T) {
	root := repoRoot(t)
	validateInstanceFile(t,
		filepath.Join(root, "docs", "schema", "typing-profile-v1.schema.json"),
		filepath.Join(root, "docs", "spec", "fixtures", "typing-profile-v1.json"),
	)
}

// A profile produced by the analyzer itself must conform to the published
// schema, including the empty-session shape.
func TestAnalyzerOutputMatchesSchema(t *testing.T) {
	root := repoRoot(t)
	schemaPath := filepath.Join(root, "docs", "schema", "typing-profile-v1.schema.json")

	start := time.Unix(1700000000, 0)
	var events []rhythm.TypingEvent
	text := "Hello there. How are you?"
	for i, r := range text {
		events = append(events, rhythm.TypingEvent{
			Type:      rhythm.EventTypeChar,
			Char:      string(r),
			Timestamp: start.Add(time.Duration(i) * 400 * time.Millisecond),
		})
	}
	events = append(events, rhythm.TypingEvent{
		Type:      rhythm.EventBackspace,
		Timestamp: start.Add(15 * time.Second),
	})

	profiles := map[string]*rhythm.Profile{
		"typed session": rhythm.Analyze(events, start, start.Add(16*time.Second), text, rhythm.DefaultThresholds()),
		"empty session": rhythm.EmptyProfile(),
	}

	for name, p := range profiles {
		t.Run(name, func(t *testing.T) {
			data, err := json.Marshal(p)
			if err != nil {
				t.Fatalf("marshal profile: %v", err)
			}
			validateInstanceData(t, schemaPath, data)
		})
	}
}

func validateInstanceFile(t *testing.T, schemaPath, instancePath string) {
	t.Helper()
	instanceData, err := os.ReadFile(instancePath)
	if err != nil {
		t.Fatalf("read instance: %v", err)
	}
	validateInstanceData(t, schemaPath, instanceData)
}

func validateInstanceData(t *testing.T, schemaPath string, instanceData []byte) {
	t.Helper()

	schemaData, err := os.ReadFile(schemaPath)
	if err != nil {
		t.Fatalf("read schema: %v", err)
	}

	var instance any
	if err := json.Unmarshal(instanceData, &instance); err != nil {
		t.Fatalf("unmarshal instance: %v", err)
	}

	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource(schemaPath, bytes.NewReader(schemaData)); err != nil {
		t.Fatalf("add schema resource: %v", err)
	}
	schema, err := compiler.Compile(schemaPath)
	if err != nil {
		t.Fatalf("compile schema: %v", err)
	}

	if err := schema.Validate(instance); err != nil {
		t.Fatalf("schema validation failed: %v", err)
	}
}

func repoRoot(t *testing.T) string {
	t.Helper()
	_, file, _, ok := runtime.Caller(0)
	if !ok {
		t.Fatal("unable to resolve caller path")
	}
	return filepath.Clean(filepath.Join(filepath.Dir(file), "..", ".."))
}
