package docs_test

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/swaggo/swag"

	_ "listkeeper/docs"
)

func TestRegisteredDoc(t *testing.T) {
	t.Run("Renders Valid Swagger JSON", func(t *testing.T) {
		raw, err := swag.ReadDoc()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		var doc map[string]interface{}
		if err := json.Unmarshal([]byte(raw), &doc); err != nil {
			t.Fatalf("doc is not valid JSON: %v", err)
		}
		if doc["swagger"] != "2.0" {
			t.Errorf("expected swagger 2.0, got %v", doc["swagger"])
		}
		if !strings.Contains(raw, `"/api/v1/lists"`) {
			t.Error("expected the lists route in the rendered doc")
		}
	})
}
