package docs

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/swaggo/swag"
)

func TestSwaggerDocRegistered(t *testing.T) {
	doc, err := swag.ReadDoc(SwaggerInfo.InstanceName())
	if err != nil {
		t.Fatalf("ReadDoc: %v", err)
	}

	var spec map[string]any
	if err := json.Unmarshal([]byte(doc), &spec); err != nil {
		t.Fatalf("rendered doc is not valid JSON: %v", err)
	}
	if spec["basePath"] != "/api/v1" {
		t.Errorf("basePath = %v, want /api/v1", spec["basePath"])
	}
	for _, route := range []string{"/courses/{course_id}/enroll", "/submissions/{submission_id}/grade", "/products/search"} {
		if !strings.Contains(doc, route) {
			t.Errorf("doc is missing route %s", route)
		}
	}
}
