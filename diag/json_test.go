package diag_test

import (
	"encoding/json"
	"testing"

	"github.com/huntgraph/irengine/diag"
)

func TestFormatIssueJSON_Minimal(t *testing.T) {
	issue := diag.NewIssue(diag.Error, diag.E_VARIABLE_NOT_FOUND, "variable not found").Build()

	raw := diag.FormatIssueJSON(issue)

	var decoded map[string]any
	if err := json.Unmarshal(raw, &decoded); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	if decoded["severity"] != "error" {
		t.Errorf("severity = %v; want %q", decoded["severity"], "error")
	}
	if decoded["code"] != "E_VARIABLE_NOT_FOUND" {
		t.Errorf("code = %v; want %q", decoded["code"], "E_VARIABLE_NOT_FOUND")
	}
	if decoded["message"] != "variable not found" {
		t.Errorf("message = %v; want %q", decoded["message"], "variable not found")
	}
	if _, present := decoded["nodeId"]; present {
		t.Error("nodeId should be omitted when not set")
	}
	if _, present := decoded["name"]; present {
		t.Error("name should be omitted when not set")
	}
	if _, present := decoded["hint"]; present {
		t.Error("hint should be omitted when not set")
	}
	if _, present := decoded["details"]; present {
		t.Error("details should be omitted when empty")
	}
}

func TestFormatIssueJSON_FullFields(t *testing.T) {
	const nodeID = "3fa85f64-5717-4562-b3fc-2c963f66afa6"

	issue := diag.NewIssue(diag.Error, diag.E_DUPLICATED_VARIABLE, "variable collision").
		WithNodeID(nodeID).
		WithName("procs").
		WithHint("rename one of the variables").
		WithDetails(diag.NamedSymbol("procs", "2")...).
		Build()

	raw := diag.FormatIssueJSON(issue)

	var decoded map[string]any
	if err := json.Unmarshal(raw, &decoded); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	if decoded["nodeId"] != nodeID {
		t.Errorf("nodeId = %v; want %q", decoded["nodeId"], nodeID)
	}
	if decoded["name"] != "procs" {
		t.Errorf("name = %v; want %q", decoded["name"], "procs")
	}
	if decoded["hint"] != "rename one of the variables" {
		t.Errorf("hint = %v; want %q", decoded["hint"], "rename one of the variables")
	}

	details, ok := decoded["details"].([]any)
	if !ok {
		t.Fatalf("details = %T; want []any", decoded["details"])
	}
	if len(details) != 2 {
		t.Fatalf("len(details) = %d; want 2", len(details))
	}
}

func TestFormatIssueJSON_RoundTrip(t *testing.T) {
	issue := diag.NewIssue(diag.Warning, diag.E_INTERFACE_NOT_FOUND, "no backend registered").
		WithNodeID("n1").
		WithDetail(diag.DetailKeyInterface, "sql").
		Build()

	raw := diag.FormatIssueJSON(issue)

	var wire struct {
		NodeID  string `json:"nodeId"`
		Code    string `json:"code"`
		Message string `json:"message"`
		Details []struct {
			Key   string `json:"key"`
			Value string `json:"value"`
		} `json:"details"`
	}
	if err := json.Unmarshal(raw, &wire); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	if wire.NodeID != "n1" {
		t.Errorf("NodeID = %q; want %q", wire.NodeID, "n1")
	}
	if wire.Code != "E_INTERFACE_NOT_FOUND" {
		t.Errorf("Code = %q; want %q", wire.Code, "E_INTERFACE_NOT_FOUND")
	}
	if len(wire.Details) != 1 || wire.Details[0].Key != diag.DetailKeyInterface || wire.Details[0].Value != "sql" {
		t.Errorf("Details = %v; want [{interface sql}]", wire.Details)
	}
}

func TestFormatResultJSON_Empty(t *testing.T) {
	c := diag.NewCollector(0)
	result := c.Result()

	raw := diag.FormatResultJSON(result)

	var decoded map[string]any
	if err := json.Unmarshal(raw, &decoded); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	issues, ok := decoded["issues"].([]any)
	if !ok {
		t.Fatalf("issues = %T; want []any", decoded["issues"])
	}
	if len(issues) != 0 {
		t.Errorf("len(issues) = %d; want 0", len(issues))
	}
	if _, present := decoded["limitReached"]; present {
		t.Error("limitReached should be omitted when not reached")
	}
}

func TestFormatResultJSON_MultipleIssues(t *testing.T) {
	c := diag.NewCollector(0)
	c.Collect(diag.NewIssue(diag.Error, diag.E_VARIABLE_NOT_FOUND, "first").Build())
	c.Collect(diag.NewIssue(diag.Warning, diag.E_INTERFACE_NOT_FOUND, "second").Build())

	raw := diag.FormatResultJSON(c.Result())

	var decoded struct {
		Issues []struct {
			Message string `json:"message"`
		} `json:"issues"`
	}
	if err := json.Unmarshal(raw, &decoded); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	if len(decoded.Issues) != 2 {
		t.Fatalf("len(issues) = %d; want 2", len(decoded.Issues))
	}
}

func TestFormatResultJSON_LimitReached(t *testing.T) {
	c := diag.NewCollector(1)
	c.Collect(diag.NewIssue(diag.Error, diag.E_VARIABLE_NOT_FOUND, "first").Build())
	c.Collect(diag.NewIssue(diag.Error, diag.E_VARIABLE_NOT_FOUND, "dropped").Build())

	raw := diag.FormatResultJSON(c.Result())

	var decoded map[string]any
	if err := json.Unmarshal(raw, &decoded); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	if decoded["limitReached"] != true {
		t.Errorf("limitReached = %v; want true", decoded["limitReached"])
	}
	if decoded["limit"] != float64(1) {
		t.Errorf("limit = %v; want 1", decoded["limit"])
	}
	if decoded["droppedCount"] != float64(1) {
		t.Errorf("droppedCount = %v; want 1", decoded["droppedCount"])
	}
}
