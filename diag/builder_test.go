package diag

import "testing"

func TestNewIssue(t *testing.T) {
	issue := NewIssue(Error, E_VARIABLE_NOT_FOUND, "test message").Build()

	if issue.Severity() != Error {
		t.Errorf("Severity() = %v; want %v", issue.Severity(), Error)
	}
	if issue.Code() != E_VARIABLE_NOT_FOUND {
		t.Errorf("Code() = %v; want %v", issue.Code(), E_VARIABLE_NOT_FOUND)
	}
	if issue.Message() != "test message" {
		t.Errorf("Message() = %q; want %q", issue.Message(), "test message")
	}
	if !issue.IsValid() {
		t.Error("NewIssue should produce valid issue")
	}
}

func TestIssueBuilder_WithNodeID(t *testing.T) {
	const nodeID = "3fa85f64-5717-4562-b3fc-2c963f66afa6"

	issue := NewIssue(Error, E_INSTRUCTION_NOT_FOUND, "test").
		WithNodeID(nodeID).
		Build()

	if issue.NodeID() != nodeID {
		t.Errorf("NodeID() = %v; want %v", issue.NodeID(), nodeID)
	}
	if !issue.HasNodeID() {
		t.Error("HasNodeID() = false; want true")
	}
}

func TestIssueBuilder_WithName(t *testing.T) {
	issue := NewIssue(Error, E_VARIABLE_NOT_FOUND, "test").
		WithName("procs").
		Build()

	if issue.Name() != "procs" {
		t.Errorf("Name() = %q; want %q", issue.Name(), "procs")
	}
	if !issue.HasName() {
		t.Error("HasName() = false; want true")
	}
}

func TestIssueBuilder_WithHint(t *testing.T) {
	issue := NewIssue(Error, E_DUPLICATED_VARIABLE, "test").
		WithHint("rename one of the variables").
		Build()

	if issue.Hint() != "rename one of the variables" {
		t.Errorf("Hint() = %q; want %q", issue.Hint(), "rename one of the variables")
	}
}

func TestIssueBuilder_WithDetail(t *testing.T) {
	issue := NewIssue(Error, E_INVALID_SERIALIZED_INSTRUCTION, "test").
		WithDetail(DetailKeyKind, "filter").
		WithDetail(DetailKeyField, "predicate").
		Build()

	details := issue.Details()
	if len(details) != 2 {
		t.Fatalf("len(Details()) = %d; want 2", len(details))
	}
	if details[0].Key != DetailKeyKind || details[0].Value != "filter" {
		t.Errorf("Details()[0] = %v; want {%q, %q}", details[0], DetailKeyKind, "filter")
	}
	if details[1].Key != DetailKeyField || details[1].Value != "predicate" {
		t.Errorf("Details()[1] = %v; want {%q, %q}", details[1], DetailKeyField, "predicate")
	}
}

func TestIssueBuilder_WithDetails(t *testing.T) {
	issue := NewIssue(Error, E_INVALID_SERIALIZED_INSTRUCTION, "test").
		WithDetails(Detail{Key: DetailKeyKind, Value: "filter"}).
		WithDetails(Detail{Key: DetailKeyField, Value: "predicate"}).
		Build()

	details := issue.Details()
	if len(details) != 2 {
		t.Fatalf("len(Details()) = %d; want 2", len(details))
	}
	if details[0].Key != DetailKeyKind || details[0].Value != "filter" {
		t.Errorf("Details()[0] = %v; want {%q, %q}", details[0], DetailKeyKind, "filter")
	}
	if details[1].Key != DetailKeyField || details[1].Value != "predicate" {
		t.Errorf("Details()[1] = %v; want {%q, %q}", details[1], DetailKeyField, "predicate")
	}
}

func TestIssueBuilder_WithDetails_Variadic(t *testing.T) {
	details := NodeKind("n1", "filter")

	issue := NewIssue(Error, E_INEVALUABLE_INSTRUCTION, "test").
		WithDetails(details...).
		Build()

	got := issue.Details()
	if len(got) != 2 {
		t.Fatalf("len(Details()) = %d; want 2", len(got))
	}
}

func TestIssueBuilder_WithExpectedGot(t *testing.T) {
	issue := NewIssue(Error, E_INVALID_SERIALIZED_INSTRUCTION, "test").
		WithExpectedGot("filter", "project").
		Build()

	details := issue.Details()
	if len(details) != 2 {
		t.Fatalf("len(Details()) = %d; want 2", len(details))
	}
	if details[0].Key != DetailKeyExpected || details[0].Value != "filter" {
		t.Errorf("Details()[0] = %v; want expected=filter", details[0])
	}
	if details[1].Key != DetailKeyGot || details[1].Value != "project" {
		t.Errorf("Details()[1] = %v; want got=project", details[1])
	}
}

func TestIssueBuilder_FluentChaining(t *testing.T) {
	issue := NewIssue(Error, E_DUPLICATED_VARIABLE, `variable "procs" already has a live binding`).
		WithName("procs").
		WithHint("rename one of the variables").
		WithDetails(Detail{Key: DetailKeyVersion, Value: "2"}).
		Build()

	if !issue.HasName() {
		t.Error("issue should have a name")
	}
	if issue.Hint() == "" {
		t.Error("issue should have hint")
	}
	if len(issue.Details()) != 1 {
		t.Error("issue should have details")
	}
	if !issue.IsValid() {
		t.Error("issue should be valid")
	}
}

func TestIssueBuilder_BuildImmutability(t *testing.T) {
	builder := NewIssue(Error, E_DUPLICATED_VARIABLE, "test").
		WithDetails(Detail{Key: DetailKeyName, Value: "original"})

	issue1 := builder.Build()

	builder.WithDetails(Detail{Key: DetailKeyVersion, Value: "added"})

	issue2 := builder.Build()

	if len(issue1.Details()) != 1 {
		t.Errorf("issue1 Details() len = %d; want 1 (builder modifications affected built issue)",
			len(issue1.Details()))
	}

	if len(issue2.Details()) != 2 {
		t.Errorf("issue2 Details() len = %d; want 2", len(issue2.Details()))
	}
}

func TestIssueBuilder_BuildDeepCopy(t *testing.T) {
	builder := NewIssue(Error, E_DUPLICATED_VARIABLE, "test").
		WithDetails(Detail{Key: DetailKeyName, Value: "procs"})

	issue := builder.Build()

	details := issue.Details()

	details[0].Value = "modified"

	if issue.Details()[0].Value == "modified" {
		t.Error("modifying Details() return value affected issue")
	}
}

func TestIssueBuilder_EmptySlices(t *testing.T) {
	issue := NewIssue(Error, E_VARIABLE_NOT_FOUND, "test").Build()

	if issue.Details() != nil {
		t.Error("Details() should be nil when no details added")
	}
}

func TestNewIssue_AllSeverities(t *testing.T) {
	severities := []Severity{Fatal, Error, Warning, Info, Hint}

	for _, sev := range severities {
		t.Run(sev.String(), func(t *testing.T) {
			issue := NewIssue(sev, E_VARIABLE_NOT_FOUND, "test").Build()
			if issue.Severity() != sev {
				t.Errorf("Severity() = %v; want %v", issue.Severity(), sev)
			}
			if !issue.IsValid() {
				t.Error("issue should be valid")
			}
		})
	}
}

// TestNewIssue_PanicOnInvalidSeverity verifies that NewIssue panics when
// given an out-of-range severity value. This enforces the builder's
// guarantee that IssueBuilder produces only valid issues.
func TestNewIssue_PanicOnInvalidSeverity(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Error("NewIssue with invalid severity should panic")
		}
	}()

	NewIssue(Severity(255), E_VARIABLE_NOT_FOUND, "test")
}

// TestNewIssue_PanicOnZeroCode verifies that NewIssue panics when
// given a zero Code value.
func TestNewIssue_PanicOnZeroCode(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Error("NewIssue with zero code should panic")
		}
	}()

	NewIssue(Error, Code{}, "test")
}

// TestNewIssue_PanicOnEmptyMessage verifies that NewIssue panics when
// given an empty message.
func TestNewIssue_PanicOnEmptyMessage(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Error("NewIssue with empty message should panic")
		}
	}()

	NewIssue(Error, E_VARIABLE_NOT_FOUND, "")
}

// TestNewIssue_PanicOnSeverityJustAboveHint verifies the boundary case
// where severity is just above the valid range (Hint + 1 = 5).
func TestNewIssue_PanicOnSeverityJustAboveHint(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Error("NewIssue with severity > Hint should panic")
		}
	}()

	NewIssue(Severity(5), E_VARIABLE_NOT_FOUND, "test") // Hint = 4, so 5 is invalid
}

// TestFromIssue_ValidatesInput verifies that FromIssue panics on invalid issues.
func TestFromIssue_ValidatesInput(t *testing.T) {
	t.Run("panics on zero issue", func(t *testing.T) {
		defer func() {
			if r := recover(); r == nil {
				t.Error("FromIssue with zero issue should panic")
			}
		}()
		FromIssue(Issue{})
	})

	t.Run("panics on invalid issue (missing code)", func(t *testing.T) {
		defer func() {
			if r := recover(); r == nil {
				t.Error("FromIssue with invalid issue should panic")
			}
		}()
		invalid := Issue{
			severity: Error,
			message:  "test",
			// code is zero - invalid
		}
		FromIssue(invalid)
	})

	t.Run("accepts valid issue", func(t *testing.T) {
		valid := NewIssue(Error, E_VARIABLE_NOT_FOUND, "test message").Build()
		builder := FromIssue(valid)
		if builder == nil {
			t.Error("FromIssue should return non-nil builder for valid issue")
		}
		rebuilt := builder.Build()
		if rebuilt.Message() != "test message" {
			t.Errorf("Message() = %q; want %q", rebuilt.Message(), "test message")
		}
	})
}
