package registry

import (
	"context"
	"testing"

	"github.com/opkit/fileops/internal/fileops"
	"github.com/opkit/fileops/internal/types"
)

var catalogNames = []string{
	"list_directory",
	"create_directory",
	"copy_file",
	"copy_directory",
	"move_file",
	"move_directory",
	"delete_file",
	"delete_directory",
	"get_file_info",
	"change_permissions",
	"find_files",
	"get_file_size",
	"get_directory_size",
}

func TestDefaultCatalog(t *testing.T) {
	r := Default()

	if r.Len() != len(catalogNames) {
		t.Fatalf("Expected %d operations, got %d", len(catalogNames), r.Len())
	}

	for _, name := range catalogNames {
		op, ok := r.Lookup(name)
		if !ok {
			t.Errorf("Operation %s should be registered", name)
			continue
		}
		if op.Handler == nil {
			t.Errorf("Operation %s has no handler", name)
		}
		if op.Description == "" {
			t.Errorf("Operation %s has no description", name)
		}
	}
}

func TestLookupUnknown(t *testing.T) {
	r := Default()

	if _, ok := r.Lookup("format_disk"); ok {
		t.Error("Unknown operation should not resolve")
	}
}

func TestPathRequiredEverywhere(t *testing.T) {
	r := Default()

	for _, op := range r.List() {
		found := false
		for _, p := range op.Parameters {
			if p.Name == "path" && p.Required {
				found = true
			}
		}
		if !found {
			t.Errorf("Operation %s should require path", op.Name)
		}
	}
}

func TestRequiredFieldsPerOperation(t *testing.T) {
	r := Default()

	requires := map[string]string{
		"copy_file":          "destination",
		"copy_directory":     "destination",
		"move_file":          "destination",
		"move_directory":     "destination",
		"find_files":         "pattern",
		"change_permissions": "permissions",
	}

	for name, field := range requires {
		op, ok := r.Lookup(name)
		if !ok {
			t.Fatalf("Operation %s missing from catalog", name)
		}
		found := false
		for _, p := range op.Parameters {
			if p.Name == field && p.Required {
				found = true
			}
		}
		if !found {
			t.Errorf("Operation %s should require %s", name, field)
		}
	}
}

func TestOptionalDefaults(t *testing.T) {
	r := Default()

	op, _ := r.Lookup("list_directory")
	for _, p := range op.Parameters {
		if p.Name == "recursive" || p.Name == "show_hidden" {
			if p.Required {
				t.Errorf("%s should be optional", p.Name)
			}
			if v, ok := p.Default.(bool); !ok || v {
				t.Errorf("%s should default to false", p.Name)
			}
		}
	}
}

func TestRegisterValidation(t *testing.T) {
	r := New()
	noop := func(ctx context.Context, req fileops.Request) (string, error) { return "", nil }

	if err := r.Register(Operation{Name: "", Handler: noop}); err == nil {
		t.Error("Empty name should be rejected")
	}
	if err := r.Register(Operation{Name: "no_handler"}); err == nil {
		t.Error("Missing handler should be rejected")
	}

	op := Operation{
		Name:       "probe",
		Parameters: []types.Parameter{{Name: "path", Type: "string", Required: true}},
		Handler:    noop,
	}
	if err := r.Register(op); err != nil {
		t.Fatalf("Register failed: %v", err)
	}
	if err := r.Register(op); err == nil {
		t.Error("Duplicate registration should be rejected")
	}
}
