package entities

import (
	"go/ast"
	"go/doc"
	"go/parser"
	"go/token"
	"os"
	"strings"
	"testing"
)

func TestExportedTypesAreDocumented(t *testing.T) {
	fset := token.NewFileSet()
	pkgs, err := parser.ParseDir(fset, ".", func(fi os.FileInfo) bool {
		return !strings.HasSuffix(fi.Name(), "_test.go")
	}, parser.ParseComments)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	pkg, ok := pkgs["entities"]
	if !ok {
		t.Fatalf("package entities not found")
	}

	files := make([]*ast.File, 0, len(pkg.Files))
	for _, f := range pkg.Files {
		files = append(files, f)
	}
	p, err := doc.NewFromFiles(fset, files, "marblecraft/internal/domain/entities")
	if err != nil {
		t.Fatalf("doc: %v", err)
	}

	want := []string{
		"ServiceCategory", "Service", "MarbleDesign",
		"ExtraUnit", "ExtraKind", "PriceExtra", "TimeSlot", "PriceBreakdown",
	}
	docs := make(map[string]string, len(p.Types))
	for _, typ := range p.Types {
		docs[typ.Name] = typ.Doc
	}
	for _, name := range want {
		if strings.TrimSpace(docs[name]) == "" {
			t.Fatalf("type %s has no attached doc comment", name)
		}
	}
}
