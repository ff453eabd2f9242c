package template

import (
	"errors"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/modu-ai/modular/pkg/models"
)

func mustIdentity(t *testing.T, name string) models.ModuleIdentity {
	t.Helper()
	id, err := models.NewModuleIdentity(name)
	if err != nil {
		t.Fatalf("NewModuleIdentity(%q) error = %v", name, err)
	}
	return id
}

func TestRendererRender(t *testing.T) {
	t.Run("successful_render", func(t *testing.T) {
		fs := fstest.MapFS{
			"routes/web.stub": &fstest.MapFile{
				Data: []byte("title=DummyTitle uc=DummyUCtitle prefix=DummyPrefix class=DummyClass"),
			},
		}
		r := NewRenderer(fs)

		result, err := r.Render("routes/web.stub", NewTokens(mustIdentity(t, "blog_post")))
		if err != nil {
			t.Fatalf("Render error: %v", err)
		}

		expected := "title=blog_post uc=BlogPost prefix=/blog_post/ class=BlogPost"
		if string(result) != expected {
			t.Errorf("Render result = %q, want %q", string(result), expected)
		}
	})

	t.Run("blog_web_routes", func(t *testing.T) {
		fs := fstest.MapFS{
			"web.stub": &fstest.MapFile{
				Data: []byte(`mux.HandleFunc("GET DummyPrefix", handlerFor("DummyClass"))`),
			},
		}
		r := NewRenderer(fs)

		result, err := r.Render("web.stub", NewTokens(mustIdentity(t, "blog")))
		if err != nil {
			t.Fatalf("Render error: %v", err)
		}
		content := string(result)
		if !strings.Contains(content, `"GET /blog/"`) {
			t.Errorf("prefix not resolved: %s", content)
		}
		if !strings.Contains(content, `handlerFor("Blog")`) {
			t.Errorf("class not resolved: %s", content)
		}
	})

	t.Run("class_and_package_options", func(t *testing.T) {
		fs := fstest.MapFS{
			"controller.stub": &fstest.MapFile{
				Data: []byte("package DummyPackage\n\ntype DummyClass struct{} // DummyNamespace\n"),
			},
		}
		r := NewRenderer(fs)
		id := mustIdentity(t, "shop")

		result, err := r.Render("controller.stub", NewTokens(id,
			WithClass(id.ClassName("Controller")),
			WithPackage(id.Package("Controllers")),
			WithNamespace(id.Namespace("example.com/app", "Controllers")),
		))
		if err != nil {
			t.Fatalf("Render error: %v", err)
		}

		expected := "package controllers\n\ntype ShopController struct{} // example.com/app/Modules/Shop/Controllers\n"
		if string(result) != expected {
			t.Errorf("Render result = %q, want %q", string(result), expected)
		}
	})

	t.Run("unknown_placeholder", func(t *testing.T) {
		fs := fstest.MapFS{
			"bad.stub": &fstest.MapFile{Data: []byte("DummyTitle uses DummyRootNamespace")},
		}
		r := NewRenderer(fs)

		_, err := r.Render("bad.stub", NewTokens(mustIdentity(t, "blog")))
		if !errors.Is(err, ErrUnexpandedToken) {
			t.Fatalf("expected ErrUnexpandedToken, got: %v", err)
		}
	})

	t.Run("nonexistent_stub", func(t *testing.T) {
		r := NewRenderer(fstest.MapFS{})

		_, err := r.Render("nonexistent.stub", NewTokens(mustIdentity(t, "blog")))
		if !errors.Is(err, ErrStubNotFound) {
			t.Errorf("expected ErrStubNotFound, got: %v", err)
		}
	})

	t.Run("empty_stub", func(t *testing.T) {
		fs := fstest.MapFS{"empty.stub": &fstest.MapFile{Data: []byte("")}}
		r := NewRenderer(fs)

		result, err := r.Render("empty.stub", NewTokens(mustIdentity(t, "blog")))
		if err != nil {
			t.Fatalf("Render error: %v", err)
		}
		if len(result) != 0 {
			t.Errorf("expected empty result, got %d bytes", len(result))
		}
	})
}

func TestSubstitute_Deterministic(t *testing.T) {
	stub := []byte("DummyTitle DummyUCtitle DummyPrefix DummyClass DummyNamespace DummyPackage")
	tokens := NewTokens(mustIdentity(t, "shop-cart"))

	first, err := Substitute(stub, tokens)
	if err != nil {
		t.Fatalf("Substitute error: %v", err)
	}
	second, err := Substitute(stub, tokens)
	if err != nil {
		t.Fatalf("Substitute error: %v", err)
	}
	if string(first) != string(second) {
		t.Errorf("Substitute not deterministic: %q vs %q", first, second)
	}
	if unknownTokenPattern.Match(first) {
		t.Errorf("residual placeholder in %q", first)
	}
}

func TestSubstitute_ModuleNamedDummy(t *testing.T) {
	// A module whose name starts with "Dummy" must not trip the leftover check.
	out, err := Substitute([]byte("type DummyClass struct{}"), NewTokens(mustIdentity(t, "dummy_data")))
	if err != nil {
		t.Fatalf("Substitute error: %v", err)
	}
	if string(out) != "type DummyData struct{}" {
		t.Errorf("Substitute = %q", out)
	}
}

func TestSubstitute_TokenSuffixes(t *testing.T) {
	out, err := Substitute([]byte("ErrDummyUCtitleNotFound NewDummyClass /apiDummyPrefix"), NewTokens(mustIdentity(t, "blog")))
	if err != nil {
		t.Fatalf("Substitute error: %v", err)
	}
	if string(out) != "ErrBlogNotFound NewBlog /api/blog/" {
		t.Errorf("Substitute = %q", out)
	}
}

func TestTokensMap(t *testing.T) {
	tokens := NewTokens(mustIdentity(t, "blog"))
	m := tokens.Map()
	want := map[string]string{
		TokenTitle:     "blog",
		TokenUCTitle:   "Blog",
		TokenPrefix:    "/blog/",
		TokenClass:     "Blog",
		TokenNamespace: "Modules/Blog",
		TokenPackage:   "blog",
		TokenTable:     "blog",
	}
	for k, v := range want {
		if m[k] != v {
			t.Errorf("Map()[%s] = %q, want %q", k, m[k], v)
		}
	}
}
