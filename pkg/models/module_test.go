package models_test

import (
	"errors"
	"testing"

	"github.com/modu-ai/modular/pkg/models"
)

func TestNewModuleIdentity(t *testing.T) {
	tests := []struct {
		name       string
		input      string
		wantName   string
		wantStudly string
		wantLower  string
		wantPrefix string
	}{
		{"simple", "blog", "blog", "Blog", "blog", "/blog/"},
		{"already_studly", "Blog", "Blog", "Blog", "blog", "/blog/"},
		{"underscore", "blog_post", "blog_post", "BlogPost", "blog_post", "/blog_post/"},
		{"hyphen", "shop-cart", "shop-cart", "ShopCart", "shop-cart", "/shop-cart/"},
		{"keeps_inner_case", "userProfile", "userProfile", "UserProfile", "userprofile", "/userprofile/"},
		{"digits", "v2api", "v2api", "V2api", "v2api", "/v2api/"},
		{"trimmed", "  shop  ", "shop", "Shop", "shop", "/shop/"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, err := models.NewModuleIdentity(tt.input)
			if err != nil {
				t.Fatalf("NewModuleIdentity(%q) error = %v", tt.input, err)
			}
			if got := id.Name(); got != tt.wantName {
				t.Errorf("Name() = %q, want %q", got, tt.wantName)
			}
			if got := id.Studly(); got != tt.wantStudly {
				t.Errorf("Studly() = %q, want %q", got, tt.wantStudly)
			}
			if got := id.Lower(); got != tt.wantLower {
				t.Errorf("Lower() = %q, want %q", got, tt.wantLower)
			}
			if got := id.Prefix(); got != tt.wantPrefix {
				t.Errorf("Prefix() = %q, want %q", got, tt.wantPrefix)
			}
		})
	}
}

func TestNewModuleIdentity_Invalid(t *testing.T) {
	for _, input := range []string{"", "   ", "1blog", "_blog", "blog/post", "../etc", "blog post", "blog.post", "func", "type", "Map", "go_to"} {
		t.Run(input, func(t *testing.T) {
			_, err := models.NewModuleIdentity(input)
			if !errors.Is(err, models.ErrInvalidModuleName) {
				t.Errorf("NewModuleIdentity(%q) error = %v, want ErrInvalidModuleName", input, err)
			}
		})
	}
}

func TestModuleIdentity_Snake(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"blog", "blog"},
		{"blog_post", "blog_post"},
		{"shop-cart", "shop_cart"},
		{"UserProfile", "userprofile"},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			id, err := models.NewModuleIdentity(tt.input)
			if err != nil {
				t.Fatal(err)
			}
			if got := id.Snake(); got != tt.want {
				t.Errorf("Snake() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestModuleIdentity_Namespace(t *testing.T) {
	id, err := models.NewModuleIdentity("blog_post")
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name     string
		root     string
		segments []string
		want     string
	}{
		{"module_root", "example.com/app", nil, "example.com/app/Modules/BlogPost"},
		{"controllers", "example.com/app", []string{"Controllers"}, "example.com/app/Modules/BlogPost/Controllers"},
		{"empty_root", "", []string{"Models"}, "Modules/BlogPost/Models"},
		{"trailing_slash_root", "example.com/app/", nil, "example.com/app/Modules/BlogPost"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := id.Namespace(tt.root, tt.segments...); got != tt.want {
				t.Errorf("Namespace() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestModuleIdentity_PackageAndClass(t *testing.T) {
	id, err := models.NewModuleIdentity("blog_post")
	if err != nil {
		t.Fatal(err)
	}
	if got := id.Package(); got != "blogpost" {
		t.Errorf("Package() = %q, want %q", got, "blogpost")
	}
	if got := id.Package("Controllers"); got != "controllers" {
		t.Errorf("Package(Controllers) = %q, want %q", got, "controllers")
	}
	if got := id.ClassName("Controller"); got != "BlogPostController" {
		t.Errorf("ClassName() = %q, want %q", got, "BlogPostController")
	}
	if got := id.String(); got != "BlogPost" {
		t.Errorf("String() = %q, want %q", got, "BlogPost")
	}
	if id.IsZero() {
		t.Error("IsZero() = true for initialized identity")
	}
	if !(models.ModuleIdentity{}).IsZero() {
		t.Error("IsZero() = false for zero identity")
	}
}

func TestArtifactKind(t *testing.T) {
	for _, k := range models.MandatoryArtifacts() {
		if !k.IsValid() || k.IsOptional() {
			t.Errorf("mandatory kind %q: IsValid=%v IsOptional=%v", k, k.IsValid(), k.IsOptional())
		}
	}
	for _, k := range models.OptionalArtifacts() {
		if !k.IsValid() || !k.IsOptional() {
			t.Errorf("optional kind %q: IsValid=%v IsOptional=%v", k, k.IsValid(), k.IsOptional())
		}
	}
	if models.ArtifactKind("seeder").IsValid() {
		t.Error("unknown kind reported valid")
	}
	if !models.ArtifactWebRoutes.IsRoutes() || models.ArtifactHelper.IsRoutes() {
		t.Error("IsRoutes misclassified")
	}
	if got := models.ArtifactController.Label(); got != "Controller" {
		t.Errorf("Label() = %q, want %q", got, "Controller")
	}
}
