package validation

import (
	"errors"
	"testing"

	"github.com/go-playground/validator/v10"
)

type galleryPayload struct {
	Images    []string `json:"images" validate:"required,dive,image_ref"`
	Specialty string   `json:"specialty" validate:"omitempty,specialty"`
	Step      int      `json:"step" validate:"omitempty,wizard_step"`
}

func newValidator(t *testing.T) (*validator.Validate, *Translator) {
	t.Helper()
	v := validator.New()
	tr, err := Register(v)
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	return v, tr
}

func TestImageRef(t *testing.T) {
	v, _ := newValidator(t)
	cases := map[string]bool{
		"https://cdn.example.com/a.jpg": true,
		"http://example.com/b.png":      true,
		"blob:4f2a-11":                  true,
		"blob:":                         false,
		"ftp://example.com/c.jpg":       false,
		"https://":                      false,
		"just-a-name.jpg":               false,
	}
	for ref, want := range cases {
		err := v.Var(ref, "image_ref")
		if (err == nil) != want {
			t.Fatalf("%q: expected valid=%v, got err=%v", ref, want, err)
		}
	}
}

func TestSpecialtyAndStep(t *testing.T) {
	v, _ := newValidator(t)
	if err := v.Var("Rustic", "specialty"); err != nil {
		t.Fatalf("expected Rustic to be valid: %v", err)
	}
	if err := v.Var("Underwater", "specialty"); err == nil {
		t.Fatalf("expected unknown specialty to fail")
	}
	for step, want := range map[int]bool{0: false, 1: true, 5: true, 6: false} {
		if err := v.Var(step, "wizard_step"); (err == nil) != want {
			t.Fatalf("step %d: expected valid=%v, got %v", step, want, err)
		}
	}
}

func TestTranslator_Details(t *testing.T) {
	v, tr := newValidator(t)

	err := v.Struct(galleryPayload{Images: []string{"https://ok.example/a.jpg", "nope"}, Specialty: "Underwater", Step: 9})
	details := tr.Details(err)
	if got := details["images[1]"]; got != "images[1] must be an http(s) URL or a blob: reference" {
		t.Fatalf("unexpected image message: %q (all: %v)", got, details)
	}
	if _, ok := details["specialty"]; !ok {
		t.Fatalf("expected specialty detail, got %v", details)
	}
	if _, ok := details["step"]; !ok {
		t.Fatalf("expected step detail, got %v", details)
	}

	if got := tr.Details(errors.New("unexpected EOF")); got != nil {
		t.Fatalf("expected nil for non-validation errors, got %v", got)
	}

	var nilTr *Translator
	if got := nilTr.Details(err); got != nil {
		t.Fatalf("expected nil translator to be safe, got %v", got)
	}
}

type clearablePayload struct {
	FeaturedImage *string `json:"featured_image" validate:"omitempty,image_ref_or_empty"`
	Website       *string `json:"website" validate:"omitempty,http_url_or_empty"`
}

func TestOrEmptyRules_AcceptBlankPointers(t *testing.T) {
	v, tr := newValidator(t)
	blank, spaces := "", "  "
	for _, p := range []clearablePayload{
		{},
		{FeaturedImage: &blank, Website: &blank},
		{FeaturedImage: &spaces, Website: &spaces},
	} {
		if err := v.Struct(p); err != nil {
			t.Fatalf("expected %+v to be valid, got %v", p, err)
		}
	}

	badImage, badSite := "not-a-ref", "ftp://example.com"
	details := tr.Details(v.Struct(clearablePayload{FeaturedImage: &badImage, Website: &badSite}))
	if got := details["featured_image"]; got != "featured_image must be empty, an http(s) URL or a blob: reference" {
		t.Fatalf("unexpected featured_image message: %q (all: %v)", got, details)
	}
	if got := details["website"]; got != "website must be empty or an http(s) URL" {
		t.Fatalf("unexpected website message: %q (all: %v)", got, details)
	}
}

func TestTranslator_HTTPURLMessage(t *testing.T) {
	v, tr := newValidator(t)
	payload := struct {
		Website string `json:"website" validate:"http_url"`
	}{Website: "example"}

	details := tr.Details(v.Struct(payload))
	if got := details["website"]; got != "website must be an http(s) URL" {
		t.Fatalf("unexpected http_url message: %q (all: %v)", got, details)
	}
}
