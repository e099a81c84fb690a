package crypto

import (
	"errors"
	"math"
	"math/rand/v2"
	"strings"
	"testing"
)

func seeded(seed uint64) Source {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

func TestGenerate(t *testing.T) {
	tests := []struct {
		name    string
		length  int
		wantErr error
	}{
		{name: "minimum length", length: MinLength},
		{name: "default length", length: DefaultLength},
		{name: "script length", length: 16},
		{name: "long", length: 256},
		{name: "zero", length: 0, wantErr: ErrInvalidArgument},
		{name: "one", length: 1, wantErr: ErrInvalidArgument},
		{name: "four", length: 4, wantErr: ErrInvalidArgument},
		{name: "one below minimum", length: 11, wantErr: ErrInvalidArgument},
		{name: "negative", length: -5, wantErr: ErrInvalidArgument},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := Generate(DefaultSource(), tt.length)

			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("Generate() error = %v, want %v", err, tt.wantErr)
				}
				if result != "" {
					t.Error("Generate() should return empty string on error")
				}
				return
			}

			if err != nil {
				t.Fatalf("Generate() unexpected error: %v", err)
			}
			if len(result) != tt.length {
				t.Errorf("Generate() length = %d, want %d", len(result), tt.length)
			}
		})
	}
}

func TestGenerateContainsEveryClass(t *testing.T) {
	sources := map[string]Source{
		"default": DefaultSource(),
		"secure":  SecureSource(),
		"seeded":  seeded(7),
	}

	for name, src := range sources {
		t.Run(name, func(t *testing.T) {
			for length := MinLength; length <= 40; length++ {
				password, err := Generate(src, length)
				if err != nil {
					t.Fatalf("Generate(%d) unexpected error: %v", length, err)
				}

				for _, c := range Classes() {
					if !strings.ContainsAny(password, c.Chars) {
						t.Errorf("password %q missing %s character", password, c.Name)
					}
				}
				for _, ch := range password {
					if _, ok := ClassOf(ch); !ok {
						t.Errorf("password %q contains unexpected character %q", password, ch)
					}
				}
			}
		})
	}
}

func TestGenerateSeededIsReproducible(t *testing.T) {
	a, err := Generate(seeded(42), 16)
	if err != nil {
		t.Fatalf("Generate() unexpected error: %v", err)
	}
	b, err := Generate(seeded(42), 16)
	if err != nil {
		t.Fatalf("Generate() unexpected error: %v", err)
	}
	if a != b {
		t.Errorf("same seed produced %q and %q", a, b)
	}

	c, err := Generate(seeded(43), 16)
	if err != nil {
		t.Fatalf("Generate() unexpected error: %v", err)
	}
	if a == c {
		t.Errorf("different seeds produced the same password %q", a)
	}
}

func TestGenerateProducesUniquePasswords(t *testing.T) {
	for name, src := range map[string]Source{"default": DefaultSource(), "secure": SecureSource()} {
		t.Run(name, func(t *testing.T) {
			seen := make(map[string]bool)
			for i := 0; i < 100; i++ {
				password, err := Generate(src, DefaultLength)
				if err != nil {
					t.Fatalf("Generate() unexpected error: %v", err)
				}
				if seen[password] {
					t.Errorf("duplicate password generated: %q", password)
				}
				seen[password] = true
			}
		})
	}
}

// Without the shuffle the first character would always be the lowercase
// mandatory pick. With it, position 0 holds a mandatory pick with probability
// 4/16 (split evenly across classes) and a pool pick otherwise.
func TestGenerateShufflesMandatoryPicks(t *testing.T) {
	const (
		runs   = 10000
		length = 16
	)

	src := seeded(2024)
	counts := make(map[string]int)
	for i := 0; i < runs; i++ {
		password, err := Generate(src, length)
		if err != nil {
			t.Fatalf("Generate() unexpected error: %v", err)
		}
		c, ok := ClassOf(rune(password[0]))
		if !ok {
			t.Fatalf("unexpected first character %q", password[0])
		}
		counts[c.Name]++
	}

	pool := float64(len(allChars))
	for _, c := range Classes() {
		want := 1.0/length + float64(length-len(classes))/length*float64(len(c.Chars))/pool
		got := float64(counts[c.Name]) / runs
		if math.Abs(got-want) > 0.03 {
			t.Errorf("first character class %s frequency = %.3f, want %.3f ± 0.03", c.Name, got, want)
		}
	}
}

func TestClassOf(t *testing.T) {
	tests := []struct {
		r    rune
		want string
		ok   bool
	}{
		{r: 'q', want: "lowercase", ok: true},
		{r: 'Q', want: "uppercase", ok: true},
		{r: '7', want: "digit", ok: true},
		{r: '~', want: "punctuation", ok: true},
		{r: '\\', want: "punctuation", ok: true},
		{r: '`', want: "punctuation", ok: true},
		{r: ' ', ok: false},
		{r: 'é', ok: false},
	}

	for _, tt := range tests {
		c, ok := ClassOf(tt.r)
		if ok != tt.ok || c.Name != tt.want {
			t.Errorf("ClassOf(%q) = (%q, %v), want (%q, %v)", tt.r, c.Name, ok, tt.want, tt.ok)
		}
	}
}

func TestClassesAreFixed(t *testing.T) {
	got := Classes()
	got[0].Chars = "x"

	if Classes()[0].Chars != lowercaseChars {
		t.Error("Classes() exposed the package-level class table")
	}
	if len(punctuationChars) != 32 {
		t.Errorf("punctuation class has %d characters, want 32", len(punctuationChars))
	}
	if len(allChars) != 94 {
		t.Errorf("combined pool has %d characters, want 94", len(allChars))
	}
}
