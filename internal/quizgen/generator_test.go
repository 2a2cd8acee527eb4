package quizgen

import (
	"math/rand"
	"testing"

	"github.com/ducnm/elementary/internal/i18n"
	"github.com/ducnm/elementary/internal/periodic"
)

func newTestGenerator(seed int64) *Generator {
	return New(periodic.Elements, rand.New(rand.NewSource(seed)), i18n.New(i18n.LangEN))
}

func TestGenerator_BatchSizeAndIDs(t *testing.T) {
	gen := newTestGenerator(1)
	questions := gen.Questions(Settings{QuestionCount: 10, Types: AllTypes()})

	if len(questions) != 10 {
		t.Fatalf("got %d questions, want 10", len(questions))
	}
	for i, q := range questions {
		if q.ID != i+1 {
			t.Errorf("question %d has ID %d", i, q.ID)
		}
	}
}

func TestGenerator_OptionsIntegrity(t *testing.T) {
	gen := newTestGenerator(2)
	questions := gen.Questions(Settings{QuestionCount: 20, Types: AllTypes()})

	for _, q := range questions {
		if len(q.Options) != 4 {
			t.Fatalf("question %d: %d options", q.ID, len(q.Options))
		}
		seen := make(map[string]bool)
		found := false
		for _, opt := range q.Options {
			if seen[opt] {
				t.Errorf("question %d: duplicate option %q", q.ID, opt)
			}
			seen[opt] = true
			if opt == q.CorrectAnswer {
				found = true
			}
		}
		if !found {
			t.Errorf("question %d: correct answer %q not among options", q.ID, q.CorrectAnswer)
		}
		if q.Prompt == "" {
			t.Errorf("question %d: empty prompt", q.ID)
		}
	}
}

func TestGenerator_SingleTypeOnly(t *testing.T) {
	gen := newTestGenerator(3)
	questions := gen.Questions(Settings{
		QuestionCount: 8,
		Types:         TypeSet{Symbol: true},
	})

	if len(questions) != 8 {
		t.Fatalf("got %d questions, want 8", len(questions))
	}
	for _, q := range questions {
		if q.Type != TypeSymbol {
			t.Errorf("question %d has type %s", q.ID, q.Type)
		}
	}
}

func TestGenerator_NoTypesDefaultsToAll(t *testing.T) {
	gen := newTestGenerator(4)
	questions := gen.Questions(Settings{QuestionCount: 12, Types: TypeSet{}})

	if len(questions) != 12 {
		t.Fatalf("got %d questions, want 12", len(questions))
	}
	types := make(map[Type]bool)
	for _, q := range questions {
		types[q.Type] = true
	}
	if len(types) < 2 {
		t.Errorf("expected a mix of types, got %v", types)
	}
}

func TestGenerator_NoDuplicateSubjects(t *testing.T) {
	gen := newTestGenerator(5)
	questions := gen.Questions(Settings{
		QuestionCount: 30,
		Types:         TypeSet{Symbol: true},
	})

	prompts := make(map[string]bool)
	for _, q := range questions {
		if prompts[q.Prompt] {
			t.Errorf("element asked twice: %q", q.Prompt)
		}
		prompts[q.Prompt] = true
	}
}

func TestGenerator_EmptyInputs(t *testing.T) {
	gen := newTestGenerator(6)
	if got := gen.Questions(Settings{QuestionCount: 0, Types: AllTypes()}); got != nil {
		t.Errorf("zero count: got %d questions", len(got))
	}

	empty := New(nil, rand.New(rand.NewSource(6)), i18n.New(i18n.LangEN))
	if got := empty.Questions(DefaultSettings()); got != nil {
		t.Errorf("empty pool: got %d questions", len(got))
	}
}

func TestGenerator_SmallPoolShortBatch(t *testing.T) {
	// Three elements cannot support four symbol options.
	pool := periodic.Elements[:3]
	gen := New(pool, rand.New(rand.NewSource(7)), i18n.New(i18n.LangEN))
	got := gen.Questions(Settings{QuestionCount: 5, Types: TypeSet{Symbol: true}})
	if len(got) != 0 {
		t.Errorf("got %d questions from a 3-element pool, want 0", len(got))
	}
}

func TestGenerator_Reproducible(t *testing.T) {
	a := newTestGenerator(42).Questions(DefaultSettings())
	b := newTestGenerator(42).Questions(DefaultSettings())

	if len(a) != len(b) {
		t.Fatalf("batch sizes differ: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if a[i].Prompt != b[i].Prompt || a[i].CorrectAnswer != b[i].CorrectAnswer {
			t.Errorf("question %d differs under same seed", i+1)
		}
	}
}

func TestGenerator_RecentQuestionAnswer(t *testing.T) {
	// With only property questions over the full table, every "discovered
	// most recently" answer must actually have the latest year among its
	// options.
	gen := newTestGenerator(8)
	byName := make(map[string]periodic.Element)
	for _, e := range periodic.Elements {
		byName[e.Name] = e
	}

	questions := gen.Questions(Settings{
		QuestionCount: 10,
		Types:         TypeSet{Property: true},
	})
	for _, q := range questions {
		if q.Prompt != i18n.New(i18n.LangEN).T("quiz.q.recent") {
			continue
		}
		answer, ok := byName[q.CorrectAnswer]
		if !ok {
			t.Fatalf("unknown answer element %q", q.CorrectAnswer)
		}
		for _, opt := range q.Options {
			e, ok := byName[opt]
			if !ok {
				t.Fatalf("unknown option element %q", opt)
			}
			if e.DiscoveryYear > answer.DiscoveryYear {
				t.Errorf("option %s (%d) newer than answer %s (%d)",
					opt, e.DiscoveryYear, q.CorrectAnswer, answer.DiscoveryYear)
			}
		}
	}
}

func TestShuffled_PreservesElements(t *testing.T) {
	rng := rand.New(rand.NewSource(9))
	in := []int{1, 2, 3, 4, 5, 6, 7, 8}
	out := shuffled(rng, in)

	if len(out) != len(in) {
		t.Fatalf("length changed: %d", len(out))
	}
	counts := make(map[int]int)
	for _, v := range out {
		counts[v]++
	}
	for _, v := range in {
		counts[v]--
	}
	for v, c := range counts {
		if c != 0 {
			t.Errorf("element %d count off by %d", v, c)
		}
	}
	// Input untouched.
	for i, v := range in {
		if v != i+1 {
			t.Errorf("input mutated at %d: %d", i, v)
		}
	}
}
