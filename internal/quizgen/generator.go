// Package quizgen builds multiple-choice element questions from the static
// periodic table pool. Generation has no side effects: randomness comes
// from an injected source so batches are reproducible under a fixed seed.
package quizgen

import (
	"math/rand"

	"github.com/ducnm/elementary/internal/i18n"
	"github.com/ducnm/elementary/internal/periodic"
)

// optionCount is the number of candidate answers per question.
const optionCount = 4

// Generator produces question batches from an element pool.
type Generator struct {
	pool []periodic.Element
	rng  *rand.Rand
	tr   *i18n.Translator
}

// New creates a Generator over pool. Prompts and category/state options are
// localized through tr at generation time.
func New(pool []periodic.Element, rng *rand.Rand, tr *i18n.Translator) *Generator {
	return &Generator{pool: pool, rng: rng, tr: tr}
}

// Questions generates a shuffled batch for the given settings.
//
// Each active type contributes up to ceil(count/activeTypes) questions, with
// a single used-entity set shared across the whole pass so no element is the
// subject of two questions. If the per-type passes under-fill (ceiling
// rounding, or a type running out of usable entities), the batch is topped
// up round-robin from the active types before the final shuffle, so the
// result reaches the requested count whenever the pool allows it. A shorter
// batch (possibly empty) is returned when it does not; callers must treat
// zero questions as "cannot start".
func (g *Generator) Questions(s Settings) []Question {
	if s.QuestionCount <= 0 || len(g.pool) == 0 {
		return nil
	}

	active := s.Types.Active()
	perType := (s.QuestionCount + len(active) - 1) / len(active)
	used := make(map[int]bool)

	var questions []Question
	for _, typ := range active {
		for i := 0; i < perType && len(questions) < s.QuestionCount; i++ {
			q, ok := g.question(typ, used)
			if !ok {
				break
			}
			questions = append(questions, q)
		}
	}

	// Top up from whichever active types still have material.
	for len(questions) < s.QuestionCount {
		added := false
		for _, typ := range active {
			if len(questions) >= s.QuestionCount {
				break
			}
			if q, ok := g.question(typ, used); ok {
				questions = append(questions, q)
				added = true
			}
		}
		if !added {
			break
		}
	}

	questions = shuffled(g.rng, questions)
	if len(questions) > s.QuestionCount {
		questions = questions[:s.QuestionCount]
	}
	for i := range questions {
		questions[i].ID = i + 1
	}
	return questions
}

func (g *Generator) question(typ Type, used map[int]bool) (Question, bool) {
	switch typ {
	case TypeSymbol:
		return g.symbolQuestion(used)
	case TypeCategory:
		return g.categoryQuestion(used)
	case TypeProperty:
		return g.propertyQuestion(used)
	}
	return Question{}, false
}

// symbolQuestion asks for an element's chemical symbol, with the symbols of
// three other elements as distractors.
func (g *Generator) symbolQuestion(used map[int]bool) (Question, bool) {
	if len(g.pool) < optionCount {
		return Question{}, false
	}
	idx, ok := g.pickUnused(used, nil)
	if !ok {
		return Question{}, false
	}
	used[idx] = true
	subject := g.pool[idx]

	others := make([]string, 0, len(g.pool)-1)
	for i, e := range g.pool {
		if i != idx {
			others = append(others, e.Symbol)
		}
	}
	options := append(shuffled(g.rng, others)[:optionCount-1], subject.Symbol)

	return Question{
		Type:          TypeSymbol,
		Prompt:        g.tr.Tf("quiz.q.symbol", subject.Name),
		Options:       shuffled(g.rng, options),
		CorrectAnswer: subject.Symbol,
	}, true
}

// categoryQuestion asks which family an element belongs to. Distractors are
// other categories actually present in the pool.
func (g *Generator) categoryQuestion(used map[int]bool) (Question, bool) {
	categories := periodic.CategoriesInPool(g.pool)
	if len(categories) < optionCount {
		return Question{}, false
	}
	idx, ok := g.pickUnused(used, nil)
	if !ok {
		return Question{}, false
	}
	used[idx] = true
	subject := g.pool[idx]

	others := make([]string, 0, len(categories)-1)
	for _, c := range categories {
		if c != subject.Category {
			others = append(others, g.tr.CategoryName(c))
		}
	}
	correct := g.tr.CategoryName(subject.Category)
	options := append(shuffled(g.rng, others)[:optionCount-1], correct)

	return Question{
		Type:          TypeCategory,
		Prompt:        g.tr.Tf("quiz.q.category", subject.Name),
		Options:       shuffled(g.rng, options),
		CorrectAnswer: correct,
	}, true
}

// propertyQuestion randomly picks one of two sub-kinds: "which element is a
// liquid at room temperature" or "which element was discovered most
// recently". When the chosen sub-kind cannot be satisfied it falls through
// to the other rather than failing.
func (g *Generator) propertyQuestion(used map[int]bool) (Question, bool) {
	if g.rng.Intn(2) == 0 {
		if q, ok := g.liquidQuestion(used); ok {
			return q, true
		}
		return g.recentQuestion(used)
	}
	if q, ok := g.recentQuestion(used); ok {
		return q, true
	}
	return g.liquidQuestion(used)
}

func (g *Generator) liquidQuestion(used map[int]bool) (Question, bool) {
	idx, ok := g.pickUnused(used, func(e periodic.Element) bool { return e.State == periodic.StateLiquid })
	if !ok {
		return Question{}, false
	}

	var otherNames []string
	for _, e := range g.pool {
		if e.State != periodic.StateLiquid {
			otherNames = append(otherNames, e.Name)
		}
	}
	if len(otherNames) < optionCount-1 {
		return Question{}, false
	}
	used[idx] = true
	subject := g.pool[idx]

	options := append(shuffled(g.rng, otherNames)[:optionCount-1], subject.Name)

	return Question{
		Type:          TypeProperty,
		Prompt:        g.tr.T("quiz.q.liquid"),
		Options:       shuffled(g.rng, options),
		CorrectAnswer: subject.Name,
	}, true
}

func (g *Generator) recentQuestion(used map[int]bool) (Question, bool) {
	var dated []periodic.Element
	for _, e := range g.pool {
		if e.Discovered() {
			dated = append(dated, e)
		}
	}
	if len(dated) < optionCount {
		return Question{}, false
	}

	sample := shuffled(g.rng, dated)[:optionCount]
	latest := sample[0]
	for _, e := range sample[1:] {
		if e.DiscoveryYear >= latest.DiscoveryYear {
			latest = e
		}
	}

	options := make([]string, 0, optionCount)
	for _, e := range sample {
		options = append(options, e.Name)
	}

	q := Question{
		Type:          TypeProperty,
		Prompt:        g.tr.T("quiz.q.recent"),
		Options:       options,
		CorrectAnswer: latest.Name,
	}

	// Best-effort subject dedup: mark the answer element if we can find it.
	for i, e := range g.pool {
		if e.AtomicNumber == latest.AtomicNumber {
			used[i] = true
			break
		}
	}
	return q, true
}

// pickUnused selects a random pool index not yet in used, optionally
// restricted by pred. Returns false when no candidate remains.
func (g *Generator) pickUnused(used map[int]bool, pred func(periodic.Element) bool) (int, bool) {
	var candidates []int
	for i, e := range g.pool {
		if used[i] {
			continue
		}
		if pred != nil && !pred(e) {
			continue
		}
		candidates = append(candidates, i)
	}
	if len(candidates) == 0 {
		return 0, false
	}
	return candidates[g.rng.Intn(len(candidates))], true
}
