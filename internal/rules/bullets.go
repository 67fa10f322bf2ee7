package rules

import (
	"fmt"
	"strings"
)

// BulletParallelismRule flags lists whose items start with different grammatical forms
type BulletParallelismRule struct{}

func (r *BulletParallelismRule) Name() string {
	return NameBullets
}

func (r *BulletParallelismRule) Description() string {
	return "Flags bullet points that start with different verb forms or structures"
}

func (r *BulletParallelismRule) Config() RuleConfig {
	return RuleConfig{Category: CategoryInconsistentBullets, Severity: Suggestion}
}

// bulletForm classifies the first word of a bullet
type bulletForm int

const (
	formGerund bulletForm = iota
	formPast
	formPresent
	formOther
	numForms
)

func classifyBullet(bullet string) bulletForm {
	fields := strings.Fields(bullet)
	if len(fields) == 0 {
		return formOther
	}

	word := strings.ToLower(fields[0])
	switch {
	case strings.HasSuffix(word, "ing"):
		return formGerund
	case strings.HasSuffix(word, "ed"):
		return formPast
	case strings.HasSuffix(word, "s") && !strings.HasSuffix(word, "ss"):
		return formPresent
	default:
		return formOther
	}
}

func (r *BulletParallelismRule) Run(ctx *AnalysisContext) ([]Issue, error) {
	bullets := ctx.Segments.Bullets
	if len(bullets) < 3 {
		return nil, nil
	}

	var counts [numForms]int
	for _, b := range bullets {
		counts[classifyBullet(b)]++
	}

	used := 0
	for _, c := range counts {
		if c > 0 {
			used++
		}
	}
	if used < 2 {
		return nil, nil
	}

	return []Issue{{
		Rule:     r.Name(),
		Category: CategoryInconsistentBullets,
		Severity: Suggestion,
		Text:     "Bullet points start with different verb forms or structures",
		Suggestion: fmt.Sprintf("Make the %d bullet points parallel by starting each with the same grammatical form "+
			"(e.g., all with verbs in the same tense, all with nouns, or all complete sentences).", len(bullets)),
		Line: ctx.lineOf(bullets[0]),
	}}, nil
}
