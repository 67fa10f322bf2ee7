package rules

// Check names, used as configuration keys
const (
	NamePassiveVoice  = "passive-voice"
	NameLongSentences = "long-sentences"
	NameComplexWords  = "complex-words"
	NamePronouns      = "pronouns"
	NameWeVsYou       = "we-vs-you"
	NameAmbiguous     = "ambiguous"
	NameTerminology   = "terminology"
	NameHeadings      = "headings"
	NameBullets       = "bullets"
	NameAcronyms      = "acronyms"
	NameGendered      = "gendered"
	NameImperative    = "imperative"
)

// Registry holds rules in execution order
type Registry struct {
	rules []Rule
}

// NewRegistry creates a new rule registry
func NewRegistry() *Registry {
	return &Registry{
		rules: make([]Rule, 0),
	}
}

// Register adds a rule to the registry
func (r *Registry) Register(rule Rule) {
	r.rules = append(r.rules, rule)
}

// Rules returns all registered rules in registration order
func (r *Registry) Rules() []Rule {
	return r.rules
}

// Names returns the name of every registered rule in registration order
func (r *Registry) Names() []string {
	names := make([]string, len(r.rules))
	for i, rule := range r.rules {
		names[i] = rule.Name()
	}
	return names
}

// Get returns a rule by name
func (r *Registry) Get(name string) Rule {
	for _, rule := range r.rules {
		if rule.Name() == name {
			return rule
		}
	}
	return nil
}

// DefaultRegistry returns a registry with every check in its fixed order
func DefaultRegistry() *Registry {
	r := NewRegistry()

	// Sentence-level style
	r.Register(&PassiveVoiceRule{})
	r.Register(&LongSentenceRule{})
	r.Register(&ComplexWordingRule{})
	r.Register(&UnclearPronounRule{})
	r.Register(&WeVsYouRule{})

	// Word choice
	r.Register(&AmbiguousTermRule{})
	r.Register(&TerminologyRule{})

	// Document structure
	r.Register(&HeadingCapitalizationRule{})
	r.Register(&BulletParallelismRule{})

	// Clarity and inclusiveness
	r.Register(&UndefinedAcronymRule{})
	r.Register(&GenderedLanguageRule{})
	r.Register(&ImperativeMoodRule{})

	return r
}
