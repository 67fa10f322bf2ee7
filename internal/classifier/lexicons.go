package classifier

// DefaultLexicons returns the built-in domains in priority order
func DefaultLexicons() []Lexicon {
	return []Lexicon{
		{
			Domain: "programming",
			Keywords: []string{
				"code", "function", "variable", "class", "method", "api", "interface",
				"programming", "developer", "software", "app", "application", "database",
				"server", "client", "web", "javascript", "python", "java", "html", "css",
			},
		},
		{
			Domain: "healthcare",
			Keywords: []string{
				"patient", "doctor", "medical", "health", "treatment", "diagnosis",
				"symptom", "disease", "hospital", "clinic", "physician", "nurse",
				"therapy", "medication", "drug", "prescription",
			},
		},
		{
			Domain: "legal",
			Keywords: []string{
				"law", "legal", "court", "judge", "attorney", "lawyer", "plaintiff",
				"defendant", "contract", "agreement", "clause", "statute", "regulation",
				"compliance", "liability", "jurisdiction",
			},
		},
		{
			Domain: "finance",
			Keywords: []string{
				"money", "finance", "bank", "investment", "stock", "market", "fund",
				"asset", "liability", "credit", "debit", "loan", "interest", "mortgage",
				"tax", "revenue", "profit", "loss",
			},
		},
	}
}
