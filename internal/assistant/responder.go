// Package assistant implements the keyword-driven study assistant. Replies
// are canned templates selected by substring rules; nothing leaves the process.
package assistant

import (
	"fmt"
	"strings"
)

// Context is the session information a reply may reference.
type Context struct {
	BranchName string
}

// Rule names, reported by Classify.
const (
	RuleExplain    = "explain"
	RuleFormula    = "formula"
	RuleSolve      = "solve"
	RuleDifference = "difference"
	RuleFallback   = "fallback"
)

const (
	explainPrefix   = "Let me explain that concept: This is a comprehensive topic that involves multiple aspects. "
	algorithmClause = "Algorithms are step-by-step procedures for calculations. Key points include time complexity, space complexity, and optimization techniques."
	branchClause    = "This concept relates to your selected branch and involves theoretical and practical applications."
	formulaReply    = "Here are the key formulas related to your query. Would you like me to explain any specific formula in detail?"
	solveReply      = "Let me provide a step-by-step solution:\n1. Identify the given parameters\n2. Apply the relevant formula\n3. Calculate the result\n4. Verify the answer"
	differenceReply = "Here are the key differences in a comparison table format, highlighting the main distinctions between the concepts."
	fallbackFormat  = "I understand you're asking about \"%s\". Based on your current branch (%s), I can help you with concepts, formulas, problem-solving, and explanations. What specific aspect would you like to explore?"
)

type rule struct {
	name   string
	match  func(lower string) bool
	render func(query, lower string, ctx Context) string
}

// rules are evaluated in order; the first match wins.
var rules = []rule{
	{
		name:  RuleExplain,
		match: containsAny("explain", "what is"),
		render: func(_, lower string, _ Context) string {
			if strings.Contains(lower, "algorithm") {
				return explainPrefix + algorithmClause
			}
			return explainPrefix + branchClause
		},
	},
	{
		name:   RuleFormula,
		match:  containsAny("formula"),
		render: constant(formulaReply),
	},
	{
		name:   RuleSolve,
		match:  containsAny("example", "solve"),
		render: constant(solveReply),
	},
	{
		name:   RuleDifference,
		match:  containsAny("difference"),
		render: constant(differenceReply),
	},
}

var fallback = rule{
	name:  RuleFallback,
	match: func(string) bool { return true },
	render: func(query, _ string, ctx Context) string {
		return fmt.Sprintf(fallbackFormat, query, ctx.BranchName)
	},
}

// Respond maps a free-text query to a reply. It is deterministic for a given
// query and context.
func Respond(query string, ctx Context) string {
	lower := strings.ToLower(query)
	return selectRule(lower).render(query, lower, ctx)
}

// Classify reports which rule Respond would apply to query.
func Classify(query string) string {
	return selectRule(strings.ToLower(query)).name
}

func selectRule(lower string) rule {
	for _, r := range rules {
		if r.match(lower) {
			return r
		}
	}
	return fallback
}

func containsAny(needles ...string) func(string) bool {
	return func(lower string) bool {
		for _, n := range needles {
			if strings.Contains(lower, n) {
				return true
			}
		}
		return false
	}
}

func constant(reply string) func(string, string, Context) string {
	return func(string, string, Context) string { return reply }
}
