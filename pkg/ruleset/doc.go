// Package ruleset compiles declarative rule definitions into validator trees
// and applies them to JSON documents.
//
// A rule set lists field paths (gjson syntax) with one rule each:
//
//	fields:
//	  - path: user.age
//	    rule: {operator: ">=", compared: 18}
//	  - path: user.role
//	    rule:
//	      any:
//	        - {operator: IN, compared: [admin, editor]}
//	        - {type: "null"}
//	  - path: user.name
//	    rule:
//	      not: {regex: "/^\\s*$/"}
//	      message: Must not be blank.
//
// Rule keys: operator (+compared), type, one_of, contains (+ignore_case),
// divisible_by, regex, any, all, not. A node sets exactly one of them.
// message and code replace the failure messages of a node; on a not node
// message is the negation message.
//
// Compile reports configuration errors up front, wrapped with
// ErrInvalidRule. RuleSet.Validate returns validator.ValidationErrors keyed
// by path.
package ruleset
