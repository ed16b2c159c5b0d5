// Package rules defines the built-in detection table and the classifier
// that evaluates file content against it.
//
// Rules are literal substring matches, either case-sensitive or compared
// in lower case. All rules are evaluated for every input, so the result
// reflects every applicable finding rather than the first one.
//
// # Example Usage
//
//	set := rules.Default()
//	for _, name := range set.Evaluate(content) {
//	    rule, _ := set.Lookup(name)
//	    fmt.Println(rule.Description)
//	}
package rules
