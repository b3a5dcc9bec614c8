package validator

import "sort"

// Values holds raw form input keyed by field name. A missing field reads as "".
type Values map[string]string

func (v Values) Get(field string) string {
	return v[field]
}

// Rule pairs a predicate with the message reported when it returns false.
// Check receives the value of the field under validation and the whole value set,
// so a rule may compare against other fields.
type Rule struct {
	Check   func(value string, values Values) bool
	Message string
}

// Schema maps a field to its ordered rules. The first failing rule wins.
type Schema map[string][]Rule

// Errors maps an invalid field to the message of its first failing rule.
type Errors map[string]string

// Validate evaluates schema against values and returns a fresh report.
// A panicking predicate is not recovered.
func Validate(values Values, schema Schema) Errors {
	errs := make(Errors)
	for field, rules := range schema {
		if msg, ok := evaluate(rules, values.Get(field), values); !ok {
			errs[field] = msg
		}
	}
	return errs
}

func (s Schema) Validate(values Values) Errors {
	return Validate(values, s)
}

// ValidateField evaluates the rules of a single field. Unknown fields are valid.
func (s Schema) ValidateField(field string, values Values) (string, bool) {
	return evaluate(s[field], values.Get(field), values)
}

func (s Schema) Fields() []string {
	fields := make([]string, 0, len(s))
	for field, rules := range s {
		if len(rules) > 0 {
			fields = append(fields, field)
		}
	}
	sort.Strings(fields)
	return fields
}

func evaluate(rules []Rule, value string, values Values) (string, bool) {
	for _, rule := range rules {
		if !rule.Check(value, values) {
			return rule.Message, false
		}
	}
	return "", true
}

func (e Errors) Has(field string) bool {
	_, ok := e[field]
	return ok
}

func (e Errors) Get(field string) string {
	return e[field]
}

func (e Errors) Valid() bool {
	return len(e) == 0
}

func (e Errors) Fields() []string {
	fields := make([]string, 0, len(e))
	for field := range e {
		fields = append(fields, field)
	}
	sort.Strings(fields)
	return fields
}

// Filter returns a copy holding only the fields keep accepts.
func (e Errors) Filter(keep func(field string) bool) Errors {
	out := make(Errors, len(e))
	for field, msg := range e {
		if keep(field) {
			out[field] = msg
		}
	}
	return out
}
