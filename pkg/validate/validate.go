// Package validate checks struct fields against rules declared in a
// `validate` struct tag, Laravel style.
//
// Supported rules (comma-separated):
//
//	required         field must not be zero/empty
//	nullable         if empty, skip the remaining rules for this field
//	email            valid email address
//	url              valid http/https URL
//	in=a,b,c         value must be one of the listed items
//	min=N / max=N    string: char length | number: value
//	gt=N / gte=N     number > N / number >= N
//	lte=N            number <= N
//	between=lo,hi    number (or string length) within [lo, hi]
//
// Example:
//
//	type Plan struct {
//	    Type     string  `json:"type"     validate:"required,in=daily,weekly,monthly"`
//	    Discount float64 `json:"discount" validate:"between=0,100"`
//	}
package validate

import (
	"fmt"
	"net/url"
	"reflect"
	"regexp"
	"sort"
	"strconv"
	"strings"
)

// Errors maps a field's JSON name to the message of its first failing rule.
type Errors map[string]string

// Error renders the messages in field order so output is stable.
func (e Errors) Error() string {
	fields := make([]string, 0, len(e))
	for f := range e {
		fields = append(fields, f)
	}
	sort.Strings(fields)

	msgs := make([]string, len(fields))
	for i, f := range fields {
		msgs[i] = e[f]
	}
	return strings.Join(msgs, " ")
}

// Struct validates all exported fields of v that carry a `validate` tag.
// An empty result means v is valid.
func Struct(v any) Errors {
	errs := make(Errors)
	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Ptr {
		rv = rv.Elem()
	}
	if rv.Kind() != reflect.Struct {
		return errs
	}
	rt := rv.Type()

	for i := 0; i < rt.NumField(); i++ {
		field := rt.Field(i)
		tag := field.Tag.Get("validate")
		if tag == "" || !field.IsExported() {
			continue
		}

		value := rv.Field(i)
		name := jsonFieldName(field)
		rules := splitRules(tag)

		if hasRule(rules, "nullable") && isEmpty(value) {
			continue
		}
		for _, rule := range rules {
			if rule == "nullable" {
				continue
			}
			if msg := applyRule(rule, name, value); msg != "" {
				errs[name] = msg
				break
			}
		}
	}
	return errs
}

// HasErrors reports whether errs holds at least one failure.
func HasErrors(errs Errors) bool { return len(errs) > 0 }

// Check is Struct for call sites that want a plain error.
func Check(v any) error {
	if errs := Struct(v); HasErrors(errs) {
		return errs
	}
	return nil
}

func applyRule(rule, field string, v reflect.Value) string {
	raw := fmt.Sprintf("%v", v.Interface())
	key, param, _ := strings.Cut(rule, "=")

	switch key {
	case "required":
		if isEmpty(v) {
			return fmt.Sprintf("The %s field is required.", field)
		}
	case "email":
		if !emailRE.MatchString(raw) {
			return fmt.Sprintf("The %s must be a valid email address.", field)
		}
	case "url":
		u, err := url.ParseRequestURI(raw)
		if err != nil || (u.Scheme != "http" && u.Scheme != "https") {
			return fmt.Sprintf("The %s must be a valid URL.", field)
		}
	case "in":
		for _, a := range strings.Split(param, ",") {
			if raw == strings.TrimSpace(a) {
				return ""
			}
		}
		return fmt.Sprintf("The selected %s is invalid.", field)
	case "min", "max":
		n := parseFloat(param)
		got := measure(v, raw)
		if key == "min" && got < n {
			return fmt.Sprintf("The %s must be at least %s.", field, param)
		}
		if key == "max" && got > n {
			return fmt.Sprintf("The %s must not be greater than %s.", field, param)
		}
	case "gt":
		if toFloat(v) <= parseFloat(param) {
			return fmt.Sprintf("The %s must be greater than %s.", field, param)
		}
	case "gte":
		if toFloat(v) < parseFloat(param) {
			return fmt.Sprintf("The %s must be greater than or equal to %s.", field, param)
		}
	case "lte":
		if toFloat(v) > parseFloat(param) {
			return fmt.Sprintf("The %s must be less than or equal to %s.", field, param)
		}
	case "between":
		lo, hi, ok := strings.Cut(param, ",")
		if !ok {
			return ""
		}
		got := measure(v, raw)
		if got < parseFloat(lo) || got > parseFloat(hi) {
			return fmt.Sprintf("The %s must be between %s and %s.", field, lo, hi)
		}
	}
	return ""
}

var emailRE = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// measure is the numeric value for numbers and the rune length for anything else.
func measure(v reflect.Value, raw string) float64 {
	if isNumericKind(v) {
		return toFloat(v)
	}
	return float64(len([]rune(raw)))
}

func isEmpty(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.String:
		return strings.TrimSpace(v.String()) == ""
	case reflect.Slice, reflect.Map, reflect.Array:
		return v.Len() == 0
	case reflect.Ptr, reflect.Interface:
		return v.IsNil()
	case reflect.Bool:
		return false
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return v.Int() == 0
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return v.Uint() == 0
	case reflect.Float32, reflect.Float64:
		return v.Float() == 0
	}
	return false
}

func isNumericKind(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return true
	}
	return false
}

func toFloat(v reflect.Value) float64 {
	switch v.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(v.Int())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return float64(v.Uint())
	case reflect.Float32, reflect.Float64:
		return v.Float()
	}
	return parseFloat(fmt.Sprintf("%v", v.Interface()))
}

func parseFloat(s string) float64 {
	f, _ := strconv.ParseFloat(strings.TrimSpace(s), 64)
	return f
}

func jsonFieldName(f reflect.StructField) string {
	name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
	if name == "" || name == "-" {
		return strings.ToLower(f.Name)
	}
	return name
}

var ruleNames = map[string]bool{
	"required": true, "nullable": true, "email": true, "url": true, "in": true,
	"min": true, "max": true, "gt": true, "gte": true, "lte": true,
	"between": true,
}

// splitRules splits a tag on commas, folding list parameters back into their
// rule: "required,in=a,b,max=9" → ["required", "in=a,b", "max=9"].
func splitRules(tag string) []string {
	var rules []string
	for _, tok := range strings.Split(tag, ",") {
		tok = strings.TrimSpace(tok)
		key, _, _ := strings.Cut(tok, "=")
		if ruleNames[key] || len(rules) == 0 {
			rules = append(rules, tok)
			continue
		}
		rules[len(rules)-1] += "," + tok
	}
	return rules
}

func hasRule(rules []string, target string) bool {
	for _, r := range rules {
		if r == target {
			return true
		}
	}
	return false
}
