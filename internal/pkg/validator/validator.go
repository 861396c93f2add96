// Package validator collects field errors for request and domain checks.
// Ad-hoc checks go through Check; tagged structs go through Struct, which
// runs go-playground/validator and folds its errors into the same map.
package validator

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"
	"sync"

	playground "github.com/go-playground/validator/v10"
)

var (
	TimeRX = regexp.MustCompile(`^([01][0-9]|2[0-3]):[0-5][0-9]$`)
)

var (
	engineOnce sync.Once
	engine     *playground.Validate

	messagesMu sync.RWMutex
	messages   = map[string]string{
		"required": "must be provided",
		"notblank": "must be provided",
		"hhmm":     "must be a time in HH:mm format",
	}
)

func validate() *playground.Validate {
	engineOnce.Do(func() {
		engine = playground.New()
		engine.RegisterTagNameFunc(func(f reflect.StructField) string {
			name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})

		mustRegister("notblank", func(s string) bool { return strings.TrimSpace(s) != "" })
		mustRegister("hhmm", func(s string) bool { return TimeRX.MatchString(s) })
	})

	return engine
}

// RegisterString adds a tag that checks string fields with fn and reports
// msg on failure. It is meant to be called from package init functions.
func RegisterString(tag, msg string, fn func(string) bool) {
	validate()
	mustRegister(tag, fn)

	messagesMu.Lock()
	messages[tag] = msg
	messagesMu.Unlock()
}

func mustRegister(tag string, fn func(string) bool) {
	err := engine.RegisterValidation(tag, func(fl playground.FieldLevel) bool {
		return fn(fl.Field().String())
	})
	if err != nil {
		panic(fmt.Sprintf("register validation %q: %v", tag, err))
	}
}

type Validator struct {
	Errors map[string]string
}

func New() *Validator {
	return &Validator{Errors: make(map[string]string)}
}

func (v *Validator) Valid() bool {
	return len(v.Errors) == 0
}

// AddError keeps the first message reported for a key.
func (v *Validator) AddError(key, message string) {
	if _, exists := v.Errors[key]; !exists {
		v.Errors[key] = message
	}
}

func (v *Validator) Check(ok bool, key, message string) {
	if !ok {
		v.AddError(key, message)
	}
}

// Struct validates s by its `validate` tags. Field keys are taken from the
// json tags.
func (v *Validator) Struct(s interface{}) {
	err := validate().Struct(s)
	if err == nil {
		return
	}

	var fieldErrors playground.ValidationErrors
	if !errors.As(err, &fieldErrors) {
		v.AddError("_", err.Error())
		return
	}

	for _, fe := range fieldErrors {
		v.AddError(fe.Field(), message(fe))
	}
}

func message(fe playground.FieldError) string {
	messagesMu.RLock()
	msg, ok := messages[fe.Tag()]
	messagesMu.RUnlock()
	if ok {
		return msg
	}

	switch fe.Tag() {
	case "oneof":
		return "must be one of: " + strings.ReplaceAll(fe.Param(), " ", ", ")
	case "max":
		return fmt.Sprintf("must be at most %s characters long", fe.Param())
	default:
		return fmt.Sprintf("failed %q check", fe.Tag())
	}
}

func In(value string, list ...string) bool {
	for _, l := range list {
		if value == l {
			return true
		}
	}
	return false
}

func Matches(value string, rx *regexp.Regexp) bool {
	return rx.MatchString(value)
}
