package validation

import (
	"errors"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
	enTranslations "github.com/go-playground/validator/v10/translations/en"
)

var (
	v     *validator.Validate
	trans ut.Translator

	// ErrTranslatorNotFound indicates the English translator could not be created.
	ErrTranslatorNotFound = errors.New("translator not found")
)

// Short messages for the most common rules; anything else falls back to the
// stock English translation.
var messages = map[string]string{
	"required": "Required",
	"notblank": "Must not be blank",

	"iso3166_1_alpha2": "Must be a two-letter country code",
}

func init() {
	if err := setup(); err != nil {
		panic(err)
	}
}

func setup() error {
	v = validator.New(validator.WithRequiredStructEnabled())

	// Use JSON tag as the field name in error output
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "" || name == "-" {
			return fld.Name
		}
		return name
	})

	enLang := en.New()
	uni := ut.New(enLang, enLang)
	var ok bool
	trans, ok = uni.GetTranslator("en")
	if !ok {
		return ErrTranslatorNotFound
	}
	if err := enTranslations.RegisterDefaultTranslations(v, trans); err != nil {
		return err
	}

	// Custom: string must contain something other than whitespace
	if err := v.RegisterValidation("notblank", validators.NotBlank); err != nil {
		return err
	}

	for tag, msg := range messages {
		if err := registerMessage(tag, msg); err != nil {
			return err
		}
	}
	return nil
}

func registerMessage(tag, msg string) error {
	return v.RegisterTranslation(tag, trans,
		func(t ut.Translator) error {
			return t.Add(tag, msg, true)
		},
		func(t ut.Translator, fe validator.FieldError) string {
			s, err := t.T(fe.Tag(), fe.Field())
			if err != nil {
				return fe.Error()
			}
			return s
		},
	)
}

// RegisterRule adds a custom rule and its message. The message may use {0}
// for the field name. Not safe for concurrent use; call it during startup.
func RegisterRule(tag string, fn validator.Func, message string) error {
	if err := v.RegisterValidation(tag, fn); err != nil {
		return err
	}
	return registerMessage(tag, message)
}

// Validate checks s against its `validate` tags. It returns nil, a
// *ValidationError, or the validator's own error for invalid input (e.g. a nil
// or non-struct argument).
func Validate(s any) error {
	err := v.Struct(s)
	if err == nil {
		return nil
	}
	var fes validator.ValidationErrors
	if !errors.As(err, &fes) {
		return err
	}
	return convert(fes, rootType(s))
}

func rootType(s any) reflect.Type {
	t := reflect.TypeOf(s)
	for t != nil && t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	return t
}

// fromFieldErrors converts errors whose root struct is unknown. A leading
// segment shared by the tag and struct namespaces is taken as the root.
// Without the root type, embedded structs cannot be flattened.
func fromFieldErrors(fes validator.ValidationErrors) *ValidationError {
	issues := make([]Issue, 0, len(fes))
	root := ""
	if len(fes) > 0 {
		ns, sns := fes[0].Namespace(), fes[0].StructNamespace()
		i, j := strings.IndexByte(ns, '.'), strings.IndexByte(sns, '.')
		if i > 0 && j > 0 && ns[:i] == sns[:j] {
			root = ns[:i]
		}
	}
	for _, fe := range fes {
		issues = append(issues, Issue{
			Path:    splitNamespace(trimRoot(fe.Namespace(), root)),
			Message: message(fe),
		})
	}
	return &ValidationError{Issues: issues}
}

func convert(fes validator.ValidationErrors, rt reflect.Type) *ValidationError {
	root := ""
	if rt != nil {
		root = rt.Name()
	}
	issues := make([]Issue, 0, len(fes))
	for _, fe := range fes {
		path := splitNamespace(trimRoot(fe.Namespace(), root))
		fields := splitNamespace(trimRoot(fe.StructNamespace(), root))
		issues = append(issues, Issue{
			Path:    flattenEmbedded(rt, path, fields),
			Message: message(fe),
		})
	}
	return &ValidationError{Issues: issues}
}

func trimRoot(ns, root string) string {
	if root == "" {
		return ns
	}
	return strings.TrimPrefix(ns, root+".")
}

// flattenEmbedded drops the segments of untagged embedded structs, whose
// fields encoding/json promotes to the parent object. fields is the Go-name
// twin of path and is walked against t.
func flattenEmbedded(t reflect.Type, path, fields []any) []any {
	if t == nil || len(path) != len(fields) {
		return path
	}
	out := make([]any, 0, len(path))
	for i, seg := range path {
		for t != nil && t.Kind() == reflect.Pointer {
			t = t.Elem()
		}
		if t == nil {
			out = append(out, seg)
			continue
		}
		switch t.Kind() {
		case reflect.Slice, reflect.Array, reflect.Map:
			t = t.Elem()
		case reflect.Struct:
			name, _ := fields[i].(string)
			f, ok := t.FieldByName(name)
			if !ok {
				t = nil
				break
			}
			t = f.Type
			if f.Anonymous && strings.SplitN(f.Tag.Get("json"), ",", 2)[0] == "" {
				continue
			}
		default:
			t = nil
		}
		out = append(out, seg)
	}
	return out
}

// message translates fe. Errors from another validator instance carry no
// translations of ours, so the short messages are looked up directly.
func message(fe validator.FieldError) string {
	msg := fe.Translate(trans)
	if msg != fe.Error() {
		return msg
	}
	if _, ok := messages[fe.Tag()]; ok {
		if s, err := trans.T(fe.Tag(), fe.Field()); err == nil {
			return s
		}
	}
	return msg
}

// splitNamespace turns "items[0].tags[key]" into ["items", 0, "tags", "key"].
func splitNamespace(ns string) []any {
	path := []any{}
	var cur strings.Builder
	flush := func() {
		if cur.Len() > 0 {
			path = append(path, cur.String())
			cur.Reset()
		}
	}
	for i := 0; i < len(ns); i++ {
		switch ns[i] {
		case '.':
			flush()
		case '[':
			flush()
			end := strings.IndexByte(ns[i:], ']')
			if end < 0 {
				cur.WriteString(ns[i:])
				i = len(ns)
				continue
			}
			key := ns[i+1 : i+end]
			if n, err := strconv.Atoi(key); err == nil {
				path = append(path, n)
			} else {
				path = append(path, key)
			}
			i += end
		default:
			cur.WriteByte(ns[i])
		}
	}
	flush()
	return path
}
