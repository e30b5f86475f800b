package dto

import (
	"html"
	"net/url"
	"reflect"
	"regexp"
	"strings"
	"unicode"

	"ride-escrow-network/internal/core/domain"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// safeIDPattern matches driver UUIDs, registry ids and ride-request references.
var safeIDPattern = regexp.MustCompile(`^[a-zA-Z0-9_\-\.]+$`)

// bindingTags are the custom `binding` tags understood by the request DTOs.
var bindingTags = map[string]validator.Func{
	"safe_id": func(fl validator.FieldLevel) bool {
		return safeIDPattern.MatchString(fl.Field().String())
	},
	"safe_url": func(fl validator.FieldLevel) bool {
		return isWebURL(fl.Field().String())
	},
	"safe_text": func(fl validator.FieldLevel) bool {
		return isSafeText(fl.Field().String())
	},
	"alpha3": func(fl validator.FieldLevel) bool {
		return domain.ValidateCountryCode(fl.Field().String()) == nil
	},
	"pubkey": func(fl validator.FieldLevel) bool {
		_, err := domain.ParsePubkey(fl.Field().String())
		return err == nil
	},
}

func init() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}
	for tag, fn := range bindingTags {
		if err := v.RegisterValidation(tag, fn); err != nil {
			panic("register binding tag " + tag + ": " + err.Error())
		}
	}
}

// isWebURL accepts an empty string or an absolute http(s) URL. Presence is
// enforced by "required", not here.
func isWebURL(raw string) bool {
	if raw == "" {
		return true
	}
	u, err := url.ParseRequestURI(raw)
	return err == nil && (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}

// isSafeText rejects control characters in company and catalog names.
func isSafeText(s string) bool {
	return strings.IndexFunc(s, unicode.IsControl) < 0
}

// SanitizeStruct trims and HTML-escapes the exported string fields of a
// request struct, including *string fields and embedded structs. Fields
// tagged `sanitize:"-"` (keys, ciphertext) are only trimmed.
func SanitizeStruct(v interface{}) {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Ptr || rv.Elem().Kind() != reflect.Struct {
		return
	}
	sanitizeFields(rv.Elem())
}

func sanitizeFields(rv reflect.Value) {
	rt := rv.Type()
	for i := 0; i < rv.NumField(); i++ {
		f := rv.Field(i)
		if !f.CanSet() {
			continue
		}
		escape := rt.Field(i).Tag.Get("sanitize") != "-"
		switch {
		case f.Kind() == reflect.String:
			f.SetString(clean(f.String(), escape))
		case f.Kind() == reflect.Struct:
			sanitizeFields(f)
		case f.Kind() == reflect.Ptr && !f.IsNil() && f.Elem().Kind() == reflect.String:
			f.Elem().SetString(clean(f.Elem().String(), escape))
		}
	}
}

func clean(s string, escape bool) string {
	s = strings.TrimSpace(s)
	if escape {
		s = html.EscapeString(s)
	}
	return s
}
