package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"reflect"
	"sort"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/workforcepro/terceirizacao-api/internal/core/domain"
)

var (
	dateType  = reflect.TypeOf(domain.Date{})
	moneyType = reflect.TypeOf(domain.Money{})
)

// bindCreate fills dst, a pointer to a request struct, from the JSON body and
// validates it. Every field that is missing, mistyped or outside its enumerated
// set is reported in a single *domain.ValidationError. A body that is not a JSON
// object is a 400.
func bindCreate(c echo.Context, dst any) error {
	body, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "cannot read request body").SetInternal(err)
	}

	raw := map[string]json.RawMessage{}
	if len(bytes.TrimSpace(body)) > 0 {
		if err := json.Unmarshal(body, &raw); err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "request body must be a JSON object").SetInternal(err)
		}
	}

	issues := decodeFields(raw, dst)

	if err := c.Validate(dst); err != nil {
		var ve *domain.ValidationError
		if !errors.As(err, &ve) {
			return err
		}
		for _, is := range ve.Issues {
			if !issues.Has(is.Field) {
				issues.Issues = append(issues.Issues, is)
			}
		}
	}

	if len(issues.Issues) == 0 {
		return nil
	}
	sortIssues(issues, reflect.TypeOf(dst).Elem())
	return issues
}

// decodeFields decodes each present, non-null member of raw into the matching
// field of dst independently, so one bad value does not hide the others.
func decodeFields(raw map[string]json.RawMessage, dst any) *domain.ValidationError {
	issues := &domain.ValidationError{}
	v := reflect.ValueOf(dst).Elem()
	t := v.Type()

	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		name := jsonName(f)
		if name == "" {
			continue
		}
		msg, ok := raw[name]
		if !ok || bytes.Equal(bytes.TrimSpace(msg), []byte("null")) {
			continue
		}
		target := reflect.New(f.Type)
		if err := json.Unmarshal(msg, target.Interface()); err != nil {
			issues.Issues = append(issues.Issues, domain.FieldIssue{
				Field:  name,
				Reason: fmt.Sprintf("%s: expected %s", domain.ReasonWrongType, expectedKind(f.Type)),
			})
			continue
		}
		v.Field(i).Set(target.Elem())
	}
	return issues
}

func jsonName(f reflect.StructField) string {
	if !f.IsExported() {
		return ""
	}
	name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
	if name == "-" {
		return ""
	}
	if name == "" {
		return f.Name
	}
	return name
}

func expectedKind(t reflect.Type) string {
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	switch {
	case t == dateType:
		return "date (YYYY-MM-DD)"
	case t == moneyType:
		return "number"
	}
	switch t.Kind() {
	case reflect.String:
		return "string"
	case reflect.Bool:
		return "boolean"
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return "integer"
	case reflect.Float32, reflect.Float64:
		return "number"
	default:
		return t.String()
	}
}

// sortIssues orders issues by the declaration order of their fields.
func sortIssues(ve *domain.ValidationError, t reflect.Type) {
	order := make(map[string]int, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		order[jsonName(t.Field(i))] = i
	}
	sort.SliceStable(ve.Issues, func(a, b int) bool {
		return order[ve.Issues[a].Field] < order[ve.Issues[b].Field]
	})
}
