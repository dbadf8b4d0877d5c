package config

import (
	"errors"
	"fmt"
	"os"
	"reflect"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// ValidationError points at a bad setting. Key is the config key as written
// in .chglog-uae.yml; Line is set when the position in the file is known.
type ValidationError struct {
	FilePath string
	Line     int
	Column   int
	Key      string
	Message  string
}

func (e *ValidationError) Error() string {
	var b strings.Builder
	b.WriteString(e.FilePath)
	if e.Line > 0 {
		fmt.Fprintf(&b, ":%d:%d", e.Line, e.Column)
	}
	if e.Key != "" {
		fmt.Fprintf(&b, ": %s", e.Key)
	}
	fmt.Fprintf(&b, ": %s", e.Message)
	return b.String()
}

// keyMessages explain constraint failures in terms of the setting itself.
var keyMessages = map[string]string{
	"variant":       "must be refined or simple",
	"routing":       "must be release_count or version; leave empty for the variant default",
	"release_count": "must be 0 to regenerate every release, or the number of newest releases",
	"host":          "must be an absolute URL such as https://github.com",
	"repo_url":      "must be an absolute URL such as https://github.com/owner/repository",
	"log_format":    "must be console or json",
}

var yamlLine = regexp.MustCompile(`^yaml: line (\d+): (.*)$`)

// ValidateFile checks that a config file parses as a mapping of known
// settings. A missing or blank file is accepted and leaves the defaults.
func ValidateFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return &ValidationError{FilePath: path, Message: err.Error()}
	}
	if strings.TrimSpace(string(data)) == "" {
		return nil
	}

	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return syntaxError(path, err)
	}
	if len(doc.Content) == 0 {
		return nil
	}

	root := doc.Content[0]
	if root.Kind != yaml.MappingNode {
		return &ValidationError{
			FilePath: path, Line: root.Line, Column: root.Column,
			Message: "expected a mapping of settings such as \"variant: refined\"",
		}
	}

	known := GetDefaults()
	for i := 0; i+1 < len(root.Content); i += 2 {
		key := root.Content[i]
		if _, ok := known[key.Value]; ok {
			continue
		}
		return &ValidationError{
			FilePath: path, Line: key.Line, Column: key.Column,
			Key:     key.Value,
			Message: unknownKeyMessage(key.Value, known),
		}
	}
	return nil
}

func syntaxError(path string, err error) error {
	var typeErr *yaml.TypeError
	if errors.As(err, &typeErr) {
		return &ValidationError{FilePath: path, Message: strings.Join(typeErr.Errors, "; ")}
	}
	m := yamlLine.FindStringSubmatch(err.Error())
	if m == nil {
		return &ValidationError{FilePath: path, Message: err.Error()}
	}
	line, _ := strconv.Atoi(m[1])
	return &ValidationError{FilePath: path, Line: line, Column: 1, Message: m[2]}
}

// unknownKeyMessage suggests the setting a dashed or mixed-case key was
// probably meant to be, e.g. release-count for release_count.
func unknownKeyMessage(key string, known map[string]interface{}) string {
	guess := strings.ToLower(strings.ReplaceAll(key, "-", "_"))
	if _, ok := known[guess]; ok {
		return fmt.Sprintf("unknown setting, did you mean %s?", guess)
	}
	keys := make([]string, 0, len(known))
	for k := range known {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return "unknown setting; known settings are " + strings.Join(keys, ", ")
}

// newValidator reports fields by their koanf key so errors name the setting
// the user wrote.
func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("koanf"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// ValidateConfigValues checks the merged settings. source names where the
// values came from and prefixes the error.
func ValidateConfigValues(cfg *Configuration, source string) error {
	if err := newValidator().Struct(cfg); err != nil {
		var fieldErrs validator.ValidationErrors
		if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
			return &ValidationError{FilePath: source, Message: err.Error()}
		}
		fe := fieldErrs[0]
		msg, ok := keyMessages[fe.Field()]
		if !ok {
			msg = fmt.Sprintf("failed %s check", fe.Tag())
		}
		return &ValidationError{
			FilePath: source,
			Key:      fe.Field(),
			Message:  fmt.Sprintf("%s (got %q)", msg, fmt.Sprint(fe.Value())),
		}
	}

	// Links need both halves of the owner/repository slug.
	if cfg.Owner != "" && cfg.Repository == "" {
		return &ValidationError{
			FilePath: source,
			Key:      "repository",
			Message:  fmt.Sprintf("is required when owner is set (owner %q)", cfg.Owner),
		}
	}
	if cfg.Repository != "" && cfg.Owner == "" {
		return &ValidationError{
			FilePath: source,
			Key:      "owner",
			Message:  fmt.Sprintf("is required when repository is set (repository %q)", cfg.Repository),
		}
	}

	return nil
}
