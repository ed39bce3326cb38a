// Copyright (c) 2026 kobodl Team
// kobodl - Kobo account and settings manager
// This source code is licensed under the MIT license found in the LICENSE file.

// Package i18n provides the translated user-facing messages of the kobodl
// CLI. It uses the go-i18n library over YAML message files embedded in the
// binary.
package i18n

import (
	"embed"
	"fmt"
	"io/fs"
	"sort"
	"strings"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

//go:embed locales/*.yaml
var localeFS embed.FS

var (
	bundle    *i18n.Bundle
	localizer *i18n.Localizer
	current   string
)

// Init loads every embedded locale and selects lang. Unknown languages fall
// back to English.
func Init(lang string) {
	bundle = i18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("yaml", yaml.Unmarshal)

	files, _ := fs.ReadDir(localeFS, "locales")
	for _, f := range files {
		if f.IsDir() {
			continue
		}
		data, _ := localeFS.ReadFile("locales/" + f.Name())
		_, _ = bundle.ParseMessageFileBytes(data, f.Name())
	}

	localizer = i18n.NewLocalizer(bundle, lang)
	current = lang
}

// GetLang returns the language passed to the last Init.
func GetLang() string {
	return current
}

// AvailableLocales lists the language tags with an embedded message file.
func AvailableLocales() []string {
	files, _ := fs.ReadDir(localeFS, "locales")
	var out []string
	for _, f := range files {
		if f.IsDir() {
			continue
		}
		out = append(out, strings.TrimSuffix(f.Name(), ".yaml"))
	}
	sort.Strings(out)
	return out
}

// T translates messageID. A single map argument is passed as template data;
// any other arguments are applied fmt-style to the translated text. Unknown
// ids are returned unchanged.
func T(messageID string, args ...any) string {
	if localizer == nil {
		Init("en")
	}
	cfg := &i18n.LocalizeConfig{MessageID: messageID}
	if len(args) == 1 {
		if data, ok := args[0].(map[string]any); ok {
			cfg.TemplateData = data
			args = nil
		}
	}
	msg, err := localizer.Localize(cfg)
	if err != nil {
		return messageID
	}
	if len(args) > 0 {
		return fmt.Sprintf(msg, args...)
	}
	return msg
}
